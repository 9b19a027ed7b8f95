package usb

import (
	"bytes"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/trezor/trezorlib-go/internal/core"
	"github.com/trezor/trezorlib-go/internal/logs"
	"github.com/trezor/trezorlib-go/trezorapi/trezortypes"
)

const (
	emulatorPrefix  = "emulator"
	emulatorNetwork = "udp"
	emulatorHost    = "127.0.0.1"
	emulatorPacket  = 64

	pingTimeout = 200 * time.Millisecond
)

var (
	emulatorPing = []byte("PINGPING")
	emulatorPong = []byte("PONGPONG")
)

// PortTouple is the normal and debug link port of one emulator.
// Debug is 0 when the emulator has no debug link.
type PortTouple struct {
	Normal int
	Debug  int
}

type UDP struct {
	ports []PortTouple
	mw    *logs.Logger
}

func InitUDP(ports []PortTouple, mw *logs.Logger) (*UDP, error) {
	return &UDP{ports: ports, mw: mw}, nil
}

func (u *UDP) Enumerate() ([]core.Info, error) {
	var infos []core.Info
	for _, p := range u.ports {
		if !u.ping(p.Normal) {
			continue
		}
		infos = append(infos, core.Info{
			Path:  emulatorPrefix + strconv.Itoa(p.Normal),
			Type:  trezortypes.TypeEmulator,
			Debug: p.Debug != 0,
		})
	}
	return infos, nil
}

func (u *UDP) Has(path string) bool {
	return strings.HasPrefix(path, emulatorPrefix)
}

func (u *UDP) touple(path string) (PortTouple, error) {
	port, err := strconv.Atoi(strings.TrimPrefix(path, emulatorPrefix))
	if err != nil {
		return PortTouple{}, ErrNotFound
	}
	for _, p := range u.ports {
		if p.Normal == port {
			return p, nil
		}
	}
	return PortTouple{}, ErrNotFound
}

func (u *UDP) Connect(path string, debug bool) (core.Device, error) {
	p, err := u.touple(path)
	if err != nil {
		return nil, err
	}
	port := p.Normal
	if debug {
		if p.Debug == 0 {
			return nil, fmt.Errorf("%s has no debug link", path)
		}
		port = p.Debug
	}
	u.mw.Logf("connecting to udp port %d", port)
	conn, err := dial(port)
	if err != nil {
		return nil, err
	}
	return &UDPDevice{conn: conn}, nil
}

func (u *UDP) Close() {}

func dial(port int) (net.Conn, error) {
	return net.Dial(emulatorNetwork, net.JoinHostPort(emulatorHost, strconv.Itoa(port)))
}

// ping checks that an emulator answers on port.
func (u *UDP) ping(port int) bool {
	conn, err := dial(port)
	if err != nil {
		return false
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(pingTimeout)); err != nil {
		return false
	}
	if _, err := conn.Write(emulatorPing); err != nil {
		return false
	}
	response := make([]byte, len(emulatorPong))
	if _, err := conn.Read(response); err != nil {
		return false
	}
	return bytes.Equal(response, emulatorPong)
}

// UDPDevice sends each 64-byte report as one datagram.
type UDPDevice struct {
	conn net.Conn

	closeOnce sync.Once
}

func (d *UDPDevice) Write(buf []byte) (int, error) {
	return d.conn.Write(buf)
}

func (d *UDPDevice) Read(buf []byte) (int, error) {
	if len(buf) < emulatorPacket {
		return 0, fmt.Errorf("buffer of %d bytes too small for a report", len(buf))
	}
	return d.conn.Read(buf)
}

func (d *UDPDevice) Close() error {
	var err error
	d.closeOnce.Do(func() {
		err = d.conn.Close()
	})
	return err
}
