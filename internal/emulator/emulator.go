// Package emulator is a stand-in for the UDP device emulator. It speaks
// the emulator ping and the 64-byte report framing, and answers each
// decoded message with whatever its responder returns. It lets the
// gateway and the command line run against a scripted device.
package emulator

import (
	"bytes"
	"errors"
	"net"
	"sync"

	"github.com/trezor/trezorlib-go/internal/message"
	pb "github.com/trezor/trezorlib-go/trezorapi/trezorpb"
	"github.com/trezor/trezorlib-go/trezorapi/trezorpb/marshal"
)

var (
	ping = []byte("PINGPING")
	pong = []byte("PONGPONG")
)

// Responder answers one host message with zero or more device messages.
type Responder func(msg pb.Message) []pb.Message

type Emulator struct {
	conn    net.PacketConn
	respond Responder

	mutex sync.Mutex
	peer  net.Addr
	err   error

	done chan struct{}
}

// Start listens on a free local UDP port.
func Start(respond Responder) (*Emulator, error) {
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	e := &Emulator{
		conn:    conn,
		respond: respond,
		done:    make(chan struct{}),
	}
	go e.serve()
	return e, nil
}

func (e *Emulator) Port() int {
	return e.conn.LocalAddr().(*net.UDPAddr).Port
}

// Err is the first error met while serving, other than the one Close
// causes.
func (e *Emulator) Err() error {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.err
}

func (e *Emulator) Close() error {
	err := e.conn.Close()
	<-e.done
	return err
}

func (e *Emulator) fail(err error) {
	e.mutex.Lock()
	if e.err == nil {
		e.err = err
	}
	e.mutex.Unlock()
}

// Read hands out reports to the frame decoder, answering pings on the way.
func (e *Emulator) Read(buf []byte) (int, error) {
	for {
		n, addr, err := e.conn.ReadFrom(buf)
		if err != nil {
			return 0, err
		}
		if bytes.Equal(buf[:n], ping) {
			if _, err := e.conn.WriteTo(pong, addr); err != nil {
				return 0, err
			}
			continue
		}
		e.mutex.Lock()
		e.peer = addr
		e.mutex.Unlock()
		return n, nil
	}
}

// Write sends a report to whoever sent the last one.
func (e *Emulator) Write(buf []byte) (int, error) {
	e.mutex.Lock()
	peer := e.peer
	e.mutex.Unlock()
	if peer == nil {
		return 0, errors.New("no peer yet")
	}
	return e.conn.WriteTo(buf, peer)
}

func (e *Emulator) serve() {
	defer close(e.done)
	for {
		raw, err := message.ReadFromDevice(e, nil)
		if err != nil {
			var nerr net.Error
			if errors.As(err, &nerr) || errors.Is(err, net.ErrClosed) {
				return
			}
			e.fail(err)
			continue
		}
		msg, err := marshal.Unmarshal(raw)
		if err != nil {
			e.fail(err)
			continue
		}
		for _, reply := range e.respond(msg) {
			out, err := marshal.Marshal(reply)
			if err != nil {
				e.fail(err)
				continue
			}
			if _, err := message.WriteToDevice(out, e, nil); err != nil {
				e.fail(err)
			}
		}
	}
}
