package trezorapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/trezor/trezorlib-go/internal/bridge"
	"github.com/trezor/trezorlib-go/internal/core"
	"github.com/trezor/trezorlib-go/internal/logs"
	"github.com/trezor/trezorlib-go/internal/usb"
)

// API connects to devices.
// It recognizes, if Bridge is already running or not, and connects to it,
// unless this is disabled with DisableBridge InitOption.
type API struct {
	// init option
	touples []usb.PortTouple

	// actual backend
	t      transport
	logger *logs.Logger

	// other init options
	writer    io.Writer
	withUSB   bool
	bridge    bool
	bridgeURL string
	timeout   time.Duration
}

var defaultAPI = API{
	withUSB: true,
	writer:  io.Discard,
	timeout: core.DefaultRoundTimeout,

	bridge:    true,
	bridgeURL: bridge.DefaultURL,
}

// bridgeProbe bounds the check whether trezord is running.
const bridgeProbe = 2 * time.Second

// InitOption is an option that could be given to API. Ideally, you don't need to
// add any option, or maybe adding UDP for testing with an emulator.
//
// Note - when API has enabled bridge (enabled by default),
// and bridge is running, API is ignoring all the settings
// about USB and UDP, since all the connections are going through the bridge!
type InitOption func(*API)

// BridgeURL sets Bridge URL. It's usually not needed;
// the correct URL is set by default.
func BridgeURL(s string) InitOption {
	return func(a *API) {
		a.bridgeURL = s
		a.bridge = true
	}
}

// DisableBridge disables connecting to bridge,
// forcing API to always connect to USB level
func DisableBridge() InitOption {
	return func(a *API) {
		a.bridge = false
		a.bridgeURL = ""
	}
}

// WithUSB enables or disables USB HID. Irrelevant if bridge is used.
//
// It's sometimes necessary to disable USB, for example, when
// on CI or in Docker. (You should, however, enable UDP)
func WithUSB(b bool) InitOption {
	return func(a *API) {
		a.withUSB = b
	}
}

// LogWriter sets up writer for debug logs. Secrets such as PINs,
// passphrases and recovery words are never logged.
func LogWriter(w io.Writer) InitOption {
	return func(a *API) {
		a.writer = w
	}
}

// RoundTimeout bounds every wait for the device, except waiting for
// the user to press a button. Zero waits forever.
func RoundTimeout(d time.Duration) InitOption {
	return func(a *API) {
		a.timeout = d
	}
}

// AddUDPPort adds a UDP port for emulator.
// Works with t1 and t2 emulators.
func AddUDPPort(i int) InitOption {
	return func(a *API) {
		a.touples = append(a.touples, usb.PortTouple{
			Normal: i,
			Debug:  0,
		})
	}
}

// AddUDPTouple adds 2 UDP ports for emulator.
//
// Emulator can have both normal connection and debug link
func AddUDPTouple(normal int, debug int) InitOption {
	return func(a *API) {
		a.touples = append(a.touples, usb.PortTouple{
			Normal: normal,
			Debug:  debug,
		})
	}
}

// Close closes all sessions and cleans up USB connection.
// Should be used at the end of program.
func (a *API) Close() {
	a.t.Close()
}

// New creates an API. See InitOption documentation.
func New(options ...InitOption) (*API, error) {
	api := defaultAPI // copy struct
	for _, option := range options {
		option(&api)
	}
	api.logger = logs.New(api.writer)

	var t transport
	if api.bridge {
		ctx, cancel := context.WithTimeout(context.Background(), bridgeProbe)
		b, err := bridge.New(ctx, api.bridgeURL, api.logger)
		cancel()
		if err == nil {
			t = &bridgeTransport{b: b, timeout: api.timeout, log: api.logger}
		} else {
			api.logger.Logf("bridge not available: %s", err)
		}
	}

	// note - if bridge initialized, nothing else is (including UDP)
	if t == nil {
		c, err := api.initLowlevel()
		if err != nil {
			return nil, err
		}
		t = &coreTransport{c: c}
	}
	api.t = t
	return &api, nil
}

func (a *API) initLowlevel() (*core.Core, error) {
	var buses []core.Bus

	if a.withUSB {
		a.logger.Log("initing hidapi")
		h, err := usb.InitHIDAPI(a.logger)
		if err != nil {
			return nil, fmt.Errorf("hidapi: %w", err)
		}
		buses = append(buses, h)
	}

	a.logger.Logf("UDP port count - %d", len(a.touples))

	if len(a.touples) > 0 {
		e, err := usb.InitUDP(a.touples, a.logger)
		if err != nil {
			return nil, err
		}
		buses = append(buses, e)
	}

	if len(buses) == 0 {
		return nil, errors.New("no transports enabled")
	}

	a.logger.Log("creating core")
	return core.New(usb.Init(buses...), a.logger, a.timeout), nil
}
