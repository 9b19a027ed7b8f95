package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/trezor/trezorlib-go/internal/logs"
	"github.com/trezor/trezorlib-go/internal/message"
	"github.com/trezor/trezorlib-go/trezorapi"
	"github.com/trezor/trezorlib-go/trezorapi/trezorpb"
	"github.com/trezor/trezorlib-go/trezorapi/trezorpb/trezorpbcall"
	"github.com/trezor/trezorlib-go/trezorapi/trezortypes"
)

// This package serves the gateway API: a few whole device operations
// over HTTP. Each request acquires the device, runs one call through
// the session engine and releases it again. No PIN, passphrase or word
// providers are attached, so a device that asks for one fails the
// request with 409 instead of waiting.

// Devices is the part of trezorapi.API the gateway needs.
type Devices interface {
	Enumerate(ctx context.Context) ([]trezortypes.EnumerateEntry, error)
	Listen(ctx context.Context, entries []trezortypes.EnumerateEntry) ([]trezortypes.EnumerateEntry, error)
	AcquireEntry(ctx context.Context, e trezortypes.EnumerateEntry, debugLink bool) (*trezorapi.Session, error)
}

var ErrNoDevice = errors.New("device not found")

type api struct {
	devices Devices
	version string
	logger  *logs.Logger
}

func ServeAPI(r *mux.Router, d Devices, v string, l *logs.Logger) {
	api := &api{
		devices: d,
		version: v,
		logger:  l,
	}
	r.HandleFunc("/", api.Info)
	r.HandleFunc("/listen", api.Listen)
	r.HandleFunc("/enumerate", api.Enumerate)
	r.HandleFunc("/features/{path}", api.Features)
	r.HandleFunc("/address/{path}", api.Address)
	r.HandleFunc("/ping/{path}", api.Ping)
	r.HandleFunc("/call/{path}", api.Call)
	r.Use(CORS(corsValidator()))
}

func (a *api) Info(w http.ResponseWriter, r *http.Request) {
	a.respond(w, trezortypes.VersionInfo{Version: a.version})
}

func (a *api) Listen(w http.ResponseWriter, r *http.Request) {
	var entries []trezortypes.EnumerateEntry

	err := json.NewDecoder(r.Body).Decode(&entries)
	defer func() {
		if errClose := r.Body.Close(); errClose != nil {
			a.logger.Logf("error on request close: %s", errClose)
		}
	}()
	if err != nil {
		a.respondError(w, err)
		return
	}

	res, err := a.devices.Listen(r.Context(), entries)
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respond(w, res)
}

func (a *api) Enumerate(w http.ResponseWriter, r *http.Request) {
	e, err := a.devices.Enumerate(r.Context())
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respond(w, e)
}

// withSession acquires the device at path for the length of fn.
func (a *api) withSession(ctx context.Context, path string, fn func(s *trezorapi.Session) error) error {
	entries, err := a.devices.Enumerate(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.Path != path {
			continue
		}
		s, err := a.devices.AcquireEntry(ctx, e, false)
		if err != nil {
			return err
		}
		defer func() {
			if err := s.Close(); err != nil {
				a.logger.Logf("releasing %s: %s", path, err)
			}
		}()
		return fn(s)
	}
	return ErrNoDevice
}

// buttons logs confirmations the device asks for; the user answers on it.
func (a *api) buttons() *trezorapi.Callbacks {
	return &trezorapi.Callbacks{
		Button: func(ctx context.Context, req *trezorpb.ButtonRequest) {
			a.logger.Logf("waiting for button %d", req.GetCode())
		},
	}
}

func (a *api) Features(w http.ResponseWriter, r *http.Request) {
	var f *trezorpb.Features
	err := a.withSession(r.Context(), mux.Vars(r)["path"], func(s *trezorapi.Session) error {
		var err error
		f, err = s.GetFeatures(r.Context())
		return err
	})
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respond(w, f)
}

type addressResponse struct {
	Address string `json:"address"`
	Path    string `json:"path"`
}

// Address takes the derivation path, the coin and whether to show the
// address on the device from the query: ?derivation=m/44'/0'/0'/0/0&coin=Bitcoin&show=1
func (a *api) Address(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	derivation := q.Get("derivation")
	if derivation == "" {
		derivation = "m/44'/0'/0'/0/0"
	}
	path, err := trezorapi.ParseDerivationPath(derivation)
	if err != nil {
		a.respondError(w, err)
		return
	}
	coin := q.Get("coin")
	if coin == "" {
		coin = "Bitcoin"
	}
	show := q.Get("show") == "1" || q.Get("show") == "true"

	var address string
	err = a.withSession(r.Context(), mux.Vars(r)["path"], func(s *trezorapi.Session) error {
		var err error
		address, err = s.GetAddress(r.Context(), path, coin, show, a.buttons())
		return err
	})
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respond(w, addressResponse{Address: address, Path: path.String()})
}

type pingResponse struct {
	Message string `json:"message"`
}

// Ping echoes ?message= through the device; ?button=1 asks for a
// confirmation first.
func (a *api) Ping(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	button := q.Get("button") == "1" || q.Get("button") == "true"

	var res string
	err := a.withSession(r.Context(), mux.Vars(r)["path"], func(s *trezorapi.Session) error {
		var err error
		res, err = s.Ping(r.Context(), q.Get("message"), button, false, false, a.buttons())
		return err
	})
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respond(w, pingResponse{Message: res})
}

// Call runs one raw message, hex encoded the way bridge does it, through
// the session engine and answers with the final message in the same form.
func (a *api) Call(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 2*message.MaxSize+64))
	defer func() {
		if errClose := r.Body.Close(); errClose != nil {
			a.logger.Logf("error on request close: %s", errClose)
		}
	}()
	if err != nil {
		a.respondError(w, err)
		return
	}
	req, err := message.FromBridge(bytes.TrimSpace(body), a.logger)
	if err != nil {
		a.respondError(w, err)
		return
	}

	var res *trezortypes.Message
	err = a.withSession(r.Context(), mux.Vars(r)["path"], func(s *trezorapi.Session) error {
		var err error
		res, err = trezorpbcall.Call(r.Context(), s, req, a.buttons())
		return err
	})
	if err != nil {
		a.respondError(w, err)
		return
	}
	out, err := message.ToBridge(res, a.logger)
	if err != nil {
		a.respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write(out); err != nil {
		a.logger.Logf("error while writing response: %s", err)
	}
}

func (a *api) respond(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Logf("error while encoding response: %s", err)
	}
}

// statusCode maps call errors to HTTP answers.
func statusCode(err error) int {
	switch {
	case errors.Is(err, ErrNoDevice):
		return http.StatusNotFound
	case errors.Is(err, trezorapi.ErrCallbackMissing):
		return http.StatusConflict
	case errors.Is(err, trezorapi.ErrDeviceFailure):
		return http.StatusUnprocessableEntity
	case errors.Is(err, trezorapi.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, trezorapi.ErrTransport), errors.Is(err, trezorapi.ErrProtocolViolation):
		return http.StatusBadGateway
	case errors.Is(err, trezorapi.ErrCancelled):
		return http.StatusServiceUnavailable
	}
	return http.StatusBadRequest
}

func (a *api) respondError(w http.ResponseWriter, err error) {
	type jsonError struct {
		Error string `json:"error"`
	}
	code := statusCode(err)
	a.logger.Logf("returning %d: %s", code, err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	// if even the encoder of the error errors, just log the error
	err = json.NewEncoder(w).Encode(jsonError{
		Error: err.Error(),
	})
	if err != nil {
		a.logger.Logf("error while writing error: %s", err)
	}
}
