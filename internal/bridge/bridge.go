// Package bridge talks to a running trezord over its local HTTP API.
// Sessions acquired there are used through the same session engine as
// directly connected devices.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/trezor/trezorlib-go/internal/logs"
	"github.com/trezor/trezorlib-go/internal/message"
	"github.com/trezor/trezorlib-go/trezorapi/trezortypes"
)

const DefaultURL = "http://127.0.0.1:21325"

// origin trezord accepts without a browser prompt
const origin = "https://golang.trezor.io"

type Bridge struct {
	url     string
	client  *http.Client
	log     *logs.Logger
	Version string
}

// StatusError is a non-200 answer; trezord puts the reason in the body.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bridge answered %d: %s", e.Code, e.Message)
}

func (b *Bridge) post(
	ctx context.Context,
	url string,
	body io.Reader,
	decode func(r io.Reader) error,
) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.url+url, body)
	if err != nil {
		return err
	}
	req.Header.Add("Origin", origin)

	r, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			b.log.Logf("closing body: %s", err)
		}
	}()
	if r.StatusCode != http.StatusOK {
		var e struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(r.Body).Decode(&e) != nil {
			e.Error = http.StatusText(r.StatusCode)
		}
		return &StatusError{Code: r.StatusCode, Message: e.Error}
	}

	if decode == nil {
		return nil
	}
	return decode(r.Body)
}

// New connects to trezord at url and checks it speaks the version 2 API.
func New(ctx context.Context, url string, log *logs.Logger) (*Bridge, error) {
	b := &Bridge{
		url:    strings.TrimSuffix(url, "/"),
		client: &http.Client{},
		log:    log,
	}

	var version trezortypes.VersionInfo
	err := b.post(ctx, "/", nil, func(d io.Reader) error {
		return json.NewDecoder(d).Decode(&version)
	})
	if err != nil {
		return nil, err
	}

	if strings.Split(version.Version, ".")[0] != "2" {
		return nil, fmt.Errorf("old version of bridge %s", version.Version)
	}
	b.Version = version.Version
	log.Logf("using bridge %s at %s", b.Version, b.url)
	return b, nil
}

func markBridge(entries []trezortypes.EnumerateEntry) {
	for i := range entries {
		entries[i].Type = trezortypes.TypeBridgeTransport
	}
}

func (b *Bridge) Enumerate(ctx context.Context) ([]trezortypes.EnumerateEntry, error) {
	var entries []trezortypes.EnumerateEntry
	err := b.post(ctx, "/enumerate", nil, func(d io.Reader) error {
		return json.NewDecoder(d).Decode(&entries)
	})
	if err != nil {
		return nil, err
	}
	markBridge(entries)
	return entries, nil
}

// Listen returns once the device list differs from entries.
func (b *Bridge) Listen(ctx context.Context, entries []trezortypes.EnumerateEntry) ([]trezortypes.EnumerateEntry, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(entries); err != nil {
		return nil, err
	}

	var res []trezortypes.EnumerateEntry
	err := b.post(ctx, "/listen", &buf, func(d io.Reader) error {
		return json.NewDecoder(d).Decode(&res)
	})
	if err != nil {
		return nil, err
	}
	markBridge(res)
	return res, nil
}

func (b *Bridge) Acquire(ctx context.Context, path, prev string, debug bool) (string, error) {
	if prev == "" {
		prev = "null"
	}
	url := fmt.Sprintf("/acquire/%s/%s", path, prev)
	if debug {
		url = "/debug" + url
	}

	var session trezortypes.SessionInfo
	err := b.post(ctx, url, nil, func(d io.Reader) error {
		return json.NewDecoder(d).Decode(&session)
	})
	if err != nil {
		return "", err
	}
	return session.Session, nil
}

func (b *Bridge) Release(ctx context.Context, session string, debug bool) error {
	url := "/release/" + session
	if debug {
		url = "/debug" + url
	}
	return b.post(ctx, url, nil, nil)
}

// Channel returns the message pipe of an acquired session. Closing it
// releases the session.
func (b *Bridge) Channel(session string, debug bool) *Channel {
	ctx, cancel := context.WithCancel(context.Background())
	return &Channel{
		b:       b,
		session: session,
		debug:   debug,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Channel sends each message with /post and reads each one with /read,
// so prompts can be answered one message at a time.
type Channel struct {
	b       *Bridge
	session string
	debug   bool

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
	closeErr  error
}

func (c *Channel) url(op string) string {
	url := fmt.Sprintf("/%s/%s", op, c.session)
	if c.debug {
		url = "/debug" + url
	}
	return url
}

func (c *Channel) WriteMessage(m *trezortypes.Message) error {
	body, err := message.ToBridge(m, c.b.log)
	if err != nil {
		return err
	}
	return c.b.post(c.ctx, c.url("post"), bytes.NewReader(body), nil)
}

func (c *Channel) ReadMessage() (*trezortypes.Message, error) {
	var res *trezortypes.Message
	err := c.b.post(c.ctx, c.url("read"), nil, func(d io.Reader) error {
		body, err := io.ReadAll(d)
		if err != nil {
			return err
		}
		res, err = message.FromBridge(bytes.TrimSpace(body), c.b.log)
		return err
	})
	return res, err
}

// releaseTimeout bounds the release request sent on Close.
const releaseTimeout = 5 * time.Second

func (c *Channel) Close() error {
	c.closeOnce.Do(func() {
		c.cancel()
		ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()
		c.closeErr = c.b.Release(ctx, c.session, c.debug)
	})
	return c.closeErr
}
