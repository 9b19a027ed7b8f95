package trezorapi

import (
	"context"
	"time"

	"github.com/trezor/trezorlib-go/internal/bridge"
	"github.com/trezor/trezorlib-go/internal/core"
	"github.com/trezor/trezorlib-go/internal/logs"
	types "github.com/trezor/trezorlib-go/trezorapi/trezortypes"
)

// transport is either a running trezord or the buses opened directly.
// Both hand out sessions driven by the same engine.
type transport interface {
	Enumerate(ctx context.Context) ([]types.EnumerateEntry, error)
	Listen(
		ctx context.Context,
		entries []types.EnumerateEntry,
	) ([]types.EnumerateEntry, error)
	Acquire(
		ctx context.Context,
		path string,
		prev string,
		debugLink bool,
	) (*core.Session, error)
	Release(
		ctx context.Context,
		session string,
		debugLink bool,
	) error
	Close()
}

type coreTransport struct {
	c *core.Core
}

func (t *coreTransport) Enumerate(ctx context.Context) ([]types.EnumerateEntry, error) {
	return t.c.Enumerate()
}

func (t *coreTransport) Listen(ctx context.Context, entries []types.EnumerateEntry) ([]types.EnumerateEntry, error) {
	return t.c.Listen(ctx, entries)
}

func (t *coreTransport) Acquire(ctx context.Context, path, prev string, debugLink bool) (*core.Session, error) {
	return t.c.Acquire(path, prev, debugLink)
}

func (t *coreTransport) Release(ctx context.Context, session string, debugLink bool) error {
	return t.c.Release(session, debugLink)
}

func (t *coreTransport) Close() {
	t.c.Close()
}

type bridgeTransport struct {
	b       *bridge.Bridge
	timeout time.Duration
	log     *logs.Logger
}

func (t *bridgeTransport) Enumerate(ctx context.Context) ([]types.EnumerateEntry, error) {
	return t.b.Enumerate(ctx)
}

func (t *bridgeTransport) Listen(ctx context.Context, entries []types.EnumerateEntry) ([]types.EnumerateEntry, error) {
	return t.b.Listen(ctx, entries)
}

func (t *bridgeTransport) Acquire(ctx context.Context, path, prev string, debugLink bool) (*core.Session, error) {
	id, err := t.b.Acquire(ctx, path, prev, debugLink)
	if err != nil {
		return nil, err
	}
	return core.NewSession(
		t.b.Channel(id, debugLink),
		core.Named(id, path, debugLink),
		core.RoundTimeout(t.timeout),
		core.WithLogger(t.log),
	), nil
}

func (t *bridgeTransport) Release(ctx context.Context, session string, debugLink bool) error {
	return t.b.Release(ctx, session, debugLink)
}

// Close does nothing; sessions acquired from trezord are released by
// their own Close.
func (t *bridgeTransport) Close() {}
