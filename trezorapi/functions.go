package trezorapi

import (
	"context"

	types "github.com/trezor/trezorlib-go/trezorapi/trezortypes"
)

// Listen waits for change in connection.
//
// The function stops execution until either some device is connected/disconnected,
// or it times out after a while on its own. So if this returns something, it is NOT
// guaranteed that there was change, and you should compare result to previousEntries.
//
// If a device has different Path, it is guaranteed that it is a different connection
// (Paths are always unique per connection)
//
// Note - what also registers as change is change of session.
func (a *API) Listen(ctx context.Context, previousEntries []types.EnumerateEntry) ([]types.EnumerateEntry, error) {
	return a.t.Listen(ctx, previousEntries)
}

// Enumerate returns all connected devices.
//
// Path is unique per "connection" - that is, physically disconnected and reconnected
// device has a different Path. However, when acquiring and releasing, Path stays the same.
func (a *API) Enumerate(ctx context.Context) ([]types.EnumerateEntry, error) {
	return a.t.Enumerate(ctx)
}

// Acquire takes the device at path and opens a session on it.
// previousSession must be the session Enumerate reports for the device,
// or empty if it has none; a stale value fails with ErrWrongPrevSession.
//
// If bridge is used as a backend, this prevents multiple apps for grabbing
// device simultaneously.
func (a *API) Acquire(
	ctx context.Context,
	path string,
	previousSession string,
	debugLink bool,
) (*Session, error) {
	s, err := a.t.Acquire(ctx, path, previousSession, debugLink)
	if err != nil {
		return nil, err
	}
	return &Session{s: s}, nil
}

// AcquireEntry is Acquire for an entry returned by Enumerate.
func (a *API) AcquireEntry(ctx context.Context, e types.EnumerateEntry, debugLink bool) (*Session, error) {
	prev := ""
	if e.Session != nil {
		prev = *e.Session
	}
	return a.Acquire(ctx, e.Path, prev, debugLink)
}

// Release frees a session by its ID, other users can now use the device.
// Sessions held by this program are better released with Session.Close.
func (a *API) Release(ctx context.Context, session string, debugLink bool) error {
	return a.t.Release(ctx, session, debugLink)
}
