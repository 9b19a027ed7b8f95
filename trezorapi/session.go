package trezorapi

import (
	"context"

	"github.com/trezor/trezorlib-go/internal/core"
	pb "github.com/trezor/trezorlib-go/trezorapi/trezorpb"
)

// Session is an acquired device. Calls on one session run one at a time;
// a call started while another runs waits for it.
//
// After a transport error or a timeout the session is broken and every
// further call fails with ErrSessionBroken; close it and acquire again.
type Session struct {
	s *core.Session
}

// ID is the session ID as reported by Enumerate.
func (s *Session) ID() string { return s.s.ID() }

// Path is the device path the session was acquired on.
func (s *Session) Path() string { return s.s.Path() }

// Close releases the device.
func (s *Session) Close() error {
	return s.s.Close()
}

// Call sends req and answers everything the device asks until it sends
// the message that completes req, which is returned. Prompts are
// answered with cb, which may be nil if the call needs no interaction.
//
// Cancelling ctx sends Cancel to the device; the call then returns an
// error matching ErrCancelled.
func (s *Session) Call(ctx context.Context, req pb.Message, cb *Callbacks) (pb.Message, error) {
	return s.s.Call(ctx, req, cb)
}

// Post writes msg and does not wait for an answer. It is meant for debug
// link messages such as DebugLinkDecision, which have none.
func (s *Session) Post(ctx context.Context, msg pb.Message) error {
	return s.s.Post(ctx, msg)
}

// Read waits for a single message without sending anything.
func (s *Session) Read(ctx context.Context) (pb.Message, error) {
	return s.s.Read(ctx)
}
