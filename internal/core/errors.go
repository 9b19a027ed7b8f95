package core

import (
	"errors"
	"fmt"

	"github.com/trezor/trezorlib-go/trezorapi/trezorpb"
)

var (
	// ErrDeviceFailure matches every *FailureError.
	ErrDeviceFailure = errors.New("device failure")
	// ErrProtocolViolation matches every *ProtocolError.
	ErrProtocolViolation = errors.New("protocol violation")
	// ErrTransport matches every *TransportError. The device may or may not
	// have acted on the last message; do not blindly retry signing.
	ErrTransport = errors.New("transport failure")
	ErrTimeout   = errors.New("device did not answer in time")

	ErrCallbackMissing  = errors.New("missing interaction handler")
	ErrCallbackRejected = errors.New("interaction handler declined")

	ErrCancelled = errors.New("call cancelled")

	// ErrSessionBroken is returned by every call on a session whose
	// channel was left in an unknown state by an earlier failure.
	ErrSessionBroken = errors.New("session broken, acquire the device again")
	ErrSessionClosed = errors.New("session closed")

	// ErrDriverMismatch means the host built a reply that does not have the
	// shape the device asked for. Nothing was sent.
	ErrDriverMismatch = errors.New("reply does not match device request")

	ErrUnsupportedRequest = errors.New("no response type known for request")

	ErrWrongPrevSession = errors.New("wrong previous session")
	ErrSessionNotFound  = errors.New("session not found")
)

// FailureError is a Failure message sent by the device, surfaced verbatim.
type FailureError struct {
	Code    trezorpb.FailureType
	Message string
}

func failureError(f *trezorpb.Failure) *FailureError {
	return &FailureError{Code: f.GetCode(), Message: f.GetMessage()}
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("device failure %s: %s", e.Code, e.Message)
}

func (e *FailureError) Is(target error) bool {
	return target == ErrDeviceFailure
}

// ProtocolError is a message the device sent that is not valid for the
// current state of the call.
type ProtocolError struct {
	Request  trezorpb.MessageType
	Received trezorpb.MessageType
	Reason   string
}

func (e *ProtocolError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("protocol violation: %s during %s: %s", e.Received, e.Request, e.Reason)
	}
	return fmt.Sprintf("protocol violation: unexpected %s during %s", e.Received, e.Request)
}

func (e *ProtocolError) Is(target error) bool {
	return target == ErrProtocolViolation
}

// TransportError wraps a channel I/O error or a round timeout.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure on %s: %s", e.Op, e.Err)
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// CallbackError is returned when an interaction handler returned an error.
// The device was sent a Cancel.
type CallbackError struct {
	Prompt string
	Err    error
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("%s handler: %s", e.Prompt, e.Err)
}

func (e *CallbackError) Is(target error) bool {
	return target == ErrCallbackRejected
}

func (e *CallbackError) Unwrap() error {
	return e.Err
}

// CancelledError is returned when the call was cancelled but the device had
// already finished; Response is the terminal message it sent.
type CancelledError struct {
	Response trezorpb.Message
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("call cancelled after device answered %s", trezorpb.Type(e.Response))
}

func (e *CancelledError) Is(target error) bool {
	return target == ErrCancelled
}
