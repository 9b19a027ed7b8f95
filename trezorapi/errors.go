package trezorapi

import (
	"github.com/trezor/trezorlib-go/internal/core"
)

// Errors returned by calls. Match them with errors.Is; the typed errors
// below carry the details and can be taken apart with errors.As.
var (
	ErrDeviceFailure     = core.ErrDeviceFailure
	ErrProtocolViolation = core.ErrProtocolViolation
	ErrTransport         = core.ErrTransport
	ErrTimeout           = core.ErrTimeout
	ErrCallbackMissing   = core.ErrCallbackMissing
	ErrCallbackRejected  = core.ErrCallbackRejected
	ErrCancelled         = core.ErrCancelled
	ErrSessionBroken     = core.ErrSessionBroken
	ErrSessionClosed     = core.ErrSessionClosed
	ErrDriverMismatch    = core.ErrDriverMismatch

	ErrUnsupportedRequest   = core.ErrUnsupportedRequest
	ErrSimpleSignTxTooLarge = core.ErrSimpleSignTxTooLarge
	ErrWrongPrevSession     = core.ErrWrongPrevSession
	ErrSessionNotFound      = core.ErrSessionNotFound
)

type (
	FailureError   = core.FailureError
	ProtocolError  = core.ProtocolError
	TransportError = core.TransportError
	CallbackError  = core.CallbackError
	CancelledError = core.CancelledError
)

type (
	// Callbacks answers what the device asks the host during a call.
	Callbacks = core.Callbacks
	TxData    = core.TxData
	SignedTx  = core.SignedTx
)
