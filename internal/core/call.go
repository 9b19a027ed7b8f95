package core

import (
	"context"

	pb "github.com/trezor/trezorlib-go/trezorapi/trezorpb"
)

// Callbacks supplies everything a call may need from the host while the
// device drives the conversation. Any provider may be nil; the call fails
// with ErrCallbackMissing only if the device actually asks for it.
type Callbacks struct {
	// Button is told about every ButtonRequest before it is acknowledged.
	// The decision itself is made on the device.
	Button func(ctx context.Context, req *pb.ButtonRequest)

	// PIN returns the matrix positions the user picked. It is asked again
	// for every PinMatrixRequest.
	PIN func(ctx context.Context, req *pb.PinMatrixRequest) (string, error)

	// Passphrase may return an empty string.
	Passphrase func(ctx context.Context, req *pb.PassphraseRequest) (string, error)

	// Word returns one recovery word; step counts WordRequests in this call
	// from 0. The device picks which word it means.
	Word func(ctx context.Context, step int, req *pb.WordRequest) (string, error)

	// Entropy returns exactly size random bytes. Defaults to crypto/rand.
	Entropy func(size int) ([]byte, error)

	// Tx holds the transaction streamed to SignTx.
	Tx *TxData

	// Payload is streamed to length-addressed requests: the whole data
	// field of EthereumSignTx or the firmware image after FirmwareErase.
	Payload []byte
}

// driver answers streaming requests for one call.
type driver interface {
	next(ctx context.Context, msg pb.Message) (pb.Message, error)
}

// call is the state of one logical operation. It lives from the first
// send to the terminal outcome and never outlives Session.Call.
type call struct {
	req    pb.Message
	kind   pb.MessageType
	cb     *Callbacks
	driver driver
	words  *recoveryDriver

	// set once Cancel has been sent for this call
	cancelled bool
	skipped   int

	// awaitingButton makes the next receive unbounded
	awaitingButton bool
}

func newCall(req pb.Message, cb *Callbacks) *call {
	if cb == nil {
		cb = &Callbacks{}
	}
	return &call{
		req:    req,
		kind:   req.MessageType(),
		cb:     cb,
		driver: bindDriver(req, cb),
		words:  newRecoveryDriver(cb.Word),
	}
}

func (c *call) violation(msg pb.Message, reason string) error {
	return &ProtocolError{
		Request:  c.kind,
		Received: msg.MessageType(),
		Reason:   reason,
	}
}
