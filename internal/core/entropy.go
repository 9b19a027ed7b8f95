package core

import (
	"context"
	"crypto/rand"
	"fmt"

	pb "github.com/trezor/trezorlib-go/trezorapi/trezorpb"
)

func randomEntropy(size int) ([]byte, error) {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// entropyDriver answers the single EntropyRequest of a device reset.
type entropyDriver struct {
	source func(size int) ([]byte, error)
	done   bool
}

func newEntropyDriver(source func(int) ([]byte, error)) *entropyDriver {
	if source == nil {
		source = randomEntropy
	}
	return &entropyDriver{source: source}
}

func (d *entropyDriver) next(ctx context.Context, msg pb.Message) (pb.Message, error) {
	req, ok := msg.(*pb.EntropyRequest)
	if !ok {
		return nil, &ProtocolError{Request: pb.MessageTypeResetDevice, Received: msg.MessageType(), Reason: "not an entropy request"}
	}
	if d.done {
		return nil, &ProtocolError{Request: pb.MessageTypeResetDevice, Received: msg.MessageType(), Reason: "entropy already sent"}
	}
	size := int(req.GetSize())
	if size <= 0 {
		return nil, &ProtocolError{Request: pb.MessageTypeResetDevice, Received: msg.MessageType(), Reason: "zero entropy size"}
	}
	buf, err := d.source(size)
	if err != nil {
		return nil, &CallbackError{Prompt: "entropy", Err: err}
	}
	if len(buf) != size {
		return nil, fmt.Errorf("%w: got %d bytes of entropy, device asked for %d", ErrDriverMismatch, len(buf), size)
	}
	d.done = true
	return &pb.EntropyAck{Entropy: buf}, nil
}
