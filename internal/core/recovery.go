package core

import (
	"context"
	"fmt"

	pb "github.com/trezor/trezorlib-go/trezorapi/trezorpb"
)

// recoveryDriver answers WordRequests for as long as the device asks.
// The device decides how many words and in which order.
type recoveryDriver struct {
	word func(ctx context.Context, step int, req *pb.WordRequest) (string, error)
	step int
}

func newRecoveryDriver(word func(context.Context, int, *pb.WordRequest) (string, error)) *recoveryDriver {
	return &recoveryDriver{word: word}
}

func (d *recoveryDriver) next(ctx context.Context, req *pb.WordRequest) (pb.Message, error) {
	if d.word == nil {
		return nil, fmt.Errorf("%w: recovery word", ErrCallbackMissing)
	}
	step := d.step
	d.step++
	w, err := d.word(ctx, step, req)
	if err != nil {
		return nil, &CallbackError{Prompt: "word", Err: err}
	}
	return &pb.WordAck{Word: &w}, nil
}
