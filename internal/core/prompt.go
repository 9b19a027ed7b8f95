package core

import (
	"context"
	"fmt"

	pb "github.com/trezor/trezorlib-go/trezorapi/trezorpb"
)

// resolve builds the acknowledgement for an interactive prompt. Secrets
// returned by providers are never logged and never reused.
func (s *Session) resolve(ctx context.Context, cl *call, msg pb.Message) (pb.Message, error) {
	switch m := msg.(type) {
	case *pb.ButtonRequest:
		s.log.Logf("button request %d", m.GetCode())
		if cl.cb.Button != nil {
			cl.cb.Button(ctx, m)
		}
		cl.awaitingButton = true
		return &pb.ButtonAck{}, nil

	case *pb.PinMatrixRequest:
		s.log.Logf("pin matrix request %d", m.GetType())
		if cl.cb.PIN == nil {
			return nil, fmt.Errorf("%w: PIN", ErrCallbackMissing)
		}
		pin, err := cl.cb.PIN(ctx, m)
		if err != nil {
			return nil, &CallbackError{Prompt: "PIN", Err: err}
		}
		return &pb.PinMatrixAck{Pin: &pin}, nil

	case *pb.PassphraseRequest:
		s.log.Log("passphrase request")
		if cl.cb.Passphrase == nil {
			return nil, fmt.Errorf("%w: passphrase", ErrCallbackMissing)
		}
		passphrase, err := cl.cb.Passphrase(ctx, m)
		if err != nil {
			return nil, &CallbackError{Prompt: "passphrase", Err: err}
		}
		return &pb.PassphraseAck{Passphrase: &passphrase}, nil

	case *pb.WordRequest:
		return cl.words.next(ctx, m)
	}
	return nil, cl.violation(msg, "not a prompt")
}
