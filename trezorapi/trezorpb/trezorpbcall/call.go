// Package trezorpbcall are helper procedures for calling with messages
// that are still encoded, as they come from other programs speaking the
// wire format (for example a proxy in front of a session).
//
// See example in the main github.com/trezor/trezorlib-go/trezorapi/
package trezorpbcall

import (
	"context"

	"github.com/trezor/trezorlib-go/trezorapi"
	"github.com/trezor/trezorlib-go/trezorapi/trezorpb/marshal"
	"github.com/trezor/trezorlib-go/trezorapi/trezortypes"
)

// Call is similar to Session.Call, but in addition to that,
// it decodes the request and encodes the response back.
func Call(
	ctx context.Context,
	s *trezorapi.Session,
	message *trezortypes.Message,
	cb *trezorapi.Callbacks,
) (*trezortypes.Message, error) {
	pbMessage, err := marshal.Unmarshal(message)
	if err != nil {
		return nil, err
	}

	res, err := s.Call(ctx, pbMessage, cb)
	if err != nil {
		return nil, err
	}
	return marshal.Marshal(res)
}

// Post is similar to Session.Post, but in addition to that,
// it decodes the message first.
func Post(
	ctx context.Context,
	s *trezorapi.Session,
	message *trezortypes.Message,
) error {
	pbMessage, err := marshal.Unmarshal(message)
	if err != nil {
		return err
	}

	return s.Post(ctx, pbMessage)
}

// Read is similar to Session.Read, but in addition to that,
// it encodes what was read.
func Read(
	ctx context.Context,
	s *trezorapi.Session,
) (*trezortypes.Message, error) {
	res, err := s.Read(ctx)
	if err != nil {
		return nil, err
	}
	return marshal.Marshal(res)
}
