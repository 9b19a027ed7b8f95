package trezorapi

import (
	"context"

	pb "github.com/trezor/trezorlib-go/trezorapi/trezorpb"
)

// ethereumInitialChunk is how much of the data field goes into
// EthereumSignTx itself; the device asks for the rest.
const ethereumInitialChunk = 1024

// EthereumGetAddress returns the 20-byte address at path.
func (s *Session) EthereumGetAddress(ctx context.Context, path []uint32, display bool, cb *Callbacks) ([]byte, error) {
	res, err := s.s.Call(ctx, &pb.EthereumGetAddress{
		AddressN:    path,
		ShowDisplay: &display,
	}, cb)
	if err != nil {
		return nil, err
	}
	return res.(*pb.EthereumAddress).GetAddress(), nil
}

// EthereumSignTx signs a transaction whose data field is data. req must
// not set the data fields; they are filled in here and the remainder is
// streamed as the device asks for it.
//
// The returned request carries the signature (V, R, S).
func (s *Session) EthereumSignTx(ctx context.Context, req *pb.EthereumSignTx, data []byte, cb *Callbacks) (*pb.EthereumTxRequest, error) {
	r := *req
	initial := data
	if len(initial) > ethereumInitialChunk {
		initial = initial[:ethereumInitialChunk]
	}
	r.DataInitialChunk = initial
	if len(data) > 0 {
		r.DataLength = pb.Uint32(uint32(len(data)))
	}

	var c Callbacks
	if cb != nil {
		c = *cb
	}
	c.Payload = data

	res, err := s.s.Call(ctx, &r, &c)
	if err != nil {
		return nil, err
	}
	return res.(*pb.EthereumTxRequest), nil
}

func (s *Session) EthereumSignMessage(ctx context.Context, path []uint32, msg []byte, cb *Callbacks) (*pb.EthereumMessageSignature, error) {
	res, err := s.s.Call(ctx, &pb.EthereumSignMessage{
		AddressN: path,
		Message:  msg,
	}, cb)
	if err != nil {
		return nil, err
	}
	return res.(*pb.EthereumMessageSignature), nil
}

func (s *Session) EthereumVerifyMessage(ctx context.Context, addr, sig, msg []byte, cb *Callbacks) error {
	_, err := s.s.Call(ctx, &pb.EthereumVerifyMessage{
		Address:   addr,
		Signature: sig,
		Message:   msg,
	}, cb)
	return err
}
