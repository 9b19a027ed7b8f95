package trezorapi

import (
	"context"

	pb "github.com/trezor/trezorlib-go/trezorapi/trezorpb"
)

// GetAddress returns the address at path for coinName, optionally shown
// on the device screen for the user to compare.
func (s *Session) GetAddress(ctx context.Context, path []uint32, coinName string, display bool, cb *Callbacks) (string, error) {
	res, err := s.s.Call(ctx, &pb.GetAddress{
		AddressN:    path,
		CoinName:    &coinName,
		ShowDisplay: &display,
	}, cb)
	if err != nil {
		return "", err
	}
	return res.(*pb.Address).GetAddress(), nil
}

func (s *Session) GetPublicKey(ctx context.Context, req *pb.GetPublicKey, cb *Callbacks) (*pb.PublicKey, error) {
	res, err := s.s.Call(ctx, req, cb)
	if err != nil {
		return nil, err
	}
	return res.(*pb.PublicKey), nil
}

// SignMessage signs msg with the key at path and returns the signing
// address and the signature.
func (s *Session) SignMessage(ctx context.Context, path []uint32, msg []byte, coinName string, cb *Callbacks) (string, []byte, error) {
	res, err := s.s.Call(ctx, &pb.SignMessage{
		AddressN: path,
		Message:  msg,
		CoinName: &coinName,
	}, cb)
	if err != nil {
		return "", nil, err
	}
	sig := res.(*pb.MessageSignature)
	return sig.GetAddress(), sig.GetSignature(), nil
}

// VerifyMessage checks a signed message. A bad signature is a
// FailureError from the device.
func (s *Session) VerifyMessage(ctx context.Context, addr string, sig, msg []byte, coinName string, cb *Callbacks) error {
	_, err := s.s.Call(ctx, &pb.VerifyMessage{
		Address:   &addr,
		Signature: sig,
		Message:   msg,
		CoinName:  &coinName,
	}, cb)
	return err
}

func (s *Session) EncryptMessage(ctx context.Context, req *pb.EncryptMessage, cb *Callbacks) (*pb.EncryptedMessage, error) {
	res, err := s.s.Call(ctx, req, cb)
	if err != nil {
		return nil, err
	}
	return res.(*pb.EncryptedMessage), nil
}

func (s *Session) DecryptMessage(ctx context.Context, req *pb.DecryptMessage, cb *Callbacks) (*pb.DecryptedMessage, error) {
	res, err := s.s.Call(ctx, req, cb)
	if err != nil {
		return nil, err
	}
	return res.(*pb.DecryptedMessage), nil
}

// CipherKeyValue encrypts or decrypts value with a key derived from path
// and the key string. The value length must be a multiple of 16.
func (s *Session) CipherKeyValue(ctx context.Context, req *pb.CipherKeyValue, cb *Callbacks) ([]byte, error) {
	res, err := s.s.Call(ctx, req, cb)
	if err != nil {
		return nil, err
	}
	return res.(*pb.CipheredKeyValue).GetValue(), nil
}

func (s *Session) SignIdentity(ctx context.Context, req *pb.SignIdentity, cb *Callbacks) (*pb.SignedIdentity, error) {
	res, err := s.s.Call(ctx, req, cb)
	if err != nil {
		return nil, err
	}
	return res.(*pb.SignedIdentity), nil
}

func (s *Session) GetECDHSessionKey(ctx context.Context, req *pb.GetECDHSessionKey, cb *Callbacks) ([]byte, error) {
	res, err := s.s.Call(ctx, req, cb)
	if err != nil {
		return nil, err
	}
	return res.(*pb.ECDHSessionKey).GetSessionKey(), nil
}

// EstimateTxSize asks the device how big a transaction with the given
// counts would be once signed.
func (s *Session) EstimateTxSize(ctx context.Context, inputs, outputs uint32, coinName string) (uint32, error) {
	res, err := s.s.Call(ctx, &pb.EstimateTxSize{
		InputsCount:  &inputs,
		OutputsCount: &outputs,
		CoinName:     &coinName,
	}, nil)
	if err != nil {
		return 0, err
	}
	return res.(*pb.TxSize).GetTxSize(), nil
}

// SignTx signs tx. The device asks for inputs, outputs and previous
// transactions one piece at a time; they are all taken from tx, which
// must hold every previous transaction an input spends.
func (s *Session) SignTx(ctx context.Context, req *pb.SignTx, tx *TxData, cb *Callbacks) (*SignedTx, error) {
	return s.s.SignTx(ctx, req, tx, cb)
}

// SimpleSignTx sends a small transaction in one message. Requests over
// MaxSimpleSignTxSize fail with ErrSimpleSignTxTooLarge before anything
// is sent; use SignTx for those.
func (s *Session) SimpleSignTx(ctx context.Context, req *pb.SimpleSignTx, cb *Callbacks) (*SignedTx, error) {
	return s.s.SimpleSignTx(ctx, req, cb)
}
