package trezorapi

import (
	"context"

	pb "github.com/trezor/trezorlib-go/trezorapi/trezorpb"
)

// Initialize resets the device state machine and returns its features.
func (s *Session) Initialize(ctx context.Context) (*pb.Features, error) {
	res, err := s.s.Call(ctx, &pb.Initialize{}, nil)
	if err != nil {
		return nil, err
	}
	return res.(*pb.Features), nil
}

// GetFeatures returns the features without resetting anything.
func (s *Session) GetFeatures(ctx context.Context) (*pb.Features, error) {
	res, err := s.s.Call(ctx, &pb.GetFeatures{}, nil)
	if err != nil {
		return nil, err
	}
	return res.(*pb.Features), nil
}

// Ping the device. The message comes back in the Success answer.
// Optionally require a button press, PIN or passphrase first.
func (s *Session) Ping(ctx context.Context, msg string, button, pin, passphrase bool, cb *Callbacks) (string, error) {
	res, err := s.s.Call(ctx, &pb.Ping{
		Message:              &msg,
		ButtonProtection:     &button,
		PinProtection:        &pin,
		PassphraseProtection: &passphrase,
	}, cb)
	if err != nil {
		return "", err
	}
	return res.(*pb.Success).GetMessage(), nil
}

// ClearSession forgets the cached PIN and passphrase.
func (s *Session) ClearSession(ctx context.Context) error {
	_, err := s.s.Call(ctx, &pb.ClearSession{}, nil)
	return err
}

// ApplySettings changes what req sets. The device asks for confirmation.
func (s *Session) ApplySettings(ctx context.Context, req *pb.ApplySettings, cb *Callbacks) error {
	_, err := s.s.Call(ctx, req, cb)
	return err
}

// SetLabel is ApplySettings with only the label.
func (s *Session) SetLabel(ctx context.Context, label string, cb *Callbacks) error {
	return s.ApplySettings(ctx, &pb.ApplySettings{Label: &label}, cb)
}

func (s *Session) ApplyFlags(ctx context.Context, flags uint32, cb *Callbacks) error {
	_, err := s.s.Call(ctx, &pb.ApplyFlags{Flags: &flags}, cb)
	return err
}

// ChangePin sets or changes the PIN, or removes it if remove is set.
// The old PIN and the new one twice are asked through cb.PIN.
func (s *Session) ChangePin(ctx context.Context, remove bool, cb *Callbacks) error {
	_, err := s.s.Call(ctx, &pb.ChangePin{Remove: &remove}, cb)
	return err
}

// WipeDevice erases the seed and all settings.
func (s *Session) WipeDevice(ctx context.Context, cb *Callbacks) error {
	_, err := s.s.Call(ctx, &pb.WipeDevice{}, cb)
	return err
}

// GetEntropy returns size bytes from the device random generator.
func (s *Session) GetEntropy(ctx context.Context, size uint32, cb *Callbacks) ([]byte, error) {
	res, err := s.s.Call(ctx, &pb.GetEntropy{Size: &size}, cb)
	if err != nil {
		return nil, err
	}
	return res.(*pb.Entropy).Entropy, nil
}

func (s *Session) SetU2FCounter(ctx context.Context, counter uint32, cb *Callbacks) error {
	_, err := s.s.Call(ctx, &pb.SetU2FCounter{U2FCounter: &counter}, cb)
	return err
}

// ResetDevice creates a new seed. The device asks for host entropy once;
// it comes from cb.Entropy, or crypto/rand if that is nil.
func (s *Session) ResetDevice(ctx context.Context, req *pb.ResetDevice, cb *Callbacks) error {
	_, err := s.s.Call(ctx, req, cb)
	return err
}

// RecoveryDevice restores a seed. Words are asked through cb.Word in
// the order the device wants them.
func (s *Session) RecoveryDevice(ctx context.Context, req *pb.RecoveryDevice, cb *Callbacks) error {
	_, err := s.s.Call(ctx, req, cb)
	return err
}

// LoadDevice loads a seed directly. Only debug firmware accepts it.
func (s *Session) LoadDevice(ctx context.Context, req *pb.LoadDevice, cb *Callbacks) error {
	_, err := s.s.Call(ctx, req, cb)
	return err
}

// BackupDevice shows the seed of a device reset with SkipBackup.
func (s *Session) BackupDevice(ctx context.Context, cb *Callbacks) error {
	_, err := s.s.Call(ctx, &pb.BackupDevice{}, cb)
	return err
}

// SelfTest runs the bootloader self test.
func (s *Session) SelfTest(ctx context.Context, payload []byte, cb *Callbacks) error {
	_, err := s.s.Call(ctx, &pb.SelfTest{Payload: payload}, cb)
	return err
}
