package trezorapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	pb "github.com/trezor/trezorlib-go/trezorapi/trezorpb"
)

var (
	ErrNotInBootloader = errors.New("device is not in bootloader mode")
	ErrBadFirmware     = errors.New("not a firmware image for this device")
)

var (
	magicT1 = []byte("TRZR")
	magicT2 = []byte("TRZV")
)

// UpdateFirmware installs image on a device in bootloader mode.
//
// T1 bootloaders erase and then take the whole image in one message;
// later models ask for it chunk by chunk after the erase.
func (s *Session) UpdateFirmware(ctx context.Context, image []byte, cb *Callbacks) error {
	f, err := s.Initialize(ctx)
	if err != nil {
		return err
	}
	if !f.GetBootloaderMode() {
		return ErrNotInBootloader
	}

	t1 := f.GetMajorVersion() == 1
	magic := magicT2
	if t1 {
		magic = magicT1
	}
	if !bytes.HasPrefix(image, magic) {
		return fmt.Errorf("%w: expected %q header", ErrBadFirmware, magic)
	}

	var c Callbacks
	if cb != nil {
		c = *cb
	}
	c.Payload = image

	length := uint32(len(image))
	if _, err := s.s.Call(ctx, &pb.FirmwareErase{Length: &length}, &c); err != nil {
		return err
	}
	if !t1 {
		return nil
	}
	_, err = s.s.Call(ctx, &pb.FirmwareUpload{Payload: image}, cb)
	return err
}
