// Package usb finds devices and opens raw report pipes to them: USB HID
// through hidapi and emulators over UDP. It implements core.Bus.
package usb

import (
	"errors"
	"fmt"

	"github.com/trezor/trezorlib-go/internal/core"
	"github.com/trezor/trezorlib-go/trezorapi/trezortypes"
)

var (
	ErrNotFound = fmt.Errorf("device not found")

	errClosedDevice = errors.New("closed device")
)

// USB merges several buses into one.
type USB struct {
	buses []core.Bus
}

func Init(buses ...core.Bus) *USB {
	return &USB{
		buses: buses,
	}
}

func (b *USB) Has(path string) bool {
	for _, b := range b.buses {
		if b.Has(path) {
			return true
		}
	}
	return false
}

func (b *USB) Enumerate() ([]core.Info, error) {
	var infos []core.Info

	for _, b := range b.buses {
		l, err := b.Enumerate()
		if err != nil {
			return nil, err
		}
		infos = append(infos, l...)
	}
	return infos, nil
}

func (b *USB) Connect(path string, debug bool) (core.Device, error) {
	for _, b := range b.buses {
		if b.Has(path) {
			return b.Connect(path, debug)
		}
	}
	return nil, ErrNotFound
}

func (b *USB) Close() {
	for _, b := range b.buses {
		b.Close()
	}
}

func matchType(vid, pid uint16) (trezortypes.DeviceType, bool) {
	switch {
	case vid == trezortypes.VendorT1 && pid == trezortypes.ProductT1Firmware:
		return trezortypes.TypeT1Hid, true
	case vid == trezortypes.VendorT2 && pid == trezortypes.ProductT2Firmware:
		return trezortypes.TypeT2, true
	case vid == trezortypes.VendorT2 && pid == trezortypes.ProductT2Bootloader:
		return trezortypes.TypeT2Boot, true
	}
	return 0, false
}
