package usb

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"sync"

	"github.com/karalabe/hid"

	"github.com/trezor/trezorlib-go/internal/core"
	"github.com/trezor/trezorlib-go/internal/logs"
	"github.com/trezor/trezorlib-go/trezorapi/trezortypes"
)

const (
	hidapiPrefix = "hid"
	hidIfaceNum  = 0
	hidUsagePage = 0xFF00
)

type HIDAPI struct {
	mw *logs.Logger
}

func InitHIDAPI(mw *logs.Logger) (*HIDAPI, error) {
	if !hid.Supported() {
		return nil, errors.New("hidapi is not supported on this platform")
	}
	return &HIDAPI{mw: mw}, nil
}

func (b *HIDAPI) Enumerate() ([]core.Info, error) {
	devs, err := hid.Enumerate(0, 0)
	if err != nil {
		return nil, err
	}
	var infos []core.Info
	for _, dev := range devs {
		typ, ok := b.match(&dev)
		if !ok {
			continue
		}
		infos = append(infos, core.Info{
			Path:      b.identify(&dev),
			VendorID:  dev.VendorID,
			ProductID: dev.ProductID,
			Type:      typ,
		})
	}
	return infos, nil
}

func (b *HIDAPI) Has(path string) bool {
	return strings.HasPrefix(path, hidapiPrefix)
}

func (b *HIDAPI) Connect(path string, debug bool) (core.Device, error) {
	if debug {
		return nil, errors.New("no debug link over hid")
	}
	devs, err := hid.Enumerate(0, 0)
	if err != nil {
		return nil, err
	}
	for _, dev := range devs {
		if _, ok := b.match(&dev); !ok || b.identify(&dev) != path {
			continue
		}
		b.mw.Logf("opening %s", path)
		d, err := dev.Open()
		if err != nil {
			return nil, err
		}
		return &HID{dev: d}, nil
	}
	return nil, ErrNotFound
}

func (b *HIDAPI) Close() {}

func (b *HIDAPI) match(d *hid.DeviceInfo) (trezortypes.DeviceType, bool) {
	typ, ok := matchType(d.VendorID, d.ProductID)
	if !ok {
		return 0, false
	}
	return typ, d.Interface == hidIfaceNum || d.UsagePage == hidUsagePage
}

// identify hashes the OS path, so paths are stable per connection but do
// not leak OS details.
func (b *HIDAPI) identify(dev *hid.DeviceInfo) string {
	digest := sha256.Sum256([]byte(dev.Path))
	return hidapiPrefix + hex.EncodeToString(digest[:])
}

type HID struct {
	dev hid.Device

	closeOnce sync.Once
	closed    bool
	mutex     sync.Mutex
}

func (d *HID) Close() error {
	var err error
	d.closeOnce.Do(func() {
		d.mutex.Lock()
		d.closed = true
		d.mutex.Unlock()
		err = d.dev.Close()
	})
	return err
}

func (d *HID) isClosed() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.closed
}

func (d *HID) Write(buf []byte) (int, error) {
	if d.isClosed() {
		return 0, errClosedDevice
	}
	return d.dev.Write(buf)
}

func (d *HID) Read(buf []byte) (int, error) {
	for {
		if d.isClosed() {
			return 0, errClosedDevice
		}
		n, err := d.dev.Read(buf)
		if err != nil {
			return n, err
		}
		// hidapi returns empty reads on timeouts
		if n > 0 {
			return n, nil
		}
	}
}
