// Package message frames protobuf payloads for the two carriers a device
// can sit behind: 64-byte HID reports and the bridge's HTTP bodies.
package message

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/trezor/trezorlib-go/trezorapi/trezortypes"
)

const (
	repMarker = '?'
	repMagic  = '#'
	packetLen = 64

	// first report carries marker, magic twice, kind and size
	headerLen = 9

	// MaxSize bounds a single message payload. Firmware images are the
	// largest thing sent in one piece.
	MaxSize = 16 << 20
)

var (
	ErrMalformedMessage = errors.New("malformed wire format")
	ErrTooLarge         = errors.New("message too large")
)

func logf(logger io.Writer, format string, args ...interface{}) {
	if logger == nil {
		return
	}
	fmt.Fprintf(logger, format+"\n", args...)
}

// WriteToDevice splits m into 64-byte reports and writes them one by one.
// The last report is zero padded.
func WriteToDevice(m *trezortypes.Message, device io.Writer, logger io.Writer) (int64, error) {
	if len(m.Data) > MaxSize {
		return 0, ErrTooLarge
	}
	logf(logger, "writing kind %d, %d bytes", m.Kind, len(m.Data))

	var rep [packetLen]byte
	rep[0] = repMarker
	rep[1] = repMagic
	rep[2] = repMagic
	binary.BigEndian.PutUint16(rep[3:], m.Kind)
	binary.BigEndian.PutUint32(rep[5:], uint32(len(m.Data)))

	written := 0
	offset := headerLen
	for {
		n := copy(rep[offset:], m.Data[written:])
		written += n
		for i := offset + n; i < packetLen; i++ {
			rep[i] = 0x00
		}
		if _, err := device.Write(rep[:]); err != nil {
			return int64(written), err
		}
		if written >= len(m.Data) {
			return int64(written), nil
		}
		offset = 1 // continuation reports carry only the marker
	}
}

// ReadFromDevice reads reports until a whole message is assembled.
// Reports that do not start a message are skipped until one does.
func ReadFromDevice(device io.Reader, logger io.Writer) (*trezortypes.Message, error) {
	var rep [packetLen]byte

	if err := readReport(device, rep[:]); err != nil {
		return nil, err
	}
	for rep[0] != repMarker || rep[1] != repMagic || rep[2] != repMagic {
		logf(logger, "skipping stale report")
		if err := readReport(device, rep[:]); err != nil {
			return nil, err
		}
	}

	kind := binary.BigEndian.Uint16(rep[3:])
	size := binary.BigEndian.Uint32(rep[5:])
	if size > MaxSize {
		logf(logger, "declared size %d over limit", size)
		return nil, ErrTooLarge
	}
	data := make([]byte, 0, size)
	data = append(data, rep[headerLen:]...)

	for uint32(len(data)) < size {
		if err := readReport(device, rep[:]); err != nil {
			return nil, err
		}
		if rep[0] != repMarker {
			return nil, ErrMalformedMessage
		}
		data = append(data, rep[1:]...)
	}
	data = data[:size]

	logf(logger, "read kind %d, %d bytes", kind, size)
	return &trezortypes.Message{
		Kind: kind,
		Data: data,
	}, nil
}

func readReport(device io.Reader, rep []byte) error {
	n, err := device.Read(rep)
	if err != nil {
		return err
	}
	if n < headerLen {
		return ErrMalformedMessage
	}
	for i := n; i < len(rep); i++ {
		rep[i] = 0x00
	}
	return nil
}
