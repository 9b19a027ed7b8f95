package message

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"io"

	"github.com/trezor/trezorlib-go/trezorapi/trezortypes"
)

var ErrMalformedData = errors.New("malformed data")

const bridgeHeaderLen = 6

// FromBridge decodes a hex body returned by the bridge's /call endpoint.
func FromBridge(body []byte, logger io.Writer) (*trezortypes.Message, error) {
	raw := make([]byte, hex.DecodedLen(len(body)))
	if _, err := hex.Decode(raw, body); err != nil {
		logf(logger, "body is not hex")
		return nil, ErrMalformedData
	}

	if len(raw) < bridgeHeaderLen {
		logf(logger, "body too short")
		return nil, ErrMalformedData
	}

	kind := binary.BigEndian.Uint16(raw[0:2])
	size := binary.BigEndian.Uint32(raw[2:6])
	data := raw[bridgeHeaderLen:]
	if uint32(len(data)) != size {
		logf(logger, "wrong data length, header %d, body %d", size, len(data))
		return nil, ErrMalformedData
	}

	return &trezortypes.Message{
		Kind: kind,
		Data: data,
	}, nil
}

// ToBridge encodes msg as a hex body for the bridge's /call endpoint.
func ToBridge(msg *trezortypes.Message, logger io.Writer) ([]byte, error) {
	if len(msg.Data) > MaxSize {
		return nil, ErrTooLarge
	}
	logf(logger, "encoding kind %d, %d bytes", msg.Kind, len(msg.Data))

	raw := make([]byte, bridgeHeaderLen+len(msg.Data))
	binary.BigEndian.PutUint16(raw[0:2], msg.Kind)
	binary.BigEndian.PutUint32(raw[2:6], uint32(len(msg.Data)))
	copy(raw[bridgeHeaderLen:], msg.Data)

	res := make([]byte, hex.EncodedLen(len(raw)))
	hex.Encode(res, raw)
	return res, nil
}
