package core

import (
	"context"
	"fmt"

	pb "github.com/trezor/trezorlib-go/trezorapi/trezorpb"
)

// chunkDriver feeds a payload to a device that asks for it by length.
// The cursor only moves forward; the device never gets bytes it did not
// just ask for.
type chunkDriver struct {
	request pb.MessageType
	payload []byte
	cursor  int
}

// newEthereumDriver serves EthereumTxRequest.data_length. The first sent
// bytes travel in EthereumSignTx.data_initial_chunk.
func newEthereumDriver(payload []byte, initial int) *chunkDriver {
	return &chunkDriver{
		request: pb.MessageTypeEthereumSignTx,
		payload: payload,
		cursor:  initial,
	}
}

// newFirmwareDriver serves FirmwareRequest{offset,length} after a
// FirmwareErase that announced the image length.
func newFirmwareDriver(payload []byte) *chunkDriver {
	return &chunkDriver{
		request: pb.MessageTypeFirmwareErase,
		payload: payload,
	}
}

func (d *chunkDriver) take(msg pb.Message, length int) ([]byte, error) {
	if d.payload == nil {
		return nil, fmt.Errorf("%w: payload for %s", ErrCallbackMissing, d.request)
	}
	if length <= 0 || d.cursor+length > len(d.payload) {
		return nil, &ProtocolError{
			Request:  d.request,
			Received: msg.MessageType(),
			Reason:   fmt.Sprintf("asked for %d bytes at %d of %d", length, d.cursor, len(d.payload)),
		}
	}
	chunk := d.payload[d.cursor : d.cursor+length]
	d.cursor += length
	return chunk, nil
}

func (d *chunkDriver) next(ctx context.Context, msg pb.Message) (pb.Message, error) {
	switch m := msg.(type) {
	case *pb.EthereumTxRequest:
		if d.request != pb.MessageTypeEthereumSignTx {
			break
		}
		chunk, err := d.take(msg, int(m.GetDataLength()))
		if err != nil {
			return nil, err
		}
		return &pb.EthereumTxAck{DataChunk: chunk}, nil

	case *pb.FirmwareRequest:
		if d.request != pb.MessageTypeFirmwareErase {
			break
		}
		if int(m.GetOffset()) != d.cursor {
			return nil, &ProtocolError{
				Request:  d.request,
				Received: msg.MessageType(),
				Reason:   fmt.Sprintf("offset %d, expected %d", m.GetOffset(), d.cursor),
			}
		}
		chunk, err := d.take(msg, int(m.GetLength()))
		if err != nil {
			return nil, err
		}
		return &pb.FirmwareUpload{Payload: chunk}, nil
	}
	return nil, &ProtocolError{Request: d.request, Received: msg.MessageType(), Reason: "not a chunk request"}
}
