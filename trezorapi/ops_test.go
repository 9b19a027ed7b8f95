package trezorapi

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezor/trezorlib-go/internal/core"
	pb "github.com/trezor/trezorlib-go/trezorapi/trezorpb"
	"github.com/trezor/trezorlib-go/trezorapi/trezorpb/marshal"
	"github.com/trezor/trezorlib-go/trezorapi/trezortypes"
)

var errClosed = errors.New("closed")

// responder is a device that answers each host message right away.
type responder struct {
	t       *testing.T
	respond func(msg pb.Message) []pb.Message
	sent    []pb.MessageType
	out     chan *trezortypes.Message
	closed  chan struct{}
}

func newResponder(t *testing.T, respond func(msg pb.Message) []pb.Message) *Session {
	r := &responder{
		t:       t,
		respond: respond,
		out:     make(chan *trezortypes.Message, 16),
		closed:  make(chan struct{}),
	}
	s := &Session{s: core.NewSession(r)}
	t.Cleanup(func() { assert.NoError(t, s.Close()) })
	return s
}

func (r *responder) WriteMessage(raw *trezortypes.Message) error {
	msg, err := marshal.Unmarshal(raw)
	if err != nil {
		return err
	}
	r.sent = append(r.sent, msg.MessageType())
	for _, reply := range r.respond(msg) {
		m, err := marshal.Marshal(reply)
		require.NoError(r.t, err)
		r.out <- m
	}
	return nil
}

func (r *responder) ReadMessage() (*trezortypes.Message, error) {
	select {
	case m := <-r.out:
		return m, nil
	case <-r.closed:
		return nil, errClosed
	}
}

func (r *responder) Close() error {
	close(r.closed)
	return nil
}

func TestPingWithButton(t *testing.T) {
	s := newResponder(t, func(msg pb.Message) []pb.Message {
		switch m := msg.(type) {
		case *pb.Ping:
			assert.True(t, m.GetButtonProtection())
			return []pb.Message{&pb.ButtonRequest{}}
		case *pb.ButtonAck:
			return []pb.Message{&pb.Success{Message: pb.String("pong")}}
		}
		t.Errorf("unexpected %s", msg.MessageType())
		return nil
	})

	buttons := 0
	res, err := s.Ping(context.Background(), "pong", true, false, false, &Callbacks{
		Button: func(ctx context.Context, req *pb.ButtonRequest) { buttons++ },
	})
	require.NoError(t, err)
	assert.Equal(t, "pong", res)
	assert.Equal(t, 1, buttons)
}

func TestGetAddressFailure(t *testing.T) {
	s := newResponder(t, func(msg pb.Message) []pb.Message {
		code := pb.FailureDataError
		return []pb.Message{&pb.Failure{Code: &code, Message: pb.String("Forbidden key path")}}
	})

	_, err := s.GetAddress(context.Background(), []uint32{1}, "Bitcoin", false, nil)
	require.ErrorIs(t, err, ErrDeviceFailure)
	var ferr *FailureError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "Forbidden key path", ferr.Message)
}

func TestEthereumSignTxStreamsData(t *testing.T) {
	data := bytes.Repeat([]byte{0xab, 0xcd}, 1000)
	var got []byte

	s := newResponder(t, func(msg pb.Message) []pb.Message {
		switch m := msg.(type) {
		case *pb.EthereumSignTx:
			assert.Len(t, m.DataInitialChunk, ethereumInitialChunk)
			assert.Equal(t, uint32(len(data)), m.GetDataLength())
			got = append(got, m.DataInitialChunk...)
			return []pb.Message{&pb.EthereumTxRequest{DataLength: pb.Uint32(uint32(len(data) - len(got)))}}
		case *pb.EthereumTxAck:
			got = append(got, m.DataChunk...)
			return []pb.Message{&pb.EthereumTxRequest{
				SignatureV: pb.Uint32(27),
				SignatureR: []byte{1},
				SignatureS: []byte{2},
			}}
		}
		t.Errorf("unexpected %s", msg.MessageType())
		return nil
	})

	req := &pb.EthereumSignTx{AddressN: []uint32{Hardened | 44, Hardened | 60, Hardened, 0, 0}}
	res, err := s.EthereumSignTx(context.Background(), req, data, nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(27), res.GetSignatureV())
	assert.Equal(t, data, got)
	assert.Nil(t, req.DataInitialChunk, "caller's request is left alone")
}

func TestEthereumSignTxWithoutData(t *testing.T) {
	s := newResponder(t, func(msg pb.Message) []pb.Message {
		m := msg.(*pb.EthereumSignTx)
		assert.Nil(t, m.DataLength)
		return []pb.Message{&pb.EthereumTxRequest{SignatureV: pb.Uint32(28)}}
	})

	res, err := s.EthereumSignTx(context.Background(), &pb.EthereumSignTx{}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(28), res.GetSignatureV())
}

func bootloader(major uint32) *pb.Features {
	return &pb.Features{
		MajorVersion:   pb.Uint32(major),
		BootloaderMode: pb.Bool(true),
	}
}

func TestUpdateFirmwareChunked(t *testing.T) {
	image := append([]byte("TRZV"), bytes.Repeat([]byte{7}, 10)...)
	var got []byte

	s := newResponder(t, func(msg pb.Message) []pb.Message {
		switch m := msg.(type) {
		case *pb.Initialize:
			return []pb.Message{bootloader(2)}
		case *pb.FirmwareErase:
			assert.Equal(t, uint32(len(image)), m.GetLength())
			return []pb.Message{&pb.FirmwareRequest{Offset: pb.Uint32(0), Length: pb.Uint32(8)}}
		case *pb.FirmwareUpload:
			got = append(got, m.Payload...)
			if len(got) < len(image) {
				return []pb.Message{&pb.FirmwareRequest{
					Offset: pb.Uint32(uint32(len(got))),
					Length: pb.Uint32(uint32(len(image) - len(got))),
				}}
			}
			return []pb.Message{&pb.Success{}}
		}
		t.Errorf("unexpected %s", msg.MessageType())
		return nil
	})

	require.NoError(t, s.UpdateFirmware(context.Background(), image, nil))
	assert.Equal(t, image, got)
}

func TestUpdateFirmwareWholeImage(t *testing.T) {
	image := append([]byte("TRZR"), bytes.Repeat([]byte{1}, 100)...)
	var sent []pb.MessageType

	s := newResponder(t, func(msg pb.Message) []pb.Message {
		sent = append(sent, msg.MessageType())
		switch m := msg.(type) {
		case *pb.Initialize:
			return []pb.Message{bootloader(1)}
		case *pb.FirmwareErase:
			return []pb.Message{&pb.Success{}}
		case *pb.FirmwareUpload:
			assert.Equal(t, image, m.Payload)
			return []pb.Message{&pb.ButtonRequest{}}
		case *pb.ButtonAck:
			return []pb.Message{&pb.Success{}}
		}
		t.Errorf("unexpected %s", msg.MessageType())
		return nil
	})

	require.NoError(t, s.UpdateFirmware(context.Background(), image, nil))
	assert.Equal(t, []pb.MessageType{
		pb.MessageTypeInitialize,
		pb.MessageTypeFirmwareErase,
		pb.MessageTypeFirmwareUpload,
		pb.MessageTypeButtonAck,
	}, sent)
}

func TestUpdateFirmwareChecks(t *testing.T) {
	tests := []struct {
		name     string
		features *pb.Features
		image    []byte
		err      error
	}{
		{"not in bootloader", &pb.Features{MajorVersion: pb.Uint32(2)}, []byte("TRZV...."), ErrNotInBootloader},
		{"t1 image on t2", bootloader(2), []byte("TRZR...."), ErrBadFirmware},
		{"t2 image on t1", bootloader(1), []byte("TRZV...."), ErrBadFirmware},
		{"empty", bootloader(2), nil, ErrBadFirmware},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newResponder(t, func(msg pb.Message) []pb.Message {
				assert.Equal(t, pb.MessageTypeInitialize, msg.MessageType())
				return []pb.Message{tt.features}
			})
			err := s.UpdateFirmware(context.Background(), tt.image, nil)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestRecoveryDeviceAsksWords(t *testing.T) {
	words := []string{"all", "all", "all"}
	asked := 0

	s := newResponder(t, func(msg pb.Message) []pb.Message {
		switch m := msg.(type) {
		case *pb.RecoveryDevice:
			return []pb.Message{&pb.WordRequest{}}
		case *pb.WordAck:
			assert.Equal(t, words[asked], m.GetWord())
			asked++
			if asked < len(words) {
				return []pb.Message{&pb.WordRequest{}}
			}
			return []pb.Message{&pb.Success{}}
		}
		t.Errorf("unexpected %s", msg.MessageType())
		return nil
	})

	err := s.RecoveryDevice(context.Background(), &pb.RecoveryDevice{WordCount: pb.Uint32(3)}, &Callbacks{
		Word: func(ctx context.Context, step int, req *pb.WordRequest) (string, error) {
			return words[step], nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, len(words), asked)
}

func TestSimpleSignTxTooLarge(t *testing.T) {
	s := newResponder(t, func(msg pb.Message) []pb.Message {
		t.Errorf("nothing should be sent, got %s", msg.MessageType())
		return nil
	})

	req := &pb.SimpleSignTx{Inputs: []*pb.TxInputType{{
		PrevHash:  make([]byte, 32),
		ScriptSig: make([]byte, core.MaxSimpleSignTxSize),
	}}}
	_, err := s.SimpleSignTx(context.Background(), req, nil)
	assert.ErrorIs(t, err, ErrSimpleSignTxTooLarge)
}
