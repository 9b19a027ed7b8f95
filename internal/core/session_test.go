package core

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/trezor/trezorlib-go/trezorapi/trezorpb"
)

func TestCallReturnsTerminalUnchanged(t *testing.T) {
	tests := []struct {
		name  string
		req   pb.Message
		reply pb.Message
	}{
		{"ping", &pb.Ping{Message: pb.String("hello")}, &pb.Success{Message: pb.String("hello")}},
		{"features", &pb.Initialize{}, &pb.Features{Vendor: pb.String("trezor.io"), MajorVersion: pb.Uint32(1)}},
		{"entropy", &pb.GetEntropy{Size: pb.Uint32(4)}, &pb.Entropy{Entropy: []byte{1, 2, 3, 4}}},
		{"eth address", &pb.EthereumGetAddress{AddressN: []uint32{1}}, &pb.EthereumAddress{Address: []byte{0xaa}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := newMock(t, step{expect: tt.req.MessageType(), reply: []pb.Message{tt.reply}})
			s := newTestSession(t, dev)

			res, err := s.Call(context.Background(), tt.req, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.reply, res)
			assert.True(t, dev.finished())
		})
	}
}

func TestGetAddressWithButton(t *testing.T) {
	dev := newMock(t,
		step{expect: pb.MessageTypeGetAddress, reply: []pb.Message{buttonRequest(pb.ButtonRequestOther)}},
		step{expect: pb.MessageTypeButtonAck, reply: []pb.Message{&pb.Address{Address: pb.String("1abc")}}},
	)
	s := newTestSession(t, dev)

	var seen []pb.ButtonRequestType
	cb := &Callbacks{
		Button: func(ctx context.Context, req *pb.ButtonRequest) {
			seen = append(seen, req.GetCode())
		},
	}
	req := &pb.GetAddress{
		AddressN:    []uint32{44 | 0x80000000, 0x80000000, 0x80000000, 0, 0},
		ShowDisplay: pb.Bool(true),
	}
	res, err := s.Call(context.Background(), req, cb)
	require.NoError(t, err)
	assert.Equal(t, &pb.Address{Address: pb.String("1abc")}, res)
	assert.Equal(t, []pb.ButtonRequestType{pb.ButtonRequestOther}, seen)
	assert.Equal(t, []pb.MessageType{pb.MessageTypeGetAddress, pb.MessageTypeButtonAck}, dev.sentTypes())
	assert.Equal(t, req, dev.sentMessages()[0])
}

func TestButtonRequestsAreAckedInOrder(t *testing.T) {
	const n = 4
	steps := []step{{expect: pb.MessageTypeWipeDevice, reply: []pb.Message{buttonRequest(1)}}}
	for i := 1; i < n; i++ {
		steps = append(steps, step{expect: pb.MessageTypeButtonAck, reply: []pb.Message{buttonRequest(pb.ButtonRequestType(i + 1))}})
	}
	steps = append(steps, step{expect: pb.MessageTypeButtonAck, reply: []pb.Message{&pb.Success{}}})
	dev := newMock(t, steps...)
	s := newTestSession(t, dev)

	var codes []pb.ButtonRequestType
	_, err := s.Call(context.Background(), &pb.WipeDevice{}, &Callbacks{
		Button: func(ctx context.Context, req *pb.ButtonRequest) {
			codes = append(codes, req.GetCode())
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []pb.ButtonRequestType{1, 2, 3, 4}, codes)

	sent := dev.sentTypes()
	require.Len(t, sent, n+1)
	for _, typ := range sent[1:] {
		assert.Equal(t, pb.MessageTypeButtonAck, typ)
	}
}

func TestNilButtonSinkIsAllowed(t *testing.T) {
	dev := newMock(t,
		step{expect: pb.MessageTypePing, reply: []pb.Message{buttonRequest(pb.ButtonRequestProtectCall)}},
		step{expect: pb.MessageTypeButtonAck, reply: []pb.Message{&pb.Success{}}},
	)
	s := newTestSession(t, dev)
	_, err := s.Call(context.Background(), &pb.Ping{ButtonProtection: pb.Bool(true)}, nil)
	require.NoError(t, err)
}

func TestPinIsNotCached(t *testing.T) {
	dev := newMock(t,
		step{expect: pb.MessageTypeChangePin, reply: []pb.Message{&pb.PinMatrixRequest{}}},
		step{expect: pb.MessageTypePinMatrixAck, reply: []pb.Message{&pb.PinMatrixRequest{}}},
		step{expect: pb.MessageTypePinMatrixAck, reply: []pb.Message{&pb.Success{}}},
	)
	s := newTestSession(t, dev)

	calls := 0
	pins := []string{"1234", "5678"}
	_, err := s.Call(context.Background(), &pb.ChangePin{}, &Callbacks{
		PIN: func(ctx context.Context, req *pb.PinMatrixRequest) (string, error) {
			p := pins[calls]
			calls++
			return p, nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	sent := dev.sentMessages()
	require.Len(t, sent, 3)
	assert.Equal(t, "1234", sent[1].(*pb.PinMatrixAck).GetPin())
	assert.Equal(t, "5678", sent[2].(*pb.PinMatrixAck).GetPin())
}

func TestEmptyPassphrase(t *testing.T) {
	dev := newMock(t,
		step{expect: pb.MessageTypeGetPublicKey, reply: []pb.Message{&pb.PassphraseRequest{}}},
		step{expect: pb.MessageTypePassphraseAck, reply: []pb.Message{&pb.PublicKey{Xpub: pb.String("xpub")}}},
	)
	s := newTestSession(t, dev)
	_, err := s.Call(context.Background(), &pb.GetPublicKey{}, &Callbacks{
		Passphrase: func(ctx context.Context, req *pb.PassphraseRequest) (string, error) {
			return "", nil
		},
	})
	require.NoError(t, err)
	ack := dev.sentMessages()[1].(*pb.PassphraseAck)
	require.NotNil(t, ack.Passphrase)
	assert.Equal(t, "", *ack.Passphrase)
}

func TestMissingProviderCancels(t *testing.T) {
	tests := []struct {
		name   string
		prompt pb.Message
	}{
		{"pin", &pb.PinMatrixRequest{}},
		{"passphrase", &pb.PassphraseRequest{}},
		{"word", &pb.WordRequest{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := newMock(t,
				step{expect: pb.MessageTypeGetAddress, reply: []pb.Message{tt.prompt}},
				step{expect: pb.MessageTypeCancel, reply: []pb.Message{failure(pb.FailureActionCancelled, "Cancelled")}},
			)
			s := newTestSession(t, dev)

			_, err := s.Call(context.Background(), &pb.GetAddress{}, nil)
			assert.ErrorIs(t, err, ErrCallbackMissing)
			assert.True(t, dev.finished())

			// the channel is quiet again
			dev.mutex.Lock()
			dev.steps = []step{{expect: pb.MessageTypePing, reply: []pb.Message{&pb.Success{}}}}
			dev.mutex.Unlock()
			_, err = s.Call(context.Background(), &pb.Ping{}, nil)
			assert.NoError(t, err)
		})
	}
}

func TestCallbackRejected(t *testing.T) {
	dev := newMock(t,
		step{expect: pb.MessageTypeGetAddress, reply: []pb.Message{&pb.PinMatrixRequest{}}},
		step{expect: pb.MessageTypeCancel, reply: []pb.Message{failure(pb.FailureActionCancelled, "")}},
	)
	s := newTestSession(t, dev)

	declined := errors.New("user closed the dialog")
	_, err := s.Call(context.Background(), &pb.GetAddress{}, &Callbacks{
		PIN: func(ctx context.Context, req *pb.PinMatrixRequest) (string, error) {
			return "", declined
		},
	})
	assert.ErrorIs(t, err, ErrCallbackRejected)
	assert.ErrorIs(t, err, declined)
	var cbErr *CallbackError
	require.ErrorAs(t, err, &cbErr)
	assert.Equal(t, "PIN", cbErr.Prompt)
}

func TestDeviceFailureIsVerbatim(t *testing.T) {
	dev := newMock(t,
		step{expect: pb.MessageTypeGetAddress, reply: []pb.Message{failure(pb.FailureNotInitialized, "Device not initialized")}},
	)
	s := newTestSession(t, dev)

	_, err := s.Call(context.Background(), &pb.GetAddress{}, nil)
	var ferr *FailureError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, pb.FailureNotInitialized, ferr.Code)
	assert.Equal(t, "Device not initialized", ferr.Message)
	assert.ErrorIs(t, err, ErrDeviceFailure)
	assert.NotErrorIs(t, err, ErrCancelled)
}

func TestUnexpectedMessage(t *testing.T) {
	tests := []struct {
		name  string
		reply pb.Message
	}{
		{"wrong terminal", &pb.Features{}},
		{"stream without driver", txRequest(pb.RequestTypeTxInput, 0, nil)},
		{"unknown tag", &pb.Unrecognized{Kind: 999, Data: []byte{0x08, 0x01}}},
		{"host-side message", &pb.ButtonAck{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := newMock(t,
				step{expect: pb.MessageTypeGetAddress, reply: []pb.Message{tt.reply}},
				step{expect: pb.MessageTypeCancel, reply: []pb.Message{failure(pb.FailureUnexpectedMessage, "")}},
			)
			s := newTestSession(t, dev)

			res, err := s.Call(context.Background(), &pb.GetAddress{}, nil)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrProtocolViolation)
			var perr *ProtocolError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, pb.MessageTypeGetAddress, perr.Request)
			assert.Equal(t, tt.reply.MessageType(), perr.Received)
		})
	}
}

func TestUnsupportedRequest(t *testing.T) {
	dev := newMock(t)
	s := newTestSession(t, dev)
	_, err := s.Call(context.Background(), &pb.ButtonAck{}, nil)
	assert.ErrorIs(t, err, ErrUnsupportedRequest)
	assert.Empty(t, dev.sentTypes())
}

func TestCancelWhileAwaitingButton(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dev := newMock(t,
		step{expect: pb.MessageTypeWipeDevice, reply: []pb.Message{buttonRequest(pb.ButtonRequestWipeDevice)}},
		step{expect: pb.MessageTypeButtonAck, hook: func(pb.Message) { cancel() }},
		step{expect: pb.MessageTypeCancel, reply: []pb.Message{failure(pb.FailureActionCancelled, "Cancelled")}},
	)
	s := newTestSession(t, dev, RoundTimeout(time.Second))

	_, err := s.Call(ctx, &pb.WipeDevice{}, nil)
	assert.ErrorIs(t, err, ErrCancelled)
	assert.ErrorIs(t, err, ErrDeviceFailure)
	assert.Equal(t, []pb.MessageType{
		pb.MessageTypeWipeDevice,
		pb.MessageTypeButtonAck,
		pb.MessageTypeCancel,
	}, dev.sentTypes())
}

func TestCancelRacingCompletion(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dev := newMock(t,
		step{expect: pb.MessageTypeGetAddress, reply: []pb.Message{buttonRequest(pb.ButtonRequestAddress)}},
		step{expect: pb.MessageTypeButtonAck, hook: func(pb.Message) { cancel() }, delay: 20 * time.Millisecond,
			reply: []pb.Message{&pb.Address{Address: pb.String("1abc")}}},
		step{expect: pb.MessageTypeCancel, delay: 40 * time.Millisecond,
			reply: []pb.Message{failure(pb.FailureActionCancelled, "")}},
	)
	s := newTestSession(t, dev, RoundTimeout(time.Second))

	_, err := s.Call(ctx, &pb.GetAddress{}, nil)
	var cerr *CancelledError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, &pb.Address{Address: pb.String("1abc")}, cerr.Response)
	assert.NotErrorIs(t, err, ErrDeviceFailure)
	assert.True(t, dev.finished())
}

func TestPromptsAfterCancelAreNotAnswered(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dev := newMock(t,
		step{expect: pb.MessageTypeGetAddress, hook: func(pb.Message) { cancel() }},
		step{expect: pb.MessageTypeCancel, reply: []pb.Message{
			&pb.PinMatrixRequest{},
			failure(pb.FailureActionCancelled, ""),
		}},
	)
	s := newTestSession(t, dev, RoundTimeout(time.Second))

	pinAsked := false
	_, err := s.Call(ctx, &pb.GetAddress{}, &Callbacks{
		PIN: func(ctx context.Context, req *pb.PinMatrixRequest) (string, error) {
			pinAsked = true
			return "1", nil
		},
	})
	assert.ErrorIs(t, err, ErrCancelled)
	assert.False(t, pinAsked)
	assert.Equal(t, []pb.MessageType{pb.MessageTypeGetAddress, pb.MessageTypeCancel}, dev.sentTypes())
}

func TestCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dev := newMock(t)
	s := newTestSession(t, dev)

	// another call holds the channel
	s.commsLock <- struct{}{}
	_, err := s.Call(ctx, &pb.Ping{}, nil)
	<-s.commsLock
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Empty(t, dev.sentTypes())
}

func TestRoundTimeoutBreaksSession(t *testing.T) {
	dev := newMock(t, step{expect: pb.MessageTypePing})
	s := newTestSession(t, dev, RoundTimeout(20*time.Millisecond))

	_, err := s.Call(context.Background(), &pb.Ping{}, nil)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.NotErrorIs(t, err, ErrDeviceFailure)

	_, err = s.Call(context.Background(), &pb.Ping{}, nil)
	assert.ErrorIs(t, err, ErrSessionBroken)
}

func TestButtonWaitIsUnbounded(t *testing.T) {
	dev := newMock(t,
		step{expect: pb.MessageTypePing, reply: []pb.Message{buttonRequest(pb.ButtonRequestProtectCall)}},
		step{expect: pb.MessageTypeButtonAck, delay: 60 * time.Millisecond, reply: []pb.Message{&pb.Success{}}},
	)
	s := newTestSession(t, dev, RoundTimeout(20*time.Millisecond))

	_, err := s.Call(context.Background(), &pb.Ping{ButtonProtection: pb.Bool(true)}, nil)
	assert.NoError(t, err)
}

func TestClosedSession(t *testing.T) {
	dev := newMock(t)
	s := newTestSession(t, dev)
	require.NoError(t, s.Close())
	_, err := s.Call(context.Background(), &pb.Ping{}, nil)
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestCallsAreSerialized(t *testing.T) {
	release := make(chan struct{})
	dev := newMock(t,
		step{expect: pb.MessageTypePing, reply: []pb.Message{buttonRequest(pb.ButtonRequestProtectCall)}},
		step{expect: pb.MessageTypeButtonAck, reply: []pb.Message{&pb.Success{Message: pb.String("first")}}},
		step{expect: pb.MessageTypePing, reply: []pb.Message{&pb.Success{Message: pb.String("second")}}},
	)
	s := newTestSession(t, dev)

	inButton := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		res, err := s.Call(context.Background(), &pb.Ping{ButtonProtection: pb.Bool(true)}, &Callbacks{
			Button: func(ctx context.Context, req *pb.ButtonRequest) {
				close(inButton)
				<-release
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, "first", res.(*pb.Success).GetMessage())
	}()

	<-inButton
	second := make(chan pb.Message)
	go func() {
		res, err := s.Call(context.Background(), &pb.Ping{}, nil)
		assert.NoError(t, err)
		second <- res
	}()

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, []pb.MessageType{pb.MessageTypePing}, dev.sentTypes())
	close(release)
	wg.Wait()
	assert.Equal(t, "second", (<-second).(*pb.Success).GetMessage())
}

func TestPostAndRead(t *testing.T) {
	dev := newMock(t,
		step{expect: pb.MessageTypeDebugLinkDecision, reply: []pb.Message{&pb.Success{}}},
	)
	s := newTestSession(t, dev)

	require.NoError(t, s.Post(context.Background(), &pb.DebugLinkDecision{YesNo: pb.Bool(true)}))
	msg, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.IsType(t, &pb.Success{}, msg)
}
