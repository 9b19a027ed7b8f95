package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/trezor/trezorlib-go/trezorapi/trezorpb"
)

func testInputs(n int) []*pb.TxInputType {
	res := make([]*pb.TxInputType, n)
	for i := range res {
		res[i] = &pb.TxInputType{
			AddressN:  []uint32{0x8000002c, 0x80000000, 0x80000000, 0, uint32(i)},
			PrevHash:  bytes.Repeat([]byte{byte(0xa0 + i)}, 32),
			PrevIndex: pb.Uint32(uint32(i)),
		}
	}
	return res
}

func testOutputs(n int) []*pb.TxOutputType {
	res := make([]*pb.TxOutputType, n)
	for i := range res {
		typ := pb.OutputPayToAddress
		res[i] = &pb.TxOutputType{
			Address:    pb.String(fmt.Sprintf("1out%d", i)),
			Amount:     pb.Uint64(uint64(1000 * (i + 1))),
			ScriptType: &typ,
		}
	}
	return res
}

func serialized(index uint32, sig, tx []byte) *pb.TxRequestSerializedType {
	return &pb.TxRequestSerializedType{SignatureIndex: &index, Signature: sig, SerializedTx: tx}
}

func TestSignTxAnswersRequestedIndices(t *testing.T) {
	inputs := testInputs(3)
	outputs := testOutputs(2)

	in2 := txRequest(pb.RequestTypeTxInput, 2, nil)
	in0 := txRequest(pb.RequestTypeTxInput, 0, nil)
	in1 := txRequest(pb.RequestTypeTxInput, 1, nil)
	out0 := txRequest(pb.RequestTypeTxOutput, 0, nil)
	out1 := txRequest(pb.RequestTypeTxOutput, 1, nil)
	out1.Serialized = serialized(0, []byte{0x30, 0x01}, []byte{0x01, 0x00})
	done := &pb.TxRequest{
		RequestType: func() *pb.RequestType { r := pb.RequestTypeTxFinished; return &r }(),
		Serialized:  &pb.TxRequestSerializedType{SerializedTx: []byte{0xff}},
	}

	dev := newMock(t,
		step{expect: pb.MessageTypeSignTx, reply: []pb.Message{in2}},
		step{expect: pb.MessageTypeTxAck, reply: []pb.Message{in0}},
		step{expect: pb.MessageTypeTxAck, reply: []pb.Message{in1}},
		step{expect: pb.MessageTypeTxAck, reply: []pb.Message{out0}},
		step{expect: pb.MessageTypeTxAck, reply: []pb.Message{buttonRequest(pb.ButtonRequestConfirmOutput)}},
		step{expect: pb.MessageTypeButtonAck, reply: []pb.Message{out1}},
		step{expect: pb.MessageTypeTxAck, reply: []pb.Message{done}},
	)
	s := newTestSession(t, dev)

	req := &pb.SignTx{InputsCount: pb.Uint32(3), OutputsCount: pb.Uint32(2)}
	res, err := s.SignTx(context.Background(), req, &TxData{Inputs: inputs, Outputs: outputs}, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x00, 0xff}, res.Serialized)
	assert.Equal(t, map[uint32][]byte{0: {0x30, 0x01}}, res.Signatures)

	var acks []*pb.TransactionType
	for _, m := range dev.sentMessages() {
		if ack, ok := m.(*pb.TxAck); ok {
			acks = append(acks, ack.Tx)
		}
	}
	require.Len(t, acks, 5)
	assert.Equal(t, []*pb.TxInputType{inputs[2]}, acks[0].Inputs)
	assert.Equal(t, []*pb.TxInputType{inputs[0]}, acks[1].Inputs)
	assert.Equal(t, []*pb.TxInputType{inputs[1]}, acks[2].Inputs)
	assert.Equal(t, []*pb.TxOutputType{outputs[0]}, acks[3].Outputs)
	assert.Equal(t, []*pb.TxOutputType{outputs[1]}, acks[4].Outputs)
	for _, ack := range acks {
		assert.Empty(t, ack.BinOutputs)
		assert.Nil(t, ack.Version)
	}
}

func TestSignTxPreviousTransactions(t *testing.T) {
	inputs := testInputs(1)
	hash := inputs[0].PrevHash
	prev := &pb.TransactionType{
		Version:  pb.Uint32(2),
		LockTime: pb.Uint32(7),
		Inputs:   testInputs(2),
		BinOutputs: []*pb.TxOutputBinType{
			{Amount: pb.Uint64(5), ScriptPubkey: []byte{0x76}},
		},
		ExtraData: []byte{1, 2, 3, 4, 5, 6},
	}

	extra := txRequest(pb.RequestTypeTxExtraData, 0, hash)
	extra.Details.ExtraDataOffset = pb.Uint32(2)
	extra.Details.ExtraDataLen = pb.Uint32(3)
	finished := pb.RequestTypeTxFinished

	dev := newMock(t,
		step{expect: pb.MessageTypeSignTx, reply: []pb.Message{txRequest(pb.RequestTypeTxMeta, 0, nil)}},
		step{expect: pb.MessageTypeTxAck, reply: []pb.Message{txRequest(pb.RequestTypeTxMeta, 0, hash)}},
		step{expect: pb.MessageTypeTxAck, reply: []pb.Message{txRequest(pb.RequestTypeTxInput, 1, hash)}},
		step{expect: pb.MessageTypeTxAck, reply: []pb.Message{txRequest(pb.RequestTypeTxOutput, 0, hash)}},
		step{expect: pb.MessageTypeTxAck, reply: []pb.Message{extra}},
		step{expect: pb.MessageTypeTxAck, reply: []pb.Message{&pb.TxRequest{RequestType: &finished}}},
	)
	s := newTestSession(t, dev)

	req := &pb.SignTx{InputsCount: pb.Uint32(1), OutputsCount: pb.Uint32(1), Version: pb.Uint32(1)}
	data := &TxData{Inputs: inputs, Outputs: testOutputs(1), Prev: []*pb.TransactionType{prev}}
	_, err := s.SignTx(context.Background(), req, data, nil)
	require.NoError(t, err)

	sent := dev.sentMessages()
	require.Len(t, sent, 6)
	meta := sent[1].(*pb.TxAck).Tx
	assert.Equal(t, uint32(1), meta.GetVersion())
	assert.Equal(t, uint32(1), meta.GetInputsCnt())
	assert.Equal(t, uint32(1), meta.GetOutputsCnt())

	prevMeta := sent[2].(*pb.TxAck).Tx
	assert.Equal(t, uint32(2), prevMeta.GetVersion())
	assert.Equal(t, uint32(7), prevMeta.GetLockTime())
	assert.Equal(t, uint32(2), prevMeta.GetInputsCnt())
	assert.Equal(t, uint32(1), prevMeta.GetOutputsCnt())
	assert.Equal(t, uint32(6), prevMeta.GetExtraDataLen())

	assert.Equal(t, []*pb.TxInputType{prev.Inputs[1]}, sent[3].(*pb.TxAck).Tx.Inputs)
	assert.Equal(t, prev.BinOutputs, sent[4].(*pb.TxAck).Tx.BinOutputs)
	assert.Equal(t, []byte{3, 4, 5}, sent[5].(*pb.TxAck).Tx.ExtraData)
}

func TestSignTxOutOfRange(t *testing.T) {
	dev := newMock(t,
		step{expect: pb.MessageTypeSignTx, reply: []pb.Message{txRequest(pb.RequestTypeTxInput, 5, nil)}},
		step{expect: pb.MessageTypeCancel, reply: []pb.Message{failure(pb.FailureActionCancelled, "")}},
	)
	s := newTestSession(t, dev)

	req := &pb.SignTx{InputsCount: pb.Uint32(1), OutputsCount: pb.Uint32(1)}
	_, err := s.SignTx(context.Background(), req, &TxData{Inputs: testInputs(1), Outputs: testOutputs(1)}, nil)
	assert.ErrorIs(t, err, ErrProtocolViolation)
	assert.Equal(t, []pb.MessageType{pb.MessageTypeSignTx, pb.MessageTypeCancel}, dev.sentTypes())
}

func TestSignTxUnknownPrevious(t *testing.T) {
	dev := newMock(t,
		step{expect: pb.MessageTypeSignTx, reply: []pb.Message{txRequest(pb.RequestTypeTxMeta, 0, []byte{0xde, 0xad})}},
		step{expect: pb.MessageTypeCancel, reply: []pb.Message{failure(pb.FailureActionCancelled, "")}},
	)
	s := newTestSession(t, dev)

	req := &pb.SignTx{InputsCount: pb.Uint32(1), OutputsCount: pb.Uint32(1)}
	_, err := s.SignTx(context.Background(), req, &TxData{Inputs: testInputs(1), Outputs: testOutputs(1)}, nil)
	assert.ErrorIs(t, err, ErrProtocolViolation)
}

func TestSignTxNilEntryIsNotSent(t *testing.T) {
	hash := bytes.Repeat([]byte{0xaa}, 32)
	tests := []struct {
		name string
		tx   *TxData
	}{
		{"input", &TxData{Inputs: []*pb.TxInputType{nil}, Outputs: testOutputs(1)}},
		{"output", &TxData{Inputs: testInputs(1), Outputs: []*pb.TxOutputType{nil}}},
		{"previous", &TxData{Inputs: testInputs(1), Outputs: testOutputs(1), Prev: []*pb.TransactionType{nil}, PrevHashes: [][]byte{hash}}},
		{"previous input", &TxData{Inputs: testInputs(1), Outputs: testOutputs(1), Prev: []*pb.TransactionType{{Inputs: []*pb.TxInputType{nil}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := newMock(t)
			s := newTestSession(t, dev)

			req := &pb.SignTx{InputsCount: pb.Uint32(1), OutputsCount: pb.Uint32(1)}
			_, err := s.SignTx(context.Background(), req, tt.tx, nil)
			assert.ErrorIs(t, err, ErrDriverMismatch)
			assert.Empty(t, dev.sentTypes())
		})
	}
}

func TestSimpleSignTxNilEntryIsNotSent(t *testing.T) {
	dev := newMock(t)
	s := newTestSession(t, dev)

	req := &pb.SimpleSignTx{Inputs: []*pb.TxInputType{nil}, Outputs: testOutputs(1)}
	_, err := s.SimpleSignTx(context.Background(), req, nil)
	assert.ErrorIs(t, err, ErrDriverMismatch)
	assert.Empty(t, dev.sentTypes())
}

func TestTxDriverNilPrevious(t *testing.T) {
	hash := bytes.Repeat([]byte{0xaa}, 32)
	d := newTxDriver(&TxData{
		Inputs:     []*pb.TxInputType{nil},
		Prev:       []*pb.TransactionType{nil},
		PrevHashes: [][]byte{hash},
	}, 1, 0, 1, 1)

	_, err := d.next(context.Background(), txRequest(pb.RequestTypeTxMeta, 0, hash))
	assert.ErrorIs(t, err, ErrDriverMismatch)
}

func TestCheckAck(t *testing.T) {
	in := testInputs(1)[0]
	out := testOutputs(1)[0]
	tests := []struct {
		name string
		art  txArtifact
		tx   *pb.TransactionType
		ok   bool
	}{
		{"input", txInput{}, &pb.TransactionType{Inputs: []*pb.TxInputType{in}}, true},
		{"two inputs", txInput{}, &pb.TransactionType{Inputs: []*pb.TxInputType{in, in}}, false},
		{"output for input", txInput{}, &pb.TransactionType{Outputs: []*pb.TxOutputType{out}}, false},
		{"output", txOutput{}, &pb.TransactionType{Outputs: []*pb.TxOutputType{out}}, true},
		{"meta with input", txMeta{}, &pb.TransactionType{Version: pb.Uint32(1), Inputs: []*pb.TxInputType{in}}, false},
		{"meta", txMeta{}, &pb.TransactionType{Version: pb.Uint32(1)}, true},
		{"extra", txExtraData{}, &pb.TransactionType{ExtraData: []byte{1}}, true},
		{"empty extra", txExtraData{}, &pb.TransactionType{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkAck(tt.art, tt.tx)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrDriverMismatch)
			}
		})
	}
}

func TestSimpleSignTx(t *testing.T) {
	finished := pb.RequestTypeTxFinished
	dev := newMock(t,
		step{expect: pb.MessageTypeSimpleSignTx, reply: []pb.Message{txRequest(pb.RequestTypeTxInput, 0, nil)}},
		step{expect: pb.MessageTypeTxAck, reply: []pb.Message{&pb.TxRequest{
			RequestType: &finished,
			Serialized:  &pb.TxRequestSerializedType{SerializedTx: []byte{0xab}},
		}}},
	)
	s := newTestSession(t, dev)

	inputs := testInputs(1)
	res, err := s.SimpleSignTx(context.Background(), &pb.SimpleSignTx{Inputs: inputs, Outputs: testOutputs(1)}, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xab}, res.Serialized)
	assert.Equal(t, inputs, dev.sentMessages()[1].(*pb.TxAck).Tx.Inputs)
}

func TestSimpleSignTxTooLarge(t *testing.T) {
	dev := newMock(t)
	s := newTestSession(t, dev)

	_, err := s.SimpleSignTx(context.Background(), &pb.SimpleSignTx{Inputs: testInputs(500)}, nil)
	assert.ErrorIs(t, err, ErrSimpleSignTxTooLarge)
	assert.Empty(t, dev.sentTypes())
}

func TestEthereumDataIsChunked(t *testing.T) {
	data := []byte("0123456789")
	ask := func(n uint32) *pb.EthereumTxRequest { return &pb.EthereumTxRequest{DataLength: &n} }
	sig := &pb.EthereumTxRequest{SignatureV: pb.Uint32(27), SignatureR: []byte{1}, SignatureS: []byte{2}}

	dev := newMock(t,
		step{expect: pb.MessageTypeEthereumSignTx, reply: []pb.Message{ask(3)}},
		step{expect: pb.MessageTypeEthereumTxAck, reply: []pb.Message{ask(5)}},
		step{expect: pb.MessageTypeEthereumTxAck, reply: []pb.Message{sig}},
	)
	s := newTestSession(t, dev)

	req := &pb.EthereumSignTx{DataInitialChunk: data[:2], DataLength: pb.Uint32(uint32(len(data)))}
	res, err := s.Call(context.Background(), req, &Callbacks{Payload: data})
	require.NoError(t, err)
	assert.Equal(t, sig, res)

	sent := dev.sentMessages()
	require.Len(t, sent, 3)
	assert.Equal(t, []byte("234"), sent[1].(*pb.EthereumTxAck).DataChunk)
	assert.Equal(t, []byte("56789"), sent[2].(*pb.EthereumTxAck).DataChunk)
}

func TestEthereumOverread(t *testing.T) {
	n := uint32(20)
	dev := newMock(t,
		step{expect: pb.MessageTypeEthereumSignTx, reply: []pb.Message{&pb.EthereumTxRequest{DataLength: &n}}},
		step{expect: pb.MessageTypeCancel, reply: []pb.Message{failure(pb.FailureActionCancelled, "")}},
	)
	s := newTestSession(t, dev)

	_, err := s.Call(context.Background(), &pb.EthereumSignTx{}, &Callbacks{Payload: []byte("short")})
	assert.ErrorIs(t, err, ErrProtocolViolation)
}

func TestFirmwareChunks(t *testing.T) {
	image := bytes.Repeat([]byte{0x5a}, 10)
	fwReq := func(off, n uint32) *pb.FirmwareRequest { return &pb.FirmwareRequest{Offset: &off, Length: &n} }

	t.Run("sequential", func(t *testing.T) {
		dev := newMock(t,
			step{expect: pb.MessageTypeFirmwareErase, reply: []pb.Message{fwReq(0, 4)}},
			step{expect: pb.MessageTypeFirmwareUpload, reply: []pb.Message{fwReq(4, 6)}},
			step{expect: pb.MessageTypeFirmwareUpload, reply: []pb.Message{&pb.Success{}}},
		)
		s := newTestSession(t, dev)

		_, err := s.Call(context.Background(), &pb.FirmwareErase{Length: pb.Uint32(10)}, &Callbacks{Payload: image})
		require.NoError(t, err)
		sent := dev.sentMessages()
		assert.Len(t, sent[1].(*pb.FirmwareUpload).Payload, 4)
		assert.Len(t, sent[2].(*pb.FirmwareUpload).Payload, 6)
	})

	t.Run("backwards", func(t *testing.T) {
		dev := newMock(t,
			step{expect: pb.MessageTypeFirmwareErase, reply: []pb.Message{fwReq(0, 4)}},
			step{expect: pb.MessageTypeFirmwareUpload, reply: []pb.Message{fwReq(0, 4)}},
			step{expect: pb.MessageTypeCancel, reply: []pb.Message{failure(pb.FailureActionCancelled, "")}},
		)
		s := newTestSession(t, dev)

		_, err := s.Call(context.Background(), &pb.FirmwareErase{Length: pb.Uint32(10)}, &Callbacks{Payload: image})
		assert.ErrorIs(t, err, ErrProtocolViolation)
	})

	t.Run("no payload", func(t *testing.T) {
		dev := newMock(t,
			step{expect: pb.MessageTypeFirmwareErase, reply: []pb.Message{fwReq(0, 4)}},
			step{expect: pb.MessageTypeCancel, reply: []pb.Message{failure(pb.FailureActionCancelled, "")}},
		)
		s := newTestSession(t, dev)

		_, err := s.Call(context.Background(), &pb.FirmwareErase{Length: pb.Uint32(10)}, nil)
		assert.ErrorIs(t, err, ErrCallbackMissing)
	})
}

func TestEntropyMatchesRequestedSize(t *testing.T) {
	for _, size := range []uint32{1, 16, 32, 64, 1000} {
		t.Run(fmt.Sprint(size), func(t *testing.T) {
			dev := newMock(t,
				step{expect: pb.MessageTypeResetDevice, reply: []pb.Message{&pb.EntropyRequest{Size: pb.Uint32(size)}}},
				step{expect: pb.MessageTypeEntropyAck, reply: []pb.Message{buttonRequest(pb.ButtonRequestConfirmWord)}},
				step{expect: pb.MessageTypeButtonAck, reply: []pb.Message{&pb.Success{}}},
			)
			s := newTestSession(t, dev)

			_, err := s.Call(context.Background(), &pb.ResetDevice{}, nil)
			require.NoError(t, err)
			assert.Len(t, dev.sentMessages()[1].(*pb.EntropyAck).Entropy, int(size))
		})
	}
}

func TestEntropyDefaultSize(t *testing.T) {
	d := newEntropyDriver(nil)
	ack, err := d.next(context.Background(), &pb.EntropyRequest{})
	require.NoError(t, err)
	assert.Len(t, ack.(*pb.EntropyAck).Entropy, 32)

	_, err = d.next(context.Background(), &pb.EntropyRequest{})
	assert.ErrorIs(t, err, ErrProtocolViolation)
}

func TestEntropySourceMustFill(t *testing.T) {
	d := newEntropyDriver(func(size int) ([]byte, error) {
		return make([]byte, size-1), nil
	})
	_, err := d.next(context.Background(), &pb.EntropyRequest{Size: pb.Uint32(8)})
	assert.ErrorIs(t, err, ErrDriverMismatch)

	d = newEntropyDriver(func(size int) ([]byte, error) {
		return nil, errors.New("no randomness")
	})
	_, err = d.next(context.Background(), &pb.EntropyRequest{Size: pb.Uint32(8)})
	assert.ErrorIs(t, err, ErrCallbackRejected)
}

func TestRecoveryWords(t *testing.T) {
	dev := newMock(t,
		step{expect: pb.MessageTypeRecoveryDevice, reply: []pb.Message{&pb.WordRequest{}}},
		step{expect: pb.MessageTypeWordAck, reply: []pb.Message{&pb.WordRequest{}}},
		step{expect: pb.MessageTypeWordAck, reply: []pb.Message{buttonRequest(pb.ButtonRequestOther)}},
		step{expect: pb.MessageTypeButtonAck, reply: []pb.Message{&pb.WordRequest{}}},
		step{expect: pb.MessageTypeWordAck, reply: []pb.Message{&pb.Success{}}},
	)
	s := newTestSession(t, dev)

	words := []string{"abandon", "ability", "able"}
	var steps []int
	_, err := s.Call(context.Background(), &pb.RecoveryDevice{WordCount: pb.Uint32(12)}, &Callbacks{
		Word: func(ctx context.Context, step int, req *pb.WordRequest) (string, error) {
			steps = append(steps, step)
			return words[step], nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, steps)

	var got []string
	for _, m := range dev.sentMessages() {
		if ack, ok := m.(*pb.WordAck); ok {
			got = append(got, ack.GetWord())
		}
	}
	assert.Equal(t, words, got)
}
