package core

import (
	"context"
	"encoding/hex"
	"fmt"

	pb "github.com/trezor/trezorlib-go/trezorapi/trezorpb"
)

// TxData is what the host holds for a SignTx call: the inputs and outputs
// of the transaction being signed and every transaction its inputs spend.
type TxData struct {
	Inputs  []*pb.TxInputType
	Outputs []*pb.TxOutputType
	Prev    []*pb.TransactionType

	// PrevHashes are the hashes of Prev, in the same order. When nil,
	// each Prev is indexed by the PrevHash of the inputs spending it,
	// which requires one previous transaction per distinct hash in
	// input order.
	PrevHashes [][]byte
}

// check rejects nil entries before anything goes to the device.
func (t *TxData) check() error {
	if t == nil {
		return nil
	}
	for i, in := range t.Inputs {
		if in == nil {
			return fmt.Errorf("%w: input %d is nil", ErrDriverMismatch, i)
		}
	}
	for i, out := range t.Outputs {
		if out == nil {
			return fmt.Errorf("%w: output %d is nil", ErrDriverMismatch, i)
		}
	}
	for i, prev := range t.Prev {
		if prev == nil {
			return fmt.Errorf("%w: previous transaction %d is nil", ErrDriverMismatch, i)
		}
		for j, in := range prev.Inputs {
			if in == nil {
				return fmt.Errorf("%w: input %d of previous transaction %d is nil", ErrDriverMismatch, j, i)
			}
		}
		for j, out := range prev.BinOutputs {
			if out == nil {
				return fmt.Errorf("%w: output %d of previous transaction %d is nil", ErrDriverMismatch, j, i)
			}
		}
	}
	return nil
}

// SignedTx is assembled from the serialized chunks of every TxRequest.
type SignedTx struct {
	Serialized []byte
	Signatures map[uint32][]byte
}

// The device asks for exactly one of these per TxRequest.
type txArtifact interface {
	artifact()
}

type txInput struct {
	index    uint32
	prevHash []byte // nil for the transaction being signed
}

type txOutput struct {
	index    uint32
	prevHash []byte
}

type txMeta struct {
	prevHash []byte
}

type txExtraData struct {
	prevHash []byte
	offset   uint32
	length   uint32
}

type txFinished struct{}

func (txInput) artifact()     {}
func (txOutput) artifact()    {}
func (txMeta) artifact()      {}
func (txExtraData) artifact() {}
func (txFinished) artifact()  {}

func requestedArtifact(m *pb.TxRequest) txArtifact {
	d := m.Details
	var (
		index uint32
		hash  []byte
	)
	if d != nil {
		index = d.GetRequestIndex()
		if len(d.TxHash) > 0 {
			hash = d.TxHash
		}
	}
	switch m.GetRequestType() {
	case pb.RequestTypeTxInput:
		return txInput{index: index, prevHash: hash}
	case pb.RequestTypeTxOutput:
		return txOutput{index: index, prevHash: hash}
	case pb.RequestTypeTxMeta:
		return txMeta{prevHash: hash}
	case pb.RequestTypeTxExtraData:
		return txExtraData{prevHash: hash, offset: d.GetExtraDataOffset(), length: d.GetExtraDataLen()}
	case pb.RequestTypeTxFinished:
		return txFinished{}
	}
	return nil
}

type txDriver struct {
	data *TxData
	prev map[string]*pb.TransactionType

	version  uint32
	lockTime uint32
	inputs   uint32
	outputs  uint32

	result SignedTx
}

func newTxDriver(data *TxData, version, lockTime, inputs, outputs uint32) *txDriver {
	d := &txDriver{
		data:     data,
		version:  version,
		lockTime: lockTime,
		inputs:   inputs,
		outputs:  outputs,
		result:   SignedTx{Signatures: make(map[uint32][]byte)},
	}
	if data != nil {
		d.prev = indexPrev(data)
	}
	return d
}

func indexPrev(data *TxData) map[string]*pb.TransactionType {
	prev := make(map[string]*pb.TransactionType, len(data.Prev))
	if data.PrevHashes != nil {
		for i, h := range data.PrevHashes {
			if i < len(data.Prev) {
				prev[hex.EncodeToString(h)] = data.Prev[i]
			}
		}
		return prev
	}
	i := 0
	for _, in := range data.Inputs {
		if in == nil {
			continue
		}
		key := hex.EncodeToString(in.PrevHash)
		if _, ok := prev[key]; ok || i >= len(data.Prev) {
			continue
		}
		prev[key] = data.Prev[i]
		i++
	}
	return prev
}

// collect keeps whatever serialized output came with a TxRequest.
func (d *txDriver) collect(m *pb.TxRequest) {
	s := m.Serialized
	if s == nil {
		return
	}
	if len(s.SerializedTx) > 0 {
		d.result.Serialized = append(d.result.Serialized, s.SerializedTx...)
	}
	if s.SignatureIndex != nil {
		d.result.Signatures[*s.SignatureIndex] = s.Signature
	}
}

func (d *txDriver) next(ctx context.Context, msg pb.Message) (pb.Message, error) {
	m, ok := msg.(*pb.TxRequest)
	if !ok {
		return nil, &ProtocolError{Request: pb.MessageTypeSignTx, Received: msg.MessageType(), Reason: "not a transaction request"}
	}
	d.collect(m)
	if d.data == nil {
		return nil, fmt.Errorf("%w: transaction data", ErrCallbackMissing)
	}

	art := requestedArtifact(m)
	tx, err := d.build(m, art)
	if err != nil {
		return nil, err
	}
	if err := checkAck(art, tx); err != nil {
		return nil, err
	}
	return &pb.TxAck{Tx: tx}, nil
}

func (d *txDriver) lookup(m *pb.TxRequest, hash []byte) (*pb.TransactionType, error) {
	tx, ok := d.prev[hex.EncodeToString(hash)]
	if ok && tx == nil {
		return nil, fmt.Errorf("%w: previous transaction %x is nil", ErrDriverMismatch, hash)
	}
	if !ok {
		return nil, &ProtocolError{
			Request:  pb.MessageTypeSignTx,
			Received: m.MessageType(),
			Reason:   fmt.Sprintf("unknown previous transaction %x", hash),
		}
	}
	return tx, nil
}

func outOfRange(m *pb.TxRequest, what string, index uint32, n int) error {
	return &ProtocolError{
		Request:  pb.MessageTypeSignTx,
		Received: m.MessageType(),
		Reason:   fmt.Sprintf("%s %d requested, %d available", what, index, n),
	}
}

func (d *txDriver) build(m *pb.TxRequest, art txArtifact) (*pb.TransactionType, error) {
	switch a := art.(type) {
	case txInput:
		inputs := d.data.Inputs
		if a.prevHash != nil {
			prev, err := d.lookup(m, a.prevHash)
			if err != nil {
				return nil, err
			}
			inputs = prev.Inputs
		}
		if int(a.index) >= len(inputs) {
			return nil, outOfRange(m, "input", a.index, len(inputs))
		}
		return &pb.TransactionType{Inputs: []*pb.TxInputType{inputs[a.index]}}, nil

	case txOutput:
		if a.prevHash == nil {
			if int(a.index) >= len(d.data.Outputs) {
				return nil, outOfRange(m, "output", a.index, len(d.data.Outputs))
			}
			return &pb.TransactionType{Outputs: []*pb.TxOutputType{d.data.Outputs[a.index]}}, nil
		}
		prev, err := d.lookup(m, a.prevHash)
		if err != nil {
			return nil, err
		}
		if int(a.index) >= len(prev.BinOutputs) {
			return nil, outOfRange(m, "previous output", a.index, len(prev.BinOutputs))
		}
		return &pb.TransactionType{BinOutputs: []*pb.TxOutputBinType{prev.BinOutputs[a.index]}}, nil

	case txMeta:
		if a.prevHash == nil {
			return &pb.TransactionType{
				Version:    pb.Uint32(d.version),
				LockTime:   pb.Uint32(d.lockTime),
				InputsCnt:  pb.Uint32(d.inputs),
				OutputsCnt: pb.Uint32(d.outputs),
			}, nil
		}
		prev, err := d.lookup(m, a.prevHash)
		if err != nil {
			return nil, err
		}
		meta := &pb.TransactionType{
			Version:    pb.Uint32(prev.GetVersion()),
			LockTime:   pb.Uint32(prev.GetLockTime()),
			InputsCnt:  pb.Uint32(uint32(len(prev.Inputs))),
			OutputsCnt: pb.Uint32(uint32(len(prev.BinOutputs))),
		}
		if len(prev.ExtraData) > 0 {
			meta.ExtraDataLen = pb.Uint32(uint32(len(prev.ExtraData)))
		}
		return meta, nil

	case txExtraData:
		prev, err := d.lookup(m, a.prevHash)
		if err != nil {
			return nil, err
		}
		end := uint64(a.offset) + uint64(a.length)
		if a.length == 0 || end > uint64(len(prev.ExtraData)) {
			return nil, outOfRange(m, "extra data end", uint32(end), len(prev.ExtraData))
		}
		return &pb.TransactionType{ExtraData: prev.ExtraData[a.offset:end]}, nil
	}
	return nil, &ProtocolError{
		Request:  pb.MessageTypeSignTx,
		Received: m.MessageType(),
		Reason:   fmt.Sprintf("unknown request type %d", m.GetRequestType()),
	}
}

// checkAck asserts the ack carries exactly the one artifact requested.
func checkAck(art txArtifact, tx *pb.TransactionType) error {
	var (
		inputs, outputs, bin int
		meta                 = tx.Version != nil || tx.LockTime != nil || tx.InputsCnt != nil || tx.OutputsCnt != nil
		extra                = len(tx.ExtraData) > 0
	)
	for _, in := range tx.Inputs {
		if in == nil {
			return fmt.Errorf("%w: nil input", ErrDriverMismatch)
		}
		inputs++
	}
	for _, out := range tx.Outputs {
		if out == nil {
			return fmt.Errorf("%w: nil output", ErrDriverMismatch)
		}
		outputs++
	}
	for _, out := range tx.BinOutputs {
		if out == nil {
			return fmt.Errorf("%w: nil previous output", ErrDriverMismatch)
		}
		bin++
	}

	var ok bool
	switch art.(type) {
	case txInput:
		ok = inputs == 1 && outputs == 0 && bin == 0 && !meta && !extra
	case txOutput:
		ok = inputs == 0 && outputs+bin == 1 && !meta && !extra
	case txMeta:
		ok = inputs == 0 && outputs == 0 && bin == 0 && meta && !extra
	case txExtraData:
		ok = inputs == 0 && outputs == 0 && bin == 0 && !meta && extra
	}
	if !ok {
		return fmt.Errorf("%w: ack for %T has %d inputs, %d outputs, %d previous outputs", ErrDriverMismatch, art, inputs, outputs, bin)
	}
	return nil
}
