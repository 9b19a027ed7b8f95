package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/trezor/trezorlib-go/trezorapi"
	pb "github.com/trezor/trezorlib-go/trezorapi/trezorpb"
)

// hexBytes is a byte string written as hex in JSON.
type hexBytes []byte

func (h hexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(h))
}

func (h *hexBytes) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	d, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return err
	}
	*h = d
	return nil
}

// txFile is the transaction read by the sign-tx command.
type txFile struct {
	Coin     string     `json:"coin"`
	Version  *uint32    `json:"version"`
	LockTime *uint32    `json:"lock_time"`
	Inputs   []txInput  `json:"inputs"`
	Outputs  []txOutput `json:"outputs"`
	PrevTxs  []prevTx   `json:"prev_txs"`
}

type txInput struct {
	Path       trezorapi.DerivationPath `json:"path"`
	PrevHash   hexBytes                 `json:"prev_hash"`
	PrevIndex  uint32                   `json:"prev_index"`
	Amount     *uint64                  `json:"amount"`
	Sequence   *uint32                  `json:"sequence"`
	ScriptType string                   `json:"script_type"`
	ScriptSig  hexBytes                 `json:"script_sig"`
}

type txOutput struct {
	Address    string                   `json:"address"`
	Path       trezorapi.DerivationPath `json:"path"`
	Amount     uint64                   `json:"amount"`
	ScriptType string                   `json:"script_type"`
	OpReturn   hexBytes                 `json:"op_return"`
}

type prevTx struct {
	Hash     hexBytes       `json:"hash"`
	Version  uint32         `json:"version"`
	LockTime uint32         `json:"lock_time"`
	Inputs   []txInput      `json:"inputs"`
	Outputs  []prevTxOutput `json:"outputs"`
	Extra    hexBytes       `json:"extra_data"`
}

type prevTxOutput struct {
	Amount       uint64   `json:"amount"`
	ScriptPubkey hexBytes `json:"script_pubkey"`
}

var inputScriptTypes = map[string]pb.InputScriptType{
	"":             pb.InputSpendAddress,
	"address":      pb.InputSpendAddress,
	"multisig":     pb.InputSpendMultisig,
	"external":     pb.InputExternal,
	"witness":      pb.InputSpendWitness,
	"p2sh-witness": pb.InputSpendP2SHWitness,
}

var outputScriptTypes = map[string]pb.OutputScriptType{
	"":             pb.OutputPayToAddress,
	"address":      pb.OutputPayToAddress,
	"p2sh":         pb.OutputPayToScriptHash,
	"multisig":     pb.OutputPayToMultisig,
	"op-return":    pb.OutputPayToOpReturn,
	"witness":      pb.OutputPayToWitness,
	"p2sh-witness": pb.OutputPayToP2SHWitness,
}

func readTxFile(name string) (*txFile, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var f txFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(f.Inputs) == 0 || len(f.Outputs) == 0 {
		return nil, fmt.Errorf("%s: transaction needs inputs and outputs", name)
	}
	return &f, nil
}

func (in txInput) proto() (*pb.TxInputType, error) {
	st, ok := inputScriptTypes[in.ScriptType]
	if !ok {
		return nil, fmt.Errorf("unknown input script type %q", in.ScriptType)
	}
	if len(in.PrevHash) != 32 {
		return nil, fmt.Errorf("prev_hash must be 32 bytes, got %d", len(in.PrevHash))
	}
	return &pb.TxInputType{
		AddressN:   in.Path,
		PrevHash:   in.PrevHash,
		PrevIndex:  pb.Uint32(in.PrevIndex),
		ScriptSig:  in.ScriptSig,
		Sequence:   in.Sequence,
		ScriptType: &st,
		Amount:     in.Amount,
	}, nil
}

func (out txOutput) proto() (*pb.TxOutputType, error) {
	st, ok := outputScriptTypes[out.ScriptType]
	if !ok {
		return nil, fmt.Errorf("unknown output script type %q", out.ScriptType)
	}
	o := &pb.TxOutputType{
		AddressN:     out.Path,
		Amount:       pb.Uint64(out.Amount),
		ScriptType:   &st,
		OpReturnData: out.OpReturn,
	}
	if out.Address != "" {
		o.Address = pb.String(out.Address)
	}
	return o, nil
}

// request converts the file into what Session.SignTx streams.
func (f *txFile) request(coin string) (*pb.SignTx, *trezorapi.TxData, error) {
	if f.Coin != "" {
		coin = f.Coin
	}
	req := &pb.SignTx{
		InputsCount:  pb.Uint32(uint32(len(f.Inputs))),
		OutputsCount: pb.Uint32(uint32(len(f.Outputs))),
		CoinName:     pb.String(coin),
		Version:      f.Version,
		LockTime:     f.LockTime,
	}
	tx := &trezorapi.TxData{}
	for i, in := range f.Inputs {
		p, err := in.proto()
		if err != nil {
			return nil, nil, fmt.Errorf("input %d: %w", i, err)
		}
		tx.Inputs = append(tx.Inputs, p)
	}
	for i, out := range f.Outputs {
		p, err := out.proto()
		if err != nil {
			return nil, nil, fmt.Errorf("output %d: %w", i, err)
		}
		tx.Outputs = append(tx.Outputs, p)
	}
	for i, prev := range f.PrevTxs {
		t := &pb.TransactionType{
			Version:  pb.Uint32(prev.Version),
			LockTime: pb.Uint32(prev.LockTime),
		}
		for j, in := range prev.Inputs {
			p, err := in.proto()
			if err != nil {
				return nil, nil, fmt.Errorf("previous tx %d input %d: %w", i, j, err)
			}
			// only the outpoint and script are part of a previous tx
			p.AddressN, p.ScriptType, p.Amount = nil, nil, nil
			t.Inputs = append(t.Inputs, p)
		}
		for _, out := range prev.Outputs {
			t.BinOutputs = append(t.BinOutputs, &pb.TxOutputBinType{
				Amount:       pb.Uint64(out.Amount),
				ScriptPubkey: out.ScriptPubkey,
			})
		}
		if len(prev.Extra) > 0 {
			t.ExtraData = prev.Extra
			t.ExtraDataLen = pb.Uint32(uint32(len(prev.Extra)))
		}
		tx.Prev = append(tx.Prev, t)
		if len(prev.Hash) > 0 {
			tx.PrevHashes = append(tx.PrevHashes, prev.Hash)
		}
	}
	if len(tx.PrevHashes) != 0 && len(tx.PrevHashes) != len(tx.Prev) {
		return nil, nil, fmt.Errorf("either every previous tx has a hash or none")
	}
	return req, tx, nil
}
