package trezorpb

type HDNodeType struct {
	Depth       *uint32 `protobuf:"varint,1,req,name=depth"`
	Fingerprint *uint32 `protobuf:"varint,2,req,name=fingerprint"`
	ChildNum    *uint32 `protobuf:"varint,3,req,name=child_num"`
	ChainCode   []byte  `protobuf:"bytes,4,req,name=chain_code"`
	PrivateKey  []byte  `protobuf:"bytes,5,opt,name=private_key"`
	PublicKey   []byte  `protobuf:"bytes,6,opt,name=public_key"`
	Extra       Extra   `protobuf:"-"`
}

func (m *HDNodeType) GetDepth() uint32 {
	if m != nil && m.Depth != nil {
		return *m.Depth
	}
	return 0
}

func (m *HDNodeType) GetFingerprint() uint32 {
	if m != nil && m.Fingerprint != nil {
		return *m.Fingerprint
	}
	return 0
}

func (m *HDNodeType) GetChildNum() uint32 {
	if m != nil && m.ChildNum != nil {
		return *m.ChildNum
	}
	return 0
}

func (m *HDNodeType) GetChainCode() []byte {
	if m != nil {
		return m.ChainCode
	}
	return nil
}

func (m *HDNodeType) GetPrivateKey() []byte {
	if m != nil {
		return m.PrivateKey
	}
	return nil
}

func (m *HDNodeType) GetPublicKey() []byte {
	if m != nil {
		return m.PublicKey
	}
	return nil
}

type HDNodePathType struct {
	Node     *HDNodeType `protobuf:"bytes,1,req,name=node"`
	AddressN []uint32    `protobuf:"varint,2,rep,name=address_n"`
	Extra    Extra       `protobuf:"-"`
}

func (m *HDNodePathType) GetNode() *HDNodeType {
	if m != nil {
		return m.Node
	}
	return nil
}

func (m *HDNodePathType) GetAddressN() []uint32 {
	if m != nil {
		return m.AddressN
	}
	return nil
}

type CoinType struct {
	CoinName            *string `protobuf:"bytes,1,opt,name=coin_name"`
	CoinShortcut        *string `protobuf:"bytes,2,opt,name=coin_shortcut"`
	AddressType         *uint32 `protobuf:"varint,3,opt,name=address_type,def=0"`
	MaxfeeKb            *uint64 `protobuf:"varint,4,opt,name=maxfee_kb"`
	AddressTypeP2SH     *uint32 `protobuf:"varint,5,opt,name=address_type_p2sh,def=5"`
	SignedMessageHeader *string `protobuf:"bytes,8,opt,name=signed_message_header"`
	XpubMagic           *uint32 `protobuf:"varint,9,opt,name=xpub_magic,def=76067358"`
	XprvMagic           *uint32 `protobuf:"varint,10,opt,name=xprv_magic,def=76066276"`
	Segwit              *bool   `protobuf:"varint,11,opt,name=segwit"`
	Forkid              *uint32 `protobuf:"varint,12,opt,name=forkid"`
	ForceBip143         *bool   `protobuf:"varint,13,opt,name=force_bip143"`
	Extra               Extra   `protobuf:"-"`
}

func (m *CoinType) GetCoinName() string {
	if m != nil && m.CoinName != nil {
		return *m.CoinName
	}
	return ""
}

func (m *CoinType) GetCoinShortcut() string {
	if m != nil && m.CoinShortcut != nil {
		return *m.CoinShortcut
	}
	return ""
}

func (m *CoinType) GetAddressType() uint32 {
	if m != nil && m.AddressType != nil {
		return *m.AddressType
	}
	return 0
}

func (m *CoinType) GetMaxfeeKb() uint64 {
	if m != nil && m.MaxfeeKb != nil {
		return *m.MaxfeeKb
	}
	return 0
}

func (m *CoinType) GetAddressTypeP2SH() uint32 {
	if m != nil && m.AddressTypeP2SH != nil {
		return *m.AddressTypeP2SH
	}
	return 5
}

func (m *CoinType) GetSignedMessageHeader() string {
	if m != nil && m.SignedMessageHeader != nil {
		return *m.SignedMessageHeader
	}
	return ""
}

func (m *CoinType) GetXpubMagic() uint32 {
	if m != nil && m.XpubMagic != nil {
		return *m.XpubMagic
	}
	return 76067358
}

func (m *CoinType) GetXprvMagic() uint32 {
	if m != nil && m.XprvMagic != nil {
		return *m.XprvMagic
	}
	return 76066276
}

func (m *CoinType) GetSegwit() bool {
	if m != nil && m.Segwit != nil {
		return *m.Segwit
	}
	return false
}

func (m *CoinType) GetForkid() uint32 {
	if m != nil && m.Forkid != nil {
		return *m.Forkid
	}
	return 0
}

func (m *CoinType) GetForceBip143() bool {
	if m != nil && m.ForceBip143 != nil {
		return *m.ForceBip143
	}
	return false
}

type MultisigRedeemScriptType struct {
	Pubkeys    []*HDNodePathType `protobuf:"bytes,1,rep,name=pubkeys"`
	Signatures [][]byte          `protobuf:"bytes,2,rep,name=signatures"`
	M          *uint32           `protobuf:"varint,3,opt,name=m"`
	Extra      Extra             `protobuf:"-"`
}

func (m *MultisigRedeemScriptType) GetPubkeys() []*HDNodePathType {
	if m != nil {
		return m.Pubkeys
	}
	return nil
}

func (m *MultisigRedeemScriptType) GetSignatures() [][]byte {
	if m != nil {
		return m.Signatures
	}
	return nil
}

func (m *MultisigRedeemScriptType) GetM() uint32 {
	if m != nil && m.M != nil {
		return *m.M
	}
	return 0
}

type TxInputType struct {
	AddressN   []uint32                  `protobuf:"varint,1,rep,name=address_n"`
	PrevHash   []byte                    `protobuf:"bytes,2,req,name=prev_hash"`
	PrevIndex  *uint32                   `protobuf:"varint,3,req,name=prev_index"`
	ScriptSig  []byte                    `protobuf:"bytes,4,opt,name=script_sig"`
	Sequence   *uint32                   `protobuf:"varint,5,opt,name=sequence,def=4294967295"`
	ScriptType *InputScriptType          `protobuf:"varint,6,opt,name=script_type,enum=InputScriptType,def=0"`
	Multisig   *MultisigRedeemScriptType `protobuf:"bytes,7,opt,name=multisig"`
	Amount     *uint64                   `protobuf:"varint,8,opt,name=amount"`
	Extra      Extra                     `protobuf:"-"`
}

func (m *TxInputType) GetAddressN() []uint32 {
	if m != nil {
		return m.AddressN
	}
	return nil
}

func (m *TxInputType) GetPrevHash() []byte {
	if m != nil {
		return m.PrevHash
	}
	return nil
}

func (m *TxInputType) GetPrevIndex() uint32 {
	if m != nil && m.PrevIndex != nil {
		return *m.PrevIndex
	}
	return 0
}

func (m *TxInputType) GetScriptSig() []byte {
	if m != nil {
		return m.ScriptSig
	}
	return nil
}

func (m *TxInputType) GetSequence() uint32 {
	if m != nil && m.Sequence != nil {
		return *m.Sequence
	}
	return 4294967295
}

func (m *TxInputType) GetScriptType() InputScriptType {
	if m != nil && m.ScriptType != nil {
		return *m.ScriptType
	}
	return InputScriptType(0)
}

func (m *TxInputType) GetMultisig() *MultisigRedeemScriptType {
	if m != nil {
		return m.Multisig
	}
	return nil
}

func (m *TxInputType) GetAmount() uint64 {
	if m != nil && m.Amount != nil {
		return *m.Amount
	}
	return 0
}

type TxOutputType struct {
	Address      *string                   `protobuf:"bytes,1,opt,name=address"`
	AddressN     []uint32                  `protobuf:"varint,2,rep,name=address_n"`
	Amount       *uint64                   `protobuf:"varint,3,req,name=amount"`
	ScriptType   *OutputScriptType         `protobuf:"varint,4,req,name=script_type,enum=OutputScriptType"`
	Multisig     *MultisigRedeemScriptType `protobuf:"bytes,5,opt,name=multisig"`
	OpReturnData []byte                    `protobuf:"bytes,6,opt,name=op_return_data"`
	Extra        Extra                     `protobuf:"-"`
}

func (m *TxOutputType) GetAddress() string {
	if m != nil && m.Address != nil {
		return *m.Address
	}
	return ""
}

func (m *TxOutputType) GetAddressN() []uint32 {
	if m != nil {
		return m.AddressN
	}
	return nil
}

func (m *TxOutputType) GetAmount() uint64 {
	if m != nil && m.Amount != nil {
		return *m.Amount
	}
	return 0
}

func (m *TxOutputType) GetScriptType() OutputScriptType {
	if m != nil && m.ScriptType != nil {
		return *m.ScriptType
	}
	return OutputScriptType(0)
}

func (m *TxOutputType) GetMultisig() *MultisigRedeemScriptType {
	if m != nil {
		return m.Multisig
	}
	return nil
}

func (m *TxOutputType) GetOpReturnData() []byte {
	if m != nil {
		return m.OpReturnData
	}
	return nil
}

type TxOutputBinType struct {
	Amount       *uint64 `protobuf:"varint,1,req,name=amount"`
	ScriptPubkey []byte  `protobuf:"bytes,2,req,name=script_pubkey"`
	Extra        Extra   `protobuf:"-"`
}

func (m *TxOutputBinType) GetAmount() uint64 {
	if m != nil && m.Amount != nil {
		return *m.Amount
	}
	return 0
}

func (m *TxOutputBinType) GetScriptPubkey() []byte {
	if m != nil {
		return m.ScriptPubkey
	}
	return nil
}

// TransactionType is the payload of a TxAck. Depending on what the
// device asked for, only one part of it is filled.
type TransactionType struct {
	Version      *uint32            `protobuf:"varint,1,opt,name=version"`
	Inputs       []*TxInputType     `protobuf:"bytes,2,rep,name=inputs"`
	BinOutputs   []*TxOutputBinType `protobuf:"bytes,3,rep,name=bin_outputs"`
	LockTime     *uint32            `protobuf:"varint,4,opt,name=lock_time"`
	Outputs      []*TxOutputType    `protobuf:"bytes,5,rep,name=outputs"`
	InputsCnt    *uint32            `protobuf:"varint,6,opt,name=inputs_cnt"`
	OutputsCnt   *uint32            `protobuf:"varint,7,opt,name=outputs_cnt"`
	ExtraData    []byte             `protobuf:"bytes,8,opt,name=extra_data"`
	ExtraDataLen *uint32            `protobuf:"varint,9,opt,name=extra_data_len"`
	Extra        Extra              `protobuf:"-"`
}

func (m *TransactionType) GetVersion() uint32 {
	if m != nil && m.Version != nil {
		return *m.Version
	}
	return 0
}

func (m *TransactionType) GetInputs() []*TxInputType {
	if m != nil {
		return m.Inputs
	}
	return nil
}

func (m *TransactionType) GetBinOutputs() []*TxOutputBinType {
	if m != nil {
		return m.BinOutputs
	}
	return nil
}

func (m *TransactionType) GetLockTime() uint32 {
	if m != nil && m.LockTime != nil {
		return *m.LockTime
	}
	return 0
}

func (m *TransactionType) GetOutputs() []*TxOutputType {
	if m != nil {
		return m.Outputs
	}
	return nil
}

func (m *TransactionType) GetInputsCnt() uint32 {
	if m != nil && m.InputsCnt != nil {
		return *m.InputsCnt
	}
	return 0
}

func (m *TransactionType) GetOutputsCnt() uint32 {
	if m != nil && m.OutputsCnt != nil {
		return *m.OutputsCnt
	}
	return 0
}

func (m *TransactionType) GetExtraData() []byte {
	if m != nil {
		return m.ExtraData
	}
	return nil
}

func (m *TransactionType) GetExtraDataLen() uint32 {
	if m != nil && m.ExtraDataLen != nil {
		return *m.ExtraDataLen
	}
	return 0
}

type TxRequestDetailsType struct {
	RequestIndex    *uint32 `protobuf:"varint,1,opt,name=request_index"`
	TxHash          []byte  `protobuf:"bytes,2,opt,name=tx_hash"`
	ExtraDataLen    *uint32 `protobuf:"varint,3,opt,name=extra_data_len"`
	ExtraDataOffset *uint32 `protobuf:"varint,4,opt,name=extra_data_offset"`
	Extra           Extra   `protobuf:"-"`
}

func (m *TxRequestDetailsType) GetRequestIndex() uint32 {
	if m != nil && m.RequestIndex != nil {
		return *m.RequestIndex
	}
	return 0
}

func (m *TxRequestDetailsType) GetTxHash() []byte {
	if m != nil {
		return m.TxHash
	}
	return nil
}

func (m *TxRequestDetailsType) GetExtraDataLen() uint32 {
	if m != nil && m.ExtraDataLen != nil {
		return *m.ExtraDataLen
	}
	return 0
}

func (m *TxRequestDetailsType) GetExtraDataOffset() uint32 {
	if m != nil && m.ExtraDataOffset != nil {
		return *m.ExtraDataOffset
	}
	return 0
}

type TxRequestSerializedType struct {
	SignatureIndex *uint32 `protobuf:"varint,1,opt,name=signature_index"`
	Signature      []byte  `protobuf:"bytes,2,opt,name=signature"`
	SerializedTx   []byte  `protobuf:"bytes,3,opt,name=serialized_tx"`
	Extra          Extra   `protobuf:"-"`
}

func (m *TxRequestSerializedType) GetSignatureIndex() uint32 {
	if m != nil && m.SignatureIndex != nil {
		return *m.SignatureIndex
	}
	return 0
}

func (m *TxRequestSerializedType) GetSignature() []byte {
	if m != nil {
		return m.Signature
	}
	return nil
}

func (m *TxRequestSerializedType) GetSerializedTx() []byte {
	if m != nil {
		return m.SerializedTx
	}
	return nil
}

type IdentityType struct {
	Proto *string `protobuf:"bytes,1,opt,name=proto"`
	User  *string `protobuf:"bytes,2,opt,name=user"`
	Host  *string `protobuf:"bytes,3,opt,name=host"`
	Port  *string `protobuf:"bytes,4,opt,name=port"`
	Path  *string `protobuf:"bytes,5,opt,name=path"`
	Index *uint32 `protobuf:"varint,6,opt,name=index,def=0"`
	Extra Extra   `protobuf:"-"`
}

func (m *IdentityType) GetProto() string {
	if m != nil && m.Proto != nil {
		return *m.Proto
	}
	return ""
}

func (m *IdentityType) GetUser() string {
	if m != nil && m.User != nil {
		return *m.User
	}
	return ""
}

func (m *IdentityType) GetHost() string {
	if m != nil && m.Host != nil {
		return *m.Host
	}
	return ""
}

func (m *IdentityType) GetPort() string {
	if m != nil && m.Port != nil {
		return *m.Port
	}
	return ""
}

func (m *IdentityType) GetPath() string {
	if m != nil && m.Path != nil {
		return *m.Path
	}
	return ""
}

func (m *IdentityType) GetIndex() uint32 {
	if m != nil && m.Index != nil {
		return *m.Index
	}
	return 0
}
