package trezorpb

// GetPublicKey asks for the public node at address_n.
// @next PublicKey
type GetPublicKey struct {
	AddressN       []uint32 `protobuf:"varint,1,rep,name=address_n"`
	EcdsaCurveName *string  `protobuf:"bytes,2,opt,name=ecdsa_curve_name"`
	ShowDisplay    *bool    `protobuf:"varint,3,opt,name=show_display"`
	CoinName       *string  `protobuf:"bytes,4,opt,name=coin_name,def=Bitcoin"`
	Extra          Extra    `protobuf:"-"`
}

func (*GetPublicKey) MessageType() MessageType { return MessageTypeGetPublicKey }

func (m *GetPublicKey) GetAddressN() []uint32 {
	if m != nil {
		return m.AddressN
	}
	return nil
}

func (m *GetPublicKey) GetEcdsaCurveName() string {
	if m != nil && m.EcdsaCurveName != nil {
		return *m.EcdsaCurveName
	}
	return ""
}

func (m *GetPublicKey) GetShowDisplay() bool {
	if m != nil && m.ShowDisplay != nil {
		return *m.ShowDisplay
	}
	return false
}

func (m *GetPublicKey) GetCoinName() string {
	if m != nil && m.CoinName != nil {
		return *m.CoinName
	}
	return "Bitcoin"
}

// PublicKey is the node and its serialized xpub.
type PublicKey struct {
	Node  *HDNodeType `protobuf:"bytes,1,req,name=node"`
	Xpub  *string     `protobuf:"bytes,2,opt,name=xpub"`
	Extra Extra       `protobuf:"-"`
}

func (*PublicKey) MessageType() MessageType { return MessageTypePublicKey }

func (m *PublicKey) GetNode() *HDNodeType {
	if m != nil {
		return m.Node
	}
	return nil
}

func (m *PublicKey) GetXpub() string {
	if m != nil && m.Xpub != nil {
		return *m.Xpub
	}
	return ""
}

// GetAddress asks for the address at address_n.
// @next Address
type GetAddress struct {
	AddressN    []uint32                  `protobuf:"varint,1,rep,name=address_n"`
	CoinName    *string                   `protobuf:"bytes,2,opt,name=coin_name,def=Bitcoin"`
	ShowDisplay *bool                     `protobuf:"varint,3,opt,name=show_display"`
	Multisig    *MultisigRedeemScriptType `protobuf:"bytes,4,opt,name=multisig"`
	ScriptType  *InputScriptType          `protobuf:"varint,5,opt,name=script_type,enum=InputScriptType,def=0"`
	Extra       Extra                     `protobuf:"-"`
}

func (*GetAddress) MessageType() MessageType { return MessageTypeGetAddress }

func (m *GetAddress) GetAddressN() []uint32 {
	if m != nil {
		return m.AddressN
	}
	return nil
}

func (m *GetAddress) GetCoinName() string {
	if m != nil && m.CoinName != nil {
		return *m.CoinName
	}
	return "Bitcoin"
}

func (m *GetAddress) GetShowDisplay() bool {
	if m != nil && m.ShowDisplay != nil {
		return *m.ShowDisplay
	}
	return false
}

func (m *GetAddress) GetMultisig() *MultisigRedeemScriptType {
	if m != nil {
		return m.Multisig
	}
	return nil
}

func (m *GetAddress) GetScriptType() InputScriptType {
	if m != nil && m.ScriptType != nil {
		return *m.ScriptType
	}
	return InputScriptType(0)
}

// Address is the encoded address.
type Address struct {
	Address *string `protobuf:"bytes,1,req,name=address"`
	Extra   Extra   `protobuf:"-"`
}

func (*Address) MessageType() MessageType { return MessageTypeAddress }

func (m *Address) GetAddress() string {
	if m != nil && m.Address != nil {
		return *m.Address
	}
	return ""
}

// SignMessage asks the device to sign a message with the key at address_n.
// @next MessageSignature
type SignMessage struct {
	AddressN   []uint32         `protobuf:"varint,1,rep,name=address_n"`
	Message    []byte           `protobuf:"bytes,2,req,name=message"`
	CoinName   *string          `protobuf:"bytes,3,opt,name=coin_name,def=Bitcoin"`
	ScriptType *InputScriptType `protobuf:"varint,4,opt,name=script_type,enum=InputScriptType,def=0"`
	Extra      Extra            `protobuf:"-"`
}

func (*SignMessage) MessageType() MessageType { return MessageTypeSignMessage }

func (m *SignMessage) GetAddressN() []uint32 {
	if m != nil {
		return m.AddressN
	}
	return nil
}

func (m *SignMessage) GetMessage() []byte {
	if m != nil {
		return m.Message
	}
	return nil
}

func (m *SignMessage) GetCoinName() string {
	if m != nil && m.CoinName != nil {
		return *m.CoinName
	}
	return "Bitcoin"
}

func (m *SignMessage) GetScriptType() InputScriptType {
	if m != nil && m.ScriptType != nil {
		return *m.ScriptType
	}
	return InputScriptType(0)
}

// VerifyMessage asks the device to verify a signed message.
// @next Success
type VerifyMessage struct {
	Address   *string `protobuf:"bytes,1,opt,name=address"`
	Signature []byte  `protobuf:"bytes,2,opt,name=signature"`
	Message   []byte  `protobuf:"bytes,3,opt,name=message"`
	CoinName  *string `protobuf:"bytes,4,opt,name=coin_name,def=Bitcoin"`
	Extra     Extra   `protobuf:"-"`
}

func (*VerifyMessage) MessageType() MessageType { return MessageTypeVerifyMessage }

func (m *VerifyMessage) GetAddress() string {
	if m != nil && m.Address != nil {
		return *m.Address
	}
	return ""
}

func (m *VerifyMessage) GetSignature() []byte {
	if m != nil {
		return m.Signature
	}
	return nil
}

func (m *VerifyMessage) GetMessage() []byte {
	if m != nil {
		return m.Message
	}
	return nil
}

func (m *VerifyMessage) GetCoinName() string {
	if m != nil && m.CoinName != nil {
		return *m.CoinName
	}
	return "Bitcoin"
}

// MessageSignature is a signed message and the signing address.
type MessageSignature struct {
	Address   *string `protobuf:"bytes,1,opt,name=address"`
	Signature []byte  `protobuf:"bytes,2,opt,name=signature"`
	Extra     Extra   `protobuf:"-"`
}

func (*MessageSignature) MessageType() MessageType { return MessageTypeMessageSignature }

func (m *MessageSignature) GetAddress() string {
	if m != nil && m.Address != nil {
		return *m.Address
	}
	return ""
}

func (m *MessageSignature) GetSignature() []byte {
	if m != nil {
		return m.Signature
	}
	return nil
}

// EstimateTxSize asks for the estimated size of a transaction.
// @next TxSize
type EstimateTxSize struct {
	OutputsCount *uint32 `protobuf:"varint,1,req,name=outputs_count"`
	InputsCount  *uint32 `protobuf:"varint,2,req,name=inputs_count"`
	CoinName     *string `protobuf:"bytes,3,opt,name=coin_name,def=Bitcoin"`
	Extra        Extra   `protobuf:"-"`
}

func (*EstimateTxSize) MessageType() MessageType { return MessageTypeEstimateTxSize }

func (m *EstimateTxSize) GetOutputsCount() uint32 {
	if m != nil && m.OutputsCount != nil {
		return *m.OutputsCount
	}
	return 0
}

func (m *EstimateTxSize) GetInputsCount() uint32 {
	if m != nil && m.InputsCount != nil {
		return *m.InputsCount
	}
	return 0
}

func (m *EstimateTxSize) GetCoinName() string {
	if m != nil && m.CoinName != nil {
		return *m.CoinName
	}
	return "Bitcoin"
}

// TxSize is the estimated transaction size in bytes.
type TxSize struct {
	TxSize *uint32 `protobuf:"varint,1,opt,name=tx_size"`
	Extra  Extra   `protobuf:"-"`
}

func (*TxSize) MessageType() MessageType { return MessageTypeTxSize }

func (m *TxSize) GetTxSize() uint32 {
	if m != nil && m.TxSize != nil {
		return *m.TxSize
	}
	return 0
}

// SignTx starts streaming transaction signing.
// @next TxRequest
type SignTx struct {
	OutputsCount *uint32 `protobuf:"varint,1,req,name=outputs_count"`
	InputsCount  *uint32 `protobuf:"varint,2,req,name=inputs_count"`
	CoinName     *string `protobuf:"bytes,3,opt,name=coin_name,def=Bitcoin"`
	Version      *uint32 `protobuf:"varint,4,opt,name=version,def=1"`
	LockTime     *uint32 `protobuf:"varint,5,opt,name=lock_time,def=0"`
	Extra        Extra   `protobuf:"-"`
}

func (*SignTx) MessageType() MessageType { return MessageTypeSignTx }

func (m *SignTx) GetOutputsCount() uint32 {
	if m != nil && m.OutputsCount != nil {
		return *m.OutputsCount
	}
	return 0
}

func (m *SignTx) GetInputsCount() uint32 {
	if m != nil && m.InputsCount != nil {
		return *m.InputsCount
	}
	return 0
}

func (m *SignTx) GetCoinName() string {
	if m != nil && m.CoinName != nil {
		return *m.CoinName
	}
	return "Bitcoin"
}

func (m *SignTx) GetVersion() uint32 {
	if m != nil && m.Version != nil {
		return *m.Version
	}
	return 1
}

func (m *SignTx) GetLockTime() uint32 {
	if m != nil && m.LockTime != nil {
		return *m.LockTime
	}
	return 0
}

// SimpleSignTx signs a transaction sent in one message.
// @next TxRequest
type SimpleSignTx struct {
	Inputs       []*TxInputType     `protobuf:"bytes,1,rep,name=inputs"`
	Outputs      []*TxOutputType    `protobuf:"bytes,2,rep,name=outputs"`
	Transactions []*TransactionType `protobuf:"bytes,3,rep,name=transactions"`
	CoinName     *string            `protobuf:"bytes,4,opt,name=coin_name,def=Bitcoin"`
	Version      *uint32            `protobuf:"varint,5,opt,name=version,def=1"`
	LockTime     *uint32            `protobuf:"varint,6,opt,name=lock_time,def=0"`
	Extra        Extra              `protobuf:"-"`
}

func (*SimpleSignTx) MessageType() MessageType { return MessageTypeSimpleSignTx }

func (m *SimpleSignTx) GetInputs() []*TxInputType {
	if m != nil {
		return m.Inputs
	}
	return nil
}

func (m *SimpleSignTx) GetOutputs() []*TxOutputType {
	if m != nil {
		return m.Outputs
	}
	return nil
}

func (m *SimpleSignTx) GetTransactions() []*TransactionType {
	if m != nil {
		return m.Transactions
	}
	return nil
}

func (m *SimpleSignTx) GetCoinName() string {
	if m != nil && m.CoinName != nil {
		return *m.CoinName
	}
	return "Bitcoin"
}

func (m *SimpleSignTx) GetVersion() uint32 {
	if m != nil && m.Version != nil {
		return *m.Version
	}
	return 1
}

func (m *SimpleSignTx) GetLockTime() uint32 {
	if m != nil && m.LockTime != nil {
		return *m.LockTime
	}
	return 0
}

// TxRequest asks for the next piece of the transaction being signed,
// and carries serialized output produced so far.
// @next TxAck
type TxRequest struct {
	RequestType *RequestType             `protobuf:"varint,1,opt,name=request_type,enum=RequestType"`
	Details     *TxRequestDetailsType    `protobuf:"bytes,2,opt,name=details"`
	Serialized  *TxRequestSerializedType `protobuf:"bytes,3,opt,name=serialized"`
	Extra       Extra                    `protobuf:"-"`
}

func (*TxRequest) MessageType() MessageType { return MessageTypeTxRequest }

func (m *TxRequest) GetRequestType() RequestType {
	if m != nil && m.RequestType != nil {
		return *m.RequestType
	}
	return RequestType(0)
}

func (m *TxRequest) GetDetails() *TxRequestDetailsType {
	if m != nil {
		return m.Details
	}
	return nil
}

func (m *TxRequest) GetSerialized() *TxRequestSerializedType {
	if m != nil {
		return m.Serialized
	}
	return nil
}

// TxAck answers a TxRequest with exactly the requested piece.
type TxAck struct {
	Tx    *TransactionType `protobuf:"bytes,1,opt,name=tx"`
	Extra Extra            `protobuf:"-"`
}

func (*TxAck) MessageType() MessageType { return MessageTypeTxAck }

func (m *TxAck) GetTx() *TransactionType {
	if m != nil {
		return m.Tx
	}
	return nil
}
