package trezorpb

// EthereumGetAddress asks for the Ethereum address at address_n.
// @next EthereumAddress
type EthereumGetAddress struct {
	AddressN    []uint32 `protobuf:"varint,1,rep,name=address_n"`
	ShowDisplay *bool    `protobuf:"varint,2,opt,name=show_display"`
	Extra       Extra    `protobuf:"-"`
}

func (*EthereumGetAddress) MessageType() MessageType { return MessageTypeEthereumGetAddress }

func (m *EthereumGetAddress) GetAddressN() []uint32 {
	if m != nil {
		return m.AddressN
	}
	return nil
}

func (m *EthereumGetAddress) GetShowDisplay() bool {
	if m != nil && m.ShowDisplay != nil {
		return *m.ShowDisplay
	}
	return false
}

// EthereumAddress is the 20-byte address.
type EthereumAddress struct {
	Address []byte `protobuf:"bytes,1,req,name=address"`
	Extra   Extra  `protobuf:"-"`
}

func (*EthereumAddress) MessageType() MessageType { return MessageTypeEthereumAddress }

func (m *EthereumAddress) GetAddress() []byte {
	if m != nil {
		return m.Address
	}
	return nil
}

// EthereumSignTx starts signing; data beyond data_initial_chunk is
// streamed on EthereumTxRequest.
// @next EthereumTxRequest
type EthereumSignTx struct {
	AddressN         []uint32 `protobuf:"varint,1,rep,name=address_n"`
	Nonce            []byte   `protobuf:"bytes,2,opt,name=nonce"`
	GasPrice         []byte   `protobuf:"bytes,3,opt,name=gas_price"`
	GasLimit         []byte   `protobuf:"bytes,4,opt,name=gas_limit"`
	To               []byte   `protobuf:"bytes,5,opt,name=to"`
	Value            []byte   `protobuf:"bytes,6,opt,name=value"`
	DataInitialChunk []byte   `protobuf:"bytes,7,opt,name=data_initial_chunk"`
	DataLength       *uint32  `protobuf:"varint,8,opt,name=data_length"`
	ChainId          *uint32  `protobuf:"varint,9,opt,name=chain_id"`
	Extra            Extra    `protobuf:"-"`
}

func (*EthereumSignTx) MessageType() MessageType { return MessageTypeEthereumSignTx }

func (m *EthereumSignTx) GetAddressN() []uint32 {
	if m != nil {
		return m.AddressN
	}
	return nil
}

func (m *EthereumSignTx) GetNonce() []byte {
	if m != nil {
		return m.Nonce
	}
	return nil
}

func (m *EthereumSignTx) GetGasPrice() []byte {
	if m != nil {
		return m.GasPrice
	}
	return nil
}

func (m *EthereumSignTx) GetGasLimit() []byte {
	if m != nil {
		return m.GasLimit
	}
	return nil
}

func (m *EthereumSignTx) GetTo() []byte {
	if m != nil {
		return m.To
	}
	return nil
}

func (m *EthereumSignTx) GetValue() []byte {
	if m != nil {
		return m.Value
	}
	return nil
}

func (m *EthereumSignTx) GetDataInitialChunk() []byte {
	if m != nil {
		return m.DataInitialChunk
	}
	return nil
}

func (m *EthereumSignTx) GetDataLength() uint32 {
	if m != nil && m.DataLength != nil {
		return *m.DataLength
	}
	return 0
}

func (m *EthereumSignTx) GetChainId() uint32 {
	if m != nil && m.ChainId != nil {
		return *m.ChainId
	}
	return 0
}

// EthereumTxRequest either asks for data_length more bytes of data,
// or carries the signature when no data_length is set.
type EthereumTxRequest struct {
	DataLength *uint32 `protobuf:"varint,1,opt,name=data_length"`
	SignatureV *uint32 `protobuf:"varint,2,opt,name=signature_v"`
	SignatureR []byte  `protobuf:"bytes,3,opt,name=signature_r"`
	SignatureS []byte  `protobuf:"bytes,4,opt,name=signature_s"`
	Extra      Extra   `protobuf:"-"`
}

func (*EthereumTxRequest) MessageType() MessageType { return MessageTypeEthereumTxRequest }

func (m *EthereumTxRequest) GetDataLength() uint32 {
	if m != nil && m.DataLength != nil {
		return *m.DataLength
	}
	return 0
}

func (m *EthereumTxRequest) GetSignatureV() uint32 {
	if m != nil && m.SignatureV != nil {
		return *m.SignatureV
	}
	return 0
}

func (m *EthereumTxRequest) GetSignatureR() []byte {
	if m != nil {
		return m.SignatureR
	}
	return nil
}

func (m *EthereumTxRequest) GetSignatureS() []byte {
	if m != nil {
		return m.SignatureS
	}
	return nil
}

// EthereumTxAck carries the requested data chunk.
type EthereumTxAck struct {
	DataChunk []byte `protobuf:"bytes,1,opt,name=data_chunk"`
	Extra     Extra  `protobuf:"-"`
}

func (*EthereumTxAck) MessageType() MessageType { return MessageTypeEthereumTxAck }

func (m *EthereumTxAck) GetDataChunk() []byte {
	if m != nil {
		return m.DataChunk
	}
	return nil
}

// EthereumSignMessage signs a message with the Ethereum key at address_n.
type EthereumSignMessage struct {
	AddressN []uint32 `protobuf:"varint,1,rep,name=address_n"`
	Message  []byte   `protobuf:"bytes,2,req,name=message"`
	Extra    Extra    `protobuf:"-"`
}

func (*EthereumSignMessage) MessageType() MessageType { return MessageTypeEthereumSignMessage }

func (m *EthereumSignMessage) GetAddressN() []uint32 {
	if m != nil {
		return m.AddressN
	}
	return nil
}

func (m *EthereumSignMessage) GetMessage() []byte {
	if m != nil {
		return m.Message
	}
	return nil
}

// EthereumVerifyMessage verifies an Ethereum message signature.
type EthereumVerifyMessage struct {
	Address   []byte `protobuf:"bytes,1,opt,name=address"`
	Signature []byte `protobuf:"bytes,2,opt,name=signature"`
	Message   []byte `protobuf:"bytes,3,opt,name=message"`
	Extra     Extra  `protobuf:"-"`
}

func (*EthereumVerifyMessage) MessageType() MessageType { return MessageTypeEthereumVerifyMessage }

func (m *EthereumVerifyMessage) GetAddress() []byte {
	if m != nil {
		return m.Address
	}
	return nil
}

func (m *EthereumVerifyMessage) GetSignature() []byte {
	if m != nil {
		return m.Signature
	}
	return nil
}

func (m *EthereumVerifyMessage) GetMessage() []byte {
	if m != nil {
		return m.Message
	}
	return nil
}

// EthereumMessageSignature is the message signature and signing address.
type EthereumMessageSignature struct {
	Address   []byte `protobuf:"bytes,1,opt,name=address"`
	Signature []byte `protobuf:"bytes,2,opt,name=signature"`
	Extra     Extra  `protobuf:"-"`
}

func (*EthereumMessageSignature) MessageType() MessageType { return MessageTypeEthereumMessageSignature }

func (m *EthereumMessageSignature) GetAddress() []byte {
	if m != nil {
		return m.Address
	}
	return nil
}

func (m *EthereumMessageSignature) GetSignature() []byte {
	if m != nil {
		return m.Signature
	}
	return nil
}
