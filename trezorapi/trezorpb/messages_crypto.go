package trezorpb

// CipherKeyValue encrypts or decrypts a value with a key derived at address_n.
// @next CipheredKeyValue
type CipherKeyValue struct {
	AddressN     []uint32 `protobuf:"varint,1,rep,name=address_n"`
	Key          *string  `protobuf:"bytes,2,opt,name=key"`
	Value        []byte   `protobuf:"bytes,3,opt,name=value"`
	Encrypt      *bool    `protobuf:"varint,4,opt,name=encrypt"`
	AskOnEncrypt *bool    `protobuf:"varint,5,opt,name=ask_on_encrypt"`
	AskOnDecrypt *bool    `protobuf:"varint,6,opt,name=ask_on_decrypt"`
	Iv           []byte   `protobuf:"bytes,7,opt,name=iv"`
	Extra        Extra    `protobuf:"-"`
}

func (*CipherKeyValue) MessageType() MessageType { return MessageTypeCipherKeyValue }

func (m *CipherKeyValue) GetAddressN() []uint32 {
	if m != nil {
		return m.AddressN
	}
	return nil
}

func (m *CipherKeyValue) GetKey() string {
	if m != nil && m.Key != nil {
		return *m.Key
	}
	return ""
}

func (m *CipherKeyValue) GetValue() []byte {
	if m != nil {
		return m.Value
	}
	return nil
}

func (m *CipherKeyValue) GetEncrypt() bool {
	if m != nil && m.Encrypt != nil {
		return *m.Encrypt
	}
	return false
}

func (m *CipherKeyValue) GetAskOnEncrypt() bool {
	if m != nil && m.AskOnEncrypt != nil {
		return *m.AskOnEncrypt
	}
	return false
}

func (m *CipherKeyValue) GetAskOnDecrypt() bool {
	if m != nil && m.AskOnDecrypt != nil {
		return *m.AskOnDecrypt
	}
	return false
}

func (m *CipherKeyValue) GetIv() []byte {
	if m != nil {
		return m.Iv
	}
	return nil
}

// CipheredKeyValue is the encrypted or decrypted value.
type CipheredKeyValue struct {
	Value []byte `protobuf:"bytes,1,opt,name=value"`
	Extra Extra  `protobuf:"-"`
}

func (*CipheredKeyValue) MessageType() MessageType { return MessageTypeCipheredKeyValue }

func (m *CipheredKeyValue) GetValue() []byte {
	if m != nil {
		return m.Value
	}
	return nil
}

// EncryptMessage encrypts a message to a public key.
// @next EncryptedMessage
type EncryptMessage struct {
	Pubkey      []byte   `protobuf:"bytes,1,opt,name=pubkey"`
	Message     []byte   `protobuf:"bytes,2,opt,name=message"`
	DisplayOnly *bool    `protobuf:"varint,3,opt,name=display_only"`
	AddressN    []uint32 `protobuf:"varint,4,rep,name=address_n"`
	CoinName    *string  `protobuf:"bytes,5,opt,name=coin_name,def=Bitcoin"`
	Extra       Extra    `protobuf:"-"`
}

func (*EncryptMessage) MessageType() MessageType { return MessageTypeEncryptMessage }

func (m *EncryptMessage) GetPubkey() []byte {
	if m != nil {
		return m.Pubkey
	}
	return nil
}

func (m *EncryptMessage) GetMessage() []byte {
	if m != nil {
		return m.Message
	}
	return nil
}

func (m *EncryptMessage) GetDisplayOnly() bool {
	if m != nil && m.DisplayOnly != nil {
		return *m.DisplayOnly
	}
	return false
}

func (m *EncryptMessage) GetAddressN() []uint32 {
	if m != nil {
		return m.AddressN
	}
	return nil
}

func (m *EncryptMessage) GetCoinName() string {
	if m != nil && m.CoinName != nil {
		return *m.CoinName
	}
	return "Bitcoin"
}

// EncryptedMessage is the ECIES result.
type EncryptedMessage struct {
	Nonce   []byte `protobuf:"bytes,1,opt,name=nonce"`
	Message []byte `protobuf:"bytes,2,opt,name=message"`
	Hmac    []byte `protobuf:"bytes,3,opt,name=hmac"`
	Extra   Extra  `protobuf:"-"`
}

func (*EncryptedMessage) MessageType() MessageType { return MessageTypeEncryptedMessage }

func (m *EncryptedMessage) GetNonce() []byte {
	if m != nil {
		return m.Nonce
	}
	return nil
}

func (m *EncryptedMessage) GetMessage() []byte {
	if m != nil {
		return m.Message
	}
	return nil
}

func (m *EncryptedMessage) GetHmac() []byte {
	if m != nil {
		return m.Hmac
	}
	return nil
}

// DecryptMessage decrypts a message with the key at address_n.
// @next DecryptedMessage
type DecryptMessage struct {
	AddressN []uint32 `protobuf:"varint,1,rep,name=address_n"`
	Nonce    []byte   `protobuf:"bytes,2,opt,name=nonce"`
	Message  []byte   `protobuf:"bytes,3,opt,name=message"`
	Hmac     []byte   `protobuf:"bytes,4,opt,name=hmac"`
	Extra    Extra    `protobuf:"-"`
}

func (*DecryptMessage) MessageType() MessageType { return MessageTypeDecryptMessage }

func (m *DecryptMessage) GetAddressN() []uint32 {
	if m != nil {
		return m.AddressN
	}
	return nil
}

func (m *DecryptMessage) GetNonce() []byte {
	if m != nil {
		return m.Nonce
	}
	return nil
}

func (m *DecryptMessage) GetMessage() []byte {
	if m != nil {
		return m.Message
	}
	return nil
}

func (m *DecryptMessage) GetHmac() []byte {
	if m != nil {
		return m.Hmac
	}
	return nil
}

// DecryptedMessage is the plaintext and the sender address, if signed.
type DecryptedMessage struct {
	Message []byte  `protobuf:"bytes,1,opt,name=message"`
	Address *string `protobuf:"bytes,2,opt,name=address"`
	Extra   Extra   `protobuf:"-"`
}

func (*DecryptedMessage) MessageType() MessageType { return MessageTypeDecryptedMessage }

func (m *DecryptedMessage) GetMessage() []byte {
	if m != nil {
		return m.Message
	}
	return nil
}

func (m *DecryptedMessage) GetAddress() string {
	if m != nil && m.Address != nil {
		return *m.Address
	}
	return ""
}

// SignIdentity signs a login challenge for an identity URI.
// @next SignedIdentity
type SignIdentity struct {
	Identity        *IdentityType `protobuf:"bytes,1,opt,name=identity"`
	ChallengeHidden []byte        `protobuf:"bytes,2,opt,name=challenge_hidden"`
	ChallengeVisual *string       `protobuf:"bytes,3,opt,name=challenge_visual"`
	EcdsaCurveName  *string       `protobuf:"bytes,4,opt,name=ecdsa_curve_name"`
	Extra           Extra         `protobuf:"-"`
}

func (*SignIdentity) MessageType() MessageType { return MessageTypeSignIdentity }

func (m *SignIdentity) GetIdentity() *IdentityType {
	if m != nil {
		return m.Identity
	}
	return nil
}

func (m *SignIdentity) GetChallengeHidden() []byte {
	if m != nil {
		return m.ChallengeHidden
	}
	return nil
}

func (m *SignIdentity) GetChallengeVisual() string {
	if m != nil && m.ChallengeVisual != nil {
		return *m.ChallengeVisual
	}
	return ""
}

func (m *SignIdentity) GetEcdsaCurveName() string {
	if m != nil && m.EcdsaCurveName != nil {
		return *m.EcdsaCurveName
	}
	return ""
}

// SignedIdentity is the challenge signature.
type SignedIdentity struct {
	Address   *string `protobuf:"bytes,1,opt,name=address"`
	PublicKey []byte  `protobuf:"bytes,2,opt,name=public_key"`
	Signature []byte  `protobuf:"bytes,3,opt,name=signature"`
	Extra     Extra   `protobuf:"-"`
}

func (*SignedIdentity) MessageType() MessageType { return MessageTypeSignedIdentity }

func (m *SignedIdentity) GetAddress() string {
	if m != nil && m.Address != nil {
		return *m.Address
	}
	return ""
}

func (m *SignedIdentity) GetPublicKey() []byte {
	if m != nil {
		return m.PublicKey
	}
	return nil
}

func (m *SignedIdentity) GetSignature() []byte {
	if m != nil {
		return m.Signature
	}
	return nil
}

// GetECDHSessionKey derives a shared key with a peer public key.
// @next ECDHSessionKey
type GetECDHSessionKey struct {
	Identity       *IdentityType `protobuf:"bytes,1,opt,name=identity"`
	PeerPublicKey  []byte        `protobuf:"bytes,2,opt,name=peer_public_key"`
	EcdsaCurveName *string       `protobuf:"bytes,3,opt,name=ecdsa_curve_name"`
	Extra          Extra         `protobuf:"-"`
}

func (*GetECDHSessionKey) MessageType() MessageType { return MessageTypeGetECDHSessionKey }

func (m *GetECDHSessionKey) GetIdentity() *IdentityType {
	if m != nil {
		return m.Identity
	}
	return nil
}

func (m *GetECDHSessionKey) GetPeerPublicKey() []byte {
	if m != nil {
		return m.PeerPublicKey
	}
	return nil
}

func (m *GetECDHSessionKey) GetEcdsaCurveName() string {
	if m != nil && m.EcdsaCurveName != nil {
		return *m.EcdsaCurveName
	}
	return ""
}

// ECDHSessionKey is the derived shared key.
type ECDHSessionKey struct {
	SessionKey []byte `protobuf:"bytes,1,opt,name=session_key"`
	Extra      Extra  `protobuf:"-"`
}

func (*ECDHSessionKey) MessageType() MessageType { return MessageTypeECDHSessionKey }

func (m *ECDHSessionKey) GetSessionKey() []byte {
	if m != nil {
		return m.SessionKey
	}
	return nil
}
