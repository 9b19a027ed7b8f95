// Package trezorpb is the catalog of Trezor wire messages.
//
// Every message kind is a plain Go struct whose fields carry protobuf
// struct tags; the marshal subpackage turns them into wire bytes.
// Optional fields are pointers, so absence is explicit; the Get* helpers
// return the documented default for absent fields.
//
// Fields the catalog does not know are kept in Extra, keyed by field
// number, and written back unchanged on re-encoding.
package trezorpb

import "strconv"

// MessageType is the numeric tag that identifies a message on the wire.
type MessageType int32

const (
	MessageTypeInitialize               MessageType = 0
	MessageTypePing                     MessageType = 1
	MessageTypeSuccess                  MessageType = 2
	MessageTypeFailure                  MessageType = 3
	MessageTypeChangePin                MessageType = 4
	MessageTypeWipeDevice               MessageType = 5
	MessageTypeFirmwareErase            MessageType = 6
	MessageTypeFirmwareUpload           MessageType = 7
	MessageTypeFirmwareRequest          MessageType = 8
	MessageTypeGetEntropy               MessageType = 9
	MessageTypeEntropy                  MessageType = 10
	MessageTypeGetPublicKey             MessageType = 11
	MessageTypePublicKey                MessageType = 12
	MessageTypeLoadDevice               MessageType = 13
	MessageTypeResetDevice              MessageType = 14
	MessageTypeSignTx                   MessageType = 15
	MessageTypeSimpleSignTx             MessageType = 16
	MessageTypeFeatures                 MessageType = 17
	MessageTypePinMatrixRequest         MessageType = 18
	MessageTypePinMatrixAck             MessageType = 19
	MessageTypeCancel                   MessageType = 20
	MessageTypeTxRequest                MessageType = 21
	MessageTypeTxAck                    MessageType = 22
	MessageTypeCipherKeyValue           MessageType = 23
	MessageTypeClearSession             MessageType = 24
	MessageTypeApplySettings            MessageType = 25
	MessageTypeButtonRequest            MessageType = 26
	MessageTypeButtonAck                MessageType = 27
	MessageTypeApplyFlags               MessageType = 28
	MessageTypeGetAddress               MessageType = 29
	MessageTypeAddress                  MessageType = 30
	MessageTypeSelfTest                 MessageType = 32
	MessageTypeBackupDevice             MessageType = 34
	MessageTypeEntropyRequest           MessageType = 35
	MessageTypeEntropyAck               MessageType = 36
	MessageTypeSignMessage              MessageType = 38
	MessageTypeVerifyMessage            MessageType = 39
	MessageTypeMessageSignature         MessageType = 40
	MessageTypePassphraseRequest        MessageType = 41
	MessageTypePassphraseAck            MessageType = 42
	MessageTypeEstimateTxSize           MessageType = 43
	MessageTypeTxSize                   MessageType = 44
	MessageTypeRecoveryDevice           MessageType = 45
	MessageTypeWordRequest              MessageType = 46
	MessageTypeWordAck                  MessageType = 47
	MessageTypeCipheredKeyValue         MessageType = 48
	MessageTypeEncryptMessage           MessageType = 49
	MessageTypeEncryptedMessage         MessageType = 50
	MessageTypeDecryptMessage           MessageType = 51
	MessageTypeDecryptedMessage         MessageType = 52
	MessageTypeSignIdentity             MessageType = 53
	MessageTypeSignedIdentity           MessageType = 54
	MessageTypeGetFeatures              MessageType = 55
	MessageTypeEthereumGetAddress       MessageType = 56
	MessageTypeEthereumAddress          MessageType = 57
	MessageTypeEthereumSignTx           MessageType = 58
	MessageTypeEthereumTxRequest        MessageType = 59
	MessageTypeEthereumTxAck            MessageType = 60
	MessageTypeGetECDHSessionKey        MessageType = 61
	MessageTypeECDHSessionKey           MessageType = 62
	MessageTypeSetU2FCounter            MessageType = 63
	MessageTypeEthereumSignMessage      MessageType = 64
	MessageTypeEthereumVerifyMessage    MessageType = 65
	MessageTypeEthereumMessageSignature MessageType = 66

	// debug link only
	MessageTypeDebugLinkDecision    MessageType = 100
	MessageTypeDebugLinkGetState    MessageType = 101
	MessageTypeDebugLinkState       MessageType = 102
	MessageTypeDebugLinkStop        MessageType = 103
	MessageTypeDebugLinkLog         MessageType = 104
	MessageTypeDebugLinkMemoryRead  MessageType = 110
	MessageTypeDebugLinkMemory      MessageType = 111
	MessageTypeDebugLinkMemoryWrite MessageType = 112
	MessageTypeDebugLinkFlashErase  MessageType = 113
)

// debugLinkStart is the first tag of the debug-only range.
const debugLinkStart MessageType = 100

// Message is implemented by every top-level wire message.
type Message interface {
	MessageType() MessageType
}

// Extra holds wire fields unknown to this catalog, keyed by field number.
// Values are the raw encoded fields, tag included, in arrival order.
type Extra map[uint32][]byte

// Unrecognized is what the codec returns for a type tag that has no
// entry in the catalog.
type Unrecognized struct {
	Kind MessageType
	Data []byte
}

func (m *Unrecognized) MessageType() MessageType { return m.Kind }

var registry = map[MessageType]func() Message{
	MessageTypeInitialize:               func() Message { return new(Initialize) },
	MessageTypePing:                     func() Message { return new(Ping) },
	MessageTypeSuccess:                  func() Message { return new(Success) },
	MessageTypeFailure:                  func() Message { return new(Failure) },
	MessageTypeChangePin:                func() Message { return new(ChangePin) },
	MessageTypeWipeDevice:               func() Message { return new(WipeDevice) },
	MessageTypeFirmwareErase:            func() Message { return new(FirmwareErase) },
	MessageTypeFirmwareUpload:           func() Message { return new(FirmwareUpload) },
	MessageTypeFirmwareRequest:          func() Message { return new(FirmwareRequest) },
	MessageTypeGetEntropy:               func() Message { return new(GetEntropy) },
	MessageTypeEntropy:                  func() Message { return new(Entropy) },
	MessageTypeGetPublicKey:             func() Message { return new(GetPublicKey) },
	MessageTypePublicKey:                func() Message { return new(PublicKey) },
	MessageTypeLoadDevice:               func() Message { return new(LoadDevice) },
	MessageTypeResetDevice:              func() Message { return new(ResetDevice) },
	MessageTypeSignTx:                   func() Message { return new(SignTx) },
	MessageTypeSimpleSignTx:             func() Message { return new(SimpleSignTx) },
	MessageTypeFeatures:                 func() Message { return new(Features) },
	MessageTypePinMatrixRequest:         func() Message { return new(PinMatrixRequest) },
	MessageTypePinMatrixAck:             func() Message { return new(PinMatrixAck) },
	MessageTypeCancel:                   func() Message { return new(Cancel) },
	MessageTypeTxRequest:                func() Message { return new(TxRequest) },
	MessageTypeTxAck:                    func() Message { return new(TxAck) },
	MessageTypeCipherKeyValue:           func() Message { return new(CipherKeyValue) },
	MessageTypeClearSession:             func() Message { return new(ClearSession) },
	MessageTypeApplySettings:            func() Message { return new(ApplySettings) },
	MessageTypeButtonRequest:            func() Message { return new(ButtonRequest) },
	MessageTypeButtonAck:                func() Message { return new(ButtonAck) },
	MessageTypeApplyFlags:               func() Message { return new(ApplyFlags) },
	MessageTypeGetAddress:               func() Message { return new(GetAddress) },
	MessageTypeAddress:                  func() Message { return new(Address) },
	MessageTypeSelfTest:                 func() Message { return new(SelfTest) },
	MessageTypeBackupDevice:             func() Message { return new(BackupDevice) },
	MessageTypeEntropyRequest:           func() Message { return new(EntropyRequest) },
	MessageTypeEntropyAck:               func() Message { return new(EntropyAck) },
	MessageTypeSignMessage:              func() Message { return new(SignMessage) },
	MessageTypeVerifyMessage:            func() Message { return new(VerifyMessage) },
	MessageTypeMessageSignature:         func() Message { return new(MessageSignature) },
	MessageTypePassphraseRequest:        func() Message { return new(PassphraseRequest) },
	MessageTypePassphraseAck:            func() Message { return new(PassphraseAck) },
	MessageTypeEstimateTxSize:           func() Message { return new(EstimateTxSize) },
	MessageTypeTxSize:                   func() Message { return new(TxSize) },
	MessageTypeRecoveryDevice:           func() Message { return new(RecoveryDevice) },
	MessageTypeWordRequest:              func() Message { return new(WordRequest) },
	MessageTypeWordAck:                  func() Message { return new(WordAck) },
	MessageTypeCipheredKeyValue:         func() Message { return new(CipheredKeyValue) },
	MessageTypeEncryptMessage:           func() Message { return new(EncryptMessage) },
	MessageTypeEncryptedMessage:         func() Message { return new(EncryptedMessage) },
	MessageTypeDecryptMessage:           func() Message { return new(DecryptMessage) },
	MessageTypeDecryptedMessage:         func() Message { return new(DecryptedMessage) },
	MessageTypeSignIdentity:             func() Message { return new(SignIdentity) },
	MessageTypeSignedIdentity:           func() Message { return new(SignedIdentity) },
	MessageTypeGetFeatures:              func() Message { return new(GetFeatures) },
	MessageTypeEthereumGetAddress:       func() Message { return new(EthereumGetAddress) },
	MessageTypeEthereumAddress:          func() Message { return new(EthereumAddress) },
	MessageTypeEthereumSignTx:           func() Message { return new(EthereumSignTx) },
	MessageTypeEthereumTxRequest:        func() Message { return new(EthereumTxRequest) },
	MessageTypeEthereumTxAck:            func() Message { return new(EthereumTxAck) },
	MessageTypeGetECDHSessionKey:        func() Message { return new(GetECDHSessionKey) },
	MessageTypeECDHSessionKey:           func() Message { return new(ECDHSessionKey) },
	MessageTypeSetU2FCounter:            func() Message { return new(SetU2FCounter) },
	MessageTypeEthereumSignMessage:      func() Message { return new(EthereumSignMessage) },
	MessageTypeEthereumVerifyMessage:    func() Message { return new(EthereumVerifyMessage) },
	MessageTypeEthereumMessageSignature: func() Message { return new(EthereumMessageSignature) },
	MessageTypeDebugLinkDecision:        func() Message { return new(DebugLinkDecision) },
	MessageTypeDebugLinkGetState:        func() Message { return new(DebugLinkGetState) },
	MessageTypeDebugLinkState:           func() Message { return new(DebugLinkState) },
	MessageTypeDebugLinkStop:            func() Message { return new(DebugLinkStop) },
	MessageTypeDebugLinkLog:             func() Message { return new(DebugLinkLog) },
	MessageTypeDebugLinkMemoryRead:      func() Message { return new(DebugLinkMemoryRead) },
	MessageTypeDebugLinkMemory:          func() Message { return new(DebugLinkMemory) },
	MessageTypeDebugLinkMemoryWrite:     func() Message { return new(DebugLinkMemoryWrite) },
	MessageTypeDebugLinkFlashErase:      func() Message { return new(DebugLinkFlashErase) },
}

var names = map[MessageType]string{
	MessageTypeInitialize:               "Initialize",
	MessageTypePing:                     "Ping",
	MessageTypeSuccess:                  "Success",
	MessageTypeFailure:                  "Failure",
	MessageTypeChangePin:                "ChangePin",
	MessageTypeWipeDevice:               "WipeDevice",
	MessageTypeFirmwareErase:            "FirmwareErase",
	MessageTypeFirmwareUpload:           "FirmwareUpload",
	MessageTypeFirmwareRequest:          "FirmwareRequest",
	MessageTypeGetEntropy:               "GetEntropy",
	MessageTypeEntropy:                  "Entropy",
	MessageTypeGetPublicKey:             "GetPublicKey",
	MessageTypePublicKey:                "PublicKey",
	MessageTypeLoadDevice:               "LoadDevice",
	MessageTypeResetDevice:              "ResetDevice",
	MessageTypeSignTx:                   "SignTx",
	MessageTypeSimpleSignTx:             "SimpleSignTx",
	MessageTypeFeatures:                 "Features",
	MessageTypePinMatrixRequest:         "PinMatrixRequest",
	MessageTypePinMatrixAck:             "PinMatrixAck",
	MessageTypeCancel:                   "Cancel",
	MessageTypeTxRequest:                "TxRequest",
	MessageTypeTxAck:                    "TxAck",
	MessageTypeCipherKeyValue:           "CipherKeyValue",
	MessageTypeClearSession:             "ClearSession",
	MessageTypeApplySettings:            "ApplySettings",
	MessageTypeButtonRequest:            "ButtonRequest",
	MessageTypeButtonAck:                "ButtonAck",
	MessageTypeApplyFlags:               "ApplyFlags",
	MessageTypeGetAddress:               "GetAddress",
	MessageTypeAddress:                  "Address",
	MessageTypeSelfTest:                 "SelfTest",
	MessageTypeBackupDevice:             "BackupDevice",
	MessageTypeEntropyRequest:           "EntropyRequest",
	MessageTypeEntropyAck:               "EntropyAck",
	MessageTypeSignMessage:              "SignMessage",
	MessageTypeVerifyMessage:            "VerifyMessage",
	MessageTypeMessageSignature:         "MessageSignature",
	MessageTypePassphraseRequest:        "PassphraseRequest",
	MessageTypePassphraseAck:            "PassphraseAck",
	MessageTypeEstimateTxSize:           "EstimateTxSize",
	MessageTypeTxSize:                   "TxSize",
	MessageTypeRecoveryDevice:           "RecoveryDevice",
	MessageTypeWordRequest:              "WordRequest",
	MessageTypeWordAck:                  "WordAck",
	MessageTypeCipheredKeyValue:         "CipheredKeyValue",
	MessageTypeEncryptMessage:           "EncryptMessage",
	MessageTypeEncryptedMessage:         "EncryptedMessage",
	MessageTypeDecryptMessage:           "DecryptMessage",
	MessageTypeDecryptedMessage:         "DecryptedMessage",
	MessageTypeSignIdentity:             "SignIdentity",
	MessageTypeSignedIdentity:           "SignedIdentity",
	MessageTypeGetFeatures:              "GetFeatures",
	MessageTypeEthereumGetAddress:       "EthereumGetAddress",
	MessageTypeEthereumAddress:          "EthereumAddress",
	MessageTypeEthereumSignTx:           "EthereumSignTx",
	MessageTypeEthereumTxRequest:        "EthereumTxRequest",
	MessageTypeEthereumTxAck:            "EthereumTxAck",
	MessageTypeGetECDHSessionKey:        "GetECDHSessionKey",
	MessageTypeECDHSessionKey:           "ECDHSessionKey",
	MessageTypeSetU2FCounter:            "SetU2FCounter",
	MessageTypeEthereumSignMessage:      "EthereumSignMessage",
	MessageTypeEthereumVerifyMessage:    "EthereumVerifyMessage",
	MessageTypeEthereumMessageSignature: "EthereumMessageSignature",
	MessageTypeDebugLinkDecision:        "DebugLinkDecision",
	MessageTypeDebugLinkGetState:        "DebugLinkGetState",
	MessageTypeDebugLinkState:           "DebugLinkState",
	MessageTypeDebugLinkStop:            "DebugLinkStop",
	MessageTypeDebugLinkLog:             "DebugLinkLog",
	MessageTypeDebugLinkMemoryRead:      "DebugLinkMemoryRead",
	MessageTypeDebugLinkMemory:          "DebugLinkMemory",
	MessageTypeDebugLinkMemoryWrite:     "DebugLinkMemoryWrite",
	MessageTypeDebugLinkFlashErase:      "DebugLinkFlashErase",
}

func (t MessageType) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return "MessageType(" + strconv.Itoa(int(t)) + ")"
}

// IsDebug reports whether the tag belongs to the debug-link range.
func (t MessageType) IsDebug() bool {
	return t >= debugLinkStart
}

// New returns an empty message for the tag, or false if the tag is unknown.
func New(kind MessageType) (Message, bool) {
	f, ok := registry[kind]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Types lists every known message tag.
func Types() []MessageType {
	res := make([]MessageType, 0, len(registry))
	for t := range registry {
		res = append(res, t)
	}
	return res
}

// Type returns the wire tag of msg.
func Type(msg Message) MessageType {
	return msg.MessageType()
}

// Name returns the catalog name of a wire tag.
func Name(kind uint16) string {
	return MessageType(kind).String()
}
