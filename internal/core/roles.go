package core

import (
	pb "github.com/trezor/trezorlib-go/trezorapi/trezorpb"
)

// terminal maps each request to the message that completes it.
// Streaming requests that share a type with the terminal message
// (TxRequest, EthereumTxRequest) are told apart by streaming below.
var terminal = map[pb.MessageType]pb.MessageType{
	pb.MessageTypeInitialize:        pb.MessageTypeFeatures,
	pb.MessageTypeGetFeatures:       pb.MessageTypeFeatures,
	pb.MessageTypeClearSession:      pb.MessageTypeSuccess,
	pb.MessageTypeApplySettings:     pb.MessageTypeSuccess,
	pb.MessageTypeApplyFlags:        pb.MessageTypeSuccess,
	pb.MessageTypeChangePin:         pb.MessageTypeSuccess,
	pb.MessageTypePing:              pb.MessageTypeSuccess,
	pb.MessageTypeGetEntropy:        pb.MessageTypeEntropy,
	pb.MessageTypeWipeDevice:        pb.MessageTypeSuccess,
	pb.MessageTypeLoadDevice:        pb.MessageTypeSuccess,
	pb.MessageTypeResetDevice:       pb.MessageTypeSuccess,
	pb.MessageTypeBackupDevice:      pb.MessageTypeSuccess,
	pb.MessageTypeRecoveryDevice:    pb.MessageTypeSuccess,
	pb.MessageTypeSetU2FCounter:     pb.MessageTypeSuccess,
	pb.MessageTypeFirmwareErase:     pb.MessageTypeSuccess,
	pb.MessageTypeFirmwareUpload:    pb.MessageTypeSuccess,
	pb.MessageTypeSelfTest:          pb.MessageTypeSuccess,
	pb.MessageTypeGetPublicKey:      pb.MessageTypePublicKey,
	pb.MessageTypeGetAddress:        pb.MessageTypeAddress,
	pb.MessageTypeSignMessage:       pb.MessageTypeMessageSignature,
	pb.MessageTypeVerifyMessage:     pb.MessageTypeSuccess,
	pb.MessageTypeEstimateTxSize:    pb.MessageTypeTxSize,
	pb.MessageTypeSignTx:            pb.MessageTypeTxRequest,
	pb.MessageTypeSimpleSignTx:      pb.MessageTypeTxRequest,
	pb.MessageTypeCipherKeyValue:    pb.MessageTypeCipheredKeyValue,
	pb.MessageTypeEncryptMessage:    pb.MessageTypeEncryptedMessage,
	pb.MessageTypeDecryptMessage:    pb.MessageTypeDecryptedMessage,
	pb.MessageTypeSignIdentity:      pb.MessageTypeSignedIdentity,
	pb.MessageTypeGetECDHSessionKey: pb.MessageTypeECDHSessionKey,

	pb.MessageTypeEthereumGetAddress:    pb.MessageTypeEthereumAddress,
	pb.MessageTypeEthereumSignTx:        pb.MessageTypeEthereumTxRequest,
	pb.MessageTypeEthereumSignMessage:   pb.MessageTypeEthereumMessageSignature,
	pb.MessageTypeEthereumVerifyMessage: pb.MessageTypeSuccess,

	pb.MessageTypeDebugLinkGetState:   pb.MessageTypeDebugLinkState,
	pb.MessageTypeDebugLinkMemoryRead: pb.MessageTypeDebugLinkMemory,
}

// streaming reports whether msg asks the host for the next piece of a
// device-paced stream rather than finishing the call.
func streaming(msg pb.Message) bool {
	switch m := msg.(type) {
	case *pb.TxRequest:
		return m.GetRequestType() != pb.RequestTypeTxFinished
	case *pb.EthereumTxRequest:
		return m.DataLength != nil
	case *pb.FirmwareRequest, *pb.EntropyRequest:
		return true
	}
	return false
}

// prompt reports whether msg waits for user interaction.
func prompt(msg pb.Message) bool {
	switch msg.(type) {
	case *pb.ButtonRequest, *pb.PinMatrixRequest, *pb.PassphraseRequest, *pb.WordRequest:
		return true
	}
	return false
}

// isTerminal reports whether msg completes req.
func isTerminal(req pb.MessageType, msg pb.Message) bool {
	t, ok := terminal[req]
	return ok && t == msg.MessageType() && !streaming(msg)
}

// bindDriver picks the streaming driver a request needs, or nil.
func bindDriver(req pb.Message, cb *Callbacks) driver {
	switch r := req.(type) {
	case *pb.SignTx:
		return newTxDriver(cb.Tx, r.GetVersion(), r.GetLockTime(), r.GetInputsCount(), r.GetOutputsCount())
	case *pb.SimpleSignTx:
		return newTxDriver(&TxData{
			Inputs:  r.Inputs,
			Outputs: r.Outputs,
			Prev:    r.Transactions,
		}, r.GetVersion(), r.GetLockTime(), uint32(len(r.Inputs)), uint32(len(r.Outputs)))
	case *pb.EthereumSignTx:
		return newEthereumDriver(cb.Payload, len(r.DataInitialChunk))
	case *pb.FirmwareErase:
		if r.Length != nil {
			return newFirmwareDriver(cb.Payload)
		}
	case *pb.ResetDevice:
		return newEntropyDriver(cb.Entropy)
	}
	return nil
}
