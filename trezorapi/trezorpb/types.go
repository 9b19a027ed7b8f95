package trezorpb

import "strconv"

type FailureType int32

const (
	FailureUnexpectedMessage FailureType = 1
	FailureButtonExpected    FailureType = 2
	FailureDataError         FailureType = 3
	FailureActionCancelled   FailureType = 4
	FailurePinExpected       FailureType = 5
	FailurePinCancelled      FailureType = 6
	FailurePinInvalid        FailureType = 7
	FailureInvalidSignature  FailureType = 8
	FailureProcessError      FailureType = 9
	FailureNotEnoughFunds    FailureType = 10
	FailureNotInitialized    FailureType = 11
	FailureFirmwareError     FailureType = 99
)

var failureNames = map[FailureType]string{
	FailureUnexpectedMessage: "UnexpectedMessage",
	FailureButtonExpected:    "ButtonExpected",
	FailureDataError:         "DataError",
	FailureActionCancelled:   "ActionCancelled",
	FailurePinExpected:       "PinExpected",
	FailurePinCancelled:      "PinCancelled",
	FailurePinInvalid:        "PinInvalid",
	FailureInvalidSignature:  "InvalidSignature",
	FailureProcessError:      "ProcessError",
	FailureNotEnoughFunds:    "NotEnoughFunds",
	FailureNotInitialized:    "NotInitialized",
	FailureFirmwareError:     "FirmwareError",
}

func (t FailureType) String() string {
	if n, ok := failureNames[t]; ok {
		return n
	}
	return "FailureType(" + strconv.Itoa(int(t)) + ")"
}

type ButtonRequestType int32

const (
	ButtonRequestOther            ButtonRequestType = 1
	ButtonRequestFeeOverThreshold ButtonRequestType = 2
	ButtonRequestConfirmOutput    ButtonRequestType = 3
	ButtonRequestResetDevice      ButtonRequestType = 4
	ButtonRequestConfirmWord      ButtonRequestType = 5
	ButtonRequestWipeDevice       ButtonRequestType = 6
	ButtonRequestProtectCall      ButtonRequestType = 7
	ButtonRequestSignTx           ButtonRequestType = 8
	ButtonRequestFirmwareCheck    ButtonRequestType = 9
	ButtonRequestAddress          ButtonRequestType = 10
	ButtonRequestPublicKey        ButtonRequestType = 11
)

type PinMatrixRequestType int32

const (
	PinMatrixRequestCurrent   PinMatrixRequestType = 1
	PinMatrixRequestNewFirst  PinMatrixRequestType = 2
	PinMatrixRequestNewSecond PinMatrixRequestType = 3
)

// RequestType is what a TxRequest asks for next.
type RequestType int32

const (
	RequestTypeTxInput     RequestType = 0
	RequestTypeTxOutput    RequestType = 1
	RequestTypeTxMeta      RequestType = 2
	RequestTypeTxFinished  RequestType = 3
	RequestTypeTxExtraData RequestType = 4
)

type OutputScriptType int32

const (
	OutputPayToAddress     OutputScriptType = 0
	OutputPayToScriptHash  OutputScriptType = 1
	OutputPayToMultisig    OutputScriptType = 2
	OutputPayToOpReturn    OutputScriptType = 3
	OutputPayToWitness     OutputScriptType = 4
	OutputPayToP2SHWitness OutputScriptType = 5
)

type InputScriptType int32

const (
	InputSpendAddress     InputScriptType = 0
	InputSpendMultisig    InputScriptType = 1
	InputExternal         InputScriptType = 2
	InputSpendWitness     InputScriptType = 3
	InputSpendP2SHWitness InputScriptType = 4
)

type RecoveryDeviceType int32

const (
	RecoveryScrambledWords RecoveryDeviceType = 0
	RecoveryMatrix         RecoveryDeviceType = 1
)

type WordRequestType int32

const (
	WordRequestPlain   WordRequestType = 0
	WordRequestMatrix9 WordRequestType = 1
	WordRequestMatrix6 WordRequestType = 2
)

// Helpers for filling optional fields.

func String(v string) *string { return &v }
func Uint32(v uint32) *uint32 { return &v }
func Uint64(v uint64) *uint64 { return &v }
func Bool(v bool) *bool       { return &v }
