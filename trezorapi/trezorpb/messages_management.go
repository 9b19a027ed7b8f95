package trezorpb

// Initialize resets the device to its default state and asks for Features.
// @next Features
type Initialize struct {
	Extra Extra `protobuf:"-"`
}

func (*Initialize) MessageType() MessageType { return MessageTypeInitialize }

// GetFeatures asks for Features without resetting the device state.
type GetFeatures struct {
	Extra Extra `protobuf:"-"`
}

func (*GetFeatures) MessageType() MessageType { return MessageTypeGetFeatures }

// Features describes the device: firmware version, settings and state.
type Features struct {
	Vendor               *string     `protobuf:"bytes,1,opt,name=vendor"`
	MajorVersion         *uint32     `protobuf:"varint,2,opt,name=major_version"`
	MinorVersion         *uint32     `protobuf:"varint,3,opt,name=minor_version"`
	PatchVersion         *uint32     `protobuf:"varint,4,opt,name=patch_version"`
	BootloaderMode       *bool       `protobuf:"varint,5,opt,name=bootloader_mode"`
	DeviceId             *string     `protobuf:"bytes,6,opt,name=device_id"`
	PinProtection        *bool       `protobuf:"varint,7,opt,name=pin_protection"`
	PassphraseProtection *bool       `protobuf:"varint,8,opt,name=passphrase_protection"`
	Language             *string     `protobuf:"bytes,9,opt,name=language"`
	Label                *string     `protobuf:"bytes,10,opt,name=label"`
	Coins                []*CoinType `protobuf:"bytes,11,rep,name=coins"`
	Initialized          *bool       `protobuf:"varint,12,opt,name=initialized"`
	Revision             []byte      `protobuf:"bytes,13,opt,name=revision"`
	BootloaderHash       []byte      `protobuf:"bytes,14,opt,name=bootloader_hash"`
	Imported             *bool       `protobuf:"varint,15,opt,name=imported"`
	PinCached            *bool       `protobuf:"varint,16,opt,name=pin_cached"`
	PassphraseCached     *bool       `protobuf:"varint,17,opt,name=passphrase_cached"`
	FirmwarePresent      *bool       `protobuf:"varint,18,opt,name=firmware_present"`
	NeedsBackup          *bool       `protobuf:"varint,19,opt,name=needs_backup"`
	Flags                *uint32     `protobuf:"varint,20,opt,name=flags"`
	Model                *string     `protobuf:"bytes,21,opt,name=model"`
	FwMajor              *uint32     `protobuf:"varint,22,opt,name=fw_major"`
	FwMinor              *uint32     `protobuf:"varint,23,opt,name=fw_minor"`
	FwPatch              *uint32     `protobuf:"varint,24,opt,name=fw_patch"`
	FwVendor             *string     `protobuf:"bytes,25,opt,name=fw_vendor"`
	FwVendorKeys         []byte      `protobuf:"bytes,26,opt,name=fw_vendor_keys"`
	UnfinishedBackup     *bool       `protobuf:"varint,27,opt,name=unfinished_backup"`
	Extra                Extra       `protobuf:"-"`
}

func (*Features) MessageType() MessageType { return MessageTypeFeatures }

func (m *Features) GetVendor() string {
	if m != nil && m.Vendor != nil {
		return *m.Vendor
	}
	return ""
}

func (m *Features) GetMajorVersion() uint32 {
	if m != nil && m.MajorVersion != nil {
		return *m.MajorVersion
	}
	return 0
}

func (m *Features) GetMinorVersion() uint32 {
	if m != nil && m.MinorVersion != nil {
		return *m.MinorVersion
	}
	return 0
}

func (m *Features) GetPatchVersion() uint32 {
	if m != nil && m.PatchVersion != nil {
		return *m.PatchVersion
	}
	return 0
}

func (m *Features) GetBootloaderMode() bool {
	if m != nil && m.BootloaderMode != nil {
		return *m.BootloaderMode
	}
	return false
}

func (m *Features) GetDeviceId() string {
	if m != nil && m.DeviceId != nil {
		return *m.DeviceId
	}
	return ""
}

func (m *Features) GetPinProtection() bool {
	if m != nil && m.PinProtection != nil {
		return *m.PinProtection
	}
	return false
}

func (m *Features) GetPassphraseProtection() bool {
	if m != nil && m.PassphraseProtection != nil {
		return *m.PassphraseProtection
	}
	return false
}

func (m *Features) GetLanguage() string {
	if m != nil && m.Language != nil {
		return *m.Language
	}
	return ""
}

func (m *Features) GetLabel() string {
	if m != nil && m.Label != nil {
		return *m.Label
	}
	return ""
}

func (m *Features) GetCoins() []*CoinType {
	if m != nil {
		return m.Coins
	}
	return nil
}

func (m *Features) GetInitialized() bool {
	if m != nil && m.Initialized != nil {
		return *m.Initialized
	}
	return false
}

func (m *Features) GetRevision() []byte {
	if m != nil {
		return m.Revision
	}
	return nil
}

func (m *Features) GetBootloaderHash() []byte {
	if m != nil {
		return m.BootloaderHash
	}
	return nil
}

func (m *Features) GetImported() bool {
	if m != nil && m.Imported != nil {
		return *m.Imported
	}
	return false
}

func (m *Features) GetPinCached() bool {
	if m != nil && m.PinCached != nil {
		return *m.PinCached
	}
	return false
}

func (m *Features) GetPassphraseCached() bool {
	if m != nil && m.PassphraseCached != nil {
		return *m.PassphraseCached
	}
	return false
}

func (m *Features) GetFirmwarePresent() bool {
	if m != nil && m.FirmwarePresent != nil {
		return *m.FirmwarePresent
	}
	return false
}

func (m *Features) GetNeedsBackup() bool {
	if m != nil && m.NeedsBackup != nil {
		return *m.NeedsBackup
	}
	return false
}

func (m *Features) GetFlags() uint32 {
	if m != nil && m.Flags != nil {
		return *m.Flags
	}
	return 0
}

func (m *Features) GetModel() string {
	if m != nil && m.Model != nil {
		return *m.Model
	}
	return ""
}

func (m *Features) GetFwMajor() uint32 {
	if m != nil && m.FwMajor != nil {
		return *m.FwMajor
	}
	return 0
}

func (m *Features) GetFwMinor() uint32 {
	if m != nil && m.FwMinor != nil {
		return *m.FwMinor
	}
	return 0
}

func (m *Features) GetFwPatch() uint32 {
	if m != nil && m.FwPatch != nil {
		return *m.FwPatch
	}
	return 0
}

func (m *Features) GetFwVendor() string {
	if m != nil && m.FwVendor != nil {
		return *m.FwVendor
	}
	return ""
}

func (m *Features) GetFwVendorKeys() []byte {
	if m != nil {
		return m.FwVendorKeys
	}
	return nil
}

func (m *Features) GetUnfinishedBackup() bool {
	if m != nil && m.UnfinishedBackup != nil {
		return *m.UnfinishedBackup
	}
	return false
}

// ClearSession forgets the cached PIN and passphrase.
type ClearSession struct {
	Extra Extra `protobuf:"-"`
}

func (*ClearSession) MessageType() MessageType { return MessageTypeClearSession }

// ApplySettings changes the label, language, passphrase use or homescreen.
type ApplySettings struct {
	Language        *string `protobuf:"bytes,1,opt,name=language"`
	Label           *string `protobuf:"bytes,2,opt,name=label"`
	UsePassphrase   *bool   `protobuf:"varint,3,opt,name=use_passphrase"`
	Homescreen      []byte  `protobuf:"bytes,4,opt,name=homescreen"`
	AutoLockDelayMs *uint32 `protobuf:"varint,6,opt,name=auto_lock_delay_ms"`
	Extra           Extra   `protobuf:"-"`
}

func (*ApplySettings) MessageType() MessageType { return MessageTypeApplySettings }

func (m *ApplySettings) GetLanguage() string {
	if m != nil && m.Language != nil {
		return *m.Language
	}
	return ""
}

func (m *ApplySettings) GetLabel() string {
	if m != nil && m.Label != nil {
		return *m.Label
	}
	return ""
}

func (m *ApplySettings) GetUsePassphrase() bool {
	if m != nil && m.UsePassphrase != nil {
		return *m.UsePassphrase
	}
	return false
}

func (m *ApplySettings) GetHomescreen() []byte {
	if m != nil {
		return m.Homescreen
	}
	return nil
}

func (m *ApplySettings) GetAutoLockDelayMs() uint32 {
	if m != nil && m.AutoLockDelayMs != nil {
		return *m.AutoLockDelayMs
	}
	return 0
}

// ApplyFlags sets persistent device flags (bitwise OR with the current ones).
type ApplyFlags struct {
	Flags *uint32 `protobuf:"varint,1,opt,name=flags"`
	Extra Extra   `protobuf:"-"`
}

func (*ApplyFlags) MessageType() MessageType { return MessageTypeApplyFlags }

func (m *ApplyFlags) GetFlags() uint32 {
	if m != nil && m.Flags != nil {
		return *m.Flags
	}
	return 0
}

// ChangePin starts setting, changing or removing the PIN.
type ChangePin struct {
	Remove *bool `protobuf:"varint,1,opt,name=remove"`
	Extra  Extra `protobuf:"-"`
}

func (*ChangePin) MessageType() MessageType { return MessageTypeChangePin }

func (m *ChangePin) GetRemove() bool {
	if m != nil && m.Remove != nil {
		return *m.Remove
	}
	return false
}

// Ping asks the device to echo a message, optionally behind protection prompts.
type Ping struct {
	Message              *string `protobuf:"bytes,1,opt,name=message"`
	ButtonProtection     *bool   `protobuf:"varint,2,opt,name=button_protection"`
	PinProtection        *bool   `protobuf:"varint,3,opt,name=pin_protection"`
	PassphraseProtection *bool   `protobuf:"varint,4,opt,name=passphrase_protection"`
	Extra                Extra   `protobuf:"-"`
}

func (*Ping) MessageType() MessageType { return MessageTypePing }

func (m *Ping) GetMessage() string {
	if m != nil && m.Message != nil {
		return *m.Message
	}
	return ""
}

func (m *Ping) GetButtonProtection() bool {
	if m != nil && m.ButtonProtection != nil {
		return *m.ButtonProtection
	}
	return false
}

func (m *Ping) GetPinProtection() bool {
	if m != nil && m.PinProtection != nil {
		return *m.PinProtection
	}
	return false
}

func (m *Ping) GetPassphraseProtection() bool {
	if m != nil && m.PassphraseProtection != nil {
		return *m.PassphraseProtection
	}
	return false
}

// Success is the generic positive response.
type Success struct {
	Message *string `protobuf:"bytes,1,opt,name=message"`
	Extra   Extra   `protobuf:"-"`
}

func (*Success) MessageType() MessageType { return MessageTypeSuccess }

func (m *Success) GetMessage() string {
	if m != nil && m.Message != nil {
		return *m.Message
	}
	return ""
}

// Failure is the generic negative response.
type Failure struct {
	Code    *FailureType `protobuf:"varint,1,opt,name=code,enum=FailureType"`
	Message *string      `protobuf:"bytes,2,opt,name=message"`
	Extra   Extra        `protobuf:"-"`
}

func (*Failure) MessageType() MessageType { return MessageTypeFailure }

func (m *Failure) GetCode() FailureType {
	if m != nil && m.Code != nil {
		return *m.Code
	}
	return FailureType(0)
}

func (m *Failure) GetMessage() string {
	if m != nil && m.Message != nil {
		return *m.Message
	}
	return ""
}

// ButtonRequest tells the host the device waits for a physical button press.
// @next ButtonAck
type ButtonRequest struct {
	Code  *ButtonRequestType `protobuf:"varint,1,opt,name=code,enum=ButtonRequestType"`
	Data  *string            `protobuf:"bytes,2,opt,name=data"`
	Extra Extra              `protobuf:"-"`
}

func (*ButtonRequest) MessageType() MessageType { return MessageTypeButtonRequest }

func (m *ButtonRequest) GetCode() ButtonRequestType {
	if m != nil && m.Code != nil {
		return *m.Code
	}
	return ButtonRequestType(0)
}

func (m *ButtonRequest) GetData() string {
	if m != nil && m.Data != nil {
		return *m.Data
	}
	return ""
}

// ButtonAck lets the device continue to the button confirmation.
type ButtonAck struct {
	Extra Extra `protobuf:"-"`
}

func (*ButtonAck) MessageType() MessageType { return MessageTypeButtonAck }

// PinMatrixRequest asks for a PIN encoded through the scrambled matrix shown on the device.
// @next PinMatrixAck
type PinMatrixRequest struct {
	Type  *PinMatrixRequestType `protobuf:"varint,1,opt,name=type,enum=PinMatrixRequestType"`
	Extra Extra                 `protobuf:"-"`
}

func (*PinMatrixRequest) MessageType() MessageType { return MessageTypePinMatrixRequest }

func (m *PinMatrixRequest) GetType() PinMatrixRequestType {
	if m != nil && m.Type != nil {
		return *m.Type
	}
	return PinMatrixRequestType(0)
}

// PinMatrixAck carries the matrix positions of the PIN.
type PinMatrixAck struct {
	Pin   *string `protobuf:"bytes,1,req,name=pin"`
	Extra Extra   `protobuf:"-"`
}

func (*PinMatrixAck) MessageType() MessageType { return MessageTypePinMatrixAck }

func (m *PinMatrixAck) GetPin() string {
	if m != nil && m.Pin != nil {
		return *m.Pin
	}
	return ""
}

// Cancel aborts the last device action that required user interaction.
type Cancel struct {
	Extra Extra `protobuf:"-"`
}

func (*Cancel) MessageType() MessageType { return MessageTypeCancel }

// PassphraseRequest asks for the wallet passphrase.
// @next PassphraseAck
type PassphraseRequest struct {
	OnDevice *bool `protobuf:"varint,1,opt,name=on_device"`
	Extra    Extra `protobuf:"-"`
}

func (*PassphraseRequest) MessageType() MessageType { return MessageTypePassphraseRequest }

func (m *PassphraseRequest) GetOnDevice() bool {
	if m != nil && m.OnDevice != nil {
		return *m.OnDevice
	}
	return false
}

// PassphraseAck carries the passphrase; an empty passphrase is valid.
type PassphraseAck struct {
	Passphrase *string `protobuf:"bytes,1,opt,name=passphrase"`
	State      []byte  `protobuf:"bytes,2,opt,name=state"`
	Extra      Extra   `protobuf:"-"`
}

func (*PassphraseAck) MessageType() MessageType { return MessageTypePassphraseAck }

func (m *PassphraseAck) GetPassphrase() string {
	if m != nil && m.Passphrase != nil {
		return *m.Passphrase
	}
	return ""
}

func (m *PassphraseAck) GetState() []byte {
	if m != nil {
		return m.State
	}
	return nil
}

// GetEntropy asks for random bytes from the device RNG.
type GetEntropy struct {
	Size  *uint32 `protobuf:"varint,1,req,name=size"`
	Extra Extra   `protobuf:"-"`
}

func (*GetEntropy) MessageType() MessageType { return MessageTypeGetEntropy }

func (m *GetEntropy) GetSize() uint32 {
	if m != nil && m.Size != nil {
		return *m.Size
	}
	return 0
}

// Entropy is the device RNG output.
type Entropy struct {
	Entropy []byte `protobuf:"bytes,1,req,name=entropy"`
	Extra   Extra  `protobuf:"-"`
}

func (*Entropy) MessageType() MessageType { return MessageTypeEntropy }

func (m *Entropy) GetEntropy() []byte {
	if m != nil {
		return m.Entropy
	}
	return nil
}

// WipeDevice removes all sensitive data and settings.
type WipeDevice struct {
	Extra Extra `protobuf:"-"`
}

func (*WipeDevice) MessageType() MessageType { return MessageTypeWipeDevice }

// LoadDevice loads a seed or node directly onto the device.
type LoadDevice struct {
	Mnemonic             *string     `protobuf:"bytes,1,opt,name=mnemonic"`
	Node                 *HDNodeType `protobuf:"bytes,2,opt,name=node"`
	Pin                  *string     `protobuf:"bytes,3,opt,name=pin"`
	PassphraseProtection *bool       `protobuf:"varint,4,opt,name=passphrase_protection"`
	Language             *string     `protobuf:"bytes,5,opt,name=language,def=english"`
	Label                *string     `protobuf:"bytes,6,opt,name=label"`
	SkipChecksum         *bool       `protobuf:"varint,7,opt,name=skip_checksum"`
	U2FCounter           *uint32     `protobuf:"varint,8,opt,name=u2f_counter"`
	Extra                Extra       `protobuf:"-"`
}

func (*LoadDevice) MessageType() MessageType { return MessageTypeLoadDevice }

func (m *LoadDevice) GetMnemonic() string {
	if m != nil && m.Mnemonic != nil {
		return *m.Mnemonic
	}
	return ""
}

func (m *LoadDevice) GetNode() *HDNodeType {
	if m != nil {
		return m.Node
	}
	return nil
}

func (m *LoadDevice) GetPin() string {
	if m != nil && m.Pin != nil {
		return *m.Pin
	}
	return ""
}

func (m *LoadDevice) GetPassphraseProtection() bool {
	if m != nil && m.PassphraseProtection != nil {
		return *m.PassphraseProtection
	}
	return false
}

func (m *LoadDevice) GetLanguage() string {
	if m != nil && m.Language != nil {
		return *m.Language
	}
	return "english"
}

func (m *LoadDevice) GetLabel() string {
	if m != nil && m.Label != nil {
		return *m.Label
	}
	return ""
}

func (m *LoadDevice) GetSkipChecksum() bool {
	if m != nil && m.SkipChecksum != nil {
		return *m.SkipChecksum
	}
	return false
}

func (m *LoadDevice) GetU2FCounter() uint32 {
	if m != nil && m.U2FCounter != nil {
		return *m.U2FCounter
	}
	return 0
}

// ResetDevice generates a new seed on the device, mixing in host entropy.
// @next EntropyRequest
type ResetDevice struct {
	DisplayRandom        *bool   `protobuf:"varint,1,opt,name=display_random"`
	Strength             *uint32 `protobuf:"varint,2,opt,name=strength,def=256"`
	PassphraseProtection *bool   `protobuf:"varint,3,opt,name=passphrase_protection"`
	PinProtection        *bool   `protobuf:"varint,4,opt,name=pin_protection"`
	Language             *string `protobuf:"bytes,5,opt,name=language,def=english"`
	Label                *string `protobuf:"bytes,6,opt,name=label"`
	U2FCounter           *uint32 `protobuf:"varint,7,opt,name=u2f_counter"`
	SkipBackup           *bool   `protobuf:"varint,8,opt,name=skip_backup"`
	Extra                Extra   `protobuf:"-"`
}

func (*ResetDevice) MessageType() MessageType { return MessageTypeResetDevice }

func (m *ResetDevice) GetDisplayRandom() bool {
	if m != nil && m.DisplayRandom != nil {
		return *m.DisplayRandom
	}
	return false
}

func (m *ResetDevice) GetStrength() uint32 {
	if m != nil && m.Strength != nil {
		return *m.Strength
	}
	return 256
}

func (m *ResetDevice) GetPassphraseProtection() bool {
	if m != nil && m.PassphraseProtection != nil {
		return *m.PassphraseProtection
	}
	return false
}

func (m *ResetDevice) GetPinProtection() bool {
	if m != nil && m.PinProtection != nil {
		return *m.PinProtection
	}
	return false
}

func (m *ResetDevice) GetLanguage() string {
	if m != nil && m.Language != nil {
		return *m.Language
	}
	return "english"
}

func (m *ResetDevice) GetLabel() string {
	if m != nil && m.Label != nil {
		return *m.Label
	}
	return ""
}

func (m *ResetDevice) GetU2FCounter() uint32 {
	if m != nil && m.U2FCounter != nil {
		return *m.U2FCounter
	}
	return 0
}

func (m *ResetDevice) GetSkipBackup() bool {
	if m != nil && m.SkipBackup != nil {
		return *m.SkipBackup
	}
	return false
}

// BackupDevice starts the seed backup of a device reset with skip_backup.
type BackupDevice struct {
	Extra Extra `protobuf:"-"`
}

func (*BackupDevice) MessageType() MessageType { return MessageTypeBackupDevice }

// EntropyRequest asks the host for entropy to mix with the device RNG.
// Size is the number of bytes wanted; when absent, 32 bytes are sent.
type EntropyRequest struct {
	Size  *uint32 `protobuf:"varint,1,opt,name=size,def=32"`
	Extra Extra   `protobuf:"-"`
}

func (*EntropyRequest) MessageType() MessageType { return MessageTypeEntropyRequest }

func (m *EntropyRequest) GetSize() uint32 {
	if m != nil && m.Size != nil {
		return *m.Size
	}
	return 32
}

// EntropyAck carries the host entropy.
type EntropyAck struct {
	Entropy []byte `protobuf:"bytes,1,opt,name=entropy"`
	Extra   Extra  `protobuf:"-"`
}

func (*EntropyAck) MessageType() MessageType { return MessageTypeEntropyAck }

func (m *EntropyAck) GetEntropy() []byte {
	if m != nil {
		return m.Entropy
	}
	return nil
}

// RecoveryDevice starts seed recovery; the device then asks for words.
// @next WordRequest
type RecoveryDevice struct {
	WordCount            *uint32             `protobuf:"varint,1,opt,name=word_count"`
	PassphraseProtection *bool               `protobuf:"varint,2,opt,name=passphrase_protection"`
	PinProtection        *bool               `protobuf:"varint,3,opt,name=pin_protection"`
	Language             *string             `protobuf:"bytes,4,opt,name=language,def=english"`
	Label                *string             `protobuf:"bytes,5,opt,name=label"`
	EnforceWordlist      *bool               `protobuf:"varint,6,opt,name=enforce_wordlist"`
	Type                 *RecoveryDeviceType `protobuf:"varint,8,opt,name=type,enum=RecoveryDeviceType"`
	U2FCounter           *uint32             `protobuf:"varint,9,opt,name=u2f_counter"`
	DryRun               *bool               `protobuf:"varint,10,opt,name=dry_run"`
	Extra                Extra               `protobuf:"-"`
}

func (*RecoveryDevice) MessageType() MessageType { return MessageTypeRecoveryDevice }

func (m *RecoveryDevice) GetWordCount() uint32 {
	if m != nil && m.WordCount != nil {
		return *m.WordCount
	}
	return 0
}

func (m *RecoveryDevice) GetPassphraseProtection() bool {
	if m != nil && m.PassphraseProtection != nil {
		return *m.PassphraseProtection
	}
	return false
}

func (m *RecoveryDevice) GetPinProtection() bool {
	if m != nil && m.PinProtection != nil {
		return *m.PinProtection
	}
	return false
}

func (m *RecoveryDevice) GetLanguage() string {
	if m != nil && m.Language != nil {
		return *m.Language
	}
	return "english"
}

func (m *RecoveryDevice) GetLabel() string {
	if m != nil && m.Label != nil {
		return *m.Label
	}
	return ""
}

func (m *RecoveryDevice) GetEnforceWordlist() bool {
	if m != nil && m.EnforceWordlist != nil {
		return *m.EnforceWordlist
	}
	return false
}

func (m *RecoveryDevice) GetType() RecoveryDeviceType {
	if m != nil && m.Type != nil {
		return *m.Type
	}
	return RecoveryDeviceType(0)
}

func (m *RecoveryDevice) GetU2FCounter() uint32 {
	if m != nil && m.U2FCounter != nil {
		return *m.U2FCounter
	}
	return 0
}

func (m *RecoveryDevice) GetDryRun() bool {
	if m != nil && m.DryRun != nil {
		return *m.DryRun
	}
	return false
}

// WordRequest asks for one recovery word.
// @next WordAck
type WordRequest struct {
	Type  *WordRequestType `protobuf:"varint,1,opt,name=type,enum=WordRequestType"`
	Extra Extra            `protobuf:"-"`
}

func (*WordRequest) MessageType() MessageType { return MessageTypeWordRequest }

func (m *WordRequest) GetType() WordRequestType {
	if m != nil && m.Type != nil {
		return *m.Type
	}
	return WordRequestType(0)
}

// WordAck carries one recovery word.
type WordAck struct {
	Word  *string `protobuf:"bytes,1,req,name=word"`
	Extra Extra   `protobuf:"-"`
}

func (*WordAck) MessageType() MessageType { return MessageTypeWordAck }

func (m *WordAck) GetWord() string {
	if m != nil && m.Word != nil {
		return *m.Word
	}
	return ""
}

// SetU2FCounter sets the U2F counter.
type SetU2FCounter struct {
	U2FCounter *uint32 `protobuf:"varint,1,opt,name=u2f_counter"`
	Extra      Extra   `protobuf:"-"`
}

func (*SetU2FCounter) MessageType() MessageType { return MessageTypeSetU2FCounter }

func (m *SetU2FCounter) GetU2FCounter() uint32 {
	if m != nil && m.U2FCounter != nil {
		return *m.U2FCounter
	}
	return 0
}

// FirmwareErase erases the firmware; with Length set, the bootloader
// then pulls the image with FirmwareRequest.
type FirmwareErase struct {
	Length *uint32 `protobuf:"varint,1,opt,name=length"`
	Extra  Extra   `protobuf:"-"`
}

func (*FirmwareErase) MessageType() MessageType { return MessageTypeFirmwareErase }

func (m *FirmwareErase) GetLength() uint32 {
	if m != nil && m.Length != nil {
		return *m.Length
	}
	return 0
}

// FirmwareRequest asks for the next firmware chunk.
// @next FirmwareUpload
type FirmwareRequest struct {
	Offset *uint32 `protobuf:"varint,1,opt,name=offset"`
	Length *uint32 `protobuf:"varint,2,opt,name=length"`
	Extra  Extra   `protobuf:"-"`
}

func (*FirmwareRequest) MessageType() MessageType { return MessageTypeFirmwareRequest }

func (m *FirmwareRequest) GetOffset() uint32 {
	if m != nil && m.Offset != nil {
		return *m.Offset
	}
	return 0
}

func (m *FirmwareRequest) GetLength() uint32 {
	if m != nil && m.Length != nil {
		return *m.Length
	}
	return 0
}

// FirmwareUpload carries the whole firmware image or one requested chunk.
type FirmwareUpload struct {
	Payload []byte `protobuf:"bytes,1,req,name=payload"`
	Hash    []byte `protobuf:"bytes,2,opt,name=hash"`
	Extra   Extra  `protobuf:"-"`
}

func (*FirmwareUpload) MessageType() MessageType { return MessageTypeFirmwareUpload }

func (m *FirmwareUpload) GetPayload() []byte {
	if m != nil {
		return m.Payload
	}
	return nil
}

func (m *FirmwareUpload) GetHash() []byte {
	if m != nil {
		return m.Hash
	}
	return nil
}

// SelfTest runs the device self test (bootloader only).
type SelfTest struct {
	Payload []byte `protobuf:"bytes,1,opt,name=payload"`
	Extra   Extra  `protobuf:"-"`
}

func (*SelfTest) MessageType() MessageType { return MessageTypeSelfTest }

func (m *SelfTest) GetPayload() []byte {
	if m != nil {
		return m.Payload
	}
	return nil
}
