package trezorpb

// DebugLinkDecision presses a button on the device.
type DebugLinkDecision struct {
	YesNo *bool `protobuf:"varint,1,req,name=yes_no"`
	Extra Extra `protobuf:"-"`
}

func (*DebugLinkDecision) MessageType() MessageType { return MessageTypeDebugLinkDecision }

func (m *DebugLinkDecision) GetYesNo() bool {
	if m != nil && m.YesNo != nil {
		return *m.YesNo
	}
	return false
}

// DebugLinkGetState asks for the internal device state.
// @next DebugLinkState
type DebugLinkGetState struct {
	Extra Extra `protobuf:"-"`
}

func (*DebugLinkGetState) MessageType() MessageType { return MessageTypeDebugLinkGetState }

// DebugLinkState is the internal device state.
type DebugLinkState struct {
	Layout               []byte      `protobuf:"bytes,1,opt,name=layout"`
	Pin                  *string     `protobuf:"bytes,2,opt,name=pin"`
	Matrix               *string     `protobuf:"bytes,3,opt,name=matrix"`
	Mnemonic             *string     `protobuf:"bytes,4,opt,name=mnemonic"`
	Node                 *HDNodeType `protobuf:"bytes,5,opt,name=node"`
	PassphraseProtection *bool       `protobuf:"varint,6,opt,name=passphrase_protection"`
	ResetWord            *string     `protobuf:"bytes,7,opt,name=reset_word"`
	ResetEntropy         []byte      `protobuf:"bytes,8,opt,name=reset_entropy"`
	RecoveryFakeWord     *string     `protobuf:"bytes,9,opt,name=recovery_fake_word"`
	RecoveryWordPos      *uint32     `protobuf:"varint,10,opt,name=recovery_word_pos"`
	Extra                Extra       `protobuf:"-"`
}

func (*DebugLinkState) MessageType() MessageType { return MessageTypeDebugLinkState }

func (m *DebugLinkState) GetLayout() []byte {
	if m != nil {
		return m.Layout
	}
	return nil
}

func (m *DebugLinkState) GetPin() string {
	if m != nil && m.Pin != nil {
		return *m.Pin
	}
	return ""
}

func (m *DebugLinkState) GetMatrix() string {
	if m != nil && m.Matrix != nil {
		return *m.Matrix
	}
	return ""
}

func (m *DebugLinkState) GetMnemonic() string {
	if m != nil && m.Mnemonic != nil {
		return *m.Mnemonic
	}
	return ""
}

func (m *DebugLinkState) GetNode() *HDNodeType {
	if m != nil {
		return m.Node
	}
	return nil
}

func (m *DebugLinkState) GetPassphraseProtection() bool {
	if m != nil && m.PassphraseProtection != nil {
		return *m.PassphraseProtection
	}
	return false
}

func (m *DebugLinkState) GetResetWord() string {
	if m != nil && m.ResetWord != nil {
		return *m.ResetWord
	}
	return ""
}

func (m *DebugLinkState) GetResetEntropy() []byte {
	if m != nil {
		return m.ResetEntropy
	}
	return nil
}

func (m *DebugLinkState) GetRecoveryFakeWord() string {
	if m != nil && m.RecoveryFakeWord != nil {
		return *m.RecoveryFakeWord
	}
	return ""
}

func (m *DebugLinkState) GetRecoveryWordPos() uint32 {
	if m != nil && m.RecoveryWordPos != nil {
		return *m.RecoveryWordPos
	}
	return 0
}

// DebugLinkStop stops the emulator.
type DebugLinkStop struct {
	Extra Extra `protobuf:"-"`
}

func (*DebugLinkStop) MessageType() MessageType { return MessageTypeDebugLinkStop }

// DebugLinkLog is a log line from the device.
type DebugLinkLog struct {
	Level  *uint32 `protobuf:"varint,1,opt,name=level"`
	Bucket *string `protobuf:"bytes,2,opt,name=bucket"`
	Text   *string `protobuf:"bytes,3,opt,name=text"`
	Extra  Extra   `protobuf:"-"`
}

func (*DebugLinkLog) MessageType() MessageType { return MessageTypeDebugLinkLog }

func (m *DebugLinkLog) GetLevel() uint32 {
	if m != nil && m.Level != nil {
		return *m.Level
	}
	return 0
}

func (m *DebugLinkLog) GetBucket() string {
	if m != nil && m.Bucket != nil {
		return *m.Bucket
	}
	return ""
}

func (m *DebugLinkLog) GetText() string {
	if m != nil && m.Text != nil {
		return *m.Text
	}
	return ""
}

// DebugLinkMemoryRead reads device memory.
// @next DebugLinkMemory
type DebugLinkMemoryRead struct {
	Address *uint32 `protobuf:"varint,1,opt,name=address"`
	Length  *uint32 `protobuf:"varint,2,opt,name=length"`
	Extra   Extra   `protobuf:"-"`
}

func (*DebugLinkMemoryRead) MessageType() MessageType { return MessageTypeDebugLinkMemoryRead }

func (m *DebugLinkMemoryRead) GetAddress() uint32 {
	if m != nil && m.Address != nil {
		return *m.Address
	}
	return 0
}

func (m *DebugLinkMemoryRead) GetLength() uint32 {
	if m != nil && m.Length != nil {
		return *m.Length
	}
	return 0
}

// DebugLinkMemory is the memory read.
type DebugLinkMemory struct {
	Memory []byte `protobuf:"bytes,1,opt,name=memory"`
	Extra  Extra  `protobuf:"-"`
}

func (*DebugLinkMemory) MessageType() MessageType { return MessageTypeDebugLinkMemory }

func (m *DebugLinkMemory) GetMemory() []byte {
	if m != nil {
		return m.Memory
	}
	return nil
}

// DebugLinkMemoryWrite writes device memory.
type DebugLinkMemoryWrite struct {
	Address *uint32 `protobuf:"varint,1,opt,name=address"`
	Memory  []byte  `protobuf:"bytes,2,opt,name=memory"`
	Flash   *bool   `protobuf:"varint,3,opt,name=flash"`
	Extra   Extra   `protobuf:"-"`
}

func (*DebugLinkMemoryWrite) MessageType() MessageType { return MessageTypeDebugLinkMemoryWrite }

func (m *DebugLinkMemoryWrite) GetAddress() uint32 {
	if m != nil && m.Address != nil {
		return *m.Address
	}
	return 0
}

func (m *DebugLinkMemoryWrite) GetMemory() []byte {
	if m != nil {
		return m.Memory
	}
	return nil
}

func (m *DebugLinkMemoryWrite) GetFlash() bool {
	if m != nil && m.Flash != nil {
		return *m.Flash
	}
	return false
}

// DebugLinkFlashErase erases a flash sector.
type DebugLinkFlashErase struct {
	Sector *uint32 `protobuf:"varint,1,opt,name=sector"`
	Extra  Extra   `protobuf:"-"`
}

func (*DebugLinkFlashErase) MessageType() MessageType { return MessageTypeDebugLinkFlashErase }

func (m *DebugLinkFlashErase) GetSector() uint32 {
	if m != nil && m.Sector != nil {
		return *m.Sector
	}
	return 0
}
