package vm

// Instruction is the decoded, format-agnostic view of a 32-bit word.
// Every field is populated regardless of which ones a given opcode
// actually uses; callers pick the fields relevant to their format.
type Instruction struct {
	Raw    uint32
	Opcode uint32
	Rd     uint32
	Funct3 uint32
	Rs1    uint32
	Rs2    uint32
	Funct7 uint32
	Funct6 uint32
	Shamt  uint32

	ImmI int32
	ImmS int32
	ImmB int32
	ImmU int32
	ImmJ int32
}

// Decode extracts every field layout from a raw instruction word. It is
// pure and total: every 32-bit input produces a well-formed Instruction,
// even if the opcode turns out to be unknown to the executor.
func Decode(word uint32) Instruction {
	return Instruction{
		Raw:    word,
		Opcode: word & OpcodeMask,
		Rd:     (word >> RdShift) & Reg5BitMask,
		Funct3: (word >> Rdfunct3Shift) & Funct3Mask,
		Rs1:    (word >> Rs1Shift) & Reg5BitMask,
		Rs2:    (word >> Rs2Shift) & Reg5BitMask,
		Funct7: (word >> Funct7Shift) & Funct7Mask,
		Funct6: (word >> Funct6Shift) & Funct6Mask,
		Shamt:  (word >> ShamtShift) & Shamt6Mask,

		ImmI: decodeImmI(word),
		ImmS: decodeImmS(word),
		ImmB: decodeImmB(word),
		ImmU: decodeImmU(word),
		ImmJ: decodeImmJ(word),
	}
}

// decodeImmI reassembles and sign-extends the I-immediate: bits [31:20].
func decodeImmI(word uint32) int32 {
	v := (word >> Imm12Shift) & Imm12Mask
	return signExtend(v, 12)
}

// decodeImmS reassembles and sign-extends the S-immediate:
// {bits[31:25], bits[11:7]}.
func decodeImmS(word uint32) int32 {
	high := (word >> SImmHighShift) & SImmHighMask
	low := (word >> SImmLowShift) & SImmLowMask
	v := (high << 5) | low
	return signExtend(v, 12)
}

// decodeImmB reassembles and sign-extends the B-immediate:
// {bit[31], bit[7], bits[30:25], bits[11:8], 0}.
func decodeImmB(word uint32) int32 {
	bit12 := (word >> BImmBit12Shift) & 1
	bit11 := (word >> BImmBit11Shift) & BImmBit11Mask
	bits10_5 := (word >> BImmBit10_5Shift) & BImmBit10_5Mask
	bits4_1 := (word >> BImmBit4_1Shift) & BImmBit4_1Mask

	v := (bit12 << 12) | (bit11 << 11) | (bits10_5 << 5) | (bits4_1 << 1)
	return signExtend(v, 13)
}

// decodeImmU reassembles the U-immediate: bits [31:12] placed at
// bits [31:12] of the result, low 12 bits zero. U-immediates need no
// sign extension beyond their natural bit-31 placement.
func decodeImmU(word uint32) int32 {
	v := (word >> UImmShift) & UImmMask
	//nolint:gosec // G115: intentional reinterpretation of the shifted bit pattern
	return int32(v << UImmShift)
}

// decodeImmJ reassembles and sign-extends the J-immediate:
// {bit[31], bits[19:12], bit[20], bits[30:21], 0}.
func decodeImmJ(word uint32) int32 {
	bit20 := (word >> JImmBit20Shift) & 1
	bits19_12 := (word >> JImmBit19_12Shift) & JImmBit19_12Mask
	bit11 := (word >> JImmBit11Shift) & JImmBit11Mask
	bits10_1 := (word >> JImmBit10_1Shift) & JImmBit10_1Mask

	v := (bit20 << 20) | (bits19_12 << 12) | (bit11 << 11) | (bits10_1 << 1)
	return signExtend(v, 21)
}

// signExtend sign-extends the low `bits` bits of v (treated as unsigned)
// to a full int32.
func signExtend(v uint32, bits int) int32 {
	shift := 32 - bits
	//nolint:gosec // G115: deliberate arithmetic shift for sign extension
	return int32(v<<shift) >> shift
}
