package vm

// ==================================================================
// Opcodes (instruction word bits [6:0])
// ==================================================================

const (
	OpcodeRType    uint32 = 0b0110011 // R-type: RV32I register-register + RV32M
	OpcodeIType    uint32 = 0b0010011 // I-type: immediate arithmetic/logic/shift
	OpcodeLoad     uint32 = 0b0000011 // I-type: load (lw)
	OpcodeJALR     uint32 = 0b1100111 // I-type: jump-and-link register
	OpcodeStore    uint32 = 0b0100011 // S-type: store (sw)
	OpcodeBranch   uint32 = 0b1100011 // B-type: conditional branch
	OpcodeLUI      uint32 = 0b0110111 // U-type: load upper immediate
	OpcodeAUIPC    uint32 = 0b0010111 // U-type: add upper immediate to pc
	OpcodeJAL      uint32 = 0b1101111 // J-type: jump-and-link
	OpcodePrint    uint32 = 0b1111111 // P-type (custom): host print
	OpcodeSleep    uint32 = 0b1111110 // P-type (custom): terminate run
)

// ==================================================================
// funct3 values (R/I/B-type secondary dispatch, bits [14:12])
// ==================================================================

const (
	Funct3AddSub  uint32 = 0b000
	Funct3Sll     uint32 = 0b001
	Funct3Slt     uint32 = 0b010
	Funct3Sltu    uint32 = 0b011
	Funct3Xor     uint32 = 0b100
	Funct3SrlSra  uint32 = 0b101
	Funct3Or      uint32 = 0b110
	Funct3And     uint32 = 0b111

	Funct3Mul    uint32 = 0b000
	Funct3Mulh   uint32 = 0b001
	Funct3Mulhsu uint32 = 0b010
	Funct3Mulhu  uint32 = 0b011
	Funct3Div    uint32 = 0b100
	Funct3Divu   uint32 = 0b101
	Funct3Rem    uint32 = 0b110
	Funct3Remu   uint32 = 0b111

	Funct3LW uint32 = 0b010 // only load width implemented

	Funct3SW uint32 = 0b010 // only store width implemented

	Funct3BEQ  uint32 = 0b000
	Funct3BNE  uint32 = 0b001
	Funct3BLT  uint32 = 0b100
	Funct3BGE  uint32 = 0b101
	Funct3BLTU uint32 = 0b110
	Funct3BGEU uint32 = 0b111

	Funct3Print uint32 = 0b000 // print integer
	Funct3PrintString uint32 = 0b001 // reserved: print string
)

// ==================================================================
// funct7 / funct6 values (secondary/tertiary dispatch)
// ==================================================================

const (
	Funct7Base  uint32 = 0b0000000 // add, sll, slt, sltu, xor, srl, or, and
	Funct7Alt   uint32 = 0b0100000 // sub, sra
	Funct7MExt  uint32 = 0b0000001 // RV32M multiply/divide extension

	Funct6Base uint32 = 0b000000 // slli, srli
	Funct6Alt  uint32 = 0b010000 // srai
)

// ==================================================================
// Field bit positions / widths
// ==================================================================

const (
	OpcodeShift = 0
	OpcodeMask  = 0x7F

	RdShift = 7
	Rdfunct3Shift = 12
	Rs1Shift = 15
	Rs2Shift = 20
	Funct7Shift = 25
	Funct6Shift = 26 // funct6 is bits [31:26], above the 6-bit shamt

	Reg5BitMask = 0x1F
	Funct3Mask  = 0x7
	Funct7Mask  = 0x7F
	Funct6Mask  = 0x3F

	ShamtShift = 20
	Shamt6Mask = 0x3F // bits [25:20]
	ShamtIllegalBit = 0x20 // bit 5 of the 6-bit shamt field

	Imm12Shift = 20
	Imm12Mask  = 0xFFF

	// S-immediate source fields
	SImmHighShift = 25
	SImmHighMask  = 0x7F
	SImmLowShift  = 7
	SImmLowMask   = 0x1F

	// B-immediate source fields
	BImmBit12Shift = 31
	BImmBit11Shift = 7
	BImmBit11Mask  = 0x1
	BImmBit10_5Shift = 25
	BImmBit10_5Mask  = 0x3F
	BImmBit4_1Shift  = 8
	BImmBit4_1Mask   = 0xF

	// U-immediate
	UImmShift = 12
	UImmMask  = 0xFFFFF

	// J-immediate source fields
	JImmBit20Shift    = 31
	JImmBit19_12Shift = 12
	JImmBit19_12Mask  = 0xFF
	JImmBit11Shift    = 20
	JImmBit11Mask     = 0x1
	JImmBit10_1Shift  = 21
	JImmBit10_1Mask   = 0x3FF
)

// ==================================================================
// Miscellaneous
// ==================================================================

const (
	InstructionWidthBytes = 4
	SignBit32             = 1 << 31
	WordMask64            = 0xFFFFFFFF

	// RAM device defaults (spec.md §6): the backing array is sized to
	// 65536 bytes / 4 = 16384 words, but the bus registration window is
	// the fixed literal [0x0000, 0x7FFF] — only the first 32KB of the
	// device is reachable through the bus. This is the source's own
	// internal inconsistency (original_source/Main.cpp registers its
	// VirtualMemory at a hardcoded 0x7fff end regardless of the
	// device's actual size) and is reproduced exactly rather than
	// re-derived from DefaultRAMSizeWords.
	DefaultRAMSizeWords = 16384
	DefaultRAMBase      = 0x0000
	DefaultRAMEnd       = 0x7FFF

	MinActiveCount = 1
	MaxActiveCount = 32
)
