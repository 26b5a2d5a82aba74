package vm

import (
	"bytes"
	"testing"

	"github.com/lookbusy1344/riscv-sim/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- local instruction-encoding helpers (test-only; the assembler/
// disassembler front end is out of scope per spec.md §1) ---

func encodeR(opcode, funct3, funct7, rd, rs1, rs2 uint32) uint32 {
	return opcode | rd<<RdShift | funct3<<Rdfunct3Shift | rs1<<Rs1Shift | rs2<<Rs2Shift | funct7<<Funct7Shift
}

func encodeI(opcode, funct3, rd, rs1 uint32, imm int32) uint32 {
	return opcode | rd<<RdShift | funct3<<Rdfunct3Shift | rs1<<Rs1Shift | (uint32(imm)&Imm12Mask)<<Imm12Shift
}

func encodeShiftImm(opcode, funct3, funct6, rd, rs1, shamt uint32) uint32 {
	return opcode | rd<<RdShift | funct3<<Rdfunct3Shift | rs1<<Rs1Shift | (shamt&Shamt6Mask)<<ShamtShift | funct6<<Funct6Shift
}

func encodeS(opcode, funct3, rs1, rs2 uint32, imm int32) uint32 {
	u := uint32(imm) & 0xFFF
	high := (u >> 5) & SImmHighMask
	low := u & SImmLowMask
	return opcode | low<<SImmLowShift | funct3<<Rdfunct3Shift | rs1<<Rs1Shift | rs2<<Rs2Shift | high<<SImmHighShift
}

func encodeB(opcode, funct3, rs1, rs2 uint32, imm int32) uint32 {
	u := uint32(imm)
	bit12 := (u >> 12) & 1
	bit11 := (u >> 11) & 1
	bits10_5 := (u >> 5) & 0x3F
	bits4_1 := (u >> 1) & 0xF
	return opcode | bit11<<BImmBit11Shift | bits4_1<<BImmBit4_1Shift | funct3<<Rdfunct3Shift |
		rs1<<Rs1Shift | rs2<<Rs2Shift | bits10_5<<BImmBit10_5Shift | bit12<<BImmBit12Shift
}

func encodeP(opcode, funct3, rs1 uint32) uint32 {
	return opcode | funct3<<Rdfunct3Shift | rs1<<Rs1Shift
}

func addi(rd, rs1 uint32, imm int32) uint32 { return encodeI(OpcodeIType, Funct3AddSub, rd, rs1, imm) }
func add(rd, rs1, rs2 uint32) uint32 {
	return encodeR(OpcodeRType, Funct3AddSub, Funct7Base, rd, rs1, rs2)
}
func mulInst(rd, rs1, rs2 uint32) uint32 {
	return encodeR(OpcodeRType, Funct3Mul, Funct7MExt, rd, rs1, rs2)
}
func divInst(rd, rs1, rs2 uint32) uint32 {
	return encodeR(OpcodeRType, Funct3Div, Funct7MExt, rd, rs1, rs2)
}
func sraiInst(rd, rs1, shamt uint32) uint32 {
	return encodeShiftImm(OpcodeIType, Funct3SrlSra, Funct6Alt, rd, rs1, shamt)
}
func sw(rs1, rs2 uint32, imm int32) uint32 { return encodeS(OpcodeStore, Funct3SW, rs1, rs2, imm) }
func lw(rd, rs1 uint32, imm int32) uint32  { return encodeI(OpcodeLoad, Funct3LW, rd, rs1, imm) }
func beq(rs1, rs2 uint32, targetIdx int32) uint32 {
	return encodeB(OpcodeBranch, Funct3BEQ, rs1, rs2, targetIdx)
}
func pint(rs1 uint32) uint32  { return encodeP(OpcodePrint, Funct3Print, rs1) }
func sleep() uint32           { return OpcodeSleep }

func newTestVM(t *testing.T, program []uint32) (*VM, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	oldErr := diag.Stderr
	diag.Stderr = &stderr
	t.Cleanup(func() { diag.Stderr = oldErr })

	v := NewVM(32, false)
	v.Stdout = &stdout
	v.LoadProgram(program)
	require.NoError(t, v.Bus.Register(newFakeDevice(), 0, 0x7FFF))
	return v, &stdout, &stderr
}

func TestE1_AddAndPrint(t *testing.T) {
	program := []uint32{
		addi(1, 0, 5),
		addi(2, 0, 7),
		add(3, 1, 2),
		pint(3),
		sleep(),
	}
	v, stdout, _ := newTestVM(t, program)
	v.Run()

	assert.Equal(t, "12\n", stdout.String())
	assert.Equal(t, StateHalted, v.State)
}

func TestE2_ArithmeticShiftPreservesSign(t *testing.T) {
	program := []uint32{
		addi(1, 0, -1),
		sraiInst(2, 1, 1),
		pint(2),
		sleep(),
	}
	v, stdout, _ := newTestVM(t, program)
	v.Run()

	assert.Equal(t, "-1\n", stdout.String())
}

func TestE3_DivByZeroWarnsAndSkipsWrite(t *testing.T) {
	program := []uint32{
		addi(1, 0, 10),
		addi(2, 0, 0),
		divInst(3, 1, 2),
		pint(3),
		sleep(),
	}
	v, stdout, stderr := newTestVM(t, program)
	v.Run()

	assert.Equal(t, "0\n", stdout.String())
	assert.Contains(t, stderr.String(), "division by zero")
}

func TestE4_StoreThenLoad(t *testing.T) {
	program := []uint32{
		addi(1, 0, 42),
		sw(0, 1, 0),
		lw(2, 0, 0),
		pint(2),
		sleep(),
	}
	v, stdout, _ := newTestVM(t, program)
	v.Run()

	assert.Equal(t, "42\n", stdout.String())
}

func TestE5_BranchTaken(t *testing.T) {
	program := []uint32{
		addi(1, 0, 1),
		addi(2, 0, 1),
		beq(1, 2, 4),
		pint(0),
		pint(1),
		sleep(),
	}
	v, stdout, _ := newTestVM(t, program)
	v.Run()

	assert.Equal(t, "1\n", stdout.String())
}

func TestE6_Multiply(t *testing.T) {
	program := []uint32{
		addi(1, 0, 3),
		addi(2, 0, 5),
		mulInst(3, 1, 2),
		pint(3),
		sleep(),
	}
	v, stdout, _ := newTestVM(t, program)
	v.Run()

	assert.Equal(t, "15\n", stdout.String())
}

func TestBoundary_PCPastLastInstructionTerminates(t *testing.T) {
	program := []uint32{addi(1, 0, 1)}
	v, _, stderr := newTestVM(t, program)
	v.Run()

	assert.Equal(t, StatePCOutOfRange, v.State)
	assert.Contains(t, stderr.String(), "advanced past last instruction")
}

func TestBoundary_SleepTerminatesWithInfo(t *testing.T) {
	program := []uint32{sleep(), addi(1, 0, 99)}
	v, _, stderr := newTestVM(t, program)
	v.Run()

	assert.Equal(t, StateHalted, v.State)
	assert.Contains(t, stderr.String(), "info at pc")
	assert.Equal(t, int32(0), v.Registers.Read(v.PC(), 1))
}

func TestBoundary_SingleActiveRegisterWarnsNotCrash(t *testing.T) {
	var stdout, stderr bytes.Buffer
	oldErr := diag.Stderr
	diag.Stderr = &stderr
	defer func() { diag.Stderr = oldErr }()

	v := NewVM(1, false)
	v.Stdout = &stdout
	v.LoadProgram([]uint32{addi(1, 0, 5), pint(1), sleep()})
	require.NoError(t, v.Bus.Register(newFakeDevice(), 0, 0x7FFF))
	v.Run()

	assert.Equal(t, "5\n", stdout.String())
	assert.Contains(t, stderr.String(), "out of bounds")
}

func TestBoundary_IllegalShiftAmountLeavesRdUnchanged(t *testing.T) {
	program := []uint32{
		addi(1, 0, 7),
		encodeShiftImm(OpcodeIType, Funct3Sll, Funct6Base, 1, 1, 0x20), // bit 5 set
		pint(1),
		sleep(),
	}
	v, stdout, stderr := newTestVM(t, program)
	v.Run()

	assert.Equal(t, "7\n", stdout.String())
	assert.Contains(t, stderr.String(), "illegal shift amount")
}

func TestBLTU_BugCompatibleUsesEquality(t *testing.T) {
	program := []uint32{
		addi(1, 0, 3),
		addi(2, 0, 5),
		encodeB(OpcodeBranch, Funct3BLTU, 1, 2, 4),
		pint(0),
		pint(1),
		sleep(),
	}
	v, stdout, _ := newTestVM(t, program)
	v.Run()

	// bug-compatible default: 3 == 5 is false, so branch falls through
	// and both pints execute.
	assert.Equal(t, "0\n3\n", stdout.String())
}

func TestBLTU_CorrectModeUsesLessThan(t *testing.T) {
	program := []uint32{
		addi(1, 0, 3),
		addi(2, 0, 5),
		encodeB(OpcodeBranch, Funct3BLTU, 1, 2, 4),
		pint(0),
		pint(1),
		sleep(),
	}
	v, stdout, _ := newTestVM(t, program)
	v.Mode = ModeCorrect
	v.Run()

	assert.Equal(t, "3\n", stdout.String())
}
