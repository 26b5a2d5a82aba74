package vm

import "github.com/lookbusy1344/riscv-sim/diag"

// executeRType dispatches R-type instructions (opcode 0110011) on
// (funct3, funct7): RV32I register-register arithmetic/logic/shift
// when funct7 is 0000000/0100000, RV32M multiply/divide when funct7 is
// 0000001.
func executeRType(v *VM, inst Instruction) (jumped, halt, ok bool) {
	if inst.Funct7 == Funct7MExt {
		return executeMExt(v, inst)
	}

	rs1 := v.Registers.Read(v.pc, inst.Rs1)
	rs2 := v.Registers.Read(v.pc, inst.Rs2)
	var result int32

	switch inst.Funct3 {
	case Funct3AddSub:
		if inst.Funct7 == Funct7Alt {
			result = rs1 - rs2
		} else {
			result = rs1 + rs2
		}
	case Funct3Sll:
		result = rs1 << (uint32(rs2) & Reg5BitMask)
	case Funct3Slt:
		result = boolToInt32(rs1 < rs2)
	case Funct3Sltu:
		result = boolToInt32(uint32(rs1) < uint32(rs2))
	case Funct3Xor:
		result = rs1 ^ rs2
	case Funct3SrlSra:
		shamt := uint32(rs2) & Reg5BitMask
		if inst.Funct7 == Funct7Alt {
			result = rs1 >> shamt // arithmetic: Go's >> on a signed int32 preserves sign
		} else {
			result = int32(uint32(rs1) >> shamt) // logical: zero-fill
		}
	case Funct3Or:
		result = rs1 | rs2
	case Funct3And:
		result = rs1 & rs2
	default:
		diag.Warning(v.pc, "unrecognized R-type funct3 0b%03b", inst.Funct3)
	}

	v.Registers.Write(v.pc, inst.Rd, result)
	v.trace("r-type rd=x%d <- 0x%08X\n", inst.Rd, uint32(result))
	return false, false, true
}

// executeIType dispatches I-type immediate instructions (opcode
// 0010011): addi/slti/sltiu/xori/ori/andi, and the shift-immediate
// family slli/srli/srai.
func executeIType(v *VM, inst Instruction) (jumped, halt, ok bool) {
	rs1 := v.Registers.Read(v.pc, inst.Rs1)
	var result int32

	switch inst.Funct3 {
	case Funct3AddSub: // addi
		result = rs1 + inst.ImmI
	case Funct3Slt: // slti
		result = boolToInt32(rs1 < inst.ImmI)
	case Funct3Sltu: // sltiu — unsigned comparison of 32-bit values
		result = boolToInt32(uint32(rs1) < uint32(inst.ImmI))
	case Funct3Xor: // xori
		result = rs1 ^ inst.ImmI
	case Funct3Or: // ori
		result = rs1 | inst.ImmI
	case Funct3And: // andi
		result = rs1 & inst.ImmI
	case Funct3Sll: // slli
		result = executeShiftImmediate(v, inst, rs1, false)
	case Funct3SrlSra: // srli / srai, discriminated by funct6
		arithmetic := inst.Funct6 == Funct6Alt
		result = executeShiftImmediate(v, inst, rs1, arithmetic)
	default:
		diag.Warning(v.pc, "unrecognized I-type funct3 0b%03b", inst.Funct3)
	}

	v.Registers.Write(v.pc, inst.Rd, result)
	v.trace("i-type rd=x%d <- 0x%08X\n", inst.Rd, uint32(result))
	return false, false, true
}

// executeShiftImmediate implements slli/srli/srai. RV32 legality
// requires bit 5 of the 6-bit shamt field to be 0 (a 32-bit register
// only has the legal shift amounts 0-31); if set, the instruction warns
// and writes rs1's value to rd unshifted (spec.md §4.4, boundary test
// in §8).
func executeShiftImmediate(v *VM, inst Instruction, rs1 int32, arithmetic bool) int32 {
	if inst.Shamt&ShamtIllegalBit != 0 {
		diag.Warning(v.pc, "illegal shift amount %d (bit 5 set) on RV32", inst.Shamt)
		return rs1
	}
	shamt := inst.Shamt & Reg5BitMask
	if arithmetic {
		return rs1 >> shamt
	}
	return int32(uint32(rs1) >> shamt)
}

func boolToInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
