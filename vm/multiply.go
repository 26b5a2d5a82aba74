package vm

import "github.com/lookbusy1344/riscv-sim/diag"

// executeMExt dispatches the RV32M multiply/divide extension
// (R-type, funct7 = 0000001) on funct3.
func executeMExt(v *VM, inst Instruction) (jumped, halt, ok bool) {
	rs1 := v.Registers.Read(v.pc, inst.Rs1)
	rs2 := v.Registers.Read(v.pc, inst.Rs2)

	switch inst.Funct3 {
	case Funct3Mul:
		v.Registers.Write(v.pc, inst.Rd, mul(rs1, rs2))
	case Funct3Mulh:
		v.Registers.Write(v.pc, inst.Rd, mulh(rs1, rs2))
	case Funct3Mulhsu:
		v.Registers.Write(v.pc, inst.Rd, mulhsu(rs1, rs2))
	case Funct3Mulhu:
		v.Registers.Write(v.pc, inst.Rd, mulhu(rs1, rs2))
	case Funct3Div:
		executeDiv(v, inst, rs1, rs2)
	case Funct3Divu:
		v.Registers.Write(v.pc, inst.Rd, divu(v, rs1, rs2))
	case Funct3Rem:
		v.Registers.Write(v.pc, inst.Rd, rem(v, rs1, rs2))
	case Funct3Remu:
		v.Registers.Write(v.pc, inst.Rd, remu(v, rs1, rs2))
	default:
		diag.Warning(v.pc, "unrecognized RV32M funct3 0b%03b", inst.Funct3)
	}

	v.trace("mext rd=x%d\n", inst.Rd)
	return false, false, true
}

// mul returns the low 32 bits of the signed x signed 64-bit product.
func mul(a, b int32) int32 {
	return int32(int64(a) * int64(b))
}

// mulh returns the high 32 bits of the signed x signed 64-bit product.
func mulh(a, b int32) int32 {
	product := int64(a) * int64(b)
	return int32(product >> 32)
}

// mulhsu returns the high 32 bits of signed(a) x unsigned(b) widened to
// 64 bits.
func mulhsu(a int32, b int32) int32 {
	product := int64(a) * int64(uint32(b))
	return int32(product >> 32)
}

// mulhu returns the high 32 bits of the unsigned x unsigned 64-bit
// product.
func mulhu(a, b int32) int32 {
	product := uint64(uint32(a)) * uint64(uint32(b))
	return int32(uint32(product >> 32))
}

// executeDiv implements signed division. On divisor == 0 it warns and
// skips the register write entirely — asymmetric with divu/rem/remu by
// design; spec.md §4.4 records this as matching the source rather than
// unifying the behavior.
func executeDiv(v *VM, inst Instruction, rs1, rs2 int32) {
	if rs2 == 0 {
		diag.Warning(v.pc, "division by zero (div); register write skipped")
		return
	}
	v.Registers.Write(v.pc, inst.Rd, rs1/rs2)
}

// divu implements unsigned division. On divisor == 0 it warns and
// substitutes divisor 1, proceeding with the write.
func divu(v *VM, rs1, rs2 int32) int32 {
	if rs2 == 0 {
		diag.Warning(v.pc, "division by zero (divu); substituting divisor 1")
		return int32(uint32(rs1))
	}
	return int32(uint32(rs1) / uint32(rs2))
}

// rem implements signed remainder. On divisor == 0 it warns and
// substitutes divisor 1 (remainder of anything mod 1 is 0).
func rem(v *VM, rs1, rs2 int32) int32 {
	if rs2 == 0 {
		diag.Warning(v.pc, "division by zero (rem); substituting divisor 1")
		return 0
	}
	return rs1 % rs2
}

// remu implements unsigned remainder, substituting divisor 1 on
// division by zero.
func remu(v *VM, rs1, rs2 int32) int32 {
	if rs2 == 0 {
		diag.Warning(v.pc, "division by zero (remu); substituting divisor 1")
		return 0
	}
	return int32(uint32(rs1) % uint32(rs2))
}
