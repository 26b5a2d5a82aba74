package vm

import "github.com/lookbusy1344/riscv-sim/diag"

// executeLUI implements LUI (opcode 0110111). decodeImmU already
// places the 20-bit field at bits [31:12] of its result (spec.md
// §4.1); the source shifts that already-shifted value left by 12
// again, doubling it (Open Question 3). ModeBugCompatible reproduces
// that; ModeCorrect writes the field once, matching standard RV32.
func executeLUI(v *VM, inst Instruction) (jumped, halt, ok bool) {
	var result int32
	if v.Mode == ModeCorrect {
		result = inst.ImmU
	} else {
		//nolint:gosec // G115: deliberate reproduction of the source's double shift
		result = int32(uint32(inst.ImmU) << UImmShift)
	}
	v.Registers.Write(v.pc, inst.Rd, result)
	v.trace("lui rd=x%d <- 0x%08X\n", inst.Rd, uint32(result))
	return false, false, true
}

// executeAUIPC implements AUIPC (opcode 0010111). The source's opcode
// table defines it but never dispatches to a handler (Open Question
// 6); ModeBugCompatible reproduces that by falling through to the
// unknown-opcode warning, ModeCorrect implements rd = PC + (imm<<12).
func executeAUIPC(v *VM, inst Instruction) (jumped, halt, ok bool) {
	if v.Mode != ModeCorrect {
		diag.Warning(v.pc, "unknown opcode 0b%07b", inst.Opcode)
		return false, false, true
	}
	result := int32(v.pc) + inst.ImmU
	v.Registers.Write(v.pc, inst.Rd, result)
	v.trace("auipc rd=x%d <- 0x%08X\n", inst.Rd, uint32(result))
	return false, false, true
}
