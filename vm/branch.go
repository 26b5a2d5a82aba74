package vm

import "github.com/lookbusy1344/riscv-sim/diag"

// executeBranch dispatches B-type conditional branches (opcode
// 1100011) on funct3. A taken branch sets PC to the decoded immediate
// directly — not PC + offset — since the source treats branch
// immediates as absolute instruction indices, not byte-relative
// offsets (DESIGN.md, Open Question 1).
func executeBranch(v *VM, inst Instruction) (jumped, halt, ok bool) {
	rs1 := v.Registers.Read(v.pc, inst.Rs1)
	rs2 := v.Registers.Read(v.pc, inst.Rs2)

	var taken bool
	switch inst.Funct3 {
	case Funct3BEQ:
		taken = rs1 == rs2
	case Funct3BNE:
		taken = rs1 != rs2
	case Funct3BLT:
		taken = rs1 < rs2
	case Funct3BGE:
		taken = rs1 >= rs2
	case Funct3BLTU:
		if v.Mode == ModeCorrect {
			taken = uint32(rs1) < uint32(rs2)
		} else {
			// Bug-compatible: the source compares with == instead of <.
			taken = rs1 == rs2
		}
	case Funct3BGEU:
		taken = uint32(rs1) >= uint32(rs2)
	default:
		diag.Warning(v.pc, "unrecognized branch funct3 0b%03b", inst.Funct3)
		return false, false, true
	}

	if !taken {
		v.trace("branch not taken\n")
		return false, false, true
	}

	target := uint32(inst.ImmB)
	v.trace("branch taken -> index %d\n", target)
	return true, false, v.setPC(target)
}
