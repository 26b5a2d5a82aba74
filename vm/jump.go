package vm

// executeJAL implements JAL (opcode 1101111). The link register
// receives PC+1 (consistent with PC as an instruction index); PC is
// set to the decoded J-immediate, treated as an absolute instruction
// index rather than a PC-relative offset (DESIGN.md, Open Question 1).
func executeJAL(v *VM, inst Instruction) (jumped, halt, ok bool) {
	link := int32(v.pc + 1)
	v.Registers.Write(v.pc, inst.Rd, link)

	target := uint32(inst.ImmJ)
	v.trace("jal rd=x%d <- %d, -> index %d\n", inst.Rd, link, target)
	return true, false, v.setPC(target)
}

// executeJALR implements JALR (opcode 1100111, funct3 000). The
// target is rs1 + I-immediate. The link value written to rd is the
// point of Open Question 2: the source writes the current PC
// (apparently a bug, since JAL consistently uses PC+1); ModeCorrect
// writes PC+1 to match JAL.
func executeJALR(v *VM, inst Instruction) (jumped, halt, ok bool) {
	rs1 := v.Registers.Read(v.pc, inst.Rs1)
	target := uint32(rs1 + inst.ImmI)

	var link int32
	if v.Mode == ModeCorrect {
		link = int32(v.pc + 1)
	} else {
		link = int32(v.pc)
	}
	v.Registers.Write(v.pc, inst.Rd, link)

	v.trace("jalr rd=x%d <- %d, -> index %d\n", inst.Rd, link, target)
	return true, false, v.setPC(target)
}
