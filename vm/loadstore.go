package vm

import "github.com/lookbusy1344/riscv-sim/diag"

// executeLoad implements lw (opcode 0000011, funct3 010). Other load
// widths are reserved and decode to the same path (spec.md §4.4); this
// implementation warns once and treats them as lw, since no narrower
// load semantics are specified.
func executeLoad(v *VM, inst Instruction) (jumped, halt, ok bool) {
	if inst.Funct3 != Funct3LW {
		diag.Warning(v.pc, "reserved load width funct3 0b%03b treated as lw", inst.Funct3)
	}

	rs1 := v.Registers.Read(v.pc, inst.Rs1)
	addr := uint32(rs1 + inst.ImmI)
	value := v.Bus.Read(v.pc, addr)

	v.Registers.Write(v.pc, inst.Rd, int32(value))
	v.trace("lw rd=x%d <- [0x%08X]=0x%08X\n", inst.Rd, addr, value)
	return false, false, true
}

// executeStore implements sw (opcode 0100011, funct3 010). Other store
// widths are reserved and decode to the same path, mirroring the load
// handler above.
func executeStore(v *VM, inst Instruction) (jumped, halt, ok bool) {
	if inst.Funct3 != Funct3SW {
		diag.Warning(v.pc, "reserved store width funct3 0b%03b treated as sw", inst.Funct3)
	}

	rs1 := v.Registers.Read(v.pc, inst.Rs1)
	rs2 := v.Registers.Read(v.pc, inst.Rs2)
	addr := uint32(rs1 + inst.ImmS)

	v.Bus.Write(v.pc, addr, uint32(rs2))
	v.trace("sw [0x%08X] <- 0x%08X\n", addr, uint32(rs2))
	return false, false, true
}
