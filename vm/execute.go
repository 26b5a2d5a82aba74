package vm

import "github.com/lookbusy1344/riscv-sim/diag"

// execute dispatches a decoded instruction by opcode. It returns:
//   - jumped: true if a handler wrote PC directly (branch/jump/JALR),
//     suppressing the driver loop's default PC+1 advance.
//   - halt: true if SLEEP executed; the run terminates immediately.
//   - ok: false if a jump/branch target was out of range (setPC has
//     already warned); the run terminates.
//
// Dispatch is a table keyed by opcode; each handler then switches on
// funct3 (and funct7/funct6 where needed), per the structural design
// note in spec.md §9 — a flat table in place of nested if/else chains,
// with identical observable semantics.
func (v *VM) execute(inst Instruction) (jumped, halt, ok bool) {
	handler, known := opcodeTable[inst.Opcode]
	if !known {
		diag.Warning(v.pc, "unknown opcode 0b%07b", inst.Opcode)
		return false, false, true
	}
	return handler(v, inst)
}

// opHandler executes one decoded instruction against VM state.
type opHandler func(v *VM, inst Instruction) (jumped, halt, ok bool)

var opcodeTable = map[uint32]opHandler{
	OpcodeRType:  executeRType,
	OpcodeIType:  executeIType,
	OpcodeLoad:   executeLoad,
	OpcodeJALR:   executeJALR,
	OpcodeStore:  executeStore,
	OpcodeBranch: executeBranch,
	OpcodeLUI:    executeLUI,
	OpcodeAUIPC:  executeAUIPC,
	OpcodeJAL:    executeJAL,
	OpcodePrint:  executePrint,
	OpcodeSleep:  executeSleep,
}

// trace emits the verbose-mode instruction trace line, if enabled.
func (v *VM) trace(format string, args ...any) {
	if v.Verbose {
		diag.Trace(v.pc, format, args...)
	}
}
