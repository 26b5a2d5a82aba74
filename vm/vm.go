package vm

import (
	"io"

	"github.com/lookbusy1344/riscv-sim/diag"
)

// State reports why Run returned.
type State int

const (
	StateReady State = iota
	StateRunning
	StateHalted    // SLEEP executed
	StatePCOutOfRange
)

// VM is the architectural state machine: program counter, register
// file, and address-mapped bus, driven by the fetch-decode-execute
// loop in spec.md §4.5.
type VM struct {
	Registers *RegisterFile
	Bus       *Bus

	instructions []uint32 // read-only after LoadProgram
	pc           uint32

	Verbose bool
	State   State
	Mode    Mode

	// Stdout is where PRINT writes; overridable for tests.
	Stdout io.Writer
}

// NewVM constructs a VM with a zero-initialized register file bounded
// by activeCount, an empty bus, and PC=0. Devices are registered by the
// caller before Run begins (spec.md §3 lifecycle).
func NewVM(activeCount uint32, verbose bool) *VM {
	return &VM{
		Registers: NewRegisterFile(activeCount),
		Bus:       NewBus(),
		Verbose:   verbose,
		State:     StateReady,
	}
}

// LoadProgram installs the instruction memory. It is populated once;
// instruction memory is read-only after this call (spec.md §3).
func (v *VM) LoadProgram(words []uint32) {
	v.instructions = words
	v.pc = 0
}

// InstructionCount returns the number of loaded instruction words.
func (v *VM) InstructionCount() int {
	return len(v.instructions)
}

// PC returns the current program counter (an instruction index, not a
// byte address — see DESIGN.md, Open Question 1).
func (v *VM) PC() uint32 {
	return v.pc
}

// pcInRange reports whether target is a valid instruction index.
func (v *VM) pcInRange(target uint32) bool {
	return target < uint32(len(v.instructions))
}

// setPC validates and applies a new PC. It returns false if the target
// is out of range, in which case it has already warned and the caller
// must terminate the run (spec.md §4.5).
func (v *VM) setPC(target uint32) bool {
	if !v.pcInRange(target) {
		diag.Warning(v.pc, "program counter set to out-of-range instruction index %d (count=%d)",
			target, len(v.instructions))
		return false
	}
	v.pc = target
	return true
}

// Run executes instructions until SLEEP, PC out of range, or a
// jump/branch target out of range. It returns once execution has
// stopped; the VM cannot be resumed (spec.md §3).
func (v *VM) Run() {
	v.State = StateRunning
	if !v.pcInRange(v.pc) {
		diag.Warning(v.pc, "program counter advanced past last instruction")
		v.State = StatePCOutOfRange
		return
	}
	for {
		inst := Decode(v.instructions[v.pc])

		jumped, halt, ok := v.execute(inst)
		if halt {
			v.State = StateHalted
			return
		}
		if !ok {
			// execute() already warned via setPC on an invalid jump/branch target.
			v.State = StatePCOutOfRange
			return
		}
		if !jumped {
			if !v.pcInRange(v.pc + 1) {
				diag.Warning(v.pc, "program counter advanced past last instruction")
				v.State = StatePCOutOfRange
				return
			}
			v.pc++
		}
	}
}
