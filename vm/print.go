package vm

import (
	"fmt"
	"io"
	"os"

	"github.com/lookbusy1344/riscv-sim/diag"
)

// executePrint implements the custom PRINT instruction (opcode
// 1111111). funct3 000 emits rs1's signed decimal value; funct3 001 is
// reserved for "print string" but spec.md leaves the string memory
// layout unspecified, so it falls back to the integer rendering.
func executePrint(v *VM, inst Instruction) (jumped, halt, ok bool) {
	rs1 := v.Registers.Read(v.pc, inst.Rs1)

	if inst.Funct3 != Funct3Print {
		diag.Warning(v.pc, "print-string (funct3 0b%03b) has no specified string layout; printing integer value", inst.Funct3)
	}

	out := v.stdout()
	fmt.Fprintf(out, "%d\n", rs1)

	return false, false, true
}

// executeSleep implements the custom SLEEP instruction (opcode
// 1111110): emits an info message and terminates the run immediately.
func executeSleep(v *VM, inst Instruction) (jumped, halt, ok bool) {
	diag.Info(v.pc, "sleep instruction executed; halting")
	return false, true, true
}

func (v *VM) stdout() io.Writer {
	if v.Stdout != nil {
		return v.Stdout
	}
	return os.Stdout
}
