// Package diag formats the simulator's diagnostic channel: warnings and
// info messages tagged with the program counter, plus the optional
// verbose instruction trace.
package diag

import (
	"fmt"
	"io"
	"os"
)

// Stderr and Stdout are the default sinks for the diagnostic channel and
// the verbose trace respectively. Tests may swap them out.
var (
	Stderr io.Writer = os.Stderr
	Stdout io.Writer = os.Stdout
)

// Warning writes "warning at pc 0xNNNN: <message>" to the diagnostic channel.
func Warning(pc uint32, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Stderr, "warning at pc 0x%04X: %s\n", pc, msg)
}

// Info writes "info at pc 0xNNNN: <message>" to the diagnostic channel.
func Info(pc uint32, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Stderr, "info at pc 0x%04X: %s\n", pc, msg)
}

// Trace writes a verbose-mode instruction trace line to standard output,
// prefixed per the external interface contract.
func Trace(pc uint32, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Stdout, "\n0x%04X: %s", pc, msg)
}
