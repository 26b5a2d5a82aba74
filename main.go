// Command riscv-sim runs a raw little-endian RV32IM(+P) binary image
// against the simulator in package vm.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/lookbusy1344/riscv-sim/config"
	"github.com/lookbusy1344/riscv-sim/loader"
	"github.com/lookbusy1344/riscv-sim/ram"
	"github.com/lookbusy1344/riscv-sim/vm"
)

func main() {
	os.Exit(run(os.Args))
}

// run implements the CLI contract from spec.md §6: usage
// "program <binary-path> [register-count] [-v]", exit codes
// 0 success, 1 argument-count error, 3 invalid register-count value,
// -1 binary-open failure. Argument parsing order follows
// original_source/Main.cpp exactly: the binary is opened before the
// optional arguments are parsed, register-count and -v may appear in
// either order after the binary path, and a missing register-count is
// not an error — it defaults to the config's DefaultActiveCount (32
// unless a config file sets another value).
func run(args []string) int {
	if len(args) < 2 || len(args) > 4 {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintf(os.Stderr, "\t%s <riscv binaryfile> [number of registers] [-v]\n", args[0])
		return 1
	}

	binaryPath := args[1]
	fmt.Printf("executing file: %s\n", binaryPath)

	words, err := loader.Load(binaryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return -1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	activeCount := cfg.VM.DefaultActiveCount
	verbose := cfg.VM.Verbose

	for _, arg := range args[2:] {
		if arg == "-v" {
			verbose = true
			continue
		}
		n, convErr := strconv.Atoi(arg)
		if convErr != nil {
			fmt.Fprintln(os.Stderr, "Register count must be a int number")
			return 3
		}
		if n < vm.MinActiveCount || n > vm.MaxActiveCount {
			fmt.Fprintln(os.Stderr, "Register count must be between 1 and 32")
			return 3
		}
		activeCount = uint32(n)
	}

	machine := vm.NewVM(activeCount, verbose)
	machine.LoadProgram(words)

	if err := registerRAM(cfg, machine); err != nil {
		fmt.Fprintf(os.Stderr, "failed to register RAM device: %v\n", err)
		return -1
	}

	machine.Run()
	return 0
}

// registerRAM wires a RAM device into machine's bus at the fixed
// [cfg.VM.RAMBase, cfg.VM.RAMBase+0x7FFF] window original_source/Main.cpp
// passes to RegisterDevice, not RAMSizeWords*4-1: the source maps only
// the first half of the device's 65536-byte backing array onto the bus,
// and this module reproduces that literally rather than re-deriving the
// window from the device's own size (see DESIGN.md).
func registerRAM(cfg *config.Config, machine *vm.VM) error {
	ramDevice := ram.New(cfg.VM.RAMSizeWords)
	ramEnd := cfg.VM.RAMBase + vm.DefaultRAMEnd
	return machine.Bus.Register(ramDevice, cfg.VM.RAMBase, ramEnd)
}
