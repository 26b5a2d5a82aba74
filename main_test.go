package main

import (
	"testing"

	"github.com/lookbusy1344/riscv-sim/config"
	"github.com/lookbusy1344/riscv-sim/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterRAMMapsOnlyFirst32KB guards the exact RAM wiring run() uses:
// the bus window is the literal [0x0000, 0x7FFF] range original_source/
// Main.cpp passes to RegisterDevice, not derived from RAMSizeWords*4-1.
func TestRegisterRAMMapsOnlyFirst32KB(t *testing.T) {
	cfg := config.DefaultConfig()
	machine := vm.NewVM(cfg.VM.DefaultActiveCount, false)

	require.NoError(t, registerRAM(cfg, machine))

	machine.Bus.Write(0, 0x7FFF, 0xAAAAAAAA)
	assert.Equal(t, uint32(0xAAAAAAAA), machine.Bus.Read(0, 0x7FFF), "0x7FFF must be mapped")

	machine.Bus.Write(0, 0x8000, 0xBBBBBBBB)
	assert.Equal(t, uint32(0), machine.Bus.Read(0, 0x8000), "0x8000 must be unmapped, not silently accepted")
}

func TestRegisterRAMRejectsOverlap(t *testing.T) {
	cfg := config.DefaultConfig()
	machine := vm.NewVM(cfg.VM.DefaultActiveCount, false)

	require.NoError(t, registerRAM(cfg, machine))
	assert.Error(t, machine.Bus.Register(nil, 0x100, 0x200))
}
