package vm

import "github.com/lookbusy1344/riscv-sim/diag"

// RegisterFile is the architectural set of 32 general-purpose registers.
// Register 0 is an ordinary register in this implementation — the
// source this spec was distilled from does not hardwire it to zero,
// and this module faithfully follows that (see DESIGN.md, Open
// Question 7).
type RegisterFile struct {
	slots       [MaxActiveCount]int32
	written     [MaxActiveCount]bool
	activeCount uint32
}

// NewRegisterFile constructs a register file bounded by activeCount,
// which must be in [1, 32]. The CLI validates a register-count argument
// before construction; NewRegisterFile itself and config.VMConfig do
// not check the range.
func NewRegisterFile(activeCount uint32) *RegisterFile {
	return &RegisterFile{activeCount: activeCount}
}

// ActiveCount returns the configured register bound. It is set once at
// construction and never changes.
func (r *RegisterFile) ActiveCount() uint32 {
	return r.activeCount
}

// Read returns the contents of register idx. Out-of-bound or
// never-written accesses warn but still return the underlying storage.
func (r *RegisterFile) Read(pc uint32, idx uint32) int32 {
	if idx >= r.activeCount {
		diag.Warning(pc, "register x%d read is out of bounds (active_count=%d)", idx, r.activeCount)
	}
	if idx < MaxActiveCount && !r.written[idx] {
		diag.Warning(pc, "register x%d read before being written", idx)
	}
	if idx >= MaxActiveCount {
		return 0
	}
	return r.slots[idx]
}

// Write stores value into register idx and marks it written.
// Out-of-bound accesses warn but still proceed against storage.
func (r *RegisterFile) Write(pc uint32, idx uint32, value int32) {
	if idx >= r.activeCount {
		diag.Warning(pc, "register x%d write is out of bounds (active_count=%d)", idx, r.activeCount)
	}
	if idx >= MaxActiveCount {
		return
	}
	r.slots[idx] = value
	r.written[idx] = true
}
