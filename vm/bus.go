package vm

import (
	"fmt"
	"sort"

	"github.com/lookbusy1344/riscv-sim/diag"
)

// binding is one (range, device) entry in the bus's ordered mapping.
// Ranges are inclusive [begin, end], mirroring the AddressRange type
// this module's behavior is grounded on: two ranges are considered
// equal (overlapping) exactly when neither's end precedes the other's
// begin.
type binding struct {
	begin, end uint32
	device     Device
}

func (b binding) contains(addr uint32) bool {
	return addr >= b.begin && addr <= b.end
}

// overlaps reports whether a and b share any address, using the same
// comparator as AddressRange::operator< in the source this is grounded
// on: a < b iff a.end < b.begin.
func overlaps(a, b binding) bool {
	aLessB := a.end < b.begin
	bLessA := b.end < a.begin
	return !aLessB && !bLessA
}

// Bus is the address-mapped indirection from global addresses to
// device handles (spec.md §4.3). Bindings are disjoint and, once
// inserted, are never removed.
type Bus struct {
	bindings []binding
}

// NewBus constructs an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Register inserts a device at the inclusive range [begin, end]. It
// rejects ranges that overlap an existing binding — the source keeps
// bindings in an ordered container keyed by a comparator that treats
// overlapping ranges as equal; this is the equivalent uniqueness check.
func (b *Bus) Register(device Device, begin, end uint32) error {
	if end < begin {
		return fmt.Errorf("invalid device range [0x%08X, 0x%08X]: end precedes begin", begin, end)
	}
	candidate := binding{begin: begin, end: end, device: device}
	for _, existing := range b.bindings {
		if overlaps(candidate, existing) {
			return fmt.Errorf("device range [0x%08X, 0x%08X] overlaps existing range [0x%08X, 0x%08X]",
				begin, end, existing.begin, existing.end)
		}
	}
	b.bindings = append(b.bindings, candidate)
	sort.Slice(b.bindings, func(i, j int) bool { return b.bindings[i].begin < b.bindings[j].begin })
	return nil
}

// find locates the binding containing addr, or ok=false if unmapped.
func (b *Bus) find(addr uint32) (binding, bool) {
	for _, bind := range b.bindings {
		if bind.contains(addr) {
			return bind, true
		}
	}
	return binding{}, false
}

// Read forwards to the device owning addr, or warns and returns 0 if
// the address is unmapped.
func (b *Bus) Read(pc uint32, addr uint32) uint32 {
	bind, ok := b.find(addr)
	if !ok {
		diag.Warning(pc, "read from undefined memory address 0x%04X", addr)
		return 0
	}
	return bind.device.Read(addr - bind.begin)
}

// Write forwards to the device owning addr, or warns and drops the
// write silently if the address is unmapped.
func (b *Bus) Write(pc uint32, addr uint32, value uint32) {
	bind, ok := b.find(addr)
	if !ok {
		diag.Warning(pc, "write to undefined memory address 0x%04X", addr)
		return
	}
	bind.device.Write(addr-bind.begin, value)
}
