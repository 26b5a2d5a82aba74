// Package loader reads the simulator's binary program image: a raw
// sequence of little-endian 32-bit instruction words, with no header
// and no symbol table (spec.md §6).
package loader

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Load reads path and decodes it into a slice of instruction words.
// instruction_count is len(result); the file's byte length must be a
// multiple of 4.
func Load(path string) ([]uint32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening binary %q: %w", path, err)
	}
	return Decode(data)
}

// Decode interprets raw bytes as little-endian 32-bit instruction
// words. It is split out from Load so tests can exercise it without
// touching the filesystem.
func Decode(data []byte) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("binary image length %d is not a multiple of 4", len(data))
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4 : i*4+4])
	}
	return words, nil
}
