package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLittleEndian(t *testing.T) {
	data := []byte{0x01, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}
	words, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, words, 2)
	assert.Equal(t, uint32(1), words[0])
	assert.Equal(t, uint32(0xFFFFFFFF), words[1])
}

func TestDecodeRejectsPartialWord(t *testing.T) {
	_, err := Decode([]byte{0x01, 0x02, 0x03})
	assert.Error(t, err)
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x2A, 0x00, 0x00, 0x00}, 0644))

	words, err := Load(path)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, uint32(42), words[0])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/to/binary")
	assert.Error(t, err)
}
