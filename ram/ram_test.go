package ram

import "testing"

func TestWriteThenRead(t *testing.T) {
	d := New(16)
	d.Write(8, 0x1234)
	if got := d.Read(8); got != 0x1234 {
		t.Errorf("Read(8) = 0x%X, want 0x1234", got)
	}
}

func TestOutOfRangeReadReturnsZero(t *testing.T) {
	d := New(4)
	if got := d.Read(1000); got != 0 {
		t.Errorf("Read(1000) = 0x%X, want 0", got)
	}
}

func TestOutOfRangeWriteIsNoop(t *testing.T) {
	d := New(4)
	d.Write(1000, 0xFFFFFFFF) // must not panic
}

func TestWordAlignedTruncation(t *testing.T) {
	d := New(4)
	d.Write(0, 0xAAAAAAAA)
	d.Write(2, 0xBBBBBBBB) // same word as offset 0, truncates to word index 0
	if got := d.Read(0); got != 0xBBBBBBBB {
		t.Errorf("Read(0) after overlapping write = 0x%X, want 0xBBBBBBBB", got)
	}
}
