package ringbuf

import (
	"bytes"
	"testing"
)

func TestNewPanicsOnNonPowerOfTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-power-of-two capacity")
		}
	}()
	New(10)
}

func TestEmptyFullInvariants(t *testing.T) {
	r := New(16)
	if !r.Empty() {
		t.Fatal("fresh ring should be empty")
	}
	if r.Full() {
		t.Fatal("fresh ring should not be full")
	}
	if r.Available()+r.Space()+1 != r.Cap() {
		t.Fatalf("available+space+1 != capacity: %d+%d+1 != %d", r.Available(), r.Space(), r.Cap())
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	r := New(16)
	data := []byte{1, 2, 3, 4, 5}
	if !r.Write(data) {
		t.Fatal("write should succeed")
	}
	if r.Available() != len(data) {
		t.Fatalf("available = %d, want %d", r.Available(), len(data))
	}

	out := make([]byte, len(data))
	if !r.Read(out, len(data)) {
		t.Fatal("read should succeed")
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("read back %v, want %v", out, data)
	}
	if !r.Empty() {
		t.Fatal("ring should be empty after full read")
	}
}

func TestWriteFailsWhenInsufficientSpace(t *testing.T) {
	r := New(8)
	if r.Write(make([]byte, 8)) {
		t.Fatal("write of capacity bytes should fail (one slot reserved)")
	}
	if !r.Write(make([]byte, 7)) {
		t.Fatal("write of capacity-1 bytes should succeed")
	}
}

func TestReadFailsWhenInsufficientData(t *testing.T) {
	r := New(8)
	r.Write([]byte{1, 2})
	if r.Read(make([]byte, 3), 3) {
		t.Fatal("read beyond available data should fail")
	}
}

func TestWrapAroundWriteAndRead(t *testing.T) {
	r := New(8)
	// Push the write index near the end, then consume, to force a wrap.
	r.Write([]byte{0, 0, 0, 0, 0, 0})
	r.Discard(6)
	data := []byte{1, 2, 3, 4}
	if !r.Write(data) {
		t.Fatal("wrapped write should succeed")
	}
	out := make([]byte, 4)
	if !r.Read(out, 4) {
		t.Fatal("wrapped read should succeed")
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("wrapped read got %v, want %v", out, data)
	}
}

func TestPeekDoesNotAdvance(t *testing.T) {
	r := New(16)
	r.Write([]byte{9, 8, 7, 6})
	out := make([]byte, 2)
	if !r.Peek(out, 1, 2) {
		t.Fatal("peek should succeed")
	}
	if !bytes.Equal(out, []byte{8, 7}) {
		t.Fatalf("peek got %v, want [8 7]", out)
	}
	if r.Available() != 4 {
		t.Fatalf("peek must not advance read index, available = %d", r.Available())
	}
}

func TestFindByteAcrossWrap(t *testing.T) {
	r := New(8)
	r.Write([]byte{0, 0, 0, 0, 0, 0})
	r.Discard(6)
	r.Write([]byte{0xAA, 0xA5, 0xBB, 0xCC})
	if off := r.FindByte(0xA5); off != 1 {
		t.Fatalf("find_byte across wrap = %d, want 1", off)
	}
	if off := r.FindByte(0xFF); off != -1 {
		t.Fatalf("find_byte of absent byte = %d, want -1", off)
	}
}

func TestWritableViewReservesSlotWhenReadIsZero(t *testing.T) {
	r := New(8)
	view := r.WritableView()
	if len(view) != 7 {
		t.Fatalf("writable view at read=0 = %d, want capacity-1 (7)", len(view))
	}
}

func TestAdvanceWriteCommitsWithinSpace(t *testing.T) {
	r := New(8)
	view := r.WritableView()
	copy(view, []byte{1, 2, 3})
	if !r.AdvanceWrite(3) {
		t.Fatal("advance_write within space should succeed")
	}
	if r.Available() != 3 {
		t.Fatalf("available after advance_write = %d, want 3", r.Available())
	}
	if r.AdvanceWrite(1000) {
		t.Fatal("advance_write beyond space must fail")
	}
}

func TestClear(t *testing.T) {
	r := New(8)
	r.Write([]byte{1, 2, 3})
	r.Clear()
	if !r.Empty() {
		t.Fatal("clear should empty the ring")
	}
}

func TestReadableViewStopsAtPhysicalEndWhenWrapped(t *testing.T) {
	r := New(8)
	r.Write([]byte{0, 0, 0, 0, 0, 0})
	r.Discard(6)
	r.Write([]byte{1, 2, 3, 4})
	view := r.ReadableView()
	// read_index=6, write_index=2 (wrapped): contiguous view should be
	// the 2 bytes to the physical end, not the full 4 available bytes.
	if len(view) != 2 {
		t.Fatalf("readable view length = %d, want 2 (up to physical end)", len(view))
	}
}
