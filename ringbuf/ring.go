// Package ringbuf implements a fixed-capacity, single-producer /
// single-consumer byte ring used by the frame parser to absorb
// arbitrary, fragmented byte chunks before framing is attempted.
package ringbuf

import "bytes"

// Ring is a power-of-two capacity byte ring buffer. It is not safe for
// concurrent use; a Ring is owned by exactly one parser.
type Ring struct {
	buf   []byte
	mask  int
	read  int
	write int
}

// New allocates a Ring of the given capacity, which must be a power of
// two. It panics on a non-power-of-two capacity since that is always a
// construction-time mistake, never a runtime condition.
func New(capacity int) *Ring {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		panic("ringbuf: capacity must be a power of two")
	}
	return &Ring{
		buf:  make([]byte, capacity),
		mask: capacity - 1,
	}
}

// Cap returns the ring's total capacity in bytes.
func (r *Ring) Cap() int { return len(r.buf) }

// Available returns the number of bytes currently readable.
func (r *Ring) Available() int {
	return (r.write - r.read) & r.mask
}

// Space returns the number of bytes currently writable. One slot is
// always reserved to distinguish full from empty without a separate
// flag.
func (r *Ring) Space() int {
	return (r.read - r.write - 1) & r.mask
}

// Empty reports whether there is no readable data.
func (r *Ring) Empty() bool { return r.read == r.write }

// Full reports whether there is no writable space.
func (r *Ring) Full() bool { return r.Space() == 0 }

// Clear discards all buffered data without zeroing the backing array.
func (r *Ring) Clear() { r.read, r.write = 0, 0 }

// Write copies data into the ring, splitting across the physical wrap
// if necessary. It fails if data does not fit in the current space.
func (r *Ring) Write(data []byte) bool {
	if len(data) > r.Space() {
		return false
	}
	end := (r.write + len(data)) & r.mask
	if end >= r.write || len(data) == 0 {
		copy(r.buf[r.write:r.write+len(data)], data)
	} else {
		first := len(r.buf) - r.write
		copy(r.buf[r.write:], data[:first])
		copy(r.buf[:len(data)-first], data[first:])
	}
	r.write = end
	return true
}

// WritableView returns the largest contiguous region starting at the
// current write index that can be filled without crossing the read
// index. The caller fills some prefix of it and then calls
// AdvanceWrite with the number of bytes actually written.
func (r *Ring) WritableView() []byte {
	size := len(r.buf)
	if r.write >= r.read {
		end := size
		if r.read == 0 {
			end = size - 1
		}
		return r.buf[r.write:end]
	}
	return r.buf[r.write : r.read-1]
}

// AdvanceWrite commits length bytes previously written directly into
// the slice returned by WritableView.
func (r *Ring) AdvanceWrite(length int) bool {
	if length > r.Space() {
		return false
	}
	r.write = (r.write + length) & r.mask
	return true
}

// Read copies length bytes out of the ring into dst and removes them.
func (r *Ring) Read(dst []byte, length int) bool {
	if length > r.Available() {
		return false
	}
	end := (r.read + length) & r.mask
	if end >= r.read || length == 0 {
		copy(dst[:length], r.buf[r.read:r.read+length])
	} else {
		first := len(r.buf) - r.read
		copy(dst[:first], r.buf[r.read:])
		copy(dst[first:length], r.buf[:length-first])
	}
	r.read = end
	return true
}

// Peek copies length bytes starting offset bytes past the current read
// index into dst, without advancing the read index.
func (r *Ring) Peek(dst []byte, offset, length int) bool {
	if offset+length > r.Available() {
		return false
	}
	start := (r.read + offset) & r.mask
	end := (start + length) & r.mask
	if end >= start || length == 0 {
		copy(dst[:length], r.buf[start:start+length])
	} else {
		first := len(r.buf) - start
		copy(dst[:first], r.buf[start:])
		copy(dst[first:length], r.buf[:length-first])
	}
	return true
}

// Discard advances the read index by length bytes without copying
// them anywhere.
func (r *Ring) Discard(length int) bool {
	if length > r.Available() {
		return false
	}
	r.read = (r.read + length) & r.mask
	return true
}

// FindByte returns the offset of the first occurrence of b within the
// currently readable data, searching across the physical wrap if
// necessary. It returns -1 if b does not occur in the readable region.
func (r *Ring) FindByte(b byte) int {
	available := r.Available()
	if available == 0 {
		return -1
	}
	if r.read <= r.write {
		idx := bytes.IndexByte(r.buf[r.read:r.write], b)
		return idx
	}
	firstLen := len(r.buf) - r.read
	if idx := bytes.IndexByte(r.buf[r.read:], b); idx >= 0 {
		return idx
	}
	if idx := bytes.IndexByte(r.buf[:r.write], b); idx >= 0 {
		return firstLen + idx
	}
	return -1
}

// ReadableView returns the largest contiguous readable region starting
// at the current read index: up to the write index if the data has
// not wrapped, otherwise up to the physical end of the backing array.
func (r *Ring) ReadableView() []byte {
	if r.read <= r.write {
		return r.buf[r.read:r.write]
	}
	return r.buf[r.read:]
}
