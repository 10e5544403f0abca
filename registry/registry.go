// Package registry builds the static, order-preserving table that maps
// each packet command ID to a fixed, aligned offset into the arena
// storage backing the parser and serializer. The table is assembled
// once at program start-up (mirroring the original's compile-time
// PacketInfoCollector) and is immutable from the moment Build returns.
package registry

import (
	"fmt"
)

// Payload is implemented by every packet payload type's pointer
// receiver. Types never alias their wire bytes directly (Go structs
// cannot reproduce C packed-struct/bitfield layouts), so every payload
// marshals explicitly to and from a byte slice, the same shape as the
// teacher's EncodeFrame/DecodeFrame pair.
type Payload interface {
	// Cmd is the wire command ID this payload type is registered
	// under. It must be a compile-time constant for a given type;
	// the registry calls it once, at registration time.
	Cmd() uint16
	// Size is the marshaled wire size in bytes.
	Size() int
	// Align is the byte alignment the arena must reserve this
	// payload's slot at. Types with no special alignment needs
	// should return 1.
	Align() int
	// MarshalTo encodes the receiver into dst, which is exactly
	// Size() bytes long.
	MarshalTo(dst []byte) error
	// UnmarshalFrom decodes src, which is exactly Size() bytes long,
	// into the receiver.
	UnmarshalFrom(src []byte) error
}

// BeforeGetter is an optional hook a payload type can implement to run
// a fix-up step immediately after UnmarshalFrom, before the value is
// handed to the caller (for example, to derive a convenience field
// from raw bitfield bytes). Mirrors the original's before_get_custom
// detection.
type BeforeGetter interface {
	BeforeGet()
}

// descriptor is the registry's internal, type-erased record for one
// registered command.
type descriptor struct {
	cmd    uint16
	size   int
	align  int
	offset int
	newFn  func() Payload
}

// Builder accumulates descriptors in registration order; call Build to
// freeze them into a Registry. A Builder is not safe for concurrent
// use; it is meant to be used once, at package init time, by a single
// goroutine.
type Builder struct {
	descs []descriptor
	seen  map[uint16]struct{}
	err   error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{seen: make(map[uint16]struct{})}
}

// Register records payload type T (accessed through its pointer type
// PT, which must implement Payload) under its Cmd(). Registration
// order determines offset-assignment order but not the cmd namespace:
// two types cannot share a cmd, regardless of order.
func Register[T any, PT interface {
	*T
	Payload
}](b *Builder) {
	if b.err != nil {
		return
	}
	var zero T
	pt := PT(&zero)
	cmd := pt.Cmd()
	if _, dup := b.seen[cmd]; dup {
		b.err = fmt.Errorf("registry: duplicate command %#04x", cmd)
		return
	}
	b.seen[cmd] = struct{}{}
	b.descs = append(b.descs, descriptor{
		cmd:   cmd,
		size:  pt.Size(),
		align: pt.Align(),
		newFn: func() Payload {
			var v T
			return PT(&v)
		},
	})
}

// alignUp rounds offset up to the next multiple of align. align of 0
// or 1 is a no-op.
func alignUp(offset, align int) int {
	if align <= 1 {
		return offset
	}
	rem := offset % align
	if rem == 0 {
		return offset
	}
	return offset + (align - rem)
}

// Build assigns each registered descriptor a frozen offset into a
// single contiguous arena, in registration order, respecting each
// type's alignment. It returns an error if any cmd was registered
// more than once.
func (b *Builder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}
	descs := make([]descriptor, len(b.descs))
	copy(descs, b.descs)

	index := make(map[uint16]int, len(descs))
	offset := 0
	for i := range descs {
		offset = alignUp(offset, descs[i].align)
		descs[i].offset = offset
		offset += descs[i].size
		index[descs[i].cmd] = i
	}

	return &Registry{
		descs:     descs,
		cmdIndex:  index,
		totalSize: offset,
	}, nil
}

// Registry is the frozen result of a Builder. It is safe for
// concurrent read-only use by any number of parsers and serializers.
type Registry struct {
	descs     []descriptor
	cmdIndex  map[uint16]int
	totalSize int
}

// CmdIndex returns the internal slot index for cmd, and whether cmd is
// registered at all.
func (r *Registry) CmdIndex(cmd uint16) (int, bool) {
	idx, ok := r.cmdIndex[cmd]
	return idx, ok
}

// IsRegistered reports whether cmd has a registered payload type.
func (r *Registry) IsRegistered(cmd uint16) bool {
	_, ok := r.cmdIndex[cmd]
	return ok
}

// Offset returns the arena byte offset assigned to cmd's slot.
func (r *Registry) Offset(cmd uint16) (int, bool) {
	idx, ok := r.cmdIndex[cmd]
	if !ok {
		return 0, false
	}
	return r.descs[idx].offset, true
}

// Size returns the marshaled size in bytes of cmd's registered
// payload.
func (r *Registry) Size(cmd uint16) (int, bool) {
	idx, ok := r.cmdIndex[cmd]
	if !ok {
		return 0, false
	}
	return r.descs[idx].size, true
}

// New returns a fresh, zero-valued Payload for cmd, suitable for
// UnmarshalFrom.
func (r *Registry) New(cmd uint16) (Payload, bool) {
	idx, ok := r.cmdIndex[cmd]
	if !ok {
		return nil, false
	}
	return r.descs[idx].newFn(), true
}

// TotalSize is the total number of bytes the arena must allocate to
// hold one slot per registered command.
func (r *Registry) TotalSize() int {
	return r.totalSize
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.descs)
}

// Cmds returns the registered command IDs in registration order.
func (r *Registry) Cmds() []uint16 {
	out := make([]uint16, len(r.descs))
	for i, d := range r.descs {
		out[i] = d.cmd
	}
	return out
}
