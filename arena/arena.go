// Package arena implements the single fixed-size storage block that
// backs every registered packet's most-recently-parsed value. There is
// exactly one slot per registered command, sized and aligned by the
// registry; only the parser writes into it. Get hands readers a
// read-through copy, while Slot exposes the live bytes of a slot.
package arena

import (
	"fmt"

	"github.com/basestationlabs/rframe/registry"
)

// Arena is a single contiguous byte buffer holding one slot per
// command registered in the Registry it was built from. Slots start
// out zeroed. The Arena does no locking: a read that runs concurrently
// with a write to the same slot may observe a partially written
// payload, so callers that need consistent snapshots must synchronise
// externally.
type Arena struct {
	reg *registry.Registry
	buf []byte
}

// New allocates an Arena sized to hold one slot for every command in
// reg.
func New(reg *registry.Registry) *Arena {
	return &Arena{
		reg: reg,
		buf: make([]byte, reg.TotalSize()),
	}
}

// WriteSlot marshals payload into cmd's slot. It returns an error if
// cmd is not registered or if payload's Cmd() does not match cmd.
func (a *Arena) WriteSlot(cmd uint16, payload registry.Payload) error {
	offset, ok := a.reg.Offset(cmd)
	if !ok {
		return fmt.Errorf("arena: command %#04x is not registered", cmd)
	}
	size, _ := a.reg.Size(cmd)
	if payload.Cmd() != cmd {
		return fmt.Errorf("arena: payload cmd %#04x does not match slot cmd %#04x", payload.Cmd(), cmd)
	}
	return payload.MarshalTo(a.buf[offset : offset+size])
}

// WriteRaw copies already-encoded wire bytes directly into cmd's slot,
// bypassing Marshal. This is the parser's fast path: decode once from
// the ring buffer straight into arena storage, with no intermediate
// Payload allocation.
func (a *Arena) WriteRaw(cmd uint16, encoded []byte) error {
	offset, ok := a.reg.Offset(cmd)
	if !ok {
		return fmt.Errorf("arena: command %#04x is not registered", cmd)
	}
	size, _ := a.reg.Size(cmd)
	if len(encoded) != size {
		return fmt.Errorf("arena: command %#04x expects %d bytes, got %d", cmd, size, len(encoded))
	}
	copy(a.buf[offset:offset+size], encoded)
	return nil
}

// Slot returns the raw byte range currently stored for cmd, without
// copying. Callers that need a stable snapshot across further parser
// activity should copy it themselves; Get does this automatically.
func (a *Arena) Slot(cmd uint16) ([]byte, bool) {
	offset, ok := a.reg.Offset(cmd)
	if !ok {
		return nil, false
	}
	size, _ := a.reg.Size(cmd)
	return a.buf[offset : offset+size], true
}

// Get decodes a fresh copy of T out of the arena's slot for T's
// registered command. It returns false if T's command has never been
// registered. If PT implements BeforeGetter, BeforeGet runs on the
// decoded value before it is returned.
func Get[T any, PT interface {
	*T
	registry.Payload
}](a *Arena) (PT, bool) {
	var zero T
	pt := PT(&zero)
	slot, ok := a.Slot(pt.Cmd())
	if !ok {
		return nil, false
	}
	if err := pt.UnmarshalFrom(slot); err != nil {
		return nil, false
	}
	if bg, ok := any(pt).(registry.BeforeGetter); ok {
		bg.BeforeGet()
	}
	return pt, true
}

// Registry returns the registry this arena was built from.
func (a *Arena) Registry() *registry.Registry {
	return a.reg
}
