package packets

// HurtData reports a damage event, sent immediately after it occurs.
type HurtData struct {
	// Flags packs ArmorID (low nibble) and Reason (high nibble) into
	// a single byte.
	Flags uint8
}

// ArmorID is the hit armor plate (0-4).
func (h *HurtData) ArmorID() uint8 { return h.Flags & 0x0F }
func (h *HurtData) SetArmorID(v uint8) {
	h.Flags = (h.Flags &^ 0x0F) | (v & 0x0F)
}

// Reason is the HP-deduction cause: 0-projectile, 1-collision/offline,
// 5-module collision.
func (h *HurtData) Reason() uint8 { return h.Flags >> 4 }
func (h *HurtData) SetReason(v uint8) {
	h.Flags = (h.Flags & 0x0F) | (v << 4)
}

func (*HurtData) Cmd() uint16 { return 0x0206 }
func (*HurtData) Size() int   { return 1 }
func (*HurtData) Align() int  { return 1 }

func (h *HurtData) MarshalTo(dst []byte) error {
	dst[0] = h.Flags
	return nil
}

func (h *HurtData) UnmarshalFrom(src []byte) error {
	h.Flags = src[0]
	return nil
}
