package packets

// RFIDStatus reports which gain-point RFID sensors are currently
// active, sent at 3Hz.
type RFIDStatus struct {
	// Status is a bitmask over gain points (base, highlands,
	// outpost, etc).
	Status uint32
	// TerrainFlags packs the 2-bit terrain-crossing gain point state
	// (tunnel) into bits 0-1; bits 2-7 are reserved.
	TerrainFlags uint8
}

func (r *RFIDStatus) TerrainGainPoint() uint8 { return r.TerrainFlags & 0x03 }
func (r *RFIDStatus) SetTerrainGainPoint(v uint8) {
	r.TerrainFlags = (r.TerrainFlags &^ 0x03) | (v & 0x03)
}

func (*RFIDStatus) Cmd() uint16 { return 0x0209 }
func (*RFIDStatus) Size() int   { return 5 }
func (*RFIDStatus) Align() int  { return 4 }

func (r *RFIDStatus) MarshalTo(dst []byte) error {
	_ = dst[4]
	putUint32LE(dst[0:4], r.Status)
	dst[4] = r.TerrainFlags
	return nil
}

func (r *RFIDStatus) UnmarshalFrom(src []byte) error {
	_ = src[4]
	r.Status = uint32LE(src[0:4])
	r.TerrainFlags = src[4]
	return nil
}
