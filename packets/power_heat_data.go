package packets

import "github.com/basestationlabs/rframe/wire"

// PowerHeatData reports chassis buffer energy and barrel heat, sent at
// 10Hz. Reserved0, Reserved1 and Reserved2 preserve the wire layout's
// unused fields (the third, a float, used to be a power-output field
// in an earlier protocol revision) so the struct's Size matches the
// original exactly.
type PowerHeatData struct {
	Reserved0              uint16
	Reserved1              uint16
	Reserved2              float32
	BufferEnergy           uint16
	Shooter17mm1BarrelHeat uint16
	Shooter42mmBarrelHeat  uint16
}

func (*PowerHeatData) Cmd() uint16 { return 0x0202 }
func (*PowerHeatData) Size() int   { return 14 }
func (*PowerHeatData) Align() int  { return 4 }

func (p *PowerHeatData) MarshalTo(dst []byte) error {
	_ = dst[13]
	wire.PutUint16LE(dst[0:2], p.Reserved0)
	wire.PutUint16LE(dst[2:4], p.Reserved1)
	putFloat32LE(dst[4:8], p.Reserved2)
	wire.PutUint16LE(dst[8:10], p.BufferEnergy)
	wire.PutUint16LE(dst[10:12], p.Shooter17mm1BarrelHeat)
	wire.PutUint16LE(dst[12:14], p.Shooter42mmBarrelHeat)
	return nil
}

func (p *PowerHeatData) UnmarshalFrom(src []byte) error {
	_ = src[13]
	p.Reserved0 = wire.Uint16LE(src[0:2])
	p.Reserved1 = wire.Uint16LE(src[2:4])
	p.Reserved2 = float32LE(src[4:8])
	p.BufferEnergy = wire.Uint16LE(src[8:10])
	p.Shooter17mm1BarrelHeat = wire.Uint16LE(src[10:12])
	p.Shooter42mmBarrelHeat = wire.Uint16LE(src[12:14])
	return nil
}
