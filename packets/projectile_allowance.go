package packets

import "github.com/basestationlabs/rframe/wire"

// ProjectileAllowance reports remaining permitted ammunition, sent at
// 10Hz.
type ProjectileAllowance struct {
	ProjectileAllowance17mm     uint16
	ProjectileAllowance42mm     uint16
	RemainingGoldCoin           uint16
	ProjectileAllowanceFortress uint16
}

func (*ProjectileAllowance) Cmd() uint16 { return 0x0208 }
func (*ProjectileAllowance) Size() int   { return 8 }
func (*ProjectileAllowance) Align() int  { return 2 }

func (p *ProjectileAllowance) MarshalTo(dst []byte) error {
	_ = dst[7]
	wire.PutUint16LE(dst[0:2], p.ProjectileAllowance17mm)
	wire.PutUint16LE(dst[2:4], p.ProjectileAllowance42mm)
	wire.PutUint16LE(dst[4:6], p.RemainingGoldCoin)
	wire.PutUint16LE(dst[6:8], p.ProjectileAllowanceFortress)
	return nil
}

func (p *ProjectileAllowance) UnmarshalFrom(src []byte) error {
	_ = src[7]
	p.ProjectileAllowance17mm = wire.Uint16LE(src[0:2])
	p.ProjectileAllowance42mm = wire.Uint16LE(src[2:4])
	p.RemainingGoldCoin = wire.Uint16LE(src[4:6])
	p.ProjectileAllowanceFortress = wire.Uint16LE(src[6:8])
	return nil
}
