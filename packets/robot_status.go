package packets

import "github.com/basestationlabs/rframe/wire"

// RobotStatus reports one robot's performance envelope, sent at 10Hz.
type RobotStatus struct {
	RobotID                   uint8
	RobotLevel                uint8
	CurrentHP                 uint16
	MaximumHP                 uint16
	ShooterBarrelCoolingValue uint16
	ShooterBarrelHeatLimit    uint16
	ChassisPowerLimit         uint16
	// PowerFlags packs three 1-bit output-enable flags (gimbal,
	// chassis, shooter) into bits 0-2 of a single byte; bits 3-7 are
	// reserved.
	PowerFlags uint8
}

func (r *RobotStatus) PowerManagementGimbalOutput() bool  { return r.PowerFlags&0x01 != 0 }
func (r *RobotStatus) PowerManagementChassisOutput() bool { return r.PowerFlags&0x02 != 0 }
func (r *RobotStatus) PowerManagementShooterOutput() bool { return r.PowerFlags&0x04 != 0 }

func (r *RobotStatus) SetPowerManagementGimbalOutput(on bool) {
	r.setFlag(0x01, on)
}
func (r *RobotStatus) SetPowerManagementChassisOutput(on bool) {
	r.setFlag(0x02, on)
}
func (r *RobotStatus) SetPowerManagementShooterOutput(on bool) {
	r.setFlag(0x04, on)
}

func (r *RobotStatus) setFlag(bit uint8, on bool) {
	if on {
		r.PowerFlags |= bit
	} else {
		r.PowerFlags &^= bit
	}
}

func (*RobotStatus) Cmd() uint16 { return 0x0201 }
func (*RobotStatus) Size() int   { return 13 }
func (*RobotStatus) Align() int  { return 2 }

func (r *RobotStatus) MarshalTo(dst []byte) error {
	_ = dst[12]
	dst[0] = r.RobotID
	dst[1] = r.RobotLevel
	wire.PutUint16LE(dst[2:4], r.CurrentHP)
	wire.PutUint16LE(dst[4:6], r.MaximumHP)
	wire.PutUint16LE(dst[6:8], r.ShooterBarrelCoolingValue)
	wire.PutUint16LE(dst[8:10], r.ShooterBarrelHeatLimit)
	wire.PutUint16LE(dst[10:12], r.ChassisPowerLimit)
	dst[12] = r.PowerFlags
	return nil
}

func (r *RobotStatus) UnmarshalFrom(src []byte) error {
	_ = src[12]
	r.RobotID = src[0]
	r.RobotLevel = src[1]
	r.CurrentHP = wire.Uint16LE(src[2:4])
	r.MaximumHP = wire.Uint16LE(src[4:6])
	r.ShooterBarrelCoolingValue = wire.Uint16LE(src[6:8])
	r.ShooterBarrelHeatLimit = wire.Uint16LE(src[8:10])
	r.ChassisPowerLimit = wire.Uint16LE(src[10:12])
	r.PowerFlags = src[12]
	return nil
}
