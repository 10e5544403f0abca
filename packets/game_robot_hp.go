package packets

import "github.com/basestationlabs/rframe/wire"

// GameRobotHP reports every robot's and structure's current health,
// sent at 3Hz.
type GameRobotHP struct {
	Ally1RobotHP  uint16
	Ally2RobotHP  uint16
	Ally3RobotHP  uint16
	Ally4RobotHP  uint16
	Ally5RobotHP  uint16 // reserved slot, formerly robot 5
	Ally7RobotHP  uint16
	AllyOutpostHP uint16
	AllyBaseHP    uint16
}

func (*GameRobotHP) Cmd() uint16 { return 0x0003 }
func (*GameRobotHP) Size() int   { return 16 }
func (*GameRobotHP) Align() int  { return 2 }

func (g *GameRobotHP) MarshalTo(dst []byte) error {
	_ = dst[15]
	fields := [8]uint16{
		g.Ally1RobotHP, g.Ally2RobotHP, g.Ally3RobotHP, g.Ally4RobotHP,
		g.Ally5RobotHP, g.Ally7RobotHP, g.AllyOutpostHP, g.AllyBaseHP,
	}
	for i, v := range fields {
		wire.PutUint16LE(dst[i*2:i*2+2], v)
	}
	return nil
}

func (g *GameRobotHP) UnmarshalFrom(src []byte) error {
	_ = src[15]
	g.Ally1RobotHP = wire.Uint16LE(src[0:2])
	g.Ally2RobotHP = wire.Uint16LE(src[2:4])
	g.Ally3RobotHP = wire.Uint16LE(src[4:6])
	g.Ally4RobotHP = wire.Uint16LE(src[6:8])
	g.Ally5RobotHP = wire.Uint16LE(src[8:10])
	g.Ally7RobotHP = wire.Uint16LE(src[10:12])
	g.AllyOutpostHP = wire.Uint16LE(src[12:14])
	g.AllyBaseHP = wire.Uint16LE(src[14:16])
	return nil
}
