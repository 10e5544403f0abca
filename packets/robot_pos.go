package packets

// RobotPos reports a robot's field position from the positioning
// module, sent at 1Hz.
type RobotPos struct {
	X     float32
	Y     float32
	Angle float32 // degrees from true north
}

func (*RobotPos) Cmd() uint16 { return 0x0203 }
func (*RobotPos) Size() int   { return 12 }
func (*RobotPos) Align() int  { return 4 }

func (r *RobotPos) MarshalTo(dst []byte) error {
	_ = dst[11]
	putFloat32LE(dst[0:4], r.X)
	putFloat32LE(dst[4:8], r.Y)
	putFloat32LE(dst[8:12], r.Angle)
	return nil
}

func (r *RobotPos) UnmarshalFrom(src []byte) error {
	_ = src[11]
	r.X = float32LE(src[0:4])
	r.Y = float32LE(src[4:8])
	r.Angle = float32LE(src[8:12])
	return nil
}
