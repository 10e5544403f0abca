package packets

// RefereeWarning reports a referee penalty issued against a robot.
type RefereeWarning struct {
	// Level is 1-both-sides-yellow, 2-yellow, 3-red, 4-forfeit.
	Level            uint8
	OffendingRobotID uint8
	Count            uint8
}

func (*RefereeWarning) Cmd() uint16 { return 0x0104 }
func (*RefereeWarning) Size() int   { return 3 }
func (*RefereeWarning) Align() int  { return 1 }

func (r *RefereeWarning) MarshalTo(dst []byte) error {
	_ = dst[2]
	dst[0], dst[1], dst[2] = r.Level, r.OffendingRobotID, r.Count
	return nil
}

func (r *RefereeWarning) UnmarshalFrom(src []byte) error {
	_ = src[2]
	r.Level, r.OffendingRobotID, r.Count = src[0], src[1], src[2]
	return nil
}
