package packets

import "github.com/basestationlabs/rframe/wire"

// RobotInteractionDataUserDataSize is the maximum content size of a
// RobotInteractionData payload's variable sub-content.
const RobotInteractionDataUserDataSize = 112

// RobotInteractionData carries inter-robot messages, sent on demand up
// to 30Hz. The sub-content addressed by DataCmdID (e.g. graphics
// layer commands) lives entirely inside UserData; those sub-content
// layouts are not independently registered commands.
type RobotInteractionData struct {
	DataCmdID  uint16
	SenderID   uint16
	ReceiverID uint16
	UserData   [RobotInteractionDataUserDataSize]byte
}

func (*RobotInteractionData) Cmd() uint16 { return 0x0301 }
func (*RobotInteractionData) Size() int   { return 6 + RobotInteractionDataUserDataSize }
func (*RobotInteractionData) Align() int  { return 2 }

func (r *RobotInteractionData) MarshalTo(dst []byte) error {
	_ = dst[r.Size()-1]
	wire.PutUint16LE(dst[0:2], r.DataCmdID)
	wire.PutUint16LE(dst[2:4], r.SenderID)
	wire.PutUint16LE(dst[4:6], r.ReceiverID)
	copy(dst[6:], r.UserData[:])
	return nil
}

func (r *RobotInteractionData) UnmarshalFrom(src []byte) error {
	_ = src[r.Size()-1]
	r.DataCmdID = wire.Uint16LE(src[0:2])
	r.SenderID = wire.Uint16LE(src[2:4])
	r.ReceiverID = wire.Uint16LE(src[4:6])
	copy(r.UserData[:], src[6:])
	return nil
}
