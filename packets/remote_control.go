package packets

import "github.com/basestationlabs/rframe/wire"

// RemoteControl reports mouse/keyboard input state, sent at 30Hz.
type RemoteControl struct {
	MouseX          int16
	MouseY          int16
	MouseZ          int16
	LeftButtonDown  uint8
	RightButtonDown uint8
	KeyboardValue   uint16
	Reserved        uint16
}

func (*RemoteControl) Cmd() uint16 { return 0x0304 }
func (*RemoteControl) Size() int   { return 12 }
func (*RemoteControl) Align() int  { return 2 }

func (r *RemoteControl) MarshalTo(dst []byte) error {
	_ = dst[11]
	putInt16LE(dst[0:2], r.MouseX)
	putInt16LE(dst[2:4], r.MouseY)
	putInt16LE(dst[4:6], r.MouseZ)
	dst[6] = r.LeftButtonDown
	dst[7] = r.RightButtonDown
	wire.PutUint16LE(dst[8:10], r.KeyboardValue)
	wire.PutUint16LE(dst[10:12], r.Reserved)
	return nil
}

func (r *RemoteControl) UnmarshalFrom(src []byte) error {
	_ = src[11]
	r.MouseX = int16LE(src[0:2])
	r.MouseY = int16LE(src[2:4])
	r.MouseZ = int16LE(src[4:6])
	r.LeftButtonDown = src[6]
	r.RightButtonDown = src[7]
	r.KeyboardValue = wire.Uint16LE(src[8:10])
	r.Reserved = wire.Uint16LE(src[10:12])
	return nil
}
