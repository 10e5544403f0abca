package packets

// CustomControllerDataSize is the fixed content size of a custom
// controller frame.
const CustomControllerDataSize = 30

// CustomControllerData carries an opaque payload between a custom
// controller and a robot, sent on demand up to 30Hz. An older,
// identically-shaped RoboMaster.hpp header also claims this layout
// under the name CustomController; it is not separately registered
// since it is a duplicate of this one, not a distinct command.
type CustomControllerData struct {
	Data [CustomControllerDataSize]byte
}

func (*CustomControllerData) Cmd() uint16 { return 0x0302 }
func (*CustomControllerData) Size() int   { return CustomControllerDataSize }
func (*CustomControllerData) Align() int  { return 1 }

func (c *CustomControllerData) MarshalTo(dst []byte) error {
	copy(dst, c.Data[:])
	return nil
}

func (c *CustomControllerData) UnmarshalFrom(src []byte) error {
	copy(c.Data[:], src)
	return nil
}
