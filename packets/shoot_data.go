package packets

// ShootData reports one projectile launch event.
type ShootData struct {
	// BulletType is 1-17mm, 2-42mm.
	BulletType uint8
	// ShooterNumber is the launching mechanism ID: 1-17mm, 3-42mm.
	ShooterNumber      uint8
	LaunchingFrequency uint8 // Hz
	InitialSpeed       float32
}

func (*ShootData) Cmd() uint16 { return 0x0207 }
func (*ShootData) Size() int   { return 7 }
func (*ShootData) Align() int  { return 4 }

func (s *ShootData) MarshalTo(dst []byte) error {
	_ = dst[6]
	dst[0] = s.BulletType
	dst[1] = s.ShooterNumber
	dst[2] = s.LaunchingFrequency
	putFloat32LE(dst[3:7], s.InitialSpeed)
	return nil
}

func (s *ShootData) UnmarshalFrom(src []byte) error {
	_ = src[6]
	s.BulletType = src[0]
	s.ShooterNumber = src[1]
	s.LaunchingFrequency = src[2]
	s.InitialSpeed = float32LE(src[3:7])
	return nil
}
