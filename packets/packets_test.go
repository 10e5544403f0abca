package packets

import (
	"testing"

	"github.com/basestationlabs/rframe/registry"
	"github.com/stretchr/testify/require"
)

func TestRegisterAllHasNoCollisionsAndMatchesCmdTable(t *testing.T) {
	b := registry.NewBuilder()
	RegisterAll(b)
	reg, err := b.Build()
	require.NoError(t, err)

	want := []uint16{
		0x0001, 0x0002, 0x0003, 0x0101, 0x0104,
		0x0201, 0x0202, 0x0203, 0x0206, 0x0207,
		0x0208, 0x0209, 0x0301, 0x0302, 0x0304,
	}
	require.Equal(t, want, reg.Cmds())
}

func TestGameStatusBitfieldAccessors(t *testing.T) {
	g := &GameStatus{}
	g.SetGameType(5)
	g.SetGameProgress(4)
	require.Equal(t, uint8(5), g.GameType())
	require.Equal(t, uint8(4), g.GameProgress())

	buf := make([]byte, g.Size())
	require.NoError(t, g.MarshalTo(buf))

	var round GameStatus
	require.NoError(t, round.UnmarshalFrom(buf))
	require.Equal(t, uint8(5), round.GameType())
	require.Equal(t, uint8(4), round.GameProgress())
}

func TestEventDataBitfieldRoundTrip(t *testing.T) {
	e := &EventData{}
	e.SetDartHitTime(420)
	e.SetOutpostGainStatus(3)
	e.SetBaseGainStatus(1)

	buf := make([]byte, e.Size())
	require.NoError(t, e.MarshalTo(buf))

	var round EventData
	require.NoError(t, round.UnmarshalFrom(buf))
	require.Equal(t, uint32(420), round.DartHitTime())
	require.Equal(t, uint32(3), round.OutpostGainStatus())
	require.Equal(t, uint32(1), round.BaseGainStatus())
}

func TestRobotStatusPowerFlagsRoundTrip(t *testing.T) {
	r := &RobotStatus{RobotID: 7, CurrentHP: 400, MaximumHP: 600}
	r.SetPowerManagementChassisOutput(true)
	r.SetPowerManagementShooterOutput(true)

	buf := make([]byte, r.Size())
	require.NoError(t, r.MarshalTo(buf))

	var round RobotStatus
	require.NoError(t, round.UnmarshalFrom(buf))
	require.False(t, round.PowerManagementGimbalOutput())
	require.True(t, round.PowerManagementChassisOutput())
	require.True(t, round.PowerManagementShooterOutput())
	require.Equal(t, uint16(400), round.CurrentHP)
}

func TestRobotPosFloatRoundTrip(t *testing.T) {
	r := &RobotPos{X: 1.5, Y: -2.25, Angle: 90.0}
	buf := make([]byte, r.Size())
	require.NoError(t, r.MarshalTo(buf))

	var round RobotPos
	require.NoError(t, round.UnmarshalFrom(buf))
	require.Equal(t, r.X, round.X)
	require.Equal(t, r.Y, round.Y)
	require.Equal(t, r.Angle, round.Angle)
}

func TestRemoteControlNegativeMouseDeltaRoundTrip(t *testing.T) {
	r := &RemoteControl{MouseX: -100, MouseY: 32000, MouseZ: -1}
	buf := make([]byte, r.Size())
	require.NoError(t, r.MarshalTo(buf))

	var round RemoteControl
	require.NoError(t, round.UnmarshalFrom(buf))
	require.Equal(t, int16(-100), round.MouseX)
	require.Equal(t, int16(32000), round.MouseY)
	require.Equal(t, int16(-1), round.MouseZ)
}

func TestRobotInteractionDataUserDataRoundTrip(t *testing.T) {
	r := &RobotInteractionData{DataCmdID: 0x0200, SenderID: 101, ReceiverID: 1}
	r.UserData[0] = 0xAB
	r.UserData[RobotInteractionDataUserDataSize-1] = 0xCD

	buf := make([]byte, r.Size())
	require.NoError(t, r.MarshalTo(buf))

	var round RobotInteractionData
	require.NoError(t, round.UnmarshalFrom(buf))
	require.Equal(t, uint16(0x0200), round.DataCmdID)
	require.Equal(t, byte(0xAB), round.UserData[0])
	require.Equal(t, byte(0xCD), round.UserData[RobotInteractionDataUserDataSize-1])
}

func TestAllRegisteredPayloadSizesMatchMarshaledLength(t *testing.T) {
	samples := []registry.Payload{
		&GameStatus{}, &GameResult{}, &GameRobotHP{}, &EventData{},
		&RefereeWarning{}, &RobotStatus{}, &PowerHeatData{}, &RobotPos{},
		&HurtData{}, &ShootData{}, &ProjectileAllowance{}, &RFIDStatus{},
		&RobotInteractionData{}, &CustomControllerData{}, &RemoteControl{},
	}
	for _, p := range samples {
		buf := make([]byte, p.Size())
		require.NoError(t, p.MarshalTo(buf), "cmd %#04x", p.Cmd())
	}
}
