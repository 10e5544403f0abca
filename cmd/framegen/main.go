// Command framegen emits a stream of encoded, checksum-valid frames to
// stdout, cycling through a fixed list of sample packets. It exists to feed
// frameinspect and other consumers a known-good byte stream for manual
// testing.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/basestationlabs/rframe/packets"
	"github.com/basestationlabs/rframe/registry"
	"github.com/basestationlabs/rframe/serializer"
)

func main() {
	count := flag.Int("count", 10, "number of frames to emit")
	flag.Parse()

	b := registry.NewBuilder()
	packets.RegisterAll(b)
	reg, err := b.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "framegen:", err)
		os.Exit(1)
	}

	ser := serializer.New(reg)
	out := make([]byte, ser.MaxFrameSize())

	samples := sampleCycle()
	for i := 0; i < *count; i++ {
		pkt := samples[i%len(samples)]
		n, err := ser.Serialize(out, pkt)
		if err != nil {
			fmt.Fprintln(os.Stderr, "framegen: serialize:", err)
			os.Exit(1)
		}
		if _, err := os.Stdout.Write(out[:n]); err != nil {
			fmt.Fprintln(os.Stderr, "framegen: write:", err)
			os.Exit(1)
		}
	}
}

// sampleCycle returns one representative populated value for each of
// six of the shipped packet types, walked round-robin as frames are
// emitted; the other shipped types are not emitted.
func sampleCycle() []registry.Payload {
	status := &packets.RobotStatus{RobotID: 1, RobotLevel: 2, CurrentHP: 500, MaximumHP: 600}
	status.SetPowerManagementChassisOutput(true)

	event := &packets.EventData{}
	event.SetDartHitTime(120)

	return []registry.Payload{
		&packets.GameStatus{StageRemainTime: 180, SyncTimestamp: 1700000000},
		&packets.GameRobotHP{Ally1RobotHP: 500, Ally2RobotHP: 500},
		event,
		status,
		&packets.RobotPos{X: 1.2, Y: 3.4, Angle: 90},
		&packets.ShootData{BulletType: 1, ShooterNumber: 1, InitialSpeed: 25.5},
	}
}
