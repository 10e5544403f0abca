package rframe

import (
	"testing"

	"github.com/basestationlabs/rframe/arena"
	"github.com/basestationlabs/rframe/packets"
	"github.com/basestationlabs/rframe/serializer"
)

// TestSerializerToParserRoundTrip wires the whole stack together: a
// Serializer encodes a real registered packet type, and a Parser fed
// those exact bytes dispatches it back out through the Arena.
func TestSerializerToParserRoundTrip(t *testing.T) {
	b := NewBuilder()
	packets.RegisterAll(b)
	reg, err := b.Build()
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}

	ser := serializer.New(reg)
	out := make([]byte, ser.MaxFrameSize())

	status := &packets.RobotStatus{RobotID: 3, CurrentHP: 500, MaximumHP: 600}
	status.SetPowerManagementChassisOutput(true)

	n, err := ser.Serialize(out, status)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	a := NewArena(reg)
	p := NewParser(64, reg, a)
	if err := p.Push(out[:n]); err != nil {
		t.Fatalf("push: %v", err)
	}
	p.TryParsePackets()

	got, ok := arena.Get[packets.RobotStatus](a)
	if !ok {
		t.Fatal("expected RobotStatus to be dispatched into the arena")
	}
	if got.RobotID != 3 || got.CurrentHP != 500 {
		t.Fatalf("got %+v, want RobotID=3 CurrentHP=500", got)
	}
	if !got.PowerManagementChassisOutput() {
		t.Fatal("chassis output flag lost across the wire")
	}
}

// TestSerializerToParserMultiplePackets sends several distinct
// registered commands in one Serialize/Push/TryParsePackets cycle.
func TestSerializerToParserMultiplePackets(t *testing.T) {
	b := NewBuilder()
	packets.RegisterAll(b)
	reg, err := b.Build()
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}

	ser := serializer.New(reg)
	hp := &packets.GameRobotHP{Ally1RobotHP: 250}
	pos := &packets.RobotPos{X: 1, Y: 2, Angle: 90}

	out := make([]byte, ser.MaxFrameSize()*2)
	n, err := ser.Serialize(out, hp, pos)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	a := NewArena(reg)
	p := NewParser(256, reg, a)
	if err := p.Push(out[:n]); err != nil {
		t.Fatalf("push: %v", err)
	}
	p.TryParsePackets()

	gotHP, ok := arena.Get[packets.GameRobotHP](a)
	if !ok || gotHP.Ally1RobotHP != 250 {
		t.Fatalf("GameRobotHP dispatch failed: %+v ok=%v", gotHP, ok)
	}
	gotPos, ok := arena.Get[packets.RobotPos](a)
	if !ok || gotPos.X != 1 || gotPos.Y != 2 {
		t.Fatalf("RobotPos dispatch failed: %+v ok=%v", gotPos, ok)
	}
}
