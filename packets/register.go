package packets

import "github.com/basestationlabs/rframe/registry"

// RegisterAll registers every shipped RoboMaster referee-system packet
// type against b. Registration order here becomes arena offset order.
func RegisterAll(b *registry.Builder) {
	registry.Register[GameStatus](b)
	registry.Register[GameResult](b)
	registry.Register[GameRobotHP](b)
	registry.Register[EventData](b)
	registry.Register[RefereeWarning](b)
	registry.Register[RobotStatus](b)
	registry.Register[PowerHeatData](b)
	registry.Register[RobotPos](b)
	registry.Register[HurtData](b)
	registry.Register[ShootData](b)
	registry.Register[ProjectileAllowance](b)
	registry.Register[RFIDStatus](b)
	registry.Register[RobotInteractionData](b)
	registry.Register[CustomControllerData](b)
	registry.Register[RemoteControl](b)
}
