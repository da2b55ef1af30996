package config

import "github.com/automoto/dukeengine/shared/gamemath"

// BehaviorConfig holds timing values of the enemy behaviors
type BehaviorConfig struct {
	RocketTurretFireInterval int
	// Rocket spawn offsets per turret orientation (left, up, right)
	RocketTurretOffsets [3]gamemath.Vec
	RocketAcceleration  float64
	RocketMaxSpeed      float64

	LaserTurretFireInterval int
	LaserTurretRange        int

	SlimePipeDropInterval int

	SpiderShakeOffThreshold int
	WalkerStepDelay         int
}

var Behaviors BehaviorConfig

func init() {
	Behaviors = BehaviorConfig{
		RocketTurretFireInterval: 25,
		RocketTurretOffsets: [3]gamemath.Vec{
			{X: 1, Y: -1},
			{X: 1, Y: -2},
			{X: 2, Y: -1},
		},
		RocketAcceleration: 0.5,
		RocketMaxSpeed:     3,

		LaserTurretFireInterval: 40,
		LaserTurretRange:        12,

		SlimePipeDropInterval: 25,

		SpiderShakeOffThreshold: 2,
		WalkerStepDelay:         2,
	}
}
