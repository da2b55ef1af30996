package components

import (
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/yohamta/donburi"
)

type MovingBodyData struct {
	Velocity         gamemath.VecF
	GravityAffected  bool
	IgnoreCollisions bool
	IsActive         bool

	// Fraction of a tile not yet applied to the position
	Remainder gamemath.VecF
	// Set by the physics system when the last move was blocked
	HitWorld bool
	OnGround bool
}

func NewMovingBody(velocity gamemath.VecF, gravity bool) MovingBodyData {
	return MovingBodyData{Velocity: velocity, GravityAffected: gravity, IsActive: true}
}

var MovingBody = donburi.NewComponentType[MovingBodyData]()

// MovementSequenceData overrides a body's velocity with one table entry per
// tick.
type MovementSequenceData struct {
	Velocities              []gamemath.VecF
	ResetVelocityAfterwards bool
	EnableX                 bool
	EnableY                 bool

	CurrentStep int
}

func NewMovementSequence(velocities []gamemath.VecF, resetAfterwards, enableX bool) MovementSequenceData {
	return MovementSequenceData{
		Velocities:              velocities,
		ResetVelocityAfterwards: resetAfterwards,
		EnableX:                 enableX,
		EnableY:                 true,
	}
}

var MovementSequence = donburi.NewComponentType[MovementSequenceData]()

// SolidBodyData marks an entity that blocks other moving bodies.
type SolidBodyData struct{}

var SolidBody = donburi.NewComponentType[SolidBodyData]()
