package components

import (
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/yohamta/donburi"
)

// AutoDestroyCondition is a bit set of reasons to remove an entity.
type AutoDestroyCondition uint8

const (
	OnTimeout AutoDestroyCondition = 1 << iota
	OnWorldCollision
	OnLeavingActiveRegion
)

type AutoDestroyData struct {
	Conditions   AutoDestroyCondition
	FramesToLive int
}

func (d AutoDestroyData) Has(c AutoDestroyCondition) bool {
	return d.Conditions&c != 0
}

// AutoDestroyAfterTimeout destroys the entity after frames ticks.
func AutoDestroyAfterTimeout(frames int) AutoDestroyData {
	return AutoDestroyData{Conditions: OnTimeout, FramesToLive: frames}
}

func AutoDestroyOn(conditions AutoDestroyCondition) AutoDestroyData {
	return AutoDestroyData{Conditions: conditions}
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// ActivationPolicy decides when an entity takes part in the simulation.
type ActivationPolicy int

const (
	ActivateWhenOnScreen ActivationPolicy = iota
	ActivateAlways
	ActivateAlwaysAfterFirstActivation
)

type ActivationSettingsData struct {
	Policy           ActivationPolicy
	HasBeenActivated bool
}

var ActivationSettings = donburi.NewComponentType[ActivationSettingsData]()

// SpriteCascadeSpawnerData keeps spawning one-shot sprites at random spots
// inside the covered area.
type SpriteCascadeSpawnerData struct {
	BasePosition gamemath.Vec
	CoveredArea  gamemath.Extents
	ActorID      config.ActorID
	Elapsed      int
}

var SpriteCascadeSpawner = donburi.NewComponentType[SpriteCascadeSpawnerData]()

// DelayedEffectData spawns an effect once Ticks reaches zero.
type DelayedEffectData struct {
	Effect   config.EffectSpec
	Position gamemath.Vec
	// Bounding box of the dead entity, relative to Position
	Area  gamemath.Rect
	Ticks int
}

var DelayedEffect = donburi.NewComponentType[DelayedEffectData]()
