package components

import (
	"github.com/automoto/dukeengine/config"
	"github.com/yohamta/donburi"
)

// DamageInflictingData damages shootable entities on contact.
type DamageInflictingData struct {
	Amount           int
	DestroyOnContact bool
	HasCaused        bool
}

var DamageInflicting = donburi.NewComponentType[DamageInflictingData]()

// PlayerDamagingData hurts the player on contact.
type PlayerDamagingData struct {
	Amount           int
	IsFatal          bool
	DestroyOnContact bool
}

var PlayerDamaging = donburi.NewComponentType[PlayerDamagingData]()

type PlayerProjectileData struct {
	Type config.ProjectileType
}

var PlayerProjectile = donburi.NewComponentType[PlayerProjectileData]()

type ShootableData struct {
	Health     int
	GivenScore int

	Invincible        bool
	DestroyWhenKilled bool
	// Ticks left to flash white after a hit
	FlashTicks int
}

var Shootable = donburi.NewComponentType[ShootableData]()

// DeathEffectsData lists effects spawned when the entity is killed.
type DeathEffectsData struct {
	Effects []config.EffectSpec
}

var DeathEffects = donburi.NewComponentType[DeathEffectsData]()
