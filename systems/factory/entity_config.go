package factory

import (
	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
)

type physicsKind int

const (
	physicsNone physicsKind = iota
	// Falls and collides with the world
	physicsGravity
	// Collides with the world but ignores gravity
	physicsFloating
)

type shootableConfig struct {
	HealthEasy, HealthMedium, HealthHard int
	GivenScore                           int
	Invincible                           bool
}

type loopConfig struct {
	Delay, First, Last int
}

// actorConfig describes everything configureEntity attaches for an actor id.
type actorConfig struct {
	Physics    physicsKind
	Activation components.ActivationPolicy
	Behavior   components.BehaviorKind

	Shootable        *shootableConfig
	PlayerDamaging   *components.PlayerDamagingData
	DamageInflicting *components.DamageInflictingData
	Collectable      *components.CollectableData
	Trigger          *components.TriggerData
	Interactable     *components.InteractableData
	AutoDestroy      *components.AutoDestroyData
	Animation        *loopConfig
	DeathEffects     []config.EffectSpec

	DrawOrderOverride *int
	TopMost           bool
	Enemy             bool
	Solid             bool
	// Actor faces left, for behaviors that care
	FacesLeft bool
}

func health(amount, score int) *shootableConfig {
	return &shootableConfig{HealthEasy: amount, HealthMedium: amount, HealthHard: amount, GivenScore: score}
}

func healthByDifficulty(easy, medium, hard, score int) *shootableConfig {
	return &shootableConfig{HealthEasy: easy, HealthMedium: medium, HealthHard: hard, GivenScore: score}
}

func (s *shootableConfig) forDifficulty(d config.Difficulty) int {
	switch d {
	case config.Easy:
		return s.HealthEasy
	case config.Hard:
		return s.HealthHard
	default:
		return s.HealthMedium
	}
}

func damaging(amount int) *components.PlayerDamagingData {
	return &components.PlayerDamagingData{Amount: amount}
}

func fatal() *components.PlayerDamagingData {
	return &components.PlayerDamagingData{Amount: 9, IsFatal: true}
}

func loop(delay int) *loopConfig {
	return &loopConfig{Delay: delay, Last: -1}
}

func collect(kind components.CollectableKind, score int) *components.CollectableData {
	return &components.CollectableData{Kind: kind, GivenScore: score}
}

func collectItem(item config.ActorID, score int) *components.CollectableData {
	return &components.CollectableData{Kind: components.CollectItem, GivenScore: score, Item: item}
}

func drawOrder(order int) *int {
	return &order
}

var (
	explosionEffects = []config.EffectSpec{
		{Kind: config.EffectOneShot, Actor: config.Explosion_FX_1},
		{Kind: config.EffectMoving, Actor: config.Smoke_cloud_FX, Movement: config.FlyUp, Delay: 1},
	}
	smallExplosionEffects = []config.EffectSpec{
		{Kind: config.EffectOneShot, Actor: config.Small_explosion_FX},
	}
	debrisEffects = []config.EffectSpec{
		{Kind: config.EffectOneShot, Actor: config.Explosion_FX_2},
		{Kind: config.EffectRandomDebris, Actor: config.Rigelatin_soldier_debris},
	}
	bossEffects = []config.EffectSpec{
		{Kind: config.EffectFireCascade, Actor: config.Small_explosion_FX},
		{Kind: config.EffectOneShot, Actor: config.Nuclear_explosion, Delay: 4},
	}
)

// actorConfigs holds one entry per placeable actor id.
var actorConfigs map[config.ActorID]actorConfig

func init() {
	actorConfigs = map[config.ActorID]actorConfig{
		// Player and ship. Player components are added separately.
		config.Duke_LEFT:                      {},
		config.Duke_RIGHT:                     {},
		config.Dukes_ship_LEFT:                {Physics: physicsGravity, Interactable: &components.InteractableData{Kind: components.InteractElevator}},
		config.Dukes_ship_RIGHT:               {Physics: physicsGravity, Interactable: &components.InteractableData{Kind: components.InteractElevator}},
		config.Dukes_ship_after_exiting_LEFT:  {Physics: physicsGravity},
		config.Dukes_ship_after_exiting_RIGHT: {Physics: physicsGravity},

		// Enemy rockets are projectiles set up by their behavior instead of
		// configureProjectile.
		config.Enemy_rocket_left:   enemyRocket(config.DirLeft),
		config.Enemy_rocket_right:  enemyRocket(config.DirRight),
		config.Enemy_rocket_up:     enemyRocket(config.DirUp),
		config.Enemy_rocket_2_up:   enemyRocket(config.DirUp),
		config.Enemy_rocket_2_down: enemyRocket(config.DirDown),
		config.Slime_drop: {
			Physics:        physicsGravity,
			Activation:     components.ActivateAlways,
			PlayerDamaging: &components.PlayerDamagingData{Amount: 1, DestroyOnContact: true},
			AutoDestroy:    &components.AutoDestroyData{Conditions: components.OnWorldCollision | components.OnLeavingActiveRegion},
		},

		// Enemies
		config.Rocket_launcher_turret: {
			Behavior: components.BehaviorRocketTurret, Enemy: true,
			Shootable: health(3, 500), PlayerDamaging: damaging(1),
			DeathEffects: explosionEffects,
		},
		config.Laser_turret: {
			Behavior: components.BehaviorLaserTurret, Enemy: true,
			Shootable: health(1, 500), PlayerDamaging: damaging(1),
			DeathEffects: smallExplosionEffects,
		},
		config.Spider: {
			Behavior: components.BehaviorSpider, Enemy: true, Physics: physicsFloating,
			Shootable: health(1, 100), PlayerDamaging: damaging(1),
			DeathEffects: smallExplosionEffects,
		},
		config.Skeleton: {
			Behavior: components.BehaviorSimpleWalker, Enemy: true, Physics: physicsGravity,
			Shootable: healthByDifficulty(2, 2, 3, 100), PlayerDamaging: damaging(1),
			DeathEffects: debrisEffects,
		},
		config.Hoverbot: {
			Behavior: components.BehaviorSimpleWalker, Enemy: true, Physics: physicsGravity,
			Shootable: healthByDifficulty(2, 3, 4, 150), PlayerDamaging: damaging(1),
			DeathEffects: explosionEffects,
		},
		config.Hoverbot_teleport_FX: {DrawOrderOverride: drawOrder(config.EffectDrawOrder)},
		config.Blue_guard_LEFT: {
			Behavior: components.BehaviorSimpleWalker, Enemy: true, Physics: physicsGravity, FacesLeft: true,
			Shootable: healthByDifficulty(2, 3, 4, 3000), PlayerDamaging: damaging(1),
			DeathEffects: debrisEffects,
		},
		config.Blue_guard_RIGHT: {
			Behavior: components.BehaviorSimpleWalker, Enemy: true, Physics: physicsGravity,
			Shootable: healthByDifficulty(2, 3, 4, 3000), PlayerDamaging: damaging(1),
			DeathEffects: debrisEffects,
		},
		config.Watchbot: {
			Behavior: components.BehaviorSimpleWalker, Enemy: true, Physics: physicsGravity,
			Shootable: healthByDifficulty(1, 1, 2, 500), PlayerDamaging: damaging(1),
			DeathEffects: explosionEffects,
		},
		config.Security_camera_ceiling: {Enemy: true, Shootable: health(1, 100), DeathEffects: smallExplosionEffects},
		config.Security_camera_floor:   {Enemy: true, Shootable: health(1, 100), DeathEffects: smallExplosionEffects},
		config.Slime_pipe:              {Behavior: components.BehaviorSlimePipe, Animation: loop(2)},
		config.Boss_Episode_2: {
			Enemy: true, Activation: components.ActivateAlwaysAfterFirstActivation,
			Shootable: healthByDifficulty(100, 140, 175, 10000), PlayerDamaging: damaging(1),
			DeathEffects: bossEffects,
		},
		config.Boss_Episode_2_head: {},

		// Hazards
		config.Lava_fountain:   {PlayerDamaging: damaging(1), Animation: loop(1)},
		config.Fire_on_floor_1: {PlayerDamaging: damaging(1), Animation: loop(1)},
		config.Smash_hammer:    {PlayerDamaging: fatal(), Solid: true},
		config.Electric_reactor: {
			PlayerDamaging: fatal(), Animation: loop(1),
			Shootable: health(10, 20000), DeathEffects: bossEffects,
		},

		// Collectables
		config.Red_box_soda:         {Collectable: &components.CollectableData{Kind: components.CollectHealth, GivenHealth: 1, GivenScore: 100}, Animation: loop(1)},
		config.Health_molecule:      {Collectable: &components.CollectableData{Kind: components.CollectHealth, GivenHealth: 1, GivenScore: 500}, Animation: loop(1)},
		config.Nuclear_molecule:     {Collectable: &components.CollectableData{Kind: components.CollectHealth, GivenHealth: 9, GivenScore: 1000}, Animation: loop(1)},
		config.Blue_key:             {Collectable: collectItem(config.Blue_key, 1000)},
		config.Circuit_card:         {Collectable: collectItem(config.Circuit_card, 1000)},
		config.Letter_N:             {Collectable: collect(components.CollectLetter, 10100)},
		config.Letter_U:             {Collectable: collect(components.CollectLetter, 10100)},
		config.Letter_K:             {Collectable: collect(components.CollectLetter, 10100)},
		config.Letter_E:             {Collectable: collect(components.CollectLetter, 10100)},
		config.Letter_M:             {Collectable: collect(components.CollectLetter, 10100)},
		config.Rapid_fire_icon:      {Collectable: collectItem(config.Rapid_fire_icon, 500)},
		config.Cloaking_device_icon: {Collectable: collectItem(config.Cloaking_device_icon, 500)},
		config.Flame_thrower_icon:   {Collectable: collect(components.CollectWeapon, 2000)},
		config.Rocket_launcher_icon: {Collectable: collect(components.CollectWeapon, 2000)},
		config.Laser_icon:           {Collectable: collect(components.CollectWeapon, 2000)},

		// Interactive objects
		config.Respawn_checkpoint:    {Interactable: &components.InteractableData{Kind: components.InteractCheckpoint}},
		config.Elevator:              {Interactable: &components.InteractableData{Kind: components.InteractElevator}, Solid: true},
		config.Force_field:           {PlayerDamaging: fatal(), Animation: loop(1)},
		config.Key_hole_blue:         {Interactable: &components.InteractableData{Kind: components.InteractKeyHole}},
		config.Sliding_door_vertical: {Solid: true},
		config.Hint_globe: {
			Interactable: &components.InteractableData{Kind: components.InteractHintGlobe},
			Shootable:    health(3, 500), Animation: loop(2),
		},
		config.Radar_dish:  {Shootable: health(4, 2000), Animation: loop(1), DeathEffects: explosionEffects},
		config.Blowing_fan: {Animation: loop(1)},

		// Triggers
		config.Level_exit:              {Trigger: &components.TriggerData{Kind: components.TriggerLevelExit}},
		config.Trigger_backdrop_switch: {Trigger: &components.TriggerData{Kind: components.TriggerBackdropSwitch}},
		config.Water_body:              {Activation: components.ActivateAlways},
		config.Dynamic_geometry_1:      {Activation: components.ActivateAlwaysAfterFirstActivation},
		config.Dynamic_geometry_2:      {Activation: components.ActivateAlwaysAfterFirstActivation},
		config.Dynamic_geometry_3:      {Activation: components.ActivateAlwaysAfterFirstActivation},
	}

	// Projectiles, muzzle flashes and effects are configured by
	// configureProjectile and the spawn helpers.
	for _, id := range []config.ActorID{
		config.Duke_regular_shot_horizontal, config.Duke_regular_shot_vertical,
		config.Duke_laser_shot_horizontal, config.Duke_laser_shot_vertical,
		config.Duke_rocket_left, config.Duke_rocket_right, config.Duke_rocket_up, config.Duke_rocket_down,
		config.Duke_flame_shot_left, config.Duke_flame_shot_right, config.Duke_flame_shot_up, config.Duke_flame_shot_down,
		config.Dukes_ship_laser_shot, config.Reactor_fire_LEFT, config.Reactor_fire_RIGHT,
		config.Enemy_laser_shot_LEFT, config.Enemy_laser_shot_RIGHT,
		config.Enemy_laser_muzzle_flash_1, config.Enemy_laser_muzzle_flash_2,
		config.Muzzle_flash_up, config.Muzzle_flash_down, config.Muzzle_flash_left, config.Muzzle_flash_right,
		config.Explosion_FX_1, config.Explosion_FX_2, config.Smoke_cloud_FX, config.Shot_impact_FX,
		config.Small_explosion_FX, config.Flame_FX, config.White_circle_flash_FX, config.Nuclear_explosion,
		config.Rigelatin_soldier_debris, config.Spider_shaken_off,
		config.Score_number_FX_100, config.Score_number_FX_500, config.Score_number_FX_2000,
		config.Score_number_FX_5000, config.Score_number_FX_10000,
	} {
		actorConfigs[id] = actorConfig{Activation: components.ActivateAlways}
	}
}

func enemyRocket(dir config.ProjectileDirection) actorConfig {
	return actorConfig{
		Behavior:       components.BehaviorEnemyRocket,
		Physics:        physicsFloating,
		Activation:     components.ActivateAlways,
		Shootable:      health(1, 10),
		PlayerDamaging: &components.PlayerDamagingData{Amount: 1, DestroyOnContact: true},
		AutoDestroy:    &components.AutoDestroyData{Conditions: components.OnLeavingActiveRegion},
		DeathEffects:   smallExplosionEffects,
		FacesLeft:      dir == config.DirLeft,
	}
}

// rocketDirection returns the flight direction of an enemy rocket actor.
func rocketDirection(id config.ActorID) config.ProjectileDirection {
	switch id {
	case config.Enemy_rocket_left:
		return config.DirLeft
	case config.Enemy_rocket_right:
		return config.DirRight
	case config.Enemy_rocket_2_down:
		return config.DirDown
	default:
		return config.DirUp
	}
}
