package components

import (
	"github.com/automoto/dukeengine/config"
	"github.com/yohamta/donburi"
)

// BehaviorKind selects the update routine the behavior system runs.
type BehaviorKind int

const (
	BehaviorStaticDecoration BehaviorKind = iota
	BehaviorRocketTurret
	BehaviorEnemyRocket
	BehaviorSpider
	BehaviorSimpleWalker
	BehaviorLaserTurret
	BehaviorSlimePipe
)

func (k BehaviorKind) String() string {
	switch k {
	case BehaviorStaticDecoration:
		return "StaticDecoration"
	case BehaviorRocketTurret:
		return "RocketTurret"
	case BehaviorEnemyRocket:
		return "EnemyRocket"
	case BehaviorSpider:
		return "Spider"
	case BehaviorSimpleWalker:
		return "SimpleWalker"
	case BehaviorLaserTurret:
		return "LaserTurret"
	case BehaviorSlimePipe:
		return "SlimePipe"
	}
	return "Unknown"
}

// BehaviorData is a tagged variant. Only the payload matching Kind is used.
type BehaviorData struct {
	Kind BehaviorKind

	Turret  TurretState
	Rocket  EnemyRocketState
	Spider  SpiderState
	Walker  WalkerState
	Dropper DropperState
}

type TurretState struct {
	// Ticks since the last shot
	NextShotCountdown int
	// Index into the turret's aim directions, also its sprite frame
	Orientation        int
	NeedsReorientation bool
}

type EnemyRocketState struct {
	Direction    config.ProjectileDirection
	TicksAlive   int
	InitialSpeed float64
}

type SpiderMode int

const (
	SpiderUninitialized SpiderMode = iota
	SpiderOnCeiling
	SpiderFalling
	SpiderOnFloor
	SpiderClinging
)

// SpiderClingPosition is where a spider holds on to the player.
type SpiderClingPosition int

const (
	ClingHead SpiderClingPosition = iota
	ClingWeapon
	ClingBack
)

type SpiderState struct {
	Mode             SpiderMode
	ClingPosition    SpiderClingPosition
	ShakeOffProgress int
	// Player facing seen last tick, turning counts as shaking
	PreviousPlayerOrientation Orientation
}

type WalkerState struct {
	Orientation Orientation
	// Ticks between steps
	WalkDelay int
	Elapsed   int

	AnimStart, AnimEnd int
	WalkOnCeiling      bool
}

type DropperState struct {
	Interval int
	Elapsed  int
}

var Behavior = donburi.NewComponentType[BehaviorData]()
