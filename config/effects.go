package config

import "github.com/automoto/dukeengine/shared/gamemath"

// EffectsConfig contains lifetimes and keyframe tables for effect sprites
type EffectsConfig struct {
	ScoreNumberLifeTime          int
	ScoreNumberAnimationSequence []int
	ScoreNumberMoveSequence      []gamemath.Vec
	FireEffectLifeTime           int
	FireEffectOffset             gamemath.Vec
	CascadeSpawnInterval         int
}

// ScoreNumberType selects one of the floating score number sprites
type ScoreNumberType int

const (
	Score100 ScoreNumberType = iota
	Score500
	Score2000
	Score5000
	Score10000
)

var Effects EffectsConfig

func init() {
	Effects = EffectsConfig{
		ScoreNumberLifeTime:          60,
		ScoreNumberAnimationSequence: []int{0, 1, 2, 3, 4, 5, 6, 7, 6, 5, 4, 3, 2, 1},
		ScoreNumberMoveSequence: []gamemath.Vec{
			{Y: -1}, {Y: -1}, {Y: -1}, {Y: -1}, {Y: -1}, {Y: -1},
		},
		FireEffectLifeTime:   18,
		FireEffectOffset:     gamemath.Vec{X: -1, Y: 1},
		CascadeSpawnInterval: 2,
	}
}

// ScoreNumberActor returns the sprite for a floating score number.
func ScoreNumberActor(t ScoreNumberType) ActorID {
	switch t {
	case Score100:
		return Score_number_FX_100
	case Score500:
		return Score_number_FX_500
	case Score2000:
		return Score_number_FX_2000
	case Score5000:
		return Score_number_FX_5000
	default:
		return Score_number_FX_10000
	}
}

// ScoreNumberForScore returns the floating number shown for a score value.
func ScoreNumberForScore(score int) (ScoreNumberType, bool) {
	switch score {
	case 100:
		return Score100, true
	case 500:
		return Score500, true
	case 2000:
		return Score2000, true
	case 5000:
		return Score5000, true
	case 10000:
		return Score10000, true
	}
	return 0, false
}

// SpriteMovement selects one of the keyframed flight paths for effect sprites
type SpriteMovement int

const (
	FlyRight SpriteMovement = iota
	FlyUpperRight
	FlyUp
	FlyUpperLeft
	FlyLeft
	FlyDown
	SwirlAround
)

// EffectKind selects how an EffectSpec is spawned
type EffectKind int

const (
	EffectOneShot EffectKind = iota
	EffectFloatingOneShot
	EffectMoving
	EffectFireCascade
	EffectRandomDebris
)

// EffectSpec describes one sprite spawned when an actor dies. Offset is
// relative to the actor's position. Delay is in ticks.
type EffectSpec struct {
	Kind     EffectKind
	Actor    ActorID
	Offset   gamemath.Vec
	Movement SpriteMovement
	Delay    int
}
