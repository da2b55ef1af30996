package factory

import (
	"math/rand/v2"

	"github.com/automoto/dukeengine/archetypes"
	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/automoto/dukeengine/tags"
	"github.com/yohamta/donburi"
)

// EntityCreator is the part of EntityFactory the spawn helpers need.
type EntityCreator interface {
	CreateSprite(id config.ActorID, assignBoundingBox bool) *donburi.Entry
	CreateSpriteAt(id config.ActorID, pos gamemath.Vec, assignBoundingBox bool) *donburi.Entry
	CreateActor(id config.ActorID, pos gamemath.Vec) *donburi.Entry
	World() donburi.World
	Rand() *rand.Rand
}

var movementSequences = map[config.SpriteMovement][]gamemath.VecF{
	config.FlyRight: {
		{X: 3, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1},
		{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 1, Y: 3}, {X: 1, Y: 3},
	},
	config.FlyUpperRight: {
		{X: 3, Y: -3}, {X: 2, Y: -2}, {X: 2, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 0},
		{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 2}, {X: 1, Y: 3}, {X: 1, Y: 3},
	},
	config.FlyUp: {
		{X: 0, Y: -3}, {X: 0, Y: -2}, {X: 0, Y: -2}, {X: 0, Y: -1}, {X: 0, Y: 0},
		{X: 0, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}, {X: 0, Y: 3},
	},
	config.FlyUpperLeft: {
		{X: -3, Y: -3}, {X: -2, Y: -2}, {X: -2, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 0},
		{X: -1, Y: 1}, {X: -1, Y: 2}, {X: -1, Y: 3}, {X: -1, Y: 4}, {X: -1, Y: 4},
	},
	config.FlyLeft: {
		{X: -3, Y: 0}, {X: -3, Y: 0}, {X: -3, Y: 0}, {X: -2, Y: 0}, {X: -2, Y: 1},
		{X: -2, Y: 1}, {X: -2, Y: 2}, {X: -1, Y: 3}, {X: -1, Y: 3}, {X: -1, Y: 3},
	},
	config.FlyDown: {
		{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 3},
		{X: 0, Y: 3}, {X: 0, Y: 3}, {X: 0, Y: 3}, {X: 0, Y: 3}, {X: 0, Y: 3},
	},
	config.SwirlAround: {
		{X: -2, Y: 1}, {X: -2, Y: 1}, {X: -2, Y: 1}, {X: -1, Y: 1}, {X: 0, Y: 1},
		{X: 1, Y: 1}, {X: 2, Y: 0}, {X: 1, Y: -1}, {X: -2, Y: -1}, {X: -2, Y: 1},
	},
}

// MovementSequence returns the velocity table of movement.
func MovementSequence(movement config.SpriteMovement) []gamemath.VecF {
	return movementSequences[movement]
}

// SpawnOneShotSprite plays id's animation once at pos and removes it.
func SpawnOneShotSprite(f EntityCreator, id config.ActorID, pos gamemath.Vec) *donburi.Entry {
	entry := f.CreateSpriteAt(id, pos, true)
	numFrames := components.Sprite.Get(entry).NumFrames()
	if numFrames > 1 {
		components.StartAnimationLoop(entry, 1, 0, -1)
	}
	components.Set(entry, components.AutoDestroy, components.AutoDestroyAfterTimeout(numFrames))
	assignSpecialEffectSpriteProperties(entry, id)
	return entry
}

// SpawnFloatingOneShotSprite is SpawnOneShotSprite rising one tile per tick.
func SpawnFloatingOneShotSprite(f EntityCreator, id config.ActorID, pos gamemath.Vec) *donburi.Entry {
	entry := SpawnOneShotSprite(f, id, pos)
	body := components.NewMovingBody(gamemath.VecF{Y: -1}, false)
	body.IgnoreCollisions = true
	components.Set(entry, components.MovingBody, body)
	return entry
}

// SpawnMovingEffectSprite spawns id following one of the keyframed flight
// paths. It is removed once it leaves the active region.
func SpawnMovingEffectSprite(f EntityCreator, id config.ActorID, movement config.SpriteMovement, pos gamemath.Vec) *donburi.Entry {
	entry := f.CreateSpriteAt(id, pos, true)
	configureMovingEffectSprite(entry, movement)
	if components.Sprite.Get(entry).NumFrames() > 1 {
		components.StartAnimationLoop(entry, 1, 0, -1)
	}
	assignSpecialEffectSpriteProperties(entry, id)
	return entry
}

// SpawnFloatingScoreNumber shows a rising, colour cycling score number.
func SpawnFloatingScoreNumber(f EntityCreator, t config.ScoreNumberType, pos gamemath.Vec) *donburi.Entry {
	entry := f.CreateSpriteAt(config.ScoreNumberActor(t), pos, true)
	components.StartAnimationSequence(entry, config.Effects.ScoreNumberAnimationSequence, true)

	moves := make([]gamemath.VecF, len(config.Effects.ScoreNumberMoveSequence))
	for i, m := range config.Effects.ScoreNumberMoveSequence {
		moves[i] = gamemath.VecF{X: float64(m.X), Y: float64(m.Y)}
	}
	components.Set(entry, components.MovementSequence, components.NewMovementSequence(moves, true, true))

	body := components.NewMovingBody(gamemath.VecF{}, false)
	body.IgnoreCollisions = true
	components.Set(entry, components.MovingBody, body)
	components.Set(entry, components.AutoDestroy, components.AutoDestroyAfterTimeout(config.Effects.ScoreNumberLifeTime))
	components.AddTag(entry, tags.Active)
	return entry
}

// SpawnFireEffect covers coveredArea (relative to pos) with a cascade of
// actor sprites.
func SpawnFireEffect(world donburi.World, pos gamemath.Vec, coveredArea gamemath.Rect, actor config.ActorID) *donburi.Entry {
	// The offset fits the small explosion sprite.
	spawner := archetypes.CascadeSpawner.Spawn(world)
	components.SpriteCascadeSpawner.SetValue(spawner, components.SpriteCascadeSpawnerData{
		BasePosition: pos.Add(config.Effects.FireEffectOffset).Add(coveredArea.TopLeft),
		CoveredArea:  coveredArea.Size,
		ActorID:      actor,
	})
	components.AutoDestroy.SetValue(spawner, components.AutoDestroyAfterTimeout(config.Effects.FireEffectLifeTime))
	return spawner
}

// SpawnEffects spawns death effects of an entity at pos. bbox is the
// entity's bounding box relative to pos, used for area effects.
func SpawnEffects(f EntityCreator, effects []config.EffectSpec, pos gamemath.Vec, bbox gamemath.Rect) {
	for _, effect := range effects {
		at := pos.Add(effect.Offset)
		if effect.Delay > 0 {
			entry := f.World().Entry(f.World().Create(components.DelayedEffect))
			components.DelayedEffect.SetValue(entry, components.DelayedEffectData{
				Effect:   config.EffectSpec{Kind: effect.Kind, Actor: effect.Actor, Movement: effect.Movement},
				Position: at,
				Area:     bbox,
				Ticks:    effect.Delay,
			})
			continue
		}
		SpawnEffect(f, effect, at, bbox)
	}
}

// SpawnEffect spawns a single effect at pos without delay.
func SpawnEffect(f EntityCreator, effect config.EffectSpec, pos gamemath.Vec, bbox gamemath.Rect) {
	switch effect.Kind {
	case config.EffectOneShot:
		SpawnOneShotSprite(f, effect.Actor, pos)
	case config.EffectFloatingOneShot:
		SpawnFloatingOneShotSprite(f, effect.Actor, pos)
	case config.EffectMoving:
		SpawnMovingEffectSprite(f, effect.Actor, effect.Movement, pos)
	case config.EffectFireCascade:
		// bbox is bottom-left relative; the cascade wants it top-left relative
		area := bbox
		area.TopLeft.Y -= bbox.Size.Height - 1
		SpawnFireEffect(f.World(), pos, area, effect.Actor)
	case config.EffectRandomDebris:
		for _, movement := range []config.SpriteMovement{
			config.FlyUpperLeft, config.FlyUpperRight, config.FlyLeft, config.FlyRight,
		} {
			offset := gamemath.Vec{X: f.Rand().IntN(max(bbox.Size.Width, 1))}
			SpawnMovingEffectSprite(f, effect.Actor, movement, pos.Add(offset))
		}
	}
}

func configureMovingEffectSprite(entry *donburi.Entry, movement config.SpriteMovement) {
	components.AddTag(entry, tags.Active)
	body := components.NewMovingBody(gamemath.VecF{}, false)
	body.IgnoreCollisions = true
	components.Set(entry, components.MovingBody, body)
	components.Set(entry, components.MovementSequence,
		components.NewMovementSequence(movementSequences[movement], false, movement != config.FlyDown))
	components.Set(entry, components.AutoDestroy, components.AutoDestroyOn(components.OnLeavingActiveRegion))
}

func assignSpecialEffectSpriteProperties(entry *donburi.Entry, id config.ActorID) {
	components.Set(entry, components.ActivationSettings, components.ActivationSettingsData{Policy: components.ActivateAlways})
	components.AddTag(entry, tags.Effect)
	if id == config.White_circle_flash_FX || id == config.Nuclear_explosion {
		components.AddTag(entry, tags.DrawTopMost)
	}
}
