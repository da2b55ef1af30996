package factory

import (
	"testing"

	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/automoto/dukeengine/tags"
)

func TestMovementSequences(t *testing.T) {
	for m := config.FlyRight; m <= config.SwirlAround; m++ {
		if got := len(MovementSequence(m)); got != 10 {
			t.Errorf("movement %d has %d steps, want 10", m, got)
		}
	}
	if first := MovementSequence(config.FlyUpperLeft)[0]; first != (gamemath.VecF{X: -3, Y: -3}) {
		t.Errorf("FlyUpperLeft starts with %+v", first)
	}
}

func TestSpawnOneShotSprite(t *testing.T) {
	sprites := newFakeSprites()
	sprites.numFrames[config.Explosion_FX_1] = 6
	sprites.numFrames[config.Shot_impact_FX] = 1
	f := newTestFactory(sprites)

	entry := SpawnOneShotSprite(f, config.Explosion_FX_1, gamemath.Vec{X: 2, Y: 3})
	if got := components.AutoDestroy.Get(entry); got.FramesToLive != 6 || !got.Has(components.OnTimeout) {
		t.Errorf("auto destroy = %+v, want timeout of 6", got)
	}
	if !entry.HasComponent(components.AnimationLoop) {
		t.Error("multi frame effects animate")
	}
	if components.ActivationSettings.Get(entry).Policy != components.ActivateAlways {
		t.Error("effects are always active")
	}
	if !entry.HasComponent(components.BoundingBox) {
		t.Error("effects get a bounding box")
	}

	single := SpawnOneShotSprite(f, config.Shot_impact_FX, gamemath.Vec{})
	if single.HasComponent(components.AnimationLoop) {
		t.Error("single frame effects do not animate")
	}

	floating := SpawnFloatingOneShotSprite(f, config.Explosion_FX_1, gamemath.Vec{})
	body := components.MovingBody.Get(floating)
	if body.Velocity != (gamemath.VecF{Y: -1}) || body.GravityAffected || !body.IgnoreCollisions {
		t.Errorf("floating body = %+v", body)
	}
}

func TestSpawnMovingEffectSprite(t *testing.T) {
	f := newTestFactory(newFakeSprites())

	entry := SpawnMovingEffectSprite(f, config.Smoke_cloud_FX, config.FlyDown, gamemath.Vec{})
	seq := components.MovementSequence.Get(entry)
	if seq.EnableX {
		t.Error("FlyDown does not move horizontally")
	}
	if len(seq.Velocities) != 10 {
		t.Errorf("got %d steps", len(seq.Velocities))
	}
	if !entry.HasComponent(tags.Active) {
		t.Error("moving effects are active")
	}
}

func TestSpawnFloatingScoreNumber(t *testing.T) {
	f := newTestFactory(newFakeSprites())
	entry := SpawnFloatingScoreNumber(f, config.Score2000, gamemath.Vec{X: 4, Y: 4})

	if !entry.HasComponent(components.AnimationSequence) || !entry.HasComponent(components.MovementSequence) {
		t.Error("score numbers animate and move")
	}
	if got := components.AutoDestroy.Get(entry).FramesToLive; got != config.Effects.ScoreNumberLifeTime {
		t.Errorf("life time = %d", got)
	}
	if !entry.HasComponent(tags.Active) {
		t.Error("score numbers are active")
	}
}

func TestSpawnFireEffect(t *testing.T) {
	f := newTestFactory(newFakeSprites())
	area := gamemath.Rect{TopLeft: gamemath.Vec{X: 1, Y: -2}, Size: gamemath.Extents{Width: 3, Height: 3}}
	entry := SpawnFireEffect(f.World(), gamemath.Vec{X: 10, Y: 10}, area, config.Small_explosion_FX)

	spawner := components.SpriteCascadeSpawner.Get(entry)
	if spawner.BasePosition != (gamemath.Vec{X: 10, Y: 9}) {
		t.Errorf("base = %+v, want {10 9}", spawner.BasePosition)
	}
	if spawner.CoveredArea != area.Size {
		t.Errorf("covered = %+v", spawner.CoveredArea)
	}
	if components.AutoDestroy.Get(entry).FramesToLive != 18 {
		t.Error("fire effect lasts 18 ticks")
	}
}
