package systems

import (
	"github.com/automoto/dukeengine/components"
	cfg "github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/automoto/dukeengine/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EffectsSystem drives cascade spawners and delayed effects.
type EffectsSystem struct {
	factory factory.EntityCreator
}

func NewEffectsSystem(f factory.EntityCreator) *EffectsSystem {
	return &EffectsSystem{factory: f}
}

func (s *EffectsSystem) Update(ecs *ecs.ECS) {
	s.updateCascades(ecs.World)
	s.updateDelayedEffects(ecs.World)
}

// updateCascades spawns a one-shot sprite at a random spot of the covered
// area every CascadeSpawnInterval ticks.
func (s *EffectsSystem) updateCascades(world donburi.World) {
	type spawn struct {
		id  cfg.ActorID
		pos gamemath.Vec
	}
	var spawns []spawn

	components.SpriteCascadeSpawner.Each(world, func(e *donburi.Entry) {
		spawner := components.SpriteCascadeSpawner.Get(e)
		interval := max(cfg.Effects.CascadeSpawnInterval, 1)
		spawner.Elapsed++
		if (spawner.Elapsed-1)%interval != 0 {
			return
		}
		offset := gamemath.Vec{
			X: s.factory.Rand().IntN(max(spawner.CoveredArea.Width, 1)),
			Y: s.factory.Rand().IntN(max(spawner.CoveredArea.Height, 1)),
		}
		spawns = append(spawns, spawn{spawner.ActorID, spawner.BasePosition.Add(offset)})
	})

	for _, sp := range spawns {
		factory.SpawnOneShotSprite(s.factory, sp.id, sp.pos)
	}
}

func (s *EffectsSystem) updateDelayedEffects(world donburi.World) {
	var due []*donburi.Entry
	components.DelayedEffect.Each(world, func(e *donburi.Entry) {
		d := components.DelayedEffect.Get(e)
		d.Ticks--
		if d.Ticks <= 0 {
			due = append(due, e)
		}
	})

	for _, e := range due {
		d := *components.DelayedEffect.Get(e)
		e.Remove()
		factory.SpawnEffect(s.factory, d.Effect, d.Position, d.Area)
	}
}
