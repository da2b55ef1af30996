package archetypes

import (
	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/tags"
	"github.com/yohamta/donburi"
)

var (
	// Sprite is the base of every entity created from an actor id.
	Sprite = newArchetype(
		components.Sprite,
	)
	Positioned = newArchetype(
		components.WorldPosition,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.OrientationComponent,
		components.MovingBody,
		components.ActivationSettings,
		tags.Active,
	)
	CascadeSpawner = newArchetype(
		components.SpriteCascadeSpawner,
		components.AutoDestroy,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus cs.
func (a *archetype) Spawn(world donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return world.Entry(world.Create(all...))
}

// Assign adds the archetype's components that entry does not have yet.
func (a *archetype) Assign(entry *donburi.Entry) {
	for _, c := range a.components {
		if !entry.HasComponent(c) {
			entry.AddComponent(c)
		}
	}
}
