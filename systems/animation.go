package systems

import (
	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	animationLoopQuery     = donburi.NewQuery(filter.Contains(components.Sprite, components.AnimationLoop))
	animationSequenceQuery = donburi.NewQuery(filter.Contains(components.Sprite, components.AnimationSequence))
)

// UpdateAnimatedSprites advances frame loops and sequences of active sprites.
// Finished sequences are removed, leaving the sprite on its last frame.
func UpdateAnimatedSprites(ecs *ecs.ECS) {
	animationLoopQuery.Each(ecs.World, func(e *donburi.Entry) {
		if !isActive(e) {
			return
		}
		sprite := components.Sprite.Get(e)
		anim := components.AnimationLoop.Get(e)
		if anim.RenderSlot >= len(sprite.FramesToRender) {
			return
		}
		current := sprite.FramesToRender[anim.RenderSlot]
		sprite.SetFrame(anim.RenderSlot, anim.Loop.Advance(current))
	})

	var finished []*donburi.Entry
	animationSequenceQuery.Each(ecs.World, func(e *donburi.Entry) {
		if !isActive(e) {
			return
		}
		anim := components.AnimationSequence.Get(e)
		if !anim.Sequence.Advance() {
			finished = append(finished, e)
			return
		}
		components.Sprite.Get(e).SetFrame(anim.RenderSlot, anim.Sequence.Frame())
	})
	for _, e := range finished {
		e.RemoveComponent(components.AnimationSequence)
	}
}

// isActive reports whether e takes part in this tick. Entities without
// activation settings are always simulated.
func isActive(e *donburi.Entry) bool {
	if !e.HasComponent(components.ActivationSettings) {
		return true
	}
	return e.HasComponent(tags.Active)
}
