package systems

import (
	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/automoto/dukeengine/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	activationQuery  = donburi.NewQuery(filter.Contains(components.ActivationSettings, components.WorldPosition))
	autoDestroyQuery = donburi.NewQuery(filter.Contains(components.AutoDestroy))
)

// ActiveRegion returns the part of the map that is simulated: the camera
// viewport grown by config.C.ActiveRegionMargin. ok is false without camera.
func ActiveRegion(world donburi.World) (region gamemath.Rect, ok bool) {
	camera, found := components.Camera.First(world)
	if !found {
		return gamemath.Rect{}, false
	}
	return components.Camera.Get(camera).ActiveRegion(config.C.ActiveRegionMargin), true
}

// MarkActiveEntities tags entities inside the active region, honoring their
// activation policy.
func MarkActiveEntities(ecs *ecs.ECS) {
	region, haveRegion := ActiveRegion(ecs.World)

	// Tagging moves entries between archetypes, so it waits for the query
	// to finish.
	var activate, deactivate []*donburi.Entry
	activationQuery.Each(ecs.World, func(e *donburi.Entry) {
		settings := components.ActivationSettings.Get(e)

		active := false
		switch settings.Policy {
		case components.ActivateAlways:
			active = true
		case components.ActivateAlwaysAfterFirstActivation:
			active = settings.HasBeenActivated || !haveRegion || inRegion(e, region)
		default:
			active = !haveRegion || inRegion(e, region)
		}

		switch {
		case active:
			settings.HasBeenActivated = true
			if !e.HasComponent(tags.Active) {
				activate = append(activate, e)
			}
		case e.HasComponent(tags.Active):
			deactivate = append(deactivate, e)
		}
	})

	for _, e := range activate {
		components.AddTag(e, tags.Active)
	}
	for _, e := range deactivate {
		e.RemoveComponent(tags.Active)
	}
}

// UpdateLifeTimes removes entities whose AutoDestroy condition is met.
func UpdateLifeTimes(ecs *ecs.ECS) {
	region, haveRegion := ActiveRegion(ecs.World)

	var toDestroy []*donburi.Entry
	autoDestroyQuery.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)

		if ad.Has(components.OnTimeout) {
			ad.FramesToLive--
			if ad.FramesToLive <= 0 {
				toDestroy = append(toDestroy, e)
				return
			}
		}

		if ad.Has(components.OnWorldCollision) && e.HasComponent(components.MovingBody) &&
			components.MovingBody.Get(e).HitWorld {
			toDestroy = append(toDestroy, e)
			return
		}

		if ad.Has(components.OnLeavingActiveRegion) && haveRegion &&
			e.HasComponent(components.WorldPosition) && !inRegion(e, region) {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		DestroyEntity(e)
	}
}

// DestroyEntity removes e from the world and its collision object from the
// level space.
func DestroyEntity(e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e).Object
		if obj != nil && obj.Space != nil {
			obj.Space.Remove(obj)
		}
	}
	e.Remove()
}

func inRegion(e *donburi.Entry, region gamemath.Rect) bool {
	return components.WorldBoundingBox(e).Intersects(region)
}
