package systems

import (
	"math"

	"github.com/automoto/dukeengine/components"
	cfg "github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/automoto/dukeengine/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	movingBodyQuery       = donburi.NewQuery(filter.Contains(components.MovingBody, components.WorldPosition))
	movementSequenceQuery = donburi.NewQuery(filter.Contains(components.MovementSequence, components.MovingBody))
)

// UpdatePhysics moves every active body by its velocity, one tile at a time,
// stopping at solid geometry unless the body ignores collisions.
func UpdatePhysics(ecs *ecs.ECS) {
	movingBodyQuery.Each(ecs.World, func(e *donburi.Entry) {
		body := components.MovingBody.Get(e)
		if !body.IsActive || !isActive(e) {
			return
		}

		var obj *resolv.Object
		if e.HasComponent(components.Object) && !body.IgnoreCollisions {
			obj = components.Object.Get(e).Object
		}

		body.HitWorld = false
		body.OnGround = obj != nil && blocked(obj, 0, 1)

		if body.GravityAffected {
			if body.OnGround && body.Velocity.Y >= 0 {
				body.Velocity.Y = 0
				body.Remainder.Y = 0
			} else {
				body.Velocity.Y = math.Min(body.Velocity.Y+cfg.Physics.GravityAcceleration, cfg.Physics.MaxFallSpeed)
			}
		}

		pos := components.WorldPosition.Get(e)
		dx := takeWholeTiles(&body.Remainder.X, body.Velocity.X)
		dy := takeWholeTiles(&body.Remainder.Y, body.Velocity.Y)

		if moved, hit := moveAxis(obj, dx, 0); hit {
			pos.X += moved
			body.Velocity.X = 0
			body.Remainder.X = 0
			body.HitWorld = true
		} else {
			pos.X += dx
		}
		if moved, hit := moveAxis(obj, 0, dy); hit {
			pos.Y += moved
			if dy > 0 {
				body.OnGround = true
			}
			body.Velocity.Y = 0
			body.Remainder.Y = 0
			body.HitWorld = true
		} else {
			pos.Y += dy
		}

		if e.HasComponent(components.Object) {
			components.Object.Get(e).SyncTo(components.WorldBoundingBox(e), cfg.C.TileSize)
		}
	})
}

// UpdateMovementSequences feeds the next velocity of each movement sequence
// into its body. Finished sequences are removed.
func UpdateMovementSequences(ecs *ecs.ECS) {
	var finished []*donburi.Entry
	movementSequenceQuery.Each(ecs.World, func(e *donburi.Entry) {
		if !isActive(e) {
			return
		}
		seq := components.MovementSequence.Get(e)
		body := components.MovingBody.Get(e)

		if seq.CurrentStep >= len(seq.Velocities) {
			if seq.ResetVelocityAfterwards {
				if seq.EnableX {
					body.Velocity.X = 0
				}
				if seq.EnableY {
					body.Velocity.Y = 0
				}
			}
			finished = append(finished, e)
			return
		}

		v := seq.Velocities[seq.CurrentStep]
		if seq.EnableX {
			body.Velocity.X = v.X
		}
		if seq.EnableY {
			body.Velocity.Y = v.Y
		}
		seq.CurrentStep++
	})
	for _, e := range finished {
		e.RemoveComponent(components.MovementSequence)
	}
}

// takeWholeTiles adds v to the remainder and returns the whole tiles to move.
func takeWholeTiles(remainder *float64, v float64) int {
	*remainder += v
	whole := math.Trunc(*remainder)
	*remainder -= whole
	return int(whole)
}

// moveAxis steps obj tile by tile along one axis. It returns the number of
// tiles actually moved and whether solid geometry stopped it. Without a
// collision object nothing blocks.
func moveAxis(obj *resolv.Object, dx, dy int) (moved int, hit bool) {
	if obj == nil {
		return 0, false
	}
	steps, stepX, stepY := abs(dx)+abs(dy), sign(dx), sign(dy)
	for i := 0; i < steps; i++ {
		if blocked(obj, stepX, stepY) {
			return moved, true
		}
		ts := float64(cfg.C.TileSize)
		obj.X += float64(stepX) * ts
		obj.Y += float64(stepY) * ts
		obj.Update()
		moved += stepX + stepY
	}
	return moved, false
}

// blocked reports whether moving obj by (tx, ty) tiles overlaps solid
// geometry. resolv answers per cell, so candidates are confirmed with a
// tile rectangle test.
func blocked(obj *resolv.Object, tx, ty int) bool {
	ts := float64(cfg.C.TileSize)
	check := obj.Check(float64(tx)*ts, float64(ty)*ts, tags.ResolvSolid)
	if check == nil {
		return false
	}
	target := gamemath.Rect{
		TopLeft: gamemath.Vec{X: int(obj.X/ts) + tx, Y: int(obj.Y/ts) + ty},
		Size:    gamemath.Extents{Width: int(obj.W / ts), Height: int(obj.H / ts)},
	}
	for _, other := range check.Objects {
		if other == obj {
			continue
		}
		solid := gamemath.Rect{
			TopLeft: gamemath.Vec{X: int(other.X / ts), Y: int(other.Y / ts)},
			Size:    gamemath.Extents{Width: int(other.W / ts), Height: int(other.H / ts)},
		}
		if solid.Intersects(target) {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
