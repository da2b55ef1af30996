package systems

import (
	"github.com/automoto/dukeengine/components"
	cfg "github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/logger"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/automoto/dukeengine/systems/factory"
	"github.com/automoto/dukeengine/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// SoundPlayer plays sound effects triggered by the simulation.
type SoundPlayer interface {
	PlaySound(id cfg.SoundID)
}

var behaviorQuery = donburi.NewQuery(filter.Contains(components.Behavior, components.WorldPosition))

var rocketTurretDirections = [3]cfg.ProjectileDirection{cfg.DirLeft, cfg.DirUp, cfg.DirRight}

// Spider sprite frames
const (
	spiderCeilingFirstFrame = 0
	spiderCeilingLastFrame  = 2
	spiderFloorFirstFrame   = 3
	spiderFloorLastFrame    = 5
	spiderFallingFrame      = 6
)

// BehaviorSystem runs the per-actor behavior variants.
type BehaviorSystem struct {
	factory *factory.EntityFactory
	sounds  SoundPlayer

	oddFrame bool
}

func NewBehaviorSystem(f *factory.EntityFactory, sounds SoundPlayer) *BehaviorSystem {
	return &BehaviorSystem{factory: f, sounds: sounds}
}

// behaviorContext is what every behavior gets to see during one tick.
type behaviorContext struct {
	player            *donburi.Entry
	playerPos         gamemath.Vec
	playerBox         gamemath.Rect
	playerOrientation components.Orientation
}

func (s *BehaviorSystem) Update(ecs *ecs.ECS) {
	s.oddFrame = !s.oddFrame

	var ctx behaviorContext
	if player, ok := tags.Player.First(ecs.World); ok {
		ctx.player = player
		ctx.playerPos = *components.WorldPosition.Get(player)
		ctx.playerBox = components.WorldBoundingBox(player)
		ctx.playerOrientation = components.Player.Get(player).Orientation
	}

	// Behaviors may create and destroy entities, so collect first.
	var entries []*donburi.Entry
	behaviorQuery.Each(ecs.World, func(e *donburi.Entry) {
		if isActive(e) {
			entries = append(entries, e)
		}
	})

	for _, e := range entries {
		if !e.Valid() {
			continue
		}
		b := components.Behavior.Get(e)
		switch b.Kind {
		case components.BehaviorStaticDecoration:
		case components.BehaviorRocketTurret:
			s.updateRocketTurret(e, &b.Turret, ctx)
		case components.BehaviorEnemyRocket:
			s.updateEnemyRocket(e, &b.Rocket)
		case components.BehaviorSpider:
			if ctx.player != nil {
				s.updateSpider(e, b, ctx)
			}
		case components.BehaviorSimpleWalker:
			walkOneStep(e, &b.Walker)
		case components.BehaviorLaserTurret:
			s.updateLaserTurret(e, &b.Turret, ctx)
		case components.BehaviorSlimePipe:
			s.updateSlimePipe(e, &b.Dropper)
		default:
			logger.Log.WithField("behavior", b.Kind.String()).Warn("Unhandled behavior")
		}
	}
}

func (s *BehaviorSystem) playSound(id cfg.SoundID) {
	if s.sounds != nil {
		s.sounds.PlaySound(id)
	}
}

// updateRocketTurret alternates between aiming at the player and counting
// down to the next rocket.
func (s *BehaviorSystem) updateRocketTurret(e *donburi.Entry, t *components.TurretState, ctx behaviorContext) {
	pos := *components.WorldPosition.Get(e)

	if t.NeedsReorientation {
		t.Orientation = rocketTurretOrientation(pos, ctx.playerPos)
		t.NeedsReorientation = false
	} else {
		t.NextShotCountdown++
		if t.NextShotCountdown >= cfg.Behaviors.RocketTurretFireInterval {
			t.NextShotCountdown = 0
			t.NeedsReorientation = true

			s.factory.CreateProjectile(
				cfg.EnemyRocket,
				pos.Add(cfg.Behaviors.RocketTurretOffsets[t.Orientation]),
				rocketTurretDirections[t.Orientation])
			s.playSound(cfg.SoundFlameThrowerShot)
		}
	}

	sprite := components.Sprite.Get(e)
	sprite.SetFrame(0, t.Orientation)
	if sprite.NumFrames() > t.Orientation {
		components.Set(e, components.BoundingBox, components.InferBoundingBoxForFrame(*sprite, t.Orientation))
	}
}

func rocketTurretOrientation(pos, playerPos gamemath.Vec) int {
	switch {
	case playerPos.X+3 <= pos.X:
		return 0
	case playerPos.X-3 >= pos.X:
		return 2
	case playerPos.Y <= pos.Y:
		return 1
	}
	return 0
}

// updateEnemyRocket accelerates the rocket along its direction and blows it
// up on impact.
func (s *BehaviorSystem) updateEnemyRocket(e *donburi.Entry, r *components.EnemyRocketState) {
	body := components.MovingBody.Get(e)
	if body.HitWorld {
		s.explode(e)
		return
	}

	r.TicksAlive++
	speed := min(r.InitialSpeed+cfg.Behaviors.RocketAcceleration*float64(r.TicksAlive-1), cfg.Behaviors.RocketMaxSpeed)
	body.Velocity = r.Direction.Vector().Scale(speed)
}

func (s *BehaviorSystem) updateLaserTurret(e *donburi.Entry, t *components.TurretState, ctx behaviorContext) {
	if ctx.player == nil {
		return
	}
	pos := *components.WorldPosition.Get(e)

	t.NextShotCountdown++
	if t.NextShotCountdown < cfg.Behaviors.LaserTurretFireInterval {
		return
	}

	dx := ctx.playerPos.X - pos.X
	inRange := abs(dx) <= cfg.Behaviors.LaserTurretRange
	sameHeight := pos.Y >= ctx.playerBox.Top() && pos.Y <= ctx.playerBox.Bottom()
	if !inRange || !sameHeight {
		return
	}

	t.NextShotCountdown = 0
	dir := cfg.DirRight
	shotPos := pos.Add(gamemath.Vec{X: components.WorldBoundingBox(e).Size.Width})
	if dx < 0 {
		dir = cfg.DirLeft
		shotPos = pos.Add(gamemath.Vec{X: -1})
	}
	s.factory.CreateProjectile(cfg.EnemyLaserShot, shotPos, dir)
	s.playSound(cfg.SoundEnemyLaserShot)
}

func (s *BehaviorSystem) updateSlimePipe(e *donburi.Entry, d *components.DropperState) {
	d.Elapsed++
	if d.Elapsed < d.Interval {
		return
	}
	d.Elapsed = 0
	pos := *components.WorldPosition.Get(e)
	s.factory.CreateActor(cfg.Slime_drop, pos.Add(gamemath.Vec{X: 1, Y: 1}))
}

// updateSpider drops spiders from the ceiling onto the player, where they
// cling until shaken off by turning around.
func (s *BehaviorSystem) updateSpider(e *donburi.Entry, b *components.BehaviorData, ctx behaviorContext) {
	sp := &b.Spider
	pos := components.WorldPosition.Get(e)
	sprite := components.Sprite.Get(e)
	touchingPlayer := components.WorldBoundingBox(e).Intersects(ctx.playerBox)

	switch sp.Mode {
	case components.SpiderUninitialized:
		if isOnSolidGround(e) {
			sp.Mode = components.SpiderOnFloor
			startWalking(b, sprite, spiderFloorFirstFrame, spiderFloorLastFrame, false)
		} else {
			sp.Mode = components.SpiderOnCeiling
			startWalking(b, sprite, spiderCeilingFirstFrame, spiderCeilingLastFrame, true)
		}

	case components.SpiderOnCeiling:
		if pos.X == ctx.playerPos.X && pos.Y < ctx.playerPos.Y-3 {
			sp.Mode = components.SpiderFalling
			b.Walker = components.WalkerState{}
			sprite.SetFrame(0, spiderFallingFrame)
			if e.HasComponent(components.MovingBody) {
				components.MovingBody.Get(e).GravityAffected = true
			}
			return
		}
		walkOneStep(e, &b.Walker)

	case components.SpiderFalling:
		if touchingPlayer {
			s.clingToPlayer(e, b, components.ClingHead, ctx)
		} else if e.HasComponent(components.MovingBody) && components.MovingBody.Get(e).HitWorld {
			sp.Mode = components.SpiderOnFloor
			startWalking(b, sprite, spiderFloorFirstFrame, spiderFloorLastFrame, false)
		}

	case components.SpiderOnFloor:
		if touchingPlayer {
			s.clingToPlayer(e, b, components.ClingWeapon, ctx)
			return
		}
		walkOneStep(e, &b.Walker)

	case components.SpiderClinging:
		*pos = ctx.playerPos.Add(spiderClingOffset(sp.ClingPosition, ctx.playerOrientation))
		components.Set(e, components.OrientationComponent, ctx.playerOrientation)
		sprite.SetFrame(0, spiderClingFrame(sp.ClingPosition)+s.factory.Rand().IntN(2))

		if ctx.playerOrientation != sp.PreviousPlayerOrientation {
			sp.ShakeOffProgress++
		} else if s.oddFrame && sp.ShakeOffProgress > 0 {
			sp.ShakeOffProgress--
		}
		sp.PreviousPlayerOrientation = ctx.playerOrientation

		if sp.ShakeOffProgress >= cfg.Behaviors.SpiderShakeOffThreshold {
			movement := cfg.FlyUpperRight
			if s.factory.Rand().IntN(2) != 0 {
				movement = cfg.FlyUpperLeft
			}
			factory.SpawnMovingEffectSprite(s.factory, cfg.Spider_shaken_off, movement, *pos)
			DestroyEntity(e)
		}
	}
}

func (s *BehaviorSystem) clingToPlayer(e *donburi.Entry, b *components.BehaviorData, where components.SpiderClingPosition, ctx behaviorContext) {
	sp := &b.Spider
	sp.Mode = components.SpiderClinging
	sp.ClingPosition = where
	sp.PreviousPlayerOrientation = ctx.playerOrientation
	for _, c := range []donburi.IComponentType{components.Shootable, components.MovingBody} {
		if e.HasComponent(c) {
			e.RemoveComponent(c)
		}
	}
	b.Walker = components.WalkerState{}
}

func spiderClingFrame(where components.SpiderClingPosition) int {
	switch where {
	case components.ClingWeapon:
		return 11
	case components.ClingBack:
		return 9
	}
	return 7
}

func spiderClingOffset(where components.SpiderClingPosition, playerOrientation components.Orientation) gamemath.Vec {
	right := playerOrientation == components.OrientationRight
	pick := func(r, l gamemath.Vec) gamemath.Vec {
		if right {
			return r
		}
		return l
	}
	switch where {
	case components.ClingWeapon:
		return pick(gamemath.Vec{X: 2, Y: -1}, gamemath.Vec{X: -1, Y: -1})
	case components.ClingBack:
		return pick(gamemath.Vec{X: -2, Y: -2}, gamemath.Vec{X: 3, Y: -2})
	}
	return pick(gamemath.Vec{X: 0, Y: -3}, gamemath.Vec{X: 1, Y: -3})
}

// startWalking makes b walk, cycling the sprite through frames first..last.
func startWalking(b *components.BehaviorData, sprite *components.SpriteData, first, last int, onCeiling bool) {
	b.Walker = components.WalkerState{
		Orientation:   components.OrientationLeft,
		WalkDelay:     cfg.Behaviors.WalkerStepDelay,
		AnimStart:     first,
		AnimEnd:       last,
		WalkOnCeiling: onCeiling,
	}
	sprite.SetFrame(0, first)
}

// walkOneStep steps one tile every WalkDelay ticks and turns around at
// walls and ledges.
func walkOneStep(e *donburi.Entry, w *components.WalkerState) {
	if w.WalkDelay <= 0 {
		return
	}
	w.Elapsed++
	if w.Elapsed < w.WalkDelay {
		return
	}
	w.Elapsed = 0

	step := 1
	if w.Orientation == components.OrientationLeft {
		step = -1
	}

	if obj := collisionObject(e); obj != nil {
		ground := 1
		if w.WalkOnCeiling {
			ground = -1
		}
		if blocked(obj, step, 0) || !blocked(obj, step, ground) {
			w.Orientation = w.Orientation.Opposite()
			components.Set(e, components.OrientationComponent, w.Orientation)
			return
		}
	}

	pos := components.WorldPosition.Get(e)
	pos.X += step
	if e.HasComponent(components.Object) {
		components.Object.Get(e).SyncTo(components.WorldBoundingBox(e), cfg.C.TileSize)
	}

	if sprite := components.Sprite.Get(e); w.AnimEnd > w.AnimStart && len(sprite.FramesToRender) > 0 {
		frame := sprite.FramesToRender[0] + 1
		if frame > w.AnimEnd || frame < w.AnimStart {
			frame = w.AnimStart
		}
		sprite.SetFrame(0, frame)
	}
}

func collisionObject(e *donburi.Entry) *resolv.Object {
	if !e.HasComponent(components.Object) {
		return nil
	}
	return components.Object.Get(e).Object
}

func isOnSolidGround(e *donburi.Entry) bool {
	obj := collisionObject(e)
	return obj != nil && blocked(obj, 0, 1)
}

// explode spawns e's death effects and removes it.
func (s *BehaviorSystem) explode(e *donburi.Entry) {
	if e.HasComponent(components.DeathEffects) {
		var bbox gamemath.Rect
		if e.HasComponent(components.BoundingBox) {
			bbox = *components.BoundingBox.Get(e)
		}
		factory.SpawnEffects(s.factory, components.DeathEffects.Get(e).Effects, *components.WorldPosition.Get(e), bbox)
	}
	s.playSound(cfg.SoundExplosion)
	DestroyEntity(e)
}
