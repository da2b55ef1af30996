package systems

import (
	"github.com/automoto/dukeengine/components"
	cfg "github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/logger"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/automoto/dukeengine/systems/factory"
	"github.com/automoto/dukeengine/tags"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const (
	// Ticks a hit enemy flashes white
	hitFlashTicks     = 2
	nuclearFlashTicks = 2
)

var (
	playerProjectileQuery = donburi.NewQuery(filter.Contains(
		components.PlayerProjectile, components.DamageInflicting, components.MovingBody, components.WorldPosition))
	shootableQuery      = donburi.NewQuery(filter.Contains(components.Shootable, components.WorldPosition))
	playerDamagingQuery = donburi.NewQuery(filter.Contains(components.PlayerDamaging, components.WorldPosition))
	collectableQuery    = donburi.NewQuery(filter.Contains(components.Collectable, components.WorldPosition))
	triggerQuery        = donburi.NewQuery(filter.Contains(components.Trigger, components.WorldPosition))
)

// DamageSystem moves player shots and resolves hits, pickups and triggers.
type DamageSystem struct {
	factory *factory.EntityFactory
	sounds  SoundPlayer
}

func NewDamageSystem(f *factory.EntityFactory, sounds SoundPlayer) *DamageSystem {
	return &DamageSystem{factory: f, sounds: sounds}
}

func (s *DamageSystem) Update(ecs *ecs.ECS) {
	s.updatePlayerProjectiles(ecs.World)
	s.updateHitFlashes(ecs.World)

	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	s.updatePlayerDamage(ecs.World, player)
	s.updateCollectables(ecs.World, player)
	s.updateTriggers(ecs.World, player)
}

func (s *DamageSystem) playSound(id cfg.SoundID) {
	if s.sounds != nil {
		s.sounds.PlaySound(id)
	}
}

// updatePlayerProjectiles steps each player shot tile by tile, damaging the
// first shootable it meets. Lasers fly through their targets.
func (s *DamageSystem) updatePlayerProjectiles(world donburi.World) {
	space := levelSpace(world)

	var shots []*donburi.Entry
	playerProjectileQuery.Each(world, func(e *donburi.Entry) {
		shots = append(shots, e)
	})

	for _, shot := range shots {
		body := components.MovingBody.Get(shot)
		pos := components.WorldPosition.Get(shot)
		dx := takeWholeTiles(&body.Remainder.X, body.Velocity.X)
		dy := takeWholeTiles(&body.Remainder.Y, body.Velocity.Y)

		steps, stepX, stepY := max(abs(dx), abs(dy)), sign(dx), sign(dy)
		for i := 0; i < steps && shot.Valid(); i++ {
			pos.X += stepX
			pos.Y += stepY
			box := components.WorldBoundingBox(shot)

			if space != nil && solidAt(space, box) {
				factory.SpawnOneShotSprite(s.factory, cfg.Shot_impact_FX, *pos)
				DestroyEntity(shot)
				break
			}
			if s.hitShootable(world, shot, box) {
				break
			}
		}
	}
}

// hitShootable applies the shot's damage to the first shootable overlapping
// box. It reports whether the shot was used up.
func (s *DamageSystem) hitShootable(world donburi.World, shot *donburi.Entry, box gamemath.Rect) bool {
	damage := components.DamageInflicting.Get(shot)
	projectile := components.PlayerProjectile.Get(shot)
	pierces := projectile.Type == cfg.PlayerLaserShot || projectile.Type == cfg.PlayerShipLaserShot

	var target *donburi.Entry
	shootableQuery.Each(world, func(e *donburi.Entry) {
		if target != nil || e == shot || e.HasComponent(tags.Player) {
			return
		}
		if components.WorldBoundingBox(e).Intersects(box) {
			target = e
		}
	})
	if target == nil {
		return false
	}

	damage.HasCaused = true
	s.inflictDamage(world, target, damage.Amount)
	if damage.DestroyOnContact || !pierces {
		DestroyEntity(shot)
		return true
	}
	return false
}

// inflictDamage lowers target's health and kills it at zero.
func (s *DamageSystem) inflictDamage(world donburi.World, target *donburi.Entry, amount int) {
	shootable := components.Shootable.Get(target)
	if shootable.Invincible {
		return
	}
	shootable.Health -= amount
	if shootable.Health > 0 {
		shootable.FlashTicks = hitFlashTicks
		return
	}
	s.kill(world, target)
}

func (s *DamageSystem) kill(world donburi.World, target *donburi.Entry) {
	shootable := *components.Shootable.Get(target)
	pos := *components.WorldPosition.Get(target)

	if player, ok := tags.Player.First(world); ok {
		components.Player.Get(player).Score += shootable.GivenScore
	}
	if t, ok := cfg.ScoreNumberForScore(shootable.GivenScore); ok {
		factory.SpawnFloatingScoreNumber(s.factory, t, pos)
	}
	if target.HasComponent(components.DeathEffects) {
		var bbox gamemath.Rect
		if target.HasComponent(components.BoundingBox) {
			bbox = *components.BoundingBox.Get(target)
		}
		effects := components.DeathEffects.Get(target).Effects
		factory.SpawnEffects(s.factory, effects, pos, bbox)
		s.playSound(cfg.SoundExplosion)
		for _, effect := range effects {
			if effect.Actor == cfg.Nuclear_explosion {
				TriggerScreenFlash(world, cfg.White, nuclearFlashTicks)
				break
			}
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"actor": actorName(target),
		"score": shootable.GivenScore,
	}).Debug("Actor killed")

	if shootable.DestroyWhenKilled {
		DestroyEntity(target)
	} else {
		target.RemoveComponent(components.Shootable)
	}
}

func (s *DamageSystem) updateHitFlashes(world donburi.World) {
	components.Shootable.Each(world, func(e *donburi.Entry) {
		shootable := components.Shootable.Get(e)
		flashing := shootable.FlashTicks > 0
		if flashing {
			shootable.FlashTicks--
		}
		if e.HasComponent(components.Sprite) {
			components.Sprite.Get(e).FlashingWhite = flashing
		}
	})
}

func (s *DamageSystem) updatePlayerDamage(world donburi.World, player *donburi.Entry) {
	playerData := components.Player.Get(player)
	playerBox := components.WorldBoundingBox(player)

	var used []*donburi.Entry
	playerDamagingQuery.Each(world, func(e *donburi.Entry) {
		if e == player || !isActive(e) || !components.WorldBoundingBox(e).Intersects(playerBox) {
			return
		}
		damaging := components.PlayerDamaging.Get(e)
		if damaging.IsFatal {
			playerData.Health = 0
		} else if playerData.InvulnFrames == 0 {
			playerData.Health = max(playerData.Health-damaging.Amount, 0)
			playerData.InvulnFrames = cfg.Player.InvulnTicks
		}
		if damaging.DestroyOnContact {
			used = append(used, e)
		}
	})
	for _, e := range used {
		DestroyEntity(e)
	}

	if playerData.Health == 0 {
		if level, ok := components.Level.First(world); ok {
			components.Level.Get(level).PlayerDied = true
		}
	}
}

func (s *DamageSystem) updateCollectables(world donburi.World, player *donburi.Entry) {
	playerData := components.Player.Get(player)
	playerBox := components.WorldBoundingBox(player)

	var collected []*donburi.Entry
	collectableQuery.Each(world, func(e *donburi.Entry) {
		if !components.WorldBoundingBox(e).Intersects(playerBox) {
			return
		}
		c := components.Collectable.Get(e)
		playerData.Score += c.GivenScore

		switch c.Kind {
		case components.CollectHealth:
			playerData.Health = min(playerData.Health+c.GivenHealth, cfg.Player.MaxHealth)
		case components.CollectWeapon:
			playerData.Weapon = weaponFor(actorID(e))
			playerData.Ammo = cfg.Player.MaxAmmo
		case components.CollectItem:
			playerData.Inventory = append(playerData.Inventory, int(c.Item))
		}

		if t, ok := cfg.ScoreNumberForScore(c.GivenScore); ok {
			factory.SpawnFloatingScoreNumber(s.factory, t, *components.WorldPosition.Get(e))
		}
		collected = append(collected, e)
	})

	for _, e := range collected {
		s.playSound(cfg.SoundItemPickup)
		DestroyEntity(e)
	}
}

func (s *DamageSystem) updateTriggers(world donburi.World, player *donburi.Entry) {
	levelEntry, ok := components.Level.First(world)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	playerBox := components.WorldBoundingBox(player)

	triggerQuery.Each(world, func(e *donburi.Entry) {
		if !components.WorldBoundingBox(e).Intersects(playerBox) {
			return
		}
		switch components.Trigger.Get(e).Kind {
		case components.TriggerLevelExit:
			level.Exited = true
		case components.TriggerBackdropSwitch:
			level.BackdropSwitched = true
		}
	})
}

func weaponFor(id cfg.ActorID) components.PlayerWeapon {
	switch id {
	case cfg.Laser_icon:
		return components.WeaponLaser
	case cfg.Rocket_launcher_icon:
		return components.WeaponRocket
	case cfg.Flame_thrower_icon:
		return components.WeaponFlameThrower
	}
	return components.WeaponRegular
}

func actorID(e *donburi.Entry) cfg.ActorID {
	if !e.HasComponent(components.ActorTag) {
		return cfg.ActorNone
	}
	return components.ActorTag.Get(e).ID
}

func actorName(e *donburi.Entry) string {
	return actorID(e).String()
}

func levelSpace(world donburi.World) *resolv.Space {
	level, ok := components.Level.First(world)
	if !ok {
		return nil
	}
	return components.Level.Get(level).Space
}

// solidAt reports whether any cell of box holds solid geometry. The space
// uses one cell per tile.
func solidAt(space *resolv.Space, box gamemath.Rect) bool {
	return space.CheckCells(box.Left(), box.Top(), box.Size.Width, box.Size.Height, tags.ResolvSolid) != nil
}
