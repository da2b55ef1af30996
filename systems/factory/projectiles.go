package factory

import (
	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/automoto/dukeengine/tags"
	"github.com/yohamta/donburi"
)

// CreateProjectile creates a shot of type t. pos is the projectile's
// origin: for left-going shots the entity is moved so that its right edge
// starts there.
func (f *EntityFactory) CreateProjectile(t config.ProjectileType, pos gamemath.Vec, dir config.ProjectileDirection) *donburi.Entry {
	id := config.ActorIDForProjectile(t, dir)
	entry := f.CreateActor(id, pos)
	components.AddTag(entry, tags.Active)

	f.configureProjectile(entry, id, t, pos, dir, *components.BoundingBox.Get(entry))
	return entry
}

// ProjectileSprites lists the actors any projectile or its muzzle flash
// can show.
func ProjectileSprites() []config.ActorID {
	var ids []config.ActorID
	for t := range config.Projectiles {
		for dir := config.DirLeft; dir <= config.DirDown; dir++ {
			ids = append(ids, config.ActorIDForProjectile(t, dir))
		}
	}
	return append(ids, config.Enemy_laser_muzzle_flash_1, config.Enemy_laser_muzzle_flash_2)
}

func (f *EntityFactory) configureProjectile(
	entry *donburi.Entry,
	id config.ActorID,
	t config.ProjectileType,
	pos gamemath.Vec,
	dir config.ProjectileDirection,
	bbox gamemath.Rect,
) {
	isGoingLeft := dir == config.DirLeft

	if t == config.PlayerFlameShot {
		if dir.IsHorizontal() {
			pos.Y++
		} else {
			pos.X--
		}
	}

	if dir.IsHorizontal() && isGoingLeft {
		pos.X -= bbox.Size.Width - 1
		if t == config.PlayerFlameShot {
			pos.X += 3
		}
	}

	components.WorldPosition.SetValue(entry, pos)

	// Rockets get their body from the EnemyRocket behavior set up in
	// configureEntity, only the collision object has to follow the move.
	if t == config.EnemyRocket || t == config.EnemyBossRocket {
		f.registerCollisionObject(entry, id)
		return
	}

	params := config.Projectiles[t]
	body := components.NewMovingBody(dir.Vector().Scale(params.Speed), false)

	if config.IsPlayerProjectile(t) || t == config.ReactorDebris {
		// wall hits of player shots are handled by the projectile system
		body.IgnoreCollisions = true
		body.IsActive = false
		components.Set(entry, components.MovingBody, body)
		components.Set(entry, components.DamageInflicting, components.DamageInflictingData{Amount: params.Damage})
		components.Set(entry, components.PlayerProjectile, components.PlayerProjectileData{Type: t})
		components.Set(entry, components.AutoDestroy, components.AutoDestroyOn(components.OnLeavingActiveRegion))
	} else {
		components.Set(entry, components.MovingBody, body)
		components.Set(entry, components.PlayerDamaging, components.PlayerDamagingData{
			Amount:           params.Damage,
			DestroyOnContact: true,
		})
		components.Set(entry, components.AutoDestroy, components.AutoDestroyOn(
			components.OnWorldCollision|components.OnLeavingActiveRegion))
		f.registerCollisionObject(entry, id)
	}

	if t == config.EnemyLaserShot {
		flashID := config.Enemy_laser_muzzle_flash_2
		if isGoingLeft {
			flashID = config.Enemy_laser_muzzle_flash_1
		}
		flash := f.CreateSprite(flashID, false)
		components.Set(flash, components.WorldPosition, pos)
		components.Set(flash, components.AutoDestroy, components.AutoDestroyAfterTimeout(1))
	}
}
