package config

import "github.com/automoto/dukeengine/shared/gamemath"

// ProjectileType identifies what kind of shot is fired. The first six values
// are the player-owned types.
type ProjectileType int

const (
	PlayerRegularShot ProjectileType = iota
	PlayerLaserShot
	PlayerRocketShot
	PlayerFlameShot
	PlayerShipLaserShot
	ReactorDebris
	EnemyLaserShot
	EnemyRocket
	EnemyBossRocket
)

// ProjectileDirection is the travel direction of a projectile
type ProjectileDirection int

const (
	DirLeft ProjectileDirection = iota
	DirRight
	DirUp
	DirDown
)

func (d ProjectileDirection) IsHorizontal() bool {
	return d == DirLeft || d == DirRight
}

// Vector returns the unit vector for d in world coordinates (y grows down).
func (d ProjectileDirection) Vector() gamemath.VecF {
	switch d {
	case DirLeft:
		return gamemath.VecF{X: -1}
	case DirRight:
		return gamemath.VecF{X: 1}
	case DirUp:
		return gamemath.VecF{Y: -1}
	default:
		return gamemath.VecF{Y: 1}
	}
}

// IsPlayerProjectile reports whether t is fired by the player. Reactor debris
// shares the player projectile configuration but is not owned by the player.
func IsPlayerProjectile(t ProjectileType) bool {
	return t <= PlayerShipLaserShot
}

// ProjectileConfig holds per-type speed (tiles per tick) and damage
type ProjectileConfig struct {
	Speed  float64
	Damage int
}

var Projectiles map[ProjectileType]ProjectileConfig

func init() {
	Projectiles = map[ProjectileType]ProjectileConfig{
		PlayerRegularShot:   {Speed: 2, Damage: 1},
		PlayerLaserShot:     {Speed: 5, Damage: 2},
		PlayerRocketShot:    {Speed: 2, Damage: 8},
		PlayerFlameShot:     {Speed: 5, Damage: 2},
		PlayerShipLaserShot: {Speed: 5, Damage: 5},
		ReactorDebris:       {Speed: 3, Damage: 1},
		EnemyLaserShot:      {Speed: 2, Damage: 1},
		EnemyRocket:         {Speed: 1, Damage: 1},
		EnemyBossRocket:     {Speed: 1, Damage: 1},
	}
}

// ActorIDForProjectile resolves the sprite actor for a projectile type and
// travel direction.
func ActorIDForProjectile(t ProjectileType, dir ProjectileDirection) ActorID {
	isGoingLeft := dir == DirLeft

	switch t {
	case PlayerRegularShot:
		if dir.IsHorizontal() {
			return Duke_regular_shot_horizontal
		}
		return Duke_regular_shot_vertical

	case PlayerLaserShot:
		if dir.IsHorizontal() {
			return Duke_laser_shot_horizontal
		}
		return Duke_laser_shot_vertical

	case PlayerRocketShot:
		return pickByDirection(dir, Duke_rocket_left, Duke_rocket_right, Duke_rocket_up, Duke_rocket_down)

	case PlayerFlameShot:
		return pickByDirection(dir, Duke_flame_shot_left, Duke_flame_shot_right, Duke_flame_shot_up, Duke_flame_shot_down)

	case PlayerShipLaserShot:
		return Dukes_ship_laser_shot

	case ReactorDebris:
		if isGoingLeft {
			return Reactor_fire_LEFT
		}
		return Reactor_fire_RIGHT

	case EnemyLaserShot:
		if isGoingLeft {
			return Enemy_laser_shot_LEFT
		}
		return Enemy_laser_shot_RIGHT

	case EnemyRocket:
		return pickByDirection(dir, Enemy_rocket_left, Enemy_rocket_right, Enemy_rocket_up, Enemy_rocket_2_down)

	case EnemyBossRocket:
		return Enemy_rocket_2_up
	}

	return ActorNone
}

func pickByDirection(dir ProjectileDirection, left, right, up, down ActorID) ActorID {
	switch dir {
	case DirLeft:
		return left
	case DirRight:
		return right
	case DirUp:
		return up
	default:
		return down
	}
}
