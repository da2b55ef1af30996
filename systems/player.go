package systems

import (
	"github.com/automoto/dukeengine/components"
	cfg "github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/automoto/dukeengine/systems/factory"
	"github.com/automoto/dukeengine/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Player sprite frames, per orientation half
const (
	playerFrameStanding  = 0
	playerFrameWalkFirst = 1
	playerFrameWalkLast  = 4
	playerFrameJumping   = 6
	playerFrameLookingUp = 16
)

// PlayerSystem applies input to the player: walking, jumping and shooting.
type PlayerSystem struct {
	factory *factory.EntityFactory
	sounds  SoundPlayer

	fireCooldown int
}

func NewPlayerSystem(f *factory.EntityFactory, sounds SoundPlayer) *PlayerSystem {
	return &PlayerSystem{factory: f, sounds: sounds}
}

func (s *PlayerSystem) Update(ecs *ecs.ECS) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	input := GetInput(ecs.World)
	data := components.Player.Get(player)
	if data.Health <= 0 {
		return
	}

	if data.InvulnFrames > 0 {
		data.InvulnFrames--
	}
	if player.HasComponent(components.Sprite) {
		// blink while invulnerable
		components.Sprite.Get(player).Show = data.InvulnFrames%2 == 0
	}

	body := components.MovingBody.Get(player)
	switch {
	case input.Pressed(cfg.ActionMoveLeft):
		data.Orientation = components.OrientationLeft
		body.Velocity.X = -cfg.Player.WalkSpeed
	case input.Pressed(cfg.ActionMoveRight):
		data.Orientation = components.OrientationRight
		body.Velocity.X = cfg.Player.WalkSpeed
	default:
		body.Velocity.X = 0
		body.Remainder.X = 0
	}
	components.Set(player, components.OrientationComponent, data.Orientation)

	if input.JustPressed(cfg.ActionJump) && body.OnGround {
		body.Velocity.Y = -cfg.Player.JumpSpeed
	}

	if s.fireCooldown > 0 {
		s.fireCooldown--
	}
	if input.JustPressed(cfg.ActionFire) && s.fireCooldown == 0 {
		s.fire(player, data, input.Pressed(cfg.ActionMoveUp))
		s.fireCooldown = cfg.Player.FireCooldown
	}

	s.updateSpriteFrame(player, body, input.Pressed(cfg.ActionMoveUp))
}

func (s *PlayerSystem) fire(player *donburi.Entry, data *components.PlayerData, aimingUp bool) {
	pos := *components.WorldPosition.Get(player)
	box := components.WorldBoundingBox(player)

	dir := cfg.DirRight
	shotPos := gamemath.Vec{X: box.Right() + 1, Y: pos.Y - cfg.Player.MuzzleOffset}
	switch {
	case aimingUp:
		dir = cfg.DirUp
		shotPos = gamemath.Vec{X: box.Left() + box.Size.Width/2, Y: box.Top() - 1}
	case data.Orientation == components.OrientationLeft:
		dir = cfg.DirLeft
		shotPos.X = box.Left() - 1
	}

	t, sound := projectileForWeapon(data.Weapon)
	s.factory.CreateProjectile(t, shotPos, dir)
	if s.sounds != nil {
		s.sounds.PlaySound(sound)
	}

	if data.Weapon != components.WeaponRegular {
		data.Ammo--
		if data.Ammo <= 0 {
			data.Weapon = components.WeaponRegular
			data.Ammo = cfg.Player.MaxAmmo
		}
	}
}

func projectileForWeapon(w components.PlayerWeapon) (cfg.ProjectileType, cfg.SoundID) {
	switch w {
	case components.WeaponLaser:
		return cfg.PlayerLaserShot, cfg.SoundLaserShot
	case components.WeaponRocket:
		return cfg.PlayerRocketShot, cfg.SoundNormalShot
	case components.WeaponFlameThrower:
		return cfg.PlayerFlameShot, cfg.SoundFlameThrowerShot
	}
	return cfg.PlayerRegularShot, cfg.SoundNormalShot
}

func (s *PlayerSystem) updateSpriteFrame(player *donburi.Entry, body *components.MovingBodyData, aimingUp bool) {
	if !player.HasComponent(components.Sprite) {
		return
	}
	sprite := components.Sprite.Get(player)
	if len(sprite.FramesToRender) == 0 {
		return
	}
	current := sprite.FramesToRender[0]

	frame := playerFrameStanding
	switch {
	case !body.OnGround:
		frame = playerFrameJumping
	case aimingUp:
		frame = playerFrameLookingUp
	case body.Velocity.X != 0:
		frame = current + 1
		if frame < playerFrameWalkFirst || frame > playerFrameWalkLast {
			frame = playerFrameWalkFirst
		}
	}
	sprite.SetFrame(0, frame)
}
