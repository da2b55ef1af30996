package systems

import (
	"testing"

	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/shared/gamemath"
)

func TestPlayerFiresOncePerPress(t *testing.T) {
	e, f := newTestECS(newTestSprites())
	spawnPlayer(t, f, gamemath.Vec{X: 5, Y: 10})
	sounds := &recordingSounds{}
	s := NewPlayerSystem(f, sounds)
	input := GetInput(e.World)

	input.Current[config.ActionFire] = true
	s.Update(e)
	FinishInputTick(input)
	// held down: no second shot
	input.Current[config.ActionFire] = true
	s.Update(e)

	shots := actorsWithID(e.World, config.Duke_regular_shot_horizontal)
	if len(shots) != 1 {
		t.Fatalf("got %d shots, want 1", len(shots))
	}
	want := gamemath.Vec{X: 6, Y: 10 - config.Player.MuzzleOffset}
	if shots[0] != want {
		t.Errorf("shot at %v, want %v", shots[0], want)
	}
	if sounds.count(config.SoundNormalShot) != 1 {
		t.Errorf("sounds played: %v", sounds.played)
	}
}

func TestPlayerRunsOutOfSpecialAmmo(t *testing.T) {
	e, f := newTestECS(newTestSprites())
	player := spawnPlayer(t, f, gamemath.Vec{X: 5, Y: 10})
	data := components.Player.Get(player)
	data.Weapon = components.WeaponLaser
	data.Ammo = 1
	s := NewPlayerSystem(f, nil)
	input := GetInput(e.World)

	input.Current[config.ActionFire] = true
	s.Update(e)

	if len(actorsWithID(e.World, config.Duke_laser_shot_horizontal)) != 1 {
		t.Error("laser shot not fired")
	}
	if data.Weapon != components.WeaponRegular || data.Ammo != config.Player.MaxAmmo {
		t.Errorf("weapon = %v, ammo = %d after running dry", data.Weapon, data.Ammo)
	}
}

func TestPlayerWalking(t *testing.T) {
	e, f := newTestECS(newTestSprites())
	player := spawnPlayer(t, f, gamemath.Vec{X: 5, Y: 10})
	s := NewPlayerSystem(f, nil)
	input := GetInput(e.World)

	input.Current[config.ActionMoveLeft] = true
	s.Update(e)

	data := components.Player.Get(player)
	if data.Orientation != components.OrientationLeft {
		t.Error("player should face left")
	}
	if v := components.MovingBody.Get(player).Velocity.X; v != -config.Player.WalkSpeed {
		t.Errorf("velocity = %v", v)
	}
	if o := *components.OrientationComponent.Get(player); o != components.OrientationLeft {
		t.Error("orientation component not updated")
	}

	FinishInputTick(input)
	input.Current = [config.ActionCount]bool{}
	s.Update(e)
	if v := components.MovingBody.Get(player).Velocity.X; v != 0 {
		t.Errorf("velocity after release = %v", v)
	}
}
