package systems

import (
	"testing"

	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/automoto/dukeengine/systems/factory"
	"github.com/yohamta/donburi"
)

func TestPlayerShotKillsEnemy(t *testing.T) {
	e, f := newTestECS(newTestSprites())
	player := spawnPlayer(t, f, gamemath.Vec{X: 0, Y: 10})
	spider := f.CreateActor(config.Spider, gamemath.Vec{X: 6, Y: 10})
	shot := f.CreateProjectile(config.PlayerRegularShot, gamemath.Vec{X: 3, Y: 10}, config.DirRight)
	sounds := &recordingSounds{}
	s := NewDamageSystem(f, sounds)

	s.Update(e)
	if !spider.Valid() || !shot.Valid() {
		t.Fatal("shot should still be in flight after the first tick")
	}
	if got := components.WorldPosition.Get(shot).X; got != 5 {
		t.Errorf("shot at x = %d, want 5", got)
	}

	s.Update(e)
	if spider.Valid() {
		t.Error("spider should be killed")
	}
	if shot.Valid() {
		t.Error("regular shot should be used up")
	}
	if got := components.Player.Get(player).Score; got != 100 {
		t.Errorf("score = %d, want 100", got)
	}
	if sounds.count(config.SoundExplosion) != 1 {
		t.Errorf("sounds played: %v", sounds.played)
	}
}

func TestLaserShotPiercesEnemies(t *testing.T) {
	e, f := newTestECS(newTestSprites())
	spawnPlayer(t, f, gamemath.Vec{X: 0, Y: 10})
	first := f.CreateActor(config.Spider, gamemath.Vec{X: 6, Y: 10})
	second := f.CreateActor(config.Spider, gamemath.Vec{X: 8, Y: 10})
	shot := f.CreateProjectile(config.PlayerLaserShot, gamemath.Vec{X: 3, Y: 10}, config.DirRight)
	s := NewDamageSystem(f, nil)

	s.Update(e)
	if first.Valid() || second.Valid() {
		t.Error("laser should kill both spiders in one tick")
	}
	if !shot.Valid() {
		t.Error("laser should keep flying")
	}
}

func TestShotStopsAtSolidGeometry(t *testing.T) {
	e, f := newTestECS(newTestSprites())
	level := factory.CreateLevel(e.World, emptyLevel(), nil)
	components.Level.Get(level).Space = solidSpace(gamemath.Vec{X: 5, Y: 10})
	shot := f.CreateProjectile(config.PlayerRegularShot, gamemath.Vec{X: 3, Y: 10}, config.DirRight)
	s := NewDamageSystem(f, nil)

	s.Update(e)
	if shot.Valid() {
		t.Error("shot should be destroyed by the wall")
	}
	impacts := 0
	effectQuery.Each(e.World, func(*donburi.Entry) { impacts++ })
	if impacts != 1 {
		t.Errorf("got %d impact effects, want 1", impacts)
	}
}

func TestHitEnemyFlashesWhite(t *testing.T) {
	e, f := newTestECS(newTestSprites())
	turret := f.CreateActor(config.Rocket_launcher_turret, gamemath.Vec{X: 4, Y: 10})
	f.CreateProjectile(config.PlayerRegularShot, gamemath.Vec{X: 3, Y: 10}, config.DirRight)
	s := NewDamageSystem(f, nil)

	want := []bool{true, true, false}
	for i, w := range want {
		s.Update(e)
		if got := components.Sprite.Get(turret).FlashingWhite; got != w {
			t.Errorf("tick %d: flashing = %v, want %v", i, got, w)
		}
	}
	if h := components.Shootable.Get(turret).Health; h != 2 {
		t.Errorf("health = %d, want 2", h)
	}
}

func TestPlayerDamageAndInvulnerability(t *testing.T) {
	e, f := newTestECS(newTestSprites())
	player := spawnPlayer(t, f, gamemath.Vec{X: 5, Y: 10})
	f.CreateActor(config.Spider, gamemath.Vec{X: 5, Y: 10})
	s := NewDamageSystem(f, nil)

	MarkActiveEntities(e)
	s.Update(e)
	s.Update(e)

	data := components.Player.Get(player)
	if data.Health != config.Player.MaxHealth-1 {
		t.Errorf("health = %d, want %d", data.Health, config.Player.MaxHealth-1)
	}
	if data.InvulnFrames != config.Player.InvulnTicks {
		t.Errorf("invulnerability = %d, want %d", data.InvulnFrames, config.Player.InvulnTicks)
	}
}

func TestFatalDamageEndsLevel(t *testing.T) {
	e, f := newTestECS(newTestSprites())
	level := factory.CreateLevel(e.World, emptyLevel(), nil)
	player := spawnPlayer(t, f, gamemath.Vec{X: 5, Y: 10})
	f.CreateActor(config.Force_field, gamemath.Vec{X: 5, Y: 10})
	s := NewDamageSystem(f, nil)

	MarkActiveEntities(e)
	s.Update(e)

	if h := components.Player.Get(player).Health; h != 0 {
		t.Errorf("health = %d, want 0", h)
	}
	if !components.Level.Get(level).PlayerDied {
		t.Error("level should record the player's death")
	}
}

func TestCollectablesAndTriggers(t *testing.T) {
	e, f := newTestECS(newTestSprites())
	level := factory.CreateLevel(e.World, emptyLevel(), nil)
	player := spawnPlayer(t, f, gamemath.Vec{X: 5, Y: 10})
	components.Player.Get(player).Health = 5
	molecule := f.CreateActor(config.Health_molecule, gamemath.Vec{X: 5, Y: 10})
	f.CreateActor(config.Level_exit, gamemath.Vec{X: 5, Y: 10})
	sounds := &recordingSounds{}
	s := NewDamageSystem(f, sounds)

	s.Update(e)

	data := components.Player.Get(player)
	if data.Health != 6 {
		t.Errorf("health = %d, want 6", data.Health)
	}
	if data.Score != 500 {
		t.Errorf("score = %d, want 500", data.Score)
	}
	if molecule.Valid() {
		t.Error("collected molecule should be removed")
	}
	if sounds.count(config.SoundItemPickup) != 1 {
		t.Errorf("sounds played: %v", sounds.played)
	}
	if !components.Level.Get(level).Exited {
		t.Error("touching the exit should end the level")
	}
}

func TestHealthIsCapped(t *testing.T) {
	e, f := newTestECS(newTestSprites())
	player := spawnPlayer(t, f, gamemath.Vec{X: 5, Y: 10})
	f.CreateActor(config.Health_molecule, gamemath.Vec{X: 5, Y: 10})

	NewDamageSystem(f, nil).Update(e)
	if h := components.Player.Get(player).Health; h != config.Player.MaxHealth {
		t.Errorf("health = %d, want %d", h, config.Player.MaxHealth)
	}
}
