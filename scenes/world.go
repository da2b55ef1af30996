package scenes

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/automoto/dukeengine/assets"
	"github.com/automoto/dukeengine/components"
	cfg "github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/logger"
	"github.com/automoto/dukeengine/render"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/automoto/dukeengine/shared/leveldata"
	"github.com/automoto/dukeengine/systems"
	"github.com/automoto/dukeengine/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var ErrNoPlayerStart = errors.New("level has no player start")

var boundingBoxQuery = donburi.NewQuery(filter.Contains(components.WorldPosition, components.BoundingBox))

// WorldResources are the long-lived collaborators of a world. Data is only
// read when a level other than the current one is loaded.
type WorldResources struct {
	Data     fs.FS
	Renderer render.Renderer
	Sprites  factory.SpriteCreator
	Tiles    assets.Tileset
	Sounds   systems.SoundPlayer
	Profile  *systems.Profile
	// Seed for the world's random numbers, 0 picks one
	Seed uint64
}

// WorldScene runs one level: the entity world, its systems and the
// renderer for it.
type WorldScene struct {
	res WorldResources

	ecs       *ecs.ECS
	rendering *systems.RenderingSystem
	level     *leveldata.Level
	player    *donburi.Entry

	// state the level was entered with, restored when the player dies
	levelStart systems.SavedGame
	// incremented whenever a level is (re)started
	generation int
	ticks      int
	finished   bool
}

// NewGameState is the saved game a new game starts from.
func NewGameState(session cfg.SessionID) systems.SavedGame {
	return systems.SavedGame{
		SessionID: session,
		Weapon:    components.WeaponRegular,
		Ammo:      cfg.Player.MaxAmmo,
	}
}

func NewWorldScene(res WorldResources, game systems.SavedGame) (*WorldScene, error) {
	w := &WorldScene{res: res}
	if err := w.Load(game); err != nil {
		return nil, err
	}
	return w, nil
}

// Load starts the level of game with the player state it holds. The
// current level is reused when the session has not changed.
func (w *WorldScene) Load(game systems.SavedGame) error {
	level := w.level
	if level == nil || game.SessionID != w.levelStart.SessionID {
		var err error
		level, err = leveldata.LoadLevel(w.res.Data, game.SessionID.LevelFile(), game.SessionID.Difficulty)
		if err != nil {
			return fmt.Errorf("load %s: %w", game.SessionID.LongString(), err)
		}
	}
	return w.start(level, game)
}

func (w *WorldScene) start(level *leveldata.Level, game systems.SavedGame) error {
	ids := factory.ProjectileSprites()
	for _, actor := range level.Actors {
		if actor.AssignedArea == nil {
			ids = append(ids, actor.ID)
		}
	}
	if err := factory.PreloadSprites(w.res.Sprites, ids...); err != nil {
		return fmt.Errorf("%s: %w", level.Name, err)
	}

	world := donburi.NewWorld()
	f := factory.NewEntityFactory(world, w.res.Sprites, w.newRand(), game.SessionID.Difficulty)

	levelEntry := factory.CreateLevel(world, level, w.res.Tiles)
	f.SetSpace(components.Level.Get(levelEntry).Space)
	factory.CreateInput(world)
	camera := factory.CreateCamera(world, systems.ViewportSize(w.res.Profile.GameOptions()))

	player := f.CreateEntitiesForLevel(level.Actors)
	if player == nil {
		return fmt.Errorf("%s: %w", level.Name, ErrNoPlayerStart)
	}
	data := components.Player.Get(player)
	data.Weapon = game.Weapon
	data.Ammo = game.Ammo
	data.Score = game.Score
	systems.CenterCamera(world)

	rendering := systems.NewRenderingSystem(
		&components.Camera.Get(camera).Position,
		w.res.Renderer,
		w.res.Profile.GameOptions(),
		level,
		w.res.Tiles,
	)
	w.loadBackdrops(rendering, level)

	w.ecs = w.configure(world, f, rendering)
	w.rendering = rendering
	w.level = level
	w.player = player
	w.levelStart = game
	w.generation++
	w.finished = false

	logger.Log.WithFields(logrus.Fields{
		"level":  level.Name,
		"actors": len(level.Actors),
	}).Info("Level started")
	return nil
}

func (w *WorldScene) newRand() *rand.Rand {
	seed := w.res.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed>>1))
}

func (w *WorldScene) loadBackdrops(rendering *systems.RenderingSystem, level *leveldata.Level) {
	if w.res.Data == nil || level.Backdrop == "" {
		return
	}
	primary, err := assets.LoadImage(w.res.Data, level.Backdrop)
	if err != nil {
		logger.Log.WithError(err).Warn("Backdrop unavailable")
		return
	}
	var secondary image.Image
	if level.SecondaryBackdrop != "" {
		if secondary, err = assets.LoadImage(w.res.Data, level.SecondaryBackdrop); err != nil {
			logger.Log.WithError(err).Warn("Secondary backdrop unavailable")
		}
	}
	rendering.MapRenderer().SetBackdrops(primary, secondary)
}

// configure registers the systems in tick order.
func (w *WorldScene) configure(world donburi.World, f *factory.EntityFactory, rendering *systems.RenderingSystem) *ecs.ECS {
	e := ecs.NewECS(world)

	player := systems.NewPlayerSystem(f, w.res.Sounds)
	behaviors := systems.NewBehaviorSystem(f, w.res.Sounds)
	damage := systems.NewDamageSystem(f, w.res.Sounds)
	effects := systems.NewEffectsSystem(f)

	e.AddSystem(func(*ecs.ECS) { rendering.UpdateAnimatedMapTiles() })
	e.AddSystem(systems.UpdateAnimatedSprites)
	e.AddSystem(player.Update)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.MarkActiveEntities)
	e.AddSystem(behaviors.Update)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(damage.Update)
	e.AddSystem(effects.Update)
	e.AddSystem(systems.UpdateLifeTimes)
	e.AddSystem(systems.UpdateMovementSequences)
	e.AddSystem(systems.UpdateFlashTimers)

	// The renderer draws into the current render target, not into screen
	e.AddRenderer(cfg.LayerDefault, w.drawWorld)
	if cfg.Debug.ShowBoundingBoxes {
		e.AddRenderer(cfg.LayerDefault, w.drawBoundingBoxes)
	}
	return e
}

// Tick runs one logic tick and handles the level events it raised.
func (w *WorldScene) Tick() {
	w.ecs.Update()
	w.ticks++
	systems.FinishInputTick(w.Input())

	levelEntry, ok := components.Level.First(w.ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	if level.BackdropSwitched {
		level.BackdropSwitched = false
		w.rendering.SwitchBackdrops()
	}

	switch {
	case level.PlayerDied:
		logger.Log.Info("Player died, restarting level")
		if err := w.start(w.level, w.levelStart); err != nil {
			logger.Log.WithError(err).Error("Could not restart level")
			w.finished = true
		}
	case level.Exited:
		w.enterNextLevel()
	}
}

func (w *WorldScene) enterNextLevel() {
	next, ok := w.levelStart.SessionID.NextLevel()
	if !ok {
		logger.Log.Info("Episode finished")
		w.finished = true
		return
	}
	game := w.snapshot()
	game.SessionID = next
	if err := w.Load(game); err != nil {
		logger.Log.WithError(err).Error("Could not load next level")
		w.finished = true
	}
}

// Render draws the world into the renderer's current target.
func (w *WorldScene) Render(dt time.Duration) {
	w.rendering.UpdateBackdropAutoScrolling(dt)
	w.ecs.Draw(nil)
}

func (w *WorldScene) drawWorld(e *ecs.ECS, _ *ebiten.Image) {
	viewport := systems.ViewportSize(w.res.Profile.GameOptions())
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		components.Camera.Get(cameraEntry).Viewport = viewport
	}
	w.rendering.Update(e.World, systems.ScreenFlash(e.World), viewport)
}

func (w *WorldScene) drawBoundingBoxes(e *ecs.ECS, _ *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry).Position
	ts := cfg.C.TileSize
	boundingBoxQuery.Each(e.World, func(entry *donburi.Entry) {
		box := components.WorldBoundingBox(entry).Translated(gamemath.Vec{X: -camera.X, Y: -camera.Y})
		rect := image.Rect(box.Left()*ts, box.Top()*ts, (box.Right()+1)*ts, (box.Bottom()+1)*ts)
		w.res.Renderer.DrawRect(rect, cfg.Red)
	})
}

// Input is the input singleton of the current level.
func (w *WorldScene) Input() *components.InputData {
	return systems.GetInput(w.ecs.World)
}

func (w *WorldScene) World() donburi.World {
	return w.ecs.World
}

// LevelStart is the state the current level was entered with. Saving a
// game stores this, not the state at the time of saving.
func (w *WorldScene) LevelStart() systems.SavedGame {
	return w.levelStart
}

// Generation changes whenever a level is started or restarted.
func (w *WorldScene) Generation() int {
	return w.generation
}

// Ticks is the number of logic ticks run since the scene was created.
func (w *WorldScene) Ticks() int {
	return w.ticks
}

// Finished reports whether the game ended, after the last level or a
// failed level load.
func (w *WorldScene) Finished() bool {
	return w.finished
}

func (w *WorldScene) snapshot() systems.SavedGame {
	data := components.Player.Get(w.player)
	return systems.SavedGame{
		SessionID: w.levelStart.SessionID,
		Weapon:    data.Weapon,
		Ammo:      data.Ammo,
		Score:     data.Score,
	}
}

func (w *WorldScene) QuickSave() {
	game := w.snapshot()
	game.Name = "Quick Save"
	w.res.Profile.QuickSave = &game
	w.res.Profile.SaveToDisk()
	logger.Log.WithField("session", game.SessionID.ShortString()).Info("Quick saved")
}

func (w *WorldScene) CanQuickLoad() bool {
	return w.res.Profile.QuickSave != nil
}

func (w *WorldScene) QuickLoad() {
	if !w.CanQuickLoad() {
		return
	}
	if err := w.Load(*w.res.Profile.QuickSave); err != nil {
		logger.Log.WithError(err).Error("Could not restore quick save")
	}
}

func (w *WorldScene) ActivateFullHealthCheat() {
	components.Player.Get(w.player).Health = cfg.Player.MaxHealth
}

func (w *WorldScene) ActivateGiveItemsCheat() {
	data := components.Player.Get(w.player)
	data.Health = cfg.Player.MaxHealth
	data.Weapon = components.WeaponFlameThrower
	data.Ammo = cfg.Player.MaxAmmo
	for _, item := range cfg.Player.CheatItems {
		if !slices.Contains(data.Inventory, int(item)) {
			data.Inventory = append(data.Inventory, int(item))
		}
	}
}

// PlayerEntity is the player of the current level.
func (w *WorldScene) PlayerEntity() *donburi.Entry {
	return w.player
}
