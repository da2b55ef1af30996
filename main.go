package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/automoto/dukeengine/assets"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/fonts"
	"github.com/automoto/dukeengine/logger"
	"github.com/automoto/dukeengine/render"
	"github.com/automoto/dukeengine/scenes"
	"github.com/automoto/dukeengine/scripting"
	"github.com/automoto/dukeengine/systems"
	"github.com/automoto/dukeengine/systems/factory"
	"github.com/automoto/dukeengine/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/pkg/profile"
)

const manifestFile = "actors.yaml"

// frames longer than this are treated as a hitch, not as game time
const maxFrameTime = 250 * time.Millisecond

type Game struct {
	dataDir  string
	data     fs.FS
	renderer *render.EbitenRenderer
	profile  *systems.Profile
	sounds   *assets.SoundBank
	manifest *assets.ManifestPackage
	sprites  *factory.SpriteFactory
	scripts  *scripting.Runner
	runner   *scenes.GameRunner
	watcher  *assets.DataWatcher

	lastUpdate time.Time
	applied    config.GameOptions
}

func NewGame(dataDir string, session config.SessionID, shareware bool) (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	g := &Game{
		dataDir:  dataDir,
		data:     os.DirFS(dataDir),
		renderer: render.NewEbitenRenderer(),
		profile:  systems.OpenProfile(),
	}

	manifest, err := assets.LoadManifestPackage(g.data, manifestFile)
	if err != nil {
		return nil, err
	}
	g.manifest = manifest
	g.sprites = factory.NewSpriteFactory(g.renderer, manifest)

	g.sounds = assets.NewSoundBank(g.data, audio.NewContext(config.Audio.SampleRate))
	g.sounds.Preload()

	catalogue, err := scripting.LoadCatalogue(g.data)
	if err != nil {
		return nil, err
	}
	g.scripts = scripting.NewRunner(catalogue, g.renderer, g.sounds, g.profile.SlotNames)

	world, err := scenes.NewWorldScene(scenes.WorldResources{
		Data:     g.data,
		Renderer: g.renderer,
		Sprites:  g.sprites,
		Tiles:    assets.NewTiledTileset(g.data),
		Sounds:   g.sounds,
		Profile:  g.profile,
	}, scenes.NewGameState(session))
	if err != nil {
		return nil, err
	}

	fader := ui.NewFader()
	ctx := &ui.Context{
		Renderer:  g.renderer,
		Scripts:   g.scripts,
		Profile:   g.profile,
		Sounds:    g.sounds,
		Fader:     fader,
		Shareware: shareware,
	}
	g.runner = scenes.NewGameRunner(ctx, world, fader)
	g.applyOptions(true)
	return g, nil
}

// Watch reloads the actor manifest and menu scripts when they change on
// disk.
func (g *Game) Watch() error {
	w, err := assets.NewDataWatcher(g.dataDir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", g.dataDir, err)
	}
	g.watcher = w
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	now := time.Now()
	dt := time.Duration(0)
	if !g.lastUpdate.IsZero() {
		dt = min(now.Sub(g.lastUpdate), maxFrameTime)
	}
	g.lastUpdate = now

	systems.PollInput(g.runner.World().Input())
	g.runner.Update(dt)
	if g.runner.QuitRequested() {
		return ebiten.Termination
	}

	g.applyOptions(false)
	g.reloadChangedData()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.BeginFrame(screen)
	g.runner.Draw()

	if g.profile.Options.ShowFpsCounter || config.Debug.ShowFps {
		g.renderer.DrawText(fmt.Sprintf("%.0f FPS", ebiten.ActualFPS()), image.Pt(config.C.Width-40, 2), config.White)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return config.C.Width, config.C.Height
}

// applyOptions pushes changed options to ebiten and the sound bank.
func (g *Game) applyOptions(force bool) {
	opts := g.profile.Options
	if !force && opts == g.applied {
		return
	}

	ebiten.SetFullscreen(opts.WindowMode == config.WindowModeFullscreen)
	ebiten.SetVsyncEnabled(opts.EnableVsync)
	if opts.EnableFpsLimit && opts.MaxFps > 0 {
		ebiten.SetTPS(opts.MaxFps)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}
	g.sounds.ApplyOptions(opts)
	g.applied = opts
}

func (g *Game) reloadChangedData() {
	if g.watcher == nil {
		return
	}

	reloadManifest := false
	reloadScripts := false
	for {
		name, ok := g.watcher.Poll()
		if !ok {
			break
		}
		switch filepath.Base(name) {
		case scripting.CatalogueFile:
			reloadScripts = true
		default:
			reloadManifest = true
		}
	}

	if reloadManifest {
		if err := g.manifest.Reload(); err != nil {
			logger.Log.WithError(err).Error("Could not reload actor manifest")
		} else {
			g.sprites.Invalidate()
			logger.Log.Info("Actor manifest reloaded")
		}
	}
	if reloadScripts {
		catalogue, err := scripting.LoadCatalogue(g.data)
		if err != nil {
			logger.Log.WithError(err).Error("Could not reload menu scripts")
			return
		}
		g.scripts.Invalidate(catalogue)
		logger.Log.Info("Menu scripts reloaded")
	}
}

func startProfiling(mode string) interface{ Stop() } {
	switch mode {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	}
	return nil
}

func main() {
	logger.Init()

	dataDir := flag.String("data", "data", "game data directory")
	watch := flag.Bool("watch", false, "reload the actor manifest and menu scripts when they change")
	profileMode := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	episode := flag.Int("episode", 1, "episode to start")
	level := flag.Int("level", 1, "level to start")
	difficulty := flag.Int("difficulty", int(config.Medium), "0 easy, 1 medium, 2 hard")
	shareware := flag.Bool("shareware", false, "restrict the game to the first episode")
	flag.Parse()

	session := config.SessionID{
		Episode:    *episode - 1,
		Level:      *level - 1,
		Difficulty: config.Difficulty(*difficulty),
	}
	if err := validateSession(session, *shareware); err != nil {
		logger.Log.WithError(err).Fatal("Invalid start level")
	}

	if p := startProfiling(*profileMode); p != nil {
		defer p.Stop()
	}

	g, err := NewGame(*dataDir, session, *shareware)
	if err != nil {
		logger.Log.WithError(err).Fatal("Could not start game")
	}
	defer g.Close()
	if *watch {
		if err := g.Watch(); err != nil {
			logger.Log.WithError(err).Warn("Hot reload disabled")
		}
	}

	opts := g.profile.Options
	ebiten.SetWindowTitle(config.C.GameName)
	ebiten.SetWindowSize(opts.WindowWidth, opts.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Log.WithField("session", session.LongString()).Info("Starting game")
	if err := ebiten.RunGame(g); err != nil {
		logger.Log.WithError(err).Error("Game stopped")
	}
}

var errInvalidSession = errors.New("no such level")

func validateSession(s config.SessionID, shareware bool) error {
	switch {
	case s.Episode < 0 || s.Episode >= config.NumEpisodes,
		s.Level < 0 || s.Level >= config.NumLevelsPerEpisode,
		s.Difficulty < config.Easy || s.Difficulty > config.Hard:
		return fmt.Errorf("%w: %s", errInvalidSession, s.LongString())
	case shareware && s.IsRegisteredVersionOnly():
		return fmt.Errorf("%w in the shareware version: %s", errInvalidSession, s.LongString())
	}
	return nil
}
