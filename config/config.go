package config

import (
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Config holds general game configuration
type Config struct {
	// Logical screen size in pixels
	Width  int
	Height int

	// World units are tiles of TileSize x TileSize pixels
	TileSize int

	// Part of the screen used for the game world, in tiles
	ViewportWidthTiles  int
	ViewportHeightTiles int
	// Viewport width with widescreen mode enabled
	WidescreenViewportWidthTiles int

	// Game logic runs at a fixed rate independent of the render rate
	LogicTicksPerSecond int

	WindowScale int

	// Entities within this many tiles of the viewport are simulated
	ActiveRegionMargin int

	GameName string
}

// LogicTickDuration returns the fixed logic timestep.
func (c *Config) LogicTickDuration() time.Duration {
	return time.Second / time.Duration(c.LogicTicksPerSecond)
}

// PhysicsConfig contains movement constants in tiles per tick
type PhysicsConfig struct {
	GravityAcceleration float64
	MaxFallSpeed        float64
}

// MapConfig contains map rendering settings
type MapConfig struct {
	WaterAnimSteps         int
	TileAnimSpeedTicks     int
	BackdropScrollSpeed    float64 // pixels per second for auto-scrolling backdrops
	WaterSurfaceColor      color.RGBA
	WaterBodyColor         color.RGBA
	BackgroundLayerName    string
	ForegroundLayerName    string
	ActorsObjectGroupName  string
	BackdropProperty       string
	AltBackdropProperty    string
	ScrollBackdropProperty string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowFps           bool // FPS counter regardless of the options
	ShowBoundingBoxes bool
}

const (
	LayerDefault ecs.LayerID = iota
	LayerMenu
)

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Map MapConfig
var Debug DebugConfig

// Color palette
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:                        320,
		Height:                       200,
		TileSize:                     8,
		ViewportWidthTiles:           32,
		ViewportHeightTiles:          20,
		WidescreenViewportWidthTiles: 40,
		LogicTicksPerSecond:          15,
		WindowScale:                  3,
		ActiveRegionMargin:           2,
		GameName:                     "dukeengine",
	}

	Physics = PhysicsConfig{
		GravityAcceleration: 0.5,
		MaxFallSpeed:        2.0,
	}

	Map = MapConfig{
		WaterAnimSteps:         4,
		TileAnimSpeedTicks:     1,
		BackdropScrollSpeed:    30.0,
		WaterSurfaceColor:      color.RGBA{R: 80, G: 120, B: 255, A: 140},
		WaterBodyColor:         color.RGBA{R: 0, G: 40, B: 200, A: 110},
		BackgroundLayerName:    "background",
		ForegroundLayerName:    "foreground",
		ActorsObjectGroupName:  "actors",
		BackdropProperty:       "backdrop",
		AltBackdropProperty:    "secondaryBackdrop",
		ScrollBackdropProperty: "backdropScrollMode",
	}

	// Debug Config (defaults, can be overridden by DUKE_DEBUG=fps,bbox)
	Debug = DebugConfig{}
	for _, flag := range strings.Split(os.Getenv("DUKE_DEBUG"), ",") {
		switch strings.TrimSpace(flag) {
		case "fps":
			Debug.ShowFps = true
		case "bbox":
			Debug.ShowBoundingBoxes = true
		}
	}
}
