package config

// WindowMode selects how the game window is presented
type WindowMode int

const (
	WindowModeFullscreen WindowMode = iota
	WindowModeWindowed
)

// GameOptions contains everything the user can configure
type GameOptions struct {
	WindowMode     WindowMode `json:"windowMode"`
	WindowWidth    int        `json:"windowWidth"`
	WindowHeight   int        `json:"windowHeight"`
	EnableVsync    bool       `json:"enableVsync"`
	EnableFpsLimit bool       `json:"enableFpsLimit"`
	MaxFps         int        `json:"maxFps"`
	ShowFpsCounter bool       `json:"showFpsCounter"`

	MusicVolume float64 `json:"musicVolume"`
	SoundVolume float64 `json:"soundVolume"`
	MusicOn     bool    `json:"musicOn"`
	SoundOn     bool    `json:"soundOn"`

	WidescreenModeOn   bool `json:"widescreenModeOn"`
	QuickSavingEnabled bool `json:"quickSavingEnabled"`
}

// DefaultOptions returns the options used when no profile exists yet.
func DefaultOptions() GameOptions {
	return GameOptions{
		WindowMode:     WindowModeWindowed,
		WindowWidth:    C.Width * C.WindowScale,
		WindowHeight:   C.Height * C.WindowScale,
		EnableVsync:    true,
		EnableFpsLimit: true,
		MaxFps:         60,
		MusicVolume:    Audio.DefaultMusicVol,
		SoundVolume:    Audio.DefaultSFXVol,
		MusicOn:        true,
		SoundOn:        true,
	}
}

// OptionsMenuConfig contains the options screen layout
type OptionsMenuConfig struct {
	VolumeSteps []float64
	Title       string
}

var OptionsMenu OptionsMenuConfig

func init() {
	OptionsMenu = OptionsMenuConfig{
		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
		Title:       "Options",
	}
}
