package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// UI sounds
	SoundMenuSelect
	SoundMenuToggle
	// Gameplay sounds
	SoundNormalShot
	SoundLaserShot
	SoundFlameThrowerShot
	SoundEnemyLaserShot
	SoundExplosion
	SoundItemPickup
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SoundConfig maps sound IDs to file paths inside the game data directory
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 1.0,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundMenuSelect:       "sounds/menu_select.wav",
			SoundMenuToggle:       "sounds/menu_toggle.wav",
			SoundNormalShot:       "sounds/normal_shot.wav",
			SoundLaserShot:        "sounds/laser_shot.wav",
			SoundFlameThrowerShot: "sounds/flame_thrower_shot.wav",
			SoundEnemyLaserShot:   "sounds/enemy_laser_shot.wav",
			SoundExplosion:        "sounds/explosion.wav",
			SoundItemPickup:       "sounds/item_pickup.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundExplosion: 1.5,
		},
	}
}
