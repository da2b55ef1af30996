package config

import "github.com/automoto/dukeengine/shared/gamemath"

// The legacy game draws player projectiles, muzzle flashes and effects after
// all regular actors. Here every sprite goes through the same sorted pass, so
// these get explicit draw orders above the highest regular one.
const (
	MaxDrawOrder              = 19
	PlayerProjectileDrawOrder = MaxDrawOrder + 1
	MuzzleFlashDrawOrder      = PlayerProjectileDrawOrder + 1
	EffectDrawOrder           = MuzzleFlashDrawOrder + 1
)

// SpriteConfig contains load-time adjustments for actor sprites
type SpriteConfig struct {
	// Actors whose images are concatenated from several package entries
	Parts map[ActorID][]ActorID

	// Replaces the draw index stored in the package
	DrawOrderOverrides map[ActorID]int

	// Frame offset to add for the mirrored variant
	OrientationOffsets map[ActorID]int

	// Virtual frame index -> stored frame index
	FrameRemaps map[ActorID][]int

	// Frames rendered right after creation, defaults to [0]
	InitialFrames map[ActorID][]int

	// Player frames (per orientation) whose draw offset is already correct
	PlayerFrameOffsetExceptions []int
	PlayerFramesPerOrientation  int

	// Ship frames copied for the exhaust flame, and the offset applied to the copies
	ShipExhaustFrames      []int
	ShipExhaustOffsetLeft  gamemath.Vec
	ShipExhaustOffsetRight gamemath.Vec
}

var Sprites SpriteConfig

func init() {
	Sprites = SpriteConfig{
		Parts: map[ActorID][]ActorID{
			Duke_LEFT:        {Duke_LEFT, Duke_RIGHT},
			Duke_RIGHT:       {Duke_LEFT, Duke_RIGHT},
			Blue_guard_LEFT:  {Blue_guard_RIGHT, Blue_guard_LEFT},
			Blue_guard_RIGHT: {Blue_guard_RIGHT, Blue_guard_LEFT},
			Hoverbot:         {Hoverbot, Hoverbot_teleport_FX},
			Boss_Episode_2:   {Boss_Episode_2, Boss_Episode_2_head},
		},

		DrawOrderOverrides: map[ActorID]int{
			Duke_regular_shot_horizontal: PlayerProjectileDrawOrder,
			Duke_regular_shot_vertical:   PlayerProjectileDrawOrder,
			Duke_laser_shot_horizontal:   PlayerProjectileDrawOrder,
			Duke_laser_shot_vertical:     PlayerProjectileDrawOrder,
			Duke_rocket_left:             PlayerProjectileDrawOrder,
			Duke_rocket_right:            PlayerProjectileDrawOrder,
			Duke_rocket_up:               PlayerProjectileDrawOrder,
			Duke_rocket_down:             PlayerProjectileDrawOrder,
			Duke_flame_shot_left:         PlayerProjectileDrawOrder,
			Duke_flame_shot_right:        PlayerProjectileDrawOrder,
			Duke_flame_shot_up:           PlayerProjectileDrawOrder,
			Duke_flame_shot_down:         PlayerProjectileDrawOrder,
			Dukes_ship_laser_shot:        PlayerProjectileDrawOrder,
			Muzzle_flash_up:              MuzzleFlashDrawOrder,
			Muzzle_flash_down:            MuzzleFlashDrawOrder,
			Muzzle_flash_left:            MuzzleFlashDrawOrder,
			Muzzle_flash_right:           MuzzleFlashDrawOrder,
			Explosion_FX_1:               EffectDrawOrder,
			Explosion_FX_2:               EffectDrawOrder,
			Small_explosion_FX:           EffectDrawOrder,
			Nuclear_explosion:            EffectDrawOrder,
			White_circle_flash_FX:        EffectDrawOrder,
			Score_number_FX_100:          EffectDrawOrder,
			Score_number_FX_500:          EffectDrawOrder,
			Score_number_FX_2000:         EffectDrawOrder,
			Score_number_FX_5000:         EffectDrawOrder,
			Score_number_FX_10000:        EffectDrawOrder,
		},

		OrientationOffsets: map[ActorID]int{
			Duke_LEFT:        39,
			Duke_RIGHT:       39,
			Blue_guard_LEFT:  12,
			Blue_guard_RIGHT: 12,
			Skeleton:         4,
			Spider:           6,
		},

		// Security cameras store their eight look directions out of order
		FrameRemaps: map[ActorID][]int{
			Security_camera_ceiling: {0, 2, 1, 4, 3, 6, 5, 7},
			Security_camera_floor:   {0, 7, 6, 5, 4, 3, 2, 1},
			Watchbot:                {0, 1, 2, 3, 4, 5, 7, 6, 9, 8},
		},

		InitialFrames: map[ActorID][]int{
			Boss_Episode_2: {0, 1},
			Hoverbot:       {0, 1},
		},

		PlayerFrameOffsetExceptions: []int{35, 36},
		PlayerFramesPerOrientation:  39,

		ShipExhaustFrames:      []int{1, 2},
		ShipExhaustOffsetLeft:  gamemath.Vec{X: 1},
		ShipExhaustOffsetRight: gamemath.Vec{X: -1},
	}
}

// SpritePartsFor lists the package entries that make up id's image list.
func SpritePartsFor(id ActorID) []ActorID {
	if parts, ok := Sprites.Parts[id]; ok {
		return parts
	}
	return []ActorID{id}
}

// IsShip reports whether id is one of the player ship sprites.
func IsShip(id ActorID) bool {
	switch id {
	case Dukes_ship_LEFT, Dukes_ship_RIGHT, Dukes_ship_after_exiting_LEFT, Dukes_ship_after_exiting_RIGHT:
		return true
	}
	return false
}

// IsShipFacingLeft reports whether a ship sprite id faces left.
func IsShipFacingLeft(id ActorID) bool {
	return id == Dukes_ship_LEFT || id == Dukes_ship_after_exiting_LEFT
}
