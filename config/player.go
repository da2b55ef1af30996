package config

// PlayerConfig contains player tuning values. Speeds are tiles per tick.
type PlayerConfig struct {
	MaxHealth    int
	MaxAmmo      int
	WalkSpeed    float64
	JumpSpeed    float64
	InvulnTicks  int
	FireCooldown int
	MuzzleOffset int

	// Items handed out by the give-items cheat
	CheatItems []ActorID
}

var Player PlayerConfig

func init() {
	Player = PlayerConfig{
		MaxHealth:    9,
		MaxAmmo:      32,
		WalkSpeed:    1,
		JumpSpeed:    3,
		InvulnTicks:  20,
		FireCooldown: 2,
		MuzzleOffset: 2,
		CheatItems:   []ActorID{Blue_key, Circuit_card, Rapid_fire_icon, Cloaking_device_icon},
	}
}
