package components

import "github.com/yohamta/donburi"

type Orientation int

const (
	OrientationLeft Orientation = iota
	OrientationRight
)

func (o Orientation) Opposite() Orientation {
	if o == OrientationLeft {
		return OrientationRight
	}
	return OrientationLeft
}

// OrientationComponent is the facing of actors that have a mirrored sprite half.
var OrientationComponent = donburi.NewComponentType[Orientation]()

type PlayerData struct {
	Orientation  Orientation
	Health       int
	Score        int
	Ammo         int
	Weapon       PlayerWeapon
	InvulnFrames int
	Inventory    []int
}

type PlayerWeapon int

const (
	WeaponRegular PlayerWeapon = iota
	WeaponLaser
	WeaponRocket
	WeaponFlameThrower
)

var Player = donburi.NewComponentType[PlayerData]()
