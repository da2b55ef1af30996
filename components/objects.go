package components

import (
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/yohamta/donburi"
)

type ActorTagData struct {
	ID config.ActorID
}

var ActorTag = donburi.NewComponentType[ActorTagData]()

// MapGeometryLinkData ties an entity to a section of the tile map it moves
// or removes.
type MapGeometryLinkData struct {
	LinkedGeometrySection gamemath.Rect
}

var MapGeometryLink = donburi.NewComponentType[MapGeometryLinkData]()

type CollectableKind int

const (
	CollectScore CollectableKind = iota
	CollectHealth
	CollectWeapon
	CollectItem
	CollectLetter
)

type CollectableData struct {
	Kind        CollectableKind
	GivenScore  int
	GivenHealth int
	Item        config.ActorID
}

var Collectable = donburi.NewComponentType[CollectableData]()

type TriggerKind int

const (
	TriggerLevelExit TriggerKind = iota
	TriggerBackdropSwitch
)

type TriggerData struct {
	Kind TriggerKind
}

var Trigger = donburi.NewComponentType[TriggerData]()

type InteractableKind int

const (
	InteractKeyHole InteractableKind = iota
	InteractHintGlobe
	InteractElevator
	InteractCheckpoint
)

type InteractableData struct {
	Kind InteractableKind
}

var Interactable = donburi.NewComponentType[InteractableData]()
