package factory

import (
	"fmt"
	"math/rand/v2"

	"github.com/automoto/dukeengine/archetypes"
	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/logger"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/automoto/dukeengine/shared/leveldata"
	"github.com/automoto/dukeengine/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// EntityFactory creates fully configured entities from actor ids.
type EntityFactory struct {
	world      donburi.World
	sprites    SpriteCreator
	rng        *rand.Rand
	difficulty config.Difficulty

	space    *resolv.Space
	tileSize int
}

func NewEntityFactory(world donburi.World, sprites SpriteCreator, rng *rand.Rand, difficulty config.Difficulty) *EntityFactory {
	return &EntityFactory{
		world:      world,
		sprites:    sprites,
		rng:        rng,
		difficulty: difficulty,
		tileSize:   config.C.TileSize,
	}
}

func (f *EntityFactory) World() donburi.World { return f.world }
func (f *EntityFactory) Rand() *rand.Rand     { return f.rng }

// SetSpace makes the factory register collision objects for bodies in space.
func (f *EntityFactory) SetSpace(space *resolv.Space) {
	f.space = space
}

// spriteFor panics when id has no frame data. Levels preload their sprites
// with PreloadSprites, so this only fires for broken game data.
func (f *EntityFactory) spriteFor(id config.ActorID) components.SpriteData {
	sprite, err := f.sprites.CreateSprite(id)
	if err != nil {
		logger.Log.WithError(err).WithField("actor", id.String()).Error("Sprite unavailable")
		panic(fmt.Sprintf("factory: no sprite for %s: %v", id, err))
	}
	return sprite
}

// CreateSprite creates an entity with just a sprite, and optionally the
// bounding box inferred from it.
func (f *EntityFactory) CreateSprite(id config.ActorID, assignBoundingBox bool) *donburi.Entry {
	sprite := f.spriteFor(id)
	entry := archetypes.Sprite.Spawn(f.world)
	components.Sprite.SetValue(entry, sprite)
	if assignBoundingBox {
		components.Set(entry, components.BoundingBox, components.InferBoundingBox(sprite))
	}
	return entry
}

func (f *EntityFactory) CreateSpriteAt(id config.ActorID, pos gamemath.Vec, assignBoundingBox bool) *donburi.Entry {
	entry := f.CreateSprite(id, assignBoundingBox)
	components.Set(entry, components.WorldPosition, pos)
	return entry
}

// CreateActor creates a sprite at pos and configures it for id.
func (f *EntityFactory) CreateActor(id config.ActorID, pos gamemath.Vec) *donburi.Entry {
	entry := f.CreateSpriteAt(id, pos, false)
	bbox := components.InferBoundingBox(*components.Sprite.Get(entry))
	f.configureEntity(entry, id, bbox)
	return entry
}

// CreateEntitiesForLevel creates an entity per actor and returns the
// player entity, or nil if the level has no player start.
func (f *EntityFactory) CreateEntitiesForLevel(actors []leveldata.ActorDescription) *donburi.Entry {
	var player *donburi.Entry

	for _, actor := range actors {
		if config.IsMetaMarker(actor.ID) {
			panic(fmt.Sprintf("factory: marker %s must be resolved before entity creation", actor.ID))
		}

		entry := archetypes.Positioned.Spawn(f.world)

		pos := actor.Position
		if actor.AssignedArea != nil {
			// area actors are placed by their top-left corner
			pos.Y += actor.AssignedArea.Size.Height - 1
		}
		components.WorldPosition.SetValue(entry, pos)

		var bbox gamemath.Rect
		if actor.AssignedArea != nil {
			area := *actor.AssignedArea
			components.Set(entry, components.MapGeometryLink, components.MapGeometryLinkData{LinkedGeometrySection: area})
			bbox = area
			bbox.TopLeft = gamemath.Vec{}
		} else if config.HasAssociatedSprite(actor.ID) {
			sprite := f.spriteFor(actor.ID)
			bbox = components.InferBoundingBox(sprite)
			components.Set(entry, components.Sprite, sprite)
		}

		f.configureEntity(entry, actor.ID, bbox)

		if config.IsPlayer(actor.ID) {
			orientation := components.OrientationRight
			if actor.ID == config.Duke_LEFT {
				orientation = components.OrientationLeft
			}
			f.assignPlayerComponents(entry, orientation)
			player = entry
		}
	}

	logger.Log.WithField("actors", len(actors)).Info("Level entities created")
	return player
}

func (f *EntityFactory) configureEntity(entry *donburi.Entry, id config.ActorID, bbox gamemath.Rect) {
	cfg, ok := actorConfigs[id]
	if !ok {
		logger.Log.WithField("actor", id.String()).Warn("No entity configuration, using static decoration")
	}

	components.Set(entry, components.ActorTag, components.ActorTagData{ID: id})
	components.Set(entry, components.BoundingBox, bbox)

	activation := cfg.Activation
	switch cfg.Physics {
	case physicsGravity:
		components.Set(entry, components.MovingBody, components.NewMovingBody(gamemath.VecF{}, true))
		if activation == components.ActivateWhenOnScreen {
			activation = components.ActivateAlwaysAfterFirstActivation
		}
	case physicsFloating:
		components.Set(entry, components.MovingBody, components.NewMovingBody(gamemath.VecF{}, false))
	}
	components.Set(entry, components.ActivationSettings, components.ActivationSettingsData{Policy: activation})

	components.Set(entry, components.Behavior, f.initialBehavior(id, cfg))

	if cfg.Shootable != nil {
		components.Set(entry, components.Shootable, components.ShootableData{
			Health:            cfg.Shootable.forDifficulty(f.difficulty),
			GivenScore:        cfg.Shootable.GivenScore,
			Invincible:        cfg.Shootable.Invincible,
			DestroyWhenKilled: true,
		})
	}
	if cfg.PlayerDamaging != nil {
		components.Set(entry, components.PlayerDamaging, *cfg.PlayerDamaging)
	}
	if cfg.DamageInflicting != nil {
		components.Set(entry, components.DamageInflicting, *cfg.DamageInflicting)
	}
	if cfg.Collectable != nil {
		components.Set(entry, components.Collectable, *cfg.Collectable)
	}
	if cfg.Trigger != nil {
		components.Set(entry, components.Trigger, *cfg.Trigger)
	}
	if cfg.Interactable != nil {
		components.Set(entry, components.Interactable, *cfg.Interactable)
	}
	if cfg.AutoDestroy != nil {
		components.Set(entry, components.AutoDestroy, *cfg.AutoDestroy)
	}
	if len(cfg.DeathEffects) > 0 {
		components.Set(entry, components.DeathEffects, components.DeathEffectsData{Effects: cfg.DeathEffects})
	}
	if cfg.DrawOrderOverride != nil {
		components.Set(entry, components.OverrideDrawOrder, components.OverrideDrawOrderData{DrawOrder: *cfg.DrawOrderOverride})
	}
	if cfg.FacesLeft {
		components.Set(entry, components.OrientationComponent, components.OrientationLeft)
	}
	if cfg.TopMost {
		components.AddTag(entry, tags.DrawTopMost)
	}
	if cfg.Enemy {
		components.AddTag(entry, tags.Enemy)
	}
	if cfg.Solid {
		components.Set(entry, components.SolidBody, components.SolidBodyData{})
	}

	if cfg.Animation != nil && entry.HasComponent(components.Sprite) {
		if components.Sprite.Get(entry).NumFrames() > 1 {
			components.StartAnimationLoop(entry, cfg.Animation.Delay, cfg.Animation.First, cfg.Animation.Last)
		}
	}

	f.registerCollisionObject(entry, id)
}

func (f *EntityFactory) initialBehavior(id config.ActorID, cfg actorConfig) components.BehaviorData {
	b := components.BehaviorData{Kind: cfg.Behavior}
	switch cfg.Behavior {
	case components.BehaviorRocketTurret:
		b.Turret.NeedsReorientation = true
	case components.BehaviorEnemyRocket:
		b.Rocket.Direction = rocketDirection(id)
		b.Rocket.InitialSpeed = config.Projectiles[config.EnemyRocket].Speed
	case components.BehaviorSimpleWalker:
		b.Walker.WalkDelay = config.Behaviors.WalkerStepDelay
		b.Walker.Orientation = components.OrientationRight
		if cfg.FacesLeft {
			b.Walker.Orientation = components.OrientationLeft
		}
	case components.BehaviorSlimePipe:
		b.Dropper.Interval = config.Behaviors.SlimePipeDropInterval
	}
	return b
}

func (f *EntityFactory) assignPlayerComponents(entry *donburi.Entry, orientation components.Orientation) {
	archetypes.Player.Assign(entry)
	components.Player.SetValue(entry, components.PlayerData{
		Orientation: orientation,
		Health:      config.Player.MaxHealth,
		Ammo:        config.Player.MaxAmmo,
	})
	components.OrientationComponent.SetValue(entry, orientation)
	components.MovingBody.SetValue(entry, components.NewMovingBody(gamemath.VecF{}, true))
	components.ActivationSettings.SetValue(entry, components.ActivationSettingsData{Policy: components.ActivateAlways})
	f.registerCollisionObject(entry, config.Duke_LEFT)
}

// registerCollisionObject adds a resolv object for bodies and solids when
// the factory has a collision space.
func (f *EntityFactory) registerCollisionObject(entry *donburi.Entry, id config.ActorID) {
	if f.space == nil || !entry.HasComponent(components.WorldPosition) {
		return
	}
	if !entry.HasComponent(components.MovingBody) && !entry.HasComponent(components.SolidBody) {
		return
	}

	tag := tags.ResolvActor
	switch {
	case config.IsPlayer(id):
		tag = tags.ResolvPlayer
	case entry.HasComponent(components.SolidBody):
		tag = tags.ResolvSolid
	}

	if entry.HasComponent(components.Object) {
		f.space.Remove(components.Object.Get(entry).Object)
	}
	obj := components.ObjectData{Object: resolv.NewObject(0, 0, 0, 0, tag)}
	obj.SyncTo(components.WorldBoundingBox(entry), f.tileSize)
	f.space.Add(obj.Object)
	components.Set(entry, components.Object, obj)
}
