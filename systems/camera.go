package systems

import (
	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/automoto/dukeengine/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Distance in tiles the player may move from the viewport edges before the
// camera follows
const (
	cameraDeadZoneX = 11
	cameraDeadZoneY = 5
)

// UpdateCamera keeps the player inside the dead zone of the viewport and the
// viewport inside the map.
func UpdateCamera(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if player, ok := tags.Player.First(ecs.World); ok {
		follow(camera, components.WorldBoundingBox(player))
	}

	if level, ok := components.Level.First(ecs.World); ok {
		if l := components.Level.Get(level).Level; l != nil {
			clampCamera(camera, l.Bounds().Size)
		}
	}
}

// CenterCamera puts the player in the middle of the viewport, e.g. after
// loading a level.
func CenterCamera(world donburi.World) {
	cameraEntry, ok := components.Camera.First(world)
	if !ok {
		return
	}
	player, ok := tags.Player.First(world)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	box := components.WorldBoundingBox(player)
	camera.Position = gamemath.Vec{
		X: box.Left() - camera.Viewport.Width/2,
		Y: box.Bottom() - camera.Viewport.Height/2,
	}
	if level, ok := components.Level.First(world); ok {
		if l := components.Level.Get(level).Level; l != nil {
			clampCamera(camera, l.Bounds().Size)
		}
	}
}

func follow(camera *components.CameraData, box gamemath.Rect) {
	deadX := min(cameraDeadZoneX, camera.Viewport.Width/2)
	deadY := min(cameraDeadZoneY, camera.Viewport.Height/2)

	if left := camera.Position.X + deadX; box.Left() < left {
		camera.Position.X -= left - box.Left()
	} else if right := camera.Position.X + camera.Viewport.Width - 1 - deadX; box.Right() > right {
		camera.Position.X += box.Right() - right
	}

	if top := camera.Position.Y + deadY; box.Top() < top {
		camera.Position.Y -= top - box.Top()
	} else if bottom := camera.Position.Y + camera.Viewport.Height - 1 - deadY; box.Bottom() > bottom {
		camera.Position.Y += box.Bottom() - bottom
	}
}

func clampCamera(camera *components.CameraData, mapSize gamemath.Extents) {
	maxX := max(mapSize.Width-camera.Viewport.Width, 0)
	maxY := max(mapSize.Height-camera.Viewport.Height, 0)
	camera.Position.X = min(max(camera.Position.X, 0), maxX)
	camera.Position.Y = min(max(camera.Position.Y, 0), maxY)
}
