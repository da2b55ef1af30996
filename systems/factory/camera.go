package factory

import (
	"github.com/automoto/dukeengine/archetypes"
	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/yohamta/donburi"
)

func CreateCamera(world donburi.World, viewport gamemath.Extents) *donburi.Entry {
	camera := archetypes.Camera.Spawn(world)
	components.Camera.SetValue(camera, components.CameraData{Viewport: viewport})
	return camera
}

func CreateInput(world donburi.World) *donburi.Entry {
	input := archetypes.Input.Spawn(world)
	components.Input.SetValue(input, components.InputData{Keys: components.KeySnapshot{}})
	return input
}
