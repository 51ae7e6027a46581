package factory

import (
	"github.com/automoto/gemrun/archetypes"
	"github.com/automoto/gemrun/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera places the camera centered on (x, y) with follow enabled.
func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position:      math.Vec2{X: x, Y: y},
		FollowEnabled: true,
	})
	return camera
}
