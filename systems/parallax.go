package systems

import (
	"github.com/automoto/gemrun/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParallax pins every background band to the camera horizontally and
// scrolls its pattern by the camera X scaled by the band's factor.
func UpdateParallax(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camX := components.Camera.Get(cameraEntry).Position.X

	components.Parallax.Each(ecs.World, func(e *donburi.Entry) {
		layer := components.Parallax.Get(e)
		layer.X = camX
		layer.Offset = camX * layer.Factor
	})
}
