package systems

import (
	"github.com/automoto/gemrun/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes the collision cells of everything that can move.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Physics.Iter(ecs.World) {
		components.Object.Get(e).Update()
	}
	for e := range components.Enemy.Iter(ecs.World) {
		components.Object.Get(e).Update()
		if zone := components.Enemy.Get(e).StompZone; zone != nil {
			zone.Update()
		}
	}
}
