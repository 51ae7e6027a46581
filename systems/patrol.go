package systems

import (
	"github.com/automoto/gemrun/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePatrol moves every patrolling actor along its segment. The patrol
// owns the actor's X position; the stomp zone follows the body.
func UpdatePatrol(ecs *ecs.ECS) {
	dt := tickSeconds(ecs.World)

	components.Patrol.Each(ecs.World, func(e *donburi.Entry) {
		patrol := components.Patrol.Get(e)
		dx := patrol.Step(dt)

		obj := components.Object.Get(e)
		obj.X += dx

		if e.HasComponent(components.Enemy) {
			if zone := components.Enemy.Get(e).StompZone; zone != nil {
				zone.X = obj.X
			}
		}
	})
}
