package systems

import (
	"math"

	"github.com/automoto/gemrun/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies gravity and moves bodies by their velocity. Bodies
// with collision enabled are resolved against terrain; the rest fall freely.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := tickSeconds(ecs.World)
	if dt <= 0 {
		return
	}

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		physics.SpeedY += physics.Gravity * dt
		if physics.MaxFallSpeed > 0 {
			physics.SpeedY = math.Min(physics.SpeedY, physics.MaxFallSpeed)
		}

		if !physics.CollisionEnabled {
			physics.OnGround = nil
			obj.X += physics.SpeedX * dt
			obj.Y += physics.SpeedY * dt
			return
		}

		resolveHorizontal(physics, obj.Object, physics.SpeedX*dt)
		resolveVertical(physics, obj.Object, physics.SpeedY*dt)
	})
}
