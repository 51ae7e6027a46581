package factory

import (
	"github.com/automoto/gemrun/archetypes"
	"github.com/automoto/gemrun/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Collision space cell size in pixels
const spaceCellSize = 16

func CreateSpace(ecs *ecs.ECS, width, height int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, spaceCellSize, spaceCellSize)
	components.Space.Set(space, spaceData)
	return space
}

// addObject tags a new rectangle, links it to its entry and puts it in the space.
func addObject(ecs *ecs.ECS, e *donburi.Entry, x, y, w, h float64, resolvTags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
