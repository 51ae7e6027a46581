package factory

import (
	"github.com/automoto/gemrun/archetypes"
	"github.com/automoto/gemrun/shared/leveldata"
	"github.com/automoto/gemrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateTerrain(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	terrain := archetypes.Terrain.Spawn(ecs)
	addObject(ecs, terrain, r.X, r.Y, r.W, r.H, tags.ResolvSolid)
	return terrain
}

// CreatePlatform adds a one-way platform that can be jumped through from below.
func CreatePlatform(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	addObject(ecs, platform, r.X, r.Y, r.W, r.H, tags.ResolvPlatform)
	return platform
}

func CreateTrap(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	trap := archetypes.Trap.Spawn(ecs)
	addObject(ecs, trap, r.X, r.Y, r.W, r.H, tags.ResolvTrap)
	return trap
}
