package archetypes

import (
	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/automoto/gemrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Respawn,
		components.Animation,
		components.State,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Patrol,
		components.Object,
		components.Animation,
	)
	Terrain = newArchetype(
		tags.Terrain,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Trap = newArchetype(
		tags.Trap,
		components.Object,
	)
	Gem = newArchetype(
		tags.Gem,
		components.Collectible,
		components.Object,
		components.Animation,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
		components.LevelTimer,
		components.LevelState,
		components.CollectibleRegistry,
	)
	Clock = newArchetype(
		components.Clock,
		components.Scheduler,
	)
	Camera = newArchetype(
		components.Camera,
	)
	VFXEffect = newArchetype(
		tags.Effect,
		components.VFX,
		components.AutoDestroy,
	)
	Parallax = newArchetype(
		components.Parallax,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

// SpawnInWorld creates the entity without a render layer. Event handlers
// only have the world, not the ECS.
func (a *archetype) SpawnInWorld(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
