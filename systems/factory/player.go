package factory

import (
	"github.com/automoto/gemrun/archetypes"
	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/automoto/gemrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with (x, y) as its fixed respawn point.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	addObject(ecs, player, x, y,
		float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight),
		"character", tags.ResolvPlayer)

	components.Player.SetValue(player, components.PlayerData{
		Facing: cfg.DirectionRight,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:          cfg.Player.Gravity,
		MaxFallSpeed:     cfg.Player.MaxFallSpeed,
		CollisionEnabled: true,
	})
	components.Respawn.SetValue(player, components.RespawnData{
		SpawnX: x,
		SpawnY: y,
		Phase:  components.PhaseAlive,
	})

	components.Animation.Set(player, GenerateAnimations("player", cfg.Idle))

	return player
}
