package factory

import (
	"github.com/automoto/gemrun/archetypes"
	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/automoto/gemrun/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level singleton: timer, outcome state and an empty
// collectible registry that CreateGem fills.
func CreateLevel(ecs *ecs.ECS, lvl *leveldata.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	total := lvl.TotalSeconds
	if total <= 0 {
		total = cfg.Timer.DefaultTotalSeconds
	}

	components.Level.SetValue(level, components.LevelData{Level: lvl})
	components.LevelTimer.SetValue(level, components.LevelTimerData{Total: total})
	components.LevelState.SetValue(level, components.LevelStateData{})
	components.CollectibleRegistry.SetValue(level, components.CollectibleRegistryData{})

	return level
}

// BuildLevel creates everything a level instance needs in an empty world and
// returns the player. Event handlers are registered separately.
func BuildLevel(ecs *ecs.ECS, lvl *leveldata.Level) *donburi.Entry {
	CreateClock(ecs, cfg.C.TPS)
	CreateLevel(ecs, lvl)
	CreateSpace(ecs, lvl.Width, lvl.Height)

	for _, r := range lvl.Terrain {
		CreateTerrain(ecs, r)
	}
	for _, r := range lvl.Platforms {
		CreatePlatform(ecs, r)
	}
	for _, r := range lvl.Traps {
		CreateTrap(ecs, r)
	}
	for _, r := range lvl.Gems {
		CreateGem(ecs, r)
	}
	for _, spawn := range lvl.Enemies {
		CreateEnemy(ecs, spawn)
	}
	for _, layer := range lvl.Parallax {
		CreateParallaxLayer(ecs, layer)
	}

	player := CreatePlayer(ecs, lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y)
	CreateCamera(ecs, lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y)

	return player
}
