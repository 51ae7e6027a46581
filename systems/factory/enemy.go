package factory

import (
	"github.com/automoto/gemrun/archetypes"
	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/automoto/gemrun/shared/leveldata"
	"github.com/automoto/gemrun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a patrolling enemy. Its bottom edge sits on the bottom
// of the spawn rectangle, and a stomp zone rides on its head.
func CreateEnemy(ecs *ecs.ECS, spawn leveldata.EnemySpawn) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	w := float64(cfg.Enemy.CollisionWidth)
	h := float64(cfg.Enemy.CollisionHeight)
	x := spawn.X
	y := spawn.Y
	if spawn.H > 0 {
		y = spawn.Y + spawn.H - h
	}

	body := addObject(ecs, enemy, x, y, w, h, "character", tags.ResolvEnemy)

	// The zone straddles the top edge so a falling player touches it first.
	zoneH := cfg.Enemy.StompZoneHeight
	zone := resolv.NewObject(x, body.Y-zoneH/3, w, zoneH, tags.ResolvStomp)
	zone.SetShape(resolv.NewRectangle(0, 0, w, zoneH))
	zone.Data = enemy
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(zone)
	}

	components.Enemy.SetValue(enemy, components.EnemyData{StompZone: zone})

	facing := components.FacingLeft
	if spawn.MoveRight {
		facing = components.FacingRight
	}
	components.Patrol.SetValue(enemy, components.NewPatrol(spawn.Speed, spawn.MaxDistance, facing))

	components.Animation.Set(enemy, GenerateAnimations("enemy", cfg.Running))

	return enemy
}
