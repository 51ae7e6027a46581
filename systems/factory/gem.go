package factory

import (
	"github.com/automoto/gemrun/archetypes"
	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/automoto/gemrun/shared/leveldata"
	"github.com/automoto/gemrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGem spawns a gem and registers it with the level's collectible
// registry. Point objects get the configured gem size centered on the point.
func CreateGem(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	gem := archetypes.Gem.Spawn(ecs)

	if r.W <= 0 || r.H <= 0 {
		size := cfg.Collectible.Size
		r = leveldata.Rect{X: r.X - size/2, Y: r.Y - size/2, W: size, H: size}
	}
	addObject(ecs, gem, r.X, r.Y, r.W, r.H, tags.ResolvGem)

	components.Collectible.SetValue(gem, components.CollectibleData{Value: 1})
	components.Animation.Set(gem, GenerateAnimations("gem", cfg.Idle))

	if levelEntry, ok := components.CollectibleRegistry.First(ecs.World); ok {
		components.CollectibleRegistry.Get(levelEntry).Register()
	}

	return gem
}
