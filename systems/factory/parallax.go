package factory

import (
	"github.com/automoto/gemrun/archetypes"
	"github.com/automoto/gemrun/components"
	"github.com/automoto/gemrun/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateParallaxLayer(ecs *ecs.ECS, layer leveldata.ParallaxLayer) *donburi.Entry {
	entry := archetypes.Parallax.Spawn(ecs)
	components.Parallax.SetValue(entry, components.ParallaxData{
		Factor: layer.Factor,
		Color:  layer.Color,
		Y:      layer.Y,
		Height: layer.Height,
	})
	return entry
}
