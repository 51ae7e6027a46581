package systems

import (
	"image/color"

	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/automoto/gemrun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object when hitbox drawing is enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitboxes {
		return
	}

	v, ok := currentView(ecs.World, screen)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		if !v.visible(obj.X, obj.Y, obj.W, obj.H) {
			continue
		}

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{100, 100, 100, 255}
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvEnemy):
			c = color.RGBA{255, 0, 0, 255}
		case obj.HasTags(tags.ResolvStomp):
			c = color.RGBA{255, 200, 0, 255}
		case obj.HasTags(tags.ResolvTrap):
			c = color.RGBA{255, 0, 255, 255}
		}

		vector.StrokeRect(screen, float32(obj.X-v.left), float32(obj.Y-v.top), float32(obj.W), float32(obj.H), 1, c, false)
	}
}
