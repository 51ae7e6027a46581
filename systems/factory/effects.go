package factory

import (
	"image/color"

	"github.com/automoto/gemrun/archetypes"
	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// SpawnVFX creates a burst centered at (x, y) that grows and fades over
// cfg.Collectible.EffectLifetime seconds and then removes itself.
func SpawnVFX(w donburi.World, x, y, size float64, c color.RGBA) *donburi.Entry {
	entry := archetypes.VFXEffect.SpawnInWorld(w)

	lifetime := cfg.Collectible.EffectLifetime
	components.VFX.SetValue(entry, components.VFXData{
		X:        x,
		Y:        y,
		Size:     size,
		Color:    c,
		MaxScale: cfg.Collectible.EffectScale,
		Tween:    gween.New(0, 1, float32(lifetime), ease.OutQuad),
	})
	components.AutoDestroy.SetValue(entry, components.AutoDestroyData{
		SecondsRemaining: lifetime,
	})

	return entry
}

// SpawnCollectVFX plays the gem pickup burst.
func SpawnCollectVFX(w donburi.World, x, y float64) *donburi.Entry {
	return SpawnVFX(w, x, y, cfg.Collectible.Size, cfg.Palette.Gem)
}

// SpawnDeathVFX plays the burst left behind by a stomped enemy.
func SpawnDeathVFX(w donburi.World, x, y float64) *donburi.Entry {
	return SpawnVFX(w, x, y, float64(cfg.Enemy.CollisionWidth), cfg.Palette.Effect)
}
