package systems

import (
	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/automoto/gemrun/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// OnCollectiblePicked removes a touched gem and counts it against the
// level's registry.
func OnCollectiblePicked(w donburi.World, ev CollectiblePicked) {
	gem := ev.Gem
	// Already taken earlier in this batch
	if gem == nil || !gem.Valid() {
		return
	}

	obj := components.Object.Get(gem)
	x, y := obj.X+obj.W/2, obj.Y+obj.H/2
	value := components.Collectible.Get(gem).Value

	removeWithObject(w, gem)

	if levelEntry, ok := components.CollectibleRegistry.First(w); ok {
		registry := components.CollectibleRegistry.Get(levelEntry)
		if registry.Collect(value) {
			log.Debug("gem collected", "remaining", registry.Remaining, "score", registry.Score)
		}
	}

	PlaySFX(w, cfg.SoundGem, x, y)
	factory.SpawnCollectVFX(w, x, y)
}

// removeWithObject takes an entity out of the collision space and the world.
func removeWithObject(w donburi.World, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil {
			if spaceEntry, ok := components.Space.First(w); ok {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
	}
	w.Remove(e.Entity())
}
