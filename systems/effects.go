package systems

import (
	"math"

	"github.com/automoto/gemrun/components"
	"github.com/automoto/gemrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (tweens, squash/stretch, auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	dt := tickSeconds(ecs.World)
	updateVFXTweens(ecs, dt)
	updateSquashStretchEffects(ecs)
	updateAutoDestroy(ecs, dt)
}

// updateVFXTweens advances each burst's gween tween by the tick delta.
func updateVFXTweens(ecs *ecs.ECS, dt float64) {
	components.VFX.Each(ecs.World, func(e *donburi.Entry) {
		vfx := components.VFX.Get(e)
		if vfx.Tween == nil {
			return
		}
		current, _ := vfx.Tween.Update(float32(dt))
		vfx.Progress = float64(current)
	})
}

// updateSquashStretchEffects lerps scale values toward target and removes when normalized
func updateSquashStretchEffects(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)

		ss.ScaleX += (ss.TargetX - ss.ScaleX) * ss.LerpSpeed
		ss.ScaleY += (ss.TargetY - ss.ScaleY) * ss.LerpSpeed

		threshold := 0.01
		if math.Abs(ss.ScaleX-ss.TargetX) < threshold && math.Abs(ss.ScaleY-ss.TargetY) < threshold {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.SquashStretch)
	}
}

// updateAutoDestroy removes entities whose lifetime has run out
func updateAutoDestroy(ecs *ecs.ECS, dt float64) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.SecondsRemaining -= dt
		if ad.SecondsRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		removeWithObject(ecs.World, e)
	}
}

// TriggerSquashStretch adds a squash/stretch effect to an entity
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	if entry.HasComponent(components.SquashStretch) {
		ss := components.SquashStretch.Get(entry)
		ss.ScaleX = scaleX
		ss.ScaleY = scaleY
		ss.TargetX = 1.0
		ss.TargetY = 1.0
		ss.LerpSpeed = config.Animator.SquashLerpSpeed
		return
	}

	entry.AddComponent(components.SquashStretch)
	components.SquashStretch.Set(entry, &components.SquashStretchData{
		ScaleX:    scaleX,
		ScaleY:    scaleY,
		TargetX:   1.0,
		TargetY:   1.0,
		LerpSpeed: config.Animator.SquashLerpSpeed,
	})
}
