package systems

import (
	"time"

	"github.com/automoto/gemrun/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the level clock by one tick and runs every
// scheduled callback that has come due. It is wrapped in the pause check,
// so pending respawns and reloads wait while the game is paused.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	dt := components.Clock.Get(entry).Tick()
	components.Scheduler.Get(entry).Advance(dt)
}

// tickSeconds returns the current tick's delta in seconds, or zero if the
// world has no clock.
func tickSeconds(w donburi.World) float64 {
	entry, ok := components.Clock.First(w)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).DeltaSeconds()
}

// After schedules fn on the world's level clock. It reports false if the
// world has no scheduler.
func After(w donburi.World, d time.Duration, fn func()) bool {
	entry, ok := components.Scheduler.First(w)
	if !ok {
		return false
	}
	components.Scheduler.Get(entry).After(d, fn)
	return true
}
