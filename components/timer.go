package components

import (
	"math"
	"time"

	"github.com/yohamta/donburi"
)

// LevelTimerData counts down the seconds left in a level.
type LevelTimerData struct {
	Total   int
	Elapsed time.Duration
	// Set once the reload has been scheduled; never cleared for this level instance
	ReloadArmed bool
}

// Remaining returns whole seconds left, never below zero.
func (t *LevelTimerData) Remaining() int {
	left := t.Total - int(math.Floor(t.Elapsed.Seconds()))
	if left < 0 {
		return 0
	}
	return left
}

var LevelTimer = donburi.NewComponentType[LevelTimerData]()
