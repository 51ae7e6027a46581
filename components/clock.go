package components

import (
	"time"

	"github.com/automoto/gemrun/schedule"
	"github.com/yohamta/donburi"
)

// ClockData carries the simulated time of the current tick. Elapsed is
// derived from the tick count rather than summed, so a whole number of
// seconds always lands on a whole number of ticks.
type ClockData struct {
	TPS       int
	Ticks     uint64
	Elapsed   time.Duration
	LastDelta time.Duration // time covered by the most recent tick
}

// Tick advances the clock by one tick and returns the time it covered.
func (c *ClockData) Tick() time.Duration {
	c.Ticks++
	prev := c.Elapsed
	c.Elapsed = time.Duration(c.Ticks) * time.Second / time.Duration(c.tps())
	c.LastDelta = c.Elapsed - prev
	return c.LastDelta
}

// DeltaSeconds returns the nominal tick length in seconds.
func (c *ClockData) DeltaSeconds() float64 {
	return 1 / float64(c.tps())
}

func (c *ClockData) tps() int {
	if c.TPS <= 0 {
		return 60
	}
	return c.TPS
}

var Clock = donburi.NewComponentType[ClockData]()

// SchedulerData holds the delayed-callback queue of a level instance.
type SchedulerData struct {
	*schedule.Queue
}

var Scheduler = donburi.NewComponentType[SchedulerData]()
