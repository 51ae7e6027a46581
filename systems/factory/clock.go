package factory

import (
	"github.com/automoto/gemrun/archetypes"
	"github.com/automoto/gemrun/components"
	"github.com/automoto/gemrun/schedule"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateClock adds the level clock, ticking tps times per simulated
// second, and its callback queue.
func CreateClock(ecs *ecs.ECS, tps int) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{TPS: tps})
	components.Scheduler.SetValue(clock, components.SchedulerData{Queue: schedule.New()})
	return clock
}
