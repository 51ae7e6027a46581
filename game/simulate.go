package game

import (
	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/automoto/gemrun/shared/leveldata"
	"github.com/automoto/gemrun/systems"
	"github.com/charmbracelet/log"
)

// Script decides which actions are held on a tick of a headless run.
type Script func(tick int, in *Instance) []cfg.ActionID

// Result summarizes a headless run.
type Result struct {
	Level         string
	Outcome       components.Outcome
	Ticks         int
	Seconds       float64
	GemsCollected int
	GemsTotal     int
	Deaths        int
	Reloaded      bool
	Sounds        []cfg.SoundID
}

// Simulate runs lvl without a window for at most maxTicks ticks, stopping
// once the level asks to be reloaded. A nil script holds nothing.
func Simulate(lvl *leveldata.Level, maxTicks int, script Script) Result {
	in := NewInstance(lvl)
	defer in.Close()

	res := Result{Level: lvl.Name}
	for tick := 0; tick < maxTicks; tick++ {
		var held []cfg.ActionID
		if script != nil {
			held = script(tick, in)
		}
		systems.FeedInput(in.ECS.World, held...)
		in.Update()
		res.Ticks++

		if in.ReloadRequested() {
			res.Reloaded = true
			break
		}
	}

	state := in.State()
	res.Outcome = state.Outcome

	clock, _ := components.Clock.First(in.ECS.World)
	res.Seconds = components.Clock.Get(clock).Elapsed.Seconds()

	registry := components.CollectibleRegistry.Get(in.levelEntry)
	res.GemsTotal = registry.Total
	res.GemsCollected = registry.Total - registry.Remaining
	res.Deaths = components.Respawn.Get(in.Player).Deaths
	res.Sounds = append(res.Sounds, systems.GetOrCreateAudio(in.ECS.World).Played...)

	log.Debug("simulation finished", "level", res.Level, "ticks", res.Ticks, "outcome", res.Outcome)
	return res
}

// RunRight holds right the whole time and jumps every interval ticks.
func RunRight(interval int) Script {
	return func(tick int, _ *Instance) []cfg.ActionID {
		if interval > 0 && tick%interval == 0 {
			return []cfg.ActionID{cfg.ActionMoveRight, cfg.ActionJump}
		}
		return []cfg.ActionID{cfg.ActionMoveRight}
	}
}
