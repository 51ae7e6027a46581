package systems

import (
	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevelTimer counts the level clock down and ends the level when the
// last gem is taken or time runs out. The reload that follows is scheduled
// at most once per level instance.
func UpdateLevelTimer(ecs *ecs.ECS) {
	w := ecs.World
	levelEntry, ok := components.LevelTimer.First(w)
	if !ok {
		return
	}

	clock, ok := components.Clock.First(w)
	if !ok {
		return
	}

	timer := components.LevelTimer.Get(levelEntry)
	timer.Elapsed += components.Clock.Get(clock).LastDelta

	if timer.ReloadArmed {
		return
	}

	registry := components.CollectibleRegistry.Get(levelEntry)
	if registry.Remaining > 0 && timer.Remaining() > 0 {
		return
	}

	timer.ReloadArmed = true
	finishLevel(w, levelEntry)

	After(w, cfg.Timer.ReloadDelay, func() {
		if !levelEntry.Valid() {
			return
		}
		state := components.LevelState.Get(levelEntry)
		state.ReloadRequested = true
		state.ReloadRequests++
	})
}

func finishLevel(w donburi.World, levelEntry *donburi.Entry) {
	timer := components.LevelTimer.Get(levelEntry)
	registry := components.CollectibleRegistry.Get(levelEntry)
	state := components.LevelState.Get(levelEntry)

	state.Outcome = components.OutcomeTimeUp
	if registry.Remaining == 0 {
		state.Outcome = components.OutcomeWon
	}
	state.FinishedAt = timer.Elapsed.Seconds()

	PlayUISFX(w, cfg.SoundLevelEnd)

	name := ""
	if levelEntry.HasComponent(components.Level) {
		if lvl := components.Level.Get(levelEntry).Level; lvl != nil {
			name = lvl.Name
		}
	}

	deaths := 0
	if player, ok := components.Respawn.First(w); ok {
		deaths = components.Respawn.Get(player).Deaths
	}

	log.Info("level finished", "level", name, "outcome", state.Outcome,
		"seconds", state.FinishedAt, "gems", registry.Total-registry.Remaining, "deaths", deaths)

	if name == "" {
		return
	}
	if _, err := RecordOutcome(name, state.Outcome, state.FinishedAt, deaths); err != nil {
		log.Warn("could not save level record", "level", name, "err", err)
	}
}
