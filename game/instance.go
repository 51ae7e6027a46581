// Package game assembles a playable level instance: one ECS world with the
// gameplay systems in tick order, the renderers and the event handlers.
package game

import (
	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/automoto/gemrun/shared/leveldata"
	"github.com/automoto/gemrun/systems"
	"github.com/automoto/gemrun/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Instance is a single run of a level. Restarting a level means building a
// new Instance; nothing carries over but saved records.
type Instance struct {
	ECS    *ecs.ECS
	Level  *leveldata.Level
	Player *donburi.Entry

	levelEntry *donburi.Entry
	closed     bool
}

// NewInstance builds a fresh world for lvl.
func NewInstance(lvl *leveldata.Level) *Instance {
	e := ecs.NewECS(donburi.NewWorld())

	addSystems(e)
	addRenderers(e)

	player := factory.BuildLevel(e, lvl)
	systems.RegisterHandlers(e.World)

	levelEntry, _ := components.LevelState.First(e.World)
	registry := components.CollectibleRegistry.Get(levelEntry)
	log.Info("level loaded", "name", lvl.Name, "gems", registry.Total,
		"enemies", len(lvl.Enemies), "seconds", components.LevelTimer.Get(levelEntry).Total)

	return &Instance{
		ECS:        e,
		Level:      lvl,
		Player:     player,
		levelEntry: levelEntry,
	}
}

func addSystems(e *ecs.ECS) {
	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)

	// Gameplay, in tick order. The clock runs first so due respawns and
	// reloads happen before anything moves.
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateClock))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePatrol))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateContacts))
	e.AddSystem(systems.WithGameplayChecks(systems.DispatchEvents))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateLevelTimer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateAnimator))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateParallax))

	// Audio last so sounds queued this tick play this tick
	e.AddSystem(systems.UpdateAudio)
}

func addRenderers(e *ecs.ECS) {
	e.AddRenderer(cfg.LayerBackground, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawActors)
	e.AddRenderer(cfg.LayerEffects, systems.DrawEffects)
	e.AddRenderer(cfg.LayerEffects, systems.DrawDebug)
	e.AddRenderer(cfg.LayerHUD, systems.DrawHUD)
	e.AddRenderer(cfg.LayerHUD, systems.DrawLevelComplete)
	e.AddRenderer(cfg.LayerHUD, systems.DrawPause)
}

// Update runs one logic tick.
func (in *Instance) Update() {
	in.ECS.Update()
}

// Draw renders every layer, background first.
func (in *Instance) Draw(screen *ebiten.Image) {
	in.ECS.Draw(screen)
}

// State returns the level's outcome state.
func (in *Instance) State() components.LevelStateData {
	return *components.LevelState.Get(in.levelEntry)
}

// ReloadRequested reports whether the level has ended and its reload delay
// has passed.
func (in *Instance) ReloadRequested() bool {
	return components.LevelState.Get(in.levelEntry).ReloadRequested
}

// RestartPressed reports whether the restart action was pressed this tick.
func (in *Instance) RestartPressed() bool {
	input := systems.GetOrCreateInput(in.ECS.World)
	return systems.GetAction(input, cfg.ActionRestart).JustPressed
}

// Close unsubscribes the instance's event handlers.
func (in *Instance) Close() {
	if in.closed {
		return
	}
	in.closed = true
	systems.UnregisterHandlers(in.ECS.World)
}
