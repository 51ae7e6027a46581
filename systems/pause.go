package systems

import (
	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/automoto/gemrun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause on the back action.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs.World)
	input := GetOrCreateInput(ecs.World)

	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		pause.IsPaused = !pause.IsPaused
		PlayUISFX(ecs.World, cfg.SoundMenuSelect)
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs.World)
	if !pause.IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	title := "PAUSED"
	titleFace := fonts.Title.Get()
	titleWidth := text.BoundString(titleFace, title).Dx()
	text.Draw(screen, title, titleFace, (width-titleWidth)/2, height/2, cfg.White)

	hint := "Esc: Resume   R: Restart"
	hintFace := fonts.Small.Get()
	hintWidth := text.BoundString(hintFace, hint).Dx()
	text.Draw(screen, hint, hintFace, (width-hintWidth)/2, height-12, cfg.White)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e.World); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(w donburi.World) *components.PauseData {
	ent, ok := components.Pause.First(w)
	if !ok {
		ent = w.Entry(w.Create(components.Pause))
	}
	return components.Pause.Get(ent)
}
