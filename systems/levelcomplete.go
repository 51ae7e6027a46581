package systems

import (
	"fmt"

	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/automoto/gemrun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawLevelComplete renders the end-of-level overlay while the reload is pending.
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.LevelState.First(e.World)
	if !ok {
		return
	}
	state := components.LevelState.Get(levelEntry)
	if state.Outcome == components.OutcomeNone {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	title := "TIME UP"
	titleColor := cfg.HUD.WarnColor
	if state.Outcome == components.OutcomeWon {
		title = "ALL GEMS!"
		titleColor = cfg.Yellow
	}
	titleFont := fonts.Title.Get()
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(height/2)-8, titleColor)

	msg := fmt.Sprintf("%.1f seconds", state.FinishedAt)
	if lvl, ok := components.Level.First(e.World); ok {
		if l := components.Level.Get(lvl).Level; l != nil {
			if record, ok := LoadRecord(l.Name); ok && record.BestSeconds > 0 {
				msg = fmt.Sprintf("%.1f seconds   best %.1f", state.FinishedAt, record.BestSeconds)
			}
		}
	}
	msgFont := fonts.Bold.Get()
	text.Draw(screen, msg, msgFont, centerTextX(msg, msgFont, width), int(height/2)+20, cfg.HUD.TextColor)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}
