package systems

import (
	"fmt"

	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/automoto/gemrun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// HUDLines returns the heads-up text for the current level state: time
// left, gems left and deaths.
func HUDLines(e *ecs.ECS) (timeLine, gemLine, deathLine string, warn bool) {
	levelEntry, ok := components.LevelTimer.First(e.World)
	if !ok {
		return "", "", "", false
	}
	timer := components.LevelTimer.Get(levelEntry)
	registry := components.CollectibleRegistry.Get(levelEntry)

	remaining := timer.Remaining()
	timeLine = fmt.Sprintf("TIME %d", remaining)
	gemLine = fmt.Sprintf("GEMS %d/%d", registry.Total-registry.Remaining, registry.Total)

	deaths := 0
	if player, ok := components.Respawn.First(e.World); ok {
		deaths = components.Respawn.Get(player).Deaths
	}
	deathLine = fmt.Sprintf("DEATHS %d", deaths)

	return timeLine, gemLine, deathLine, remaining <= cfg.HUD.WarnSeconds
}

// DrawHUD renders the timer, gem count and death counter in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	timeLine, gemLine, deathLine, warn := HUDLines(e)
	if timeLine == "" {
		return
	}

	face := fonts.Regular.Get()
	x := int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin + cfg.HUD.LineHeight)
	step := int(cfg.HUD.LineHeight)

	timeColor := cfg.HUD.TextColor
	if warn {
		timeColor = cfg.HUD.WarnColor
	}
	text.Draw(screen, timeLine, face, x, y, timeColor)
	text.Draw(screen, gemLine, face, x, y+step, cfg.HUD.TextColor)
	text.Draw(screen, deathLine, face, x, y+2*step, cfg.HUD.TextColor)
}
