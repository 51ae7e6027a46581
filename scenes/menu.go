package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/automoto/gemrun/assets"
	"github.com/automoto/gemrun/systems"
	"github.com/automoto/gemrun/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title menu with one button per level
type MenuScene struct {
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	records, err := systems.LoadRecords()
	if err != nil {
		log.Warn("could not load records", "err", err)
	}

	names, err := assets.LevelNames()
	if err != nil {
		log.Error("could not list levels", "err", err)
	}
	entries := make([]ui.LevelEntry, 0, len(names))
	for _, name := range names {
		r := records[name]
		entries = append(entries, ui.LevelEntry{Name: name, BestSeconds: r.BestSeconds, Wins: r.Wins})
	}

	ms.menuUI = ui.NewMenuUI(entries,
		func(name string) {
			ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, name))
		},
		func() {
			os.Exit(0)
		},
	)
}
