package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/gemrun/assets"
	"github.com/automoto/gemrun/game"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlatformerScene plays one level, rebuilding it whenever it ends or the
// player asks for a restart.
type PlatformerScene struct {
	sceneChanger SceneChanger
	levelName    string
	instance     *game.Instance
	once         sync.Once
}

// NewPlatformerScene creates a scene for the named level (embedded stem name
// or a path to a .tmx file).
func NewPlatformerScene(sc SceneChanger, levelName string) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levelName: levelName}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	if ps.instance == nil {
		return
	}

	ps.instance.Update()

	if ps.instance.ReloadRequested() || ps.instance.RestartPressed() {
		ps.reload()
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.instance == nil {
		return
	}
	ps.instance.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Warn("shaders unavailable, drawing flat colors", "err", err)
	}
	ps.reload()
}

// reload replaces the current instance with a fresh one.
func (ps *PlatformerScene) reload() {
	lvl, err := assets.LoadLevel(ps.levelName)
	if err != nil {
		log.Error("could not load level", "level", ps.levelName, "err", err)
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger))
		return
	}

	if ps.instance != nil {
		ps.instance.Close()
	}
	ps.instance = game.NewInstance(lvl)
}
