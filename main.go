// gemrun is a small gem-collecting platformer.
//
// Usage:
//
//	gemrun                    - Open the title menu
//	gemrun --level level02    - Jump straight into a level
//	gemrun simulate           - Run a level headless and print the outcome
//
// Global flags:
//
//	--config <path>     - YAML file overriding built-in tuning
//	--log-level <lvl>   - debug, info, warn or error
//	--tps <rate>        - Logic ticks per second
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/automoto/gemrun/config"
	"github.com/automoto/gemrun/fonts"
	"github.com/automoto/gemrun/scenes"
	"github.com/automoto/gemrun/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLevel    string
	flagTPS      int

	flagSkipMenu bool
	flagHitboxes bool
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g, config.C.StartLevel)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var rootCmd = &cobra.Command{
	Use:   "gemrun",
	Short: "Collect every gem before the clock runs out",
	Long: `gemrun is a small platformer. Grab every gem in the level before the
timer reaches zero. Traps and enemies kill you; you come back at the start
of the level a few seconds later. Land on an enemy's head to stomp it.

Controls:
  Arrows/A/D   - Move
  Space/W/Up   - Jump
  Esc          - Pause
  R            - Restart the level

Examples:
  gemrun
  gemrun --level level02 --skip-menu
  gemrun --level ./my-level.tmx --skip-menu
  gemrun simulate --level level01 --seconds 120`,
	PersistentPreRunE: setup,
	RunE:              runWindowed,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config override file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Level to play (embedded name or path to a .tmx file)")
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 0, "Logic ticks per second (0 = config value)")

	rootCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Skip the title menu and start the level")
	rootCmd.Flags().BoolVar(&flagHitboxes, "hitboxes", false, "Draw collision boxes")

	rootCmd.AddCommand(simulateCmd)
}

// setup applies logging, config overrides and flags shared by every command.
func setup(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(level)

	if flagConfig != "" {
		if err := config.LoadOverrides(flagConfig); err != nil {
			return err
		}
		log.Info("config overrides applied", "path", flagConfig)
	}

	if flagTPS < 0 {
		return fmt.Errorf("--tps must be positive, got %d", flagTPS)
	}
	if flagTPS > 0 {
		config.C.TPS = flagTPS
	}
	if flagLevel != "" {
		config.C.StartLevel = flagLevel
	}
	return nil
}

func runWindowed(cmd *cobra.Command, args []string) error {
	config.Debug.SkipMenu = flagSkipMenu || flagLevel != ""
	config.Debug.DrawHitboxes = flagHitboxes

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	// Records fall back to memory if the save directory is unavailable
	_ = systems.InitPersistence("gemrun")
	systems.EnableAudioOutput()

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("gemrun")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
