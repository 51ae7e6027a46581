package config

import (
	"image/color"
	"time"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pixels per second)
	RunSpeed     float64 `yaml:"run_speed"`
	JumpSpeed    float64 `yaml:"jump_speed"`
	Gravity      float64 `yaml:"gravity"` // pixels per second squared
	MaxFallSpeed float64 `yaml:"max_fall_speed"`

	// Horizontal speed below this is treated as standing still
	MoveEpsilon float64 `yaml:"move_epsilon"`

	// Dimensions
	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`
}

// EnemyConfig contains enemy body configuration. Patrol tuning comes from the level file.
type EnemyConfig struct {
	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`

	// Height of the stomp zone that sits on top of the enemy body
	StompZoneHeight float64 `yaml:"stomp_zone_height"`
}

// DeathConfig contains the death/respawn sequence tuning
type DeathConfig struct {
	RespawnDelay time.Duration `yaml:"respawn_delay"`
	// Upward impulse in world units per second, scaled by PixelsPerUnit
	Impulse float64 `yaml:"impulse"`
	// Falling this far below the level bottom counts as touching a trap
	KillPlaneMargin float64 `yaml:"kill_plane_margin"`
}

// TimerConfig contains level timer configuration
type TimerConfig struct {
	DefaultTotalSeconds int           `yaml:"default_total_seconds"`
	ReloadDelay         time.Duration `yaml:"reload_delay"`
}

// CollectibleConfig contains gem configuration
type CollectibleConfig struct {
	Size float64 `yaml:"size"`
	// Seconds the pickup/death effects stay on screen before removal
	EffectLifetime float64 `yaml:"effect_lifetime"`
	EffectScale    float64 `yaml:"effect_scale"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // How fast camera follows player (0.0-1.0)

	// Screen shake when an enemy is stomped
	StompShakeIntensity float64 `yaml:"stomp_shake_intensity"`
	StompShakeTicks     int     `yaml:"stomp_shake_ticks"`
}

// AnimatorConfig contains visual-state timings
type AnimatorConfig struct {
	RebornBlinkSeconds float64 `yaml:"reborn_blink_seconds"`
	BlinkPeriodSeconds float64 `yaml:"blink_period_seconds"`
	// Fraction of the remaining squash/stretch removed each tick
	SquashLerpSpeed float64 `yaml:"squash_lerp_speed"`
}

// HUDConfig contains heads-up display layout and colors
type HUDConfig struct {
	Margin     float64
	LineHeight float64
	TextColor  color.RGBA
	WarnColor  color.RGBA
	// Remaining seconds at or below this are drawn in WarnColor
	WarnSeconds int
}

// PaletteConfig holds the flat colors used to draw the level
type PaletteConfig struct {
	Sky      color.RGBA
	Terrain  color.RGBA
	Platform color.RGBA
	Trap     color.RGBA
	Gem      color.RGBA
	Enemy    color.RGBA
	Stomp    color.RGBA
	Player   color.RGBA
	Dying    color.RGBA
	Effect   color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Fixed logic rate; each tick advances the world by 1/TPS seconds
	TPS int `yaml:"tps"`
	// Pixels per world unit, used to convert unit-based tuning to pixels
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	// Level file loaded by default (stem name, e.g. "level01")
	StartLevel string `yaml:"start_level"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Death DeathConfig
var Timer TimerConfig
var Collectible CollectibleConfig
var Camera CameraConfig
var Animator AnimatorConfig
var HUD HUDConfig
var Palette PaletteConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool // Skip menu and go directly to game
	DrawHitboxes bool
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Facing constants for actors
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every configuration value to its built-in default.
func Reset() {
	C = &Config{
		Width:         640,
		Height:        360,
		TPS:           60,
		PixelsPerUnit: 16,
		StartLevel:    "level01",
	}

	Player = PlayerConfig{
		RunSpeed:        150,
		JumpSpeed:       420,
		Gravity:         1200,
		MaxFallSpeed:    600,
		MoveEpsilon:     0.01,
		CollisionWidth:  14,
		CollisionHeight: 24,
	}

	Enemy = EnemyConfig{
		CollisionWidth:  16,
		CollisionHeight: 14,
		StompZoneHeight: 12,
	}

	Death = DeathConfig{
		RespawnDelay:    3 * time.Second,
		Impulse:         10,
		KillPlaneMargin: 64,
	}

	Timer = TimerConfig{
		DefaultTotalSeconds: 60,
		ReloadDelay:         time.Second,
	}

	Collectible = CollectibleConfig{
		Size:           10,
		EffectLifetime: 0.5,
		EffectScale:    2.0,
	}

	Camera = CameraConfig{
		FollowSmoothing:     0.1,
		StompShakeIntensity: 3,
		StompShakeTicks:     12,
	}

	Animator = AnimatorConfig{
		RebornBlinkSeconds: 0.75,
		BlinkPeriodSeconds: 0.1,
		SquashLerpSpeed:    0.2,
	}

	HUD = HUDConfig{
		Margin:      10,
		LineHeight:  16,
		TextColor:   White,
		WarnColor:   LightRed,
		WarnSeconds: 10,
	}

	Palette = PaletteConfig{
		Sky:      color.RGBA{R: 24, G: 28, B: 52, A: 255},
		Terrain:  color.RGBA{R: 86, G: 62, B: 44, A: 255},
		Platform: color.RGBA{R: 120, G: 96, B: 64, A: 255},
		Trap:     color.RGBA{R: 200, G: 40, B: 40, A: 255},
		Gem:      color.RGBA{R: 80, G: 230, B: 220, A: 255},
		Enemy:    color.RGBA{R: 150, G: 60, B: 170, A: 255},
		Stomp:    color.RGBA{R: 255, G: 200, B: 60, A: 120},
		Player:   color.RGBA{R: 240, G: 240, B: 240, A: 255},
		Dying:    LightRed,
		Effect:   Yellow,
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}

	resetAudio()
}
