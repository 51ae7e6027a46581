package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideFile mirrors the tunable sections of the configuration.
// Sections missing from the file keep their current values.
type overrideFile struct {
	Game        Config            `yaml:"game"`
	Player      PlayerConfig      `yaml:"player"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	Death       DeathConfig       `yaml:"death"`
	Timer       TimerConfig       `yaml:"timer"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Camera      CameraConfig      `yaml:"camera"`
	Audio       AudioConfig       `yaml:"audio"`
}

// LoadOverrides reads a YAML file and applies it on top of the current
// configuration. Unknown keys are rejected so typos do not go unnoticed.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := ApplyOverrides(data); err != nil {
		return fmt.Errorf("failed to apply config %s: %w", path, err)
	}
	return nil
}

// ApplyOverrides applies a YAML document on top of the current configuration.
// Nothing is changed if the document fails to parse or validate.
func ApplyOverrides(data []byte) error {
	doc := overrideFile{
		Game:        *C,
		Player:      Player,
		Enemy:       Enemy,
		Death:       Death,
		Timer:       Timer,
		Collectible: Collectible,
		Camera:      Camera,
		Audio:       Audio,
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse: %w", err)
	}
	if err := doc.validate(); err != nil {
		return err
	}

	game := doc.Game
	C = &game
	Player = doc.Player
	Enemy = doc.Enemy
	Death = doc.Death
	Timer = doc.Timer
	Collectible = doc.Collectible
	Camera = doc.Camera
	Audio = doc.Audio
	return nil
}

// ErrInvalidConfig is returned when an override produces unusable values.
var ErrInvalidConfig = errors.New("invalid config")

func (o *overrideFile) validate() error {
	switch {
	case o.Game.TPS <= 0:
		return fmt.Errorf("%w: game.tps must be positive, got %d", ErrInvalidConfig, o.Game.TPS)
	case o.Game.Width <= 0 || o.Game.Height <= 0:
		return fmt.Errorf("%w: game size must be positive, got %dx%d", ErrInvalidConfig, o.Game.Width, o.Game.Height)
	case o.Game.PixelsPerUnit <= 0:
		return fmt.Errorf("%w: game.pixels_per_unit must be positive", ErrInvalidConfig)
	case o.Death.RespawnDelay < 0:
		return fmt.Errorf("%w: death.respawn_delay must not be negative", ErrInvalidConfig)
	case o.Timer.ReloadDelay < 0:
		return fmt.Errorf("%w: timer.reload_delay must not be negative", ErrInvalidConfig)
	case o.Timer.DefaultTotalSeconds <= 0:
		return fmt.Errorf("%w: timer.default_total_seconds must be positive", ErrInvalidConfig)
	case o.Camera.FollowSmoothing <= 0 || o.Camera.FollowSmoothing > 1:
		return fmt.Errorf("%w: camera.follow_smoothing must be in (0, 1]", ErrInvalidConfig)
	}
	return nil
}
