package leveldata

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names recognised in level files.
const (
	GroupTerrain     = "Terrain"
	GroupPlatforms   = "Platforms"
	GroupTraps       = "Traps"
	GroupGems        = "Gems"
	GroupEnemies     = "Enemies"
	GroupPlayerSpawn = "PlayerSpawn"
	GroupParallax    = "Parallax"
)

var (
	// ErrNoPlayerSpawn is returned when a level has no PlayerSpawn object.
	ErrNoPlayerSpawn = errors.New("level has no player spawn")
	// ErrInvalidPatrol is returned when an enemy has a non-positive speed or distance.
	ErrInvalidPatrol = errors.New("invalid enemy patrol")
)

// Load parses a TMX file from fsys. It takes an fs.FS so callers can pass
// embed.FS (the game) or os.DirFS (levels under development).
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:         strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:        levelMap.Width * levelMap.TileWidth,
		Height:       levelMap.Height * levelMap.TileHeight,
		TotalSeconds: levelMap.Properties.GetInt("totalSeconds"),
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			r := Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}

			switch og.Name {
			case GroupTerrain:
				level.Terrain = append(level.Terrain, r)
			case GroupPlatforms:
				level.Platforms = append(level.Platforms, r)
			case GroupTraps:
				level.Traps = append(level.Traps, r)
			case GroupGems:
				level.Gems = append(level.Gems, r)
			case GroupEnemies:
				spawn := EnemySpawn{
					Rect:        r,
					Speed:       o.Properties.GetFloat("speed"),
					MaxDistance: o.Properties.GetFloat("maxDistance"),
					MoveRight:   o.Properties.GetBool("moveRight"),
				}
				if spawn.Speed <= 0 || spawn.MaxDistance <= 0 {
					return nil, fmt.Errorf("%s: enemy %d (speed=%v maxDistance=%v): %w",
						tmxPath, o.ID, spawn.Speed, spawn.MaxDistance, ErrInvalidPatrol)
				}
				level.Enemies = append(level.Enemies, spawn)
			case GroupPlayerSpawn:
				if !spawnFound {
					level.PlayerSpawn = Point{X: o.X, Y: o.Y}
					spawnFound = true
				}
			case GroupParallax:
				c, err := ParseHexColor(o.Properties.GetString("color"))
				if err != nil {
					return nil, fmt.Errorf("%s: parallax %d: %w", tmxPath, o.ID, err)
				}
				level.Parallax = append(level.Parallax, ParallaxLayer{
					Factor: o.Properties.GetFloat("factor"),
					Color:  c,
					Y:      o.Y,
					Height: o.Height,
				})
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlayerSpawn)
	}

	// Far layers draw first
	sort.SliceStable(level.Parallax, func(i, j int) bool {
		return level.Parallax[i].Factor > level.Parallax[j].Factor
	})

	return level, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// ParseHexColor parses "#rrggbb" or "#aarrggbb" (the Tiled color format).
// An empty string yields opaque black.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if s == "" {
		return color.RGBA{A: 255}, nil
	}
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	c := color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
	if len(s) == 8 {
		c.A = uint8(v >> 24)
	}
	return c, nil
}
