package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/automoto/gemrun/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

const levelsDir = "levels"

// LevelFS returns the embedded level files.
func LevelFS() fs.FS {
	return assetFS
}

// LevelNames lists the embedded levels in load order.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAll(assetFS, levelsDir)
	return names, err
}

// LoadLevel loads a level by name. A name ending in ".tmx" is read from the
// local filesystem instead, which is handy while editing levels in Tiled.
func LoadLevel(name string) (*leveldata.Level, error) {
	if path.Ext(name) == ".tmx" {
		dir, file := path.Split(name)
		if dir == "" {
			dir = "."
		}
		return leveldata.Load(os.DirFS(dir), file)
	}
	level, err := leveldata.Load(assetFS, path.Join(levelsDir, name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	return level, nil
}

// MustLoadLevel is LoadLevel for embedded levels known to be valid.
func MustLoadLevel(name string) *leveldata.Level {
	level, err := LoadLevel(name)
	if err != nil {
		panic(err)
	}
	return level
}
