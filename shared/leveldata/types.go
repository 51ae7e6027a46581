// Package leveldata parses TMX level files into plain data.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import "image/color"

// Level holds everything the game needs to build a level instance.
type Level struct {
	Name   string
	Width  int // pixels
	Height int // pixels

	// Seconds on the level timer; zero means use the configured default.
	TotalSeconds int

	Terrain     []Rect
	Platforms   []Rect
	Traps       []Rect
	Gems        []Rect
	Enemies     []EnemySpawn
	PlayerSpawn Point
	Parallax    []ParallaxLayer
}

// Rect is an axis-aligned rectangle in level pixels.
type Rect struct {
	X, Y, W, H float64
}

// Point is a position in level pixels.
type Point struct {
	X, Y float64
}

// EnemySpawn places a patrolling enemy.
type EnemySpawn struct {
	Rect
	Speed       float64 // pixels per second
	MaxDistance float64 // pixels travelled before turning around
	MoveRight   bool    // initial facing
}

// ParallaxLayer is a flat background band that scrolls slower than the camera.
type ParallaxLayer struct {
	Factor float64
	Color  color.RGBA
	Y      float64
	Height float64
}
