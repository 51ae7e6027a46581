package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ParallaxData is a background band. It stays pinned to the camera
// horizontally while its pattern scrolls by cameraX * Factor.
type ParallaxData struct {
	Factor float64
	Color  color.RGBA
	Y      float64
	Height float64
	// Horizontal pattern offset, recomputed every tick
	Offset float64
	// Camera-pinned left edge in world space
	X float64
}

var Parallax = donburi.NewComponentType[ParallaxData]()
