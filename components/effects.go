package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // ticks
	Elapsed   int
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// SquashStretchData tracks scale deformation for jump/land feel
type SquashStretchData struct {
	ScaleX, ScaleY   float64
	TargetX, TargetY float64
	LerpSpeed        float64
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()

// AutoDestroyData removes an entity once its lifetime runs out
type AutoDestroyData struct {
	SecondsRemaining float64
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// VFXData is a short-lived burst drawn at X, Y. Progress runs 0 to 1
// over the tween's duration and drives scale and fade.
type VFXData struct {
	X, Y     float64
	Size     float64
	Color    color.RGBA
	MaxScale float64
	Tween    *gween.Tween
	Progress float64
}

var VFX = donburi.NewComponentType[VFXData]()
