package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	// Cleared while the player is dying so the camera holds still
	FollowEnabled bool
	// Screen shake offset for this tick, added only when drawing
	ShakeX, ShakeY float64
}

var Camera = donburi.NewComponentType[CameraData]()
