package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsData holds a body's velocity in pixels per second.
type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	Gravity      float64 // pixels per second squared
	MaxFallSpeed float64

	OnGround       *resolv.Object
	IgnorePlatform *resolv.Object

	// When false the body ignores terrain and is skipped by contact checks.
	CollisionEnabled bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
