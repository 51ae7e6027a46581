package components

import (
	"math"

	"github.com/yohamta/donburi"
)

// Facing is the initial orientation of a patrolling actor.
type Facing int

const (
	FacingLeft Facing = iota
	FacingRight
)

// turnEpsilon absorbs float drift from summing tick displacements.
const turnEpsilon = 1e-9

// PatrolData moves an actor back and forth along a horizontal segment.
// Direction reverses once the distance travelled in the current
// direction reaches MaxDistance.
type PatrolData struct {
	Speed             float64 // pixels per second, > 0
	MaxDistance       float64 // pixels, > 0
	Direction         float64 // +1 or -1
	DistanceTravelled float64
	FacingFlipped     bool
	Flips             int
}

// NewPatrol returns a patrol starting at the beginning of its first leg.
func NewPatrol(speed, maxDistance float64, facing Facing) PatrolData {
	dir := -1.0
	if facing == FacingRight {
		dir = 1.0
	}
	return PatrolData{
		Speed:       speed,
		MaxDistance: maxDistance,
		Direction:   dir,
	}
}

// Step advances the patrol by dt seconds and returns the horizontal
// displacement to apply this tick. The turn happens on the same tick
// the threshold is reached; the overshoot is kept.
func (p *PatrolData) Step(dt float64) float64 {
	dx := p.Speed * dt * p.Direction
	p.DistanceTravelled += math.Abs(dx)

	if p.DistanceTravelled >= p.MaxDistance-turnEpsilon {
		p.Direction = -p.Direction
		p.DistanceTravelled = 0
		p.FacingFlipped = !p.FacingFlipped
		p.Flips++
	}

	return dx
}

var Patrol = donburi.NewComponentType[PatrolData]()
