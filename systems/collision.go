package systems

import (
	"github.com/automoto/gemrun/components"
	"github.com/automoto/gemrun/tags"
	"github.com/solarlune/resolv"
)

// platformLandingTolerance is how far below a platform's top edge a body's
// feet may already be and still land on it.
const platformLandingTolerance = 4

// resolveHorizontal moves the object by dx, stopping flush against solids.
func resolveHorizontal(physics *components.PhysicsData, object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}

	if shouldStopHorizontalMovement(object, check) {
		physics.SpeedX = 0
		solids := check.ObjectsByTags(tags.ResolvSolid)
		dx = check.ContactWithObject(solids[0]).X()
	}

	object.X += dx
}

// resolveVertical moves the object by dy, landing on solids and one-way platforms.
func resolveVertical(physics *components.PhysicsData, object *resolv.Object, dy float64) {
	physics.OnGround = nil

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		object.Y += dy
		return
	}

	if dy < 0 {
		dy = handleUpwardCollision(physics, check, dy)
	} else {
		dy = handleDownwardCollision(physics, object, check, dy)
	}

	object.Y += dy
}

func shouldStopHorizontalMovement(object *resolv.Object, check *resolv.Collision) bool {
	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		return false
	}

	objectBottom := object.Y + object.H

	for _, solid := range solids {
		if objectBottom > solid.Y && object.Y < solid.Y+solid.H {
			return true
		}
	}

	return false
}

// Platforms are one-way, so only solids stop upward movement.
func handleUpwardCollision(physics *components.PhysicsData, check *resolv.Collision, dy float64) float64 {
	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		physics.SpeedY = 0
		return check.ContactWithObject(solids[0]).Y()
	}
	return dy
}

func handleDownwardCollision(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision, dy float64) float64 {
	if newDy, handled := tryPlatformCollision(physics, object, check); handled {
		return newDy
	}

	if newDy, handled := trySolidCollision(physics, check); handled {
		return newDy
	}

	return dy
}

func tryPlatformCollision(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision) (float64, bool) {
	platforms := check.ObjectsByTags(tags.ResolvPlatform)
	if len(platforms) == 0 {
		return 0, false
	}

	platform := platforms[0]

	if platform == physics.IgnorePlatform ||
		physics.SpeedY < 0 ||
		object.Bottom() >= platform.Y+platformLandingTolerance {
		return 0, false
	}

	physics.OnGround = platform
	physics.SpeedY = 0
	return check.ContactWithObject(platform).Y(), true
}

func trySolidCollision(physics *components.PhysicsData, check *resolv.Collision) (float64, bool) {
	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		return 0, false
	}

	solid := solids[0]

	if physics.SpeedY >= 0 {
		physics.OnGround = solid
		physics.SpeedY = 0
		physics.IgnorePlatform = nil
		return check.ContactWithObject(solid).Y(), true
	}

	return 0, false
}

// isGrounded reports whether something solid or a platform is directly
// beneath the object.
func isGrounded(object *resolv.Object) bool {
	check := object.Check(0, 1, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		return false
	}
	bottom := object.Y + object.H
	for _, o := range check.Objects {
		// Feet on top of o, not overlapping its side
		if object.X < o.X+o.W && object.X+object.W > o.X &&
			bottom+1 > o.Y && bottom <= o.Y+1 {
			return true
		}
	}
	return false
}
