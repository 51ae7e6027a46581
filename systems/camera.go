package systems

import (
	"math"

	"github.com/automoto/gemrun/components"
	"github.com/automoto/gemrun/config"
	"github.com/automoto/gemrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player while follow is enabled.
// The camera holds still during the death sequence.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if camera.FollowEnabled {
		followPlayer(e.World, camera)
	}

	updateScreenShake(cameraEntry, camera)
}

func followPlayer(w donburi.World, camera *components.CameraData) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).Level
	if level == nil {
		return
	}

	targetX := playerObject.X + playerObject.W/2
	targetY := playerObject.Y + playerObject.H/2
	targetX, targetY = clampCamera(targetX, targetY, float64(level.Width), float64(level.Height))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampCamera keeps the view inside the level. A level smaller than the
// screen is centered on that axis.
func clampCamera(x, y, levelWidth, levelHeight float64) (float64, float64) {
	halfW := float64(config.C.Width) / 2
	halfH := float64(config.C.Height) / 2

	if levelWidth <= halfW*2 {
		x = levelWidth / 2
	} else {
		x = math.Max(halfW, math.Min(levelWidth-halfW, x))
	}
	if levelHeight <= halfH*2 {
		y = levelHeight / 2
	} else {
		y = math.Max(halfH, math.Min(levelHeight-halfH, y))
	}
	return x, y
}

// updateScreenShake offsets the camera and counts the shake down. The offset
// is applied to ShakeX/ShakeY so it never accumulates into the follow target.
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	camera.ShakeX, camera.ShakeY = 0, 0
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := 0.0
	if shake.Duration > 0 {
		progress = math.Max(0, float64(shake.Duration-shake.Elapsed)/float64(shake.Duration))
	}
	currentIntensity := shake.Intensity * progress

	camera.ShakeX = math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.ShakeY = math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(w donburi.World, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}

	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
