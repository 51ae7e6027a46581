package systems

import (
	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// OnHazardContact starts the death sequence for an actor that touched a trap
// or an enemy. The actor is dead for cfg.Death.RespawnDelay and then comes
// back at its spawn point.
func OnHazardContact(w donburi.World, ev HazardContact) {
	e := ev.Actor
	if e == nil || !e.Valid() || !e.HasComponent(components.Respawn) {
		return
	}
	respawn := components.Respawn.Get(e)

	// Early return if already in death sequence
	if !respawn.Alive() {
		respawn.IgnoredContacts++
		return
	}

	respawn.Phase = components.PhaseDying
	startDying(w, e)
	respawn.Deaths++
	log.Debug("player died", "cause", ev.Tag, "deaths", respawn.Deaths)

	respawn.Phase = components.PhaseWaiting
	After(w, cfg.Death.RespawnDelay, func() {
		reborn(w, e)
	})
}

// startDying runs the dying entry actions in order.
func startDying(w donburi.World, e *donburi.Entry) {
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)

	physics.SpeedX = 0
	physics.SpeedY = 0

	PlaySFX(w, cfg.SoundDeath, obj.X+obj.W/2, obj.Y+obj.H/2)

	if e.HasComponent(components.Animation) {
		components.Animation.Get(e).Trigger(cfg.TriggerDie)
	}

	setCameraFollow(w, false)

	physics.SpeedY = -cfg.Death.Impulse * cfg.C.PixelsPerUnit
	physics.OnGround = nil
	physics.CollisionEnabled = false
}

// reborn puts the actor back at its spawn point with collision restored.
func reborn(w donburi.World, e *donburi.Entry) {
	// The level may have been torn down while the timer was pending.
	if !e.Valid() {
		return
	}
	respawn := components.Respawn.Get(e)
	respawn.Phase = components.PhaseReborn

	obj := components.Object.Get(e)
	obj.X = respawn.SpawnX
	obj.Y = respawn.SpawnY
	obj.Update()

	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnGround = nil
	physics.IgnorePlatform = nil

	if e.HasComponent(components.Animation) {
		components.Animation.Get(e).Trigger(cfg.TriggerReborn)
	}

	physics.CollisionEnabled = true
	setCameraFollow(w, true)
	respawn.Phase = components.PhaseAlive

	PlaySFX(w, cfg.SoundReborn, respawn.SpawnX, respawn.SpawnY)
	log.Debug("player reborn", "x", respawn.SpawnX, "y", respawn.SpawnY)
}

func setCameraFollow(w donburi.World, enabled bool) {
	if entry, ok := components.Camera.First(w); ok {
		components.Camera.Get(entry).FollowEnabled = enabled
	}
}
