package systems

import (
	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/automoto/gemrun/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// OnEnemyStomped kills an enemy the player landed on and bounces the player.
func OnEnemyStomped(w donburi.World, ev EnemyStomped) {
	enemy := ev.Enemy
	if enemy == nil || !enemy.Valid() {
		return
	}

	obj := components.Object.Get(enemy)
	x, y := obj.X+obj.W/2, obj.Y+obj.H/2

	if zone := components.Enemy.Get(enemy).StompZone; zone != nil {
		if spaceEntry, ok := components.Space.First(w); ok {
			components.Space.Get(spaceEntry).Remove(zone)
		}
	}
	removeWithObject(w, enemy)

	if p := ev.Player; p != nil && p.Valid() && p.HasComponent(components.Physics) {
		components.Physics.Get(p).SpeedY = -cfg.Player.JumpSpeed / 2
		TriggerSquashStretch(p, 1.3, 0.7)
	}

	PlaySFX(w, cfg.SoundStomp, x, y)
	factory.SpawnDeathVFX(w, x, y)
	TriggerScreenShake(w, cfg.Camera.StompShakeIntensity, cfg.Camera.StompShakeTicks)
	log.Debug("enemy stomped", "x", x, "y", y)
}
