package systems

import (
	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimator turns animator triggers and parameters into a visual state
// and advances the current frame cycle. Die holds until a reborn trigger;
// reborn holds for cfg.Animator.RebornBlinkSeconds.
func UpdateAnimator(ecs *ecs.ECS) {
	dt := tickSeconds(ecs.World)

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)

		if e.HasComponent(components.State) {
			state := components.State.Get(e)
			next := nextState(anim, state, dt)
			anim.PendingTriggers = anim.PendingTriggers[:0]

			state.PreviousState = state.CurrentState
			if next != state.CurrentState {
				state.CurrentState = next
				state.StateTimer = 0
			} else {
				state.StateTimer++
			}
			anim.SetAnimation(next)
		}

		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}

func nextState(anim *components.AnimationData, state *components.StateData, dt float64) cfg.StateID {
	current := state.CurrentState

	for _, trigger := range anim.PendingTriggers {
		switch trigger {
		case cfg.TriggerDie:
			current = cfg.Die
		case cfg.TriggerReborn:
			current = cfg.Reborn
		case cfg.TriggerJump:
			if current != cfg.Die {
				current = cfg.Jump
			}
		}
	}
	if current != state.CurrentState {
		return current
	}

	switch current {
	case cfg.Die:
		return cfg.Die
	case cfg.Reborn:
		if dt > 0 && float64(state.StateTimer+1)*dt < cfg.Animator.RebornBlinkSeconds {
			return cfg.Reborn
		}
	case cfg.Jump:
		if !anim.Bool(cfg.ParamGrounded) {
			return cfg.Jump
		}
	}

	if anim.Bool(cfg.ParamRunning) {
		return cfg.Running
	}
	return cfg.Idle
}

// RebornVisible reports whether a blinking reborn actor is drawn this tick.
func RebornVisible(state *components.StateData, tickDelta float64) bool {
	if state.CurrentState != cfg.Reborn || cfg.Animator.BlinkPeriodSeconds <= 0 {
		return true
	}
	elapsed := float64(state.StateTimer) * tickDelta
	return int(elapsed/cfg.Animator.BlinkPeriodSeconds)%2 == 0
}
