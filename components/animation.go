package components

import (
	"github.com/automoto/gemrun/assets/animations"
	"github.com/automoto/gemrun/config"
	"github.com/yohamta/donburi"
)

// AnimationData drives an entity's procedural frame cycle. Triggers and
// bool parameters are written by gameplay systems and consumed by
// UpdateAnimator.
type AnimationData struct {
	Character        string
	CurrentAnimation *animations.Animation
	CurrentState     config.StateID
	Animations       map[config.StateID]*animations.Animation

	PendingTriggers []string
	Params          map[string]bool
}

// Trigger queues a one-shot animator trigger.
func (a *AnimationData) Trigger(name string) {
	a.PendingTriggers = append(a.PendingTriggers, name)
}

// SetBool sets a persistent animator parameter.
func (a *AnimationData) SetBool(name string, v bool) {
	if a.Params == nil {
		a.Params = make(map[string]bool)
	}
	a.Params[name] = v
}

// Bool reads an animator parameter.
func (a *AnimationData) Bool(name string) bool {
	return a.Params[name]
}

// SetAnimation switches to the cycle for state, restarting it on change.
func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentState == state && a.CurrentAnimation != nil {
		return
	}

	a.CurrentState = state
	anim, ok := a.Animations[state]
	if !ok {
		a.CurrentAnimation = nil
		return
	}
	a.CurrentAnimation = anim
	a.CurrentAnimation.Restart()
}

var Animation = donburi.NewComponentType[AnimationData]()
