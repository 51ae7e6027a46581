package factory

import (
	"fmt"

	"github.com/automoto/gemrun/assets/animations"
	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
)

// GenerateAnimations creates an AnimationData component based on the character key
// ("player", "enemy", "gem") which maps to a set of frame cycles in config.
func GenerateAnimations(key string, initial cfg.StateID) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	animData := &components.AnimationData{
		Character:  key,
		Animations: make(map[cfg.StateID]*animations.Animation, len(defs)),
		Params:     make(map[string]bool),
	}

	for state, def := range defs {
		anim := animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
		anim.FreezeOnComplete = def.Freeze
		animData.Animations[state] = anim
	}

	animData.SetAnimation(initial)
	return animData
}
