package config

// AnimationDef describes a procedural frame cycle. Frames are drawn as
// small offsets or tints rather than sprite sheet cells.
type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32 // ticks per frame
	// Hold the last frame instead of wrapping around
	Freeze bool
}

// CharacterAnimations maps a character key to its per-state frame cycles.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle:    {First: 0, Last: 1, Step: 1, Speed: 30},
		Running: {First: 0, Last: 3, Step: 1, Speed: 6},
		Jump:    {First: 0, Last: 0, Step: 1, Speed: 0},
		Die:     {First: 0, Last: 5, Step: 1, Speed: 4, Freeze: true},
		Reborn:  {First: 0, Last: 1, Step: 1, Speed: 6},
	},
	"enemy": {
		Running: {First: 0, Last: 3, Step: 1, Speed: 8},
	},
	"gem": {
		Idle: {First: 0, Last: 7, Step: 1, Speed: 5},
	},
}
