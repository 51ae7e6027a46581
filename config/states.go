package config

// StateID identifies the visual state an actor is drawn in
type StateID int

const (
	StateNone StateID = iota
	Idle
	Running
	Jump
	Die
	Reborn
)

// Animator trigger and parameter names
const (
	TriggerDie    = "die"
	TriggerReborn = "reborn"
	TriggerJump   = "isJumping"
	ParamRunning  = "isRunning"
	ParamGrounded = "isGrounded"
)

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Running:   "running",
	Jump:      "jump",
	Die:       "die",
	Reborn:    "reborn",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
