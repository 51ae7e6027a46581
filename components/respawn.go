package components

import (
	"github.com/yohamta/donburi"
)

// RespawnPhase tracks where an actor is in its death/respawn sequence.
type RespawnPhase int

const (
	PhaseAlive RespawnPhase = iota
	PhaseDying
	PhaseWaiting
	PhaseReborn
)

func (p RespawnPhase) String() string {
	switch p {
	case PhaseAlive:
		return "alive"
	case PhaseDying:
		return "dying"
	case PhaseWaiting:
		return "waiting"
	case PhaseReborn:
		return "reborn"
	}
	return "unknown"
}

// RespawnData belongs to an actor that dies on hazards and comes back at
// a fixed spawn point.
type RespawnData struct {
	SpawnX, SpawnY float64
	Phase          RespawnPhase

	Deaths int
	// Hazard contacts that arrived while a sequence was already running
	IgnoredContacts int
}

// Alive reports whether the actor can react to hazards.
func (r *RespawnData) Alive() bool {
	return r.Phase == PhaseAlive
}

var Respawn = donburi.NewComponentType[RespawnData]()
