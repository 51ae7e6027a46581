package components

import (
	"github.com/yohamta/donburi"
)

// Outcome is how a level instance ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeTimeUp
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeTimeUp:
		return "time up"
	}
	return "playing"
}

// LevelStateData is observed by the scene that owns the level instance.
type LevelStateData struct {
	Outcome Outcome
	// Seconds on the clock when the level ended
	FinishedAt float64
	// Set by the scheduled reload; the scene rebuilds the level when it sees it
	ReloadRequested bool
	ReloadRequests  int
}

var LevelState = donburi.NewComponentType[LevelStateData]()
