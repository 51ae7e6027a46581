package components

import (
	"github.com/automoto/gemrun/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int // ticks spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()
