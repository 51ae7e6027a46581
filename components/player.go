package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// +1 facing right, -1 facing left
	Facing float64
	// Set when the horizontal input axis moved the player this tick
	Running bool
	// Jump was requested this tick and the player was grounded
	Jumped bool
}

var Player = donburi.NewComponentType[PlayerData]()
