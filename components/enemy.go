package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// EnemyData links an enemy body to the head zone the player can stomp.
type EnemyData struct {
	StompZone *resolv.Object
}

var Enemy = donburi.NewComponentType[EnemyData]()
