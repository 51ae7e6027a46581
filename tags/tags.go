package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Terrain  = donburi.NewTag().SetName("Terrain")
	Platform = donburi.NewTag().SetName("Platform")
	Trap     = donburi.NewTag().SetName("Trap")
	Gem      = donburi.NewTag().SetName("Gem")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Effect   = donburi.NewTag().SetName("Effect")
)

// Resolv tags for collision
const (
	ResolvSolid    = "solid"
	ResolvPlatform = "platform"
	ResolvTrap     = "trap"
	ResolvGem      = "gem"
	ResolvPlayer   = "Player"
	ResolvEnemy    = "Enemy"
	ResolvStomp    = "stomp"
)
