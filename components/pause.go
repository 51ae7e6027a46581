package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state. While paused the level clock stops,
// so pending respawns and reloads wait too.
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
