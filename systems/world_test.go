package systems

import (
	"testing"

	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/automoto/gemrun/shared/leveldata"
	"github.com/automoto/gemrun/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testTPS gives a 100ms tick, which adds up exactly in time.Duration.
const testTPS = 10

// flatLevel is a 640x360 room with the floor at y=320. The player stands
// on the floor at x=48 and one gem sits out of reach.
func flatLevel(name string) *leveldata.Level {
	return &leveldata.Level{
		Name:         name,
		Width:        640,
		Height:       360,
		TotalSeconds: 600,
		Terrain:      []leveldata.Rect{{X: 0, Y: 320, W: 640, H: 40}},
		Gems:         []leveldata.Rect{{X: 600, Y: 20, W: 10, H: 10}},
		PlayerSpawn:  leveldata.Point{X: 48, Y: 296},
	}
}

// newTestWorld builds lvl into a fresh world with the handlers registered
// and an in-memory record store.
func newTestWorld(t *testing.T, lvl *leveldata.Level) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	return newTestWorldAt(t, lvl, testTPS)
}

// newTestWorldAt is newTestWorld with the clock running at tps.
func newTestWorldAt(t *testing.T, lvl *leveldata.Level, tps int) (*ecs.ECS, *donburi.Entry) {
	t.Helper()

	cfg.Reset()
	cfg.C.TPS = tps
	t.Cleanup(cfg.Reset)

	SetRecordStore(NewMemoryStore())

	e := ecs.NewECS(donburi.NewWorld())
	player := factory.BuildLevel(e, lvl)
	RegisterHandlers(e.World)
	t.Cleanup(func() { UnregisterHandlers(e.World) })

	return e, player
}

// gameRates are the tick rates the timing tests run at on top of testTPS.
var gameRates = []int{30, 60, 144}

// tick runs the gameplay systems in the same order the game does, minus
// input polling and rendering.
func tick(e *ecs.ECS) {
	UpdateClock(e)
	UpdatePlayer(e)
	UpdatePatrol(e)
	UpdatePhysics(e)
	UpdateObjects(e)
	UpdateContacts(e)
	DispatchEvents(e)
	UpdateLevelTimer(e)
	UpdateEffects(e)
	UpdateAnimator(e)
	UpdateCamera(e)
}

func movePlayer(player *donburi.Entry, x, y float64) {
	obj := components.Object.Get(player)
	obj.X, obj.Y = x, y
	obj.Update()
}

func levelEntry(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := components.LevelState.First(e.World)
	if !ok {
		t.Fatal("level entity missing")
	}
	return entry
}

func played(e *ecs.ECS, id cfg.SoundID) int {
	n := 0
	for _, s := range GetOrCreateAudio(e.World).Played {
		if s == id {
			n++
		}
	}
	return n
}

func cameraFollowing(t *testing.T, e *ecs.ECS) bool {
	t.Helper()
	entry, ok := components.Camera.First(e.World)
	if !ok {
		t.Fatal("camera missing")
	}
	return components.Camera.Get(entry).FollowEnabled
}
