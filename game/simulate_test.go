package game

import (
	"testing"

	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/automoto/gemrun/shared/leveldata"
	"github.com/automoto/gemrun/systems"
)

func corridor(name string) *leveldata.Level {
	return &leveldata.Level{
		Name:         name,
		Width:        640,
		Height:       360,
		TotalSeconds: 30,
		Terrain:      []leveldata.Rect{{X: 0, Y: 320, W: 640, H: 40}},
		PlayerSpawn:  leveldata.Point{X: 48, Y: 296},
	}
}

func setup(t *testing.T) {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	systems.SetRecordStore(systems.NewMemoryStore())
}

func TestSimulate_CollectsEveryGem(t *testing.T) {
	setup(t)
	lvl := corridor("gems")
	lvl.Gems = []leveldata.Rect{
		{X: 150, Y: 300, W: 10, H: 10},
		{X: 300, Y: 300, W: 10, H: 10},
		{X: 450, Y: 300, W: 10, H: 10},
	}

	res := Simulate(lvl, 10*cfg.C.TPS, RunRight(0))

	if res.Outcome != components.OutcomeWon {
		t.Fatalf("Outcome = %v, want won (%+v)", res.Outcome, res)
	}
	if res.GemsCollected != 3 || res.GemsTotal != 3 {
		t.Errorf("gems = %d/%d, want 3/3", res.GemsCollected, res.GemsTotal)
	}
	if !res.Reloaded {
		t.Error("a finished level should ask to be reloaded")
	}
	if res.Deaths != 0 {
		t.Errorf("Deaths = %d, want 0", res.Deaths)
	}

	gemSounds := 0
	for _, s := range res.Sounds {
		if s == cfg.SoundGem {
			gemSounds++
		}
	}
	if gemSounds != 3 {
		t.Errorf("gem sound played %d times, want 3", gemSounds)
	}

	rec, ok := systems.LoadRecord("gems")
	if !ok || rec.Wins != 1 || rec.BestSeconds <= 0 {
		t.Errorf("record = %+v (found %v)", rec, ok)
	}
}

func TestSimulate_TrapKillsAndRespawns(t *testing.T) {
	setup(t)
	lvl := corridor("trap")
	lvl.Traps = []leveldata.Rect{{X: 200, Y: 310, W: 20, H: 10}}
	lvl.Gems = []leveldata.Rect{{X: 600, Y: 40, W: 10, H: 10}}

	// The first death lands just before one second in; four and a half
	// seconds covers the 3s wait but not the second run into the trap.
	res := Simulate(lvl, 4*cfg.C.TPS+cfg.C.TPS/2, RunRight(0))

	if res.Deaths != 1 {
		t.Errorf("Deaths = %d, want 1", res.Deaths)
	}
	if res.Outcome != components.OutcomeNone || res.Reloaded {
		t.Errorf("level should still be running: %+v", res)
	}

	var deathSounds, rebornSounds int
	for _, s := range res.Sounds {
		switch s {
		case cfg.SoundDeath:
			deathSounds++
		case cfg.SoundReborn:
			rebornSounds++
		}
	}
	if deathSounds != 1 || rebornSounds != 1 {
		t.Errorf("death/reborn sounds = %d/%d, want 1/1", deathSounds, rebornSounds)
	}
}

func TestSimulate_TimeUp(t *testing.T) {
	setup(t)
	lvl := corridor("timeup")
	lvl.TotalSeconds = 2
	lvl.Gems = []leveldata.Rect{{X: 600, Y: 40, W: 10, H: 10}}

	res := Simulate(lvl, 10*cfg.C.TPS, nil)

	if res.Outcome != components.OutcomeTimeUp {
		t.Fatalf("Outcome = %v, want time up", res.Outcome)
	}
	if !res.Reloaded {
		t.Fatal("expected a reload request")
	}
	// Two seconds on the clock plus the one second reload delay.
	if res.Seconds != 3 || res.Ticks != 3*cfg.C.TPS {
		t.Errorf("Seconds = %v after %d ticks, want 3 after %d", res.Seconds, res.Ticks, 3*cfg.C.TPS)
	}

	rec, _ := systems.LoadRecord("timeup")
	if rec.Losses != 1 {
		t.Errorf("record = %+v, want one loss", rec)
	}
}

func TestInstance_CloseIsIdempotent(t *testing.T) {
	setup(t)
	in := NewInstance(corridor("close"))
	in.Close()
	in.Close()

	if in.ReloadRequested() {
		t.Error("a fresh instance should not ask for a reload")
	}
	if got := in.State().Outcome; got != components.OutcomeNone {
		t.Errorf("Outcome = %v, want none", got)
	}
}
