package components

import (
	"testing"
	"time"
)

func TestCollectibleRegistry(t *testing.T) {
	var r CollectibleRegistryData
	r.Register()
	r.Register()

	if r.Total != 2 || r.Remaining != 2 {
		t.Fatalf("after two registrations: %+v", r)
	}

	if !r.Collect(1) || !r.Collect(3) {
		t.Fatal("Collect should succeed while gems remain")
	}
	if r.Remaining != 0 || r.Score != 4 {
		t.Errorf("after collecting both: %+v", r)
	}

	if r.Collect(1) {
		t.Error("Collect with nothing remaining should report false")
	}
	if r.Remaining != 0 || r.Score != 4 {
		t.Errorf("extra Collect changed the registry: %+v", r)
	}
}

func TestLevelTimerRemaining(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		elapsed time.Duration
		want    int
	}{
		{"start", 60, 0, 60},
		{"partial second rounds down elapsed", 60, 900 * time.Millisecond, 60},
		{"one second", 60, time.Second, 59},
		{"just before the end", 60, 59900 * time.Millisecond, 1},
		{"exactly at the end", 60, 60 * time.Second, 0},
		{"past the end", 60, 75 * time.Second, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := LevelTimerData{Total: tt.total, Elapsed: tt.elapsed}
			if got := timer.Remaining(); got != tt.want {
				t.Errorf("Remaining() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPhaseAndOutcomeNames(t *testing.T) {
	if PhaseWaiting.String() != "waiting" {
		t.Errorf("PhaseWaiting = %q", PhaseWaiting.String())
	}
	if OutcomeWon.String() != "won" || OutcomeNone.String() != "playing" {
		t.Errorf("unexpected outcome names %q %q", OutcomeWon, OutcomeNone)
	}

	r := RespawnData{Phase: PhaseDying}
	if r.Alive() {
		t.Error("dying actor reported alive")
	}
}
