package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadOverrides_PartialDocument(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "gemrun.yaml")
	doc := []byte(`
game:
  tps: 30
death:
  respawn_delay: 1500ms
timer:
  reload_delay: 2s
player:
  run_speed: 200
`)
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadOverrides(path); err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}

	if C.TPS != 30 {
		t.Errorf("TPS = %d, want 30", C.TPS)
	}
	if C.Width != 640 {
		t.Errorf("Width = %d, want untouched 640", C.Width)
	}
	if Death.RespawnDelay != 1500*time.Millisecond {
		t.Errorf("RespawnDelay = %v, want 1.5s", Death.RespawnDelay)
	}
	if Death.Impulse != 10 {
		t.Errorf("Impulse = %v, want untouched 10", Death.Impulse)
	}
	if Timer.ReloadDelay != 2*time.Second {
		t.Errorf("ReloadDelay = %v, want 2s", Timer.ReloadDelay)
	}
	if Player.RunSpeed != 200 {
		t.Errorf("RunSpeed = %v, want 200", Player.RunSpeed)
	}
	if Player.JumpSpeed != 420 {
		t.Errorf("JumpSpeed = %v, want untouched 420", Player.JumpSpeed)
	}
}

func TestApplyOverrides_EmptyDocumentKeepsDefaults(t *testing.T) {
	t.Cleanup(Reset)

	if err := ApplyOverrides(nil); err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}
	if Death.RespawnDelay != 3*time.Second {
		t.Errorf("RespawnDelay = %v, want 3s", Death.RespawnDelay)
	}
	if Timer.ReloadDelay != time.Second {
		t.Errorf("ReloadDelay = %v, want 1s", Timer.ReloadDelay)
	}
}

func TestApplyOverrides_RejectsUnknownKey(t *testing.T) {
	t.Cleanup(Reset)

	err := ApplyOverrides([]byte("player:\n  run_sped: 10\n"))
	if err == nil {
		t.Fatal("expected an error for an unknown key")
	}
	if Player.RunSpeed != 150 {
		t.Errorf("RunSpeed changed to %v after a failed load", Player.RunSpeed)
	}
}

func TestApplyOverrides_RejectsInvalidValues(t *testing.T) {
	t.Cleanup(Reset)

	tests := []struct {
		name string
		doc  string
	}{
		{"zero tps", "game:\n  tps: 0\n"},
		{"negative respawn delay", "death:\n  respawn_delay: -1s\n"},
		{"smoothing above one", "camera:\n  follow_smoothing: 1.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ApplyOverrides([]byte(tt.doc))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}

	if C.TPS != 60 {
		t.Errorf("TPS = %d after rejected overrides, want 60", C.TPS)
	}
}
