package systems

import (
	"testing"
	"time"

	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
)

func TestClampCamera(t *testing.T) {
	cfg.Reset()

	tests := []struct {
		name         string
		x, y         float64
		levelW       float64
		levelH       float64
		wantX, wantY float64
	}{
		{"inside", 500, 300, 1280, 720, 500, 300},
		{"left and top edge", 100, 50, 1280, 720, 320, 180},
		{"right and bottom edge", 1200, 700, 1280, 720, 960, 540},
		{"level smaller than screen", 10, 10, 400, 200, 200, 100},
		{"level exactly screen sized", 0, 0, 640, 360, 320, 180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := clampCamera(tt.x, tt.y, tt.levelW, tt.levelH)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("clampCamera = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestUpdateCamera_HoldsStillWhileNotFollowing(t *testing.T) {
	lvl := flatLevel("camera")
	lvl.Width = 2000
	e, player := newTestWorld(t, lvl)
	entry, _ := components.Camera.First(e.World)
	camera := components.Camera.Get(entry)

	movePlayer(player, 1500, 296)
	camera.FollowEnabled = false
	before := camera.Position
	UpdateCamera(e)
	if camera.Position != before {
		t.Errorf("camera moved to %v while follow was disabled", camera.Position)
	}

	camera.FollowEnabled = true
	UpdateCamera(e)
	if camera.Position.X <= before.X {
		t.Errorf("camera X = %v, should move toward the player", camera.Position.X)
	}
}

func TestScreenShake_Expires(t *testing.T) {
	e, _ := newTestWorld(t, flatLevel("shake"))
	entry, _ := components.Camera.First(e.World)
	camera := components.Camera.Get(entry)

	TriggerScreenShake(e.World, 3, 4)
	for i := 0; i < 4; i++ {
		UpdateCamera(e)
	}
	if entry.HasComponent(components.ScreenShake) {
		t.Fatal("shake should end after its duration")
	}

	UpdateCamera(e)
	if camera.ShakeX != 0 || camera.ShakeY != 0 {
		t.Errorf("shake offset = (%v, %v) after expiry", camera.ShakeX, camera.ShakeY)
	}
}

func TestAttenuate(t *testing.T) {
	tests := []struct {
		name                     string
		volume, distance, rangeV float64
		want                     float64
	}{
		{"at the listener", 0.8, 0, 400, 0.8},
		{"half way", 0.8, 200, 400, 0.4},
		{"at the edge", 0.8, 400, 400, 0},
		{"beyond range", 0.8, 900, 400, 0},
		{"no range", 0.8, 900, 0, 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := attenuate(tt.volume, tt.distance, tt.rangeV); got != tt.want {
				t.Errorf("attenuate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateAudio_DrainsQueueHeadless(t *testing.T) {
	e, _ := newTestWorld(t, flatLevel("audio"))

	PlaySFX(e.World, cfg.SoundGem, 10, 10)
	PlayUISFX(e.World, cfg.SoundMenuSelect)
	UpdateAudio(e)

	audio := GetOrCreateAudio(e.World)
	if len(audio.PendingSFX) != 0 {
		t.Errorf("PendingSFX = %v, want drained", audio.PendingSFX)
	}
	if len(audio.Played) != 2 {
		t.Errorf("Played = %v, want both sounds recorded", audio.Played)
	}
}

func TestHUDLines(t *testing.T) {
	lvl := flatLevel("hud")
	lvl.TotalSeconds = 45
	lvl.Gems = append(lvl.Gems, lvl.Gems[0])
	e, player := newTestWorld(t, lvl)

	timeLine, gemLine, deathLine, warn := HUDLines(e)
	if timeLine != "TIME 45" || gemLine != "GEMS 0/2" || deathLine != "DEATHS 0" || warn {
		t.Errorf("HUDLines = %q %q %q %v", timeLine, gemLine, deathLine, warn)
	}

	components.Respawn.Get(player).Deaths = 3
	timer := components.LevelTimer.Get(levelEntry(t, e))
	timer.Elapsed += 40 * time.Second

	timeLine, _, deathLine, warn = HUDLines(e)
	if timeLine != "TIME 5" || deathLine != "DEATHS 3" || !warn {
		t.Errorf("late HUDLines = %q %q %v", timeLine, deathLine, warn)
	}
}
