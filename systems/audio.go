package systems

import (
	"math"
	"sync"

	"github.com/automoto/gemrun/assets"
	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes.
// Headless runs never enable output, so no audio context is created.
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioOutput        bool
	audioInitOnce      sync.Once
)

// EnableAudioOutput creates the shared audio context and decodes every sound
// effect up front. Until it is called, sound requests are only recorded.
func EnableAudioOutput() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
		for id := range cfg.Sound.Tones {
			if err := globalAudioLoader.PreloadSFX(id); err != nil {
				log.Warn("failed to preload sound", "id", id, "err", err)
			}
		}
		audioOutput = true
	})
}

// UpdateAudio plays the sounds queued this tick.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	camX, camY, hasCamera := cameraCenter(e.World)
	for _, req := range audioData.PendingSFX {
		volume := audioData.SFXVolume
		if req.Positional && hasCamera {
			volume = attenuate(volume, math.Hypot(req.X-camX, req.Y-camY), cfg.Audio.HearingRange)
		}
		playSFX(req.ID, volume)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// attenuate scales volume down linearly with distance, reaching silence at
// hearingRange. A non-positive range disables attenuation.
func attenuate(volume, distance, hearingRange float64) float64 {
	if hearingRange <= 0 {
		return volume
	}
	falloff := 1 - distance/hearingRange
	if falloff <= 0 {
		return 0
	}
	if falloff > 1 {
		falloff = 1
	}
	return volume * falloff
}

func playSFX(soundID cfg.SoundID, volume float64) {
	if !audioOutput || volume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		log.Debug("sound unavailable", "id", soundID, "err", err)
		return
	}

	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect heard at the given world position.
func PlaySFX(w donburi.World, sound cfg.SoundID, x, y float64) {
	audioData := GetOrCreateAudio(w)
	audioData.PendingSFX = append(audioData.PendingSFX, components.SFXRequest{
		ID: sound, X: x, Y: y, Positional: true,
	})
	audioData.Played = append(audioData.Played, sound)
}

// PlayUISFX queues a sound effect that ignores the camera position.
func PlayUISFX(w donburi.World, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(w)
	audioData.PendingSFX = append(audioData.PendingSFX, components.SFXRequest{ID: sound})
	audioData.Played = append(audioData.Played, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0) for worlds created afterwards
// and for the given world.
func SetSFXVolume(w donburi.World, volume float64) {
	globalSFXVolume = volume
	GetOrCreateAudio(w).SFXVolume = volume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this world, creating it if needed
func GetOrCreateAudio(w donburi.World) *components.AudioData {
	entry, ok := components.Audio.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  globalSFXVolume,
			PendingSFX: make([]components.SFXRequest, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// cameraCenter returns the world position at the middle of the screen.
func cameraCenter(w donburi.World) (float64, float64, bool) {
	entry, ok := components.Camera.First(w)
	if !ok {
		return 0, 0, false
	}
	cam := components.Camera.Get(entry)
	return cam.Position.X, cam.Position.Y, true
}
