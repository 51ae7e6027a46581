package components

import (
	cfg "github.com/automoto/gemrun/config"
	"github.com/yohamta/donburi"
)

// SFXRequest is a sound to play at a world position.
type SFXRequest struct {
	ID   cfg.SoundID
	X, Y float64
	// Positional sounds fade with distance from the camera
	Positional bool
}

// AudioData stores per-world audio state (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []SFXRequest
	// Every request ever queued, for headless runs and tests
	Played []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
