package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Player sounds
	SoundDeath
	SoundJump
	SoundReborn
	// Pickup/combat sounds
	SoundGem
	SoundStomp
	// UI sounds
	SoundMenuSelect
	SoundLevelEnd
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int     `yaml:"sample_rate"`
	DefaultSFXVol float64 `yaml:"default_sfx_volume"`
	// Sounds further than this from the camera center are inaudible
	HearingRange float64 `yaml:"hearing_range"`
}

// Tone describes a synthesized sound effect: a square wave sliding
// from StartHz to EndHz over Seconds.
type Tone struct {
	StartHz float64
	EndHz   float64
	Seconds float64
	Volume  float64
}

// SoundConfig maps sound IDs to the tones that are synthesized for them
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func resetAudio() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
		HearingRange:  640,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundDeath:      {StartHz: 440, EndHz: 110, Seconds: 0.45, Volume: 0.8},
			SoundJump:       {StartHz: 300, EndHz: 600, Seconds: 0.12, Volume: 0.5},
			SoundReborn:     {StartHz: 220, EndHz: 880, Seconds: 0.3, Volume: 0.6},
			SoundGem:        {StartHz: 880, EndHz: 1320, Seconds: 0.1, Volume: 0.6},
			SoundStomp:      {StartHz: 180, EndHz: 90, Seconds: 0.15, Volume: 0.9},
			SoundMenuSelect: {StartHz: 660, EndHz: 660, Seconds: 0.08, Volume: 0.5},
			SoundLevelEnd:   {StartHz: 523, EndHz: 1046, Seconds: 0.6, Volume: 0.7},
		},
	}
}
