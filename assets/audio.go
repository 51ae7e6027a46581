package assets

import (
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/gemrun/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound effects
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // 16-bit stereo PCM
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect into the cache without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	_, err := l.pcm(id)
	return err
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(data), nil
}

func (l *AudioLoader) pcm(id cfg.SoundID) ([]byte, error) {
	if data, ok := l.sfxCache[id]; ok {
		return data, nil
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return nil, fmt.Errorf("no tone defined for sound %d", id)
	}
	data := SynthesizeTone(tone, l.context.SampleRate())
	l.sfxCache[id] = data
	return data, nil
}

// SynthesizeTone renders a square wave sweeping linearly from StartHz to
// EndHz as 16-bit little-endian stereo PCM. A short linear fade-out
// avoids a click at the end.
func SynthesizeTone(t cfg.Tone, sampleRate int) []byte {
	n := int(t.Seconds * float64(sampleRate))
	if n <= 0 {
		return nil
	}

	out := make([]byte, n*4)
	fade := n / 10
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.StartHz + (t.EndHz-t.StartHz)*progress
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		amp := t.Volume
		if remaining := n - i; fade > 0 && remaining < fade {
			amp *= float64(remaining) / float64(fade)
		}

		v := amp
		if phase >= 0.5 {
			v = -amp
		}
		s := int16(v * math.MaxInt16 * 0.5)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}
