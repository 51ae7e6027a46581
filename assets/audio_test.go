package assets

import (
	"encoding/binary"
	"testing"

	cfg "github.com/automoto/gemrun/config"
)

func TestSynthesizeTone_Length(t *testing.T) {
	tone := cfg.Tone{StartHz: 440, EndHz: 440, Seconds: 0.5, Volume: 1}
	data := SynthesizeTone(tone, 1000)

	// 500 samples, 2 channels, 2 bytes each
	if len(data) != 2000 {
		t.Fatalf("len = %d, want 2000", len(data))
	}
}

func TestSynthesizeTone_StereoAndFade(t *testing.T) {
	tone := cfg.Tone{StartHz: 100, EndHz: 200, Seconds: 1, Volume: 0.8}
	data := SynthesizeTone(tone, 8000)

	for i := 0; i < len(data); i += 4 {
		l := binary.LittleEndian.Uint16(data[i:])
		r := binary.LittleEndian.Uint16(data[i+2:])
		if l != r {
			t.Fatalf("sample %d: left %d != right %d", i/4, l, r)
		}
	}

	last := int16(binary.LittleEndian.Uint16(data[len(data)-4:]))
	if last > 100 || last < -100 {
		t.Errorf("last sample %d should be faded out", last)
	}
}

func TestSynthesizeTone_Empty(t *testing.T) {
	if data := SynthesizeTone(cfg.Tone{Seconds: 0}, 44100); data != nil {
		t.Errorf("expected nil for zero-length tone, got %d bytes", len(data))
	}
}

func TestEveryToneHasPositiveLength(t *testing.T) {
	for id, tone := range cfg.Sound.Tones {
		if len(SynthesizeTone(tone, cfg.Audio.SampleRate)) == 0 {
			t.Errorf("sound %d renders to nothing", id)
		}
	}
}
