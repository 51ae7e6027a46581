package animations

import "testing"

func TestAnimation_LoopsBackToFirst(t *testing.T) {
	a := NewAnimation(0, 2, 1, 1)

	var frames []int
	for i := 0; i < 8; i++ {
		a.Update()
		frames = append(frames, a.Frame())
	}

	// Two ticks per frame: the counter starts at 1 and advances when it drops below 0
	want := []int{0, 1, 1, 2, 2, 0, 0, 1}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("frames = %v, want %v", frames, want)
		}
	}
	if !a.Looped {
		t.Error("Looped should be set after wrapping")
	}
}

func TestAnimation_FreezeOnComplete(t *testing.T) {
	a := NewAnimation(0, 1, 1, 0.5)
	a.FreezeOnComplete = true
	for i := 0; i < 10; i++ {
		a.Update()
	}
	if a.Frame() != 1 {
		t.Errorf("Frame = %d, want frozen on 1", a.Frame())
	}

	a.Restart()
	if a.Frame() != 0 || a.Looped {
		t.Errorf("Restart left frame=%d looped=%v", a.Frame(), a.Looped)
	}
}

func TestAnimation_ZeroSpeedHolds(t *testing.T) {
	a := NewAnimation(3, 5, 1, 0)
	a.Update()
	a.Update()
	if a.Frame() != 3 {
		t.Errorf("Frame = %d, want 3", a.Frame())
	}
	if a.Progress() != 0 {
		t.Errorf("Progress = %v, want 0", a.Progress())
	}
}
