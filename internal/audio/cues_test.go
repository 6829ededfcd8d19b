package audio

import (
	"math"
	"testing"

	"github.com/burtbyproxy/gridtactics/internal/game"
)

func TestEveryCueHasATone(t *testing.T) {
	for _, cue := range []game.Cue{game.CueSelect, game.CueDeselect, game.CueBlocked, game.CueStep} {
		if _, ok := cueTones[cue]; !ok {
			t.Fatalf("expected a tone for %s", cue)
		}
	}
}

func TestPlayBeforeInitializeIsNoop(t *testing.T) {
	c := NewCues(0.5)
	c.Play(game.CueSelect)
	if c.mixer.Len() != 0 {
		t.Fatalf("expected nothing queued, got %d", c.mixer.Len())
	}
	c.Close()
}

func TestSweepStaysInRangeAndFades(t *testing.T) {
	n := sampleRate.N(cueTones[game.CueSelect].dur)
	g := newSweep(sampleRate, 660, 880, n)
	buf := make([][2]float64, n)
	got, ok := g.Stream(buf)
	if !ok || got != n {
		t.Fatalf("expected %d samples, got %d ok=%v", n, got, ok)
	}
	for i, s := range buf {
		if math.Abs(s[0]) > 0.4 || s[0] != s[1] {
			t.Fatalf("sample %d out of range or unbalanced: %v", i, s)
		}
	}
	if buf[0][0] != 0 {
		t.Fatalf("expected silent first sample, got %v", buf[0][0])
	}
	if math.Abs(buf[n-1][0]) > 0.01 {
		t.Fatalf("expected faded last sample, got %v", buf[n-1][0])
	}
}
