// Package audio plays short synthesized cues for scene events.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/burtbyproxy/gridtactics/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// tone is a single blip: a start and end frequency swept over a duration.
type tone struct {
	from, to float64
	dur      time.Duration
}

var cueTones = map[game.Cue]tone{
	game.CueSelect:   {from: 660, to: 880, dur: 70 * time.Millisecond},
	game.CueDeselect: {from: 880, to: 520, dur: 90 * time.Millisecond},
	game.CueBlocked:  {from: 140, to: 110, dur: 60 * time.Millisecond},
	game.CueStep:     {from: 420, to: 420, dur: 25 * time.Millisecond},
}

// Cues implements game.Cues on the system speaker. Until Initialize
// succeeds every Play is a no-op.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewCues creates a player at volume in [0,1].
func NewCues(volume float64) *Cues {
	return &Cues{mixer: &beep.Mixer{}, volume: volume}
}

// Initialize opens the speaker and starts the mixer.
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close silences everything and stops the speaker.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	c.mixer.Clear()
	speaker.Close()
	c.initialized = false
}

// Play queues the blip for cue.
func (c *Cues) Play(cue game.Cue) {
	t, ok := cueTones[cue]
	if !ok {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(c.stream(t))
	speaker.Unlock()
}

func (c *Cues) stream(t tone) beep.Streamer {
	n := sampleRate.N(t.dur)
	s := beep.Take(n, newSweep(sampleRate, t.from, t.to, n))
	if c.volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(c.volume)}
}

// sweep is a sine whose frequency glides linearly over length samples,
// with a short attack and release to avoid clicks.
type sweep struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

func newSweep(sr beep.SampleRate, from, to float64, length int) *sweep {
	return &sweep{sr: sr, from: from, to: to, length: length}
}

func (g *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	edge := float64(g.sr) * 0.005
	for i := range samples {
		frac := 0.0
		if g.length > 0 {
			frac = math.Min(float64(g.pos)/float64(g.length), 1)
		}
		freq := g.from + (g.to-g.from)*frac
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		env := math.Min(float64(g.pos)/edge, 1)
		if rest := float64(g.length - g.pos); rest < edge {
			env = math.Min(env, math.Max(rest/edge, 0))
		}
		v := 0.4 * env * math.Sin(g.phase)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *sweep) Err() error { return nil }
