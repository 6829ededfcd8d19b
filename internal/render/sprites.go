package render

import (
	"time"

	"github.com/burtbyproxy/gridtactics/internal/game"
)

// Animation describes a looping frame sequence.
type Animation struct {
	Start, End int
	FPS        float64
	Loop       bool
}

// Animations known to the selector sprite.
var Animations = map[string]Animation{
	game.AnimActive: {Start: 2, End: 6, FPS: 10, Loop: true},
	game.AnimIdle:   {Start: 0, End: 0},
}

// Sprite is the visual state of one unit.
type Sprite struct {
	Glyph byte
	FG    uint8
	Frame string
}

// Sprites is the visual registry for a scene. It remembers which sprite
// each unit uses, which one the ghost clones, and the cursor animation.
type Sprites struct {
	units    map[int]Sprite
	ghost    *Sprite
	anim     string
	animFrom time.Time
	clock    func() time.Time
}

// NewSprites creates an empty registry. clock defaults to time.Now.
func NewSprites(clock func() time.Time) *Sprites {
	if clock == nil {
		clock = time.Now
	}
	return &Sprites{units: map[int]Sprite{}, anim: game.AnimIdle, clock: clock}
}

// SpawnUnit registers a sprite for u.
func (s *Sprites) SpawnUnit(u game.UnitView) {
	s.units[u.ID] = Sprite{Glyph: '@', FG: UnitColor(u.ID), Frame: u.Sprite}
}

// CloneGhost copies u's sprite as the ghost.
func (s *Sprites) CloneGhost(u game.UnitView) {
	sp := s.Unit(u.ID)
	s.ghost = &sp
}

// DestroyGhost drops the ghost sprite.
func (s *Sprites) DestroyGhost() {
	s.ghost = nil
}

// PlayCursor restarts the cursor on the named animation.
func (s *Sprites) PlayCursor(anim string) {
	s.anim = anim
	s.animFrom = s.clock()
}

// Unit returns the sprite registered for id.
func (s *Sprites) Unit(id int) Sprite {
	if sp, ok := s.units[id]; ok {
		return sp
	}
	return Sprite{Glyph: '?', FG: ColorWhite}
}

// Ghost returns the ghost sprite, if one exists.
func (s *Sprites) Ghost() (Sprite, bool) {
	if s.ghost == nil {
		return Sprite{}, false
	}
	return *s.ghost, true
}

// CursorAnim returns the playing cursor animation.
func (s *Sprites) CursorAnim() string { return s.anim }

// CursorFrame returns the cursor frame at now.
func (s *Sprites) CursorFrame(now time.Time) int {
	a, ok := Animations[s.anim]
	if !ok || a.FPS <= 0 || a.End <= a.Start {
		return a.Start
	}
	n := a.End - a.Start + 1
	step := int(now.Sub(s.animFrom).Seconds() * a.FPS)
	if step < 0 {
		step = 0
	}
	if !a.Loop && step >= n {
		return a.End
	}
	return a.Start + step%n
}
