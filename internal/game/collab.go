package game

// Visuals owns the sprites the scene asks for.
type Visuals interface {
	SpawnUnit(u UnitView)
	CloneGhost(u UnitView)
	DestroyGhost()
	PlayCursor(anim string)
}

// DetailPanel shows the sheet of the unit under the cursor.
type DetailPanel interface {
	Open(u UnitView)
	Close()
}

// Cue is a sound or feedback event.
type Cue uint8

const (
	CueSelect Cue = iota
	CueDeselect
	CueBlocked
	CueStep
)

var cueNames = [...]string{"select", "deselect", "blocked", "step"}

func (c Cue) String() string {
	if int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// Cues plays feedback for scene events.
type Cues interface {
	Play(c Cue)
}

type nopVisuals struct{}

func (nopVisuals) SpawnUnit(UnitView)  {}
func (nopVisuals) CloneGhost(UnitView) {}
func (nopVisuals) DestroyGhost()       {}
func (nopVisuals) PlayCursor(string)   {}

type nopPanel struct{}

func (nopPanel) Open(UnitView) {}
func (nopPanel) Close()        {}

type nopCues struct{}

func (nopCues) Play(Cue) {}
