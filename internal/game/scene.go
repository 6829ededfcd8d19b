package game

import (
	"fmt"
	"sort"
	"time"

	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"

	"github.com/burtbyproxy/gridtactics/internal/input"
	"github.com/burtbyproxy/gridtactics/internal/world"
)

// State is the selection state of the scene.
type State uint8

const (
	Idle State = iota
	Selected
)

func (s State) String() string {
	if s == Selected {
		return "selected"
	}
	return "idle"
}

// DefaultReplayInterval is the wait between replayed steps.
const DefaultReplayInterval = 75 * time.Millisecond

// Options configures a Scene. Zero values fall back to defaults.
type Options struct {
	Units          []UnitSpec
	Cursor         Position
	Passable       world.Passability
	Input          input.Settings
	ReplayInterval time.Duration
	Mappings       input.MappingTable

	Visuals Visuals
	Panel   DetailPanel
	Cues    Cues
	Logger  *zap.SugaredLogger
	Log     *MessageLog
}

// Scene owns the cursor, the units and the selection state machine.
// All methods must be called from the tick goroutine.
type Scene struct {
	ECS  *ecs.World
	Grid *world.TileGrid
	Log  *MessageLog

	validator  *Validator
	normalizer *input.Normalizer
	actions    *input.ActionReader
	scheduler  *Scheduler
	mappings   input.MappingTable
	interval   time.Duration

	controller *input.Controller

	state    State
	cursor   ecs.Entity
	units    []ecs.Entity
	selected ecs.Entity
	ghost    ecs.Entity
	viewing  ecs.Entity
	hasView  bool
	replays  map[ecs.Entity]*Task

	posMap    *ecs.Map[Position]
	unitMap   *ecs.Map[Unit]
	pathMap   *ecs.Map[Path]
	cursorMap *ecs.Map[Cursor]
	ghostMap  *ecs.Map2[Position, Ghost]
	unitQuery *ecs.Filter2[Position, Unit]

	visuals Visuals
	panel   DetailPanel
	cues    Cues
	logger  *zap.SugaredLogger
}

// NewScene creates a scene on grid and spawns the units and the cursor.
func NewScene(grid *world.TileGrid, opts Options) *Scene {
	w := ecs.NewWorld(64)

	s := &Scene{
		ECS:        w,
		Grid:       grid,
		Log:        opts.Log,
		validator:  NewValidator(grid, opts.Passable, grid.TileWidth, grid.TileHeight),
		normalizer: input.NewNormalizer(withInputDefaults(opts.Input)),
		actions:    input.NewActionReader(),
		scheduler:  NewScheduler(),
		mappings:   opts.Mappings,
		interval:   opts.ReplayInterval,
		replays:    make(map[ecs.Entity]*Task),
		posMap:     ecs.NewMap[Position](w),
		unitMap:    ecs.NewMap[Unit](w),
		pathMap:    ecs.NewMap[Path](w),
		cursorMap:  ecs.NewMap[Cursor](w),
		ghostMap:   ecs.NewMap2[Position, Ghost](w),
		unitQuery:  ecs.NewFilter2[Position, Unit](w),
		visuals:    opts.Visuals,
		panel:      opts.Panel,
		cues:       opts.Cues,
		logger:     opts.Logger,
	}
	if s.Log == nil {
		s.Log = NewMessageLog(50, 40)
	}
	if s.mappings == nil {
		s.mappings = input.DefaultMappings()
	}
	if s.interval <= 0 {
		s.interval = DefaultReplayInterval
	}
	if s.visuals == nil {
		s.visuals = nopVisuals{}
	}
	if s.panel == nil {
		s.panel = nopPanel{}
	}
	if s.cues == nil {
		s.cues = nopCues{}
	}
	if s.logger == nil {
		s.logger = zap.NewNop().Sugar()
	}

	unitBuilder := ecs.NewMap3[Position, Unit, Path](w)
	for _, spec := range opts.Units {
		e := unitBuilder.NewEntity(
			&Position{X: spec.X, Y: spec.Y},
			&Unit{ID: spec.ID, Char: spec.Char, Sprite: spec.Sprite},
			&Path{},
		)
		s.units = append(s.units, e)
		s.visuals.SpawnUnit(s.view(e))
	}

	s.cursor = ecs.NewMap2[Position, Cursor](w).NewEntity(
		&opts.Cursor,
		&Cursor{Anim: AnimIdle},
	)
	s.visuals.PlayCursor(AnimIdle)

	s.logger.Infow("scene ready",
		"units", len(s.units),
		"map", fmt.Sprintf("%dx%d", grid.Width, grid.Height),
		"cursor", opts.Cursor)
	s.Log.Add("Move the cursor onto a unit and press confirm.", MsgInfo)
	return s
}

func withInputDefaults(in input.Settings) input.Settings {
	def := input.DefaultSettings()
	if in.Throttle <= 0 {
		in.Throttle = def.Throttle
	}
	if in.Sensitivity <= 0 {
		in.Sensitivity = def.Sensitivity
	}
	return in
}

// Tick runs one update: due replay steps, directional input, actions and
// the unit-under-cursor check.
func (s *Scene) Tick(now time.Time, dev input.Device) {
	s.scheduler.Advance(now)

	for _, d := range s.normalizer.Poll(now, dev, s.controller != nil) {
		s.Move(d)
	}

	for _, a := range s.actions.Poll(dev, s.controller) {
		if a == input.ActionConfirm {
			s.Confirm(now)
		}
	}

	if s.state == Idle {
		s.updateViewing()
	}
}

// Move validates one step of the cursor. On success the cursor, the ghost
// and the selected unit's path are all updated; on failure nothing changes.
func (s *Scene) Move(d input.Direction) bool {
	pos := s.posMap.Get(s.cursor)
	delta, ok := s.validator.Step(d, *pos)
	if !ok {
		s.logger.Debugw("step blocked", "dir", d, "x", pos.X, "y", pos.Y)
		s.cues.Play(CueBlocked)
		return false
	}

	*pos = pos.Add(delta)
	if s.state == Selected {
		ghost := s.posMap.Get(s.ghost)
		*ghost = ghost.Add(delta)
		path := s.pathMap.Get(s.selected)
		path.Steps = append(path.Steps, delta)
	}
	return true
}

// Confirm toggles selection. From Idle it selects the unit under the cursor,
// if any; from Selected it hands the recorded path to the unit for replay.
func (s *Scene) Confirm(now time.Time) {
	if s.state == Selected {
		s.deselect(now)
		return
	}
	if e, ok := s.unitAtCursor(); ok {
		s.selectUnit(e)
	}
}

func (s *Scene) selectUnit(e ecs.Entity) {
	unit := s.unitMap.Get(e)
	if task, ok := s.replays[e]; ok {
		task.Cancel()
		delete(s.replays, e)
		s.logger.Infow("replay cancelled", "unit", unit.ID)
	}

	pos := *s.posMap.Get(e)
	s.selected = e
	s.ghost = s.ghostMap.NewEntity(&pos, &Ghost{Of: e})
	s.state = Selected
	s.setCursorAnim(AnimActive)

	s.visuals.CloneGhost(s.view(e))
	s.cues.Play(CueSelect)
	s.logger.Infow("unit selected", "unit", unit.ID, "x", pos.X, "y", pos.Y)
	s.Log.Add(fmt.Sprintf("%s selected.", unit.Char.Name), MsgAction)
}

func (s *Scene) deselect(now time.Time) {
	e := s.selected
	unit := s.unitMap.Get(e)
	path := s.pathMap.Get(e)
	steps := path.Steps
	path.Steps = nil

	s.ECS.RemoveEntity(s.ghost)
	s.visuals.DestroyGhost()
	s.panel.Close()
	s.hasView = false
	s.state = Idle
	s.setCursorAnim(AnimIdle)

	s.cues.Play(CueDeselect)
	s.logger.Infow("unit released", "unit", unit.ID, "steps", len(steps))
	s.Log.Add(fmt.Sprintf("%s moves %d steps.", unit.Char.Name, len(steps)), MsgAction)

	s.replay(e, steps, now)
}

// replay applies steps to e one at a time, interval apart. The first step
// applies immediately. An empty remainder ends the replay.
func (s *Scene) replay(e ecs.Entity, steps []Delta, at time.Time) {
	if len(steps) == 0 {
		delete(s.replays, e)
		s.pathMap.Get(e).Steps = nil
		s.logger.Debugw("replay finished", "unit", s.unitMap.Get(e).ID)
		return
	}
	pos := s.posMap.Get(e)
	*pos = pos.Add(steps[0])
	s.cues.Play(CueStep)

	rest := steps[1:]
	s.replays[e] = s.scheduler.After(at.Add(s.interval), func(due time.Time) {
		s.replay(e, rest, due)
	})
}

func (s *Scene) setCursorAnim(anim string) {
	s.cursorMap.Get(s.cursor).Anim = anim
	s.visuals.PlayCursor(anim)
}

// updateViewing opens the detail panel for the unit under the cursor and
// closes it once the cursor leaves.
func (s *Scene) updateViewing() {
	e, ok := s.unitAtCursor()
	switch {
	case ok && (!s.hasView || e != s.viewing):
		s.viewing = e
		s.hasView = true
		s.panel.Open(s.view(e))
	case !ok && s.hasView:
		s.hasView = false
		s.panel.Close()
	}
}

// unitAtCursor finds the unit whose grid cell equals the cursor's cell.
// Ties go to the first unit in roster order.
func (s *Scene) unitAtCursor() (ecs.Entity, bool) {
	cx, cy := s.cell(*s.posMap.Get(s.cursor))
	for _, e := range s.units {
		ux, uy := s.cell(*s.posMap.Get(e))
		if ux == cx && uy == cy {
			return e, true
		}
	}
	return ecs.Entity{}, false
}

func (s *Scene) cell(p Position) (int, int) {
	return s.Grid.WorldToCell(p.X, p.Y)
}

// ConnectController attaches a gamepad by its raw identity string. Unknown
// controllers still move the cursor but their buttons are ignored.
func (s *Scene) ConnectController(identity string) {
	c := input.NewController(identity, s.mappings)
	s.controller = c
	s.normalizer.Reset()
	if !c.Known {
		s.logger.Warnw("controller has no mapping, buttons ignored",
			"identity", identity, "vendor", c.ID.Vendor)
		s.Log.Add("Unknown controller connected.", MsgWarning)
		return
	}
	s.logger.Infow("controller connected",
		"identity", identity, "vendor", c.ID.Vendor, "product", c.ID.Product, "mapping", c.Mapping.Name)
	s.Log.Add(fmt.Sprintf("%s controller connected.", c.Mapping.Name), MsgSystem)
}

// DisconnectController stops gamepad input. Replays in flight continue.
func (s *Scene) DisconnectController() {
	if s.controller == nil {
		return
	}
	s.logger.Infow("controller disconnected", "identity", s.controller.Raw)
	s.controller = nil
	s.normalizer.Reset()
	s.Log.Add("Controller disconnected.", MsgSystem)
}

// Controller returns the attached controller, or nil.
func (s *Scene) Controller() *input.Controller { return s.controller }

// State returns the selection state.
func (s *Scene) State() State { return s.state }

// Cursor returns the cursor position and its current animation.
func (s *Scene) Cursor() (Position, string) {
	return *s.posMap.Get(s.cursor), s.cursorMap.Get(s.cursor).Anim
}

// Ghost returns the ghost position, if a ghost exists.
func (s *Scene) Ghost() (Position, bool) {
	if s.state != Selected {
		return Position{}, false
	}
	return *s.posMap.Get(s.ghost), true
}

// Selected returns the selected unit, if any.
func (s *Scene) Selected() (UnitView, bool) {
	if s.state != Selected {
		return UnitView{}, false
	}
	return s.view(s.selected), true
}

// Viewing returns the unit whose detail panel is open while Idle.
func (s *Scene) Viewing() (UnitView, bool) {
	if !s.hasView {
		return UnitView{}, false
	}
	return s.view(s.viewing), true
}

// Units returns a snapshot of every unit ordered by id.
func (s *Scene) Units() []UnitView {
	views := make([]UnitView, 0, len(s.units))
	query := s.unitQuery.Query()
	for query.Next() {
		pos, unit := query.Get()
		e := query.Entity()
		views = append(views, UnitView{
			ID:        unit.ID,
			Char:      unit.Char,
			Sprite:    unit.Sprite,
			Pos:       *pos,
			Selected:  s.state == Selected && e == s.selected,
			Replaying: s.replaying(e),
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views
}

// RecordedPath returns a copy of the path recorded for unit id.
func (s *Scene) RecordedPath(id int) []Delta {
	e, ok := s.entityFor(id)
	if !ok {
		return nil
	}
	return append([]Delta(nil), s.pathMap.Get(e).Steps...)
}

// ReplayActive reports whether unit id is still replaying a path.
func (s *Scene) ReplayActive(id int) bool {
	e, ok := s.entityFor(id)
	return ok && s.replaying(e)
}

func (s *Scene) replaying(e ecs.Entity) bool {
	t, ok := s.replays[e]
	return ok && !t.Done()
}

func (s *Scene) entityFor(id int) (ecs.Entity, bool) {
	for _, e := range s.units {
		if s.unitMap.Get(e).ID == id {
			return e, true
		}
	}
	return ecs.Entity{}, false
}

func (s *Scene) view(e ecs.Entity) UnitView {
	unit := s.unitMap.Get(e)
	return UnitView{
		ID:        unit.ID,
		Char:      unit.Char,
		Sprite:    unit.Sprite,
		Pos:       *s.posMap.Get(e),
		Selected:  s.state == Selected && e == s.selected,
		Replaying: s.replaying(e),
	}
}

// Close cancels pending replays, drops any selection and releases the panel.
// Recorded steps of a selected unit are discarded.
func (s *Scene) Close() {
	s.scheduler.CancelAll()
	clear(s.replays)
	if s.hasView || s.state == Selected {
		s.panel.Close()
	}
	if s.state == Selected {
		s.pathMap.Get(s.selected).Steps = nil
		s.ECS.RemoveEntity(s.ghost)
		s.visuals.DestroyGhost()
		s.state = Idle
		s.setCursorAnim(AnimIdle)
	}
	s.hasView = false
	s.logger.Debugw("scene closed")
}
