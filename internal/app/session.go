package app

import (
	"lifegrid/internal/core"
	"lifegrid/internal/life"
)

// Input reports the pointer position and the discrete events that fired
// during the current frame. Each press method reports the transition into
// "pressed" only, never a held key or button.
type Input interface {
	CursorPosition() (x, y int)
	ClickPressed() bool
	ToggleRunPressed() bool
	ResetPressed() bool
}

// Session owns the grid, the run flag and the tick deadline. Frame is called
// once per rendered frame from a single goroutine.
type Session struct {
	cfg      Config
	cellSize int
	life     *life.Life
	clock    core.Clock
	ticker   *core.Ticker
	running  bool

	hover   core.Cell
	hoverOK bool
}

// NewSession validates cfg and builds a paused session whose first deadline
// is the current clock reading.
func NewSession(cfg Config, clock core.Clock) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = core.NewSystemClock()
	}
	l := life.New(cfg.GridSize, cfg.BoundaryPolicy())
	if cfg.Density > 0 {
		l.Fill(cfg.Seed, cfg.Density)
	}
	return &Session{
		cfg:      cfg,
		cellSize: cfg.CellSize(),
		life:     l,
		clock:    clock,
		ticker:   core.NewTicker(cfg.Tick, clock.Now()),
	}, nil
}

// Frame reads this frame's input, applies it, and advances one generation
// when running and the deadline has passed. It reports whether a
// generation was advanced.
func (s *Session) Frame(in Input) bool {
	remaining := s.ticker.Remaining(s.clock.Now())

	x, y := in.CursorPosition()
	s.hover, s.hoverOK = s.CellAt(x, y)

	if in.ClickPressed() && s.hoverOK {
		s.ToggleCell(s.hover.Row, s.hover.Col)
	}
	if in.ToggleRunPressed() {
		s.ToggleRun()
	}
	if in.ResetPressed() {
		s.Reset()
	}

	if s.running && remaining <= 0 {
		s.life.Step()
		s.ticker.Rearm(s.clock.Now())
		return true
	}
	return false
}

// CellAt maps pixel coordinates to a grid cell. Positions outside the grid
// report false.
func (s *Session) CellAt(x, y int) (core.Cell, bool) {
	if x < 0 || y < 0 || s.cellSize <= 0 {
		return core.Cell{}, false
	}
	cell := core.Cell{Row: y / s.cellSize, Col: x / s.cellSize}
	if !s.life.Grid().InBounds(cell.Row, cell.Col) {
		return core.Cell{}, false
	}
	return cell, true
}

// ToggleCell flips one cell; out-of-range coordinates are ignored.
func (s *Session) ToggleCell(row, col int) bool { return s.life.Toggle(row, col) }

// ToggleRun flips between paused and running.
func (s *Session) ToggleRun() { s.running = !s.running }

// Reset kills every cell in place. The run flag and deadline are untouched.
func (s *Session) Reset() { s.life.Clear() }

// Grid exposes the current generation for rendering.
func (s *Session) Grid() *core.Grid { return s.life.Grid() }

// Running reports whether generations advance on each tick.
func (s *Session) Running() bool { return s.running }

// Hover returns the cell under the pointer as of the last frame.
func (s *Session) Hover() (core.Cell, bool) { return s.hover, s.hoverOK }

// Generation reports how many generations have run since the last reset.
func (s *Session) Generation() int { return s.life.Generation() }

// Config returns the validated startup configuration.
func (s *Session) Config() Config { return s.cfg }
