package paint

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-sketch/internal/canvas"
)

// ErrOutOfRange is returned when the pointer source reports a cell outside
// the canvas. That is a contract violation by the event source, not a
// recoverable painting state, so nothing is painted.
var ErrOutOfRange = errors.New("paint: coordinate out of canvas range")

// Event is a typed pointer or lifecycle event consumed by a Session.
// The pointer source emits these; the session is the single owner of the
// transient pointer position, so there is no shared mutable state between
// handlers.
type Event interface {
	isEvent()
}

// EnterCell reports the pointer entering a cell.
type EnterCell struct {
	X, Y int
}

// LeaveCell reports the pointer leaving a cell. The pointer position only
// changes on enter and on leaving the whole grid, so this carries no state
// transition; it exists so the event source can report symmetric pairs.
type LeaveCell struct {
	X, Y int
}

// LeaveGrid reports the pointer exiting the grid's outer boundary.
type LeaveGrid struct{}

// Rebuild requests a fresh canvas with a new dimension.
type Rebuild struct {
	Dimension int
}

func (EnterCell) isEvent() {}
func (LeaveCell) isEvent() {}
func (LeaveGrid) isEvent() {}
func (Rebuild) isEvent()   {}

// CellUpdate records one cell mutation applied during an event, in path
// order. The rendering layer consumes these; it never inspects the canvas
// mid-stroke.
type CellUpdate struct {
	Coord   canvas.Coord
	Color   canvas.RGB
	Cleared bool // true when the eraser unset the cell
}

// Session is the painting controller. It owns the canvas, the color engine,
// the active mode toggles, and the last known pointer cell ("none" until
// the pointer first enters, and again after it leaves the grid).
//
// All methods are synchronous and must be called from a single goroutine;
// the event source serializes dispatch.
type Session struct {
	canvas *canvas.Canvas
	engine *Engine
	mode   Mode
	eraser bool
	last   *canvas.Coord
}

// NewSession creates a session over the given canvas.
// A zero seed derives the random source from the global generator.
func NewSession(cv *canvas.Canvas, seed int64) *Session {
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	return &Session{
		canvas: cv,
		engine: NewEngine(rng),
	}
}

// Canvas returns the canvas the session paints on.
func (s *Session) Canvas() *canvas.Canvas {
	return s.canvas
}

// Engine returns the session's color engine for configuration.
func (s *Session) Engine() *Engine {
	return s.engine
}

// Mode returns the active color mode toggles.
func (s *Session) Mode() Mode {
	return s.mode
}

// SetMode replaces the color mode toggles.
func (s *Session) SetMode(m Mode) {
	s.mode = m
}

// ToggleRandom flips the random-color toggle and returns the new mode.
func (s *Session) ToggleRandom() Mode {
	s.mode.Random = !s.mode.Random
	return s.mode
}

// ToggleDarken flips the darken toggle and returns the new mode.
func (s *Session) ToggleDarken() Mode {
	s.mode.Darken = !s.mode.Darken
	return s.mode
}

// Eraser reports whether the eraser is active.
func (s *Session) Eraser() bool {
	return s.eraser
}

// ToggleEraser flips the eraser and returns the new state.
func (s *Session) ToggleEraser() bool {
	s.eraser = !s.eraser
	return s.eraser
}

// Position returns the last known pointer cell, or false if the pointer
// has not entered the grid since the last leave.
func (s *Session) Position() (canvas.Coord, bool) {
	if s.last == nil {
		return canvas.Coord{}, false
	}
	return *s.last, true
}

// Apply dispatches a single event and returns the cell updates it caused,
// in path order. Only EnterCell produces updates.
func (s *Session) Apply(ev Event) ([]CellUpdate, error) {
	switch ev := ev.(type) {
	case EnterCell:
		return s.enterCell(canvas.C(ev.X, ev.Y))
	case LeaveCell:
		return nil, nil
	case LeaveGrid:
		s.last = nil
		return nil, nil
	case Rebuild:
		return nil, s.rebuild(ev.Dimension)
	default:
		return nil, fmt.Errorf("paint: unknown event %T", ev)
	}
}

// enterCell paints the interpolated path from the last pointer cell to the
// entered cell, inclusive, coloring each cell in order. The first enter
// after a leave paints only the entered cell.
func (s *Session) enterCell(target canvas.Coord) ([]CellUpdate, error) {
	if !s.canvas.InBounds(target) {
		return nil, fmt.Errorf("%w: %v (dimension %d)", ErrOutOfRange, target, s.canvas.Dimension())
	}

	from := target
	if s.last != nil {
		from = *s.last
	}

	path := Rasterize(from, target)
	updates := make([]CellUpdate, 0, len(path))
	for _, c := range path {
		if s.eraser {
			s.canvas.Unset(c)
			updates = append(updates, CellUpdate{Coord: c, Cleared: true})
			continue
		}
		next := s.engine.NextColor(s.canvas.Get(c), s.mode)
		s.canvas.SetColor(c, next)
		updates = append(updates, CellUpdate{Coord: c, Color: next})
	}

	pos := target
	s.last = &pos
	return updates, nil
}

// rebuild tears down the canvas and creates a fresh one, clearing the
// pointer position as part of the transition.
func (s *Session) rebuild(dim int) error {
	fresh, err := canvas.New(dim)
	if err != nil {
		return err
	}
	s.canvas = fresh
	s.last = nil
	return nil
}

// Reset clears all painted cells while keeping the dimension, and clears
// the pointer position.
func (s *Session) Reset() error {
	return s.rebuild(s.canvas.Dimension())
}
