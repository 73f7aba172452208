package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sketch/internal/canvas"
	"github.com/vovakirdan/tui-sketch/internal/config"
	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/paint"
	"github.com/vovakirdan/tui-sketch/internal/storage"
)

// uiState selects which screen the model is showing.
type uiState int

const (
	statePrompt uiState = iota
	statePaint
)

// Model is the Bubble Tea model for the sketch widget. It translates
// terminal mouse and key events into pointer events for the paint session,
// which owns all painting state.
type Model struct {
	session  *paint.Session
	cfg      config.SketchConfig
	store    *storage.Store
	keymap   *KeyMapper
	prompt   DimensionPrompt
	state    uiState
	cursor   canvas.Coord
	penDown  bool
	width    int
	height   int
	status   string
	quitting bool
}

// Options selects the initial state of a painting session.
type Options struct {
	Dimension int  // 0 means use the config default
	Random    bool // Start with random color mode on
	Darken    bool // Start with darken mode on
}

// NewModel creates a model for a painting session.
func NewModel(cfg config.SketchConfig, store *storage.Store, opts Options) (Model, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := Model{
		cfg:    cfg,
		store:  store,
		keymap: NewKeyMapper(),
	}

	dimension := opts.Dimension
	if dimension == 0 {
		dimension = cfg.Grid.Dimension
	}
	if err := canvas.ValidateDimension(dimension); err != nil {
		return Model{}, err
	}

	cv, err := canvas.New(dimension)
	if err != nil {
		return Model{}, err
	}

	m.session = paint.NewSession(cv, seed)
	m.session.SetMode(paint.Mode{Random: opts.Random, Darken: opts.Darken})
	m.session.Engine().SetNeutral(canvas.RGB{
		R: cfg.Colors.Neutral.R,
		G: cfg.Colors.Neutral.G,
		B: cfg.Colors.Neutral.B,
	})
	m.session.Engine().SetDarkenPercent(cfg.Colors.DarkenPercent)
	m.state = statePaint
	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		return m, nil
	}

	if m.state == statePrompt {
		return m.updatePrompt(msg)
	}
	return m.updatePaint(msg)
}

// updatePrompt routes messages to the dimension prompt until the user
// confirms a valid size or cancels.
func (m Model) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	prompt, dim, done, cancel := m.prompt.Update(msg)
	m.prompt = prompt

	if cancel {
		// Keep the current canvas; cancel just closes the prompt
		m.state = statePaint
		return m, nil
	}
	if done {
		if _, err := m.session.Apply(paint.Rebuild{Dimension: dim}); err != nil {
			// ParseDimension already validated; a failure here is a bug
			m.status = err.Error()
			return m, nil
		}
		m.cursor = canvas.C(0, 0)
		m.penDown = false
		m.state = statePaint
		m.status = fmt.Sprintf("new %d×%d canvas", dim, dim)
	}
	return m, nil
}

// updatePaint handles mouse and key events while painting.
func (m Model) updatePaint(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// handleKey processes keyboard input: cursor painting and mode toggles.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keymap.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		m.moveCursor(action)
	case ActionPen:
		m.togglePen()
	case ActionRandom:
		mode := m.session.ToggleRandom()
		m.status = "mode: " + mode.String()
	case ActionDarken:
		mode := m.session.ToggleDarken()
		m.status = "mode: " + mode.String()
	case ActionEraser:
		if m.session.ToggleEraser() {
			m.status = "eraser on"
		} else {
			m.status = "eraser off"
		}
	case ActionClear:
		if err := m.session.Reset(); err != nil {
			m.status = err.Error()
		} else {
			m.penDown = false
			m.status = "canvas cleared"
		}
	case ActionNewCanvas:
		m.prompt = NewDimensionPrompt(m.session.Canvas().Dimension())
		m.state = statePrompt
	case ActionSave:
		m.saveSketch()
	}
	return m, nil
}

// moveCursor shifts the keyboard cursor, clamped to the canvas, and paints
// when the pen is down.
func (m *Model) moveCursor(action Action) {
	dim := m.session.Canvas().Dimension()
	next := m.cursor
	switch action {
	case ActionUp:
		next.Y--
	case ActionDown:
		next.Y++
	case ActionLeft:
		next.X--
	case ActionRight:
		next.X++
	}
	next.X = core.Clamp(next.X, 0, dim-1)
	next.Y = core.Clamp(next.Y, 0, dim-1)
	m.cursor = next

	if m.penDown {
		m.enterCell(next)
	}
}

// togglePen lowers or lifts the pen. Lowering paints the cursor cell;
// lifting ends the stroke so the next one starts fresh.
func (m *Model) togglePen() {
	m.penDown = !m.penDown
	if m.penDown {
		m.enterCell(m.cursor)
		return
	}
	//nolint:errcheck // LeaveGrid cannot fail
	m.session.Apply(paint.LeaveGrid{})
}

// handleMouse maps pointer motion onto the grid: hovering over a cell
// paints it, exactly like the original hover-to-draw widget. Motion
// outside the grid ends the stroke.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionRelease {
		return m, nil
	}

	rect := m.gridRect()
	if !rect.Contains(msg.X, msg.Y) {
		//nolint:errcheck // LeaveGrid cannot fail
		m.session.Apply(paint.LeaveGrid{})
		return m, nil
	}

	cellWidth := m.cellWidth()
	cell := canvas.C((msg.X-rect.X)/cellWidth, msg.Y-rect.Y)
	m.cursor = cell
	m.enterCell(cell)
	return m, nil
}

// enterCell feeds one pointer-enter event to the session.
func (m *Model) enterCell(c canvas.Coord) {
	if _, err := m.session.Apply(paint.EnterCell{X: c.X, Y: c.Y}); err != nil {
		m.status = err.Error()
	}
}

// saveSketch stores the current canvas in the gallery, best effort.
func (m *Model) saveSketch() {
	if m.store == nil {
		m.status = "no gallery database"
		return
	}
	name := "sketch-" + time.Now().Format("20060102-150405")
	id, err := m.store.SaveSketch(name, m.session.Canvas())
	if err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("saved as %s (#%d)", name, id)
}

// cellWidth returns the configured terminal columns per cell.
func (m Model) cellWidth() int {
	if m.cfg.Render.CellWidth < 1 {
		return 1
	}
	return m.cfg.Render.CellWidth
}

// gridRect returns the screen region the canvas content occupies.
// Row 0 is the status line; the frame border takes one more row and one
// column before the first cell.
func (m Model) gridRect() core.Rect {
	dim := m.session.Canvas().Dimension()
	return core.NewRect(1, 2, dim*m.cellWidth(), dim)
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.state == statePrompt {
		return m.prompt.View()
	}

	var sb strings.Builder
	sb.WriteString(statusStyle.Render(m.statusLine()))
	sb.WriteString("\n")

	var cursor *canvas.Coord
	c := m.cursor
	cursor = &c
	sb.WriteString(RenderCanvas(m.session.Canvas(), cursor, m.cellWidth()))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("hover or space+move to paint · (r)andom (d)arken (e)raser (c)lear (n)ew size · ctrl+s save · q quit"))
	return sb.String()
}

// statusLine summarizes the session state for the top bar.
func (m Model) statusLine() string {
	cv := m.session.Canvas()
	pen := "up"
	if m.penDown {
		pen = "down"
	}
	line := fmt.Sprintf("sketch %d×%d │ mode: %s │ pen: %s │ painted: %d",
		cv.Dimension(), cv.Dimension(), m.session.Mode(), pen, cv.PaintedCount())
	if m.session.Eraser() {
		line += " │ eraser"
	}
	if m.status != "" {
		line += " │ " + m.status
	}
	return line
}

// Run starts the Bubble Tea program for a local painting session.
func Run(cfg config.SketchConfig, store *storage.Store, opts Options) error {
	model, err := NewModel(cfg, store, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover painting needs motion without buttons
	)

	_, err = p.Run()
	return err
}
