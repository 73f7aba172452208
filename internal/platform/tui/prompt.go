package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sketch/internal/canvas"
)

// ParseDimension parses and validates user input for a canvas side length.
// Non-numeric input and out-of-range values are rejected with an error the
// prompt can display; the caller re-prompts until input is valid.
func ParseDimension(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, fmt.Errorf("enter a number between %d and %d", canvas.MinDimension, canvas.MaxDimension)
	}

	dim, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", trimmed)
	}
	if err := canvas.ValidateDimension(dim); err != nil {
		return 0, err
	}
	return dim, nil
}

// DimensionPrompt is the text-input prompt for choosing a canvas size.
// Invalid input shows an error line and keeps prompting; there is no
// retry limit.
type DimensionPrompt struct {
	input  textinput.Model
	errMsg string
}

// NewDimensionPrompt creates a prompt pre-filled with the current dimension.
func NewDimensionPrompt(current int) DimensionPrompt {
	ti := textinput.New()
	ti.Placeholder = strconv.Itoa(current)
	ti.CharLimit = 3
	ti.Width = 6
	ti.Focus()

	return DimensionPrompt{input: ti}
}

// Update feeds a message to the prompt. When the user confirms valid input
// it returns the chosen dimension and done=true; cancel=true means the user
// backed out without choosing.
func (p DimensionPrompt) Update(msg tea.Msg) (DimensionPrompt, int, bool, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			dim, err := ParseDimension(p.input.Value())
			if err != nil {
				p.errMsg = err.Error()
				p.input.SetValue("")
				return p, 0, false, false
			}
			return p, dim, true, false
		case "esc":
			return p, 0, false, true
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	_ = cmd // Text input blink command is cosmetic; prompt stays static
	return p, 0, false, false
}

var (
	promptTitleStyle = lipgloss.NewStyle().Bold(true)
	promptErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	promptHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// View renders the prompt.
func (p DimensionPrompt) View() string {
	var sb strings.Builder
	sb.WriteString(promptTitleStyle.Render("Canvas size"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Side length (%d-%d): %s\n", canvas.MinDimension, canvas.MaxDimension, p.input.View()))
	if p.errMsg != "" {
		sb.WriteString(promptErrStyle.Render(p.errMsg))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(promptHintStyle.Render("enter to confirm, esc to cancel"))
	return sb.String()
}
