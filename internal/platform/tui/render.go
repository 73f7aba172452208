package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-sketch/internal/canvas"
)

var (
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("245"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// cellHex converts a canvas color to the hex form lipgloss expects.
func cellHex(c canvas.RGB) lipgloss.Color {
	return lipgloss.Color(colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex())
}

// RenderCanvas draws the canvas as rows of colored blocks, cellWidth
// terminal columns per cell. The cursor cell, if any, is overlaid with
// a bracket marker so keyboard painting stays visible on any background.
func RenderCanvas(cv *canvas.Canvas, cursor *canvas.Coord, cellWidth int) string {
	if cellWidth < 1 {
		cellWidth = 1
	}

	dim := cv.Dimension()
	var sb strings.Builder
	sb.Grow(dim * dim * cellWidth * 4)

	for y := 0; y < dim; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < dim; x++ {
			c := canvas.C(x, y)
			sb.WriteString(renderCell(cv, c, cursor, cellWidth))
		}
	}
	return frameStyle.Render(sb.String())
}

func renderCell(cv *canvas.Canvas, c canvas.Coord, cursor *canvas.Coord, cellWidth int) string {
	underCursor := cursor != nil && cursor.Equal(c)
	color, set := cv.ColorAt(c)

	content := strings.Repeat(" ", cellWidth)
	if underCursor {
		content = cursorGlyph(cellWidth)
	}

	if set {
		style := lipgloss.NewStyle().Background(cellHex(color))
		if underCursor {
			style = style.Foreground(contrastColor(color)).Bold(true)
		}
		return style.Render(content)
	}

	if underCursor {
		return cursorStyle.Render(content)
	}
	// Unpainted cells show a faint dot so the grid is visible
	return emptyStyle.Render("·" + strings.Repeat(" ", cellWidth-1))
}

// cursorGlyph returns the cursor marker padded to the cell width.
func cursorGlyph(cellWidth int) string {
	if cellWidth >= 2 {
		return "[]" + strings.Repeat(" ", cellWidth-2)
	}
	return "+"
}

// contrastColor picks black or white, whichever reads better on the given
// background, using the perceptual luminance weights.
func contrastColor(c canvas.RGB) lipgloss.Color {
	luma := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if luma > 127 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}
