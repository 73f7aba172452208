package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sketch/internal/canvas"
	"github.com/vovakirdan/tui-sketch/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved sketch to the terminal",
	Long: `Render a saved sketch as colored blocks on stdout.

Run 'sketch gallery' to find sketch IDs.

Examples:
  sketch show 3`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %q is not a sketch ID\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening gallery database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entry, cv, err := store.LoadSketch(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading sketch: %v\n", err)
		os.Exit(1)
	}
	if entry == nil {
		fmt.Fprintf(os.Stderr, "Error: no sketch with ID %d\n", id)
		fmt.Fprintln(os.Stderr, "Run 'sketch gallery' to see saved sketches.")
		os.Exit(1)
	}

	fmt.Printf("%s  (%dx%d, %d cells, %s)\n\n",
		entry.Name, entry.Dimension, entry.Dimension, entry.Cells,
		entry.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Println(renderSketch(cv))
}

// renderSketch draws the canvas as two-column colored blocks, one row of
// text per canvas row. Unpainted cells print as faint dots.
func renderSketch(cv *canvas.Canvas) string {
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	var sb strings.Builder
	for y := 0; y < cv.Dimension(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < cv.Dimension(); x++ {
			color, set := cv.ColorAt(canvas.C(x, y))
			if !set {
				sb.WriteString(empty.Render("· "))
				continue
			}
			hex := colorful.Color{
				R: float64(color.R) / 255,
				G: float64(color.G) / 255,
				B: float64(color.B) / 255,
			}.Hex()
			sb.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  "))
		}
	}
	return sb.String()
}
