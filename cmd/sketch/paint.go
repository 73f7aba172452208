package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sketch/internal/canvas"
	"github.com/vovakirdan/tui-sketch/internal/config"
	"github.com/vovakirdan/tui-sketch/internal/platform/tui"
	"github.com/vovakirdan/tui-sketch/internal/storage"
)

var (
	flagDim    int
	flagRandom bool
	flagDarken bool
	flagSeed   int64
)

var paintCmd = &cobra.Command{
	Use:   "paint",
	Short: "Open a canvas and start painting",
	Long: `Open a square canvas and paint by hovering the mouse over cells,
or by moving a cursor with the pen down.

Controls:
  mouse hover - paint the cell under the pointer
  arrows/hjkl - move the cursor
  space       - pen down/up (cursor painting)
  r           - toggle random color mode
  d           - toggle darken mode
  e           - toggle eraser
  c           - clear the canvas
  n           - choose a new canvas size
  ctrl+s      - save to the gallery
  q / ctrl+c  - quit

Examples:
  sketch paint
  sketch paint --dim 32
  sketch paint --random --darken
  sketch paint --config ./my-sketch.yaml`,
	Args: cobra.NoArgs,
	Run:  runPaint,
}

func init() {
	paintCmd.Flags().IntVar(&flagDim, "dim", 0, "Canvas side length, 1-100 (0 = config default)")
	paintCmd.Flags().BoolVar(&flagRandom, "random", false, "Start with random color mode on")
	paintCmd.Flags().BoolVar(&flagDarken, "darken", false, "Start with darken mode on")
	paintCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for random mode (0 = random based on time)")
}

func runPaint(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadSketch(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}

	if flagDim != 0 {
		if err := canvas.ValidateDimension(flagDim); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Probe terminal size so an oversized canvas gets a warning up front
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		dim := flagDim
		if dim == 0 {
			dim = cfg.Grid.Dimension
		}
		cellWidth := cfg.Render.CellWidth
		if cellWidth < 1 {
			cellWidth = 1
		}
		if dim*cellWidth+2 > w || dim+4 > h {
			fmt.Fprintf(os.Stderr, "Warning: a %d×%d canvas may not fit a %d×%d terminal\n", dim, dim, w, h)
		}
	}

	// Open gallery storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open gallery database: %v\n", err)
		// Continue without storage - painting still works
		store = nil
	}

	runErr := tui.Run(cfg, store, tui.Options{
		Dimension: flagDim,
		Random:    flagRandom,
		Darken:    flagDarken,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running sketch: %v\n", runErr)
		os.Exit(1)
	}
}
