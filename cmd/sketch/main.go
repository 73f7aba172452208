// sketch is a TUI grid-painting widget: hover or drag over a square grid
// of cells and they change color, with fast pointer motion interpolated
// into a continuous line.
//
// Usage:
//
//	sketch paint             - Open a canvas and start painting
//	sketch gallery           - List saved sketches
//	sketch show <id>         - Print a saved sketch to the terminal
//	sketch serve             - Start SSH server for remote painting
//	sketch wipe              - Delete all saved sketches
//
// Global flags:
//
//	--config <path> - Use a custom config YAML
//	--db <path>     - Set database path (default: ~/.sketch/gallery.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sketch",
	Short: "TUI Sketch - Paint on a grid in your terminal",
	Long: `TUI Sketch is a terminal-based painting widget. Hover the mouse (or
move a keyboard cursor with the pen down) over a square grid of cells and
they change color. Fast pointer motion is interpolated so a quick drag
paints a continuous line instead of a dotted one.

Color modes:
  plain  - first paint uses a fixed neutral color, re-paint changes nothing
  random - first paint picks a uniformly random color per cell
  darken - every re-entry darkens the cell by 10% until it reaches black

Available commands:
  paint    - Open a canvas and start painting
  gallery  - List saved sketches
  show     - Print a saved sketch to the terminal
  serve    - Start SSH server for remote painting
  wipe     - Delete all saved sketches

Examples:
  sketch paint
  sketch paint --dim 32 --random
  sketch gallery
  sketch show 3
  sketch serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sketch/gallery.db", "Path to gallery database")

	// Add subcommands
	rootCmd.AddCommand(paintCmd)
	rootCmd.AddCommand(galleryCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(wipeCmd)
}
