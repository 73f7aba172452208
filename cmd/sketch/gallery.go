package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sketch/internal/storage"
)

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "List saved sketches",
	Long: `Display all sketches saved to the gallery, newest first.

Examples:
  sketch gallery
  sketch gallery --db ./gallery.db`,
	Args: cobra.NoArgs,
	Run:  runGallery,
}

func runGallery(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening gallery database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.ListSketches()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sketches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Gallery")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No sketches saved yet.")
		fmt.Println()
		fmt.Println("Run 'sketch paint' and press ctrl+s to save the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-24s  %-6s  %-6s  %s\n", "ID", "Name", "Size", "Cells", "Date")
	fmt.Printf("  %-4s  %-24s  %-6s  %-6s  %s\n", "--", "----", "----", "-----", "----")

	// Print entries
	for _, e := range entries {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		size := fmt.Sprintf("%dx%d", e.Dimension, e.Dimension)
		fmt.Printf("  %-4d  %-24s  %-6s  %-6d  %s\n", e.ID, e.Name, size, e.Cells, dateStr)
	}
}
