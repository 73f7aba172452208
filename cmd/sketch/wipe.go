package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sketch/internal/storage"
)

var flagWipeYes bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all saved sketches",
	Long: `Delete every sketch from the gallery. This cannot be undone.

Examples:
  sketch wipe --yes`,
	Args: cobra.NoArgs,
	Run:  runWipe,
}

func init() {
	wipeCmd.Flags().BoolVar(&flagWipeYes, "yes", false, "Confirm deletion without prompting")
}

func runWipe(cmd *cobra.Command, args []string) {
	if !flagWipeYes {
		fmt.Fprintln(os.Stderr, "Refusing to wipe the gallery without --yes")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening gallery database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.WipeSketches(); err != nil {
		fmt.Fprintf(os.Stderr, "Error wiping gallery: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Gallery wiped.")
}
