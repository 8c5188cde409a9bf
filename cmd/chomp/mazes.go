package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chomp/internal/game"
	"github.com/vovakirdan/tui-chomp/internal/registry"
)

var mazesCmd = &cobra.Command{
	Use:   "mazes",
	Short: "List all maze variants",
	Long:  `Shows a list of all registered maze variants with their dimensions.`,
	Run:   runMazes,
}

func runMazes(cmd *cobra.Command, args []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No mazes available.")
		return
	}

	fmt.Println("Available mazes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "ID", "Title", "Size")
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "--", "-----", "----")

	for _, v := range variants {
		size := ""
		if layout, ok := game.LayoutByID(v.ID); ok {
			size = fmt.Sprintf("%dx%d", len(layout.Rows[0]), len(layout.Rows))
		}
		fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, v.ID, v.Title, size)
	}

	fmt.Println()
	fmt.Println("Run 'chomp play <id>' to play a maze.")
}
