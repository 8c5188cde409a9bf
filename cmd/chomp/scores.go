package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chomp/internal/registry"
	"github.com/vovakirdan/tui-chomp/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <maze>",
	Short: "Show high scores for a maze",
	Long: `Display the top 10 high scores and round statistics for the
specified maze variant.

Examples:
  chomp scores chomp
  chomp scores chomp-arena`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	mazeID := args[0]

	if !registry.Exists(mazeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown maze %q\n", mazeID)
		fmt.Fprintln(os.Stderr, "Run 'chomp mazes' to see available mazes.")
		os.Exit(1)
	}

	// Get maze title
	g, err := registry.Create(mazeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := g.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(mazeID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'chomp play %s' to set the first high score!\n", mazeID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetMazeStats(mazeID); err == nil && stats.Rounds > 0 {
		fmt.Printf("Best: %d  Rounds: %d  Wins: %d  Avg: %.0f\n",
			stats.HighScore, stats.Rounds, stats.Wins, stats.AvgScore)
	}
}
