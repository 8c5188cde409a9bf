// chomp is a terminal maze-chase game: eat every pellet while dodging
// the ghosts, and turn the tables with power pellets.
//
// Usage:
//
//	chomp mazes              - List available maze variants
//	chomp play <maze>        - Play a maze directly
//	chomp menu               - Start the interactive maze picker
//	chomp serve              - Start SSH server for remote play
//	chomp scores <maze>      - Show high scores for a maze
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.chomp/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register the maze variants
	_ "github.com/vovakirdan/tui-chomp/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chomp",
	Short: "Chomp - a maze-chase game for your terminal",
	Long: `Chomp is a terminal maze-chase game. Steer through the maze, eat
every pellet, and use power pellets to hunt the ghosts that hunt you.

Available commands:
  mazes    - Show all maze variants
  play     - Play a specific maze directly
  menu     - Interactive maze picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  chomp mazes
  chomp play chomp
  chomp menu
  chomp serve --ssh :2222
  chomp scores chomp`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chomp/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(mazesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
