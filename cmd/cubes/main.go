// cubes is a tile-matching puzzle for the terminal: select groups of
// same-colored cubes to clear them and reach the level goal before moves run out.
//
// Usage:
//
//	cubes play               - Play a session
//	cubes score              - Show high scores
//	cubes config             - Print the default configuration
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.cubes/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
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
	Use:   "cubes",
	Short: "Cubes - clear groups of colored cubes in your terminal",
	Long: `Cubes is a terminal tile-matching puzzle.

Select a group of two or more touching cubes of the same color to remove
it. Cubes above fall down and new ones drop in from the top. Reach the
level goal before you run out of moves.

Available commands:
  play     - Play a session
  score    - View or reset high scores
  config   - Print the default configuration

Examples:
  cubes play
  cubes play --difficulty hard
  cubes score
  cubes config > ~/.cubes/configs/cubes.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cubes/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(configCmd)
}
