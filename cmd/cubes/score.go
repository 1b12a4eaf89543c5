package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cubes/internal/config"
	"github.com/vovakirdan/tui-cubes/internal/games/cubes"
	"github.com/vovakirdan/tui-cubes/internal/platform/tui"
	"github.com/vovakirdan/tui-cubes/internal/storage"
)

var (
	flagReset           bool
	flagScoreDifficulty string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show high scores",
	Long: `Display the best score of every difficulty preset.

With --reset the stored high scores are deleted. Combine it with
--difficulty to reset a single preset.

Examples:
  cubes score
  cubes score --reset
  cubes score --reset --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete stored high scores")
	scoreCmd.Flags().StringVar(&flagScoreDifficulty, "difficulty", "", "Limit --reset to one preset: easy, normal, hard, fixed")
}

func runScore(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := resetScores(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	entries, err := store.HighScores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprint(cmd.OutOrStdout(), tui.RenderHighScores(entries))
}

func resetScores(store *storage.Store) error {
	if flagScoreDifficulty == "" {
		if err := store.ClearAll(); err != nil {
			return err
		}
		fmt.Println("All high scores reset.")
		return nil
	}

	preset, err := config.ParsePreset(flagScoreDifficulty)
	if err != nil {
		return err
	}
	gameID := cubes.GameIDFor(preset)
	if err := store.ClearHighScore(gameID); err != nil {
		return err
	}
	fmt.Printf("High score of %s reset.\n", gameID)
	return nil
}
