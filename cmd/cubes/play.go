package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-cubes/internal/config"
	"github.com/vovakirdan/tui-cubes/internal/core"
	"github.com/vovakirdan/tui-cubes/internal/games/cubes"
	"github.com/vovakirdan/tui-cubes/internal/platform/tui"
	"github.com/vovakirdan/tui-cubes/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLog        string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a Cubes session.

Controls:
  Arrows/HJKL/WASD  - Move the cursor
  Enter/Space/Click - Select the group under the cursor
  N                 - Next level (after a level is cleared)
  R                 - Restart (after game over)
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Difficulty options (a menu is shown when --difficulty is omitted):
  easy   - 12 moves, gentle goals, move budget shrinks slowly
  normal - 10 moves, goals grow by half each level
  hard   - 8 moves, steep goals
  fixed  - No progression, same move budget and goal every level

Examples:
  cubes play
  cubes play --difficulty easy
  cubes play --seed 42
  cubes play --config ./my-cubes.yaml --log /tmp/cubes.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLog, "log", "", "Write a debug log to this file")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadCubes(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	// Without --difficulty, show the difficulty menu
	var preset config.DifficultyPreset
	if flagDifficulty != "" {
		preset, err = config.ParsePreset(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		preset, err = tui.RunDifficultySelector(cfg.Difficulty.Preset, runtime)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// User pressed quit
		if preset == "" {
			return
		}
	}
	config.ApplyCubesPreset(&cfg, preset)

	logger, closeLog, err := openLogger(flagLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Open score storage; the game still works without it
	var highScores cubes.HighScoreStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
	} else {
		defer store.Close()
		highScores = store
	}

	// Use time-based seed if not specified
	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := cubes.New(cfg, seed, highScores, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if runErr := tui.Run(game, runtime, logger); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogger returns a file logger for path, or a discarding logger when
// path is empty. The TUI owns the terminal, so logs never go to stderr.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "cubes",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
