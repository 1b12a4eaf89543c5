package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parseCubes(defaultCubesYAML)
	if err != nil {
		t.Fatalf("parseCubes(embedded) failed: %v", err)
	}
	if cfg != DefaultCubesConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultCubesConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default should validate, got %v", err)
	}
}

func TestLoadCubesCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cubes.yaml")
	data := []byte("board:\n  size: 6\nrules:\n  moves: 4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadCubes(path)
	if err != nil {
		t.Fatalf("LoadCubes() failed: %v", err)
	}

	if cfg.Board.Size != 6 {
		t.Errorf("Board.Size = %d, expected 6", cfg.Board.Size)
	}
	if cfg.Rules.Moves != 4 {
		t.Errorf("Rules.Moves = %d, expected 4", cfg.Rules.Moves)
	}
	// Untouched fields keep defaults
	if cfg.Board.Colors != 5 {
		t.Errorf("Board.Colors = %d, expected default 5", cfg.Board.Colors)
	}
	if cfg.Rules.Goal != 5 {
		t.Errorf("Rules.Goal = %d, expected default 5", cfg.Rules.Goal)
	}
}

func TestLoadCubesCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		write   bool
	}{
		{name: "missing file", write: false},
		{name: "bad yaml", content: "board: [", write: true},
		{name: "invalid values", content: "board:\n  colors: 9\n", write: true},
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if tc.write {
				if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
					t.Fatalf("WriteFile failed: %v", err)
				}
			}
			if _, err := LoadCubes(path); err == nil {
				t.Errorf("case %d: expected error, got nil", i)
			}
		})
	}
}

func TestLoadCubesFallsBackToDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadCubes("")
	if err != nil {
		t.Fatalf("LoadCubes() failed: %v", err)
	}
	if cfg != DefaultCubesConfig() {
		t.Errorf("LoadCubes() = %+v, expected defaults", cfg)
	}
}

func TestLoadCubesLocalDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join("configs", ConfigFile), []byte("board:\n  size: 7\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadCubes("")
	if err != nil {
		t.Fatalf("LoadCubes() failed: %v", err)
	}
	if cfg.Board.Size != 7 {
		t.Errorf("Board.Size = %d, expected 7", cfg.Board.Size)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CubesConfig)
		valid  bool
	}{
		{"defaults", func(*CubesConfig) {}, true},
		{"size too small", func(c *CubesConfig) { c.Board.Size = 1 }, false},
		{"one color", func(c *CubesConfig) { c.Board.Colors = 1 }, false},
		{"six colors", func(c *CubesConfig) { c.Board.Colors = 6 }, false},
		{"two colors", func(c *CubesConfig) { c.Board.Colors = 2 }, true},
		{"min region 1", func(c *CubesConfig) { c.Rules.MinRegion = 1 }, false},
		{"min region fills board", func(c *CubesConfig) { c.Rules.MinRegion = 81 }, true},
		{"min region above board", func(c *CubesConfig) { c.Rules.MinRegion = 82 }, false},
		{"min region above small board", func(c *CubesConfig) { c.Board.Size = 2; c.Rules.MinRegion = 5 }, false},
		{"zero moves", func(c *CubesConfig) { c.Rules.Moves = 0 }, false},
		{"zero goal", func(c *CubesConfig) { c.Rules.Goal = 0 }, false},
		{"shrinking goal", func(c *CubesConfig) { c.Rules.GoalScale = 0.9 }, false},
		{"flat goal", func(c *CubesConfig) { c.Rules.GoalScale = 1.0 }, true},
		{"negative bonus", func(c *CubesConfig) { c.Scoring.BonusPerCell = -1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCubesConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyCubesPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		moves     int
		goalScale float64
		enabled   bool
	}{
		{DifficultyEasy, 12, 1.3, true},
		{DifficultyNormal, 10, 1.5, true},
		{DifficultyHard, 8, 1.7, true},
		{DifficultyFixed, 10, 1.0, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultCubesConfig()
			ApplyCubesPreset(&cfg, tc.preset)

			if cfg.Rules.Moves != tc.moves {
				t.Errorf("Moves = %d, expected %d", cfg.Rules.Moves, tc.moves)
			}
			if cfg.Rules.GoalScale != tc.goalScale {
				t.Errorf("GoalScale = %v, expected %v", cfg.Rules.GoalScale, tc.goalScale)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Difficulty.Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.Preset != tc.preset {
				t.Errorf("Difficulty.Preset = %q, expected %q", cfg.Difficulty.Preset, tc.preset)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config should validate, got %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestDifficultyManagerMoves(t *testing.T) {
	cfg := DefaultCubesConfig().Difficulty

	dm := NewDifficultyManager(cfg)
	if got := dm.Moves(10, 1); got != 10 {
		t.Errorf("Moves(10, 1) = %d, expected 10", got)
	}
	if got := dm.Moves(10, 10); got != 7 {
		t.Errorf("Moves(10, 10) = %d, expected 7", got)
	}
	if got := dm.Moves(10, 50); got != 7 {
		t.Errorf("Moves(10, 50) = %d, expected 7 (clamped)", got)
	}
	if got := dm.Moves(5, 10); got != 4 {
		t.Errorf("Moves(5, 10) = %d, expected floor 4", got)
	}
	if got := dm.Moves(3, 10); got != 3 {
		t.Errorf("Moves(3, 10) = %d, expected base 3 when floor exceeds base", got)
	}

	dm.SetEnabled(false)
	if got := dm.Moves(10, 10); got != 10 {
		t.Errorf("disabled Moves(10, 10) = %d, expected 10", got)
	}
}

func TestDifficultyManagerLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "level", MaxAt: 5},
	})

	if got := dm.Level(1); got != 0 {
		t.Errorf("Level(1) = %v, expected 0", got)
	}
	if got := dm.Level(3); got != 0.5 {
		t.Errorf("Level(3) = %v, expected 0.5", got)
	}
	if got := dm.Level(9); got != 1 {
		t.Errorf("Level(9) = %v, expected 1", got)
	}

	dm.SetInitialLevel(2)
	if got := dm.Level(1); got != 1 {
		t.Errorf("Level(1) with clamped initial = %v, expected 1", got)
	}
}
