// Package config provides YAML-based configuration loading and
// difficulty management for the Cubes puzzle.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid config")

// CubesConfig contains all configuration for the Cubes puzzle.
type CubesConfig struct {
	Board      CubesBoard       `yaml:"board"`
	Rules      CubesRules       `yaml:"rules"`
	Scoring    CubesScoring     `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CubesBoard defines the grid parameters.
type CubesBoard struct {
	Size   int `yaml:"size"`   // Board dimension N (N×N)
	Colors int `yaml:"colors"` // Palette colors in play, 2..5
}

// CubesRules defines the level rules.
type CubesRules struct {
	MinRegion int     `yaml:"min_region"` // Smallest removable region
	Moves     int     `yaml:"moves"`      // Move budget per level
	Goal      int     `yaml:"goal"`       // Score goal of level 1
	GoalScale float64 `yaml:"goal_scale"` // Goal multiplier per cleared level
}

// CubesScoring defines the points curve.
type CubesScoring struct {
	PerCell      int `yaml:"per_cell"`
	BonusFrom    int `yaml:"bonus_from"` // Region size where the bonus starts; 0 disables it
	BonusPerCell int `yaml:"bonus_per_cell"`
}

// DifficultyConfig defines how the move budget tightens as levels climb.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	Preset       DifficultyPreset  `yaml:"preset"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	MoveReduction int `yaml:"move_reduction"` // Moves removed from the budget at max difficulty
	MinMoves      int `yaml:"min_moves"`      // Floor for the move budget
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks that every setting is playable.
func (c CubesConfig) Validate() error {
	switch {
	case c.Board.Size < 2:
		return fmt.Errorf("config: board size %d: %w", c.Board.Size, ErrInvalidConfig)
	case c.Board.Colors < 2 || c.Board.Colors > 5:
		return fmt.Errorf("config: board colors %d not in [2,5]: %w", c.Board.Colors, ErrInvalidConfig)
	case c.Rules.MinRegion < 2:
		return fmt.Errorf("config: min region %d: %w", c.Rules.MinRegion, ErrInvalidConfig)
	case c.Rules.MinRegion > c.Board.Size*c.Board.Size:
		return fmt.Errorf("config: min region %d larger than a %dx%d board: %w",
			c.Rules.MinRegion, c.Board.Size, c.Board.Size, ErrInvalidConfig)
	case c.Rules.Moves < 1:
		return fmt.Errorf("config: moves %d: %w", c.Rules.Moves, ErrInvalidConfig)
	case c.Rules.Goal < 1:
		return fmt.Errorf("config: goal %d: %w", c.Rules.Goal, ErrInvalidConfig)
	case c.Rules.GoalScale < 1:
		return fmt.Errorf("config: goal scale %v: %w", c.Rules.GoalScale, ErrInvalidConfig)
	case c.Scoring.PerCell < 0 || c.Scoring.BonusPerCell < 0 || c.Scoring.BonusFrom < 0:
		return fmt.Errorf("config: negative scoring value: %w", ErrInvalidConfig)
	}
	return nil
}
