package config

import (
	_ "embed"
)

//go:embed defaults/cubes.yaml
var defaultCubesYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultCubesYAML))
	copy(out, defaultCubesYAML)
	return out
}

// DefaultCubesConfig returns the default Cubes configuration.
func DefaultCubesConfig() CubesConfig {
	return CubesConfig{
		Board: CubesBoard{
			Size:   9,
			Colors: 5,
		},
		Rules: CubesRules{
			MinRegion: 2,
			Moves:     10,
			Goal:      5,
			GoalScale: 1.5,
		},
		Scoring: CubesScoring{
			PerCell:      1,
			BonusFrom:    5,
			BonusPerCell: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			Preset:       DifficultyNormal,
			InitialLevel: 0.3,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				MoveReduction: 3,
				MinMoves:      4,
			},
		},
	}
}
