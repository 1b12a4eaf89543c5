package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "cubes.yaml"

// LoadCubes loads the Cubes configuration.
// Search order: customPath -> ~/.cubes/configs/cubes.yaml -> ./configs/cubes.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadCubes(customPath string) (CubesConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CubesConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseCubes(data)
		if err != nil {
			return CubesConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return CubesConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseCubes(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseCubes(defaultCubesYAML)
	if err != nil {
		return DefaultCubesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseCubes decodes YAML over the hardcoded defaults.
func parseCubes(data []byte) (CubesConfig, error) {
	cfg := DefaultCubesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CubesConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cubes", "configs", filename)
}

// ApplyCubesPreset modifies the config based on a difficulty preset.
func ApplyCubesPreset(cfg *CubesConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the level rules
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Moves = 12
		cfg.Rules.GoalScale = 1.3
	case DifficultyHard:
		cfg.Rules.Moves = 8
		cfg.Rules.GoalScale = 1.7
	case DifficultyFixed:
		cfg.Rules.GoalScale = 1.0
	}
}
