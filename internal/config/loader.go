package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPenguin loads the penguin game configuration.
// Search order: customPath -> ~/.penguin/configs/penguin.yaml -> ./configs/penguin.yaml -> embedded default
func LoadPenguin(customPath string) (PenguinConfig, error) {
	var cfg PenguinConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("penguin.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/penguin.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPenguinYAML, &cfg); err != nil {
		return DefaultPenguinConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".penguin", "configs", filename)
}

// UserBoardsDir returns the per-user custom boards directory, or empty if
// home is unavailable.
func UserBoardsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".penguin", "boards")
}

// ApplyPenguinPreset modifies the config based on a difficulty preset.
func ApplyPenguinPreset(cfg *PenguinConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.TimeLimit = 90
		cfg.Speeds.Enemy = 224
		cfg.Enemy.IQ = 0.25
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.TimeLimit = 45
		cfg.Speeds.Enemy = 288
		cfg.Enemy.IQ = 0.8
	}
}
