package config

import (
	_ "embed"
)

//go:embed defaults/penguin.yaml
var defaultPenguinYAML []byte

// DefaultPenguinConfig returns the default penguin game configuration.
// It matches the embedded defaults/penguin.yaml and serves as the
// fallback if that file fails to parse.
func DefaultPenguinConfig() PenguinConfig {
	return PenguinConfig{
		Gameplay: PenguinGameplay{
			Lives:          3,
			TimeLimit:      60,
			KillTarget:     5,
			ClearanceBonus: 100,
		},
		Speeds: PenguinSpeeds{
			Player: 320,
			Block:  640,
			Enemy:  256,
		},
		Scoring: PenguinScoring{
			EnemyKill:    400,
			EggBreak:     500,
			DiamondBonus: 1000,
			StunFactor:   2,
		},
		Enemy: PenguinEnemy{
			IQ:          0.5,
			StunTime:    4.0,
			RespawnTime: 1.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "boards",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				IQBonus:         0.4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "penguin", "penguin_hunt":
		return defaultPenguinYAML
	default:
		return nil
	}
}
