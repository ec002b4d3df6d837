// Package config provides YAML-based game configuration loading and
// difficulty management for the penguin arcade.
package config

// PenguinConfig contains all configuration for the penguin game.
type PenguinConfig struct {
	Gameplay   PenguinGameplay  `yaml:"gameplay"`
	Speeds     PenguinSpeeds    `yaml:"speeds"`
	Scoring    PenguinScoring   `yaml:"scoring"`
	Enemy      PenguinEnemy     `yaml:"enemy"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PenguinGameplay defines the session rules: lives, the round clock, and
// what it takes to clear a board.
type PenguinGameplay struct {
	Lives          int     `yaml:"lives"`
	TimeLimit      float64 `yaml:"time_limit"`      // seconds per board
	KillTarget     int     `yaml:"kill_target"`     // enemy kills to clear a board
	ClearanceBonus int     `yaml:"clearance_bonus"` // bonus unit for fast clears
}

// PenguinSpeeds defines movement speeds in pixels per second.
type PenguinSpeeds struct {
	Player float64 `yaml:"player"`
	Block  float64 `yaml:"block"`
	Enemy  float64 `yaml:"enemy"`
}

// PenguinScoring defines point values.
type PenguinScoring struct {
	EnemyKill    int `yaml:"enemy_kill"`
	EggBreak     int `yaml:"egg_break"`
	DiamondBonus int `yaml:"diamond_bonus"`
	StunFactor   int `yaml:"stun_factor"` // multiplier for finishing a stunned enemy
}

// PenguinEnemy defines enemy behaviour parameters.
type PenguinEnemy struct {
	IQ          float64 `yaml:"iq"`           // chase probability, 0.0 to 1.0
	StunTime    float64 `yaml:"stun_time"`    // seconds an enemy stays stunned
	RespawnTime float64 `yaml:"respawn_time"` // seconds of post-respawn immunity
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "boards", "time", or "none"
	MaxAt int    `yaml:"max_at"` // boards cleared/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // enemy speed gain at max difficulty
	IQBonus         float64 `yaml:"iq_bonus"`         // chase probability gain at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

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
