package core

// Tuning collects every gameplay constant the engine consumes. The config
// layer builds one from user configuration; tests use DefaultTuning so
// expected positions and timings stay stable.
type Tuning struct {
	TileSize float64 // pixel edge of one grid tile

	PlayerSpeed float64 // pixels per second
	BlockSpeed  float64 // pixels per second, pushed blocks
	EnemySpeed  float64 // pixels per second

	Tolerance    float64 // direction-neighbour slack in pixels
	PushRatio    float64 // hit-circle scale for finding pushable blocks
	WallRatio    float64 // hit-circle scale for the wall rattle check
	BlockRatio   float64 // rect scale for the block look-ahead occupancy check
	DiamondRatio float64 // rect scale for the diamond formation test

	EnemyIQ        float64 // probability the heading heuristic chases
	DeathTime      float64 // player death sequence, seconds
	DeathFrames    int     // frames in the death animation
	StunTime       float64 // enemy stun, seconds
	RespawnTime    float64 // enemy respawn immunity, seconds
	MarkerStepTime float64 // seconds per score-marker shrink step
	MarkerSteps    int     // shrink steps before a marker self-destructs
	WalkFrameTime  float64 // seconds per walk animation frame
	StunFrameTime  float64 // seconds per stun animation frame

	EnemyKillPoints int // squashing an enemy
	EggBreakPoints  int // breaking an egg block
	DiamondBonus    int // aligning all diamonds
	StunBonusFactor int // multiplier for finishing a stunned enemy

	StartLives int // player lives at session start
}

// DefaultTuning returns the standard ruleset. Speeds keep the classic
// ratios: a pushed block flies at twice the player's speed, enemies move
// slightly slower than the player.
func DefaultTuning() Tuning {
	return Tuning{
		TileSize: 64,

		PlayerSpeed: 320,
		BlockSpeed:  640,
		EnemySpeed:  256,

		Tolerance:    12,
		PushRatio:    1.2,
		WallRatio:    0.75,
		BlockRatio:   1.1,
		DiamondRatio: 2.1,

		EnemyIQ:        0.5,
		DeathTime:      1.5,
		DeathFrames:    3,
		StunTime:       4.0,
		RespawnTime:    1.0,
		MarkerStepTime: 0.2,
		MarkerSteps:    5,
		WalkFrameTime:  0.12,
		StunFrameTime:  0.25,

		EnemyKillPoints: 400,
		EggBreakPoints:  500,
		DiamondBonus:    1000,
		StunBonusFactor: 2,

		StartLives: 3,
	}
}
