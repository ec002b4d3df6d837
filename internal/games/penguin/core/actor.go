package core

// Kind is the closed set of entity variants the simulation knows about.
// Behavior is dispatched by switching on Kind, never by embedding.
type Kind int

const (
	KindWall Kind = iota
	KindBlock
	KindDiamond
	KindEgg
	KindPlayer
	KindEnemy
	KindMarker
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindBlock:
		return "block"
	case KindDiamond:
		return "diamond"
	case KindEgg:
		return "egg"
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindMarker:
		return "marker"
	default:
		return "unknown"
	}
}

// SetID names an entity set. Obstacle and lethality relationships are
// expressed as lists of set IDs; membership is mutated only through the
// world's add/remove operations.
type SetID int

const (
	SetWalls SetID = iota
	SetBlocks
	SetMovingBlocks
	SetDiamonds
	SetEnemies
	SetStunnedEnemies
	SetPlayers

	setCount
)

// String returns the set's name.
func (s SetID) String() string {
	switch s {
	case SetWalls:
		return "walls"
	case SetBlocks:
		return "blocks"
	case SetMovingBlocks:
		return "moving-blocks"
	case SetDiamonds:
		return "diamonds"
	case SetEnemies:
		return "enemies"
	case SetStunnedEnemies:
		return "stunned-enemies"
	case SetPlayers:
		return "players"
	default:
		return "unknown"
	}
}

// PlayerState is the player's life-cycle state.
type PlayerState int

const (
	PlayerActive PlayerState = iota
	PlayerDying
	PlayerExhausted
)

// EnemyState is the enemy's life-cycle state.
type EnemyState int

const (
	EnemyPatrol EnemyState = iota
	EnemyStunned
	EnemyRespawning
)

// Actor is any simulated entity: position, velocity, collision rulesets,
// and the per-kind state the player/enemy/marker machines need. Unused
// fields stay zero for kinds that do not need them.
type Actor struct {
	Kind   Kind
	Pos    Vec2 // top-left corner, pixels
	Vel    Vec2 // pixels per second
	Facing Vec2 // unit direction, persists when velocity is zero

	StoppedBy []SetID // obstacle sets that halt motion on contact
	KilledBy  []SetID // obstacle sets that are lethal on contact

	Killed bool // fatal contact registered this tick

	Spawn Vec2 // level-start anchor for player and enemy resets

	// Player
	PState     PlayerState
	Lives      int
	Frozen     bool
	DeathTimer float64

	// Enemy
	EState       EnemyState
	Hunt         bool
	Deaths       int
	PointValue   int
	StunTimer    float64
	RespawnTimer float64

	// Score marker
	MarkerValue int
	MarkerStep  int
	markerClock float64

	// Animation
	Frame     int
	animClock float64

	memberships []SetID
}

// Rect returns the actor's bounding box. Every entity spans one tile.
func (a *Actor) Rect(tile float64) Rect {
	return Rect{X: a.Pos.X, Y: a.Pos.Y, W: tile, H: tile}
}

// inSet reports whether the actor currently belongs to the given set.
func (a *Actor) inSet(id SetID) bool {
	for _, m := range a.memberships {
		if m == id {
			return true
		}
	}
	return false
}
