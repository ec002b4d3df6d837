package penguin

// GameStateType represents the current game state.
type GameStateType string

const (
	StateReady        GameStateType = "ready"
	StatePlaying      GameStateType = "playing"
	StateBoardCleared GameStateType = "board_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the session state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Board   string // Current board ID
	Mode    string // "classic" or "hunt"
	Score   int
	Kills   int
	Lives   int
	Timer   float64
	PlayerX float64
	PlayerY float64
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.cleared:
		state = StateBoardCleared
	case g.ready:
		state = StateReady
	}

	playerX, playerY := 0.0, 0.0
	if g.world != nil {
		if p := g.world.Player(); p != nil {
			playerX = p.Pos.X
			playerY = p.Pos.Y
		}
	}

	return Snapshot{
		Tick:    g.tick,
		Board:   g.currentBoard().ID,
		Mode:    string(g.mode),
		Score:   g.score(),
		Kills:   g.kills(),
		Lives:   g.lives(),
		Timer:   g.timer,
		PlayerX: playerX,
		PlayerY: playerY,
		State:   state,
	}
}
