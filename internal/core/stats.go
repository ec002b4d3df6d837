package core

// RunStats summarizes a finished game session beyond the raw score.
// The platform persists these alongside the score when the game provides them.
type RunStats struct {
	BoardsCleared int
	Kills         int
	DurationSecs  int
	Won           bool
}

// StatsProvider is an optional interface for games that can report
// extended statistics about the run that just ended.
type StatsProvider interface {
	RunStats() RunStats
}
