package cubes

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	GameID    string
	Seed      int64
	Level     int
	Score     int
	Goal      int
	Moves     int
	HighScore int
	Phase     string
	Board     string // Rows of color characters, see core.Board.String
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		GameID:    g.id,
		Seed:      g.seed,
		Level:     g.state.Level,
		Score:     g.state.Score,
		Goal:      g.state.Goal,
		Moves:     g.state.Moves,
		HighScore: g.state.HighScore,
		Phase:     g.state.Phase.String(),
		Board:     g.board.String(),
	}
}
