package cubes

import "github.com/vovakirdan/tui-cubes/internal/games/cubes/core"

// Event is a notification published by a Game to its listeners.
type Event interface {
	cubesEvent()
}

// Listener receives events synchronously, after the new state is committed.
type Listener func(Event)

// MatchResolvedEvent is published when a selection removed a region.
type MatchResolvedEvent struct {
	Outcome core.MatchOutcome
	Points  int        // Points earned by this match
	State   core.State // State after the match was applied
}

func (MatchResolvedEvent) cubesEvent() {}

// LevelClearedEvent is published when the score reaches the goal.
type LevelClearedEvent struct {
	Level     int
	Score     int
	Goal      int
	MovesLeft int
}

func (LevelClearedEvent) cubesEvent() {}

// GameOverEvent is published when the moves run out below the goal, or
// when the board has no playable region left.
type GameOverEvent struct {
	Level     int
	Score     int
	Goal      int
	HighScore int
	Stuck     bool // No region can reach the minimum size
}

func (GameOverEvent) cubesEvent() {}

// BoardReshuffledEvent is published when a board without moves was recolored.
type BoardReshuffledEvent struct {
	Attempts int
}

func (BoardReshuffledEvent) cubesEvent() {}

// LevelStartedEvent is published on a new session and on every level advance.
type LevelStartedEvent struct {
	Level     int
	Goal      int
	Moves     int
	HighScore int
	NewRecord bool // The level just finished set a new high score
}

func (LevelStartedEvent) cubesEvent() {}
