package core

import (
	"fmt"
	"math"
)

// Phase is the lifecycle stage of a session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLevelCleared
	PhaseGameOver
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLevelCleared:
		return "level_cleared"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome is the classification produced by State.Evaluate.
type Outcome int

const (
	Continue Outcome = iota
	LevelCleared
	OutOfMoves
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case LevelCleared:
		return "level_cleared"
	case OutOfMoves:
		return "out_of_moves"
	default:
		return "unknown"
	}
}

// Default rule values.
const (
	DefaultMovesPerLevel = 10
	DefaultInitialGoal   = 5
	DefaultGoalScale     = 1.5
)

// Rules holds the tunables of a session.
type Rules struct {
	MovesPerLevel int
	InitialGoal   int
	GoalScale     float64
	MinRegion     int
	Score         ScoreFunc

	// MovesFor optionally overrides the move budget per level (1-based).
	// Non-positive results fall back to MovesPerLevel.
	MovesFor func(level int) int
}

// DefaultRules returns the stock rule set.
func DefaultRules() Rules {
	return Rules{
		MovesPerLevel: DefaultMovesPerLevel,
		InitialGoal:   DefaultInitialGoal,
		GoalScale:     DefaultGoalScale,
		MinRegion:     DefaultMinRegion,
		Score:         DefaultScore(),
	}
}

// NextGoal returns the goal of the level after one with the given goal.
// Any scale above 1 grows the goal by at least one point.
func (r Rules) NextGoal(goal int) int {
	if r.GoalScale <= 1 {
		return goal
	}
	next := int(math.Ceil(float64(goal) * r.GoalScale))
	if next <= goal {
		next = goal + 1
	}
	return next
}

// MovesForLevel returns the move budget of the given level.
func (r Rules) MovesForLevel(level int) int {
	if r.MovesFor != nil {
		if m := r.MovesFor(level); m > 0 {
			return m
		}
	}
	return r.MovesPerLevel
}

// ScoreFor returns the points for removing a region of size n.
func (r Rules) ScoreFor(n int) int {
	if r.Score == nil {
		return LinearScore(1)(n)
	}
	return r.Score(n)
}

// State is the session state. Transitions return a new value and never
// modify the receiver.
type State struct {
	Score     int
	Goal      int
	Moves     int
	Level     int
	HighScore int
	Phase     Phase

	rules Rules
}

// NewState creates a level-1 state with the given rules and stored high score.
func NewState(rules Rules, highScore int) State {
	if highScore < 0 {
		highScore = 0
	}
	s := State{HighScore: highScore, rules: rules}
	return s.Reset()
}

// Rules returns the rule set the state was created with.
func (s State) Rules() Rules {
	return s.rules
}

// ApplyMatch credits a removed region of regionSize cells and spends one move.
func (s State) ApplyMatch(regionSize int) (State, error) {
	switch {
	case s.Phase != PhasePlaying:
		return s, fmt.Errorf("state: apply match in phase %s: %w", s.Phase, ErrIllegalState)
	case s.Moves <= 0:
		return s, fmt.Errorf("state: apply match with no moves left: %w", ErrIllegalState)
	case regionSize < 1:
		return s, fmt.Errorf("state: apply match of size %d: %w", regionSize, ErrIllegalState)
	}

	s.Score += s.rules.ScoreFor(regionSize)
	s.Moves--
	return s, nil
}

func (s State) classify() Outcome {
	if s.Score >= s.Goal {
		return LevelCleared
	}
	if s.Moves <= 0 {
		return OutOfMoves
	}
	return Continue
}

// Evaluate classifies the state. A cleared goal wins over running out of
// moves. While playing, the phase follows the outcome.
func (s State) Evaluate() (State, Outcome) {
	out := s.classify()
	if s.Phase != PhasePlaying {
		return s, out
	}
	switch out {
	case LevelCleared:
		s.Phase = PhaseLevelCleared
	case OutOfMoves:
		s.Phase = PhaseGameOver
	}
	return s, out
}

// Stall ends a playing level whose board has no removable region left.
func (s State) Stall() (State, error) {
	if s.Phase != PhasePlaying {
		return s, fmt.Errorf("state: stall in phase %s: %w", s.Phase, ErrIllegalState)
	}
	s.Phase = PhaseGameOver
	return s, nil
}

// AdvanceLevel starts the next level. The returned bool is true when the
// finished level set a new high score.
func (s State) AdvanceLevel() (State, bool, error) {
	if s.Phase != PhaseLevelCleared {
		return s, false, fmt.Errorf("state: advance level in phase %s: %w", s.Phase, ErrIllegalState)
	}

	record := s.Score > s.HighScore
	if record {
		s.HighScore = s.Score
	}
	s.Level++
	s.Score = 0
	s.Goal = s.rules.NextGoal(s.Goal)
	s.Moves = s.rules.MovesForLevel(s.Level)
	s.Phase = PhasePlaying
	return s, record, nil
}

// Reset returns to level 1. HighScore is kept.
func (s State) Reset() State {
	s.Score = 0
	s.Level = 1
	s.Moves = s.rules.MovesForLevel(s.Level)
	s.Goal = s.rules.InitialGoal
	s.Phase = PhasePlaying
	return s
}

// Progress returns Score/Goal clamped to [0, 1].
func (s State) Progress() float64 {
	if s.Goal <= 0 {
		return 1
	}
	p := float64(s.Score) / float64(s.Goal)
	return math.Max(0, math.Min(1, p))
}
