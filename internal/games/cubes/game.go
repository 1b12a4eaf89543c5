// Package cubes runs a Cubes session: it drives the board, resolver and
// state from internal/games/cubes/core, publishes events for the platform
// layer and keeps the high score in a HighScoreStore.
package cubes

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-cubes/internal/config"
	"github.com/vovakirdan/tui-cubes/internal/games/cubes/core"
)

// GameID is the storage key of the normal preset.
const GameID = "cubes"

// GameIDFor returns the storage key of a difficulty preset.
// Each preset keeps its own high score.
func GameIDFor(preset config.DifficultyPreset) string {
	if preset == "" || preset == config.DifficultyNormal {
		return GameID
	}
	return GameID + "_" + string(preset)
}

// HighScoreStore persists one high score per game id.
type HighScoreStore interface {
	HighScore(gameID string) (int, error)
	SaveHighScore(gameID string, score int) error
}

// Game is a single-player Cubes session.
// It is not safe for concurrent use; the platform calls it from one goroutine.
type Game struct {
	id     string
	cfg    config.CubesConfig
	rules  core.Rules
	store  HighScoreStore
	logger *log.Logger

	seed     int64
	rng      *rand.Rand
	board    *core.Board
	resolver *core.Resolver
	state    core.State

	listeners []Listener
}

// New creates a session from cfg on a board built from seed and loads the
// stored high score once. store and logger may be nil.
func New(cfg config.CubesConfig, seed int64, store HighScoreStore, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cubes: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		id:     GameIDFor(cfg.Difficulty.Preset),
		cfg:    cfg,
		rules:  rulesFromConfig(cfg),
		store:  store,
		logger: logger,
	}

	highScore := 0
	if store != nil {
		score, err := store.HighScore(g.id)
		if err != nil {
			logger.Warn("cannot load high score", "game", g.id, "err", err)
		} else {
			highScore = score
		}
	}
	g.state = core.NewState(g.rules, highScore)
	g.Reset(seed)

	return g, nil
}

// rulesFromConfig maps the YAML settings onto core rules.
func rulesFromConfig(cfg config.CubesConfig) core.Rules {
	dm := config.NewDifficultyManager(cfg.Difficulty)
	base := cfg.Rules.Moves
	return core.Rules{
		MovesPerLevel: base,
		InitialGoal:   cfg.Rules.Goal,
		GoalScale:     cfg.Rules.GoalScale,
		MinRegion:     cfg.Rules.MinRegion,
		Score:         core.BonusScore(cfg.Scoring.PerCell, cfg.Scoring.BonusFrom, cfg.Scoring.BonusPerCell),
		MovesFor: func(level int) int {
			return dm.Moves(base, level)
		},
	}
}

// ID returns the storage key of this session.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.cfg.Difficulty.Preset {
	case "", config.DifficultyNormal:
		return "Cubes"
	default:
		return fmt.Sprintf("Cubes (%s)", g.cfg.Difficulty.Preset)
	}
}

// Subscribe registers a listener for session events.
func (g *Game) Subscribe(l Listener) {
	if l != nil {
		g.listeners = append(g.listeners, l)
	}
}

func (g *Game) publish(e Event) {
	for _, l := range g.listeners {
		l(e)
	}
}

// State returns the current session state.
func (g *Game) State() core.State {
	return g.state
}

// Board returns the live board. Callers must not mutate it.
func (g *Game) Board() *core.Board {
	return g.board
}

// Seed returns the seed of the current board.
func (g *Game) Seed() int64 {
	return g.seed
}

// Reset starts over at level 1 on a fresh board built from seed.
// The high score is kept.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
	g.board = core.NewBoard(g.cfg.Board.Size, g.cfg.Board.Colors, g.rng)
	g.board.Initialize()
	g.resolver = core.NewResolver(g.board, g.rules.MinRegion)
	g.state = g.state.Reset()

	g.logger.Info("session started",
		"game", g.id,
		"seed", seed,
		"size", g.board.Size(),
		"colors", g.board.Colors(),
		"high", g.state.HighScore,
	)

	if !g.ensureMove() {
		return
	}
	g.publish(LevelStartedEvent{
		Level:     g.state.Level,
		Goal:      g.state.Goal,
		Moves:     g.state.Moves,
		HighScore: g.state.HighScore,
	})
}

// Restart begins a new session on a board drawn from the current RNG.
func (g *Game) Restart() {
	g.Reset(g.rng.Int63())
}

// Select plays the cell at (x, y). Invalid selections and regions below the
// minimum size change nothing and publish nothing. Selecting outside the
// playing phase returns core.ErrIllegalState.
func (g *Game) Select(x, y int) (core.MatchOutcome, error) {
	if g.state.Phase != core.PhasePlaying {
		out := core.MatchOutcome{Kind: core.SelectionInvalid, Origin: core.C(x, y)}
		return out, fmt.Errorf("cubes: select in phase %s: %w", g.state.Phase, core.ErrIllegalState)
	}

	out := g.resolver.AttemptMatch(x, y)
	if !out.Resolved() {
		g.logger.Debug("selection ignored", "x", x, "y", y, "kind", out.Kind, "size", out.Size())
		return out, nil
	}

	prev := g.state
	next, err := prev.ApplyMatch(out.Size())
	if err != nil {
		return out, fmt.Errorf("cubes: %w", err)
	}
	next, outcome := next.Evaluate()
	g.state = next

	points := next.Score - prev.Score
	g.logger.Debug("match resolved",
		"x", x, "y", y,
		"color", out.Region.Color(),
		"size", out.Size(),
		"points", points,
		"moves", next.Moves,
	)
	g.publish(MatchResolvedEvent{Outcome: out, Points: points, State: next})

	switch outcome {
	case core.LevelCleared:
		g.logger.Info("level cleared", "level", next.Level, "score", next.Score, "goal", next.Goal)
		if next.Score > next.HighScore {
			g.logger.Info("new high score", "game", g.id, "score", next.Score)
			g.saveHighScore(next.Score)
		}
		g.publish(LevelClearedEvent{
			Level:     next.Level,
			Score:     next.Score,
			Goal:      next.Goal,
			MovesLeft: next.Moves,
		})
	case core.OutOfMoves:
		g.logger.Info("game over", "level", next.Level, "score", next.Score, "goal", next.Goal)
		g.publish(GameOverEvent{
			Level:     next.Level,
			Score:     next.Score,
			Goal:      next.Goal,
			HighScore: next.HighScore,
		})
	default:
		g.ensureMove()
	}

	return out, nil
}

// AdvanceLevel moves from a cleared level to the next one and raises the
// session high score. The record itself was stored when the level cleared.
func (g *Game) AdvanceLevel() error {
	next, record, err := g.state.AdvanceLevel()
	if err != nil {
		return fmt.Errorf("cubes: %w", err)
	}
	g.state = next

	if !g.ensureMove() {
		return nil
	}
	g.publish(LevelStartedEvent{
		Level:     next.Level,
		Goal:      next.Goal,
		Moves:     next.Moves,
		HighScore: next.HighScore,
		NewRecord: record,
	})
	return nil
}

func (g *Game) saveHighScore(score int) {
	if g.store == nil {
		return
	}
	if err := g.store.SaveHighScore(g.id, score); err != nil {
		g.logger.Warn("cannot save high score", "game", g.id, "score", score, "err", err)
	}
}

// maxReshuffles bounds ensureMove when the minimum region is above 2.
const maxReshuffles = 16

// ensureMove reshuffles a board that has no playable region left. A board
// that stays stuck ends the session as a game over; ensureMove then
// returns false.
func (g *Game) ensureMove() bool {
	if g.resolver.HasPlayableRegion() {
		return true
	}

	attempts := 0
	for i := 0; i < maxReshuffles && !g.resolver.HasPlayableRegion(); i++ {
		attempts += g.board.Reshuffle()
	}
	g.logger.Info("board reshuffled", "attempts", attempts)
	g.publish(BoardReshuffledEvent{Attempts: attempts})

	if g.resolver.HasPlayableRegion() {
		return true
	}

	next, err := g.state.Stall()
	if err != nil {
		g.logger.Error("cannot end stuck level", "err", err)
		return false
	}
	g.state = next

	g.logger.Warn("board has no playable region", "min_region", g.resolver.MinRegion(), "level", next.Level)
	g.publish(GameOverEvent{
		Level:     next.Level,
		Score:     next.Score,
		Goal:      next.Goal,
		HighScore: next.HighScore,
		Stuck:     true,
	})
	return false
}
