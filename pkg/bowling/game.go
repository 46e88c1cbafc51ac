package bowling

import (
	"github.com/bft-labs/tenpin/internal/domain"
	"github.com/bft-labs/tenpin/pkg/log"
)

// Re-export domain types so callers never import internal packages.
type (
	Frame      = domain.Frame
	FrameScore = domain.FrameScore
	Kind       = domain.Kind
	State      = domain.State
	RollError  = domain.RollError
)

const (
	KindOpen   = domain.KindOpen
	KindSpare  = domain.KindSpare
	KindStrike = domain.KindStrike

	StateInProgress = domain.StateInProgress
	StateComplete   = domain.StateComplete

	MaxFrames = domain.MaxFrames
	MaxPins   = domain.MaxPins
)

var (
	// ErrInvalidPins is returned by Roll for a pin count outside [0,10].
	ErrInvalidPins = domain.ErrInvalidPins

	// ErrGameComplete is returned by Roll once the game is finished.
	ErrGameComplete = domain.ErrGameComplete
)

// Game is a single bowling game. The zero value is not usable; call NewGame.
type Game struct {
	rolls  []int
	logger log.Logger
}

// NewGame creates an empty game.
func NewGame(opts ...Option) *Game {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Game{
		rolls:  make([]int, 0, 21),
		logger: o.logger,
	}
}

// Roll records the pins knocked down by one throw.
func (g *Game) Roll(pins int) error {
	frame := domain.CurrentFrame(g.rolls)
	if pins < 0 || pins > domain.MaxPins {
		g.logger.Warn("roll rejected", log.Int("pins", pins), log.Int("frame", frame), log.Err(domain.ErrInvalidPins))
		return &domain.RollError{Pins: pins, Frame: frame, Err: domain.ErrInvalidPins}
	}
	if domain.GameState(g.rolls) == domain.StateComplete {
		g.logger.Warn("roll rejected", log.Int("pins", pins), log.Int("frame", frame), log.Err(domain.ErrGameComplete))
		return &domain.RollError{Pins: pins, Frame: frame, Err: domain.ErrGameComplete}
	}

	g.rolls = append(g.rolls, pins)
	g.logger.Debug("roll accepted", log.Int("pins", pins), log.Int("frame", frame))

	if domain.GameState(g.rolls) == domain.StateComplete {
		g.logger.Debug("game complete", log.Int("rolls", len(g.rolls)), log.Int("score", g.Score()))
	}
	return nil
}

// Score returns the score so far. Frames that cannot be formed yet are
// left out, so an unfinished game scores what has been bowled.
func (g *Game) Score() int {
	return domain.Score(domain.DeriveFrames(g.rolls))
}

// Frames returns the frames derivable from the rolls so far.
func (g *Game) Frames() []Frame {
	return domain.DeriveFrames(g.rolls)
}

// Scorecard returns a running total for each derived frame.
func (g *Game) Scorecard() []FrameScore {
	return domain.Scorecard(domain.DeriveFrames(g.rolls))
}

// Rolls returns a copy of the roll log.
func (g *Game) Rolls() []int {
	return append([]int(nil), g.rolls...)
}

// State reports whether the game still accepts rolls.
func (g *Game) State() State {
	return domain.GameState(g.rolls)
}

// Complete is shorthand for State() == StateComplete.
func (g *Game) Complete() bool {
	return g.State() == StateComplete
}

// CurrentFrame returns the 1-based frame the next roll belongs to.
func (g *Game) CurrentFrame() int {
	return domain.CurrentFrame(g.rolls)
}
