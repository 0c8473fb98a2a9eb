package snake

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Timing in seconds.
const (
	MovePeriod   = 0.4 // automatic move interval
	RestartDelay = 1.0 // game-over pause before the next run
)

// SuperFruitMoves is the invincibility granted by one super fruit.
const SuperFruitMoves = 5

// Smallest playable board, border included. The starting body and the
// seeded fruit must both lie inside the border.
const (
	MinGridWidth  = 8
	MinGridHeight = 8
)

// ErrGridTooSmall is returned for boards below MinGridWidth x MinGridHeight.
var ErrGridTooSmall = errors.New("snake: grid too small")

// Status is the phase of the current run.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusGameOver Status = "game_over"
)

// Option configures a State.
type Option func(*State)

// WithLogger routes spawn and game-over events to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *State) {
		s.logger = logger
	}
}

// State runs one board: it decides when the snake moves, resolves what it
// runs into and restarts after a game over. It is not safe for concurrent
// use; the frame loop owns it.
type State struct {
	width   int
	height  int
	body    *Body
	field   *Field
	status  Status
	waiting float64 // seconds since the last move or since the game ended
	rng     Rand
	logger  *log.Logger
}

// NewState creates a board of width x height cells, border included.
func NewState(width, height int, rng Rand, opts ...Option) (*State, error) {
	if width < MinGridWidth || height < MinGridHeight {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrGridTooSmall, width, height, MinGridWidth, MinGridHeight)
	}
	if rng == nil {
		return nil, errors.New("snake: nil random source")
	}

	s := &State{
		width:  width,
		height: height,
		rng:    rng,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.reset()
	return s, nil
}

func (s *State) reset() {
	s.body = NewBody(2, 2)
	s.field = NewField(s.width, s.height, s.rng, s.logger)
	s.status = StatusPlaying
	s.waiting = 0
}

// Width returns the board width in cells, border included.
func (s *State) Width() int { return s.width }

// Height returns the board height in cells, border included.
func (s *State) Height() int { return s.height }

// Body exposes the snake for read-only queries.
func (s *State) Body() *Body { return s.body }

// Field exposes the items for read-only queries.
func (s *State) Field() *Field { return s.field }

// Status returns the phase of the current run.
func (s *State) Status() Status { return s.status }

// GameOver reports whether the current run has ended.
func (s *State) GameOver() bool { return s.status == StatusGameOver }

// Waiting returns the accumulated seconds since the last move.
func (s *State) Waiting() float64 { return s.waiting }

// Interior returns the playable area inside the border.
func (s *State) Interior() core.Rect {
	return core.NewRect(1, 1, s.width-2, s.height-2)
}

// Borders returns the top, bottom, left and right border strips.
func (s *State) Borders() [4]core.Rect {
	return [4]core.Rect{
		core.NewRect(0, 0, s.width, 1),
		core.NewRect(0, s.height-1, s.width, 1),
		core.NewRect(0, 0, 1, s.height),
		core.NewRect(s.width-1, 0, 1, s.height),
	}
}

// HandleDirectionInput turns the snake and moves it at once. Input that
// repeats the heading or reverses it is ignored entirely, as is any input
// after the game is over.
func (s *State) HandleDirectionInput(d Direction) {
	if s.GameOver() {
		return
	}
	heading := s.body.Heading()
	if d == heading || d == heading.Opposite() {
		return
	}
	s.Step(&d)
}

// Tick advances the clock by dt seconds. While playing, the snake moves
// once the move period has passed; after a game over, the board restarts
// once the restart delay has passed.
func (s *State) Tick(dt float64) {
	s.waiting += dt

	if s.GameOver() {
		if s.waiting > RestartDelay {
			s.Restart()
		}
		return
	}

	if s.waiting > MovePeriod {
		s.field.SetSuperFruitColors(RandomColor(s.rng))
		s.Step(nil)
	}
}

// Step commits one move along override, or along the heading when nil.
// A move into the border or the body ends the run instead.
func (s *State) Step(override *Direction) {
	if s.GameOver() {
		return
	}

	next := s.body.NextHead(override)
	switch {
	case !s.Interior().Contains(next.X, next.Y):
		s.end("wall")
		return
	case s.body.OverlapsBody(next):
		s.end("self")
		return
	}

	s.body.Move(override)
	s.body.DecreaseInvincibility()
	s.resolveEncounter()
	s.body.ApplyPendingGrowth()
	s.waiting = 0
}

// resolveEncounter applies whatever item sits under the new head.
func (s *State) resolveEncounter() {
	item, idx, ok := s.field.CollisionAt(s.body.Head())
	if !ok {
		return
	}

	switch item.Kind {
	case KindFruit:
		s.field.RemoveAt(idx)
		s.field.SpawnSet(s.body)
		s.body.RequestGrowth(1)
	case KindDoubleFruit:
		s.field.RemoveAt(idx)
		s.field.SpawnSet(s.body)
		s.body.RequestGrowth(2)
	case KindSuperFruit:
		s.field.RemoveAt(idx)
		s.field.SpawnSet(s.body)
		s.body.IncreaseInvincibility(SuperFruitMoves)
	case KindPole:
		if !s.body.IsInvincible() {
			s.end("pole")
			return
		}
		s.field.RemoveAt(idx)
	}
}

func (s *State) end(cause string) {
	s.status = StatusGameOver
	s.waiting = 0
	s.logger.Info("game over", "cause", cause, "length", s.body.Len())
}

// Restart rebuilds the board exactly as it was at construction.
func (s *State) Restart() {
	s.reset()
	s.logger.Debug("restarted", "width", s.width, "height", s.height)
}
