package snake

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// hudHeight is the number of screen rows above the board.
const hudHeight = 2

// Package-level settings applied on the next Reset, set by the CLI before
// a game is created.
var (
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets a custom YAML config path. Empty uses the search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger handed to every new board.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts a State to the arcade registry: it maps input frames to
// directions, feeds frame time to the clock and draws into a Screen.
type Game struct {
	board     string
	state     *State
	cellWidth int
	screenW   int
	screenH   int
	tooSmall  bool
}

// New creates a game on the named board preset.
func New(board string) *Game {
	return &Game{board: board, cellWidth: 2}
}

func init() {
	for _, board := range []string{config.BoardClassic, config.BoardSmall, config.BoardWide} {
		registry.Register(New(board).ID(), func() registry.Game {
			return New(board)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.board == config.BoardClassic {
		return "snake"
	}
	return "snake_" + g.board
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.board {
	case config.BoardClassic:
		return "Snake"
	case config.BoardSmall:
		return "Snake (Small)"
	case config.BoardWide:
		return "Snake (Wide)"
	default:
		return "Snake (" + g.board + ")"
	}
}

// Reset loads the board preset and starts a fresh run seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	scfg, err := config.LoadSnake(configPath)
	if err != nil {
		logger.Warn("using default snake config", "error", err)
		scfg = config.DefaultSnakeConfig()
	}
	board := scfg.Board(g.board)
	g.cellWidth = scfg.Render.CellWidth

	rng := rand.New(rand.NewSource(cfg.Seed))
	st, err := NewState(board.Width, board.Height, rng, WithLogger(logger.With("game", g.ID())))
	if err != nil {
		// Loaded configs are validated, so only a broken default gets here.
		logger.Error("cannot create board", "board", g.board, "error", err)
		st, _ = NewState(MinGridWidth, MinGridHeight, rng, WithLogger(logger))
	}
	g.state = st
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts to a new terminal size without restarting the run.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	if g.state == nil {
		return
	}
	g.tooSmall = screenW < g.state.Width()*g.cellWidth || screenH < g.state.Height()+hudHeight
}

// Step applies at most one direction from in, then advances the clock.
// The simulation is suspended while the window is too small.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.state == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if d, ok := directionFrom(in); ok {
		g.state.HandleDirectionInput(d)
	}
	g.state.Tick(dt)

	return core.StepResult{State: g.State()}
}

// directionFrom picks the direction requested this frame, if any.
func directionFrom(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return DirRight, false
}

// State returns the current game state. Score is the body length.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.state.Body().Len(),
		GameOver: g.state.GameOver(),
		Paused:   g.tooSmall,
	}
}

// Snapshot returns the current board for renderers and determinism checks.
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot()
}
