package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the given board (default: snake).

Controls:
  Arrows/WASD/hjkl  - Turn (moves at once)
  Ctrl+S            - Save a text screenshot to ~/.snake/screenshots
  Q/Ctrl+C          - Quit

The snake moves on its own every 0.4s. After a game over the board
restarts by itself one second later.

Examples:
  snake play
  snake play snake_wide
  snake play --seed 42 --log-file snake.log --log-level debug
  snake play --config ./my-boards.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// session holds what every interactive command needs.
type session struct {
	logger *log.Logger
	store  *storage.Store
	cfg    core.RuntimeConfig
	close  func()
}

// openSession validates the board config, builds the logger and opens the
// runs database. A missing database only disables best lengths.
func openSession() (*session, error) {
	if _, err := config.LoadSnake(flagConfig); err != nil {
		if errors.Is(err, config.ErrInvalidBoard) {
			return nil, fmt.Errorf("%w (boards need at least %dx%d cells)", err, config.MinBoardWidth, config.MinBoardHeight)
		}
		return nil, err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return nil, err
	}
	snake.SetConfigPath(flagConfig)
	snake.SetLogger(logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("runs database unavailable", "path", flagDBPath, "error", err)
		store = nil
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	return &session{
		logger: logger,
		store:  store,
		cfg:    cfg,
		close: func() {
			if store != nil {
				store.Close()
			}
			closeLog()
		},
	}, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "snake"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available boards.")
		os.Exit(1)
	}

	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		s.close()
		fmt.Fprintf(os.Stderr, "Error creating board: %v\n", err)
		os.Exit(1)
	}

	s.logger.Info("starting", "game", gameID, "seed", s.cfg.Seed)
	runErr := tui.Run(game, s.store, s.cfg, s.logger)
	s.close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
