package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick boards interactively",
	Long: `Start in menu mode. The menu lists every board with its best length.
After a game you return to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play the selected board
  Tab          - Best runs
  Q            - Quit

Examples:
  snake menu
  snake menu --fps 30
  snake menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.close()

	cfg := s.cfg
	for {
		res, err := tui.RunMenu(s.store, cfg, s.logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(s.store, "", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return
			}

		default:
			game, err := registry.Create(res.GameID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating board: %v\n", err)
				continue
			}
			if err := tui.Run(game, s.store, cfg, s.logger); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}
			// A fixed --seed only applies to the first game.
			cfg.Seed = 0
		}
	}
}
