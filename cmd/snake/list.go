package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List board presets",
	Long:  `Shows every registered board with its size from the active config.`,
	Run:   runList,
}

// boardName maps a registered ID back to its config preset.
func boardName(gameID string) string {
	if gameID == "snake" {
		return config.BoardClassic
	}
	return strings.TrimPrefix(gameID, "snake_")
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No boards available.")
		return
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Println("Available boards:")
	fmt.Println()
	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "ID", "Title", "Size")
	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "--", "-----", "----")
	for _, g := range games {
		b := cfg.Board(boardName(g.ID))
		fmt.Printf("  %-*s  %-14s  %dx%d\n", maxIDLen, g.ID, g.Title, b.Width, b.Height)
	}

	fmt.Println()
	fmt.Println("Run 'snake play <id>' to play a board.")
}
