// snake plays grid snake with poles, double fruit and super fruit in the
// terminal.
//
// Usage:
//
//	snake list               - List board presets
//	snake play [board]       - Play a board (default: snake)
//	snake menu               - Pick boards interactively
//	snake scores [board]     - Show best runs
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.snake/scores.db)
//	--config <path>     - Custom board config YAML
//	--log-level <lvl>   - debug, info, warn or error (default: warn)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import boards to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - grid snake in your terminal",
	Long: `Snake is a terminal grid snake game. Eat fruit to grow, avoid the
border, your own body and poles. A super fruit makes you invincible for a
few moves: poles break and your body stops being an obstacle.

Available commands:
  list     - Show board presets
  play     - Play a board directly
  menu     - Interactive board picker
  scores   - View best runs

Examples:
  snake list
  snake play
  snake play snake_small --seed 42
  snake menu
  snake scores snake`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}
