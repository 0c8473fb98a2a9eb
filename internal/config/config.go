// Package config provides YAML-based game configuration loading for the
// snake platform.
package config

import (
	"errors"
	"fmt"
	"sort"
)

// Board preset names. Each one is registered as a separate game.
const (
	BoardClassic = "classic"
	BoardSmall   = "small"
	BoardWide    = "wide"
)

// Minimum board size, border included.
const (
	MinBoardWidth  = 8
	MinBoardHeight = 8
)

// ErrInvalidBoard reports a board or render setting outside playable limits.
var ErrInvalidBoard = errors.New("invalid board")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Boards map[string]BoardConfig `yaml:"boards"`
	Render RenderConfig           `yaml:"render"`
}

// BoardConfig is the grid size in cells, including the one-cell border.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RenderConfig controls how the grid maps onto terminal cells.
type RenderConfig struct {
	CellWidth int `yaml:"cell_width"` // terminal columns per grid cell
}

// Board returns the named preset, falling back to the built-in preset of
// the same name and finally to the classic board.
func (c SnakeConfig) Board(name string) BoardConfig {
	if b, ok := c.Boards[name]; ok {
		return b
	}
	defaults := DefaultSnakeConfig()
	if b, ok := defaults.Boards[name]; ok {
		return b
	}
	return defaults.Boards[BoardClassic]
}

// BoardNames returns the configured preset names in sorted order.
func (c SnakeConfig) BoardNames() []string {
	names := make([]string, 0, len(c.Boards))
	for name := range c.Boards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks every board and the render settings.
func (c SnakeConfig) Validate() error {
	for _, name := range c.BoardNames() {
		b := c.Boards[name]
		if b.Width < MinBoardWidth || b.Height < MinBoardHeight {
			return fmt.Errorf("%w: board %q is %dx%d, need at least %dx%d",
				ErrInvalidBoard, name, b.Width, b.Height, MinBoardWidth, MinBoardHeight)
		}
	}
	if c.Render.CellWidth != 1 && c.Render.CellWidth != 2 {
		return fmt.Errorf("%w: cell_width must be 1 or 2, got %d", ErrInvalidBoard, c.Render.CellWidth)
	}
	return nil
}
