package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Boards: map[string]BoardConfig{
			BoardClassic: {Width: 24, Height: 18},
			BoardSmall:   {Width: 12, Height: 10},
			BoardWide:    {Width: 40, Height: 18},
		},
		Render: RenderConfig{
			CellWidth: 2,
		},
	}
}
