package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/demo.yaml
var defaultDemoYAML []byte

// DefaultSnakeConfig returns the built-in configuration. It matches the
// embedded snake.yaml and is used if that fails to parse.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		TickMS:     120,
		Resolution: "snapshot",
		Solo: PlayerConfig{
			Segments:  []snake.Point{{X: 10, Y: 10}},
			Direction: "up",
			Color:     "green",
			HeadColor: "bright_green",
		},
		Versus: []PlayerConfig{
			{
				Segments:  []snake.Point{{X: 5, Y: 14}, {X: 5, Y: 15}, {X: 5, Y: 16}},
				Direction: "up",
				Color:     "green",
				HeadColor: "bright_green",
			},
			{
				Segments:  []snake.Point{{X: 14, Y: 5}, {X: 14, Y: 4}, {X: 14, Y: 3}},
				Direction: "down",
				Color:     "blue",
				HeadColor: "bright_blue",
			},
		},
		Theme: ThemeConfig{
			HeadGlyph:   "@",
			BodyGlyph:   "o",
			DeadGlyph:   "x",
			FoodGlyph:   "*",
			FoodColor:   "red",
			BorderColor: "gray",
		},
	}
}

// DefaultDemoConfig returns the embedded attract-mode scenarios.
func DefaultDemoConfig() DemoConfig {
	var cfg DemoConfig
	if err := yaml.Unmarshal(defaultDemoYAML, &cfg); err != nil {
		return DemoConfig{}
	}
	return cfg
}

// GetDefaultYAML returns the embedded default YAML for a config file name
// ("snake" or "demo").
func GetDefaultYAML(name string) []byte {
	switch name {
	case "snake":
		return defaultSnakeYAML
	case "demo":
		return defaultDemoYAML
	default:
		return nil
	}
}
