// Package config provides YAML-based configuration for the snake game and
// its attract-mode scenarios.
package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	TickMS     int            `yaml:"tick_ms"`
	Resolution string         `yaml:"resolution"` // "snapshot" or "sequential"
	Solo       PlayerConfig   `yaml:"solo"`
	Versus     []PlayerConfig `yaml:"versus"`
	Theme      ThemeConfig    `yaml:"theme"`
	DemoFile   string         `yaml:"demo_file"`
}

// PlayerConfig is one player's starting chain and colors.
type PlayerConfig struct {
	Segments  []snake.Point `yaml:"segments"` // Head first
	Direction string        `yaml:"direction"`
	Color     string        `yaml:"color"`
	HeadColor string        `yaml:"head_color"`
}

// ThemeConfig holds the glyphs and colors shared by all players.
type ThemeConfig struct {
	HeadGlyph   string `yaml:"head_glyph"`
	BodyGlyph   string `yaml:"body_glyph"`
	DeadGlyph   string `yaml:"dead_glyph"`
	FoodGlyph   string `yaml:"food_glyph"`
	FoodColor   string `yaml:"food_color"`
	BorderColor string `yaml:"border_color"`
}

// TickInterval returns the time between board moves.
func (c SnakeConfig) TickInterval() time.Duration {
	if c.TickMS <= 0 {
		return core.DefaultTickInterval
	}
	return time.Duration(c.TickMS) * time.Millisecond
}

// Validate reports the first problem that would make the game unplayable.
func (c SnakeConfig) Validate() error {
	if c.TickMS < 0 {
		return fmt.Errorf("config: tick_ms must not be negative, got %d", c.TickMS)
	}
	switch c.Resolution {
	case "", "snapshot", "sequential":
	default:
		return fmt.Errorf("config: unknown resolution %q", c.Resolution)
	}
	if err := c.Solo.validate("solo"); err != nil {
		return err
	}
	if len(c.Versus) != 2 {
		return fmt.Errorf("config: versus needs exactly 2 players, got %d", len(c.Versus))
	}
	for i, p := range c.Versus {
		if err := p.validate(fmt.Sprintf("versus[%d]", i)); err != nil {
			return err
		}
	}
	if err := overlap(c.Versus[0].Segments, c.Versus[1].Segments); err != nil {
		return err
	}
	return c.Theme.validate()
}

// Dir returns the parsed starting direction. Call Validate first.
func (p PlayerConfig) Dir() snake.Direction {
	d, _ := snake.ParseDirection(p.Direction)
	return d
}

// Colors returns the body and head colors, falling back to the defaults.
func (p PlayerConfig) Colors() (body, head core.Color) {
	body, ok := core.ParseColor(p.Color)
	if !ok {
		body = core.ColorGreen
	}
	head, ok = core.ParseColor(p.HeadColor)
	if !ok {
		head = body
	}
	return body, head
}

func (p PlayerConfig) validate(name string) error {
	if _, ok := snake.ParseDirection(p.Direction); !ok {
		return fmt.Errorf("config: %s: unknown direction %q", name, p.Direction)
	}
	if err := validateChain(p.Segments); err != nil {
		return fmt.Errorf("config: %s: %w", name, err)
	}
	for _, c := range []string{p.Color, p.HeadColor} {
		if _, ok := core.ParseColor(c); c != "" && !ok {
			return fmt.Errorf("config: %s: unknown color %q", name, c)
		}
	}
	return nil
}

func (t ThemeConfig) validate() error {
	for _, g := range []string{t.HeadGlyph, t.BodyGlyph, t.DeadGlyph, t.FoodGlyph} {
		if utf8.RuneCountInString(g) > 1 {
			return fmt.Errorf("config: theme glyph %q must be a single character", g)
		}
	}
	for _, c := range []string{t.FoodColor, t.BorderColor} {
		if _, ok := core.ParseColor(c); c != "" && !ok {
			return fmt.Errorf("config: theme: unknown color %q", c)
		}
	}
	return nil
}

// validateChain checks that segments form a connected chain on the board.
func validateChain(segs []snake.Point) error {
	if len(segs) == 0 {
		return fmt.Errorf("empty segments")
	}
	for i, p := range segs {
		if !snake.InBounds(p) {
			return fmt.Errorf("segment %v out of bounds", p)
		}
		if i == 0 {
			continue
		}
		dx, dy := p.X-segs[i-1].X, p.Y-segs[i-1].Y
		if dx*dx+dy*dy != 1 {
			return fmt.Errorf("segment %v is not adjacent to %v", p, segs[i-1])
		}
	}
	return nil
}

func overlap(a, b []snake.Point) error {
	for _, p := range a {
		for _, q := range b {
			if p == q {
				return fmt.Errorf("config: versus starts overlap at %v", p)
			}
		}
	}
	return nil
}

// Glyph returns the first rune of s, or def when s is empty.
func Glyph(s string, def rune) rune {
	if s == "" {
		return def
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// DemoConfig holds the attract-mode scenarios.
type DemoConfig struct {
	Scripted []ScenarioConfig `yaml:"scripted"`
	Wander   []ScenarioConfig `yaml:"wander"`
}

// ScenarioConfig is one attract-mode scenario.
type ScenarioConfig struct {
	Name   string       `yaml:"name"`
	Snakes []SnakeSpec  `yaml:"snakes"`
	Steps  []StepConfig `yaml:"steps"`
}

// SnakeSpec describes a scenario snake either as explicit segments or as a
// straight chain of Length cells trailing behind Head.
type SnakeSpec struct {
	Head      *snake.Point  `yaml:"head,omitempty"`
	Length    int           `yaml:"length,omitempty"`
	Segments  []snake.Point `yaml:"segments,omitempty"`
	Direction string        `yaml:"direction"`
}

// StepConfig is one scripted tick: the food on the board and each snake's heading.
type StepConfig struct {
	Food snake.Point `yaml:"food"`
	Dirs []string    `yaml:"dirs"`
}

// Validate checks every scenario. Scripted steps must carry one direction per
// snake.
func (c DemoConfig) Validate() error {
	if len(c.Scripted) == 0 && len(c.Wander) == 0 {
		return fmt.Errorf("config: demo has no scenarios")
	}
	for i, sc := range c.Scripted {
		if err := sc.validate(true); err != nil {
			return fmt.Errorf("config: scripted[%d] %q: %w", i, sc.Name, err)
		}
	}
	for i, sc := range c.Wander {
		if err := sc.validate(false); err != nil {
			return fmt.Errorf("config: wander[%d] %q: %w", i, sc.Name, err)
		}
	}
	return nil
}

func (sc ScenarioConfig) validate(scripted bool) error {
	if len(sc.Snakes) == 0 {
		return fmt.Errorf("no snakes")
	}
	for i, s := range sc.Snakes {
		if _, ok := snake.ParseDirection(s.Direction); !ok {
			return fmt.Errorf("snake %d: unknown direction %q", i, s.Direction)
		}
		switch {
		case s.Head != nil:
			if !snake.InBounds(*s.Head) {
				return fmt.Errorf("snake %d: head %v out of bounds", i, *s.Head)
			}
			if s.Length < 1 {
				return fmt.Errorf("snake %d: length must be positive", i)
			}
		case len(s.Segments) == 0:
			return fmt.Errorf("snake %d: needs head or segments", i)
		default:
			if err := validateChain(s.Segments); err != nil {
				return fmt.Errorf("snake %d: %w", i, err)
			}
		}
	}
	if !scripted {
		return nil
	}
	if len(sc.Steps) == 0 {
		return fmt.Errorf("no steps")
	}
	for i, st := range sc.Steps {
		if !snake.InBounds(st.Food) {
			return fmt.Errorf("step %d: food %v out of bounds", i, st.Food)
		}
		if len(st.Dirs) != len(sc.Snakes) {
			return fmt.Errorf("step %d: %d dirs for %d snakes", i, len(st.Dirs), len(sc.Snakes))
		}
		for _, d := range st.Dirs {
			if _, ok := snake.ParseDirection(d); !ok {
				return fmt.Errorf("step %d: unknown direction %q", i, d)
			}
		}
	}
	return nil
}
