// snake is a terminal Snake game.
//
// Usage:
//
//	snake play               - Play solo
//	snake versus             - Two players on one keyboard
//	snake demo [--wander]    - Watch the attract mode
//	snake menu               - Pick a mode interactively
//	snake list               - List available modes
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom snake.yaml
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal",
	Long: `A terminal Snake game for one or two players on a 20x20 board.

Available commands:
  play     - Play solo
  versus   - Two players on one keyboard
  demo     - Watch scripted or wandering snakes
  menu     - Interactive mode picker
  list     - Show all modes

Examples:
  snake play
  snake versus --seed 42
  snake demo --wander
  snake demo --headless --ticks 200
  snake play --config ./my-snake.yaml --log-file snake.log`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versusCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(menuCmd)
}

// newLogger builds the CLI logger. Without a log file the output is discarded
// unless fallback is set, since the TUI owns the terminal.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closeFn, nil
}

// setup loads the configuration, hands it to the game package and returns the
// runtime config for the current terminal.
func setup(logger *log.Logger) (core.RuntimeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	demo, err := config.LoadDemo(cfg.DemoFile)
	if err != nil {
		return core.RuntimeConfig{}, err
	}

	game.Configure(game.Settings{Config: cfg, Demo: demo, Logger: logger})
	logger.Debug("config loaded", "path", flagConfig, "tick", cfg.TickInterval(), "resolution", cfg.Resolution)

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: cfg.TickInterval(),
		Seed:         flagSeed,
	}, nil
}
