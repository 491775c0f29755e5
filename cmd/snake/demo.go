package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

var (
	flagWander   bool
	flagHeadless bool
	flagTicks    int
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Watch the attract mode",
	Long: `Play back the built-in scenarios.

By default the scripted scenarios run, each one a fixed list of moves.
With --wander the snakes steer at random and the scenario changes when
all of them are dead.

With --headless the demo runs without a terminal UI for --ticks ticks,
logs to stderr and prints the final frame to stdout.

Examples:
  snake demo
  snake demo --wander --seed 7
  snake demo --headless --ticks 200`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().BoolVar(&flagWander, "wander", false, "Random wandering instead of scripted scenarios")
	demoCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run without the TUI and print the last frame")
	demoCmd.Flags().IntVar(&flagTicks, "ticks", 100, "Number of ticks in headless mode")
}

func runDemo(_ *cobra.Command, _ []string) error {
	mode := game.ModeDemo
	if flagWander {
		mode = game.ModeWander
	}
	if !flagHeadless {
		return playMode(mode)
	}
	if flagTicks < 0 {
		return errors.New("--ticks must not be negative")
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := setup(logger)
	if err != nil {
		return err
	}
	cfg.ScreenW, cfg.ScreenH = game.MinWidth, game.MinHeight

	g := game.New(mode)
	g.Reset(cfg)
	if err := g.Err(); err != nil {
		return err
	}

	scenario := ""
	for i := 0; i < flagTicks; i++ {
		res := g.Step(core.NewMultiInputFrame())
		for _, ev := range res.Events {
			logger.Debug("event", "player", ev.Player, "kind", ev.Kind, "detail", ev.Detail)
		}
		if snap := g.Snapshot(); snap.Scenario != scenario {
			scenario = snap.Scenario
			logger.Info("scenario", "name", scenario, "tick", snap.Tick)
		}
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
	fmt.Println(screen.String())
	return nil
}
