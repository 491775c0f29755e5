package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play solo",
	Long: `Start a solo game.

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return playMode(game.ModeSolo)
	},
}

var versusCmd = &cobra.Command{
	Use:   "versus",
	Short: "Two players on one keyboard",
	Long: `Start a two-player game on one keyboard.

Controls:
  Arrows    - Player 1
  WASD      - Player 2
  P         - Pause
  R         - Restart (after game over)
  Q/Ctrl+C  - Quit`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return playMode(game.ModeVersus)
	},
}

// playMode runs one mode in the TUI until the player quits.
func playMode(mode game.Mode) error {
	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := setup(logger)
	if err != nil {
		return err
	}

	g, err := registry.Create(mode.ID())
	if err != nil {
		return err
	}

	res, err := tui.Run(g, cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("session ended", "mode", mode, "score", res.State.Score)
	return nil
}
