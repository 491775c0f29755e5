package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode interactively",
	Long: `Start with a mode picker menu.

Use arrow keys or j/k to navigate, Enter to select a mode.
Press Esc in a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := setup(logger)
	if err != nil {
		return err
	}

	for {
		choice, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		if choice.Quit {
			return nil
		}
		cfg = choice.Config

		g, err := registry.Create(choice.GameID)
		if err != nil {
			return err
		}
		res, err := tui.Run(g, cfg, logger)
		if err != nil {
			return err
		}
		logger.Info("session ended", "game", choice.GameID, "score", res.State.Score)
		if !res.Back {
			return nil
		}
	}
}
