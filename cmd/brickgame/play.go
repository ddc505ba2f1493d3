package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickgame/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows     - Move (Tetris: Up rotates, Down soft-drops)
  X          - Tetris: hard drop / Snake: toggle speed-up
  Enter      - Start, resume or play again
  P          - Pause
  Q          - Leave the game
  Ctrl+C     - Quit immediately

Examples:
  brickgame play tetris
  brickgame play snake
  brickgame play tetris --seed 7
  brickgame play snake --store sqlite --db ./scores.db`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]
	mustExist(gameID)

	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := a.create(gameID)
	if err != nil {
		a.Close()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	a.logger.Info("playing", "game", gameID)
	runErr := tui.Run(game, a.store, a.logger, runtimeConfig())
	a.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
