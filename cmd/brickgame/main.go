// brickgame plays falling-block and snake games in the terminal.
//
// Usage:
//
//	brickgame list              - List available games
//	brickgame play <game>       - Play a game
//	brickgame menu              - Start menu to pick games interactively
//	brickgame scores <game>     - Show the score history for a game
//
// Global flags:
//
//	--config <path> - Config file (default: ~/.brickgame/config.yaml)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--store <name>  - High-score backend: file or sqlite
//	--db <path>     - Set database path for the sqlite backend
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/brickgame/internal/games/snake"
	_ "github.com/vovakirdan/brickgame/internal/games/tetris"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagStore  string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickgame",
	Short: "Brick Game - Tetris and Snake in your terminal",
	Long: `Brick Game brings the handheld brick-game classics to the terminal:
a falling-block puzzle and a snake on the same 10x20 field.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View the score history

Examples:
  brickgame list
  brickgame play tetris
  brickgame play snake --seed 42
  brickgame menu --store sqlite
  brickgame scores tetris`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "High-score backend: file or sqlite")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}
