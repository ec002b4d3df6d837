// penguin is a TUI arcade game: shove ice blocks across a frozen maze,
// squash the creatures hunting you, and clear every board.
//
// Usage:
//
//	penguin play [game]      - Play (classic by default, penguin_hunt for hunt mode)
//	penguin menu             - Start menu to pick mode interactively
//	penguin list             - List registered game variants
//	penguin levels           - List available boards
//	penguin serve            - Start SSH server for remote play
//	penguin scores <game>    - Show high scores for a variant
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.penguin/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/dww100/untitled-penguin-game/internal/games/penguin"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "penguin",
	Short: "Penguin - an ice-block arcade game for your terminal",
	Long: `Penguin is a terminal arcade game. Slide ice blocks across the board,
crush the creatures roaming the maze, and beat the clock on every board.

Available commands:
  play     - Play classic or hunt mode directly
  menu     - Interactive mode picker menu
  list     - Show registered game variants
  levels   - List or validate boards
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  penguin play
  penguin play --difficulty hard
  penguin menu
  penguin serve --ssh :2222
  penguin scores penguin`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.penguin/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
