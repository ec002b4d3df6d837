package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dww100/untitled-penguin-game/internal/core"
	"github.com/dww100/untitled-penguin-game/internal/games/penguin"
	"github.com/dww100/untitled-penguin-game/internal/platform/audio"
	"github.com/dww100/untitled-penguin-game/internal/platform/tui"
	"github.com/dww100/untitled-penguin-game/internal/registry"
	"github.com/dww100/untitled-penguin-game/internal/storage"
)

var (
	flagConfig       string
	flagDifficulty   string
	flagLevel        string
	flagBoardsDir    string
	flagMute         bool
	flagWindowedSize string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the game",
	Long: `Start playing. Without arguments a mode selector is shown; pass
"penguin" or "penguin_hunt" to skip it.

Controls:
  WASD/Arrows - Move
  Space       - Push the block ahead
  P/Esc       - Pause
  M           - Toggle sound
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - More lives and time, slower and dumber enemies
  normal - Start at 30% difficulty, progresses to max
  hard   - Fewer lives, a shorter clock, faster and smarter enemies
  fixed  - No progression, stays at config's initial level

Examples:
  penguin play
  penguin play penguin_hunt
  penguin play --difficulty easy
  penguin play --level blizzard
  penguin play --config ./my-penguin.yaml
  penguin play --windowed-size 100x30`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Board ID to start from (see 'penguin levels')")
	playCmd.Flags().StringVar(&flagBoardsDir, "boards-dir", "", "Directory with custom board YAML files (default ~/.penguin/boards)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().StringVar(&flagWindowedSize, "windowed-size", "", "Fixed screen size as WIDTHxHEIGHT (default: terminal size)")
}

// screenSize resolves the playfield dimensions from the flag or the terminal.
func screenSize() (int, int, error) {
	if flagWindowedSize != "" {
		var w, h int
		if _, err := fmt.Sscanf(flagWindowedSize, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
			return 0, 0, fmt.Errorf("invalid --windowed-size %q (want WIDTHxHEIGHT, e.g. 100x30)", flagWindowedSize)
		}
		return w, h, nil
	}

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "penguin"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'penguin list' to see available games.")
		os.Exit(1)
	}

	width, height, err := screenSize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Configure the game before creation
	penguin.SetConfigPath(flagConfig)
	penguin.SetDifficultyPreset(flagDifficulty)
	penguin.SetBoardsDir(flagBoardsDir)

	if flagLevel != "" {
		penguin.SetStartBoard(flagLevel)
	} else if len(args) == 0 {
		// No explicit variant or board: show the mode selector
		selection, updatedCfg, selErr := tui.RunPenguinModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		// Apply selection
		gameID = selection.GameID
		if selection.Board != "" {
			penguin.SetStartBoard(selection.Board)
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Set up sound unless muted
	sounds := audio.NewPlayer()
	if !flagMute {
		if audioErr := sounds.Initialize(); audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound unavailable: %v\n", audioErr)
		}
	}

	// Run the game
	runErr := tui.Run(game, store, sounds, cfg)

	sounds.Cleanup()

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
