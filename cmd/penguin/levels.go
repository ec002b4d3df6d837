package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dww100/untitled-penguin-game/internal/games/penguin"
	gamecore "github.com/dww100/untitled-penguin-game/internal/games/penguin/core"
	"github.com/dww100/untitled-penguin-game/internal/games/penguin/levels"
)

var levelsCmd = &cobra.Command{
	Use:     "levels",
	Aliases: []string{"boards"},
	Short:   "List available boards",
	Long: `Shows the boards the game can load: the built-in set plus any custom
YAML boards found in the boards directory (default ~/.penguin/boards).
Custom boards with the same ID override built-in ones.

Examples:
  penguin levels
  penguin levels --boards-dir ./myboards
  penguin levels check ./myboards/cavern.yaml`,
	Run: runLevels,
}

var levelsCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a board YAML file",
	Long: `Parse and validate a single board file, reporting the first problem
found or a summary of the board on success.`,
	Args: cobra.ExactArgs(1),
	Run:  runLevelsCheck,
}

func init() {
	levelsCmd.Flags().StringVar(&flagBoardsDir, "boards-dir", "", "Directory with custom board YAML files (default ~/.penguin/boards)")
	levelsCmd.AddCommand(levelsCheckCmd)
}

// boardCounts tallies the pushable and hostile content of a board.
func boardCounts(b levels.Board) (blocks, diamonds, eggs, enemies int) {
	for _, p := range b.Placements {
		switch p.Kind {
		case gamecore.KindBlock:
			blocks++
		case gamecore.KindDiamond:
			diamonds++
		case gamecore.KindEgg:
			eggs++
		case gamecore.KindEnemy:
			enemies++
		}
	}
	return
}

func boardSource(b levels.Board) string {
	if strings.HasPrefix(b.FilePath, "builtin:") {
		return "builtin"
	}
	return b.FilePath
}

func runLevels(_ *cobra.Command, _ []string) {
	penguin.SetBoardsDir(flagBoardsDir)
	boards := penguin.AvailableBoards()

	if len(boards) == 0 {
		fmt.Println("No boards found.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()
	fmt.Printf("  %-12s  %-20s  %-6s  %-7s  %-9s  %-8s  %s\n", "ID", "Name", "Size", "Blocks", "Diamonds", "Enemies", "Source")
	for _, b := range boards {
		blocks, diamonds, eggs, enemies := boardCounts(b)
		name := b.Name
		if name == "" {
			name = b.ID
		}
		fmt.Printf("  %-12s  %-20s  %2dx%-3d  %-7d  %-9d  %-8d  %s\n",
			b.ID, name, b.Width, b.Height, blocks+eggs, diamonds, enemies, boardSource(b))
	}

	fmt.Println()
	fmt.Println("Run 'penguin play --level <id>' to start from a board.")
}

func runLevelsCheck(_ *cobra.Command, args []string) {
	path := args[0]

	board, err := levels.NewLoader("").LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid board: %v\n", err)
		os.Exit(1)
	}

	blocks, diamonds, eggs, enemies := boardCounts(board)
	fmt.Printf("Board %q is valid.\n", board.ID)
	fmt.Println()
	fmt.Printf("  Name:     %s\n", board.Name)
	fmt.Printf("  Size:     %dx%d tiles\n", board.Width, board.Height)
	fmt.Printf("  Blocks:   %d (%d eggs)\n", blocks+eggs, eggs)
	fmt.Printf("  Diamonds: %d\n", diamonds)
	fmt.Printf("  Enemies:  %d\n", enemies)
	if board.Hunt {
		fmt.Println("  Hunt:     enemies always chase")
	}
}
