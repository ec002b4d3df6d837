// Package levels provides board definitions for the penguin game: the
// YAML board format, a filesystem loader for custom boards, and the
// embedded defaults. This package depends on core but core does not
// depend on levels.
package levels

import (
	"fmt"
	"math/rand"

	"gopkg.in/yaml.v3"

	"github.com/dww100/untitled-penguin-game/internal/games/penguin/core"
)

// Board size limits, in playfield tiles. The boundary ring the engine
// adds around the playfield is not counted.
const (
	MaxBoardWidth  = 20
	MaxBoardHeight = 20
)

// Board is a parsed level: playfield dimensions plus the entity
// placements, already offset for the engine's boundary ring.
type Board struct {
	ID         string
	Name       string
	Hunt       bool
	Width      int
	Height     int
	Placements []core.Placement
	FilePath   string
}

type yamlBoard struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Hunt bool     `yaml:"hunt,omitempty"`
	Rows []string `yaml:"rows"`
}

// ParseYAML parses one board file. Rows are the playfield only; the
// engine adds the boundary wall ring itself. Parsing validates shape
// and tokens up front so a board that parsed cleanly always loads.
func ParseYAML(data []byte) (Board, error) {
	var yb yamlBoard
	if err := yaml.Unmarshal(data, &yb); err != nil {
		return Board{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yb.ID == "" {
		return Board{}, fmt.Errorf("board has no id")
	}
	if len(yb.Rows) == 0 {
		return Board{}, fmt.Errorf("board %s has no rows", yb.ID)
	}

	width := len([]rune(yb.Rows[0]))
	height := len(yb.Rows)
	if width == 0 {
		return Board{}, fmt.Errorf("board %s: row 1 is empty", yb.ID)
	}
	if width > MaxBoardWidth || height > MaxBoardHeight {
		return Board{}, fmt.Errorf("board %s is %dx%d, limit is %dx%d",
			yb.ID, width, height, MaxBoardWidth, MaxBoardHeight)
	}

	b := Board{
		ID:     yb.ID,
		Name:   yb.Name,
		Hunt:   yb.Hunt,
		Width:  width,
		Height: height,
	}

	players := 0
	for y, row := range yb.Rows {
		cells := []rune(row)
		if len(cells) != width {
			return Board{}, fmt.Errorf("board %s: row %d is %d cells wide, want %d",
				yb.ID, y+1, len(cells), width)
		}
		for x, tok := range cells {
			kind, ok := tokenKind(tok)
			if !ok {
				return Board{}, fmt.Errorf("board %s: unknown token %q at row %d col %d",
					yb.ID, tok, y+1, x+1)
			}
			if kind == kindNone {
				continue
			}
			if kind == core.KindPlayer {
				players++
			}
			// Offset past the boundary ring the engine will add.
			b.Placements = append(b.Placements, core.Placement{
				Kind: kind,
				Col:  x + 1,
				Row:  y + 1,
			})
		}
	}

	if players == 0 {
		return Board{}, fmt.Errorf("board %s has no player tile", yb.ID)
	}
	if players > 1 {
		return Board{}, fmt.Errorf("board %s has %d player tiles, want exactly one", yb.ID, players)
	}
	return b, nil
}

// kindNone marks an empty map cell; it is never placed.
const kindNone = core.Kind(-1)

// tokenKind maps one map character to an entity kind.
func tokenKind(tok rune) (core.Kind, bool) {
	switch tok {
	case ' ':
		return kindNone, true
	case '0':
		return core.KindWall, true
	case '1':
		return core.KindPlayer, true
	case '2':
		return core.KindBlock, true
	case '3':
		return core.KindDiamond, true
	case '4':
		return core.KindEgg, true
	case '5':
		return core.KindEnemy, true
	default:
		return kindNone, false
	}
}

// NewWorld loads the board into a fresh world.
func (b Board) NewWorld(tuning core.Tuning, rng *rand.Rand, lives int) (*core.World, error) {
	w := core.NewWorld(tuning, rng)
	w.SetHunt(b.Hunt)
	if err := w.Load(b.Placements, b.Width, b.Height, lives); err != nil {
		return nil, fmt.Errorf("board %s: %w", b.ID, err)
	}
	return w, nil
}
