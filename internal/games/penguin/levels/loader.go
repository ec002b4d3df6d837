package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader reads custom boards from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively loads every board file under Root, sorted by ID
// for deterministic ordering. Files that fail to parse are skipped; use
// LoadFile to diagnose a specific one.
func (l *Loader) LoadAll() ([]Board, error) {
	var boards []Board

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isBoardFile(path) {
			return nil
		}

		board, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		boards = append(boards, board)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(boards, func(i, j int) bool {
		return boards[i].ID < boards[j].ID
	})
	return boards, nil
}

// LoadFile loads and validates a single board file.
func (l *Loader) LoadFile(path string) (Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Board{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	board, err := ParseYAML(data)
	if err != nil {
		return Board{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	board.FilePath = path
	return board, nil
}

// LoadByID loads a specific board by ID.
func (l *Loader) LoadByID(id string) (Board, error) {
	boards, err := l.LoadAll()
	if err != nil {
		return Board{}, err
	}
	for _, b := range boards {
		if b.ID == id {
			return b, nil
		}
	}
	return Board{}, fmt.Errorf("board not found: %s", id)
}

// ListIDs returns all board IDs under Root in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	boards, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(boards))
	for i, b := range boards {
		ids[i] = b.ID
	}
	return ids, nil
}

// ByID picks a board out of a slice, or reports that it is missing.
func ByID(boards []Board, id string) (Board, bool) {
	for _, b := range boards {
		if b.ID == id {
			return b, true
		}
	}
	return Board{}, false
}

func isBoardFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
