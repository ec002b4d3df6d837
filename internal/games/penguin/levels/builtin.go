package levels

import (
	"embed"
	"fmt"
	"sort"
)

//go:embed boards/*.yaml
var builtinFS embed.FS

// Builtin parses the default boards compiled into the binary, sorted
// by ID. An error here means a broken build, not bad user input.
func Builtin() ([]Board, error) {
	paths, err := builtinFS.ReadDir("boards")
	if err != nil {
		return nil, fmt.Errorf("embedded boards: %w", err)
	}

	var boards []Board
	for _, entry := range paths {
		data, err := builtinFS.ReadFile("boards/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("embedded board %s: %w", entry.Name(), err)
		}
		b, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("embedded board %s: %w", entry.Name(), err)
		}
		b.FilePath = "builtin:" + entry.Name()
		boards = append(boards, b)
	}

	sort.Slice(boards, func(i, j int) bool {
		return boards[i].ID < boards[j].ID
	})
	return boards, nil
}

// Available merges the builtin boards with any custom ones under root.
// Custom boards win ID clashes so users can override the defaults. An
// empty root skips the custom scan.
func Available(root string) ([]Board, error) {
	boards, err := Builtin()
	if err != nil {
		return nil, err
	}
	if root == "" {
		return boards, nil
	}

	custom, err := NewLoader(root).LoadAll()
	if err != nil {
		// A missing custom directory is not an error; the defaults
		// still play.
		return boards, nil
	}

	merged := make(map[string]Board, len(boards)+len(custom))
	for _, b := range boards {
		merged[b.ID] = b
	}
	for _, b := range custom {
		merged[b.ID] = b
	}

	out := make([]Board, 0, len(merged))
	for _, b := range merged {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}
