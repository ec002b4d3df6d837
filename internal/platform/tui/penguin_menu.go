package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dww100/untitled-penguin-game/internal/core"
	"github.com/dww100/untitled-penguin-game/internal/games/penguin"
)

// PenguinSelection holds the user's selection from the Penguin menu.
type PenguinSelection struct {
	GameID string // "penguin" or "penguin_hunt"
	Board  string // "" = start from the first board, otherwise a board ID
}

// PenguinModeModel lets users choose game mode and starting board for Penguin.
type PenguinModeModel struct {
	cursor        int
	boardCursor   int
	inBoardSelect bool
	boards        []string // Board IDs
	boardNames    []string // Display names, parallel to boards
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     PenguinSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewPenguinModeModel creates a new Penguin mode selection model.
func NewPenguinModeModel(width, height int) PenguinModeModel {
	available := penguin.AvailableBoards()
	boards := make([]string, 0, len(available))
	names := make([]string, 0, len(available))
	for _, b := range available {
		boards = append(boards, b.ID)
		name := b.Name
		if name == "" {
			name = b.ID
		}
		names = append(names, name)
	}

	return PenguinModeModel{
		cursor:     0,
		boards:     boards,
		boardNames: names,
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
		choosing:   true,
	}
}

// Init initializes the model.
func (m PenguinModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PenguinModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m PenguinModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inBoardSelect {
		return m.handleBoardSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m PenguinModeModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 2 { // 3 options: Classic, Hunt, Select Board
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0: // Classic
			m.choosing = false
			m.selection = PenguinSelection{GameID: "penguin"}
			return m, tea.Quit
		case 1: // Hunt
			m.choosing = false
			m.selection = PenguinSelection{GameID: "penguin_hunt"}
			return m, tea.Quit
		case 2: // Select Board
			if len(m.boards) > 0 {
				m.inBoardSelect = true
				m.boardCursor = 0
			}
		}
	case MenuActionBack:
		m.back = true
		return m, nil
	}

	return m, nil
}

func (m PenguinModeModel) handleBoardSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.boardCursor > 0 {
			m.boardCursor--
		}
	case MenuActionDown:
		if m.boardCursor < len(m.boards)-1 {
			m.boardCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = PenguinSelection{
			GameID: "penguin",
			Board:  m.boards[m.boardCursor],
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inBoardSelect = false
	}

	return m, nil
}

// View renders the mode/board selection.
func (m PenguinModeModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inBoardSelect {
		return m.viewBoardSelect()
	}
	return m.viewModeSelect()
}

func (m PenguinModeModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("P E N G U I N", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	modes := []string{
		fmt.Sprintf("Classic (%d boards)", len(m.boards)),
		"Hunt Mode (endless)",
		"Select Board...",
	}

	for i, mode := range modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, mode), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m PenguinModeModel) viewBoardSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT BOARD", m.width))
	b.WriteString("\n\n")

	for i, name := range m.boardNames {
		cursor := "  "
		if i == m.boardCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%2d. %s", cursor, i+1, name)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m PenguinModeModel) Selected() *PenguinSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m PenguinModeModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m PenguinModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m PenguinModeModel) WantsBack() bool {
	return m.back
}

// RunPenguinModeSelector runs the Penguin mode selection and returns the selection.
func RunPenguinModeSelector(cfg core.RuntimeConfig) (*PenguinSelection, core.RuntimeConfig, error) {
	model := NewPenguinModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(PenguinModeModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
