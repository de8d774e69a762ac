package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmelnik/tui-snake/internal/game/level"
)

// MenuSelection holds the user's choice from the main menu.
type MenuSelection struct {
	StartLevel int // 1 = full campaign, 2-10 = start at a specific level
}

// MenuModel is the Bubble Tea model for the title menu and level selector.
type MenuModel struct {
	catalog       level.Catalog
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     MenuSelection
	choosing      bool
	wantsScores   bool
	quitting      bool
}

// NewMenuModel creates a new menu model over the given catalog.
func NewMenuModel(catalog level.Catalog, width, height int) MenuModel {
	return MenuModel{
		catalog:   catalog,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handleMainKey(action)
}

func (m MenuModel) handleMainKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 3 { // Campaign, Select Level, High Scores, Quit
			m.cursor++
		}
	case MenuActionScoreboard:
		m.wantsScores = true
		return m, tea.Quit
	case MenuActionSelect:
		switch m.cursor {
		case 0: // Campaign from level 1
			m.choosing = false
			m.selection = MenuSelection{StartLevel: 1}
			return m, tea.Quit
		case 1: // Select Level
			m.inLevelSelect = true
			m.levelCursor = 0
		case 2: // High Scores
			m.wantsScores = true
			return m, tea.Quit
		case 3: // Quit
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < m.catalog.Count()-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = MenuSelection{StartLevel: m.levelCursor + 1}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewMain()
}

func (m MenuModel) viewMain() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S N A K E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("%d levels of increasing speed", m.catalog.Count()), m.width))
	b.WriteString("\n\n")

	items := []string{
		"Start Campaign",
		"Select Level...",
		"High Scores",
		"Quit",
	}

	for i, item := range items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))

	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, name := range m.catalog.Names() {
		cursor := "  "
		if i == m.levelCursor {
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
func (m MenuModel) Selected() *MenuSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// WantsScoreboard returns true if the user asked for the high score screen.
func (m MenuModel) WantsScoreboard() bool {
	return m.wantsScores
}

// IsQuitting returns true if the user wants to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// MenuResult holds the outcome of running the menu standalone.
type MenuResult struct {
	Selection       *MenuSelection
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the title menu and returns the user's choice.
func RunMenu(catalog level.Catalog, width, height int) (MenuResult, error) {
	model := NewMenuModel(catalog, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}

	return MenuResult{
		Selection:       m.Selected(),
		WantsScoreboard: m.WantsScoreboard(),
		Quit:            m.IsQuitting(),
	}, nil
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
