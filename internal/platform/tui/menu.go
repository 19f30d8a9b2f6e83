package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/uffo/internal/config"
)

// MenuChoice is what the player picked in the launcher menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

type menuItem int

const (
	itemPlay menuItem = iota
	itemDifficulty
	itemScores
	itemQuit
)

var menuItems = []menuItem{itemPlay, itemDifficulty, itemScores, itemQuit}

// difficultyCycle is the order the difficulty entry steps through.
var difficultyCycle = []config.Preset{
	config.PresetNormal,
	config.PresetHard,
	config.PresetFixed,
	config.PresetEasy,
}

// MenuKeyMap defines the key bindings for the launcher menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "w", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j")),
		Left:   key.NewBinding(key.WithKeys("left", "h")),
		Right:  key.NewBinding(key.WithKeys("right", "l")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Scores: key.NewBinding(key.WithKeys("tab")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc")),
	}
}

// MenuModel is the Bubble Tea model for the launcher menu.
type MenuModel struct {
	cursor     int
	difficulty int // Index into difficultyCycle
	highScore  int
	width      int
	height     int
	keys       MenuKeyMap
	choice     MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(preset config.Preset, highScore, width, height int) MenuModel {
	m := MenuModel{
		highScore: highScore,
		width:     width,
		height:    height,
		keys:      DefaultMenuKeyMap(),
	}
	for i, p := range difficultyCycle {
		if p == preset {
			m.difficulty = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = ChoiceQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Scores):
		m.choice = ChoiceScores
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Left):
		if menuItems[m.cursor] == itemDifficulty {
			m.difficulty = (m.difficulty + len(difficultyCycle) - 1) % len(difficultyCycle)
		}

	case key.Matches(msg, m.keys.Right):
		if menuItems[m.cursor] == itemDifficulty {
			m.difficulty = (m.difficulty + 1) % len(difficultyCycle)
		}

	case key.Matches(msg, m.keys.Select):
		switch menuItems[m.cursor] {
		case itemPlay:
			m.choice = ChoicePlay
			return m, tea.Quit
		case itemDifficulty:
			m.difficulty = (m.difficulty + 1) % len(difficultyCycle)
		case itemScores:
			m.choice = ChoiceScores
			return m, tea.Quit
		case itemQuit:
			m.choice = ChoiceQuit
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) label(it menuItem) string {
	switch it {
	case itemPlay:
		return "Play"
	case itemDifficulty:
		return fmt.Sprintf("Difficulty: < %s >", m.Difficulty())
	case itemScores:
		return "Run history"
	default:
		return "Quit"
	}
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != ChoiceNone {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  U F F O  "), m.width))
	b.WriteString("\n\n")
	if m.highScore > 0 {
		b.WriteString(centerText(fmt.Sprintf("High score: %d", m.highScore), m.width))
		b.WriteString("\n\n")
	}

	for i, it := range menuItems {
		line := "  " + m.label(it) + "  "
		if i == m.cursor {
			line = menuActiveStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: History  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Difficulty returns the selected preset.
func (m MenuModel) Difficulty() config.Preset {
	return difficultyCycle[m.difficulty]
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty config.Preset
}

// RunMenu runs the launcher menu and returns the selection.
func RunMenu(preset config.Preset, highScore, width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(preset, highScore, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Difficulty: preset}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == ChoiceNone {
		return MenuResult{Choice: ChoiceQuit, Difficulty: preset}, nil
	}

	return MenuResult{Choice: m.Choice(), Difficulty: m.Difficulty()}, nil
}
