package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/word-moles/internal/core"
	"github.com/vovakirdan/word-moles/internal/gate"
)

// ScopeModel lets users choose which scope to practice.
type ScopeModel struct {
	scopes    []gate.Status
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  string
	notice    string // Shown after trying a locked scope
	quitting  bool
	back      bool
}

// NewScopeModel creates a scope selector with the cursor on the last
// unlocked scope.
func NewScopeModel(scopes []gate.Status, width, height int) ScopeModel {
	cursor := 0
	for i, s := range scopes {
		if !s.Locked {
			cursor = i
		}
	}
	return ScopeModel{
		scopes:    scopes,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m ScopeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ScopeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m ScopeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.scopes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.scopes) == 0 {
			return m, nil
		}
		s := m.scopes[m.cursor]
		if s.Locked {
			m.notice = fmt.Sprintf("Complete %d scope(s) to unlock %s", s.Index, s.Name)
			return m, nil
		}
		m.selected = s.Name
		return m, tea.Quit
	}

	return m, nil
}

// View renders the scope list.
func (m ScopeModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SELECT SCOPE"), m.width))
	b.WriteString("\n\n")

	for i, s := range m.scopes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		mark := " "
		switch {
		case s.Locked:
			mark = "🔒"
		case s.Completed:
			mark = "★"
		}

		line := fmt.Sprintf("%s%s %-8s %3d/%-3d mastered", cursor, mark, s.Name, s.Mastered, s.Size)
		if s.Locked {
			line = dimStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(centerText(badStyle.Render(m.notice), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(dimStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the chosen scope, or "" if none.
func (m ScopeModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m ScopeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ScopeModel) WantsBack() bool {
	return m.back
}

// RunScopeSelector runs the scope selector. It returns "" when the user
// went back, and quit=true when the user wants to leave entirely.
func RunScopeSelector(scopes []gate.Status, cfg core.RuntimeConfig) (scope string, quit bool, err error) {
	model := NewScopeModel(scopes, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, ok := finalModel.(ScopeModel)
	if !ok {
		return "", true, nil
	}
	if m.IsQuitting() {
		return "", true, nil
	}
	return m.Selected(), false, nil
}
