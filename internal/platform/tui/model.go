package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/word-moles/internal/core"
	"github.com/vovakirdan/word-moles/internal/session"
	"github.com/vovakirdan/word-moles/internal/storage"
)

// Model is the Bubble Tea model for running a session.
type Model struct {
	sess        *session.Session
	store       *storage.Store
	logger      *log.Logger
	config      core.RuntimeConfig
	theme       moleTheme
	keyMapper   *KeyMapper
	inputFrame  core.InputFrame
	gameState   core.GameState
	timer       progress.Model
	summary     *session.Summary
	quitting    bool
	recordSaved bool // Whether the record has been saved for this session
}

// NewModel creates a new Bubble Tea model for the given session.
// store may be nil, in which case nothing is recorded.
func NewModel(sess *session.Session, store *storage.Store, cfg core.RuntimeConfig, moleStyle string, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	timer := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	timer.Width = 40

	return Model{
		sess:       sess,
		store:      store,
		logger:     logger,
		config:     cfg,
		theme:      themeFor(moleStyle),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		timer:      timer,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.timer.Width = min(60, max(10, msg.Width-20))
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Summary card: any confirm key leaves
	if m.summary != nil {
		switch msg.String() {
		case "enter", " ", "esc", "b", "q", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	isQuit := m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	if isQuit || m.inputFrame.Has(core.ActionBack) {
		m.sess.Close()
		m.finish()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.summary != nil {
		return m, nil
	}

	result := m.sess.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.sess.Close()
		m.finish()
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// finish captures the summary and saves it to the leaderboard once.
// Aborted or empty sessions are not recorded.
func (m *Model) finish() {
	sum := m.sess.Summary()
	m.summary = &sum

	if m.recordSaved || m.store == nil {
		return
	}
	m.recordSaved = true
	if sum.Reason == session.EndAborted || sum.Answered == 0 {
		return
	}
	if _, err := m.store.SaveRecord(RecordFromSummary(sum)); err != nil {
		m.logger.Error("failed to save record", "error", err)
	}
}

// RecordFromSummary converts a session summary to a leaderboard record.
func RecordFromSummary(sum session.Summary) storage.Record {
	cleared := sum.Learned
	if sum.Mode == session.ModeChallenge {
		cleared = sum.Cleared
	}
	return storage.Record{
		Mode:     sum.Mode.String(),
		Scope:    sum.Scope,
		Score:    sum.Score,
		Duration: sum.Duration,
		MaxCombo: sum.MaxCombo,
		Answered: sum.Answered,
		Correct:  sum.Correct,
		Cleared:  cleared,
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	width := m.config.ScreenW

	if m.summary != nil {
		return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, renderSummary(*m.summary))
	}

	snap := m.sess.Snapshot()
	var b strings.Builder

	// HUD
	where := snap.Scope
	if snap.Mode == session.ModeChallenge {
		where = fmt.Sprintf("Wrong words (%d left)", snap.Remaining)
	}
	hud := fmt.Sprintf("%s   Score %d   Combo %d   %ds",
		titleStyle.Render(where), snap.Score, snap.Combo, snap.TimeLeft)
	b.WriteString("\n")
	b.WriteString(centerText(hud, width))
	b.WriteString("\n")

	frac := 0.0
	if snap.Duration > 0 {
		frac = float64(snap.TimeLeft) / float64(snap.Duration)
	}
	b.WriteString(centerText(m.timer.ViewAs(frac), width))
	b.WriteString("\n\n")

	// Prompt and holes
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, promptStyle.Render(snap.Round.Prompt)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderHoles(snap.Round, snap.Feedback, m.theme)))
	b.WriteString("\n\n")

	if snap.Feedback != nil {
		b.WriteString(centerText(renderFeedback(*snap.Feedback), width))
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render("Space: next"), width))
	} else {
		b.WriteString(centerText(dimStyle.Render("1-6: whack  |  R: hear again  |  Esc: menu"), width))
	}
	b.WriteString("\n")

	return b.String()
}

// Summary returns the session summary once the session has finished.
func (m Model) Summary() *session.Summary {
	return m.summary
}

// Run starts the Bubble Tea program for a session and returns its summary.
func Run(sess *session.Session, store *storage.Store, cfg core.RuntimeConfig, moleStyle string, logger *log.Logger) (*session.Summary, error) {
	defer sess.Close()

	model := NewModel(sess, store, cfg, moleStyle, logger)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return nil, nil
	}
	return m.Summary(), nil
}
