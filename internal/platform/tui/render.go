package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/word-moles/internal/round"
	"github.com/vovakirdan/word-moles/internal/session"
)

// moleTheme is the look selected by the moleStyle setting.
type moleTheme struct {
	face   string
	empty  string
	accent lipgloss.Color
}

var moleThemes = map[string]moleTheme{
	"default": {face: "(•ᴥ•)", empty: "  ___  ", accent: lipgloss.Color("180")},
	"cute":    {face: "(◕‿◕)", empty: "  ___  ", accent: lipgloss.Color("218")},
	"cool":    {face: "(⌐■_■)", empty: "  ___  ", accent: lipgloss.Color("81")},
}

func themeFor(style string) moleTheme {
	if t, ok := moleThemes[style]; ok {
		return t
	}
	return moleThemes["default"]
}

const (
	holeColumns = 3
	holeWidth   = 18
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	goodStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	badStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 3)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)
)

// renderHoles draws the holes in a grid. While feedback is shown the correct
// mole is green and a wrongly whacked one red.
func renderHoles(r round.Round, fb *session.Feedback, theme moleTheme) string {
	cells := make([]string, round.HoleCount)
	for hole := 0; hole < round.HoleCount; hole++ {
		cells[hole] = renderHole(r, hole, fb, theme)
	}

	rows := make([]string, 0, round.HoleCount/holeColumns)
	for i := 0; i < len(cells); i += holeColumns {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i:i+holeColumns]...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func renderHole(r round.Round, hole int, fb *session.Feedback, theme moleTheme) string {
	box := lipgloss.NewStyle().
		Width(holeWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238"))

	label := dimStyle.Render(fmt.Sprintf("[%d]", hole+1))
	opt, ok := r.OptionAt(hole)
	if !ok {
		return box.Render(label + "\n\n" + dimStyle.Render(theme.empty) + "\n")
	}

	face := lipgloss.NewStyle().Foreground(theme.accent).Render(theme.face)
	text := opt.Text
	if fb != nil {
		switch {
		case opt.IsCorrect:
			box = box.BorderForeground(lipgloss.Color("10"))
			text = goodStyle.Render(text)
		case opt.Text == fb.Chosen:
			box = box.BorderForeground(lipgloss.Color("9"))
			text = badStyle.Render(text)
		default:
			text = dimStyle.Render(text)
		}
	}
	return box.Render(label + "\n" + face + "\n" + text)
}

// renderFeedback draws the result line under the holes.
func renderFeedback(fb session.Feedback) string {
	if fb.Correct {
		line := goodStyle.Render(fmt.Sprintf("Correct! +%d", fb.Points))
		if fb.Combo > 1 {
			line += dimStyle.Render(fmt.Sprintf("  combo x%d", fb.Combo))
		}
		if fb.Cleared {
			line += goodStyle.Render("  cleared from wrong words")
		} else if fb.Streak > 0 {
			line += dimStyle.Render(fmt.Sprintf("  streak %d", fb.Streak))
		}
		return line
	}
	return badStyle.Render("Oops!") + "  " +
		fmt.Sprintf("%s = %s", fb.Entry.Primary, fb.Entry.Secondary)
}

// renderSummary draws the end-of-session card.
func renderSummary(sum session.Summary) string {
	title := "TIME'S UP"
	switch sum.Reason {
	case session.EndPoolEmpty:
		title = "ALL DONE"
	case session.EndAborted:
		title = "SESSION ENDED"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Score      %d\n", sum.Score)
	fmt.Fprintf(&b, "Rank       %s\n", sum.Rank)
	fmt.Fprintf(&b, "Accuracy   %.0f%% (%d/%d)\n", sum.Accuracy*100, sum.Correct, sum.Answered)
	fmt.Fprintf(&b, "Max combo  %d\n", sum.MaxCombo)
	if sum.Mode == session.ModeChallenge {
		fmt.Fprintf(&b, "Cleared    %d\n", sum.Cleared)
	} else {
		fmt.Fprintf(&b, "Learned    %d\n", sum.Learned)
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Enter: back to menu"))
	return cardStyle.Render(b.String())
}
