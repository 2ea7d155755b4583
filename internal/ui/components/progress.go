package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/minhtran/vocamaster/internal/ui/theme"
)

// ProgressBar renders learning progress as a horizontal bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the bar. The track shrinks to fit the label and percent
// suffix inside Width, with a floor of four cells.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	suffix := ""
	if p.ShowPercent {
		suffix = fmt.Sprintf("  %d%%", int(p.Percent*100))
	}

	track := p.Width - lipgloss.Width(b.String()) - 6
	if track < 4 {
		track = 4
	}

	filled := min(max(int(float64(track)*p.Percent), 0), track)

	b.WriteString(lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled)))
	b.WriteString(lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", track-filled)))

	if suffix != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix))
	}
	return b.String()
}
