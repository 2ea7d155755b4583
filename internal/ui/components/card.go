package components

import (
	"charm.land/lipgloss/v2"

	"github.com/minhtran/vocamaster/internal/ui/theme"
)

// CardWidth returns the inner width used for flashcard faces so front
// and back always align.
func CardWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 24 {
		w = 24
	}
	return w
}

// Card wraps content in a rounded-border card at the given width. The
// border color marks the face: primary for the front, secondary for the
// back.
func Card(content string, width int, back bool) string {
	border := theme.Primary
	if back {
		border = theme.Secondary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}
