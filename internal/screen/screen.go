// Package screen defines the contract every view implements. The router
// owns exactly one active screen at a time and forwards bubbletea
// messages to it.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/minhtran/vocamaster/internal/ui/layout"
)

// Screen is one full-frame view: home, loading, topic detail, flashcard,
// quiz, result or profile.
type Screen interface {
	// Init returns the command to run when the screen becomes active.
	Init() tea.Cmd

	// Update handles one message and returns the screen to keep showing
	// plus a follow-up command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body. The frame (header, footer) is drawn by the
	// app around it.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer.
// Screens without it get the default hint line.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
