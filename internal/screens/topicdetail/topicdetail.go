package topicdetail

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhtran/vocamaster/internal/router"
	"github.com/minhtran/vocamaster/internal/screen"
	"github.com/minhtran/vocamaster/internal/session"
	"github.com/minhtran/vocamaster/internal/ui/layout"
	"github.com/minhtran/vocamaster/internal/ui/theme"
)

// DetailScreen lists the session's words and offers the study actions.
type DetailScreen struct {
	ctrl   *session.Controller
	offset int
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New creates a new DetailScreen.
func New(ctrl *session.Controller) *DetailScreen {
	return &DetailScreen{ctrl: ctrl}
}

func (d *DetailScreen) Init() tea.Cmd {
	return nil
}

func (d *DetailScreen) Title() string {
	if sess := d.ctrl.Session(); sess != nil {
		return sess.TopicName
	}
	return "Topic"
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "F", Description: "Flashcards"},
		{Key: "Q", Description: "Quiz"},
		{Key: "G", Description: "More words"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Home"},
	}
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if d.offset > 0 {
			d.offset--
		}
	case "down", "j":
		if sess := d.ctrl.Session(); sess != nil && d.offset < len(sess.Items)-1 {
			d.offset++
		}
	case "f":
		if err := d.ctrl.StartFlashcard(); err == nil {
			return d, router.Sync()
		}
	case "q":
		if err := d.ctrl.StartQuiz(); err == nil {
			return d, router.Sync()
		}
	case "g":
		ld, err := d.ctrl.BeginGenerateMore()
		if err != nil {
			return d, nil
		}
		return d, tea.Batch(router.Sync(), d.generateMoreCmd(ld))
	case "esc":
		d.ctrl.GoHome()
		return d, router.Sync()
	}

	return d, nil
}

// generateMoreCmd runs generation off the UI loop and syncs when done.
func (d *DetailScreen) generateMoreCmd(ld session.Load) tea.Cmd {
	return func() tea.Msg {
		words := d.ctrl.ResolveMore(context.Background(), ld)
		_ = d.ctrl.CompleteGenerateMore(ld, words)
		return router.SyncMsg{}
	}
}

func (d *DetailScreen) View(width, height int) string {
	sess := d.ctrl.Session()
	if sess == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("%d words in this set", len(sess.Items))))
	b.WriteString("\n\n")

	// Leave room for the header line above and a scroll hint below.
	visible := height - 4
	if visible < 1 {
		visible = 1
	}

	end := d.offset + visible
	if end > len(sess.Items) {
		end = len(sess.Items)
	}

	for i := d.offset; i < end; i++ {
		item := sess.Items[i]
		term := theme.Body.Bold(true).Render(item.Term)
		phon := theme.Hint.Render(item.Phonetic)
		trans := theme.Body.Render(item.Translation)
		b.WriteString(fmt.Sprintf("  %2d. %s %s — %s\n", i+1, term, phon, trans))
	}

	if end < len(sess.Items) {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("\n  … %d more below", len(sess.Items)-end)))
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}
