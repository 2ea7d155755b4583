package flashcard

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhtran/vocamaster/internal/flashcard"
	"github.com/minhtran/vocamaster/internal/router"
	"github.com/minhtran/vocamaster/internal/screen"
	"github.com/minhtran/vocamaster/internal/session"
	"github.com/minhtran/vocamaster/internal/ui/components"
	"github.com/minhtran/vocamaster/internal/ui/layout"
	"github.com/minhtran/vocamaster/internal/ui/theme"
)

// advanceDelay is how long the card stays frozen after a grade, long
// enough for the feedback flash to register.
const advanceDelay = 300 * time.Millisecond

// releaseMsg unfreezes the deck after a grade.
type releaseMsg struct{}

// CardScreen runs the flashcard deck for the active session.
type CardScreen struct {
	ctrl    *session.Controller
	engine  *flashcard.Engine
	flipped bool
	errMsg  string
}

var _ screen.Screen = (*CardScreen)(nil)
var _ screen.KeyHintProvider = (*CardScreen)(nil)

// New creates a CardScreen over the active session's items.
func New(ctrl *session.Controller) *CardScreen {
	s := &CardScreen{ctrl: ctrl}

	sess := ctrl.Session()
	if sess == nil {
		s.errMsg = "no active session"
		return s
	}

	engine, err := flashcard.New(sess.Items, func(learned int) {
		ctrl.FlashcardEnded(learned)
	})
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.engine = engine
	return s
}

func (s *CardScreen) Init() tea.Cmd {
	return nil
}

func (s *CardScreen) Title() string {
	return "Flashcards"
}

func (s *CardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "M", Description: "Memorized"},
		{Key: "D", Description: "Review later"},
		{Key: "Esc", Description: "End session"},
	}
}

func (s *CardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.engine == nil {
		return s, nil
	}

	switch msg := msg.(type) {
	case releaseMsg:
		s.engine.Release()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *CardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case " ", "space", "enter":
		if !s.engine.Suspended() {
			s.flipped = !s.flipped
		}
	case "m":
		if s.engine.MarkMemorized() {
			s.flipped = false
			if s.engine.Done() {
				return s, router.Sync()
			}
			return s, releaseCmd()
		}
	case "d":
		if s.engine.DeferForReview() {
			s.flipped = false
			return s, releaseCmd()
		}
	case "esc":
		s.engine.Exit()
		return s, router.Sync()
	}
	return s, nil
}

func (s *CardScreen) View(width, height int) string {
	if s.engine == nil {
		return theme.Incorrect.Render(s.errMsg)
	}
	if s.engine.Done() {
		return ""
	}

	var b strings.Builder

	b.WriteString(theme.Subtitle.Width(width).Render(fmt.Sprintf(
		"Memorized %d · Remaining %d",
		s.engine.Learned(), s.engine.Remaining())))
	b.WriteString("\n\n")

	item := s.engine.Current()
	cw := components.CardWidth(width)

	var face string
	if s.flipped {
		face = theme.Body.Bold(true).Render(item.Translation) + "\n\n" +
			theme.Hint.Render(item.Example)
	} else {
		face = theme.Body.Bold(true).Render(item.Term) + "\n" +
			theme.Subtitle.Render(item.Phonetic+"  ·  "+item.PartOfSpeech)
	}
	b.WriteString(components.Card(face, cw, s.flipped))

	if s.engine.Suspended() {
		b.WriteString("\n\n")
		b.WriteString(theme.Correct.Render("Got it!"))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func releaseCmd() tea.Cmd {
	return tea.Tick(advanceDelay, func(time.Time) tea.Msg {
		return releaseMsg{}
	})
}
