package quiz

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhtran/vocamaster/internal/quiz"
	"github.com/minhtran/vocamaster/internal/router"
	"github.com/minhtran/vocamaster/internal/screen"
	"github.com/minhtran/vocamaster/internal/session"
	"github.com/minhtran/vocamaster/internal/ui/components"
	"github.com/minhtran/vocamaster/internal/ui/layout"
	"github.com/minhtran/vocamaster/internal/ui/theme"
)

// feedbackWindow is how long the graded options stay on screen before
// the next question appears.
const feedbackWindow = 1200 * time.Millisecond

// feedbackDoneMsg ends the feedback window.
type feedbackDoneMsg struct{}

// QuizScreen runs the multiple-choice quiz for the active session.
type QuizScreen struct {
	ctrl     *session.Controller
	engine   *quiz.Engine
	mc       components.MultiChoice
	feedback *quiz.Feedback
	errMsg   string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over the active session's items.
func New(ctrl *session.Controller, rng *rand.Rand) *QuizScreen {
	s := &QuizScreen{ctrl: ctrl}

	sess := ctrl.Session()
	if sess == nil {
		s.errMsg = "no active session"
		return s
	}

	engine, err := quiz.New(sess.Items, rng, func(res quiz.Result) {
		ctrl.QuizFinished(res)
	})
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.engine = engine
	s.mc = buildChoice(engine)
	return s
}

// buildChoice builds the selector for the engine's current question.
func buildChoice(engine *quiz.Engine) components.MultiChoice {
	item := engine.Current()
	options := engine.Options()

	correct := 0
	for i, opt := range options {
		if opt == item.Translation {
			correct = i
			break
		}
	}

	prompt := fmt.Sprintf("%s  %s", item.Term, item.Phonetic)
	return components.NewMultiChoice(prompt, options, correct)
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.feedback != nil {
		return nil
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.engine == nil {
		return s, nil
	}

	switch msg := msg.(type) {
	case feedbackDoneMsg:
		s.engine.Advance()
		if s.engine.Finished() {
			return s, router.Sync()
		}
		s.feedback = nil
		s.mc = buildChoice(s.engine)
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" && s.feedback == nil {
			s.ctrl.GoHome()
			return s, router.Sync()
		}
	}

	if s.feedback != nil {
		return s, nil
	}

	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)

	if s.mc.Submitted {
		if fb, ok := s.engine.Answer(s.mc.Choice()); ok {
			s.feedback = &fb
			return s, tea.Batch(cmd, feedbackCmd())
		}
	}
	return s, cmd
}

func (s *QuizScreen) View(width, height int) string {
	if s.engine == nil {
		return theme.Incorrect.Render(s.errMsg)
	}
	if s.engine.Finished() {
		return ""
	}

	var b strings.Builder

	b.WriteString(theme.Subtitle.Width(width).Render(fmt.Sprintf(
		"Question %d/%d · Score %d · Streak %d",
		s.engine.Index()+1, s.engine.Total(), s.engine.Score(), s.engine.Streak())))
	b.WriteString("\n\n")

	b.WriteString(s.mc.View())

	if s.feedback != nil {
		b.WriteString("\n")
		if s.feedback.Correct {
			b.WriteString(theme.Correct.Render(fmt.Sprintf("Correct! +%d points", s.feedback.Points)))
		} else {
			b.WriteString(theme.Incorrect.Render("Not quite. Answer: " + s.feedback.Answer))
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func feedbackCmd() tea.Cmd {
	return tea.Tick(feedbackWindow, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}
