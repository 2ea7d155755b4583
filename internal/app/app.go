package app

import (
	"fmt"
	"math/rand/v2"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhtran/vocamaster/internal/router"
	"github.com/minhtran/vocamaster/internal/screen"
	"github.com/minhtran/vocamaster/internal/screens/flashcard"
	"github.com/minhtran/vocamaster/internal/screens/home"
	"github.com/minhtran/vocamaster/internal/screens/loading"
	"github.com/minhtran/vocamaster/internal/screens/profile"
	quizscreen "github.com/minhtran/vocamaster/internal/screens/quiz"
	"github.com/minhtran/vocamaster/internal/screens/result"
	"github.com/minhtran/vocamaster/internal/screens/topicdetail"
	"github.com/minhtran/vocamaster/internal/session"
	"github.com/minhtran/vocamaster/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Controller *session.Controller
	Rng        *rand.Rand
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctrl   *session.Controller
	router *router.Router
	width  int
	height int
}

// newAppModel builds the model and the per-state screen factory.
func newAppModel(opts Options) AppModel {
	ctrl := opts.Controller

	factory := func(st session.State) screen.Screen {
		switch st {
		case session.StateLoading:
			return loading.New(ctrl)
		case session.StateTopicDetail:
			return topicdetail.New(ctrl)
		case session.StateFlashcard:
			return flashcard.New(ctrl)
		case session.StateQuiz:
			return quizscreen.New(ctrl, opts.Rng)
		case session.StateResult:
			return result.New(ctrl)
		case session.StateProfile:
			return profile.New(ctrl)
		default:
			return home.New(ctrl)
		}
	}

	return AppModel{
		ctrl:   ctrl,
		router: router.New(ctrl, factory),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.ctrl.Auth().Name, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
