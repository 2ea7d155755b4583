package loading

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhtran/vocamaster/internal/router"
	"github.com/minhtran/vocamaster/internal/screen"
	"github.com/minhtran/vocamaster/internal/session"
	"github.com/minhtran/vocamaster/internal/ui/layout"
	"github.com/minhtran/vocamaster/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 150 * time.Millisecond

// spinnerTickMsg advances the loading animation.
type spinnerTickMsg time.Time

// LoadingScreen is shown while vocabulary is being resolved. Resolution
// itself runs in the command that the previous screen dispatched; this
// screen only animates and surfaces load failures.
type LoadingScreen struct {
	ctrl  *session.Controller
	frame int
}

var _ screen.Screen = (*LoadingScreen)(nil)
var _ screen.KeyHintProvider = (*LoadingScreen)(nil)

// New creates a new LoadingScreen.
func New(ctrl *session.Controller) *LoadingScreen {
	return &LoadingScreen{ctrl: ctrl}
}

func (l *LoadingScreen) Init() tea.Cmd {
	return tickCmd()
}

func (l *LoadingScreen) Title() string {
	return "Loading"
}

func (l *LoadingScreen) KeyHints() []layout.KeyHint {
	if l.ctrl.LoadError() != nil {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Home"},
		}
	}
	return nil
}

func (l *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		l.frame = (l.frame + 1) % len(spinnerFrames)
		return l, tickCmd()

	case tea.KeyMsg:
		if msg.String() == "esc" && l.ctrl.LoadError() != nil {
			l.ctrl.GoHome()
			return l, router.Sync()
		}
	}
	return l, nil
}

func (l *LoadingScreen) View(width, height int) string {
	var b strings.Builder

	if err := l.ctrl.LoadError(); err != nil {
		b.WriteString(theme.Incorrect.Render("Could not build this topic"))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render(err.Error()))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Press Esc to go back"))
	} else {
		b.WriteString(theme.Title.Render(spinnerFrames[l.frame] + " Building your word list…"))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Asking the AI for fresh vocabulary"))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func tickCmd() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
