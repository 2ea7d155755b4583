package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhtran/vocamaster/internal/router"
	"github.com/minhtran/vocamaster/internal/screen"
	"github.com/minhtran/vocamaster/internal/session"
	"github.com/minhtran/vocamaster/internal/ui/components"
	"github.com/minhtran/vocamaster/internal/ui/layout"
	"github.com/minhtran/vocamaster/internal/ui/theme"
)

// ResultScreen shows the quiz outcome and the retry options.
type ResultScreen struct {
	ctrl *session.Controller
	menu components.Menu
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a new ResultScreen.
func New(ctrl *session.Controller) *ResultScreen {
	r := &ResultScreen{ctrl: ctrl}

	r.menu = components.NewMenu([]components.MenuItem{
		{Label: "Try again", Action: func() tea.Cmd {
			if err := ctrl.Retry(); err != nil {
				return nil
			}
			return router.Sync()
		}},
		{Label: "Back to home", Action: func() tea.Cmd {
			ctrl.GoHome()
			return router.Sync()
		}},
	})
	return r
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return "Results"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		r.ctrl.GoHome()
		return r, router.Sync()
	}

	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

func (r *ResultScreen) View(width, height int) string {
	res := r.ctrl.LastResult()
	if res == nil {
		return ""
	}

	var b strings.Builder

	verdict := "Keep practicing!"
	if res.CorrectCount == res.TotalCount {
		verdict = "Perfect round!"
	} else if res.CorrectCount*2 >= res.TotalCount {
		verdict = "Nice work!"
	}
	b.WriteString(theme.Title.Width(width).Render(verdict))
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Render(fmt.Sprintf("  Score       %d", res.Score)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("  Correct     %d / %d", res.CorrectCount, res.TotalCount)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("  Best streak %d", res.MaxStreak)))
	b.WriteString("\n")

	if len(res.WrongItems) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render("Worth another look:"))
		b.WriteString("\n")
		for _, item := range res.WrongItems {
			b.WriteString(theme.Incorrect.Render("  ✗ " + item.Term))
			b.WriteString(theme.Hint.Render("  " + item.Translation))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(r.menu.View())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(b.String())
}
