package profile

import (
	"context"
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

// profileMsg carries the fetched profile data.
type profileMsg struct {
	Profile *session.Profile
	Err     error
}

// ProfileScreen shows learning progress per topic and quiz history, and
// allows resuming a topic.
type ProfileScreen struct {
	ctrl     *session.Controller
	profile  *session.Profile
	err      error
	selected int
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a new ProfileScreen.
func New(ctrl *session.Controller) *ProfileScreen {
	return &ProfileScreen{ctrl: ctrl}
}

func (p *ProfileScreen) Init() tea.Cmd {
	return func() tea.Msg {
		prof, err := p.ctrl.FetchProfile(context.Background())
		return profileMsg{Profile: prof, Err: err}
	}
}

func (p *ProfileScreen) Title() string {
	return "Profile"
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Resume topic"},
		{Key: "Esc", Description: "Home"},
	}
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileMsg:
		p.profile = msg.Profile
		p.err = msg.Err
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			p.ctrl.GoHome()
			return p, router.Sync()
		case "up", "k":
			if p.selected > 0 {
				p.selected--
			}
		case "down", "j":
			if p.profile != nil && p.selected < len(p.profile.Progress)-1 {
				p.selected++
			}
		case "enter":
			if p.profile == nil || p.selected >= len(p.profile.Progress) {
				return p, nil
			}
			rec := p.profile.Progress[p.selected]
			ld := p.ctrl.BeginSession(rec.TopicID, rec.TopicName, session.ModeLearn)
			return p, tea.Batch(router.Sync(), p.resolveCmd(ld))
		}
	}
	return p, nil
}

// resolveCmd runs resolution off the UI loop and syncs when done.
func (p *ProfileScreen) resolveCmd(ld session.Load) tea.Cmd {
	return func() tea.Msg {
		items := p.ctrl.ResolveItems(context.Background(), ld)
		_ = p.ctrl.CompleteSession(ld, items)
		return router.SyncMsg{}
	}
}

func (p *ProfileScreen) View(width, height int) string {
	var b strings.Builder

	if p.err != nil {
		b.WriteString(theme.Incorrect.Render("Could not load profile: " + p.err.Error()))
		return b.String()
	}
	if p.profile == nil {
		return theme.Hint.Render("  Loading profile…")
	}

	b.WriteString(theme.Title.Width(width).Render("Your progress"))
	b.WriteString("\n\n")

	if len(p.profile.Progress) == 0 {
		b.WriteString(theme.Hint.Render("  Nothing studied yet. Pick a topic to begin!"))
		b.WriteString("\n")
	}

	barWidth := width - 10
	if barWidth > 50 {
		barWidth = 50
	}

	for i, rec := range p.profile.Progress {
		marker := "  "
		if i == p.selected {
			marker = theme.Selected.Render("▸ ")
		}
		pct := 0.0
		if rec.TotalWords > 0 {
			pct = float64(rec.WordsLearned) / float64(rec.TotalWords)
		}
		bar := components.NewProgressBar("", pct, false, barWidth)
		b.WriteString(fmt.Sprintf("%s%-24s %s %d/%d\n",
			marker, truncate(rec.TopicName, 24), bar.View(), rec.WordsLearned, rec.TotalWords))
	}

	if len(p.profile.History) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render("Recent quizzes"))
		b.WriteString("\n")
		for i, h := range p.profile.History {
			if i >= 8 {
				break
			}
			b.WriteString(theme.Body.Render(fmt.Sprintf(
				"  %s  %s · %d pts · %d/%d · streak %d",
				h.TakenAt.Format("Jan 02"), truncate(h.TopicName, 20),
				h.Score, h.Correct, h.Total, h.MaxStreak)))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().Width(width).Height(height).Render(b.String())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
