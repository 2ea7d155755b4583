package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhtran/vocamaster/internal/router"
	"github.com/minhtran/vocamaster/internal/screen"
	"github.com/minhtran/vocamaster/internal/session"
	"github.com/minhtran/vocamaster/internal/ui/components"
	"github.com/minhtran/vocamaster/internal/ui/layout"
	"github.com/minhtran/vocamaster/internal/ui/theme"
	"github.com/minhtran/vocamaster/internal/vocab"
)

// HomeScreen is the topic picker and entry point of the application.
type HomeScreen struct {
	ctrl        *session.Controller
	menu        components.Menu
	mode        session.Mode
	inputActive bool
	input       components.TextInput
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen listing the topic catalog.
func New(ctrl *session.Controller) *HomeScreen {
	h := &HomeScreen{
		ctrl: ctrl,
		mode: session.ModeLearn,
	}

	var items []components.MenuItem
	for _, topic := range vocab.DefaultTopics() {
		items = append(items, components.MenuItem{
			Label:  topic.Name,
			Action: h.startTopic(topic),
		})
	}
	items = append(items,
		components.MenuItem{Label: "Custom topic…", Action: func() tea.Cmd {
			h.inputActive = true
			h.input = components.NewTextInput("Type a topic, e.g. Travel", 60)
			return h.input.Init()
		}},
		components.MenuItem{Label: "Profile", Action: func() tea.Cmd {
			h.ctrl.OpenProfile()
			return router.Sync()
		}},
		components.MenuItem{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) startTopic(topic vocab.Topic) func() tea.Cmd {
	return func() tea.Cmd {
		ld := h.ctrl.BeginSession(topic.ID, topic.Name, h.mode)
		return tea.Batch(router.Sync(), h.resolveCmd(ld))
	}
}

// resolveCmd runs resolution off the UI loop and syncs when done.
func (h *HomeScreen) resolveCmd(ld session.Load) tea.Cmd {
	return func() tea.Msg {
		items := h.ctrl.ResolveItems(context.Background(), ld)
		_ = h.ctrl.CompleteSession(ld, items)
		return router.SyncMsg{}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.inputActive {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "T", Description: "Toggle mode"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.inputActive {
		return h.updateInput(msg)
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "t":
			if h.mode == session.ModeLearn {
				h.mode = session.ModeTest
			} else {
				h.mode = session.ModeLearn
			}
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) updateInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			h.inputActive = false
			return h, nil
		case "enter":
			name := strings.TrimSpace(h.input.Value())
			if name == "" {
				return h, nil
			}
			h.inputActive = false
			ld := h.ctrl.BeginSession("custom", name, h.mode)
			return h, tea.Batch(router.Sync(), h.resolveCmd(ld))
		}
	}

	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Pick a topic to study"))
	b.WriteString("\n")

	modeLabel := "Learn (flashcards + quiz)"
	if h.mode == session.ModeTest {
		modeLabel = "Test (straight to a 20-question quiz)"
	}
	b.WriteString(theme.Subtitle.Width(width).Render("Mode: " + modeLabel))
	b.WriteString("\n\n")

	if h.inputActive {
		b.WriteString(theme.Body.Render("  Custom topic:"))
		b.WriteString("\n\n  ")
		b.WriteString(h.input.View())
	} else {
		b.WriteString(h.menu.View())
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(b.String())
}
