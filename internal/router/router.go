package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/minhtran/vocamaster/internal/screen"
	"github.com/minhtran/vocamaster/internal/session"
)

// SyncMsg tells the router to re-read the controller state and swap the
// active screen if it changed. Screens emit it after every controller
// call that may transition.
type SyncMsg struct{}

// Sync returns a command that emits SyncMsg.
func Sync() tea.Cmd {
	return func() tea.Msg { return SyncMsg{} }
}

// Factory builds the screen for a navigation state.
type Factory func(st session.State) screen.Screen

// Router keeps the active screen in lockstep with the session
// controller's navigation state.
type Router struct {
	ctrl    *session.Controller
	factory Factory
	state   session.State
	current screen.Screen
}

// New creates a Router showing the screen for the controller's current
// state.
func New(ctrl *session.Controller, factory Factory) *Router {
	st := ctrl.State()
	return &Router{
		ctrl:    ctrl,
		factory: factory,
		state:   st,
		current: factory(st),
	}
}

// Active returns the current screen.
func (r *Router) Active() screen.Screen {
	return r.current
}

// State returns the navigation state the active screen was built for.
func (r *Router) State() session.State {
	return r.state
}

// Init returns the active screen's initial command.
func (r *Router) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

// Update forwards a message to the active screen, handling sync messages
// itself.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(SyncMsg); ok {
		return r.sync()
	}

	if r.current == nil {
		return nil
	}
	updated, cmd := r.current.Update(msg)
	r.current = updated
	return cmd
}

// sync rebuilds the active screen when the controller has moved to a
// different state. A fresh screen is built on every transition, so
// stale engine state cannot leak between visits.
func (r *Router) sync() tea.Cmd {
	st := r.ctrl.State()
	if st == r.state && r.current != nil {
		return nil
	}
	r.state = st
	r.current = r.factory(st)
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.current == nil {
		return ""
	}
	return r.current.View(width, height)
}
