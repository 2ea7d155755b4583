package router

import (
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/minhtran/vocamaster/internal/screen"
	"github.com/minhtran/vocamaster/internal/session"
)

type stubScreen struct {
	state    session.State
	inits    int
	received []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.received = append(s.received, msg)
	return s, nil
}

func (s *stubScreen) View(width, height int) string { return s.state.String() }

func (s *stubScreen) Title() string { return s.state.String() }

type stubFactory struct {
	built []*stubScreen
}

func (f *stubFactory) build(st session.State) screen.Screen {
	sc := &stubScreen{state: st}
	f.built = append(f.built, sc)
	return sc
}

func newRouterController() *session.Controller {
	rng := rand.New(rand.NewPCG(3, 5))
	return session.NewController(session.AuthSession{}, nil, nil, rng)
}

func TestNewBuildsInitialScreen(t *testing.T) {
	ctrl := newRouterController()
	f := &stubFactory{}
	r := New(ctrl, f.build)

	if r.State() != session.StateHome {
		t.Fatalf("router state %v, want home", r.State())
	}
	if len(f.built) != 1 || f.built[0].state != session.StateHome {
		t.Fatal("factory not called for the initial state")
	}
	if r.Active() != screen.Screen(f.built[0]) {
		t.Fatal("active screen is not the built screen")
	}

	r.Init()
	if f.built[0].inits != 1 {
		t.Fatalf("initial screen initialized %d times", f.built[0].inits)
	}
}

func TestSyncSwapsScreenOnStateChange(t *testing.T) {
	ctrl := newRouterController()
	f := &stubFactory{}
	r := New(ctrl, f.build)

	ctrl.BeginSession("c1", "Daily Routine", session.ModeLearn)
	cmd := r.Update(SyncMsg{})

	if r.State() != session.StateLoading {
		t.Fatalf("router state %v, want loading", r.State())
	}
	if len(f.built) != 2 || f.built[1].state != session.StateLoading {
		t.Fatal("factory not called for the new state")
	}
	if f.built[1].inits != 1 {
		t.Fatal("new screen must be initialized during sync")
	}
	if cmd != nil {
		t.Fatal("stub init returns nil cmd")
	}
}

func TestSyncNoOpWhenStateUnchanged(t *testing.T) {
	ctrl := newRouterController()
	f := &stubFactory{}
	r := New(ctrl, f.build)

	r.Update(SyncMsg{})
	r.Update(SyncMsg{})

	if len(f.built) != 1 {
		t.Fatalf("factory called %d times for an unchanged state", len(f.built))
	}
}

func TestUpdateForwardsToActiveScreen(t *testing.T) {
	ctrl := newRouterController()
	f := &stubFactory{}
	r := New(ctrl, f.build)

	msg := tea.WindowSizeMsg{Width: 100, Height: 40}
	r.Update(msg)

	home := f.built[0]
	if len(home.received) != 1 {
		t.Fatalf("active screen received %d messages, want 1", len(home.received))
	}
	if _, ok := home.received[0].(tea.WindowSizeMsg); !ok {
		t.Fatal("message not forwarded unchanged")
	}

	// After a swap, messages go to the new screen only.
	ctrl.OpenProfile()
	r.Update(SyncMsg{})
	r.Update(msg)

	profile := f.built[1]
	if len(profile.received) != 1 {
		t.Fatal("new screen did not receive the message")
	}
	if len(home.received) != 1 {
		t.Fatal("old screen must stop receiving messages")
	}
}

func TestViewRendersActiveScreen(t *testing.T) {
	ctrl := newRouterController()
	f := &stubFactory{}
	r := New(ctrl, f.build)

	if got := r.View(80, 24); got != "home" {
		t.Fatalf("view %q, want home", got)
	}
}
