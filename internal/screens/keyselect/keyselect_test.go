package keyselect

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathblitz/internal/problemgen"
	"github.com/abhisek/mathblitz/internal/profile"
	"github.com/abhisek/mathblitz/internal/router"
	"github.com/abhisek/mathblitz/internal/scheduler"
	"github.com/abhisek/mathblitz/internal/session"
)

func engineAtKeySelect(t *testing.T, mode problemgen.Mode) *session.Engine {
	t.Helper()
	e := session.NewEngine(session.Options{
		Scheduler: scheduler.NewManual(),
		Rand:      rand.New(rand.NewPCG(2, 4)),
	})
	if err := e.OpenModeSelect(); err != nil {
		t.Fatal(err)
	}
	if err := e.SelectMode(mode); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestKeySelect_ListsProfiles(t *testing.T) {
	s := New(engineAtKeySelect(t, problemgen.ModeDifficulty), problemgen.ModeDifficulty)
	if len(s.menu.Items) != len(profile.Keys()) {
		t.Fatalf("items = %d, want %d", len(s.menu.Items), len(profile.Keys()))
	}
	if s.menu.Compact {
		t.Error("difficulty list should use buttons")
	}
}

func TestKeySelect_ListsCurricula(t *testing.T) {
	s := New(engineAtKeySelect(t, problemgen.ModeCurriculum), problemgen.ModeCurriculum)
	if len(s.menu.Items) != 9 {
		t.Fatalf("items = %d, want 9", len(s.menu.Items))
	}
	if !s.menu.Compact {
		t.Error("curriculum list should be compact")
	}
	if !strings.Contains(s.View(100, 30), "TK (Kindergarten)") {
		t.Error("view missing detail for the selected level")
	}
}

func TestKeySelect_Describe(t *testing.T) {
	p, _ := profile.Lookup(profile.Easy)
	if got := describe(p); got != "5 lives · 1-20 · + - · 12s per question" {
		t.Errorf("describe(easy) = %q", got)
	}
	p, _ = profile.Lookup(profile.TimeAttack)
	if got := describe(p); !strings.HasPrefix(got, "60s clock") {
		t.Errorf("describe(timeattack) = %q", got)
	}
}

func TestKeySelect_EnterStartsGame(t *testing.T) {
	e := engineAtKeySelect(t, problemgen.ModeDifficulty)
	s := New(e, problemgen.ModeDifficulty)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "Play" {
		t.Errorf("pushed %q, want Play", msg.Screen.Title())
	}
	if got := e.State().Key; got != string(profile.Easy) {
		t.Errorf("key = %q, want easy", got)
	}
}

func TestKeySelect_EscGoesBack(t *testing.T) {
	e := engineAtKeySelect(t, problemgen.ModeCurriculum)
	s := New(e, problemgen.ModeCurriculum)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
	if got := e.State().Screen; got != session.ScreenModeSelect {
		t.Errorf("engine screen = %v, want %v", got, session.ScreenModeSelect)
	}
}
