package tui

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/shvbsle/crashyplane/internal/assets"
	"github.com/shvbsle/crashyplane/internal/engine"
	"github.com/shvbsle/crashyplane/internal/game"
)

func newTestModel(t *testing.T) (Model, *game.Scene) {
	t.Helper()
	d := engine.NewDirector(engine.Config{
		Frame:  game.Frame,
		Assets: assets.Default(),
		Rand:   rand.New(rand.NewSource(1)),
	})
	s := game.NewScene()
	if err := d.Present(s, engine.Transition{}); err != nil {
		t.Fatalf("Present failed: %v", err)
	}
	d.Tick(0)
	return New(d, 0), s
}

func TestSpaceStartsGame(t *testing.T) {
	m, s := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	if s.State() != game.StatePlaying {
		t.Errorf("Expected playing after space, got %s", s.State())
	}
}

func TestMouseClickStartsGame(t *testing.T) {
	m, s := newTestModel(t)

	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if s.State() != game.StatePlaying {
		t.Errorf("Expected playing after click, got %s", s.State())
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
}

func TestCopyIgnoredWhileAlive(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if cmd != nil {
		t.Error("Expected no command when there is no final score")
	}
	if next.(Model).status != "" {
		t.Errorf("Expected no status, got %q", next.(Model).status)
	}
}

func TestViewShowsScoreAndHelp(t *testing.T) {
	m, _ := newTestModel(t)

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "SCORE: 0") {
		t.Error("Expected the score label in the view")
	}
	if !strings.Contains(view, "flap") {
		t.Error("Expected key help in the view")
	}
}

func TestNewDefaultsFPS(t *testing.T) {
	m, _ := newTestModel(t)
	if m.fps != 60 {
		t.Errorf("Expected 60 fps, got %d", m.fps)
	}
}
