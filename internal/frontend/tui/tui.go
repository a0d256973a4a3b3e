package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shvbsle/crashyplane/internal/engine"
	"github.com/shvbsle/crashyplane/internal/log"
)

type Frontend struct {
	fps int
}

func NewFrontend(fps int) *Frontend {
	return &Frontend{fps: fps}
}

func (f *Frontend) Name() string {
	return "tui"
}

func (f *Frontend) Description() string {
	return "bubbletea frontend with help footer and score sharing"
}

func (f *Frontend) Commands() []string {
	return []string{"tui", "tea", "bubbletea"}
}

func (f *Frontend) Launch(d *engine.Director) error {
	defer d.Close()

	p := tea.NewProgram(
		New(d, f.fps),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	log.Frontend().Info("tui frontend starting", "fps", f.fps)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui frontend failed: %w", err)
	}
	log.Frontend().Info("tui frontend stopped")
	return nil
}
