package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shvbsle/crashyplane/internal/assets"
	"github.com/shvbsle/crashyplane/internal/engine"
	"github.com/shvbsle/crashyplane/internal/game"
	"github.com/shvbsle/crashyplane/internal/log"
	"github.com/shvbsle/crashyplane/internal/raster"
)

type frameMsg time.Time

type clearStatusMsg struct{}

// Model hosts the director inside a bubbletea program. Every frame message
// advances the game by the wall-clock time since the program started.
type Model struct {
	director *engine.Director
	canvas   *raster.Canvas
	keys     keyMap
	help     help.Model
	fps      int
	start    time.Time
	status   string
	width    int
	height   int
}

func New(d *engine.Director, fps int) Model {
	if fps <= 0 {
		fps = 60
	}
	size := d.Frame().Size
	return Model{
		director: d,
		canvas: raster.NewCanvas(
			int(size.W/assets.CellWidth),
			int(size.H/assets.CellHeight),
			assets.CellWidth,
			assets.CellHeight,
		),
		keys:  newKeyMap(),
		help:  help.New(),
		fps:   fps,
		start: time.Now(),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.director.Tick(time.Time(msg).Sub(m.start).Seconds())
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.director.Touch()
		}
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Flap):
			m.director.Touch()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Copy):
			return m.copyScore()
		}
	}
	return m, nil
}

// copyScore puts the final score on the clipboard once the plane crashed.
func (m Model) copyScore() (tea.Model, tea.Cmd) {
	scene, ok := m.director.Current().(*game.Scene)
	if !ok || scene.State() != game.StateDead || m.director.Transitioning() {
		return m, nil
	}

	text := fmt.Sprintf("%s SCORE: %d", game.GameTitle, scene.Score())
	if err := clipboard.WriteAll(text); err != nil {
		log.Frontend().Warn("could not copy score", "error", err)
		m.status = "clipboard unavailable"
	} else {
		m.status = "score copied"
	}
	return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m Model) View() string {
	raster.Render(m.canvas, m.director.Frame())

	var b strings.Builder
	for y := 0; y < m.canvas.Rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.renderRow(y))
	}

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = statusStyle.Render(m.status) + "  " + footer
	}

	view := lipgloss.JoinVertical(lipgloss.Left, frameStyle.Render(b.String()), footer)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// renderRow styles runs of cells that share a style in one go.
func (m Model) renderRow(y int) string {
	var b, run strings.Builder
	var current cellStyle
	flush := func() {
		if run.Len() > 0 {
			b.WriteString(current.style().Render(run.String()))
			run.Reset()
		}
	}

	for x := 0; x < m.canvas.Cols; x++ {
		cell := m.canvas.At(x, y)
		if cell.Cont {
			continue
		}
		st := styleOf(cell)
		if x == 0 {
			current = st
		} else if st != current {
			flush()
			current = st
		}
		if cell.Ch == 0 {
			run.WriteByte(' ')
		} else {
			run.WriteRune(cell.Ch)
		}
	}
	flush()
	return b.String()
}
