package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shvbsle/crashyplane/internal/engine"
	"github.com/shvbsle/crashyplane/internal/raster"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
)

func foreground(c engine.Color) lipgloss.Color {
	switch c {
	case engine.ColorHills:
		return lipgloss.Color("65")
	case engine.ColorGround:
		return lipgloss.Color("136")
	case engine.ColorRock:
		return lipgloss.Color("250")
	case engine.ColorPlayer:
		return lipgloss.Color("196")
	case engine.ColorTitle:
		return lipgloss.Color("226")
	case engine.ColorSpark:
		return lipgloss.Color("208")
	case engine.ColorText:
		return lipgloss.Color("16")
	default:
		return lipgloss.Color("252")
	}
}

func background(c engine.Color) lipgloss.Color {
	switch c {
	case engine.ColorSkyTop:
		return lipgloss.Color("117")
	case engine.ColorSkyBottom:
		return lipgloss.Color("153")
	case engine.ColorTrigger:
		return lipgloss.Color("160")
	default:
		return lipgloss.Color("0")
	}
}

type cellStyle struct {
	fg, bg      engine.Color
	bold, faint bool
}

func styleOf(c raster.Cell) cellStyle {
	return cellStyle{fg: c.Fg, bg: c.Bg, bold: c.Bold, faint: c.Faint}
}

func (s cellStyle) style() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(foreground(s.fg)).
		Background(background(s.bg)).
		Bold(s.bold).
		Faint(s.faint)
}
