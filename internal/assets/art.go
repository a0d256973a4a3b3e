package assets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/shvbsle/crashyplane/internal/engine"
)

var (
	playerFrames = [][]string{
		{" _|\\__ ", "(_o___|"},
		{" _|\\__ ", "(_o___/"},
		{" _|\\__ ", "(_o___-"},
	}

	// Tilted poses. playerTexture appends each frame's propeller glyph.
	climbArt = []string{"  _|\\_/", "(_o__/"}
	diveArt  = []string{" _|\\__ ", " \\_o__"}

	rockArt = []string{"▐▓▓▓▓▓▓▌"}

	groundArt = []string{
		"▀▀▀▀▀▀▀▀",
		"░▒░░▒░░░",
		"▒░░▒░░▒░",
	}
)

// ArtSize returns the world size covered by the art at one glyph per cell.
func ArtSize(art []string) engine.Size {
	width := 0
	for _, line := range art {
		if w := ansi.StringWidth(line); w > width {
			width = w
		}
	}
	return engine.Size{W: float64(width * CellWidth), H: float64(len(art) * CellHeight)}
}

// banner boxes the lines with lipgloss and returns the plain glyph rows.
func banner(lines ...string) []string {
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	return strings.Split(ansi.Strip(box), "\n")
}

// hills draws a rolling skyline that tiles seamlessly every cols cells.
func hills(cols, rows int) []string {
	out := make([]string, rows)
	for r := 0; r < rows; r++ {
		var b strings.Builder
		level := float64(rows - r)
		for c := 0; c < cols; c++ {
			phase := 2 * math.Pi * float64(c) / float64(cols)
			height := float64(rows)*0.55 + 2.5*math.Sin(2*phase) + 1.5*math.Sin(5*phase)
			switch {
			case level < height-0.5:
				b.WriteRune('░')
			case level < height+0.5:
				b.WriteRune('^')
			default:
				b.WriteRune(' ')
			}
		}
		out[r] = b.String()
	}
	return out
}

// playerTexture adds the climb and dive poses, carrying frame's propeller.
func playerTexture(name string, frame []string) engine.Texture {
	body := frame[len(frame)-1]
	prop := body[len(body)-1:]
	return engine.Texture{
		Name:  name,
		Art:   frame,
		Climb: []string{climbArt[0], climbArt[1] + prop},
		Dive:  []string{diveArt[0], diveArt[1] + prop},
		Color: engine.ColorPlayer,
	}
}

func defaultTextures() []engine.Texture {
	textures := []engine.Texture{
		playerTexture("player-1", playerFrames[0]),
		playerTexture("player-2", playerFrames[1]),
		playerTexture("player-3", playerFrames[2]),
		{
			Name:  "topRock",
			Art:   rockArt,
			Tile:  true,
			Size:  engine.Size{W: 64, H: 400},
			Color: engine.ColorRock,
		},
		{
			Name:  "bottomRock",
			Art:   rockArt,
			Tile:  true,
			Size:  engine.Size{W: 64, H: 400},
			Color: engine.ColorRock,
		},
		{
			Name:  "background",
			Art:   hills(80, 10),
			Tile:  true,
			Size:  engine.Size{W: 640, H: 160},
			Color: engine.ColorHills,
		},
		{
			Name:  "ground",
			Art:   groundArt,
			Tile:  true,
			Size:  engine.Size{W: 640, H: 48},
			Color: engine.ColorGround,
		},
		{
			Name:  "logo",
			Art:   banner("C R A S H Y   P L A N E", "", "tap, click or SPACE to fly"),
			Color: engine.ColorTitle,
		},
		{
			Name:  "gameover",
			Art:   banner("G A M E   O V E R", "", "tap to play again"),
			Color: engine.ColorTitle,
		},
	}
	return textures
}
