package raster

import (
	"math"

	"github.com/mattn/go-runewidth"
	"github.com/shvbsle/crashyplane/internal/engine"
)

// alphaVisible is the opacity below which a node is not drawn at all.
const alphaVisible = 0.05

// tiltVisible is the rotation, in radians, past which a sprite switches to
// its climb or dive art.
const tiltVisible = 0.15

// Render draws a director frame. During a transition the incoming world is
// drawn over the outgoing one at its current offset.
func Render(c *Canvas, f engine.Frame) {
	c.Clear()
	if f.Outgoing != nil {
		drawWorld(c, f.Outgoing, engine.Vec{})
	}
	if f.World != nil {
		drawWorld(c, f.World, f.Offset())
	}
}

func drawWorld(c *Canvas, w *engine.World, offset engine.Vec) {
	if offset != (engine.Vec{}) {
		// The incoming scene hides whatever it covers.
		r := engine.Rect{Max: engine.Vec{X: w.Frame().W, Y: w.Frame().H}}
		r.Min = r.Min.Add(offset)
		r.Max = r.Max.Add(offset)
		fillRect(c, r, engine.ColorDefault, ' ')
	}

	for _, n := range w.Nodes() {
		if n.Hidden || n.Alpha <= alphaVisible {
			continue
		}
		faint := n.Alpha < 1
		switch n.Kind {
		case engine.KindColor:
			fillRect(c, shift(n.Frame(), offset), n.Tint, ' ')
		case engine.KindSprite:
			tex, err := w.Assets().Texture(n.Texture)
			if err != nil {
				continue
			}
			drawArt(c, shift(n.Frame(), offset), tilted(tex, n.Rotation), faint)
		case engine.KindLabel:
			drawLabel(c, n, offset)
		case engine.KindEmitter:
			for _, p := range n.Particles() {
				pos := p.Position.Add(offset)
				c.put(c.Column(pos.X), c.Row(pos.Y), p.Glyph, n.Tint, true, false)
			}
		}
	}
}

func shift(r engine.Rect, offset engine.Vec) engine.Rect {
	return engine.Rect{Min: r.Min.Add(offset), Max: r.Max.Add(offset)}
}

// cellSpan returns the first column and row a rectangle covers and its
// extent in cells.
func cellSpan(c *Canvas, r engine.Rect) (x0, y0, cols, rows int) {
	x0 = c.Column(r.Min.X)
	y0 = c.Row(r.Max.Y)
	cols = int(math.Round(r.Width() / c.CellW))
	rows = int(math.Round(r.Height() / c.CellH))
	return x0, y0, cols, rows
}

func fillRect(c *Canvas, r engine.Rect, bg engine.Color, ch rune) {
	x0, y0, cols, rows := cellSpan(c, r)
	for y := y0; y < y0+rows; y++ {
		for x := x0; x < x0+cols; x++ {
			c.Set(x, y, Cell{Ch: ch, Bg: bg})
		}
	}
}

// tilted swaps in the pose matching rotation. Cells cannot rotate, so a
// tilt is drawn as a different glyph pose.
func tilted(tex engine.Texture, rotation float64) engine.Texture {
	switch {
	case rotation > tiltVisible && len(tex.Climb) > 0:
		tex.Art = tex.Climb
	case rotation < -tiltVisible && len(tex.Dive) > 0:
		tex.Art = tex.Dive
	}
	return tex
}

func drawArt(c *Canvas, r engine.Rect, tex engine.Texture, faint bool) {
	if len(tex.Art) == 0 {
		return
	}
	x0, y0, cols, rows := cellSpan(c, r)
	for dy := 0; dy < rows; dy++ {
		if !tex.Tile && dy >= len(tex.Art) {
			break
		}
		line := []rune(tex.Art[dy%len(tex.Art)])
		if len(line) == 0 {
			continue
		}
		for dx, i := 0, 0; dx < cols; i++ {
			if !tex.Tile && i >= len(line) {
				break
			}
			ch := line[i%len(line)]
			if ch == ' ' {
				dx++
				continue
			}
			w := c.put(x0+dx, y0+dy, ch, tex.Color, false, faint)
			if w == 0 {
				w = 1
			}
			dx += w
		}
	}
}

func drawLabel(c *Canvas, n *engine.Node, offset engine.Vec) {
	width := float64(runewidth.StringWidth(n.Text)) * c.CellW
	x := n.Position.X + offset.X
	switch n.Align {
	case engine.AlignRight:
		x -= width
	case engine.AlignCenter:
		x -= width / 2
	}
	col := c.Column(x)
	row := c.Row(n.Position.Y + offset.Y)
	for _, ch := range n.Text {
		col += c.put(col, row, ch, n.Tint, true, n.Alpha < 1)
	}
}
