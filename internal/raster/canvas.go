package raster

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/shvbsle/crashyplane/internal/engine"
)

// Cell is one character cell. A zero Ch is blank; Cont marks the second
// half of a wide glyph.
type Cell struct {
	Ch    rune
	Fg    engine.Color
	Bg    engine.Color
	Bold  bool
	Faint bool
	Cont  bool
}

// Canvas is a grid of cells covering the world frame. Row 0 is the top.
type Canvas struct {
	Cols, Rows int
	CellW      float64
	CellH      float64
	cells      []Cell
}

func NewCanvas(cols, rows int, cellW, cellH float64) *Canvas {
	return &Canvas{
		Cols:  cols,
		Rows:  rows,
		CellW: cellW,
		CellH: cellH,
		cells: make([]Cell, cols*rows),
	}
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{}
	}
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.Cols && y < c.Rows
}

func (c *Canvas) At(x, y int) Cell {
	if !c.inside(x, y) {
		return Cell{}
	}
	return c.cells[y*c.Cols+x]
}

func (c *Canvas) Set(x, y int, cell Cell) {
	if !c.inside(x, y) {
		return
	}
	c.cells[y*c.Cols+x] = cell
}

// put draws a glyph keeping the background already under it. It returns the
// number of columns the glyph takes.
func (c *Canvas) put(x, y int, ch rune, fg engine.Color, bold, faint bool) int {
	w := runewidth.RuneWidth(ch)
	if w == 0 {
		return 0
	}
	if w == 2 && !c.inside(x+1, y) {
		return w
	}
	under := c.At(x, y)
	c.Set(x, y, Cell{Ch: ch, Fg: fg, Bg: under.Bg, Bold: bold, Faint: faint})
	if w == 2 {
		next := c.At(x+1, y)
		c.Set(x+1, y, Cell{Fg: fg, Bg: next.Bg, Cont: true})
	}
	return w
}

// Column maps a world x coordinate to a cell column.
func (c *Canvas) Column(x float64) int {
	return floor(x / c.CellW)
}

// Row maps a world y coordinate (y up) to a cell row (row 0 at the top).
func (c *Canvas) Row(y float64) int {
	return floor((float64(c.Rows)*c.CellH - y) / c.CellH)
}

// Lines returns the glyphs of each row without styling.
func (c *Canvas) Lines() []string {
	out := make([]string, c.Rows)
	var b strings.Builder
	for y := 0; y < c.Rows; y++ {
		b.Reset()
		for x := 0; x < c.Cols; x++ {
			cell := c.At(x, y)
			switch {
			case cell.Cont:
			case cell.Ch == 0:
				b.WriteByte(' ')
			default:
				b.WriteRune(cell.Ch)
			}
		}
		out[y] = b.String()
	}
	return out
}

func floor(v float64) int {
	i := int(v)
	if float64(i) > v {
		i--
	}
	return i
}
