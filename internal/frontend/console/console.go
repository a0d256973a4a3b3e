package console

import (
	tl "github.com/JoelOtter/termloop"
	"github.com/shvbsle/crashyplane/internal/assets"
	"github.com/shvbsle/crashyplane/internal/engine"
	"github.com/shvbsle/crashyplane/internal/log"
	"github.com/shvbsle/crashyplane/internal/raster"
)

const hint = "SPACE/click: flap   Ctrl+C: quit"

type Console struct {
	fps int
}

func New(fps int) *Console {
	return &Console{fps: fps}
}

func (c *Console) Name() string {
	return "console"
}

func (c *Console) Description() string {
	return "termloop full-screen frontend"
}

func (c *Console) Commands() []string {
	return []string{"console", "termloop", "tl"}
}

func (c *Console) Launch(d *engine.Director) error {
	game := tl.NewGame()
	game.Screen().SetFps(float64(c.fps))
	game.SetEndKey(tl.KeyCtrlC)

	level := tl.NewBaseLevel(tl.Cell{
		Bg: tl.ColorBlack,
		Fg: tl.ColorWhite,
		Ch: ' ',
	})
	level.AddEntity(newStage(d))
	game.Screen().SetLevel(level)

	log.Frontend().Info("console frontend starting", "fps", c.fps)
	game.Start()
	d.Close()
	log.Frontend().Info("console frontend stopped")
	return nil
}

// stage drives the director from termloop's frame loop: input arrives in
// Tick, time advances and the frame is painted in Draw.
type stage struct {
	director *engine.Director
	canvas   *raster.Canvas
	clock    float64
}

func newStage(d *engine.Director) *stage {
	size := d.Frame().Size
	return &stage{
		director: d,
		canvas: raster.NewCanvas(
			int(size.W/assets.CellWidth),
			int(size.H/assets.CellHeight),
			assets.CellWidth,
			assets.CellHeight,
		),
	}
}

func (s *stage) Tick(event tl.Event) {
	switch event.Type {
	case tl.EventKey:
		if event.Key == tl.KeySpace || event.Key == tl.KeyEnter {
			s.director.Touch()
		}
	case tl.EventMouse:
		if event.Key == tl.MouseLeft {
			s.director.Touch()
		}
	}
}

func (s *stage) Draw(screen *tl.Screen) {
	s.clock += screen.TimeDelta()
	s.director.Tick(s.clock)
	raster.Render(s.canvas, s.director.Frame())

	screenWidth, screenHeight := screen.Size()
	startX := (screenWidth - s.canvas.Cols) / 2
	startY := (screenHeight - s.canvas.Rows - 1) / 2
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}

	for y := 0; y < s.canvas.Rows; y++ {
		for x := 0; x < s.canvas.Cols; x++ {
			cell := s.canvas.At(x, y)
			if cell.Cont {
				continue
			}
			ch := cell.Ch
			if ch == 0 {
				ch = ' '
			}
			fg := foreground(cell.Fg)
			if cell.Bold && !cell.Faint {
				fg |= tl.AttrBold
			}
			screen.RenderCell(startX+x, startY+y, &tl.Cell{
				Fg: fg,
				Bg: background(cell.Bg),
				Ch: ch,
			})
		}
	}

	for i, ch := range hint {
		screen.RenderCell(startX+i, startY+s.canvas.Rows, &tl.Cell{
			Fg: tl.ColorWhite,
			Bg: tl.ColorBlack,
			Ch: ch,
		})
	}
}
