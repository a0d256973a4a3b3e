package console

import (
	tl "github.com/JoelOtter/termloop"
	"github.com/shvbsle/crashyplane/internal/engine"
)

func foreground(c engine.Color) tl.Attr {
	switch c {
	case engine.ColorHills:
		return tl.ColorGreen
	case engine.ColorGround:
		return tl.ColorYellow
	case engine.ColorRock:
		return tl.ColorWhite
	case engine.ColorPlayer:
		return tl.ColorRed
	case engine.ColorTitle:
		return tl.ColorYellow
	case engine.ColorSpark:
		return tl.ColorRed
	case engine.ColorText:
		return tl.ColorBlack
	default:
		return tl.ColorWhite
	}
}

func background(c engine.Color) tl.Attr {
	switch c {
	case engine.ColorSkyTop:
		return tl.ColorCyan
	case engine.ColorSkyBottom:
		return tl.ColorBlue
	case engine.ColorTrigger:
		return tl.ColorRed
	default:
		return tl.ColorBlack
	}
}
