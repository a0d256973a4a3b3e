package engine

import "errors"

var (
	ErrUnknownTexture = errors.New("unknown texture")
	ErrUnknownEmitter = errors.New("unknown emitter template")
)

// Color is a palette slot. Frontends map slots to their own color model.
type Color uint8

const (
	ColorDefault Color = iota
	ColorSkyTop
	ColorSkyBottom
	ColorHills
	ColorGround
	ColorRock
	ColorPlayer
	ColorText
	ColorTitle
	ColorSpark
	ColorTrigger
)

// Texture is a named image. Art holds the glyph rows used by character-cell
// renderers; when Tile is set the rows repeat to fill the node's size.
// Climb and Dive, when set, replace Art for nodes rotated nose up or down.
type Texture struct {
	Name  string
	Size  Size
	Art   []string
	Climb []string
	Dive  []string
	Tile  bool
	Color Color
}

// EmitterTemplate describes a one-shot particle burst.
type EmitterTemplate struct {
	Name     string
	Count    int
	Lifetime float64
	Speed    float64
	Glyphs   []rune
	Color    Color
}

// Assets resolves the named resources a scene asks for.
type Assets interface {
	Texture(name string) (Texture, error)
	Emitter(name string) (EmitterTemplate, error)
}
