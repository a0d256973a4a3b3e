package assets

import (
	"fmt"

	"github.com/shvbsle/crashyplane/internal/engine"
)

// Terminal cell size in world points. A 640x480 world maps onto 80x30 cells.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Catalog is an in-memory set of named textures and emitter templates.
type Catalog struct {
	textures map[string]engine.Texture
	emitters map[string]engine.EmitterTemplate
}

func NewCatalog() *Catalog {
	return &Catalog{
		textures: make(map[string]engine.Texture),
		emitters: make(map[string]engine.EmitterTemplate),
	}
}

// Default returns the catalog with every asset the game scene names.
func Default() *Catalog {
	c := NewCatalog()
	for _, t := range defaultTextures() {
		c.RegisterTexture(t)
	}
	c.RegisterEmitter(engine.EmitterTemplate{
		Name:     "PlayerExplosion",
		Count:    28,
		Lifetime: 1.2,
		Speed:    220,
		Glyphs:   []rune{'*', '+', 'x', '.', '\''},
		Color:    engine.ColorSpark,
	})
	return c
}

// RegisterTexture adds t. A zero size is derived from the art.
func (c *Catalog) RegisterTexture(t engine.Texture) {
	if t.Size.W == 0 || t.Size.H == 0 {
		t.Size = ArtSize(t.Art)
	}
	c.textures[t.Name] = t
}

func (c *Catalog) RegisterEmitter(e engine.EmitterTemplate) {
	c.emitters[e.Name] = e
}

func (c *Catalog) Texture(name string) (engine.Texture, error) {
	t, ok := c.textures[name]
	if !ok {
		return engine.Texture{}, fmt.Errorf("%w: %q", engine.ErrUnknownTexture, name)
	}
	return t, nil
}

func (c *Catalog) Emitter(name string) (engine.EmitterTemplate, error) {
	e, ok := c.emitters[name]
	if !ok {
		return engine.EmitterTemplate{}, fmt.Errorf("%w: %q", engine.ErrUnknownEmitter, name)
	}
	return e, nil
}
