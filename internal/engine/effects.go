package engine

import (
	"fmt"
	"math"
)

// Particle is one spark of an emitter burst, in world coordinates.
type Particle struct {
	Position Vec
	Velocity Vec
	Life     float64
	Glyph    rune
}

type emitter struct {
	template  EmitterTemplate
	particles []Particle
}

// NewEmitter creates a one-shot particle effect from a named template. The
// burst happens when the node is added to a world; the node removes itself
// once the last particle has expired.
func NewEmitter(assets Assets, template string) (*Node, error) {
	tpl, err := assets.Emitter(template)
	if err != nil {
		return nil, err
	}
	if len(tpl.Glyphs) == 0 {
		return nil, fmt.Errorf("emitter %q has no glyphs: %w", template, ErrUnknownEmitter)
	}
	return &Node{
		Kind:    KindEmitter,
		Texture: tpl.Name,
		Tint:    tpl.Color,
		Alpha:   1,
		Z:       20,
		emitter: &emitter{template: tpl},
	}, nil
}

func (w *World) burst(n *Node) {
	e := n.emitter
	if e == nil {
		return
	}
	tpl := e.template
	e.particles = make([]Particle, 0, tpl.Count)
	for i := 0; i < tpl.Count; i++ {
		angle := w.rng.Float64() * 2 * math.Pi
		speed := tpl.Speed * (0.4 + 0.6*w.rng.Float64())
		e.particles = append(e.particles, Particle{
			Position: n.Position,
			Velocity: Vec{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Life:     tpl.Lifetime * (0.5 + 0.5*w.rng.Float64()),
			Glyph:    tpl.Glyphs[w.rng.Intn(len(tpl.Glyphs))],
		})
	}
}

// stepEffects runs on unscaled time so bursts keep playing in a frozen world.
func (w *World) stepEffects(dt float64) {
	for _, h := range w.handles() {
		n, _ := w.Node(h)
		if n.emitter == nil {
			continue
		}
		alive := n.emitter.particles[:0]
		for _, p := range n.emitter.particles {
			p.Life -= dt
			if p.Life <= 0 {
				continue
			}
			p.Position = p.Position.Add(p.Velocity.Scale(dt))
			p.Velocity = p.Velocity.Scale(math.Max(0, 1-2*dt))
			alive = append(alive, p)
		}
		n.emitter.particles = alive
		if len(alive) == 0 {
			w.Remove(h)
		}
	}
}
