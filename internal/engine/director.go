package engine

import (
	"fmt"

	"github.com/shvbsle/crashyplane/internal/log"
)

type Direction int

const (
	DirectionRight Direction = iota
	DirectionLeft
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionRight:
		return "right"
	case DirectionLeft:
		return "left"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "unknown"
	}
}

// Transition describes how an incoming scene replaces the current one.
// A zero Transition swaps scenes immediately.
type Transition struct {
	Direction Direction
	Duration  float64
}

// MoveIn slides the incoming scene over the current one from the given edge.
func MoveIn(direction Direction, duration float64) Transition {
	return Transition{Direction: direction, Duration: duration}
}

// Scene is driven by the director through lifecycle callbacks.
type Scene interface {
	Delegate

	// OnEnter is called once when the scene becomes active. The scene
	// builds its initial world objects here.
	OnEnter(w *World) error

	// OnUpdate is called once per frame with a monotonic time in seconds.
	OnUpdate(currentTime float64)

	// OnTouch is called once per discrete tap.
	OnTouch()
}

// Presenter shows scenes.
type Presenter interface {
	Present(s Scene, t Transition) error
}

type stage struct {
	scene Scene
	world *World
}

// Director owns the active scene, its world and any running transition.
type Director struct {
	cfg Config

	current  *stage
	outgoing *stage

	transition Transition
	elapsed    float64

	last    float64
	started bool
}

func NewDirector(cfg Config) *Director {
	return &Director{cfg: cfg}
}

// Present builds a fresh world for s, enters it and makes it the active
// scene, either immediately or at the end of the transition.
func (d *Director) Present(s Scene, t Transition) error {
	w := NewWorld(d.cfg)
	w.view = d
	w.SetDelegate(s)

	if err := s.OnEnter(w); err != nil {
		w.Close()
		return fmt.Errorf("could not enter scene: %w", err)
	}

	next := &stage{scene: s, world: w}
	if d.outgoing != nil {
		d.retire(d.outgoing, d.current, next)
		d.outgoing = nil
	}

	if d.current == nil || t.Duration <= 0 {
		old := d.current
		d.current = next
		if old != nil {
			d.retire(old, next)
		}
		log.Engine().Info("scene presented", "transition", "none")
		return nil
	}

	d.outgoing = d.current
	d.current = next
	d.transition = t
	d.elapsed = 0
	log.Engine().Info("scene presented",
		"transition", "move_in",
		"direction", t.Direction.String(),
		"duration", t.Duration)
	return nil
}

// retire closes st and restarts the loops of the stages that stay, which
// may share sound names with st.
func (d *Director) retire(st *stage, keep ...*stage) {
	st.world.Close()
	for _, k := range keep {
		if k != nil && k != st {
			k.world.resumeAudio()
		}
	}
}

// Transitioning reports whether a transition is running.
func (d *Director) Transitioning() bool {
	return d.outgoing != nil
}

// Current returns the active scene, or nil before the first Present.
func (d *Director) Current() Scene {
	if d.current == nil {
		return nil
	}
	return d.current.scene
}

// Tick advances the director to the monotonic time now. Both scenes are
// paused while a transition runs.
func (d *Director) Tick(now float64) {
	dt := 0.0
	if d.started {
		dt = now - d.last
	}
	d.started = true
	d.last = now
	if dt < 0 {
		dt = 0
	}

	if d.outgoing != nil {
		d.elapsed += dt
		if d.elapsed < d.transition.Duration {
			return
		}
		d.retire(d.outgoing, d.current)
		d.outgoing = nil
		log.Engine().Debug("transition finished")
	}

	if d.current == nil {
		return
	}
	d.current.scene.OnUpdate(now)
	d.current.world.Step(now)
}

// Touch forwards a tap to the active scene. Taps during a transition are
// dropped.
func (d *Director) Touch() {
	if d.current == nil || d.outgoing != nil {
		return
	}
	d.current.scene.OnTouch()
}

// Frame is what a renderer needs to draw one frame.
type Frame struct {
	Size      Size
	World     *World
	Outgoing  *World
	Progress  float64
	Direction Direction
}

// Offset returns how far the incoming world is displaced from its resting
// position.
func (f Frame) Offset() Vec {
	if f.Outgoing == nil {
		return Vec{}
	}
	rest := 1 - f.Progress
	switch f.Direction {
	case DirectionRight:
		return Vec{X: f.Size.W * rest}
	case DirectionLeft:
		return Vec{X: -f.Size.W * rest}
	case DirectionUp:
		return Vec{Y: f.Size.H * rest}
	default:
		return Vec{Y: -f.Size.H * rest}
	}
}

func (d *Director) Frame() Frame {
	f := Frame{Size: d.cfg.Frame}
	if d.current != nil {
		f.World = d.current.world
	}
	if d.outgoing != nil {
		f.Outgoing = d.outgoing.world
		f.Direction = d.transition.Direction
		if d.transition.Duration > 0 {
			f.Progress = d.elapsed / d.transition.Duration
		}
	}
	return f
}

// Close stops every world the director still owns.
func (d *Director) Close() {
	if d.outgoing != nil {
		d.outgoing.world.Close()
		d.outgoing = nil
	}
	if d.current != nil {
		d.current.world.Close()
	}
}
