package engine

import "math"

type ActionKind int

const (
	ActionWait ActionKind = iota
	ActionMoveBy
	ActionFadeOut
	ActionRotateTo
	ActionAnimate
	ActionRemove
	ActionRun
	ActionPlaySound
	ActionStop
	ActionSequence
	ActionRepeatForever
)

// Event is an opaque code delivered to the scene by a Run action.
type Event int

// Action is a declarative timed record. Actions are values; running state
// lives in the world, so one Action may be run on many nodes.
type Action struct {
	Kind     ActionKind
	Duration float64
	Delta    Vec
	Angle    float64
	Frames   []string
	Sound    string
	Event    Event
	Children []Action
}

func Wait(d float64) Action {
	return Action{Kind: ActionWait, Duration: d}
}

func MoveBy(dx, dy, d float64) Action {
	return Action{Kind: ActionMoveBy, Delta: Vec{X: dx, Y: dy}, Duration: d}
}

func FadeOut(d float64) Action {
	return Action{Kind: ActionFadeOut, Duration: d}
}

func RotateTo(angle, d float64) Action {
	return Action{Kind: ActionRotateTo, Angle: angle, Duration: d}
}

// Animate cycles the node's texture through frames once.
func Animate(frames []string, timePerFrame float64) Action {
	return Action{Kind: ActionAnimate, Frames: frames, Duration: timePerFrame * float64(len(frames))}
}

func RemoveFromParent() Action {
	return Action{Kind: ActionRemove}
}

// Run delivers ev to the scene's OnEvent with the handle of the running node.
func Run(ev Event) Action {
	return Action{Kind: ActionRun, Event: ev}
}

func PlaySound(name string) Action {
	return Action{Kind: ActionPlaySound, Sound: name}
}

// Stop silences an audio node.
func Stop() Action {
	return Action{Kind: ActionStop}
}

func Sequence(actions ...Action) Action {
	return Action{Kind: ActionSequence, Children: actions}
}

func RepeatForever(a Action) Action {
	return Action{Kind: ActionRepeatForever, Children: []Action{a}}
}

type runner struct {
	action    *Action
	key       string
	elapsed   float64
	started   bool
	finished  bool
	cancelled bool

	startAlpha    float64
	startRotation float64
	moved         Vec

	index int
	child *runner
}

func newRunner(a *Action) *runner {
	return &runner{action: a}
}

func (r *runner) reset() {
	r.elapsed = 0
	r.started = false
	r.moved = Vec{}
	r.index = 0
	r.child = nil
}

// advance runs r on h for up to dt seconds. It returns the time left over
// and whether the action has finished.
func (w *World) advance(h Handle, r *runner, dt float64) (float64, bool) {
	n, ok := w.Node(h)
	if !ok {
		return dt, true
	}

	a := r.action
	switch a.Kind {
	case ActionRemove:
		w.Remove(h)
		return dt, true

	case ActionRun:
		if w.delegate != nil {
			w.delegate.OnEvent(h, a.Event)
		}
		return dt, true

	case ActionPlaySound:
		w.audio.Play(a.Sound)
		return dt, true

	case ActionStop:
		if n.Kind == KindAudio && n.playing {
			w.audio.Stop(n.Sound)
			n.playing = false
		}
		return dt, true

	case ActionSequence:
		for r.index < len(a.Children) {
			if r.child == nil {
				r.child = newRunner(&a.Children[r.index])
			}
			left, done := w.advance(h, r.child, dt)
			if !done {
				return 0, false
			}
			if !w.valid(h) {
				return left, true
			}
			dt = left
			r.index++
			r.child = nil
		}
		return dt, true

	case ActionRepeatForever:
		if len(a.Children) == 0 {
			return 0, false
		}
		if r.child == nil {
			r.child = newRunner(&a.Children[0])
		}
		for {
			left, done := w.advance(h, r.child, dt)
			if !done || !w.valid(h) {
				return 0, false
			}
			r.child.reset()
			if left >= dt {
				// An iteration that takes no time would spin; resume next tick.
				return 0, false
			}
			dt = left
		}
	}

	if !r.started {
		r.started = true
		r.startAlpha = n.Alpha
		r.startRotation = n.Rotation
	}

	remaining := math.Max(a.Duration-r.elapsed, 0)
	step := dt
	done := false
	if dt >= remaining {
		step = remaining
		r.elapsed = a.Duration
		done = true
	} else {
		r.elapsed += dt
	}

	progress := 1.0
	if a.Duration > 0 {
		progress = math.Min(r.elapsed/a.Duration, 1)
	}

	switch a.Kind {
	case ActionMoveBy:
		target := a.Delta.Scale(progress)
		n.Position = n.Position.Add(Vec{X: target.X - r.moved.X, Y: target.Y - r.moved.Y})
		r.moved = target
	case ActionFadeOut:
		n.Alpha = r.startAlpha * (1 - progress)
	case ActionRotateTo:
		n.Rotation = r.startRotation + (a.Angle-r.startRotation)*progress
	case ActionAnimate:
		if len(a.Frames) > 0 {
			i := int(progress * float64(len(a.Frames)))
			if i >= len(a.Frames) {
				i = len(a.Frames) - 1
			}
			n.Texture = a.Frames[i]
		}
	}

	return dt - step, done
}
