package engine

import (
	"math"
	"math/rand"
	"sort"

	"github.com/samber/lo"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

const (
	// PointsPerMeter converts physics units (metres, newton-seconds) to world points.
	PointsPerMeter = 150.0

	// MaxStep bounds a single simulation sub-step in seconds.
	MaxStep = 1.0 / 60.0
)

// Handle identifies a node in a World. It wraps the node's entity, whose
// version changes when the entity id is recycled, so handles of removed
// nodes never resolve again.
type Handle struct {
	entity donburi.Entity
}

func (h Handle) IsZero() bool {
	return h.entity == donburi.Null
}

// Contact reports the first touch between two bodies.
type Contact struct {
	A, B Handle
}

// Other returns the body of the contact that is not h.
func (c Contact) Other(h Handle) Handle {
	if c.A == h {
		return c.B
	}
	return c.A
}

// Involves reports whether h is one of the contact bodies.
func (c Contact) Involves(h Handle) bool {
	return c.A == h || c.B == h
}

// Delegate receives world callbacks. A Scene is the delegate of its world.
type Delegate interface {
	OnContact(c Contact)
	OnEvent(h Handle, ev Event)
}

// nodeData is the single component every entity carries. order keeps
// insertion order stable for iteration and Z ties.
type nodeData struct {
	node  *Node
	order uint64
}

var nodeComponent = donburi.NewComponentType[nodeData]()

type liveNode struct {
	h Handle
	nodeData
}

type pair struct {
	a, b Handle
}

func makePair(a, b Handle) pair {
	if b.entity < a.entity {
		a, b = b, a
	}
	return pair{a: a, b: b}
}

// Config holds the collaborators shared by a world.
type Config struct {
	Frame  Size
	Assets Assets
	Audio  Audio
	Rand   *rand.Rand
}

// World owns every node of one scene instance, the actions running on them
// and the physics simulation between them.
type World struct {
	Gravity Vec
	Speed   float64

	frame    Size
	assets   Assets
	audio    Audio
	rng      *rand.Rand
	view     Presenter
	delegate Delegate

	ecs      donburi.World
	nodes    *donburi.Query
	seq      uint64
	root     Handle
	space    *resolv.Space
	bodies   map[Handle]*bodyLink
	touching map[pair]struct{}

	last    float64
	started bool
}

func NewWorld(cfg Config) *World {
	if cfg.Audio == nil {
		cfg.Audio = SilentAudio{}
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(1))
	}

	w := &World{
		Gravity:  Vec{Y: -9.8},
		Speed:    1,
		frame:    cfg.Frame,
		assets:   cfg.Assets,
		audio:    cfg.Audio,
		rng:      cfg.Rand,
		ecs:      donburi.NewWorld(),
		nodes:    donburi.NewQuery(filter.Contains(nodeComponent)),
		space:    newSpace(cfg.Frame),
		bodies:   make(map[Handle]*bodyLink),
		touching: make(map[pair]struct{}),
	}
	w.root = w.Add(&Node{Kind: KindColor, Name: "root", Hidden: true, Size: cfg.Frame})
	return w
}

func (w *World) Frame() Size {
	return w.frame
}

func (w *World) Assets() Assets {
	return w.assets
}

func (w *World) Rand() *rand.Rand {
	return w.rng
}

// Root returns the scene-level node. Actions that belong to the scene
// itself, rather than to an object in it, run on the root.
func (w *World) Root() Handle {
	return w.root
}

func (w *World) SetDelegate(d Delegate) {
	w.delegate = d
}

// View returns the presenter showing this world, or nil when the world is
// not attached to a director.
func (w *World) View() Presenter { return w.view }

func (w *World) valid(h Handle) bool {
	return !h.IsZero() && w.ecs.Valid(h.entity)
}

// Node resolves h.
func (w *World) Node(h Handle) (*Node, bool) {
	if !w.valid(h) {
		return nil, false
	}
	return nodeComponent.Get(w.ecs.Entry(h.entity)).node, true
}

// Add inserts n into the world. Audio nodes start looping and emitters
// burst as soon as they are added.
func (w *World) Add(n *Node) Handle {
	e := w.ecs.Create(nodeComponent)
	w.seq++
	nodeComponent.SetValue(w.ecs.Entry(e), nodeData{node: n, order: w.seq})
	h := Handle{entity: e}

	if n.Body != nil {
		w.attachBody(h, n)
	}
	switch n.Kind {
	case KindAudio:
		w.audio.Loop(n.Sound)
		n.playing = true
	case KindEmitter:
		w.burst(n)
	}
	return h
}

// Remove deletes the node behind h together with its actions. Removing an
// already removed node, or the root, does nothing.
func (w *World) Remove(h Handle) {
	if !w.valid(h) || h == w.root {
		return
	}
	n, _ := w.Node(h)
	if n.Kind == KindAudio && n.playing {
		w.audio.Stop(n.Sound)
		n.playing = false
	}
	for _, r := range n.actions {
		r.cancelled = true
	}
	n.actions = nil

	w.detachBody(h)
	w.ecs.Remove(h.entity)

	for p := range w.touching {
		if p.a == h || p.b == h {
			delete(w.touching, p)
		}
	}
}

// Find returns the handles of live nodes with the given name.
func (w *World) Find(name string) []Handle {
	return lo.FilterMap(w.live(), func(l liveNode, _ int) (Handle, bool) {
		return l.h, l.node.Name == name
	})
}

// Len returns the number of live nodes, not counting the root.
func (w *World) Len() int {
	return w.ecs.Len() - 1
}

// Nodes returns the live nodes in drawing order. The nodes must be treated
// as read-only.
func (w *World) Nodes() []*Node {
	out := lo.FilterMap(w.live(), func(l liveNode, _ int) (*Node, bool) {
		return l.node, l.h != w.root
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Z < out[j].Z
	})
	return out
}

// live snapshots the node entities in insertion order. Callers may add and
// remove nodes while walking the result.
func (w *World) live() []liveNode {
	var out []liveNode
	w.nodes.Each(w.ecs, func(e *donburi.Entry) {
		out = append(out, liveNode{h: Handle{entity: e.Entity()}, nodeData: *nodeComponent.Get(e)})
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].order < out[j].order
	})
	return out
}

func (w *World) handles() []Handle {
	return lo.Map(w.live(), func(l liveNode, _ int) Handle {
		return l.h
	})
}

// Run starts a on h. Leading instantaneous steps run before Run returns.
func (w *World) Run(h Handle, a Action) {
	w.RunKeyed(h, "", a)
}

// RunKeyed starts a on h, replacing any running action with the same key.
func (w *World) RunKeyed(h Handle, key string, a Action) {
	n, ok := w.Node(h)
	if !ok {
		return
	}
	if key != "" {
		kept := n.actions[:0]
		for _, r := range n.actions {
			if r.key == key {
				r.cancelled = true
				continue
			}
			kept = append(kept, r)
		}
		n.actions = kept
	}

	r := newRunner(&a)
	r.key = key
	n.actions = append(n.actions, r)

	if _, done := w.advance(h, r, 0); done {
		r.finished = true
		w.pruneActions(h)
	}
}

// HasActions reports whether any action is running on h.
func (w *World) HasActions(h Handle) bool {
	n, ok := w.Node(h)
	return ok && len(n.actions) > 0
}

func (w *World) pruneActions(h Handle) {
	n, ok := w.Node(h)
	if !ok {
		return
	}
	kept := n.actions[:0]
	for _, r := range n.actions {
		if !r.finished && !r.cancelled {
			kept = append(kept, r)
		}
	}
	for i := len(kept); i < len(n.actions); i++ {
		n.actions[i] = nil
	}
	n.actions = kept
}

func (w *World) stepActions(dt float64) {
	for _, h := range w.handles() {
		n, ok := w.Node(h)
		if !ok {
			continue
		}
		running := append([]*runner(nil), n.actions...)
		for _, r := range running {
			if !w.valid(h) {
				break
			}
			if r.cancelled || r.finished {
				continue
			}
			if _, done := w.advance(h, r, dt); done {
				r.finished = true
			}
		}
		w.pruneActions(h)
	}
}

// Step advances the world to the monotonic time now. The first call only
// establishes the time base.
func (w *World) Step(now float64) {
	dt := 0.0
	if w.started {
		dt = now - w.last
	}
	w.started = true
	w.last = now
	if dt < 0 {
		dt = 0
	}

	steps := int(math.Ceil(dt / MaxStep))
	if steps < 1 {
		steps = 1
	}
	sub := dt / float64(steps)
	for i := 0; i < steps; i++ {
		w.stepEffects(sub)
		scaled := sub * w.Speed
		w.stepActions(scaled)
		w.stepPhysics(scaled)
		w.dispatchContacts(w.detectContacts())
	}
}

// Close stops every sound the world is playing.
func (w *World) Close() {
	for _, l := range w.live() {
		if l.node.Kind == KindAudio && l.node.playing {
			w.audio.Stop(l.node.Sound)
			l.node.playing = false
		}
	}
}

// resumeAudio restarts the loops of the audio nodes still playing. Another
// world closing may have stopped a sound of the same name.
func (w *World) resumeAudio() {
	for _, l := range w.live() {
		if l.node.Kind == KindAudio && l.node.playing {
			w.audio.Loop(l.node.Sound)
		}
	}
}
