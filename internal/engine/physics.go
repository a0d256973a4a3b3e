package engine

import (
	"github.com/samber/lo"
	"github.com/solarlune/resolv"
)

// AllCategories matches every body category.
const AllCategories uint32 = 0xFFFFFFFF

// Body is the physics state of a node. Static bodies take part in contact
// detection but are only ever moved by actions.
type Body struct {
	Dynamic     bool
	Size        Size
	Mass        float64
	Velocity    Vec
	Category    uint32
	ContactMask uint32
}

func NewBody(size Size, dynamic bool) *Body {
	return &Body{
		Dynamic:  dynamic,
		Size:     size,
		Mass:     1,
		Category: AllCategories,
	}
}

// ApplyImpulse changes the velocity of a dynamic body by impulse/mass.
// The impulse is in newton-seconds; velocity is in points per second.
func (b *Body) ApplyImpulse(impulse Vec) {
	if !b.Dynamic || b.Mass <= 0 {
		return
	}
	b.Velocity = b.Velocity.Add(impulse.Scale(PointsPerMeter / b.Mass))
}

func (w *World) stepPhysics(dt float64) {
	if dt <= 0 {
		return
	}
	accel := w.Gravity.Scale(PointsPerMeter)
	for _, l := range w.live() {
		n := l.node
		if n.Body == nil || !n.Body.Dynamic {
			continue
		}
		n.Body.Velocity = n.Body.Velocity.Add(accel.Scale(dt))
		n.Position = n.Position.Add(n.Body.Velocity.Scale(dt))
	}
}

func canContact(a, b *Body) bool {
	if !a.Dynamic && !b.Dynamic {
		return false
	}
	return a.Category&b.ContactMask != 0 || b.Category&a.ContactMask != 0
}

// spaceCell is the broad-phase cell size of the collision space, in points.
const spaceCell = 32

// The collision space spans three frames in each direction so bodies that
// leave the visible frame, such as rocks waiting offscreen or a player above
// the ceiling, keep colliding. World (0, 0) maps to (frame.W, frame.H).
func newSpace(frame Size) *resolv.Space {
	w := max(int(frame.W)*3, spaceCell)
	h := max(int(frame.H)*3, spaceCell)
	return resolv.NewSpace(w, h, spaceCell, spaceCell)
}

// bodyLink ties a node body to its collision object.
type bodyLink struct {
	body   *Body
	object *resolv.Object
}

func (w *World) toSpace(v Vec) Vec {
	return Vec{X: v.X + w.frame.W, Y: v.Y + w.frame.H}
}

func (w *World) attachBody(h Handle, n *Node) {
	b := n.Body
	corner := w.toSpace(RectAround(n.Position, b.Size).Min)
	obj := resolv.NewObject(corner.X, corner.Y, b.Size.W, b.Size.H, lo.Compact([]string{n.Name})...)
	obj.SetShape(resolv.NewRectangle(0, 0, b.Size.W, b.Size.H))
	obj.Shape.SetPosition(corner.X, corner.Y)
	obj.Data = h
	w.space.Add(obj)
	w.bodies[h] = &bodyLink{body: b, object: obj}
}

func (w *World) detachBody(h Handle) {
	link, ok := w.bodies[h]
	if !ok {
		return
	}
	w.space.Remove(link.object)
	delete(w.bodies, h)
}

// syncBodies moves every collision object to its node. Bodies assigned or
// replaced after Add are attached here.
func (w *World) syncBodies() {
	for _, l := range w.live() {
		n := l.node
		link, ok := w.bodies[l.h]
		switch {
		case n.Body == nil:
			w.detachBody(l.h)
			continue
		case !ok || link.body != n.Body:
			w.detachBody(l.h)
			w.attachBody(l.h, n)
			continue
		}

		corner := w.toSpace(RectAround(n.Position, n.Body.Size).Min)
		obj := link.object
		if obj.X == corner.X && obj.Y == corner.Y {
			continue
		}
		obj.X, obj.Y = corner.X, corner.Y
		obj.Update()
		obj.Shape.SetPosition(corner.X, corner.Y)
	}
}

// detectContacts returns the pairs that started touching since the last call
// and forgets pairs that separated. Only dynamic bodies query the space, so
// two static bodies never meet.
func (w *World) detectContacts() []Contact {
	w.syncBodies()

	current := make(map[pair]struct{}, len(w.touching))
	var began []Contact
	for _, h := range w.handles() {
		link, ok := w.bodies[h]
		if !ok || !link.body.Dynamic {
			continue
		}
		hit := link.object.Check(0, 0)
		if hit == nil {
			continue
		}
		for _, other := range hit.Objects {
			oh, ok := other.Data.(Handle)
			if !ok || oh == h {
				continue
			}
			olink, ok := w.bodies[oh]
			if !ok || !canContact(link.body, olink.body) {
				continue
			}
			p := makePair(h, oh)
			if _, seen := current[p]; seen {
				continue
			}
			if link.object.Shape.Intersection(0, 0, other.Shape) == nil {
				continue
			}
			current[p] = struct{}{}
			if _, ok := w.touching[p]; !ok {
				began = append(began, Contact{A: h, B: oh})
			}
		}
	}
	w.touching = current
	return began
}

func (w *World) dispatchContacts(contacts []Contact) {
	if w.delegate == nil {
		return
	}
	for _, c := range contacts {
		if !w.valid(c.A) || !w.valid(c.B) {
			continue
		}
		w.delegate.OnContact(c)
	}
}
