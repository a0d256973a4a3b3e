package engine

import "testing"

func TestGravityAcceleratesDynamicBodies(t *testing.T) {
	w, _ := newTestWorld()
	w.Gravity = Vec{Y: -5}

	falling := &Node{Body: NewBody(Size{W: 10, H: 10}, true)}
	resting := &Node{Body: NewBody(Size{W: 10, H: 10}, false)}
	w.Add(falling)
	w.Add(resting)

	w.Step(1)

	if !near(falling.Body.Velocity.Y, -750) {
		t.Errorf("Expected vy -750, got %f", falling.Body.Velocity.Y)
	}
	if falling.Position.Y >= 0 {
		t.Errorf("Expected body to fall, got y %f", falling.Position.Y)
	}
	if resting.Position.Y != 0 || resting.Body.Velocity.Y != 0 {
		t.Error("Expected static body to stay put")
	}
}

func TestApplyImpulse(t *testing.T) {
	b := NewBody(Size{W: 10, H: 10}, true)
	b.Mass = 6
	b.ApplyImpulse(Vec{Y: 20})

	if !near(b.Velocity.Y, 500) {
		t.Errorf("Expected vy 500, got %f", b.Velocity.Y)
	}

	s := NewBody(Size{W: 10, H: 10}, false)
	s.ApplyImpulse(Vec{Y: 20})
	if s.Velocity.Y != 0 {
		t.Errorf("Expected impulse on static body to be ignored, got %f", s.Velocity.Y)
	}
}

func TestContactIsReportedOnFirstTouchOnly(t *testing.T) {
	w, _ := newTestWorld()
	w.Gravity = Vec{}
	delegate := &recordingDelegate{}
	w.SetDelegate(delegate)

	mover := &Node{Body: NewBody(Size{W: 10, H: 10}, true)}
	mover.Body.ContactMask = AllCategories
	wall := &Node{Position: Vec{X: 5}, Body: NewBody(Size{W: 10, H: 10}, false)}
	a := w.Add(mover)
	b := w.Add(wall)

	w.Step(0.5)
	if len(delegate.contacts) != 1 {
		t.Fatalf("Expected 1 contact while overlapping, got %d", len(delegate.contacts))
	}
	c := delegate.contacts[0]
	if !c.Involves(a) || c.Other(a) != b {
		t.Errorf("Expected contact between mover and wall, got %+v", c)
	}

	mover.Position = Vec{X: 100}
	w.Step(0.6)
	mover.Position = Vec{}
	w.Step(0.7)

	if len(delegate.contacts) != 2 {
		t.Errorf("Expected a new contact after separating, got %d", len(delegate.contacts))
	}
}

func TestContactRequiresMaskAndDynamicBody(t *testing.T) {
	w, _ := newTestWorld()
	w.Gravity = Vec{}
	delegate := &recordingDelegate{}
	w.SetDelegate(delegate)

	unmasked := &Node{Body: NewBody(Size{W: 10, H: 10}, true)}
	w.Add(unmasked)
	w.Add(&Node{Body: NewBody(Size{W: 10, H: 10}, false)})

	staticA := &Node{Position: Vec{X: 200}, Body: NewBody(Size{W: 10, H: 10}, false)}
	staticA.Body.ContactMask = AllCategories
	w.Add(staticA)
	w.Add(&Node{Position: Vec{X: 200}, Body: NewBody(Size{W: 10, H: 10}, false)})

	w.Step(0.1)
	if len(delegate.contacts) != 0 {
		t.Errorf("Expected no contacts, got %d", len(delegate.contacts))
	}
}

func TestContactsWithRemovedBodiesAreSkipped(t *testing.T) {
	w, _ := newTestWorld()
	w.Gravity = Vec{}

	remover := &removingDelegate{w: w}
	w.SetDelegate(remover)

	player := &Node{Body: NewBody(Size{W: 10, H: 10}, true)}
	player.Body.ContactMask = AllCategories
	remover.player = w.Add(player)
	w.Add(&Node{Body: NewBody(Size{W: 10, H: 10}, false)})
	w.Add(&Node{Body: NewBody(Size{W: 10, H: 10}, false)})

	w.Step(0.1)
	if remover.calls != 1 {
		t.Errorf("Expected second contact to be skipped after removal, got %d calls", remover.calls)
	}
}

func TestContactsOutsideTheFrame(t *testing.T) {
	w, _ := newTestWorld()
	w.Gravity = Vec{}
	delegate := &recordingDelegate{}
	w.SetDelegate(delegate)

	mover := &Node{Position: Vec{X: 700, Y: 520}, Body: NewBody(Size{W: 10, H: 10}, true)}
	mover.Body.ContactMask = AllCategories
	w.Add(mover)
	w.Add(&Node{Position: Vec{X: 704, Y: 524}, Body: NewBody(Size{W: 64, H: 8}, false)})

	w.Step(0.1)
	if len(delegate.contacts) != 1 {
		t.Errorf("Expected contact beyond the frame edge, got %d", len(delegate.contacts))
	}
}

func TestBodyAssignedAfterAddCollides(t *testing.T) {
	w, _ := newTestWorld()
	w.Gravity = Vec{}
	delegate := &recordingDelegate{}
	w.SetDelegate(delegate)

	mover := &Node{Body: NewBody(Size{W: 10, H: 10}, true)}
	mover.Body.ContactMask = AllCategories
	w.Add(mover)
	wall := &Node{Position: Vec{X: 300}}
	w.Add(wall)
	wall.Body = NewBody(Size{W: 10, H: 10}, false)

	w.Step(0.1)
	if len(delegate.contacts) != 0 {
		t.Fatalf("Expected no contact while apart, got %d", len(delegate.contacts))
	}

	mover.Position = Vec{X: 296}
	w.Step(0.2)
	if len(delegate.contacts) != 1 {
		t.Errorf("Expected late body to collide, got %d contacts", len(delegate.contacts))
	}
}

func TestRemovedBodyLeavesTheSpace(t *testing.T) {
	w, _ := newTestWorld()
	w.Gravity = Vec{}
	delegate := &recordingDelegate{}
	w.SetDelegate(delegate)

	mover := &Node{Position: Vec{X: 100}, Body: NewBody(Size{W: 10, H: 10}, true)}
	mover.Body.ContactMask = AllCategories
	w.Add(mover)
	wall := w.Add(&Node{Body: NewBody(Size{W: 10, H: 10}, false)})
	w.Step(0.1)

	w.Remove(wall)
	mover.Position = Vec{}
	w.Step(0.2)

	if len(delegate.contacts) != 0 {
		t.Errorf("Expected removed body to be gone from the space, got %d contacts", len(delegate.contacts))
	}
}

type removingDelegate struct {
	w      *World
	player Handle
	calls  int
}

func (d *removingDelegate) OnContact(c Contact) {
	d.calls++
	d.w.Remove(d.player)
}

func (d *removingDelegate) OnEvent(Handle, Event) {}
