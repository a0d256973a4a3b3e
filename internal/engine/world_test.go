package engine

import "testing"

func TestRemovedHandleNeverResolves(t *testing.T) {
	w, _ := newTestWorld()

	a := w.Add(&Node{Name: "a"})
	w.Remove(a)
	b := w.Add(&Node{Name: "b"})

	if _, ok := w.Node(a); ok {
		t.Error("Expected stale handle to be invalid after slot reuse")
	}
	n, ok := w.Node(b)
	if !ok || n.Name != "b" {
		t.Errorf("Expected new handle to resolve to b, got %v", n)
	}
	if a == b {
		t.Error("Expected reused slot to produce a distinct handle")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	w, _ := newTestWorld()
	h := w.Add(&Node{})

	w.Remove(h)
	w.Remove(h)
	w.Remove(Handle{})

	if w.Len() != 0 {
		t.Errorf("Expected empty world, got %d nodes", w.Len())
	}
}

func TestRootCannotBeRemoved(t *testing.T) {
	w, _ := newTestWorld()
	w.Remove(w.Root())

	if _, ok := w.Node(w.Root()); !ok {
		t.Error("Expected root to survive Remove")
	}
}

func TestNodesAreSortedByZ(t *testing.T) {
	w, _ := newTestWorld()
	w.Add(&Node{Name: "front", Z: 10})
	w.Add(&Node{Name: "back", Z: -40})
	w.Add(&Node{Name: "middle", Z: 0})

	nodes := w.Nodes()
	if len(nodes) != 3 {
		t.Fatalf("Expected 3 nodes, got %d", len(nodes))
	}
	want := []string{"back", "middle", "front"}
	for i, n := range nodes {
		if n.Name != want[i] {
			t.Errorf("Expected node %d to be %s, got %s", i, want[i], n.Name)
		}
	}
}

func TestStaleHandlesStayInvalidAcrossManyReuses(t *testing.T) {
	w, _ := newTestWorld()

	var stale []Handle
	for i := 0; i < 20; i++ {
		h := w.Add(&Node{Name: "rock"})
		w.Remove(h)
		stale = append(stale, h)
	}
	live := w.Add(&Node{Name: "rock"})

	for i, h := range stale {
		if _, ok := w.Node(h); ok {
			t.Errorf("Expected handle %d to stay invalid", i)
		}
		if h == live {
			t.Errorf("Expected handle %d to differ from the live one", i)
		}
	}
	if got := w.Find("rock"); len(got) != 1 || got[0] != live {
		t.Errorf("Expected only the live rock, got %v", got)
	}
}

func TestEqualZKeepsInsertionOrder(t *testing.T) {
	w, _ := newTestWorld()
	first := w.Add(&Node{Name: "first"})
	w.Add(&Node{Name: "second"})
	w.Remove(first)
	w.Add(&Node{Name: "third"})

	nodes := w.Nodes()
	want := []string{"second", "third"}
	if len(nodes) != len(want) {
		t.Fatalf("Expected %d nodes, got %d", len(want), len(nodes))
	}
	for i, n := range nodes {
		if n.Name != want[i] {
			t.Errorf("Expected node %d to be %s, got %s", i, want[i], n.Name)
		}
	}
}

func TestFindByName(t *testing.T) {
	w, _ := newTestWorld()
	w.Add(&Node{Name: "rock"})
	r := w.Add(&Node{Name: "rock"})
	w.Add(&Node{Name: "player"})
	w.Remove(r)

	if got := len(w.Find("rock")); got != 1 {
		t.Errorf("Expected 1 rock, got %d", got)
	}
	if got := len(w.Find("missing")); got != 0 {
		t.Errorf("Expected no matches, got %d", got)
	}
}

func TestAudioNodeLoopsUntilStopped(t *testing.T) {
	w, audio := newTestWorld()
	h := w.Add(NewAudio("music.mp3"))

	if !audio.looping["music.mp3"] {
		t.Fatal("Expected music to loop once added")
	}

	w.Run(h, Stop())
	if audio.looping["music.mp3"] {
		t.Error("Expected Stop to silence the music")
	}

	n, _ := w.Node(h)
	if n == nil {
		t.Error("Expected the stopped audio node to stay in the world")
	}
}

func TestRemovingAudioNodeStopsIt(t *testing.T) {
	w, audio := newTestWorld()
	h := w.Add(NewAudio("music.mp3"))
	w.Remove(h)

	if audio.looping["music.mp3"] {
		t.Error("Expected removal to stop the music")
	}
}

func TestSpeedZeroFreezesActions(t *testing.T) {
	w, _ := newTestWorld()
	h := w.Add(&Node{Alpha: 1})
	w.Run(h, MoveBy(100, 0, 1))

	w.Speed = 0
	w.Step(5)

	n, _ := w.Node(h)
	if n.Position.X != 0 {
		t.Errorf("Expected frozen node, got x %f", n.Position.X)
	}
	if !w.HasActions(h) {
		t.Error("Expected the action to still be pending")
	}
}

func TestEmitterRunsOnUnscaledTime(t *testing.T) {
	w, _ := newTestWorld()
	n, err := NewEmitter(fakeAssets{}, "burst")
	if err != nil {
		t.Fatalf("NewEmitter failed: %v", err)
	}
	h := w.Add(n)
	if len(n.Particles()) != 5 {
		t.Fatalf("Expected 5 particles, got %d", len(n.Particles()))
	}

	w.Speed = 0
	w.Step(1)

	if _, ok := w.Node(h); ok {
		t.Error("Expected the emitter to remove itself after its particles expired")
	}
}

func TestUnknownAssetsReturnErrors(t *testing.T) {
	if _, err := NewSprite(fakeAssets{}, "nope"); err == nil {
		t.Error("Expected error for unknown texture")
	}
	if _, err := NewEmitter(fakeAssets{}, "nope"); err == nil {
		t.Error("Expected error for unknown emitter")
	}
}
