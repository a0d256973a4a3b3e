package engine

import (
	"errors"
	"math/rand"
	"testing"
)

type fakeScene struct {
	world   *World
	touches int
	updates int
	music   bool
	err     error
}

func (s *fakeScene) OnEnter(w *World) error {
	s.world = w
	if s.music {
		w.Add(NewAudio("music.mp3"))
	}
	return s.err
}

func (s *fakeScene) OnUpdate(float64)      { s.updates++ }
func (s *fakeScene) OnTouch()              { s.touches++ }
func (s *fakeScene) OnContact(Contact)     {}
func (s *fakeScene) OnEvent(Handle, Event) {}

func newTestDirector() *Director {
	d, _ := newTestDirectorWithAudio()
	return d
}

func newTestDirectorWithAudio() (*Director, *recordingAudio) {
	audio := newRecordingAudio()
	return NewDirector(Config{
		Frame:  Size{W: 640, H: 480},
		Assets: fakeAssets{},
		Audio:  audio,
		Rand:   rand.New(rand.NewSource(1)),
	}), audio
}

func TestPresentWithoutTransition(t *testing.T) {
	d := newTestDirector()
	s := &fakeScene{}

	if err := d.Present(s, Transition{}); err != nil {
		t.Fatalf("Present failed: %v", err)
	}
	if d.Current() != s {
		t.Error("Expected scene to be current")
	}
	if s.world == nil || s.world.View() != d {
		t.Error("Expected world to be attached to the director")
	}

	d.Tick(0)
	d.Touch()
	if s.updates != 1 || s.touches != 1 {
		t.Errorf("Expected 1 update and 1 touch, got %d and %d", s.updates, s.touches)
	}
}

func TestPresentErrorKeepsCurrentScene(t *testing.T) {
	d := newTestDirector()
	first := &fakeScene{}
	if err := d.Present(first, Transition{}); err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	boom := errors.New("boom")
	err := d.Present(&fakeScene{err: boom}, MoveIn(DirectionRight, 1))
	if !errors.Is(err, boom) {
		t.Errorf("Expected wrapped boom, got %v", err)
	}
	if d.Current() != first || d.Transitioning() {
		t.Error("Expected failed present to leave the current scene untouched")
	}
}

func TestTransitionPausesScenesAndDropsTouches(t *testing.T) {
	d := newTestDirector()
	first := &fakeScene{}
	second := &fakeScene{}
	if err := d.Present(first, Transition{}); err != nil {
		t.Fatalf("Present failed: %v", err)
	}
	d.Tick(0)

	if err := d.Present(second, MoveIn(DirectionRight, 1)); err != nil {
		t.Fatalf("Present failed: %v", err)
	}
	if !d.Transitioning() {
		t.Fatal("Expected a running transition")
	}

	d.Tick(0.5)
	d.Touch()
	if first.updates != 1 || second.updates != 0 {
		t.Errorf("Expected both scenes paused, got %d and %d updates", first.updates, second.updates)
	}
	if first.touches != 0 || second.touches != 0 {
		t.Error("Expected touches during the transition to be dropped")
	}

	f := d.Frame()
	if f.Outgoing != first.world || f.World != second.world {
		t.Error("Expected frame to carry both worlds")
	}
	if off := f.Offset(); !near(off.X, 320) {
		t.Errorf("Expected incoming offset 320, got %f", off.X)
	}

	d.Tick(1.1)
	if d.Transitioning() {
		t.Fatal("Expected transition to finish")
	}
	d.Touch()
	if second.touches != 1 || second.updates != 1 {
		t.Errorf("Expected second scene to be live, got %d touches and %d updates", second.touches, second.updates)
	}
	if off := d.Frame().Offset(); off != (Vec{}) {
		t.Errorf("Expected no offset after the transition, got %+v", off)
	}
}

func TestImmediatePresentKeepsSharedMusicLooping(t *testing.T) {
	d, audio := newTestDirectorWithAudio()
	if err := d.Present(&fakeScene{music: true}, Transition{}); err != nil {
		t.Fatalf("Present failed: %v", err)
	}
	if err := d.Present(&fakeScene{music: true}, Transition{}); err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	if !audio.looping["music.mp3"] {
		t.Error("Expected the new scene's music to keep looping after the old world closed")
	}
}

func TestFinishedTransitionKeepsSharedMusicLooping(t *testing.T) {
	d, audio := newTestDirectorWithAudio()
	if err := d.Present(&fakeScene{music: true}, Transition{}); err != nil {
		t.Fatalf("Present failed: %v", err)
	}
	d.Tick(0)
	if err := d.Present(&fakeScene{music: true}, MoveIn(DirectionLeft, 1)); err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	d.Tick(1.5)
	if d.Transitioning() {
		t.Fatal("Expected transition to finish")
	}
	if !audio.looping["music.mp3"] {
		t.Error("Expected the incoming scene's music to keep looping")
	}

	d.Close()
	if audio.looping["music.mp3"] {
		t.Error("Expected Close to silence every world")
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		d    Direction
		want string
	}{
		{DirectionRight, "right"},
		{DirectionLeft, "left"},
		{DirectionUp, "up"},
		{DirectionDown, "down"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Expected %s, got %s", tt.want, got)
		}
	}
}
