package engine

import (
	"fmt"
	"math"
	"math/rand"
)

type fakeAssets struct{}

func (fakeAssets) Texture(name string) (Texture, error) {
	switch name {
	case "box":
		return Texture{Name: "box", Size: Size{W: 16, H: 16}, Art: []string{"##"}}, nil
	case "frame-a", "frame-b":
		return Texture{Name: name, Size: Size{W: 8, H: 16}, Art: []string{"a"}}, nil
	}
	return Texture{}, fmt.Errorf("%w: %q", ErrUnknownTexture, name)
}

func (fakeAssets) Emitter(name string) (EmitterTemplate, error) {
	if name == "burst" {
		return EmitterTemplate{Name: name, Count: 5, Lifetime: 0.5, Speed: 10, Glyphs: []rune{'*'}}, nil
	}
	return EmitterTemplate{}, fmt.Errorf("%w: %q", ErrUnknownEmitter, name)
}

type recordingAudio struct {
	played  []string
	looping map[string]bool
}

func newRecordingAudio() *recordingAudio {
	return &recordingAudio{looping: make(map[string]bool)}
}

func (a *recordingAudio) Play(name string) { a.played = append(a.played, name) }
func (a *recordingAudio) Loop(name string) { a.looping[name] = true }
func (a *recordingAudio) Stop(name string) { delete(a.looping, name) }

type recordingDelegate struct {
	contacts []Contact
	events   []Event
}

func (d *recordingDelegate) OnContact(c Contact)        { d.contacts = append(d.contacts, c) }
func (d *recordingDelegate) OnEvent(h Handle, ev Event) { d.events = append(d.events, ev) }

func newTestWorld() (*World, *recordingAudio) {
	audio := newRecordingAudio()
	w := NewWorld(Config{
		Frame:  Size{W: 640, H: 480},
		Assets: fakeAssets{},
		Audio:  audio,
		Rand:   rand.New(rand.NewSource(1)),
	})
	w.Step(0)
	return w, audio
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
