package audio

import (
	"math"
	"sync"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	// bytesPerFrame is one stereo float32 frame.
	bytesPerFrame = 8
)

// library maps asset names to their synthesised clips.
var library = map[string]func() []byte{
	"coin.wav":      genCoin,
	"explosion.wav": genExplosion,
	"music.mp3":     genMusic,
}

var (
	clipMu    sync.Mutex
	clipCache = map[string][]byte{}
)

// Clip returns the PCM data (stereo float32 LE) of a named sound.
func Clip(name string) ([]byte, bool) {
	clipMu.Lock()
	defer clipMu.Unlock()

	if data, ok := clipCache[name]; ok {
		return data, true
	}
	gen, ok := library[name]
	if !ok {
		return nil, false
	}
	data := gen()
	clipCache[name] = data
	return data, true
}

func makeBuf(frames int) []byte {
	return make([]byte, frames*bytesPerFrame)
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(clamp(sample, -1, 1)))
	for ch := 0; ch < ChannelCount; ch++ {
		off := i*bytesPerFrame + ch*4
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func square(phase float64) float64 {
	if math.Mod(phase, 1) < 0.5 {
		return 1
	}
	return -1
}

func triangle(phase float64) float64 {
	p := math.Mod(phase, 1)
	return 4*math.Abs(p-0.5) - 1
}

// lcg is a tiny deterministic noise source.
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(*seed>>33)/float64(1<<31)*2 - 1
}

// genCoin is a two-step square blip.
func genCoin() []byte {
	dur := 0.18
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		freq := 988.0
		if t > 0.06 {
			freq = 1319.0
		}
		phase += freq / SampleRate
		env := math.Exp(-t * 14)
		putStereoF32(buf, i, 0.25*square(phase)*env)
	}
	return buf
}

// genExplosion is filtered noise with a falling rumble underneath.
func genExplosion() []byte {
	dur := 0.9
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	seed := uint64(7)
	low := 0.0
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		low += (lcg(&seed) - low) * 0.08
		phase += (90 - 60*t/dur) / SampleRate
		env := math.Exp(-t * 4.5)
		putStereoF32(buf, i, (0.8*low+0.35*math.Sin(2*math.Pi*phase))*env)
	}
	return buf
}

// genMusic is a short arpeggio loop over four chords.
func genMusic() []byte {
	chords := [][]float64{
		{261.63, 329.63, 392.00},
		{220.00, 261.63, 329.63},
		{174.61, 220.00, 261.63},
		{196.00, 246.94, 293.66},
	}
	const noteLen = 0.18
	const notesPerChord = 12

	n := int(noteLen * notesPerChord * float64(len(chords)) * SampleRate)
	buf := makeBuf(n)
	phase, bass := 0.0, 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		note := int(t / noteLen)
		chord := chords[(note/notesPerChord)%len(chords)]
		freq := chord[note%len(chord)] * 2
		phase += freq / SampleRate
		bass += chord[0] / 2 / SampleRate

		inNote := math.Mod(t, noteLen) / noteLen
		env := math.Exp(-inNote * 5)
		sample := 0.12*triangle(phase)*env + 0.08*triangle(bass)
		putStereoF32(buf, i, sample)
	}
	return buf
}
