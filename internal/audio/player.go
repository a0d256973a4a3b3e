package audio

import (
	"io"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/shvbsle/crashyplane/internal/log"
)

// Player plays named sounds through the system audio device.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64

	mu    sync.Mutex
	loops map[string]oto.Player
}

// New opens the audio device. The context becomes usable asynchronously;
// sounds requested before then are dropped, loops start once it is ready.
func New(volume float64) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &Player{
		ctx:    ctx,
		ready:  ready,
		volume: clamp(volume, 0, 1),
		loops:  make(map[string]oto.Player),
	}, nil
}

func (p *Player) isReady() bool {
	select {
	case <-p.ready:
		return true
	default:
		return false
	}
}

func (p *Player) Play(name string) {
	if !p.isReady() {
		return
	}
	data, ok := Clip(name)
	if !ok {
		log.G().Warn("unknown sound", "sound", name)
		return
	}
	go func() {
		player := p.ctx.NewPlayer(&clipReader{data: data})
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			log.G().Debug("could not close sound player", "sound", name, "error", err)
		}
	}()
}

func (p *Player) Loop(name string) {
	data, ok := Clip(name)
	if !ok {
		log.G().Warn("unknown sound", "sound", name)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, playing := p.loops[name]; playing {
		return
	}
	player := p.ctx.NewPlayer(&clipReader{data: data, loop: true})
	player.SetVolume(p.volume * 0.6)
	p.loops[name] = player

	go func() {
		<-p.ready
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.loops[name] == player {
			player.Play()
		}
	}()
}

func (p *Player) Stop(name string) {
	p.mu.Lock()
	player, ok := p.loops[name]
	delete(p.loops, name)
	p.mu.Unlock()

	if !ok {
		return
	}
	player.Pause()
	if err := player.Close(); err != nil {
		log.G().Debug("could not close loop player", "sound", name, "error", err)
	}
}

// Close stops every loop.
func (p *Player) Close() {
	p.mu.Lock()
	names := make([]string, 0, len(p.loops))
	for name := range p.loops {
		names = append(names, name)
	}
	p.mu.Unlock()

	for _, name := range names {
		p.Stop(name)
	}
}

type clipReader struct {
	data []byte
	pos  int
	loop bool
}

func (r *clipReader) Read(b []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := 0
	for n < len(b) {
		if r.pos >= len(r.data) {
			if !r.loop {
				break
			}
			r.pos = 0
		}
		c := copy(b[n:], r.data[r.pos:])
		r.pos += c
		n += c
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}
