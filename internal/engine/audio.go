package engine

// Audio plays named sounds. Implementations must not block the caller.
type Audio interface {
	// Play starts a one-shot sound.
	Play(name string)
	// Loop starts a sound that repeats until stopped.
	Loop(name string)
	// Stop silences a looping sound.
	Stop(name string)
}

// SilentAudio discards every request.
type SilentAudio struct{}

func (SilentAudio) Play(string) {}
func (SilentAudio) Loop(string) {}
func (SilentAudio) Stop(string) {}
