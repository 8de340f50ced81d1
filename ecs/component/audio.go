package component

// SoundPlayer is the subset of *audio.Player the audio systems drive.
type SoundPlayer interface {
	IsPlaying() bool
	Rewind() error
	Play()
	Pause()
	SetVolume(volume float64)
}

// Audio holds one-shot sound effects. Systems set Play[i] to request a
// sound; the audio system plays it once and clears the flag.
type Audio struct {
	Names   []string
	Players []SoundPlayer
	Volume  []float64
	Play    []bool
	Stop    []bool
}

var AudioComponent = NewComponent[Audio]()

// Request flags the named sound for playback this frame.
func (a *Audio) Request(name string) bool {
	if a == nil {
		return false
	}
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			a.Play[i] = true
			return true
		}
	}
	return false
}
