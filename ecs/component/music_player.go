package component

// MusicPlayer stores the looping background track on a dedicated entity.
type MusicPlayer struct {
	Player SoundPlayer
	Volume float64
	// Playing is the requested state; the music system reconciles the
	// player against it every frame.
	Playing bool
}

var MusicPlayerComponent = NewComponent[MusicPlayer]()
