package system

import (
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
	"github.com/milk9111/skyhop/settings"
)

// MusicSystem keeps the looping track in its requested state and applies
// the live music volume every frame.
type MusicSystem struct {
	settings *settings.Settings
}

func NewMusicSystem(s *settings.Settings) *MusicSystem {
	return &MusicSystem{settings: s}
}

func (m *MusicSystem) Update(w *ecs.World) {
	gain := m.settings.Music()
	ecs.ForEach(w, component.MusicPlayerComponent.Kind(), func(_ ecs.Entity, music *component.MusicPlayer) {
		if music.Player == nil {
			return
		}
		music.Player.SetVolume(music.Volume * gain)
		switch {
		case music.Playing && !music.Player.IsPlaying():
			music.Player.Play()
		case !music.Playing && music.Player.IsPlaying():
			music.Player.Pause()
		}
	})
}

// StopMusic pauses every music player in the world immediately.
func StopMusic(w *ecs.World) {
	ecs.ForEach(w, component.MusicPlayerComponent.Kind(), func(_ ecs.Entity, music *component.MusicPlayer) {
		music.Playing = false
		if music.Player != nil && music.Player.IsPlaying() {
			music.Player.Pause()
		}
	})
}
