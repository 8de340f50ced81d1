package system

import (
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
	"github.com/milk9111/skyhop/settings"
)

// AudioSystem plays requested effects scaled by the live SFX volume.
type AudioSystem struct {
	settings *settings.Settings
}

func NewAudioSystem(s *settings.Settings) *AudioSystem {
	return &AudioSystem{settings: s}
}

func (a *AudioSystem) Update(w *ecs.World) {
	gain := a.settings.SFX()
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		count := min(len(audioComp.Play), len(audioComp.Players), len(audioComp.Volume))

		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}

			player := audioComp.Players[i]
			if player != nil {
				player.SetVolume(audioComp.Volume[i] * gain)
				_ = player.Rewind()
				player.Play()
			}

			audioComp.Play[i] = false
		}

		for i := 0; i < min(count, len(audioComp.Stop)); i++ {
			if !audioComp.Stop[i] {
				continue
			}

			player := audioComp.Players[i]
			if player != nil && player.IsPlaying() {
				player.Pause()
			}

			audioComp.Stop[i] = false
		}
	})
}
