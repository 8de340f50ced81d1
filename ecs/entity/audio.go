package entity

import (
	"fmt"

	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

// SoundSpec names a clip and its base volume.
type SoundSpec struct {
	Name   string
	Volume float64
}

// SoundFactory creates the player for a named clip.
type SoundFactory func(name string) (component.SoundPlayer, error)

func buildAudioComponent(specs []SoundSpec, factory SoundFactory) (*component.Audio, error) {
	n := len(specs)
	names := make([]string, 0, n)
	players := make([]component.SoundPlayer, 0, n)
	volume := make([]float64, 0, n)

	for i, clip := range specs {
		player, err := factory(clip.Name)
		if err != nil {
			return nil, fmt.Errorf("audio clip %d (%q): %w", i, clip.Name, err)
		}
		names = append(names, clip.Name)
		players = append(players, player)
		volume = append(volume, clip.Volume)
	}

	return &component.Audio{
		Names:   names,
		Players: players,
		Volume:  volume,
		Play:    make([]bool, n),
		Stop:    make([]bool, n),
	}, nil
}

// NewAudio builds the entity holding sound effects and, when music is
// non-nil, the looping track.
func NewAudio(w *ecs.World, specs []SoundSpec, factory SoundFactory, music component.SoundPlayer, musicVolume float64) (ecs.Entity, error) {
	audioComp, err := buildAudioComponent(specs, factory)
	if err != nil {
		return 0, fmt.Errorf("audio: %w", err)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.AudioComponent.Kind(), audioComp); err != nil {
		return 0, fmt.Errorf("audio: add audio: %w", err)
	}
	if music == nil {
		return e, nil
	}
	if err := ecs.Add(w, e, component.MusicPlayerComponent.Kind(), &component.MusicPlayer{
		Player:  music,
		Volume:  musicVolume,
		Playing: true,
	}); err != nil {
		return 0, fmt.Errorf("audio: add music: %w", err)
	}
	return e, nil
}
