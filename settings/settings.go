// Package settings holds the volume levels shared between the options
// screen and running levels. Values live only for the session.
package settings

import "github.com/milk9111/skyhop/common"

type Settings struct {
	MusicVolume float64
	SFXVolume   float64
}

func New(music, sfx float64) *Settings {
	s := &Settings{}
	s.SetMusic(music)
	s.SetSFX(sfx)
	return s
}

// SetMusic stores v clamped to [0, 1].
func (s *Settings) SetMusic(v float64) {
	s.MusicVolume = common.Clamp(v, 0, 1)
}

// SetSFX stores v clamped to [0, 1].
func (s *Settings) SetSFX(v float64) {
	s.SFXVolume = common.Clamp(v, 0, 1)
}

// Music returns the music gain, or full volume for a nil receiver.
func (s *Settings) Music() float64 {
	if s == nil {
		return 1
	}
	return s.MusicVolume
}

// SFX returns the effects gain, or full volume for a nil receiver.
func (s *Settings) SFX() float64 {
	if s == nil {
		return 1
	}
	return s.SFXVolume
}
