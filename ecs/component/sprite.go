package component

import "github.com/milk9111/skyhop/assets"

type Sprite struct {
	Frame *assets.Frame
	Alpha float64
	// Hidden sprites keep their collider but are skipped by rendering.
	Hidden bool
}

var SpriteComponent = NewComponent[Sprite]()

// Width returns the frame width or 0 when no frame is set.
func (s *Sprite) Width() float64 {
	if s == nil || s.Frame == nil {
		return 0
	}
	return float64(s.Frame.Width())
}

func (s *Sprite) Height() float64 {
	if s == nil || s.Frame == nil {
		return 0
	}
	return float64(s.Frame.Height())
}
