package component

import "github.com/milk9111/skyhop/assets"

type AnimationMode int

const (
	// AnimationCycle advances a fractional frame index continuously and
	// wraps it modulo the frame count.
	AnimationCycle AnimationMode = iota
	// AnimationStep accumulates FPS*dt and advances exactly one frame each
	// time the accumulator reaches 1, then clears it.
	AnimationStep
)

type Animation struct {
	Frames  []*assets.Frame
	FPS     float64
	Mode    AnimationMode
	Phase   float64
	Frame   int
	Playing bool
}

var AnimationComponent = NewComponent[Animation]()

// Current returns the frame selected by the animation state.
func (a *Animation) Current() *assets.Frame {
	if a == nil || len(a.Frames) == 0 {
		return nil
	}
	return a.Frames[a.Frame%len(a.Frames)]
}
