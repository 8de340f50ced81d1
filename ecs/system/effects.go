package system

import (
	"math"

	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

// EffectsSystem expires the screen flash and computes the shake offset from
// the level clock.
type EffectsSystem struct{}

func NewEffectsSystem() *EffectsSystem { return &EffectsSystem{} }

func (s *EffectsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := frameElapsed(w)

	ecs.ForEach(w, component.ScreenFlashComponent.Kind(), func(_ ecs.Entity, flash *component.ScreenFlash) {
		if flash.Active && now-flash.Start >= flash.Duration {
			flash.Active = false
		}
	})
	ecs.ForEach(w, component.ScreenShakeComponent.Kind(), func(_ ecs.Entity, shake *component.ScreenShake) {
		if !shake.Active {
			return
		}
		if now-shake.Start >= shake.Duration {
			shake.Active = false
			shake.OffsetX, shake.OffsetY = 0, 0
			return
		}
		off := ShakeOffset(shake.Magnitude, now)
		shake.OffsetX, shake.OffsetY = off, off
	})
}

// ShakeOffset is the saw-tooth jitter used while a shake is running.
func ShakeOffset(magnitude, now float64) float64 {
	return math.Trunc(2 * magnitude * (0.5 - math.Mod(now, 0.1)))
}

// StartEffects arms every flash and shake at now.
func StartEffects(w *ecs.World, now float64) {
	ecs.ForEach(w, component.ScreenFlashComponent.Kind(), func(_ ecs.Entity, flash *component.ScreenFlash) {
		flash.Start = now
		flash.Active = true
	})
	ecs.ForEach(w, component.ScreenShakeComponent.Kind(), func(_ ecs.Entity, shake *component.ScreenShake) {
		shake.Start = now
		shake.Active = true
	})
}
