package system

import (
	"math"

	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

func frameDT(w *ecs.World) float64 {
	clock, ok := ecs.Singleton(w, component.ClockComponent.Kind())
	if !ok {
		return 0
	}
	return clock.DT
}

func frameElapsed(w *ecs.World) float64 {
	clock, ok := ecs.Singleton(w, component.ClockComponent.Kind())
	if !ok {
		return 0
	}
	return clock.Elapsed
}

func levelActive(w *ecs.World) bool {
	state, ok := ecs.Singleton(w, component.LevelStateComponent.Kind())
	return ok && state.Active
}

// RequestSound flags a named clip on every audio entity.
func RequestSound(w *ecs.World, name string) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, a *component.Audio) {
		a.Request(name)
	})
}

// pixel snaps a float position to the integer grid used for masks.
func pixel(v float64) int {
	return int(math.Floor(v))
}
