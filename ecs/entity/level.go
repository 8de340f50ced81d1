package entity

import (
	"fmt"

	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

// ControllerParams seeds the level-wide singletons.
type ControllerParams struct {
	Bounds  component.LevelBounds
	Spawner *component.Spawner
	// Zone is nil in levels without gravity flips.
	Zone  *component.GravityZone
	Flash *component.ScreenFlash
	Shake *component.ScreenShake
}

// NewLevelController builds the entity holding the clock, run state, input,
// bounds, spawner and optional effect state.
func NewLevelController(w *ecs.World, p ControllerParams) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ClockComponent.Kind(), &component.Clock{}); err != nil {
		return 0, fmt.Errorf("level: add clock: %w", err)
	}
	if err := ecs.Add(w, e, component.LevelStateComponent.Kind(), &component.LevelState{Active: true}); err != nil {
		return 0, fmt.Errorf("level: add state: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("level: add input: %w", err)
	}
	bounds := p.Bounds
	if err := ecs.Add(w, e, component.LevelBoundsComponent.Kind(), &bounds); err != nil {
		return 0, fmt.Errorf("level: add bounds: %w", err)
	}
	if p.Spawner != nil {
		if err := ecs.Add(w, e, component.SpawnerComponent.Kind(), p.Spawner); err != nil {
			return 0, fmt.Errorf("level: add spawner: %w", err)
		}
	}
	if p.Zone != nil {
		if err := ecs.Add(w, e, component.GravityZoneComponent.Kind(), p.Zone); err != nil {
			return 0, fmt.Errorf("level: add gravity zone: %w", err)
		}
	}
	if p.Flash != nil {
		if err := ecs.Add(w, e, component.ScreenFlashComponent.Kind(), p.Flash); err != nil {
			return 0, fmt.Errorf("level: add screen flash: %w", err)
		}
	}
	if p.Shake != nil {
		if err := ecs.Add(w, e, component.ScreenShakeComponent.Kind(), p.Shake); err != nil {
			return 0, fmt.Errorf("level: add screen shake: %w", err)
		}
	}
	return e, nil
}
