package entity

import (
	"fmt"

	"github.com/milk9111/skyhop/assets"
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

// NewObstacle places a column with its top-left corner at (x, y).
func NewObstacle(w *ecs.World, frame *assets.Frame, x, y, speed, cullMargin float64) (ecs.Entity, error) {
	if frame == nil {
		return 0, fmt.Errorf("obstacle: nil frame")
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ObstacleTagComponent.Kind(), &component.ObstacleTag{}); err != nil {
		return 0, fmt.Errorf("obstacle: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.ObstacleComponent.Kind(), &component.Obstacle{Speed: speed, CullMargin: cullMargin}); err != nil {
		return 0, fmt.Errorf("obstacle: add obstacle: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("obstacle: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Frame: frame, Alpha: 1}); err != nil {
		return 0, fmt.Errorf("obstacle: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{Clearable: true}); err != nil {
		return 0, fmt.Errorf("obstacle: add hazard: %w", err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Mask: frame.Mask}); err != nil {
		return 0, fmt.Errorf("obstacle: add collider: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerObstacle}); err != nil {
		return 0, fmt.Errorf("obstacle: add render layer: %w", err)
	}
	return e, nil
}

// NewMovingObstacle places a column that bobs vertically around y.
func NewMovingObstacle(w *ecs.World, frame *assets.Frame, x, y, speed, cullMargin, amplitude, angularSpeed float64) (ecs.Entity, error) {
	e, err := NewObstacle(w, frame, x, y, speed, cullMargin)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.OscillatorComponent.Kind(), &component.Oscillator{
		BaseY:        y,
		Amplitude:    amplitude,
		AngularSpeed: angularSpeed,
	}); err != nil {
		return 0, fmt.Errorf("obstacle: add oscillator: %w", err)
	}
	return e, nil
}
