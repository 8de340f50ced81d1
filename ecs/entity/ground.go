package entity

import (
	"fmt"

	"github.com/milk9111/skyhop/assets"
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

// NewGround builds the scrolling ground strip along the bottom edge. A solid
// ground is a permanent hazard whose collider spans both drawn tiles.
func NewGround(w *ecs.World, frame *assets.Frame, speed, viewportHeight float64, solid bool) (ecs.Entity, error) {
	if frame == nil {
		return 0, fmt.Errorf("ground: nil frame")
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GroundTagComponent.Kind(), &component.GroundTag{}); err != nil {
		return 0, fmt.Errorf("ground: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Y: viewportHeight - float64(frame.Height()),
	}); err != nil {
		return 0, fmt.Errorf("ground: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Frame: frame, Alpha: 1}); err != nil {
		return 0, fmt.Errorf("ground: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.ScrollLayerComponent.Kind(), &component.ScrollLayer{
		Speed: speed,
		Width: float64(frame.Width()),
	}); err != nil {
		return 0, fmt.Errorf("ground: add scroll layer: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerGround}); err != nil {
		return 0, fmt.Errorf("ground: add render layer: %w", err)
	}
	if !solid {
		return e, nil
	}
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{}); err != nil {
		return 0, fmt.Errorf("ground: add hazard: %w", err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Mask: frame.Mask.Repeat(2)}); err != nil {
		return 0, fmt.Errorf("ground: add collider: %w", err)
	}
	return e, nil
}
