package entity

import (
	"fmt"

	"github.com/milk9111/skyhop/assets"
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

// NewBackground builds the parallax sky layer. More than one frame makes it
// animate at fps.
func NewBackground(w *ecs.World, frames []*assets.Frame, fps, speed float64) (ecs.Entity, error) {
	if len(frames) == 0 {
		return 0, fmt.Errorf("background: no frames")
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.BackgroundTagComponent.Kind(), &component.BackgroundTag{}); err != nil {
		return 0, fmt.Errorf("background: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return 0, fmt.Errorf("background: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Frame: frames[0], Alpha: 1}); err != nil {
		return 0, fmt.Errorf("background: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.ScrollLayerComponent.Kind(), &component.ScrollLayer{
		Speed: speed,
		Width: float64(frames[0].Width()),
	}); err != nil {
		return 0, fmt.Errorf("background: add scroll layer: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerBackground}); err != nil {
		return 0, fmt.Errorf("background: add render layer: %w", err)
	}
	if len(frames) > 1 {
		if err := ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
			Frames:  frames,
			FPS:     fps,
			Mode:    component.AnimationCycle,
			Playing: true,
		}); err != nil {
			return 0, fmt.Errorf("background: add animation: %w", err)
		}
	}
	return e, nil
}
