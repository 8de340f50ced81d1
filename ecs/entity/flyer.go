package entity

import (
	"fmt"

	"github.com/milk9111/skyhop/assets"
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

// FlyerParams configures a decorative flyer.
type FlyerParams struct {
	Speed       float64
	FPS         float64
	TrailLength int
	TrailAlpha  int
	// Lethal flyers are hazards; others are scenery.
	Lethal bool
}

// NewFlyer places a flyer with its left edge at x and vertical center at y.
func NewFlyer(w *ecs.World, frames []*assets.Frame, x, y float64, p FlyerParams) (ecs.Entity, error) {
	if len(frames) == 0 {
		return 0, fmt.Errorf("flyer: no frames")
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.FlyerTagComponent.Kind(), &component.FlyerTag{}); err != nil {
		return 0, fmt.Errorf("flyer: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.FlyerComponent.Kind(), &component.Flyer{Speed: p.Speed}); err != nil {
		return 0, fmt.Errorf("flyer: add flyer: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X: x,
		Y: y - float64(frames[0].Height())/2,
	}); err != nil {
		return 0, fmt.Errorf("flyer: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Frame: frames[0], Alpha: 1}); err != nil {
		return 0, fmt.Errorf("flyer: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Frames:  frames,
		FPS:     p.FPS,
		Mode:    component.AnimationStep,
		Playing: true,
	}); err != nil {
		return 0, fmt.Errorf("flyer: add animation: %w", err)
	}
	if p.Lethal {
		if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{Clearable: true}); err != nil {
			return 0, fmt.Errorf("flyer: add hazard: %w", err)
		}
		if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Mask: frames[0].Mask}); err != nil {
			return 0, fmt.Errorf("flyer: add collider: %w", err)
		}
	}
	if p.TrailLength > 0 {
		if err := ecs.Add(w, e, component.TrailComponent.Kind(), &component.Trail{
			Max:      p.TrailLength,
			MaxAlpha: p.TrailAlpha,
		}); err != nil {
			return 0, fmt.Errorf("flyer: add trail: %w", err)
		}
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerFlyer}); err != nil {
		return 0, fmt.Errorf("flyer: add render layer: %w", err)
	}
	return e, nil
}
