package entity

import (
	"fmt"

	"github.com/milk9111/skyhop/assets"
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

// PlayerParams configures a freshly spawned avatar.
type PlayerParams struct {
	JumpImpulse float64
	Gravity     float64
	TiltFactor  float64
	AnimFPS     float64
	// SpawnX, SpawnY is the left edge and vertical center of the avatar.
	SpawnX float64
	SpawnY float64
}

// NewPlayer spawns the avatar at its defaults: resting, gravity pulling
// down, midleft at the spawn point.
func NewPlayer(w *ecs.World, frames []*assets.Frame, p PlayerParams) (ecs.Entity, error) {
	if len(frames) == 0 {
		return 0, fmt.Errorf("player: no frames")
	}
	top := p.SpawnY - float64(frames[0].Height())/2

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		JumpImpulse: p.JumpImpulse,
		BaseGravity: p.Gravity,
		TiltFactor:  p.TiltFactor,
		SpawnX:      p.SpawnX,
		SpawnY:      top,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: p.SpawnX, Y: top}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Gravity: p.Gravity}); err != nil {
		return 0, fmt.Errorf("player: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Frame: frames[0], Alpha: 1}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Frames:  frames,
		FPS:     p.AnimFPS,
		Mode:    component.AnimationCycle,
		Playing: true,
	}); err != nil {
		return 0, fmt.Errorf("player: add animation: %w", err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Mask: frames[0].Mask}); err != nil {
		return 0, fmt.Errorf("player: add collider: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerPlayer}); err != nil {
		return 0, fmt.Errorf("player: add render layer: %w", err)
	}
	return e, nil
}
