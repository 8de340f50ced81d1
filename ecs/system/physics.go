package system

import (
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

// ApplyGravity advances one semi-implicit Euler step: velocity first, then
// position with the new velocity. Nothing is clamped.
func ApplyGravity(body *component.Body, t *component.Transform, dt float64) {
	if body == nil || t == nil {
		return
	}
	body.Velocity += body.Gravity * dt
	t.Y += body.Velocity * dt
}

type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (p *PhysicsSystem) Update(w *ecs.World) {
	dt := frameDT(w)
	if dt <= 0 {
		return
	}
	ecs.ForEach2(w, component.BodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, body *component.Body, t *component.Transform) {
		ApplyGravity(body, t, dt)
	})
}
