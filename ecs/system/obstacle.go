package system

import (
	"math"

	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

// ObstacleSystem scrolls obstacle columns, bobs moving ones and culls those
// that left the screen.
type ObstacleSystem struct{}

func NewObstacleSystem() *ObstacleSystem {
	return &ObstacleSystem{}
}

func (o *ObstacleSystem) Update(w *ecs.World) {
	dt := frameDT(w)
	ecs.ForEach3(w, component.ObstacleComponent.Kind(), component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, obs *component.Obstacle, t *component.Transform, sprite *component.Sprite) {
		t.X -= obs.Speed * dt
		if osc, ok := ecs.Get(w, e, component.OscillatorComponent.Kind()); ok {
			osc.Time += dt
			t.Y = osc.BaseY + osc.Amplitude*math.Sin(osc.AngularSpeed*osc.Time)
		}
		if float64(pixel(t.X))+sprite.Width() <= -obs.CullMargin {
			ecs.DestroyEntity(w, e)
		}
	})
}
