package system

import (
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

// FlyerSystem records trails, moves flyers left and culls them once fully
// past the left edge.
type FlyerSystem struct{}

func NewFlyerSystem() *FlyerSystem {
	return &FlyerSystem{}
}

func (f *FlyerSystem) Update(w *ecs.World) {
	dt := frameDT(w)
	ecs.ForEach3(w, component.FlyerComponent.Kind(), component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, flyer *component.Flyer, t *component.Transform, sprite *component.Sprite) {
		if trail, ok := ecs.Get(w, e, component.TrailComponent.Kind()); ok && trail.Max > 0 {
			trail.Points = append(trail.Points, [2]float64{t.X, t.Y})
			if over := len(trail.Points) - trail.Max; over > 0 {
				trail.Points = trail.Points[over:]
			}
		}

		t.X -= flyer.Speed * dt
		if t.X+sprite.Width() < 0 {
			ecs.DestroyEntity(w, e)
		}
	})
}
