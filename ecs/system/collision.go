package system

import (
	"github.com/milk9111/skyhop/assets"
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
	"github.com/milk9111/skyhop/mask"
)

// CollisionSystem tests the avatar against every hazard and the fatal
// screen edges once per active frame. A hit clears the clearable hazards,
// removes the avatar and emits a single death event.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (c *CollisionSystem) Update(w *ecs.World) {
	if w == nil || !levelActive(w) {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}

	death, hit := Check(w, player)
	if !hit {
		return
	}

	for _, e := range w.Query(component.HazardComponent.Kind()) {
		if h, ok := ecs.Get(w, e, component.HazardComponent.Kind()); ok && h.Clearable {
			ecs.DestroyEntity(w, e)
		}
	}
	ecs.DestroyEntity(w, player)
	w.Events().Push(ecs.Event{Type: ecs.EventDeath, Data: death})
	RequestSound(w, assets.SoundHit)
}

// Check reports whether the player currently overlaps a hazard or a fatal
// edge. It does not mutate the world.
func Check(w *ecs.World, player ecs.Entity) (ecs.DeathEvent, bool) {
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return ecs.DeathEvent{}, false
	}
	pc, ok := ecs.Get(w, player, component.ColliderComponent.Kind())
	if !ok || pc.Mask == nil {
		return ecs.DeathEvent{}, false
	}
	px, py := pixel(t.X)+pc.OffsetX, pixel(t.Y)+pc.OffsetY

	for _, e := range w.Query(component.HazardComponent.Kind(), component.ColliderComponent.Kind(), component.TransformComponent.Kind()) {
		if e == player {
			continue
		}
		ht, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		hc, _ := ecs.Get(w, e, component.ColliderComponent.Kind())
		if hc.Mask == nil {
			continue
		}
		if mask.Overlap(pc.Mask, px, py, hc.Mask, pixel(ht.X)+hc.OffsetX, pixel(ht.Y)+hc.OffsetY) {
			return ecs.DeathEvent{Cause: ecs.DeathCollision, Other: e}, true
		}
	}

	bounds, ok := ecs.Singleton(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return ecs.DeathEvent{}, false
	}
	// Edges use the same tilted rectangle as the mask test.
	if bounds.CeilingFatal && py <= 0 {
		return ecs.DeathEvent{Cause: ecs.DeathCeiling}, true
	}
	if bounds.FloorFatal && float64(py+pc.Mask.Height()) >= bounds.Height {
		return ecs.DeathEvent{Cause: ecs.DeathFloor}, true
	}
	return ecs.DeathEvent{}, false
}
