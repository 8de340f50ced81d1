package system

import (
	"math"

	"github.com/milk9111/skyhop/common"
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

// Advance moves the animation forward by dt.
func Advance(anim *component.Animation, dt float64) {
	if anim == nil || len(anim.Frames) == 0 || !anim.Playing {
		return
	}
	n := len(anim.Frames)
	switch anim.Mode {
	case component.AnimationStep:
		anim.Phase += anim.FPS * dt
		if anim.Phase >= 1 {
			anim.Phase = 0
			anim.Frame = (anim.Frame + 1) % n
		}
	default:
		anim.Phase = math.Mod(anim.Phase+anim.FPS*dt, float64(n))
		if anim.Phase < 0 {
			anim.Phase += float64(n)
		}
		anim.Frame = int(anim.Phase) % n
	}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	dt := frameDT(w)
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		Advance(anim, dt)
		frame := anim.Current()
		if frame == nil {
			return
		}
		sprite.Frame = frame
		if collider, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
			collider.Mask = frame.Mask
			collider.OffsetX, collider.OffsetY = 0, 0
		}
	})

	// The avatar noses up or down with its velocity and the collider follows
	// the rotated silhouette.
	ecs.ForEach4(w, component.PlayerComponent.Kind(), component.BodyComponent.Kind(), component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, player *component.Player, body *component.Body, t *component.Transform, sprite *component.Sprite) {
		t.Rotation = common.DegToRad(body.Velocity * player.TiltFactor)
		if sprite.Frame == nil {
			return
		}
		collider, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
		if !ok {
			return
		}
		collider.Mask, collider.OffsetX, collider.OffsetY = sprite.Frame.Rotated(t.Rotation)
	})
}
