package system

import (
	"github.com/milk9111/skyhop/assets"
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

// Jump overrides the vertical velocity with the impulse, mirrored when
// gravity points up. Prior velocity is discarded.
func Jump(body *component.Body, impulse float64) {
	if body == nil {
		return
	}
	if body.Gravity < 0 {
		body.Velocity = -impulse
		return
	}
	body.Velocity = impulse
}

// FlipGravity points gravity up when flipped and down otherwise. Velocity is
// left untouched.
func FlipGravity(body *component.Body, base float64, flipped bool) {
	if body == nil {
		return
	}
	if flipped {
		body.Gravity = -base
		return
	}
	body.Gravity = base
}

// PlayerControlSystem turns a press into a jump while the run is active.
type PlayerControlSystem struct{}

func NewPlayerControlSystem() *PlayerControlSystem {
	return &PlayerControlSystem{}
}

func (p *PlayerControlSystem) Update(w *ecs.World) {
	if w == nil || !levelActive(w) {
		return
	}
	input, ok := ecs.Singleton(w, component.InputComponent.Kind())
	if !ok || !input.Pressed {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, player *component.Player, body *component.Body) {
		Jump(body, player.JumpImpulse)
		w.Events().Push(ecs.Event{Type: ecs.EventJump, Data: e})
	})
	RequestSound(w, assets.SoundJump)
}
