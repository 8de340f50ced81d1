package system

import (
	"github.com/milk9111/skyhop/assets"
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

// GravityZoneSystem accumulates travelled distance and flips the avatar's
// gravity whenever the zone trigger fires. It also drives the warning icon
// blink.
type GravityZoneSystem struct{}

func NewGravityZoneSystem() *GravityZoneSystem {
	return &GravityZoneSystem{}
}

func (g *GravityZoneSystem) Update(w *ecs.World) {
	if w == nil || !levelActive(w) {
		return
	}
	zone, ok := ecs.Singleton(w, component.GravityZoneComponent.Kind())
	if !ok || zone.Trigger == nil {
		return
	}
	now := frameElapsed(w)

	if zone.Trigger.Advance(zone.TravelSpeed * frameDT(w)) {
		zone.Flipped = !zone.Flipped
		zone.IconVisible = true
		zone.LastBlink = now
		ecs.ForEach2(w, component.PlayerComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, player *component.Player, body *component.Body) {
			FlipGravity(body, player.BaseGravity, zone.Flipped)
		})
		w.Events().Push(ecs.Event{Type: ecs.EventFlip, Data: zone.Flipped})
		RequestSound(w, assets.SoundFlip)
		return
	}

	if zone.Trigger.InWarning() && zone.BlinkPeriod > 0 && now-zone.LastBlink >= zone.BlinkPeriod {
		zone.IconVisible = !zone.IconVisible
		zone.LastBlink = now
	}
}

// ResetGravityZone returns the zone to unflipped with a fresh threshold.
func ResetGravityZone(zone *component.GravityZone, now float64) {
	if zone == nil {
		return
	}
	zone.Flipped = false
	zone.IconVisible = true
	zone.LastBlink = now
	zone.Trigger.Reset()
}
