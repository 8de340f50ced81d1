package system

import (
	"github.com/milk9111/skyhop/common"
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

// ClockSystem pulls one delta from the time source into the Clock singleton.
type ClockSystem struct {
	source common.TimeSource
}

func NewClockSystem(source common.TimeSource) *ClockSystem {
	return &ClockSystem{source: source}
}

func (c *ClockSystem) Update(w *ecs.World) {
	if c == nil || c.source == nil {
		return
	}
	dt := c.source.Tick()
	ecs.ForEach(w, component.ClockComponent.Kind(), func(_ ecs.Entity, clock *component.Clock) {
		clock.DT = dt
		clock.Elapsed += dt
		clock.Frame++
	})
}
