package system

import (
	"math"

	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

// Scroll moves a repeating layer left and wraps its offset into [-Width, 0].
func Scroll(layer *component.ScrollLayer, dt float64) {
	if layer == nil || layer.Width <= 0 {
		return
	}
	layer.Offset = math.Mod(layer.Offset-layer.Speed*dt, layer.Width)
	if layer.Offset > 0 {
		layer.Offset -= layer.Width
	}
}

type ScrollSystem struct{}

func NewScrollSystem() *ScrollSystem {
	return &ScrollSystem{}
}

func (s *ScrollSystem) Update(w *ecs.World) {
	dt := frameDT(w)
	ecs.ForEach2(w, component.ScrollLayerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, layer *component.ScrollLayer, t *component.Transform) {
		Scroll(layer, dt)
		t.X = layer.Offset
	})
}
