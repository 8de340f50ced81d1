package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/skyhop/assets"
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

var debugMaskColor = color.NRGBA{R: 255, G: 0, B: 255, A: 200}

type RenderSystem struct {
	// Debug outlines every collider's opaque bounds.
	Debug bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw renders sprites in layer order, then the screen flash.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	shakeX, shakeY := 0.0, 0.0
	if shake, ok := ecs.Singleton(w, component.ScreenShakeComponent.Kind()); ok && shake.Active {
		shakeX, shakeY = shake.OffsetX, shake.OffsetY
	}

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	screenW := float64(screen.Bounds().Dx())
	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if s.Frame == nil || s.Hidden {
			continue
		}

		if layer, ok := ecs.Get(w, e, component.ScrollLayerComponent.Kind()); ok && layer.Width > 0 {
			for x := t.X; x < screenW; x += layer.Width {
				drawFrame(screen, s.Frame, x+shakeX, t.Y+shakeY, 0, s.Alpha)
			}
			continue
		}

		if trail, ok := ecs.Get(w, e, component.TrailComponent.Kind()); ok {
			for i, p := range trail.Points {
				drawFrame(screen, s.Frame, p[0]+shakeX, p[1]+shakeY, t.Rotation, trail.Alpha(i)*s.Alpha)
			}
		}
		drawFrame(screen, s.Frame, t.X+shakeX, t.Y+shakeY, t.Rotation, s.Alpha)
	}

	if r.Debug {
		r.drawColliders(w, screen)
	}

	if flash, ok := ecs.Singleton(w, component.ScreenFlashComponent.Kind()); ok && flash.Active {
		b := screen.Bounds()
		vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), flash.Color, false)
	}
}

// drawFrame draws f with its top-left at (x, y), rotated about its center.
func drawFrame(screen *ebiten.Image, f *assets.Frame, x, y, rotation, alpha float64) {
	if alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if rotation != 0 {
		hw, hh := float64(f.Width())/2, float64(f.Height())/2
		op.GeoM.Translate(-hw, -hh)
		op.GeoM.Rotate(rotation)
		op.GeoM.Translate(hw, hh)
	}
	op.GeoM.Translate(x, y)
	if alpha < 1 {
		op.ColorScale.ScaleAlpha(float32(alpha))
	}
	screen.DrawImage(f.Image(), op)
}

func (r *RenderSystem) drawColliders(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, c *component.Collider, t *component.Transform) {
		if c.Mask == nil {
			return
		}
		b := c.Mask.Bounds()
		if b.Empty() {
			return
		}
		x := float32(pixel(t.X) + c.OffsetX + b.Min.X)
		y := float32(pixel(t.Y) + c.OffsetY + b.Min.Y)
		vector.StrokeRect(screen, x, y, float32(b.Dx()), float32(b.Dy()), 1, debugMaskColor, false)
	})
}
