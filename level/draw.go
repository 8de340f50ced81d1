package level

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/skyhop/assets"
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	panelWidth   = 320
	panelHeight  = 400
	buttonWidth  = 200
	buttonHeight = 50
	// The main-menu button sits this far below the screen center.
	buttonOffsetY = 160
	iconDrawSize  = 80
)

var (
	panelColor  = color.NRGBA{A: 190}
	buttonColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
)

// menuButton is the clickable MAIN MENU rectangle shown while Over.
func (l *Level) menuButton() image.Rectangle {
	cx := int(l.cfg.Width / 2)
	cy := int(l.cfg.Height/2) + buttonOffsetY
	return image.Rect(cx-buttonWidth/2, cy-buttonHeight/2, cx+buttonWidth/2, cy+buttonHeight/2)
}

// Draw renders the world and the level overlay.
func (l *Level) Draw(screen *ebiten.Image) {
	l.render.Draw(l.world, screen)
	l.drawGravityIcon(screen)

	w, h := l.cfg.Width, l.cfg.Height
	if l.state.Current() == StateActive {
		drawText(screen, strconv.Itoa(l.Score()), w/2, h/10, 4, colornames.White)
		return
	}

	px, py := float32(w/2-panelWidth/2), float32(h/2-panelHeight/2)
	vector.DrawFilledRect(screen, px, py, panelWidth, panelHeight, panelColor, false)
	drawText(screen, "GAME OVER", w/2, h/2-140, 3, colornames.White)
	drawText(screen, "TAP TO RETRY", w/2, h/2, 2, colornames.Lightgray)

	btn := l.menuButton()
	vector.DrawFilledRect(screen, float32(btn.Min.X), float32(btn.Min.Y), float32(btn.Dx()), float32(btn.Dy()), buttonColor, false)
	vector.StrokeRect(screen, float32(btn.Min.X), float32(btn.Min.Y), float32(btn.Dx()), float32(btn.Dy()), 2, colornames.White, false)
	drawText(screen, "MAIN MENU", w/2, float64(btn.Min.Y+btn.Dy()/2), 2, colornames.White)

	drawText(screen, "SCORE "+strconv.Itoa(l.Score()), w/2, float64(py)+panelHeight+40, 3, colornames.White)
}

// drawGravityIcon shows the upcoming direction blinking while a flip is
// near, and the current direction steadily while flipped.
func (l *Level) drawGravityIcon(screen *ebiten.Image) {
	zone, ok := ecs.Get(l.world, l.controller, component.GravityZoneComponent.Kind())
	if !ok || l.state.Current() != StateActive {
		return
	}

	var frame *assets.Frame
	switch {
	case zone.Trigger.InWarning():
		if !zone.IconVisible {
			return
		}
		frame = l.lib.GravityIcon[iconIndex(!zone.Flipped)]
	case zone.Flipped:
		frame = l.lib.GravityIcon[iconIndex(true)]
	default:
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(iconDrawSize/float64(frame.Width()), iconDrawSize/float64(frame.Height()))
	op.GeoM.Translate(l.cfg.Width/2-iconDrawSize/2, l.cfg.Height/4-iconDrawSize/2)
	screen.DrawImage(frame.Image(), op)
}

func iconIndex(flipped bool) int {
	if flipped {
		return 1
	}
	return 0
}

func drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, assets.Face(), op)
}
