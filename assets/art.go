package assets

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/colornames"
	xdraw "golang.org/x/image/draw"
)

type canvas struct {
	*image.NRGBA
}

func newCanvas(w, h int) canvas {
	return canvas{image.NewNRGBA(image.Rect(0, 0, w, h))}
}

func opaque(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func shade(c color.NRGBA, f float64) color.NRGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Max(0, math.Min(255, float64(v)*f)))
	}
	return color.NRGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

func mix(a, b color.NRGBA, t float64) color.NRGBA {
	l := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.NRGBA{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}

func (c canvas) fillRect(x0, y0, x1, y1 int, col color.NRGBA) {
	r := image.Rect(x0, y0, x1, y1).Intersect(c.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.SetNRGBA(x, y, col)
		}
	}
}

func (c canvas) fillEllipse(cx, cy, rx, ry float64, col color.NRGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := int(math.Floor(cy - ry)); y <= int(math.Ceil(cy+ry)); y++ {
		for x := int(math.Floor(cx - rx)); x <= int(math.Ceil(cx+rx)); x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				c.SetNRGBA(x, y, col)
			}
		}
	}
}

// fillEllipseWrapped repeats the ellipse one canvas width to each side so
// horizontally scrolling layers tile without seams.
func (c canvas) fillEllipseWrapped(cx, cy, rx, ry float64, col color.NRGBA) {
	w := float64(c.Rect.Dx())
	for _, off := range []float64{-w, 0, w} {
		c.fillEllipse(cx+off, cy, rx, ry, col)
	}
}

func (c canvas) fillTriangle(ax, ay, bx, by, px, py float64, col color.NRGBA) {
	minX := int(math.Floor(math.Min(ax, math.Min(bx, px))))
	maxX := int(math.Ceil(math.Max(ax, math.Max(bx, px))))
	minY := int(math.Floor(math.Min(ay, math.Min(by, py))))
	maxY := int(math.Ceil(math.Max(ay, math.Max(by, py))))
	edge := func(x0, y0, x1, y1, x, y float64) float64 {
		return (x1-x0)*(y-y0) - (y1-y0)*(x-x0)
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			e0 := edge(ax, ay, bx, by, fx, fy)
			e1 := edge(bx, by, px, py, fx, fy)
			e2 := edge(px, py, ax, ay, fx, fy)
			if (e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0) {
				c.SetNRGBA(x, y, col)
			}
		}
	}
}

func (c canvas) verticalGradient(top, bottom color.NRGBA) {
	h := c.Rect.Dy()
	for y := 0; y < h; y++ {
		col := mix(top, bottom, float64(y)/float64(max(1, h-1)))
		c.fillRect(0, y, c.Rect.Dx(), y+1, col)
	}
}

// scaleImage resizes with nearest-neighbour sampling so coverage edges stay
// hard.
func scaleImage(src *image.NRGBA, scale float64) *image.NRGBA {
	if scale == 1 || scale <= 0 {
		return src
	}
	w := max(1, int(math.Round(float64(src.Rect.Dx())*scale)))
	h := max(1, int(math.Round(float64(src.Rect.Dy())*scale)))
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Rect, src, src.Rect, xdraw.Src, nil)
	return dst
}

func flipVertical(src *image.NRGBA) *image.NRGBA {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		copy(dst.Pix[(h-1-y)*dst.Stride:(h-1-y)*dst.Stride+w*4], src.Pix[y*src.Stride:y*src.Stride+w*4])
	}
	return dst
}

func paintPlane(w, h, frame int) *image.NRGBA {
	c := newCanvas(w, h)
	fw, fh := float64(w), float64(h)
	body := opaque(colornames.Firebrick)
	wing := shade(body, 0.7)

	c.fillTriangle(fw*0.04, fh*0.15, fw*0.22, fh*0.5, fw*0.04, fh*0.62, body)
	c.fillEllipse(fw*0.46, fh*0.55, fw*0.38, fh*0.2, body)
	c.fillRect(int(fw*0.32), int(fh*0.52), int(fw*0.6), int(fh*0.72), wing)
	c.fillEllipse(fw*0.58, fh*0.42, fw*0.09, fh*0.11, opaque(colornames.Lightblue))
	c.fillRect(int(fw*0.82), int(fh*0.47), int(fw*0.88), int(fh*0.63), opaque(colornames.Dimgray))

	// Propeller blur cycles through three lengths.
	spans := [][2]float64{{0.12, 0.98}, {0.32, 0.78}, {0.47, 0.63}}
	s := spans[frame%len(spans)]
	c.fillRect(int(fw*0.88), int(fh*s[0]), int(fw*0.93), int(fh*s[1]), opaque(colornames.Darkslategray))
	return c.NRGBA
}

func paintPony(w, h, frame int) *image.NRGBA {
	c := newCanvas(w, h)
	fw, fh := float64(w), float64(h)
	coat := opaque(colornames.Hotpink)
	mane := opaque(colornames.Mediumpurple)
	hoof := opaque(colornames.Indigo)

	legLift := []float64{0, 0.06, 0.12}[frame%3]
	for i, x := range []float64{0.25, 0.35, 0.55, 0.65} {
		lift := legLift
		if i%2 == 1 {
			lift = 0.12 - legLift
		}
		c.fillRect(int(fw*x), int(fh*0.6), int(fw*(x+0.06)), int(fh*(0.92-lift)), shade(coat, 0.85))
		c.fillRect(int(fw*x), int(fh*(0.86-lift)), int(fw*(x+0.06)), int(fh*(0.92-lift)), hoof)
	}
	c.fillEllipse(fw*0.45, fh*0.55, fw*0.3, fh*0.2, coat)
	c.fillTriangle(fw*0.15, fh*0.45, fw*0.02, fh*(0.5+legLift), fw*0.12, fh*0.75, mane)
	c.fillEllipse(fw*0.78, fh*0.3, fw*0.14, fh*0.15, coat)
	c.fillTriangle(fw*0.7, fh*0.12, fw*0.74, fh*0.0, fw*0.78, fh*0.14, coat)
	c.fillTriangle(fw*0.62, fh*0.18, fw*0.7, fh*0.12, fw*0.68, fh*0.45, mane)
	c.fillEllipse(fw*0.84, fh*0.27, fw*0.025, fh*0.035, opaque(colornames.Black))

	wingY := []float64{0.22, 0.32, 0.42}[frame%3]
	c.fillTriangle(fw*0.35, fh*0.45, fw*0.55, fh*0.45, fw*0.4, fh*wingY, opaque(colornames.Lavender))
	return c.NRGBA
}

func paintObstacle(w, h, variant int) *image.NRGBA {
	c := newCanvas(w, h)
	fw, fh := float64(w), float64(h)
	if variant%2 == 0 {
		body := opaque(colornames.Forestgreen)
		c.fillRect(int(fw*0.1), int(fh*0.05), int(fw*0.9), h, body)
		c.fillRect(int(fw*0.2), int(fh*0.05), int(fw*0.3), h, shade(body, 1.25))
		c.fillRect(0, 0, w, int(fh*0.06), shade(body, 0.8))
		return c.NRGBA
	}
	rock := opaque(colornames.Slategray)
	c.fillTriangle(fw*0.5, 0, fw, fh, 0, fh, rock)
	for y := int(fh * 0.2); y < h; y += max(8, h/12) {
		c.fillTriangle(fw*0.5, float64(y), fw*0.62, float64(y)+fh*0.03, fw*0.38, float64(y)+fh*0.03, shade(rock, 0.75))
	}
	return c.NRGBA
}

func paintCrow(w, h, frame int) *image.NRGBA {
	c := newCanvas(w, h)
	fw, fh := float64(w), float64(h)
	feathers := color.NRGBA{R: 0x22, G: 0x22, B: 0x2a, A: 255}

	c.fillTriangle(fw*0.7, fh*0.45, fw, fh*0.3, fw, fh*0.7, feathers)
	c.fillEllipse(fw*0.5, fh*0.55, fw*0.3, fh*0.22, feathers)
	c.fillEllipse(fw*0.2, fh*0.42, fw*0.13, fh*0.17, feathers)
	c.fillTriangle(fw*0.08, fh*0.36, fw*0.08, fh*0.5, 0, fh*0.45, opaque(colornames.Orange))
	c.fillEllipse(fw*0.17, fh*0.38, fw*0.03, fh*0.04, opaque(colornames.White))
	if frame%2 == 0 {
		c.fillEllipse(fw*0.55, fh*0.55, fw*0.2, fh*0.12, shade(feathers, 1.6))
	} else {
		c.fillTriangle(fw*0.4, fh*0.5, fw*0.7, fh*0.5, fw*0.65, 0, shade(feathers, 1.6))
	}
	return c.NRGBA
}

type skyPalette struct {
	top, bottom, hills, sun color.NRGBA
}

var (
	pastelSky = skyPalette{
		top:    opaque(colornames.Lightpink),
		bottom: opaque(colornames.Lightyellow),
		hills:  opaque(colornames.Palegreen),
		sun:    opaque(colornames.Gold),
	}
	daySky = skyPalette{
		top:    opaque(colornames.Deepskyblue),
		bottom: opaque(colornames.Lightcyan),
		hills:  opaque(colornames.Seagreen),
		sun:    opaque(colornames.Khaki),
	}
)

// paintSky renders one background frame. Frames differ only in the sun's
// pulse so an animated layer loops smoothly.
func paintSky(w, h int, p skyPalette, frame, frames int) *image.NRGBA {
	c := newCanvas(w, h)
	fw, fh := float64(w), float64(h)
	c.verticalGradient(p.top, p.bottom)

	pulse := 1.0
	if frames > 1 {
		pulse = 1 + 0.08*math.Sin(2*math.Pi*float64(frame)/float64(frames))
	}
	c.fillEllipse(fw*0.75, fh*0.16, fw*0.09*pulse, fw*0.09*pulse, p.sun)

	cloud := opaque(colornames.White)
	for _, cl := range [][3]float64{{0.15, 0.12, 1}, {0.55, 0.25, 0.8}, {0.85, 0.4, 1.1}} {
		x, y, s := fw*cl[0], fh*cl[1], cl[2]
		c.fillEllipseWrapped(x, y, fw*0.09*s, fh*0.025*s, cloud)
		c.fillEllipseWrapped(x+fw*0.06*s, y-fh*0.015*s, fw*0.07*s, fh*0.025*s, cloud)
	}

	for _, hill := range [][2]float64{{0.2, 0.16}, {0.6, 0.2}, {1.0, 0.14}} {
		c.fillEllipseWrapped(fw*hill[0], fh, fw*0.35, fh*hill[1], p.hills)
	}
	return c.NRGBA
}

func paintGround(w, h int) *image.NRGBA {
	c := newCanvas(w, h)
	dirt := opaque(colornames.Sienna)
	grass := opaque(colornames.Forestgreen)
	c.fillRect(0, 0, w, h, dirt)
	stripe := shade(dirt, 0.8)
	for x := -(h/40 + 1) * 40; x < w; x += 40 {
		fx := float64(x)
		c.fillTriangle(fx, float64(h), fx+12, float64(h), fx+12+float64(h)/2, 0, stripe)
	}
	c.fillRect(0, 0, w, max(1, h/6), grass)
	for x := 0; x < w; x += 16 {
		c.fillTriangle(float64(x), float64(h/6), float64(x+8), float64(h/6), float64(x+4), float64(h/6+h/12), shade(grass, 0.85))
	}
	return c.NRGBA
}

func paintGravityIcon(size int, flipped bool) *image.NRGBA {
	c := newCanvas(size, size)
	f := float64(size)
	col := opaque(colornames.Gold)
	c.fillRect(int(f*0.38), int(f*0.1), int(f*0.62), int(f*0.6), col)
	c.fillTriangle(f*0.15, f*0.55, f*0.85, f*0.55, f*0.5, f*0.95, col)
	if flipped {
		return flipVertical(c.NRGBA)
	}
	return c.NRGBA
}
