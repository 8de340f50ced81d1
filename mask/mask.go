// Package mask holds per-pixel coverage bitmaps used for pixel-accurate
// collision between sprites.
package mask

import (
	"image"
	"math"

	"github.com/jakecoffman/cp"
)

// DefaultThreshold is the alpha value a pixel must exceed to be opaque.
const DefaultThreshold = 127

// Mask is a packed 1-bit coverage bitmap. Each row is stored in whole
// 64-bit words so row lookups stay cheap.
type Mask struct {
	w, h   int
	stride int
	bits   []uint64

	bounds image.Rectangle
	dirty  bool
}

// New allocates an empty w×h mask.
func New(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	stride := (w + 63) / 64
	return &Mask{
		w:      w,
		h:      h,
		stride: stride,
		bits:   make([]uint64, stride*h),
	}
}

// Filled allocates a w×h mask with every bit set.
func Filled(w, h int) *Mask {
	m := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, true)
		}
	}
	return m
}

// FromImage builds a mask from the alpha channel of img using
// DefaultThreshold.
func FromImage(img image.Image) *Mask {
	return FromImageThreshold(img, DefaultThreshold)
}

// FromImageThreshold marks every pixel whose alpha is strictly greater than
// threshold.
func FromImageThreshold(img image.Image, threshold uint8) *Mask {
	if img == nil {
		return New(0, 0)
	}
	b := img.Bounds()
	m := New(b.Dx(), b.Dy())

	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < m.h; y++ {
			row := nrgba.Pix[y*nrgba.Stride:]
			for x := 0; x < m.w; x++ {
				if row[x*4+3] > threshold {
					m.Set(x, y, true)
				}
			}
		}
		return m
	}

	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if uint8(a>>8) > threshold {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

func (m *Mask) Width() int {
	if m == nil {
		return 0
	}
	return m.w
}

func (m *Mask) Height() int {
	if m == nil {
		return 0
	}
	return m.h
}

// At reports whether the pixel at (x, y) is covered. Out-of-range
// coordinates are never covered.
func (m *Mask) At(x, y int) bool {
	if m == nil || x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.stride+x/64]&(1<<uint(x%64)) != 0
}

// Set changes the coverage of a single pixel.
func (m *Mask) Set(x, y int, on bool) {
	if m == nil || x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	idx := y*m.stride + x/64
	bit := uint64(1) << uint(x%64)
	if on {
		m.bits[idx] |= bit
	} else {
		m.bits[idx] &^= bit
	}
	m.dirty = true
}

// Count returns the number of covered pixels.
func (m *Mask) Count() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, word := range m.bits {
		for word != 0 {
			word &= word - 1
			n++
		}
	}
	return n
}

// Bounds returns the tightest rectangle containing every covered pixel in
// mask-local coordinates. An empty mask has empty bounds.
func (m *Mask) Bounds() image.Rectangle {
	if m == nil {
		return image.Rectangle{}
	}
	if m.dirty {
		m.bounds = m.computeBounds()
		m.dirty = false
	}
	return m.bounds
}

func (m *Mask) computeBounds() image.Rectangle {
	minX, minY := m.w, m.h
	maxX, maxY := -1, -1
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if !m.At(x, y) {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// Clone returns a deep copy.
func (m *Mask) Clone() *Mask {
	if m == nil {
		return nil
	}
	out := &Mask{w: m.w, h: m.h, stride: m.stride, bits: make([]uint64, len(m.bits)), dirty: true}
	copy(out.bits, m.bits)
	return out
}

// FlipVertical mirrors the mask top to bottom.
func (m *Mask) FlipVertical() *Mask {
	if m == nil {
		return nil
	}
	out := New(m.w, m.h)
	for y := 0; y < m.h; y++ {
		copy(out.bits[(m.h-1-y)*m.stride:(m.h-y)*m.stride], m.bits[y*m.stride:(y+1)*m.stride])
	}
	out.dirty = true
	return out
}

// Repeat lays n copies of the mask side by side.
func (m *Mask) Repeat(n int) *Mask {
	if m == nil || n <= 0 {
		return New(0, 0)
	}
	out := New(m.w*n, m.h)
	for i := 0; i < n; i++ {
		for y := 0; y < m.h; y++ {
			for x := 0; x < m.w; x++ {
				if m.At(x, y) {
					out.Set(i*m.w+x, y, true)
				}
			}
		}
	}
	return out
}

// Rotate returns the mask rotated by rad radians around its center using
// the same orientation as ebiten.GeoM.Rotate (positive is clockwise on a
// y-down screen). The result grows to the rotated bounding box and is
// sampled nearest-neighbour.
func (m *Mask) Rotate(rad float64) *Mask {
	if m == nil {
		return nil
	}
	if rad == 0 || m.w == 0 || m.h == 0 {
		return m.Clone()
	}

	cos, sin := math.Cos(rad), math.Sin(rad)
	fw, fh := float64(m.w), float64(m.h)
	rw := int(math.Ceil(math.Abs(fw*cos) + math.Abs(fh*sin) - 1e-9))
	rh := int(math.Ceil(math.Abs(fw*sin) + math.Abs(fh*cos) - 1e-9))
	out := New(rw, rh)

	for dy := 0; dy < rh; dy++ {
		y := float64(dy) + 0.5 - float64(rh)/2
		for dx := 0; dx < rw; dx++ {
			x := float64(dx) + 0.5 - float64(rw)/2
			sx := int(math.Floor(x*cos + y*sin + fw/2))
			sy := int(math.Floor(-x*sin + y*cos + fh/2))
			if m.At(sx, sy) {
				out.Set(dx, dy, true)
			}
		}
	}
	return out
}

// BB converts the mask's opaque bounds placed at (x, y) into a Chipmunk
// bounding box. Edges are inclusive pixel coordinates so adjacent masks do
// not register as intersecting.
func BB(m *Mask, x, y int) (cp.BB, bool) {
	r := m.Bounds()
	if r.Empty() {
		return cp.BB{}, false
	}
	r = r.Add(image.Pt(x, y))
	return cp.BB{L: float64(r.Min.X), B: float64(r.Min.Y), R: float64(r.Max.X - 1), T: float64(r.Max.Y - 1)}, true
}

// Overlap reports whether any covered pixel of a placed at (ax, ay) shares a
// position with a covered pixel of b placed at (bx, by). The opaque bounds
// of both masks are compared first so disjoint sprites never reach the
// per-pixel scan.
func Overlap(a *Mask, ax, ay int, b *Mask, bx, by int) bool {
	bbA, ok := BB(a, ax, ay)
	if !ok {
		return false
	}
	bbB, ok := BB(b, bx, by)
	if !ok {
		return false
	}
	if !bbA.Intersects(bbB) {
		return false
	}

	ra := a.Bounds().Add(image.Pt(ax, ay))
	rb := b.Bounds().Add(image.Pt(bx, by))
	r := ra.Intersect(rb)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if a.At(x-ax, y-ay) && b.At(x-bx, y-by) {
				return true
			}
		}
	}
	return false
}
