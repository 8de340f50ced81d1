package mask

import "math"

// RotationCache lazily stores rotated copies of a base mask quantized to
// whole degrees so tilting sprites do not rebuild masks every frame.
type RotationCache struct {
	base     *Mask
	byDegree map[int]*Mask
}

func NewRotationCache(base *Mask) *RotationCache {
	return &RotationCache{base: base, byDegree: make(map[int]*Mask)}
}

// Base returns the unrotated mask.
func (c *RotationCache) Base() *Mask {
	if c == nil {
		return nil
	}
	return c.base
}

// At returns the mask for rad radians and the offset of its top-left corner
// relative to the unrotated mask's top-left, keeping both centered on the
// same point.
func (c *RotationCache) At(rad float64) (*Mask, int, int) {
	if c == nil || c.base == nil {
		return nil, 0, 0
	}
	deg := int(math.Round(rad * 180 / math.Pi))
	if deg == 0 {
		return c.base, 0, 0
	}
	m, ok := c.byDegree[deg]
	if !ok {
		m = c.base.Rotate(float64(deg) * math.Pi / 180)
		c.byDegree[deg] = m
	}
	offX := int(math.Floor(float64(c.base.w-m.w) / 2))
	offY := int(math.Floor(float64(c.base.h-m.h) / 2))
	return m, offX, offY
}
