package assets

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/skyhop/mask"
)

// Frame is one sprite image with its collision coverage. The GPU copy is
// created on first draw so frames can be built and tested headless.
type Frame struct {
	Name   string
	Source *image.NRGBA
	Mask   *mask.Mask

	rotations *mask.RotationCache
	img       *ebiten.Image
}

func NewFrame(name string, src *image.NRGBA) *Frame {
	return &Frame{Name: name, Source: src, Mask: mask.FromImage(src)}
}

func (f *Frame) Width() int {
	return f.Source.Rect.Dx()
}

func (f *Frame) Height() int {
	return f.Source.Rect.Dy()
}

// Image returns the uploaded texture.
func (f *Frame) Image() *ebiten.Image {
	if f.img == nil {
		f.img = ebiten.NewImageFromImage(f.Source)
	}
	return f.img
}

// Rotated returns the mask for the frame rotated by rad around its center
// and the offset of the rotated mask relative to the unrotated top-left.
func (f *Frame) Rotated(rad float64) (*mask.Mask, int, int) {
	if f.rotations == nil {
		f.rotations = mask.NewRotationCache(f.Mask)
	}
	return f.rotations.At(rad)
}
