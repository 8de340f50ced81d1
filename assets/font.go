package assets

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var (
	faceOnce sync.Once
	face     *text.GoXFace
)

// Face returns the bitmap UI font. Callers scale it with GeoM for large text.
func Face() *text.GoXFace {
	faceOnce.Do(func() {
		face = text.NewGoXFace(basicfont.Face7x13)
	})
	return face
}
