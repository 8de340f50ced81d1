package component

import "image/color"

// ScreenFlash tints the whole frame for Duration seconds after Start.
// Times are on the level clock.
type ScreenFlash struct {
	Color    color.NRGBA
	Start    float64
	Duration float64
	Active   bool
}

var ScreenFlashComponent = NewComponent[ScreenFlash]()

// ScreenShake jitters the frame for Duration seconds after Start.
// Magnitude is in pixels.
type ScreenShake struct {
	Magnitude float64
	Start     float64
	Duration  float64
	Active    bool
	OffsetX   float64
	OffsetY   float64
}

var ScreenShakeComponent = NewComponent[ScreenShake]()
