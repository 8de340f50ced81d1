package common

// Logical viewport size. The window is scaled to fit but the game always
// lays out against these dimensions.
const (
	BaseWidth  = 480
	BaseHeight = 800
)

// DefaultFramerate is the update rate (ticks per second) used when the game
// config does not provide one.
const DefaultFramerate = 120
