package component

// LevelBounds stores the viewport size and which edges are fatal.
type LevelBounds struct {
	Width        float64
	Height       float64
	CeilingFatal bool
	FloorFatal   bool
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
