package component

// Transform positions the top-left corner of an entity's unrotated sprite.
// Rotation is in radians, clockwise on screen, about the sprite center.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
