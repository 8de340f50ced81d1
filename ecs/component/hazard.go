package component

import "github.com/milk9111/skyhop/mask"

// Hazard marks an entity as lethal on pixel overlap with the player.
// Clearable hazards are destroyed when the player is lost; permanent ones
// such as the ground stay.
type Hazard struct {
	Clearable bool
}

var HazardComponent = NewComponent[Hazard]()

// Collider is the coverage mask tested against the player. The offset is
// relative to Transform.
type Collider struct {
	Mask    *mask.Mask
	OffsetX int
	OffsetY int
}

var ColliderComponent = NewComponent[Collider]()
