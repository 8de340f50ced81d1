package component

// Player carries the avatar's fixed tuning and its spawn defaults.
type Player struct {
	JumpImpulse float64
	BaseGravity float64
	// TiltFactor converts vertical velocity into degrees of nose rotation.
	TiltFactor float64
	SpawnX     float64
	SpawnY     float64
}

var PlayerComponent = NewComponent[Player]()
