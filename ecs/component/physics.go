package component

// Body is a vertical point mass integrated with semi-implicit Euler.
// Gravity is signed; a negative value pulls toward the top of the screen.
type Body struct {
	Velocity float64
	Gravity  float64
}

var BodyComponent = NewComponent[Body]()
