package component

// Clock is the level-wide time singleton written at the start of a frame.
type Clock struct {
	DT      float64
	Elapsed float64
	Frame   int
}

var ClockComponent = NewComponent[Clock]()
