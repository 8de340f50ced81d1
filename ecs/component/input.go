package component

// Input stores the pointer state sampled at the start of a frame.
type Input struct {
	// Pressed is true on the frame the left button or jump key went down.
	Pressed bool
	CursorX int
	CursorY int
}

var InputComponent = NewComponent[Input]()
