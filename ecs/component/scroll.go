package component

// ScrollLayer is a horizontally repeating layer. Offset stays within
// [-Width, 0]; the layer is drawn at Offset and Offset+Width.
type ScrollLayer struct {
	Speed  float64
	Width  float64
	Offset float64
}

var ScrollLayerComponent = NewComponent[ScrollLayer]()
