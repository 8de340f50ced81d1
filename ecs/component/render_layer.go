package component

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()

const (
	LayerBackground = 0
	LayerObstacle   = 10
	LayerGround     = 20
	LayerFlyer      = 30
	LayerPlayer     = 40
)
