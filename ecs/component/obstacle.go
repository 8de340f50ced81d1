package component

// Obstacle moves an entity left at Speed and culls it once its right edge
// is at or beyond CullMargin pixels past the left edge.
type Obstacle struct {
	Speed      float64
	CullMargin float64
}

var ObstacleComponent = NewComponent[Obstacle]()

// Oscillator drives the vertical position as BaseY + Amplitude*sin(AngularSpeed*Time).
type Oscillator struct {
	BaseY        float64
	Amplitude    float64
	AngularSpeed float64
	Time         float64
}

var OscillatorComponent = NewComponent[Oscillator]()

// Flyer is a decorative enemy moving left at Speed; it is culled when its
// right edge passes the left edge of the screen.
type Flyer struct {
	Speed float64
}

var FlyerComponent = NewComponent[Flyer]()

// Trail records recent top-left positions for a fading ghost effect.
type Trail struct {
	Points   [][2]float64
	Max      int
	MaxAlpha int
}

var TrailComponent = NewComponent[Trail]()

// Alpha returns the opacity of the i-th stored point, oldest first, in
// [0, 1].
func (t *Trail) Alpha(i int) float64 {
	n := len(t.Points)
	if n == 0 || i < 0 || i >= n {
		return 0
	}
	a := t.MaxAlpha - (n-i-1)*(t.MaxAlpha/n)
	if a < 0 {
		a = 0
	}
	return float64(a) / 255
}
