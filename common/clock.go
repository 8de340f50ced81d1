package common

import "time"

// TimeSource supplies the elapsed time for each frame in seconds.
type TimeSource interface {
	Tick() float64
}

// FixedStep returns the same delta every frame. It is the default source
// because ebiten already paces Update calls at a fixed TPS.
type FixedStep struct {
	Step float64
}

// NewFixedStep builds a fixed step for the given ticks per second.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = DefaultFramerate
	}
	return &FixedStep{Step: 1 / float64(tps)}
}

func (f *FixedStep) Tick() float64 {
	if f == nil {
		return 0
	}
	return f.Step
}

// WallClock measures real time between ticks. MaxStep caps the delta so a
// stalled window (dragging, breakpoints) does not teleport entities.
type WallClock struct {
	MaxStep float64

	now  func() time.Time
	last time.Time
}

// NewWallClock creates a wall clock capped at maxStep seconds per tick.
func NewWallClock(maxStep float64) *WallClock {
	return &WallClock{MaxStep: maxStep, now: time.Now}
}

func (c *WallClock) Tick() float64 {
	if c == nil {
		return 0
	}
	if c.now == nil {
		c.now = time.Now
	}
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	if c.MaxStep > 0 && dt > c.MaxStep {
		return c.MaxStep
	}
	return dt
}
