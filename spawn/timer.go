package spawn

// epsilon absorbs float drift when a stream of deltas is meant to sum to
// exactly one interval.
const epsilon = 1e-9

// Timer fires once every Interval seconds of accumulated time. When it
// fires the accumulator drops back to zero; time beyond the threshold is
// discarded rather than carried into the next period.
type Timer struct {
	Interval float64

	acc float64
}

func NewTimer(interval float64) *Timer {
	return &Timer{Interval: interval}
}

// Advance adds dt and reports whether the timer fired. A timer with a
// non-positive interval never fires.
func (t *Timer) Advance(dt float64) bool {
	if t == nil || t.Interval <= 0 {
		return false
	}
	t.acc += dt
	if t.acc+epsilon >= t.Interval {
		t.acc = 0
		return true
	}
	return false
}

// Elapsed returns the time accumulated since the last firing.
func (t *Timer) Elapsed() float64 {
	if t == nil {
		return 0
	}
	return t.acc
}

func (t *Timer) Reset() {
	if t == nil {
		return
	}
	t.acc = 0
}
