package spawn

// DistanceTrigger fires whenever cumulative travelled distance crosses a
// threshold. Each threshold is the distance at the previous firing plus a
// fresh uniform draw from [Min, Max].
type DistanceTrigger struct {
	Min     int
	Max     int
	Warning float64

	rng      Rand
	traveled float64
	next     float64
	warning  bool
}

func NewDistanceTrigger(min, max int, warning float64, rng Rand) *DistanceTrigger {
	d := &DistanceTrigger{Min: min, Max: max, Warning: warning, rng: rng}
	d.Reset()
	return d
}

// Advance adds distance and reports whether the threshold was crossed.
func (d *DistanceTrigger) Advance(distance float64) bool {
	if d == nil {
		return false
	}
	d.traveled += distance
	if d.traveled >= d.next {
		d.warning = false
		d.next = d.traveled + float64(IntBetween(d.rng, d.Min, d.Max))
		return true
	}
	d.warning = d.traveled >= d.next-d.Warning
	return false
}

// InWarning reports whether the next firing is within Warning distance.
func (d *DistanceTrigger) InWarning() bool {
	return d != nil && d.warning
}

func (d *DistanceTrigger) Traveled() float64 {
	if d == nil {
		return 0
	}
	return d.traveled
}

// Next returns the distance at which the trigger fires next.
func (d *DistanceTrigger) Next() float64 {
	if d == nil {
		return 0
	}
	return d.next
}

// Reset clears travelled distance and draws a new first threshold.
func (d *DistanceTrigger) Reset() {
	if d == nil {
		return
	}
	d.traveled = 0
	d.warning = false
	d.next = float64(IntBetween(d.rng, d.Min, d.Max))
}
