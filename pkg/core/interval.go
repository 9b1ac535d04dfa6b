package core

import "math"

// Interval represents a closed range [Min, Max] on the real line
type Interval struct {
	Min, Max float64
}

// EmptyInterval contains no values; it is the identity for Merge
var EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

// UniverseInterval contains every value
var UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns the extent of the interval
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains returns true if x lies in [Min, Max]
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds returns true if x lies strictly inside (Min, Max)
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp saturates x into [Min, Max]
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand returns the interval grown symmetrically by delta
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2.0
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

// Merge returns the smallest interval containing both inputs
func (i Interval) Merge(other Interval) Interval {
	return Interval{
		Min: math.Min(i.Min, other.Min),
		Max: math.Max(i.Max, other.Max),
	}
}

// Offset returns the interval shifted by d
func (i Interval) Offset(d float64) Interval {
	return Interval{Min: i.Min + d, Max: i.Max + d}
}
