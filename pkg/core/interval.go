package core

import "math"

// Interval represents a closed range [Min, Max] along a ray parameter or
// a colour channel. An inverted interval (Min > Max) is empty by convention.
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// EmptyInterval contains no values
var EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

// UniverseInterval contains all values
var UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}

// Size returns the width of the interval
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether x lies inside the interval, endpoints included
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies strictly inside the interval.
// Intersection code uses this to reject grazing roots at the interval edges.
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp bounds x to [Min, Max]
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}
