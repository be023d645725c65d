package core

import "github.com/chewxy/math32"

// Interval is a closed range [Min, Max] of ray parameters. An interval with
// Min > Max contains nothing.
type Interval struct {
	Min, Max float32
}

var (
	// EmptyInterval contains no values
	EmptyInterval = Interval{Min: math32.Inf(1), Max: math32.Inf(-1)}
	// UniverseInterval contains every finite value
	UniverseInterval = Interval{Min: math32.Inf(-1), Max: math32.Inf(1)}
)

// NewInterval creates a new interval
func NewInterval(min, max float32) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns the length of the interval
func (i Interval) Size() float32 {
	return i.Max - i.Min
}

// Contains reports whether min <= x <= max. NaN is never contained.
func (i Interval) Contains(x float32) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether min < x < max
func (i Interval) Surrounds(x float32) bool {
	return i.Min < x && x < i.Max
}

// Clamp limits x to the interval bounds
func (i Interval) Clamp(x float32) float32 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// WithMax returns a copy of the interval with its upper bound replaced
func (i Interval) WithMax(max float32) Interval {
	return Interval{Min: i.Min, Max: max}
}
