package isochrone

import (
	"math"
	"slices"
)

// Ranges is the ascending list of range stops shared by every traveller of a request.
// It is immutable once built.
type Ranges struct {
	values []float64
}

// NewRanges copies values into a Ranges without reordering them.
func NewRanges(values ...float64) Ranges {
	return Ranges{values: slices.Clone(values)}
}

// Values returns a copy of the range stops.
func (r Ranges) Values() []float64 {
	return slices.Clone(r.values)
}

// Len returns the number of range stops.
func (r Ranges) Len() int {
	return len(r.values)
}

// Max returns the outermost stop, or 0 when there are none.
func (r Ranges) Max() float64 {
	if len(r.values) == 0 {
		return 0
	}
	return r.values[len(r.values)-1]
}

// Equal reports whether both hold the same stops in the same order.
func (r Ranges) Equal(other Ranges) bool {
	return slices.Equal(r.values, other.values)
}

// ExpandRanges turns the requested range boundaries into range stops.
//
// A single boundary R with a positive interval I yields I, 2I, ... for every
// multiple strictly below R, followed by R itself. Several boundaries are
// returned sorted and the interval is ignored.
func ExpandRanges(boundaries []float64, interval float64) Ranges {
	switch len(boundaries) {
	case 0:
		return Ranges{}
	case 1:
		limit := boundaries[0]
		if interval <= 0 {
			return Ranges{values: []float64{limit}}
		}
		var stops []float64
		for k := 1; ; k++ {
			stop := float64(k) * interval
			if stop >= limit {
				break
			}
			stops = append(stops, stop)
		}
		return Ranges{values: append(stops, limit)}
	}

	sorted := slices.Clone(boundaries)
	slices.Sort(sorted)
	return Ranges{values: sorted}
}

// CountRangeStops returns how many stops ExpandRanges would produce, without
// producing them. Counts that do not fit in an int32 are clamped.
func CountRangeStops(boundaries []float64, interval float64) int {
	if len(boundaries) != 1 {
		return len(boundaries)
	}
	limit := boundaries[0]
	if interval <= 0 || interval >= limit {
		return 1
	}
	n := math.Ceil(limit / interval)
	if math.IsNaN(n) || n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}
