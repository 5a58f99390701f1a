package isochrone

// TravelRangeType is the dimension in which ranges are measured.
type TravelRangeType int

const (
	RangeTime TravelRangeType = iota + 1
	RangeDistance
)

// String returns the string representation of the range type.
func (t TravelRangeType) String() string {
	switch t {
	case RangeTime:
		return "time"
	case RangeDistance:
		return "distance"
	}
	return "unknown"
}

// DistanceUnit is the unit distance ranges and areas are expressed in.
type DistanceUnit int

const (
	Meters DistanceUnit = iota + 1
	Kilometers
	Miles
)

const metersPerMile = 1609.344

// String returns the unit abbreviation.
func (u DistanceUnit) String() string {
	switch u {
	case Meters:
		return "m"
	case Kilometers:
		return "km"
	case Miles:
		return "mi"
	}
	return "unknown"
}

// ToMeters converts a value expressed in u to metres.
func (u DistanceUnit) ToMeters(v float64) float64 {
	switch u {
	case Kilometers:
		return v * 1000
	case Miles:
		return v * metersPerMile
	}
	return v
}
