package routing

import "github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/geo"

// Limits bound what a single isochrone request may ask of a profile.
// A zero value means the limit is not enforced.
type Limits struct {
	MaximumLocations     int     `json:"maximum_locations" yaml:"maximum_locations"`
	MaximumRangeTime     float64 `json:"maximum_range_time" yaml:"maximum_range_time"`         // seconds
	MaximumRangeDistance float64 `json:"maximum_range_distance" yaml:"maximum_range_distance"` // metres
	MaximumIntervals     int     `json:"maximum_intervals" yaml:"maximum_intervals"`
}

// ProfileSettings describes how the engine serves one routing profile.
type ProfileSettings struct {
	Profile     Profile          `json:"profile" yaml:"profile"`
	Enabled     bool             `json:"enabled" yaml:"enabled"`
	ServiceArea *geo.BoundingBox `json:"service_area,omitempty" yaml:"service_area,omitempty"`
	Limits      Limits           `json:"limits" yaml:"limits"`
}

// Serves reports whether a location falls inside the profile's service area.
// Profiles without a service area serve every location.
func (s *ProfileSettings) Serves(c geo.Coordinate) bool {
	if s.ServiceArea == nil {
		return true
	}
	return s.ServiceArea.Contains(c)
}

// Clone returns a copy that shares no memory with s.
func (s *ProfileSettings) Clone() *ProfileSettings {
	out := *s
	if s.ServiceArea != nil {
		area := *s.ServiceArea
		out.ServiceArea = &area
	}
	return &out
}
