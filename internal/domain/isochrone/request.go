package isochrone

import (
	"slices"

	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/geo"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/routing"
)

// Calculation methods understood by the engine.
const (
	CalcMethodConcaveBalls = "concaveballs"
	CalcMethodGrid         = "grid"
)

// Smoothing bounds accepted by the engine.
const (
	MinSmoothing = 0
	MaxSmoothing = 100
)

// Request is the aggregate root handed to the isochrone engine.
// It is mutated only while it is being assembled.
type Request struct {
	id                   string
	profile              routing.Profile
	calcMethod           string
	includeIntersections bool
	attributes           []string
	smoothingFactor      *float32
	units                DistanceUnit
	areaUnits            DistanceUnit
	travellers           []*Traveller
}

// NewRequest creates an empty Request for the given profile with engine defaults.
func NewRequest(id string, profile routing.Profile) *Request {
	return &Request{
		id:         id,
		profile:    profile,
		calcMethod: CalcMethodConcaveBalls,
		units:      Meters,
		areaUnits:  Meters,
	}
}

// SetCalcMethod sets the polygon construction method.
func (r *Request) SetCalcMethod(method string) {
	r.calcMethod = method
}

// SetIncludeIntersections toggles computation of intersections between isochrones.
func (r *Request) SetIncludeIntersections(include bool) {
	r.includeIntersections = include
}

// SetAttributes sets the output attribute labels.
func (r *Request) SetAttributes(attributes []string) {
	r.attributes = slices.Clone(attributes)
}

// SetSmoothingFactor sets the polygon smoothing factor.
func (r *Request) SetSmoothingFactor(factor float32) error {
	if factor < MinSmoothing || factor > MaxSmoothing {
		return domain.NewInvalidParameterError("smoothing", "smoothing must be between 0 and 100")
	}
	r.smoothingFactor = &factor
	return nil
}

// SetUnits sets the unit of distance ranges.
func (r *Request) SetUnits(u DistanceUnit) {
	r.units = u
}

// SetAreaUnits sets the unit of the area attribute.
func (r *Request) SetAreaUnits(u DistanceUnit) {
	r.areaUnits = u
}

// AddTraveller appends a traveller; order is preserved.
func (r *Request) AddTraveller(t *Traveller) {
	r.travellers = append(r.travellers, t)
}

func (r *Request) ID() string                 { return r.id }
func (r *Request) Profile() routing.Profile   { return r.profile }
func (r *Request) CalcMethod() string         { return r.calcMethod }
func (r *Request) IncludeIntersections() bool { return r.includeIntersections }
func (r *Request) Units() DistanceUnit        { return r.units }
func (r *Request) AreaUnits() DistanceUnit    { return r.areaUnits }

// Attributes returns the attribute labels, or nil when none were requested.
func (r *Request) Attributes() []string {
	return slices.Clone(r.attributes)
}

// SmoothingFactor returns the smoothing factor and whether one was set.
func (r *Request) SmoothingFactor() (float32, bool) {
	if r.smoothingFactor == nil {
		return 0, false
	}
	return *r.smoothingFactor, true
}

// Travellers returns the travellers in input order.
func (r *Request) Travellers() []*Traveller {
	return slices.Clone(r.travellers)
}

// Locations returns the location of every traveller in input order.
func (r *Request) Locations() []geo.Coordinate {
	locations := make([]geo.Coordinate, len(r.travellers))
	for i, t := range r.travellers {
		locations[i] = t.Location()
	}
	return locations
}
