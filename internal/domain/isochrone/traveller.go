package isochrone

import (
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/geo"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/routing"
)

// Traveller is one query location of an isochrone request together with its range specification.
type Traveller struct {
	id                    string
	location              geo.Coordinate
	locationType          string
	rangeType             TravelRangeType
	ranges                Ranges
	routeSearchParameters *routing.RouteSearchParameters
}

// NewTraveller creates a new Traveller.
func NewTraveller(
	id string,
	location geo.Coordinate,
	locationType string,
	rangeType TravelRangeType,
	ranges Ranges,
	params *routing.RouteSearchParameters,
) *Traveller {
	return &Traveller{
		id:                    id,
		location:              location,
		locationType:          locationType,
		rangeType:             rangeType,
		ranges:                ranges,
		routeSearchParameters: params,
	}
}

func (t *Traveller) ID() string                 { return t.id }
func (t *Traveller) Location() geo.Coordinate   { return t.location }
func (t *Traveller) LocationType() string       { return t.locationType }
func (t *Traveller) RangeType() TravelRangeType { return t.rangeType }
func (t *Traveller) Ranges() Ranges             { return t.ranges }

// RouteSearchParameters returns the routing settings built for this traveller.
func (t *Traveller) RouteSearchParameters() *routing.RouteSearchParameters {
	return t.routeSearchParameters
}
