package application

import (
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/isochrone"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/routing"
)

// IsochronesRequest is the public request DTO for isochrone computation.
// Locations are [longitude, latitude] pairs.
type IsochronesRequest struct {
	ID            string                `json:"id"`
	Profile       routing.Profile       `json:"-"`
	Locations     [][]float64           `json:"locations" binding:"required,min=1"`
	Range         []float64             `json:"range" binding:"required,min=1"`
	Interval      *float64              `json:"interval"`
	RangeType     RangeType             `json:"range_type"`
	LocationType  LocationType          `json:"location_type"`
	AreaUnits     Units                 `json:"area_units"`
	RangeUnits    Units                 `json:"units"`
	Attributes    []Attribute           `json:"attributes"`
	Smoothing     *float64              `json:"smoothing"`
	CalcMethod    CalculationMethod     `json:"calc_method"`
	Intersections *bool                 `json:"intersections"`
	Options       *routing.RouteOptions `json:"options"`
}

// TravellerDTO is the API response representation of one traveller.
type TravellerDTO struct {
	ID                    string                         `json:"id"`
	Location              [2]float64                     `json:"location"`
	LocationType          string                         `json:"location_type"`
	RangeType             string                         `json:"range_type"`
	Ranges                []float64                      `json:"ranges"`
	RouteSearchParameters *routing.RouteSearchParameters `json:"route_search_parameters,omitempty"`
}

// IsochroneRequestDTO is the API response representation of an accepted isochrone request.
type IsochroneRequestDTO struct {
	ID                   string         `json:"id,omitempty"`
	Profile              string         `json:"profile"`
	CalcMethod           string         `json:"calc_method"`
	IncludeIntersections bool           `json:"intersections"`
	Attributes           []string       `json:"attributes,omitempty"`
	Smoothing            *float32       `json:"smoothing,omitempty"`
	Units                string         `json:"units"`
	AreaUnits            string         `json:"area_units"`
	Travellers           []TravellerDTO `json:"travellers"`
}

func toIsochroneRequestDTO(req *isochrone.Request) IsochroneRequestDTO {
	dto := IsochroneRequestDTO{
		ID:                   req.ID(),
		Profile:              req.Profile().String(),
		CalcMethod:           req.CalcMethod(),
		IncludeIntersections: req.IncludeIntersections(),
		Attributes:           req.Attributes(),
		Units:                req.Units().String(),
		AreaUnits:            req.AreaUnits().String(),
	}
	if s, ok := req.SmoothingFactor(); ok {
		dto.Smoothing = &s
	}

	travellers := req.Travellers()
	dto.Travellers = make([]TravellerDTO, len(travellers))
	for i, t := range travellers {
		loc := t.Location()
		dto.Travellers[i] = TravellerDTO{
			ID:                    t.ID(),
			Location:              [2]float64{loc.X, loc.Y},
			LocationType:          t.LocationType(),
			RangeType:             t.RangeType().String(),
			Ranges:                t.Ranges().Values(),
			RouteSearchParameters: t.RouteSearchParameters(),
		}
	}
	return dto
}
