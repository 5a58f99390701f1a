package application

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/geo"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/isochrone"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/routing"
)

// IsochroneConverter turns public isochrone requests into engine requests.
// It holds no mutable state and may be shared between goroutines.
type IsochroneConverter struct {
	builder routing.ParameterBuilder
}

// NewIsochroneConverter creates a new IsochroneConverter.
func NewIsochroneConverter(builder routing.ParameterBuilder) *IsochroneConverter {
	return &IsochroneConverter{builder: builder}
}

// Convert builds an engine request with one traveller per location.
// Only the hard caps on locations and range stops apply; profile settings are
// looked up by the parameter builder for every location.
func (c *IsochroneConverter) Convert(ctx context.Context, req IsochronesRequest) (*isochrone.Request, error) {
	return c.ConvertWithSettings(ctx, req, nil)
}

// ConvertWithSettings builds an engine request using already loaded profile
// settings. The profile limits are checked before ranges are expanded or any
// traveller is built. The first invalid field aborts the conversion; no
// partial request is returned.
func (c *IsochroneConverter) ConvertWithSettings(ctx context.Context, req IsochronesRequest, settings *routing.ProfileSettings) (*isochrone.Request, error) {
	var limits routing.Limits
	if settings != nil {
		limits = settings.Limits
	}
	out := isochrone.NewRequest(req.ID, req.Profile)

	if req.CalcMethod != "" {
		method, err := convertCalcMethod(req.CalcMethod)
		if err != nil {
			return nil, err
		}
		out.SetCalcMethod(method)
	}
	if req.Intersections != nil {
		out.SetIncludeIntersections(*req.Intersections)
	}
	if req.Smoothing != nil {
		smoothing, err := convertSmoothing(*req.Smoothing)
		if err != nil {
			return nil, err
		}
		if err := out.SetSmoothingFactor(smoothing); err != nil {
			return nil, err
		}
	}
	if req.Attributes != nil {
		attributes, err := convertAttributes(req.Attributes)
		if err != nil {
			return nil, err
		}
		out.SetAttributes(attributes)
	}
	if req.RangeUnits != "" {
		unit, err := convertRangeUnit(req.RangeUnits)
		if err != nil {
			return nil, err
		}
		out.SetUnits(unit)
	}
	if req.AreaUnits != "" {
		unit, err := convertAreaUnit(req.AreaUnits)
		if err != nil {
			return nil, err
		}
		out.SetAreaUnits(unit)
	}

	if len(req.Locations) == 0 {
		return nil, domain.NewInvalidParameterError("locations", "at least one location is required")
	}
	if err := checkLocationLimit(len(req.Locations), limits); err != nil {
		return nil, err
	}

	ranges, err := expandRequestRanges(req.Range, req.Interval, limits)
	if err != nil {
		return nil, err
	}

	rangeType := isochrone.RangeTime
	if req.RangeType != "" {
		if rangeType, err = convertRangeType(req.RangeType); err != nil {
			return nil, err
		}
	}
	if err := checkRangeLimit(ranges, rangeType, out.Units(), limits); err != nil {
		return nil, err
	}
	locationType := string(LocationStart)
	if req.LocationType != "" {
		if locationType, err = convertLocationType(req.LocationType); err != nil {
			return nil, err
		}
	}

	for i, pair := range req.Locations {
		location, err := convertSingleCoordinate(fmt.Sprintf("locations[%d]", i), pair)
		if err != nil {
			return nil, err
		}
		params, err := c.builder.Build(ctx, routing.Query{
			Profile:  req.Profile,
			Location: location,
			Options:  req.Options,
			Settings: settings,
		})
		if err != nil {
			return nil, err
		}
		out.AddTraveller(isochrone.NewTraveller(strconv.Itoa(i), location, locationType, rangeType, ranges, params))
	}

	return out, nil
}

// expandRequestRanges validates the raw range boundaries and expands them once for all travellers.
// The number of stops is checked against the limits before anything is allocated.
func expandRequestRanges(values []float64, interval *float64, limits routing.Limits) (isochrone.Ranges, error) {
	if len(values) == 0 {
		return isochrone.Ranges{}, domain.NewInvalidParameterError("range", "at least one range value is required")
	}
	for _, v := range values {
		if v < 0 {
			return isochrone.Ranges{}, domain.NewInvalidParameterError("range", fmt.Sprintf("range values must not be negative, got %g", v))
		}
	}
	var step float64
	if interval != nil {
		if *interval < 0 {
			return isochrone.Ranges{}, domain.NewInvalidParameterError("interval", fmt.Sprintf("interval must not be negative, got %g", *interval))
		}
		step = *interval
	}
	if err := checkStopLimit(isochrone.CountRangeStops(values, step), limits); err != nil {
		return isochrone.Ranges{}, err
	}
	return isochrone.ExpandRanges(values, step), nil
}

func convertLocationType(t LocationType) (string, error) {
	switch t {
	case LocationStart:
		return "start", nil
	case LocationDestination:
		return "destination", nil
	}
	return "", domain.NewInvalidParameterError("location_type", fmt.Sprintf("unknown location type %q", t))
}

func convertRangeType(t RangeType) (isochrone.TravelRangeType, error) {
	switch t {
	case RangeTypeTime:
		return isochrone.RangeTime, nil
	case RangeTypeDistance:
		return isochrone.RangeDistance, nil
	}
	return 0, domain.NewInvalidParameterError("range_type", fmt.Sprintf("unknown range type %q", t))
}

func convertAreaUnit(u Units) (isochrone.DistanceUnit, error) {
	return convertUnits("area_units", u)
}

func convertRangeUnit(u Units) (isochrone.DistanceUnit, error) {
	return convertUnits("units", u)
}

func convertUnits(field string, u Units) (isochrone.DistanceUnit, error) {
	switch u {
	case UnitsMetres:
		return isochrone.Meters, nil
	case UnitsKilometres:
		return isochrone.Kilometers, nil
	case UnitsMiles:
		return isochrone.Miles, nil
	}
	return 0, domain.NewInvalidParameterError(field, fmt.Sprintf("unknown unit %q", u))
}

func convertCalcMethod(m CalculationMethod) (string, error) {
	switch m {
	case CalcConcaveBalls:
		return isochrone.CalcMethodConcaveBalls, nil
	case CalcGrid:
		return isochrone.CalcMethodGrid, nil
	}
	return "", domain.NewInvalidParameterError("calc_method", fmt.Sprintf("unknown calculation method %q", m))
}

func convertAttributes(attributes []Attribute) ([]string, error) {
	labels := make([]string, len(attributes))
	for i, a := range attributes {
		switch a {
		case AttributeArea:
			labels[i] = "area"
		case AttributeReachFactor:
			labels[i] = "reachfactor"
		case AttributeTotalPopulation:
			labels[i] = "total_pop"
		default:
			return nil, domain.NewInvalidParameterError("attributes", fmt.Sprintf("unknown attribute %q", a))
		}
	}
	return labels, nil
}

func convertSmoothing(v float64) (float32, error) {
	if v < isochrone.MinSmoothing || v > isochrone.MaxSmoothing {
		return 0, domain.NewInvalidParameterError("smoothing", "smoothing must be between 0 and 100")
	}
	return float32(v), nil
}

func convertSingleCoordinate(field string, pair []float64) (geo.Coordinate, error) {
	if len(pair) != 2 {
		return geo.Coordinate{}, domain.NewInvalidParameterError(field,
			fmt.Sprintf("coordinate must have exactly 2 values, got %d", len(pair)))
	}
	return geo.Coordinate{X: pair[0], Y: pair[1]}, nil
}
