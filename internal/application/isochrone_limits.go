package application

import (
	"fmt"

	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/isochrone"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/routing"
)

// Hard caps applied on top of the profile limits, which treat zero as unlimited.
const (
	maxLocations  = 1000
	maxRangeStops = 1000
)

// checkLocationLimit runs before any location is parsed or built.
func checkLocationLimit(n int, limits routing.Limits) error {
	limit := effectiveLimit(limits.MaximumLocations, maxLocations)
	if n > limit {
		return domain.NewInvalidParameterError("locations",
			fmt.Sprintf("%d locations requested, the maximum is %d", n, limit))
	}
	return nil
}

// checkStopLimit runs before the ranges are expanded.
func checkStopLimit(n int, limits routing.Limits) error {
	limit := effectiveLimit(limits.MaximumIntervals, maxRangeStops)
	if n > limit {
		return domain.NewInvalidParameterError("interval",
			fmt.Sprintf("%d range stops requested, the maximum is %d", n, limit))
	}
	return nil
}

// checkRangeLimit compares the outermost stop with the profile maxima.
// Distances are compared in metres.
func checkRangeLimit(ranges isochrone.Ranges, rangeType isochrone.TravelRangeType, units isochrone.DistanceUnit, limits routing.Limits) error {
	switch rangeType {
	case isochrone.RangeTime:
		if limits.MaximumRangeTime > 0 && ranges.Max() > limits.MaximumRangeTime {
			return domain.NewInvalidParameterError("range",
				fmt.Sprintf("time range %g s exceeds the maximum of %g s", ranges.Max(), limits.MaximumRangeTime))
		}
	case isochrone.RangeDistance:
		metres := units.ToMeters(ranges.Max())
		if limits.MaximumRangeDistance > 0 && metres > limits.MaximumRangeDistance {
			return domain.NewInvalidParameterError("range",
				fmt.Sprintf("distance range %g m exceeds the maximum of %g m", metres, limits.MaximumRangeDistance))
		}
	}
	return nil
}

func effectiveLimit(configured, hardCap int) int {
	if configured > 0 && configured < hardCap {
		return configured
	}
	return hardCap
}
