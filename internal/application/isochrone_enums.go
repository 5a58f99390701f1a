package application

// LocationType states whether a location is where travel starts or ends.
type LocationType string

const (
	LocationStart       LocationType = "start"
	LocationDestination LocationType = "destination"
)

// IsValid returns true if the location type is recognized.
func (l LocationType) IsValid() bool {
	switch l {
	case LocationStart, LocationDestination:
		return true
	}
	return false
}

// RangeType states whether ranges are travel times or distances.
type RangeType string

const (
	RangeTypeTime     RangeType = "time"
	RangeTypeDistance RangeType = "distance"
)

// IsValid returns true if the range type is recognized.
func (r RangeType) IsValid() bool {
	switch r {
	case RangeTypeTime, RangeTypeDistance:
		return true
	}
	return false
}

// Units is a distance unit as spelled by API clients.
type Units string

const (
	UnitsMetres     Units = "m"
	UnitsKilometres Units = "km"
	UnitsMiles      Units = "mi"
)

// IsValid returns true if the unit is recognized.
func (u Units) IsValid() bool {
	switch u {
	case UnitsMetres, UnitsKilometres, UnitsMiles:
		return true
	}
	return false
}

// CalculationMethod selects how isochrone polygons are built.
type CalculationMethod string

const (
	CalcConcaveBalls CalculationMethod = "concaveballs"
	CalcGrid         CalculationMethod = "grid"
)

// IsValid returns true if the calculation method is recognized.
func (c CalculationMethod) IsValid() bool {
	switch c {
	case CalcConcaveBalls, CalcGrid:
		return true
	}
	return false
}

// Attribute is an additional value computed for every isochrone.
type Attribute string

const (
	AttributeArea            Attribute = "area"
	AttributeReachFactor     Attribute = "reachfactor"
	AttributeTotalPopulation Attribute = "total_pop"
)

// IsValid returns true if the attribute is recognized.
func (a Attribute) IsValid() bool {
	switch a {
	case AttributeArea, AttributeReachFactor, AttributeTotalPopulation:
		return true
	}
	return false
}
