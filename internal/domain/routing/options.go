package routing

// AvoidFeature is a road feature the route search should not use.
type AvoidFeature string

const (
	AvoidHighways AvoidFeature = "highways"
	AvoidTollways AvoidFeature = "tollways"
	AvoidFerries  AvoidFeature = "ferries"
	AvoidFords    AvoidFeature = "fords"
	AvoidSteps    AvoidFeature = "steps"
)

// IsValid returns true if the feature is recognized.
func (f AvoidFeature) IsValid() bool {
	switch f {
	case AvoidHighways, AvoidTollways, AvoidFerries, AvoidFords, AvoidSteps:
		return true
	}
	return false
}

// AllowedFor reports whether the feature can be avoided with the given profile category.
func (f AvoidFeature) AllowedFor(c Category) bool {
	switch f {
	case AvoidHighways, AvoidTollways:
		return c == CategoryDriving
	case AvoidSteps:
		return c != CategoryDriving
	}
	return true
}

// AvoidBorders restricts crossing of country borders.
type AvoidBorders string

const (
	AvoidBordersAll        AvoidBorders = "all"
	AvoidBordersControlled AvoidBorders = "controlled"
	AvoidBordersNone       AvoidBorders = "none"
)

// IsValid returns true if the border policy is recognized.
func (b AvoidBorders) IsValid() bool {
	switch b {
	case AvoidBordersAll, AvoidBordersControlled, AvoidBordersNone:
		return true
	}
	return false
}

// VehicleType refines the heavy goods vehicle profile.
type VehicleType string

const (
	VehicleHGV          VehicleType = "hgv"
	VehicleBus          VehicleType = "bus"
	VehicleAgricultural VehicleType = "agricultural"
	VehicleDelivery     VehicleType = "delivery"
	VehicleForestry     VehicleType = "forestry"
	VehicleGoods        VehicleType = "goods"
	VehicleUnknown      VehicleType = "unknown"
)

// IsValid returns true if the vehicle type is recognized.
func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleHGV, VehicleBus, VehicleAgricultural, VehicleDelivery, VehicleForestry, VehicleGoods, VehicleUnknown:
		return true
	}
	return false
}

// RouteOptions are the optional routing restrictions a client may attach to a request.
type RouteOptions struct {
	AvoidFeatures  []AvoidFeature `json:"avoid_features,omitempty"`
	AvoidBorders   AvoidBorders   `json:"avoid_borders,omitempty"`
	AvoidCountries []int          `json:"avoid_countries,omitempty"`
	VehicleType    VehicleType    `json:"vehicle_type,omitempty"`
}
