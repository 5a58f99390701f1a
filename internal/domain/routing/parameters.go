package routing

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/geo"
)

// RouteSearchParameters are the profile-specific settings the engine applies to one traveller.
type RouteSearchParameters struct {
	Profile        Profile        `json:"profile"`
	Category       Category       `json:"category"`
	VehicleType    VehicleType    `json:"vehicle_type,omitempty"`
	AvoidFeatures  []AvoidFeature `json:"avoid_features,omitempty"`
	AvoidBorders   AvoidBorders   `json:"avoid_borders,omitempty"`
	AvoidCountries []int          `json:"avoid_countries,omitempty"`
}

// Query is the input of a ParameterBuilder.
// Settings, when set, are used instead of looking the profile up again.
type Query struct {
	Profile  Profile
	Location geo.Coordinate
	Options  *RouteOptions
	Settings *ProfileSettings
}

// ParameterBuilder constructs route search parameters for a traveller.
// Implementations must be safe for concurrent use.
type ParameterBuilder interface {
	Build(ctx context.Context, q Query) (*RouteSearchParameters, error)
}

// CatalogueBuilder builds route search parameters from the profile catalogue.
type CatalogueBuilder struct {
	profiles ProfileRepository
}

// NewCatalogueBuilder creates a new CatalogueBuilder.
func NewCatalogueBuilder(profiles ProfileRepository) *CatalogueBuilder {
	return &CatalogueBuilder{profiles: profiles}
}

// Build validates the query against the profile's settings and returns fresh parameters.
func (b *CatalogueBuilder) Build(ctx context.Context, q Query) (*RouteSearchParameters, error) {
	if !q.Profile.IsValid() {
		return nil, domain.NewUnsupportedProfileError(q.Profile.String(), "unknown profile")
	}

	settings := q.Settings
	if settings == nil {
		var err error
		if settings, err = LoadSettings(ctx, b.profiles, q.Profile); err != nil {
			return nil, err
		}
	}
	if !settings.Enabled {
		return nil, domain.NewUnsupportedProfileError(q.Profile.String(), "profile is disabled")
	}
	if !settings.Serves(q.Location) {
		return nil, domain.NewUnsupportedProfileError(q.Profile.String(),
			fmt.Sprintf("location (%g, %g) is outside the service area", q.Location.X, q.Location.Y))
	}

	params := &RouteSearchParameters{
		Profile:  q.Profile,
		Category: q.Profile.Category(),
	}
	if q.Options == nil {
		return params, nil
	}
	if err := applyOptions(params, q.Options); err != nil {
		return nil, err
	}
	return params, nil
}

// LoadSettings fetches the settings of a profile, reporting an unconfigured
// profile as UnsupportedProfileError.
func LoadSettings(ctx context.Context, profiles ProfileRepository, profile Profile) (*ProfileSettings, error) {
	settings, err := profiles.FindByProfile(ctx, profile)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return nil, domain.NewUnsupportedProfileError(profile.String(), "profile is not configured")
		}
		return nil, fmt.Errorf("failed to load profile settings: %w", err)
	}
	return settings, nil
}

func applyOptions(params *RouteSearchParameters, opts *RouteOptions) error {
	for _, f := range opts.AvoidFeatures {
		if !f.IsValid() {
			return domain.NewInvalidParameterError("options.avoid_features", fmt.Sprintf("unknown feature %q", f))
		}
		if !f.AllowedFor(params.Category) {
			return domain.NewInvalidParameterError("options.avoid_features",
				fmt.Sprintf("feature %q cannot be avoided with profile %s", f, params.Profile))
		}
	}
	if opts.AvoidBorders != "" && !opts.AvoidBorders.IsValid() {
		return domain.NewInvalidParameterError("options.avoid_borders", fmt.Sprintf("unknown value %q", opts.AvoidBorders))
	}
	for _, c := range opts.AvoidCountries {
		if c <= 0 {
			return domain.NewInvalidParameterError("options.avoid_countries", fmt.Sprintf("invalid country id %d", c))
		}
	}
	if opts.VehicleType != "" {
		if !opts.VehicleType.IsValid() {
			return domain.NewInvalidParameterError("options.vehicle_type", fmt.Sprintf("unknown vehicle type %q", opts.VehicleType))
		}
		if params.Profile != ProfileDrivingHGV {
			return domain.NewInvalidParameterError("options.vehicle_type", "vehicle type is only supported by driving-hgv")
		}
	}

	params.VehicleType = opts.VehicleType
	params.AvoidFeatures = slices.Clone(opts.AvoidFeatures)
	params.AvoidBorders = opts.AvoidBorders
	params.AvoidCountries = slices.Clone(opts.AvoidCountries)
	return nil
}
