package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/geo"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/routing"
)

// UpdateProfileRequest is the request DTO for replacing the settings of a routing profile.
type UpdateProfileRequest struct {
	Enabled     bool             `json:"enabled"`
	ServiceArea *geo.BoundingBox `json:"service_area"`
	Limits      routing.Limits   `json:"limits"`
}

// ProfileService implements use cases for profile catalogue administration.
type ProfileService struct {
	repo   routing.ProfileRepository
	logger *zap.Logger
}

// NewProfileService creates a new ProfileService.
func NewProfileService(repo routing.ProfileRepository, logger *zap.Logger) *ProfileService {
	return &ProfileService{repo: repo, logger: logger}
}

// ListProfiles returns every configured profile.
func (s *ProfileService) ListProfiles(ctx context.Context) ([]*routing.ProfileSettings, error) {
	profiles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// GetProfile returns the settings of a single profile.
func (s *ProfileService) GetProfile(ctx context.Context, profile string) (*routing.ProfileSettings, error) {
	p, err := routing.ParseProfile(profile)
	if err != nil {
		return nil, domain.NewUnsupportedProfileError(profile, "unknown profile")
	}
	return s.repo.FindByProfile(ctx, p)
}

// UpdateProfile creates or replaces the settings of a profile.
func (s *ProfileService) UpdateProfile(ctx context.Context, profile string, req UpdateProfileRequest) (*routing.ProfileSettings, error) {
	p, err := routing.ParseProfile(profile)
	if err != nil {
		return nil, domain.NewUnsupportedProfileError(profile, "unknown profile")
	}
	if err := validateProfileUpdate(req); err != nil {
		return nil, err
	}

	settings := &routing.ProfileSettings{
		Profile:     p,
		Enabled:     req.Enabled,
		ServiceArea: req.ServiceArea,
		Limits:      req.Limits,
	}
	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	s.logger.Info("profile updated",
		zap.String("profile", p.String()),
		zap.Bool("enabled", settings.Enabled),
	)
	return settings, nil
}

func validateProfileUpdate(req UpdateProfileRequest) error {
	if area := req.ServiceArea; area != nil {
		if area.MinX > area.MaxX || area.MinY > area.MaxY {
			return domain.NewInvalidParameterError("service_area", "minimum corner must not exceed maximum corner")
		}
	}
	l := req.Limits
	if l.MaximumLocations < 0 || l.MaximumIntervals < 0 || l.MaximumRangeTime < 0 || l.MaximumRangeDistance < 0 {
		return domain.NewInvalidParameterError("limits", "limits must not be negative")
	}
	return nil
}
