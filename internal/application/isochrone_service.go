package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/isochrone"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/routing"
)

// Dispatcher hands finished isochrone requests to the engine.
// Dispatch takes ownership of the request; callers must not use it afterwards.
type Dispatcher interface {
	Dispatch(ctx context.Context, req *isochrone.Request) error
}

// IsochroneService is the application service orchestrating isochrone requests.
type IsochroneService struct {
	converter  *IsochroneConverter
	profiles   routing.ProfileRepository
	dispatcher Dispatcher
	logger     *zap.Logger
}

// NewIsochroneService creates a new IsochroneService.
func NewIsochroneService(
	converter *IsochroneConverter,
	profiles routing.ProfileRepository,
	dispatcher Dispatcher,
	logger *zap.Logger,
) *IsochroneService {
	return &IsochroneService{
		converter:  converter,
		profiles:   profiles,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RequestIsochrones loads the profile settings once, converts the public request
// within the profile limits and dispatches it to the engine.
func (s *IsochroneService) RequestIsochrones(ctx context.Context, profile string, req IsochronesRequest) (*IsochroneRequestDTO, error) {
	p, err := routing.ParseProfile(profile)
	if err != nil {
		return nil, domain.NewUnsupportedProfileError(profile, "unknown profile")
	}
	req.Profile = p

	settings, err := routing.LoadSettings(ctx, s.profiles, p)
	if err != nil {
		return nil, err
	}
	converted, err := s.converter.ConvertWithSettings(ctx, req, settings)
	if err != nil {
		return nil, err
	}

	result := toIsochroneRequestDTO(converted)
	if err := s.dispatcher.Dispatch(ctx, converted); err != nil {
		return nil, fmt.Errorf("failed to dispatch isochrone request: %w", err)
	}

	s.logger.Info("isochrone request dispatched",
		zap.String("request_id", result.ID),
		zap.String("profile", result.Profile),
		zap.Int("travellers", len(result.Travellers)),
	)
	return &result, nil
}
