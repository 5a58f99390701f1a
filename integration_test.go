//go:build integration

package main_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/application"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/geo"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/routing"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/events"
)

// TestRequestIsochrones_PublishesEvent verifies that an accepted request is
// converted against the database catalogue and handed to the engine topic
// as a single isochrone.requested event.
func TestRequestIsochrones_PublishesEvent(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupIsochroneStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()

	seedProfile(t, stack.Profiles, &routing.ProfileSettings{
		Profile:     routing.ProfileDrivingCar,
		Enabled:     true,
		ServiceArea: &geo.BoundingBox{MinX: 5, MinY: 47, MaxX: 15, MaxY: 55},
		Limits:      routing.Limits{MaximumLocations: 5, MaximumRangeTime: 3600},
	})

	interval := 300.0
	dto, err := stack.Service.RequestIsochrones(context.Background(), "driving-car", application.IsochronesRequest{
		ID:        "integration-1",
		Locations: [][]float64{{9.676034, 50.409675}, {8.681495, 49.41461}},
		Range:     []float64{900},
		Interval:  &interval,
	})
	require.NoError(t, err)
	require.Len(t, dto.Travellers, 2)

	ce := consumeOneEvent(t, infra.KafkaBrokers, events.TopicIsochroneRequests,
		events.EventIsochroneRequested, 15*time.Second)

	var evt events.IsochroneRequestedEvent
	require.NoError(t, ce.ParseData(&evt))
	assert.Equal(t, "integration-1", evt.RequestID)
	assert.Equal(t, "driving-car", evt.Profile)
	require.Len(t, evt.Travellers, 2)
	assert.Equal(t, []float64{300, 600, 900}, evt.Travellers[0].Ranges)
	assert.Equal(t, [2]float64{8.681495, 49.41461}, evt.Travellers[1].Location)
}

// TestRequestIsochrones_RespectsCatalogue verifies that profile settings stored
// in PostgreSQL decide which requests are accepted.
func TestRequestIsochrones_RespectsCatalogue(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupIsochroneStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()

	seedProfile(t, stack.Profiles, &routing.ProfileSettings{
		Profile: routing.ProfileFootWalking,
		Enabled: true,
		Limits:  routing.Limits{MaximumRangeTime: 600},
	})

	req := application.IsochronesRequest{
		Locations: [][]float64{{8.681495, 49.41461}},
		Range:     []float64{1200},
	}
	_, err := stack.Service.RequestIsochrones(context.Background(), "foot-walking", req)
	var invalid *domain.InvalidParameterError
	require.True(t, errors.As(err, &invalid), "got %v", err)
	assert.Equal(t, "range", invalid.Field)

	// Disabling the profile upserts the existing row.
	seedProfile(t, stack.Profiles, &routing.ProfileSettings{Profile: routing.ProfileFootWalking, Enabled: false})
	req.Range = []float64{300}
	_, err = stack.Service.RequestIsochrones(context.Background(), "foot-walking", req)
	var unsupported *domain.UnsupportedProfileError
	assert.True(t, errors.As(err, &unsupported), "got %v", err)

	all, err := stack.Profiles.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].Enabled)

	// A profile inserted as disabled stays disabled.
	seedProfile(t, stack.Profiles, &routing.ProfileSettings{Profile: routing.ProfileWheelchair, Enabled: false})
	wheelchair, err := stack.Profiles.FindByProfile(context.Background(), routing.ProfileWheelchair)
	require.NoError(t, err)
	assert.False(t, wheelchair.Enabled)
}
