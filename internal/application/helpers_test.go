package application

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/isochrone"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/routing"
)

type memoryProfiles struct {
	mu       sync.Mutex
	profiles map[routing.Profile]*routing.ProfileSettings
	err      error
	finds    int
}

func newMemoryProfiles(settings ...*routing.ProfileSettings) *memoryProfiles {
	m := &memoryProfiles{profiles: make(map[routing.Profile]*routing.ProfileSettings)}
	for _, s := range settings {
		m.profiles[s.Profile] = s
	}
	return m
}

func (m *memoryProfiles) FindByProfile(_ context.Context, p routing.Profile) (*routing.ProfileSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finds++
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.profiles[p]
	if !ok {
		return nil, domain.NewNotFoundError("Profile", p.String())
	}
	return s, nil
}

func (m *memoryProfiles) List(context.Context) ([]*routing.ProfileSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*routing.ProfileSettings, 0, len(m.profiles))
	for _, s := range m.profiles {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b *routing.ProfileSettings) int {
		if a.Profile < b.Profile {
			return -1
		}
		if a.Profile > b.Profile {
			return 1
		}
		return 0
	})
	return out, nil
}

func (m *memoryProfiles) Save(_ context.Context, s *routing.ProfileSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.profiles[s.Profile] = s
	return nil
}

type recordingDispatcher struct {
	mu       sync.Mutex
	requests []*isochrone.Request
	err      error
}

func (d *recordingDispatcher) Dispatch(_ context.Context, req *isochrone.Request) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	d.requests = append(d.requests, req)
	return nil
}

func defaultProfiles() *memoryProfiles {
	return newMemoryProfiles(
		&routing.ProfileSettings{Profile: routing.ProfileDrivingCar, Enabled: true},
		&routing.ProfileSettings{Profile: routing.ProfileDrivingHGV, Enabled: true},
		&routing.ProfileSettings{
			Profile: routing.ProfileFootWalking,
			Enabled: true,
			Limits: routing.Limits{
				MaximumLocations:     2,
				MaximumRangeTime:     3600,
				MaximumRangeDistance: 20000,
				MaximumIntervals:     5,
			},
		},
	)
}

func newTestConverter(profiles routing.ProfileRepository) *IsochroneConverter {
	return NewIsochroneConverter(routing.NewCatalogueBuilder(profiles))
}

func newTestLogger() *zap.Logger {
	return zap.NewNop()
}

func ptr[T any](v T) *T {
	return &v
}

type countingBuilder struct {
	mu    sync.Mutex
	calls int
}

func (b *countingBuilder) Build(_ context.Context, q routing.Query) (*routing.RouteSearchParameters, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	return &routing.RouteSearchParameters{Profile: q.Profile, Category: q.Profile.Category()}, nil
}
