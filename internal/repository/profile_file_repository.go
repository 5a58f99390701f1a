package repository

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/routing"
)

type profileCatalogue struct {
	Profiles []routing.ProfileSettings `yaml:"profiles"`
}

// FileProfileRepository serves the profile catalogue from a YAML file.
// Saved settings live in memory only and are lost on restart.
type FileProfileRepository struct {
	mu       sync.RWMutex
	profiles map[routing.Profile]*routing.ProfileSettings
}

// LoadFileProfileRepository reads the catalogue at path.
func LoadFileProfileRepository(path string) (*FileProfileRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile catalogue: %w", err)
	}
	return ParseProfileCatalogue(data)
}

// ParseProfileCatalogue builds a repository from YAML catalogue content.
func ParseProfileCatalogue(data []byte) (*FileProfileRepository, error) {
	var catalogue profileCatalogue
	if err := yaml.Unmarshal(data, &catalogue); err != nil {
		return nil, fmt.Errorf("failed to parse profile catalogue: %w", err)
	}

	repo := &FileProfileRepository{profiles: make(map[routing.Profile]*routing.ProfileSettings, len(catalogue.Profiles))}
	for i := range catalogue.Profiles {
		s := catalogue.Profiles[i]
		if !s.Profile.IsValid() {
			return nil, fmt.Errorf("profile catalogue entry %d: unknown profile %q", i, s.Profile)
		}
		if _, dup := repo.profiles[s.Profile]; dup {
			return nil, fmt.Errorf("profile catalogue entry %d: duplicate profile %q", i, s.Profile)
		}
		repo.profiles[s.Profile] = &s
	}
	return repo, nil
}

func (r *FileProfileRepository) FindByProfile(_ context.Context, profile routing.Profile) (*routing.ProfileSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.profiles[profile]
	if !ok {
		return nil, domain.NewNotFoundError("Profile", profile.String())
	}
	return s.Clone(), nil
}

func (r *FileProfileRepository) List(context.Context) ([]*routing.ProfileSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*routing.ProfileSettings, 0, len(r.profiles))
	for _, s := range r.profiles {
		out = append(out, s.Clone())
	}
	slices.SortFunc(out, func(a, b *routing.ProfileSettings) int {
		return strings.Compare(a.Profile.String(), b.Profile.String())
	})
	return out, nil
}

func (r *FileProfileRepository) Save(_ context.Context, settings *routing.ProfileSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles[settings.Profile] = settings.Clone()
	return nil
}
