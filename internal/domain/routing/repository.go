package routing

import "context"

// ProfileRepository defines persistence operations for the profile catalogue.
type ProfileRepository interface {
	// FindByProfile returns the settings of a profile or a NotFoundError.
	FindByProfile(ctx context.Context, profile Profile) (*ProfileSettings, error)

	// List returns every configured profile ordered by name.
	List(ctx context.Context) ([]*ProfileSettings, error)

	// Save creates or replaces the settings of a profile.
	Save(ctx context.Context, settings *ProfileSettings) error
}
