package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/geo"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/routing"
)

// ProfileModel is the GORM model for the routing_profiles table.
type ProfileModel struct {
	Profile              string    `gorm:"type:varchar(32);primaryKey"`
	Enabled              bool      `gorm:"not null"`
	AreaMinX             *float64  `gorm:"type:double precision"`
	AreaMinY             *float64  `gorm:"type:double precision"`
	AreaMaxX             *float64  `gorm:"type:double precision"`
	AreaMaxY             *float64  `gorm:"type:double precision"`
	MaximumLocations     int       `gorm:"not null"`
	MaximumRangeTime     float64   `gorm:"type:double precision;not null"`
	MaximumRangeDistance float64   `gorm:"type:double precision;not null"`
	MaximumIntervals     int       `gorm:"not null"`
	CreatedAt            time.Time `gorm:"type:timestamptz;not null;default:now()"`
	UpdatedAt            time.Time `gorm:"type:timestamptz;not null;default:now()"`
}

func (ProfileModel) TableName() string { return "routing_profiles" }

// GormProfileRepository implements ProfileRepository using GORM.
type GormProfileRepository struct {
	db *gorm.DB
}

func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

func (r *GormProfileRepository) FindByProfile(ctx context.Context, profile routing.Profile) (*routing.ProfileSettings, error) {
	var model ProfileModel
	if err := r.db.WithContext(ctx).Where("profile = ?", profile.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Profile", profile.String())
		}
		return nil, err
	}
	return toProfileDomain(&model), nil
}

func (r *GormProfileRepository) List(ctx context.Context) ([]*routing.ProfileSettings, error) {
	var models []ProfileModel
	if err := r.db.WithContext(ctx).Order("profile ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	profiles := make([]*routing.ProfileSettings, len(models))
	for i := range models {
		profiles[i] = toProfileDomain(&models[i])
	}
	return profiles, nil
}

func (r *GormProfileRepository) Save(ctx context.Context, settings *routing.ProfileSettings) error {
	model := toProfileModel(settings)
	model.UpdatedAt = time.Now().UTC()
	return upsertProfile(r.db.WithContext(ctx), model).Error
}

// upsertProfile inserts the model or overwrites every mutable column of an
// existing row. Columns carry no gorm defaults so zero values such as a
// disabled profile are written as given.
func upsertProfile(db *gorm.DB, model *ProfileModel) *gorm.DB {
	return db.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "profile"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"enabled",
				"area_min_x", "area_min_y", "area_max_x", "area_max_y",
				"maximum_locations", "maximum_range_time", "maximum_range_distance", "maximum_intervals",
				"updated_at",
			}),
		}).
		Create(model)
}

// --- Conversions ---

func toProfileModel(s *routing.ProfileSettings) *ProfileModel {
	m := &ProfileModel{
		Profile:              s.Profile.String(),
		Enabled:              s.Enabled,
		MaximumLocations:     s.Limits.MaximumLocations,
		MaximumRangeTime:     s.Limits.MaximumRangeTime,
		MaximumRangeDistance: s.Limits.MaximumRangeDistance,
		MaximumIntervals:     s.Limits.MaximumIntervals,
	}
	if a := s.ServiceArea; a != nil {
		m.AreaMinX, m.AreaMinY = &a.MinX, &a.MinY
		m.AreaMaxX, m.AreaMaxY = &a.MaxX, &a.MaxY
	}
	return m
}

func toProfileDomain(m *ProfileModel) *routing.ProfileSettings {
	s := &routing.ProfileSettings{
		Profile: routing.Profile(m.Profile),
		Enabled: m.Enabled,
		Limits: routing.Limits{
			MaximumLocations:     m.MaximumLocations,
			MaximumRangeTime:     m.MaximumRangeTime,
			MaximumRangeDistance: m.MaximumRangeDistance,
			MaximumIntervals:     m.MaximumIntervals,
		},
	}
	if m.AreaMinX != nil && m.AreaMinY != nil && m.AreaMaxX != nil && m.AreaMaxY != nil {
		s.ServiceArea = &geo.BoundingBox{
			MinX: *m.AreaMinX,
			MinY: *m.AreaMinY,
			MaxX: *m.AreaMaxX,
			MaxY: *m.AreaMaxY,
		}
	}
	return s
}
