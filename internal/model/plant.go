package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultWateringFrequencyDays is used when a plant is created without one.
	DefaultWateringFrequencyDays = 7
	// DefaultFertilizingFrequencyDays is used when a plant is created without one.
	DefaultFertilizingFrequencyDays = 30
)

// PlantStore defines persistence operations for plants. Every lookup and
// mutation is scoped to the owner and to active plants.
type PlantStore interface {
	CreateWithinQuota(ctx context.Context, plant Plant) (Plant, error)
	CountActiveByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (Plant, error)
	ListActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]Plant, error)
	Update(ctx context.Context, id, ownerID uuid.UUID, params UpdatePlantParams) error
	SetLastWatered(ctx context.Context, id, ownerID uuid.UUID, at time.Time) error
	SetLastFertilized(ctx context.Context, id, ownerID uuid.UUID, at time.Time) error
	SetPhotoKey(ctx context.Context, id, ownerID uuid.UUID, key string) error
	SoftDelete(ctx context.Context, id, ownerID uuid.UUID) error
}

// Plant represents a stored plant entity.
type Plant struct {
	ID                       uuid.UUID
	OwnerID                  uuid.UUID
	Name                     string
	Species                  string
	LastWatered              time.Time
	WateringFrequencyDays    int
	Sunlight                 string
	Location                 string
	Notes                    string
	CreatedAt                time.Time
	LastFertilized           *time.Time
	FertilizingFrequencyDays int
	IsActive                 bool
	PhotoKey                 *string
}

// CreatePlantParams contains parameters to create a plant.
type CreatePlantParams struct {
	Name                     string
	Species                  string
	WateringFrequencyDays    int
	Sunlight                 string
	Location                 string
	Notes                    string
	FertilizingFrequencyDays int
}

// UpdatePlantParams is a partial update; nil fields are left unchanged.
type UpdatePlantParams struct {
	Name                     *string
	Species                  *string
	WateringFrequencyDays    *int
	Sunlight                 *string
	Location                 *string
	Notes                    *string
	FertilizingFrequencyDays *int
}

// Empty reports whether the update changes nothing.
func (p UpdatePlantParams) Empty() bool {
	return p.Name == nil && p.Species == nil && p.WateringFrequencyDays == nil &&
		p.Sunlight == nil && p.Location == nil && p.Notes == nil && p.FertilizingFrequencyDays == nil
}
