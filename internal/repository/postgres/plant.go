package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/plantcare-server/internal/model"
)

var _ model.PlantStore = (*PlantRepository)(nil)

const plantColumns = `id, owner_id, name, species, last_watered, watering_frequency_days,
	sunlight, location, notes, created_at, last_fertilized, fertilizing_frequency_days,
	is_active, photo_key`

type PlantRepository struct {
	db *Connection
}

func NewPlantRepository(db *Connection) *PlantRepository {
	return &PlantRepository{db: db}
}

func scanPlant(row rowScanner) (model.Plant, error) {
	var p model.Plant
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Species, &p.LastWatered, &p.WateringFrequencyDays,
		&p.Sunlight, &p.Location, &p.Notes, &p.CreatedAt, &p.LastFertilized, &p.FertilizingFrequencyDays,
		&p.IsActive, &p.PhotoKey,
	)
	return p, err
}

// CreateWithinQuota inserts the plant only if its owner has fewer active
// plants than their quota. The owner row is locked for the duration of the
// transaction, so concurrent creations for one user are serialized.
func (r *PlantRepository) CreateWithinQuota(ctx context.Context, plant model.Plant) (model.Plant, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.Plant{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var maxPlants int
	err = tx.QueryRow(ctx, `SELECT max_plants FROM users WHERE id = $1 FOR UPDATE`, plant.OwnerID).Scan(&maxPlants)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Plant{}, model.ErrNotFound
		}
		return model.Plant{}, fmt.Errorf("failed to lock owner: %w", err)
	}

	var count int
	err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM plants WHERE owner_id = $1 AND is_active`, plant.OwnerID).Scan(&count)
	if err != nil {
		return model.Plant{}, fmt.Errorf("failed to count plants: %w", err)
	}
	if count >= maxPlants {
		return model.Plant{}, model.ErrQuotaExceeded
	}

	query := `INSERT INTO plants (id, owner_id, name, species, last_watered, watering_frequency_days,
			  sunlight, location, notes, created_at, last_fertilized, fertilizing_frequency_days,
			  is_active, photo_key)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			  RETURNING ` + plantColumns

	saved, err := scanPlant(tx.QueryRow(ctx, query,
		plant.ID, plant.OwnerID, plant.Name, plant.Species, plant.LastWatered, plant.WateringFrequencyDays,
		plant.Sunlight, plant.Location, plant.Notes, plant.CreatedAt, plant.LastFertilized, plant.FertilizingFrequencyDays,
		plant.IsActive, plant.PhotoKey,
	))
	if err != nil {
		return model.Plant{}, fmt.Errorf("failed to insert plant: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Plant{}, fmt.Errorf("failed to commit plant: %w", err)
	}

	return saved, nil
}

func (r *PlantRepository) CountActiveByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM plants WHERE owner_id = $1 AND is_active`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count plants: %w", err)
	}
	return count, nil
}

func (r *PlantRepository) GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (model.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants WHERE id = $1 AND owner_id = $2 AND is_active`

	plant, err := scanPlant(r.db.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Plant{}, model.ErrNotFound
		}
		return model.Plant{}, fmt.Errorf("failed to get plant: %w", err)
	}
	return plant, nil
}

func (r *PlantRepository) ListActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants WHERE owner_id = $1 AND is_active ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}
	defer rows.Close()

	plants := make([]model.Plant, 0)
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plant: %w", err)
		}
		plants = append(plants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate plants: %w", err)
	}

	return plants, nil
}

// Update sets the non-nil fields of params.
func (r *PlantRepository) Update(ctx context.Context, id, ownerID uuid.UUID, params model.UpdatePlantParams) error {
	query := `UPDATE plants SET
			  name = COALESCE($3, name),
			  species = COALESCE($4, species),
			  watering_frequency_days = COALESCE($5, watering_frequency_days),
			  sunlight = COALESCE($6, sunlight),
			  location = COALESCE($7, location),
			  notes = COALESCE($8, notes),
			  fertilizing_frequency_days = COALESCE($9, fertilizing_frequency_days)
			  WHERE id = $1 AND owner_id = $2 AND is_active`

	return r.execOwned(ctx, "update plant", query, id, ownerID,
		params.Name, params.Species, params.WateringFrequencyDays, params.Sunlight,
		params.Location, params.Notes, params.FertilizingFrequencyDays)
}

func (r *PlantRepository) SetLastWatered(ctx context.Context, id, ownerID uuid.UUID, at time.Time) error {
	return r.execOwned(ctx, "set last watered",
		`UPDATE plants SET last_watered = $3 WHERE id = $1 AND owner_id = $2 AND is_active`, id, ownerID, at)
}

func (r *PlantRepository) SetLastFertilized(ctx context.Context, id, ownerID uuid.UUID, at time.Time) error {
	return r.execOwned(ctx, "set last fertilized",
		`UPDATE plants SET last_fertilized = $3 WHERE id = $1 AND owner_id = $2 AND is_active`, id, ownerID, at)
}

func (r *PlantRepository) SetPhotoKey(ctx context.Context, id, ownerID uuid.UUID, key string) error {
	return r.execOwned(ctx, "set photo key",
		`UPDATE plants SET photo_key = $3 WHERE id = $1 AND owner_id = $2 AND is_active`, id, ownerID, key)
}

func (r *PlantRepository) SoftDelete(ctx context.Context, id, ownerID uuid.UUID) error {
	return r.execOwned(ctx, "soft delete plant",
		`UPDATE plants SET is_active = FALSE WHERE id = $1 AND owner_id = $2 AND is_active`, id, ownerID)
}

// execOwned runs a statement scoped to one active owned plant and reports
// model.ErrNotFound when it matched nothing.
func (r *PlantRepository) execOwned(ctx context.Context, op, query string, args ...any) error {
	cmd, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
