package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	apiErrors "github.com/dtroode/plantcare-server/internal/api/errors"
	"github.com/dtroode/plantcare-server/internal/logger"
	"github.com/dtroode/plantcare-server/internal/model"
	"github.com/google/uuid"
)

type Plant struct {
	plantStore model.PlantStore
	userStore  model.UserStore
	storage    model.Storage
	logger     *logger.Logger
	now        func() time.Time
}

func NewPlant(
	plantStore model.PlantStore,
	userStore model.UserStore,
	storage model.Storage,
	logger *logger.Logger,
) *Plant {
	return &Plant{
		plantStore: plantStore,
		userStore:  userStore,
		storage:    storage,
		logger:     logger,
		now:        time.Now,
	}
}

// CanAddPlant reports whether the user is below their plant quota.
// Unknown users cannot add plants.
func (s *Plant) CanAddPlant(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get user by id: %w", err)
	}

	return s.hasCapacity(ctx, user)
}

func (s *Plant) hasCapacity(ctx context.Context, user model.User) (bool, error) {
	count, err := s.plantStore.CountActiveByOwner(ctx, user.ID)
	if err != nil {
		return false, fmt.Errorf("failed to count plants: %w", err)
	}
	return count < user.MaxPlants, nil
}

// CreatePlant inserts an active plant for the user if their quota allows it.
// Missing frequencies fall back to the watering and fertilizing defaults.
func (s *Plant) CreatePlant(ctx context.Context, userID uuid.UUID, params model.CreatePlantParams) (model.Plant, error) {
	if params.WateringFrequencyDays == 0 {
		params.WateringFrequencyDays = model.DefaultWateringFrequencyDays
	}
	if params.FertilizingFrequencyDays == 0 {
		params.FertilizingFrequencyDays = model.DefaultFertilizingFrequencyDays
	}
	if params.WateringFrequencyDays < 0 || params.FertilizingFrequencyDays < 0 {
		return model.Plant{}, apiErrors.NewErrValidation("frequencies must be positive")
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Plant{}, apiErrors.NewErrUserNotFound(userID.String())
	}
	if err != nil {
		return model.Plant{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	ok, err := s.hasCapacity(ctx, user)
	if err != nil {
		return model.Plant{}, err
	}
	if !ok {
		s.logger.Info("Plant service: quota reached",
			"user_id", userID,
			"max_plants", user.MaxPlants)
		return model.Plant{}, apiErrors.NewErrQuotaExceeded(user.MaxPlants)
	}

	now := s.now().UTC()
	plant := model.Plant{
		ID:                       uuid.New(),
		OwnerID:                  userID,
		Name:                     params.Name,
		Species:                  params.Species,
		LastWatered:              now,
		WateringFrequencyDays:    params.WateringFrequencyDays,
		Sunlight:                 params.Sunlight,
		Location:                 params.Location,
		Notes:                    params.Notes,
		CreatedAt:                now,
		FertilizingFrequencyDays: params.FertilizingFrequencyDays,
		IsActive:                 true,
	}

	// The precheck above is advisory. The store recounts while holding a lock
	// on the owner row and rejects the insert once the quota is reached.
	plant, err = s.plantStore.CreateWithinQuota(ctx, plant)
	if errors.Is(err, model.ErrQuotaExceeded) {
		return model.Plant{}, apiErrors.NewErrQuotaExceeded(user.MaxPlants)
	}
	if err != nil {
		s.logger.Error("Plant service: failed to create plant",
			"user_id", userID,
			"error", err.Error())
		return model.Plant{}, fmt.Errorf("failed to create plant: %w", err)
	}

	s.logger.Info("Plant service: plant created",
		"user_id", userID,
		"plant_id", plant.ID)

	return plant, nil
}

func (s *Plant) ListPlants(ctx context.Context, userID uuid.UUID) ([]model.Plant, error) {
	plants, err := s.plantStore.ListActiveByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}
	return plants, nil
}

// GetPlant returns the plant only if it is active and owned by userID.
func (s *Plant) GetPlant(ctx context.Context, userID, plantID uuid.UUID) (model.Plant, error) {
	plant, err := s.plantStore.GetByIDAndOwner(ctx, plantID, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Plant{}, apiErrors.NewErrPlantNotFound(plantID.String())
	}
	if err != nil {
		return model.Plant{}, fmt.Errorf("failed to get plant: %w", err)
	}
	return plant, nil
}

// UpdatePlant applies a partial update. Watering and fertilizing timestamps
// and the active flag are never changed here.
func (s *Plant) UpdatePlant(ctx context.Context, userID, plantID uuid.UUID, params model.UpdatePlantParams) error {
	if params.WateringFrequencyDays != nil && *params.WateringFrequencyDays <= 0 {
		return apiErrors.NewErrValidation("wateringFrequencyDays must be positive")
	}
	if params.FertilizingFrequencyDays != nil && *params.FertilizingFrequencyDays <= 0 {
		return apiErrors.NewErrValidation("fertilizingFrequencyDays must be positive")
	}

	if params.Empty() {
		_, err := s.GetPlant(ctx, userID, plantID)
		return err
	}

	err := s.plantStore.Update(ctx, plantID, userID, params)
	return s.mutationResult(err, plantID, "update plant")
}

func (s *Plant) WaterPlant(ctx context.Context, userID, plantID uuid.UUID) error {
	err := s.plantStore.SetLastWatered(ctx, plantID, userID, s.now().UTC())
	return s.mutationResult(err, plantID, "water plant")
}

func (s *Plant) FertilizePlant(ctx context.Context, userID, plantID uuid.UUID) error {
	err := s.plantStore.SetLastFertilized(ctx, plantID, userID, s.now().UTC())
	return s.mutationResult(err, plantID, "fertilize plant")
}

// RemovePlant soft-deletes the plant. Removed plants cannot be restored.
func (s *Plant) RemovePlant(ctx context.Context, userID, plantID uuid.UUID) error {
	err := s.plantStore.SoftDelete(ctx, plantID, userID)
	if err == nil {
		s.logger.Info("Plant service: plant removed",
			"user_id", userID,
			"plant_id", plantID)
	}
	return s.mutationResult(err, plantID, "remove plant")
}

func (s *Plant) PlantsNeedingWater(ctx context.Context, userID uuid.UUID) ([]model.Plant, error) {
	today := s.now()
	return s.filterPlants(ctx, userID, func(p model.Plant) bool {
		return dueOn(p.LastWatered, p.WateringFrequencyDays, today)
	})
}

// PlantsNeedingFertilizer includes plants that were never fertilized.
func (s *Plant) PlantsNeedingFertilizer(ctx context.Context, userID uuid.UUID) ([]model.Plant, error) {
	today := s.now()
	return s.filterPlants(ctx, userID, func(p model.Plant) bool {
		if p.LastFertilized == nil {
			return true
		}
		return dueOn(*p.LastFertilized, p.FertilizingFrequencyDays, today)
	})
}

// UploadPhoto stores an image for the plant and records its object key.
func (s *Plant) UploadPhoto(ctx context.Context, userID, plantID uuid.UUID, r io.Reader, size int64, contentType string) error {
	if !strings.HasPrefix(contentType, "image/") {
		return apiErrors.NewErrUnsupportedMediaType(contentType)
	}

	plant, err := s.GetPlant(ctx, userID, plantID)
	if err != nil {
		return err
	}

	key := photoKey(plant.OwnerID, plant.ID)
	if err := s.storage.Upload(ctx, key, r, size, contentType); err != nil {
		s.logger.Error("Plant service: failed to upload photo",
			"plant_id", plantID,
			"error", err.Error())
		return fmt.Errorf("failed to upload photo: %w", err)
	}

	err = s.plantStore.SetPhotoKey(ctx, plantID, userID, key)
	if err != nil && plant.PhotoKey == nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Warn("Plant service: failed to delete orphaned photo",
				"key", key,
				"error", delErr.Error())
		}
	}
	return s.mutationResult(err, plantID, "set photo key")
}

// GetPhoto opens the plant's photo. The caller must close the reader.
func (s *Plant) GetPhoto(ctx context.Context, userID, plantID uuid.UUID) (io.ReadCloser, model.ObjectInfo, error) {
	plant, err := s.GetPlant(ctx, userID, plantID)
	if err != nil {
		return nil, model.ObjectInfo{}, err
	}
	if plant.PhotoKey == nil {
		return nil, model.ObjectInfo{}, apiErrors.NewErrPhotoNotFound(plantID)
	}

	info, err := s.storage.Stat(ctx, *plant.PhotoKey)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.ObjectInfo{}, apiErrors.NewErrPhotoNotFound(plantID)
	}
	if err != nil {
		return nil, model.ObjectInfo{}, fmt.Errorf("failed to stat photo: %w", err)
	}

	rc, err := s.storage.Download(ctx, *plant.PhotoKey)
	if err != nil {
		return nil, model.ObjectInfo{}, fmt.Errorf("failed to download photo: %w", err)
	}
	return rc, info, nil
}

func (s *Plant) filterPlants(ctx context.Context, userID uuid.UUID, keep func(model.Plant) bool) ([]model.Plant, error) {
	plants, err := s.ListPlants(ctx, userID)
	if err != nil {
		return nil, err
	}

	due := make([]model.Plant, 0, len(plants))
	for _, p := range plants {
		if keep(p) {
			due = append(due, p)
		}
	}
	return due, nil
}

func (s *Plant) mutationResult(err error, plantID uuid.UUID, op string) error {
	if errors.Is(err, model.ErrNotFound) {
		return apiErrors.NewErrPlantNotFound(plantID.String())
	}
	if err != nil {
		s.logger.Error("Plant service: failed to "+op,
			"plant_id", plantID,
			"error", err.Error())
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	return nil
}

func photoKey(ownerID, plantID uuid.UUID) string {
	return fmt.Sprintf("plants/%s/%s", ownerID, plantID)
}
