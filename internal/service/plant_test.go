package service

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/plantcare-server/internal/mocks"
	"github.com/dtroode/plantcare-server/internal/model"
	"github.com/dtroode/plantcare-server/internal/testutil"
)

var fixedNow = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

type plantDeps struct {
	plants  *servermocks.PlantStore
	users   *servermocks.UserStore
	storage *servermocks.Storage
}

func newPlantService(t *testing.T) (*Plant, plantDeps) {
	d := plantDeps{
		plants:  servermocks.NewPlantStore(t),
		users:   servermocks.NewUserStore(t),
		storage: servermocks.NewStorage(t),
	}
	s := NewPlant(d.plants, d.users, d.storage, testutil.MakeNoopLogger())
	s.now = func() time.Time { return fixedNow }
	return s, d
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestPlant_CanAddPlant(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name  string
		setup func(d plantDeps)
		want  bool
	}{
		{
			name: "below quota",
			setup: func(d plantDeps) {
				d.users.On("GetByID", ctx, userID).Return(model.User{ID: userID, MaxPlants: 5}, nil).Once()
				d.plants.On("CountActiveByOwner", ctx, userID).Return(4, nil).Once()
			},
			want: true,
		},
		{
			name: "at quota",
			setup: func(d plantDeps) {
				d.users.On("GetByID", ctx, userID).Return(model.User{ID: userID, MaxPlants: 5}, nil).Once()
				d.plants.On("CountActiveByOwner", ctx, userID).Return(5, nil).Once()
			},
			want: false,
		},
		{
			name: "unknown user",
			setup: func(d plantDeps) {
				d.users.On("GetByID", ctx, userID).Return(model.User{}, model.ErrNotFound).Once()
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, d := newPlantService(t)
			tt.setup(d)

			ok, err := s.CanAddPlant(ctx, userID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestPlant_CreatePlant_AppliesDefaults(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	s, d := newPlantService(t)

	d.users.On("GetByID", ctx, userID).Return(model.User{ID: userID, MaxPlants: 5}, nil).Once()
	d.plants.On("CountActiveByOwner", ctx, userID).Return(0, nil).Once()
	d.plants.On("CreateWithinQuota", ctx, mock.MatchedBy(func(p model.Plant) bool {
		return p.OwnerID == userID &&
			p.Name == "Fern" &&
			p.WateringFrequencyDays == 7 &&
			p.FertilizingFrequencyDays == 30 &&
			p.IsActive &&
			p.LastWatered.Equal(fixedNow) &&
			p.CreatedAt.Equal(fixedNow) &&
			p.LastFertilized == nil
	})).Return(func(_ context.Context, p model.Plant) (model.Plant, error) { return p, nil }).Once()

	plant, err := s.CreatePlant(ctx, userID, model.CreatePlantParams{Name: "Fern"})
	require.NoError(t, err)
	assert.Equal(t, userID, plant.OwnerID)
	assert.NotEqual(t, uuid.Nil, plant.ID)
}

func TestPlant_CreatePlant_QuotaExceeded(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("precheck", func(t *testing.T) {
		s, d := newPlantService(t)
		d.users.On("GetByID", ctx, userID).Return(model.User{ID: userID, MaxPlants: 5}, nil).Once()
		d.plants.On("CountActiveByOwner", ctx, userID).Return(5, nil).Once()

		_, err := s.CreatePlant(ctx, userID, model.CreatePlantParams{Name: "Fern"})
		requireAPIStatus(t, err, http.StatusBadRequest)
		assert.Contains(t, err.Error(), "5")
	})

	t.Run("lost race in store", func(t *testing.T) {
		s, d := newPlantService(t)
		d.users.On("GetByID", ctx, userID).Return(model.User{ID: userID, MaxPlants: 5}, nil).Once()
		d.plants.On("CountActiveByOwner", ctx, userID).Return(4, nil).Once()
		d.plants.On("CreateWithinQuota", ctx, mock.Anything).Return(model.Plant{}, model.ErrQuotaExceeded).Once()

		_, err := s.CreatePlant(ctx, userID, model.CreatePlantParams{Name: "Fern"})
		requireAPIStatus(t, err, http.StatusBadRequest)
	})
}

func TestPlant_CreatePlant_Rejections(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("negative frequency", func(t *testing.T) {
		s, _ := newPlantService(t)

		_, err := s.CreatePlant(ctx, userID, model.CreatePlantParams{Name: "Fern", WateringFrequencyDays: -1})
		requireAPIStatus(t, err, http.StatusBadRequest)
	})

	t.Run("unknown user", func(t *testing.T) {
		s, d := newPlantService(t)
		d.users.On("GetByID", ctx, userID).Return(model.User{}, model.ErrNotFound).Once()

		_, err := s.CreatePlant(ctx, userID, model.CreatePlantParams{Name: "Fern"})
		requireAPIStatus(t, err, http.StatusNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		s, d := newPlantService(t)
		d.users.On("GetByID", ctx, userID).Return(model.User{ID: userID, MaxPlants: 5}, nil).Once()
		d.plants.On("CountActiveByOwner", ctx, userID).Return(0, nil).Once()
		d.plants.On("CreateWithinQuota", ctx, mock.Anything).Return(model.Plant{}, assert.AnError).Once()

		_, err := s.CreatePlant(ctx, userID, model.CreatePlantParams{Name: "Fern"})
		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestPlant_GetPlant_NotFound(t *testing.T) {
	ctx := context.Background()
	userID, plantID := uuid.New(), uuid.New()
	s, d := newPlantService(t)

	d.plants.On("GetByIDAndOwner", ctx, plantID, userID).Return(model.Plant{}, model.ErrNotFound).Once()

	_, err := s.GetPlant(ctx, userID, plantID)
	requireAPIStatus(t, err, http.StatusNotFound)
}

func TestPlant_UpdatePlant(t *testing.T) {
	ctx := context.Background()
	userID, plantID := uuid.New(), uuid.New()

	t.Run("partial update", func(t *testing.T) {
		s, d := newPlantService(t)
		params := model.UpdatePlantParams{Name: strPtr("Fern"), WateringFrequencyDays: intPtr(3)}
		d.plants.On("Update", ctx, plantID, userID, params).Return(nil).Once()

		require.NoError(t, s.UpdatePlant(ctx, userID, plantID, params))
	})

	t.Run("empty update checks ownership", func(t *testing.T) {
		s, d := newPlantService(t)
		d.plants.On("GetByIDAndOwner", ctx, plantID, userID).Return(model.Plant{}, model.ErrNotFound).Once()

		err := s.UpdatePlant(ctx, userID, plantID, model.UpdatePlantParams{})
		requireAPIStatus(t, err, http.StatusNotFound)
	})

	t.Run("zero frequency", func(t *testing.T) {
		s, _ := newPlantService(t)

		err := s.UpdatePlant(ctx, userID, plantID, model.UpdatePlantParams{FertilizingFrequencyDays: intPtr(0)})
		requireAPIStatus(t, err, http.StatusBadRequest)
	})

	t.Run("foreign plant", func(t *testing.T) {
		s, d := newPlantService(t)
		params := model.UpdatePlantParams{Notes: strPtr("x")}
		d.plants.On("Update", ctx, plantID, userID, params).Return(model.ErrNotFound).Once()

		err := s.UpdatePlant(ctx, userID, plantID, params)
		requireAPIStatus(t, err, http.StatusNotFound)
	})
}

func TestPlant_WaterAndFertilize(t *testing.T) {
	ctx := context.Background()
	userID, plantID := uuid.New(), uuid.New()
	s, d := newPlantService(t)

	d.plants.On("SetLastWatered", ctx, plantID, userID, fixedNow).Return(nil).Once()
	d.plants.On("SetLastFertilized", ctx, plantID, userID, fixedNow).Return(model.ErrNotFound).Once()

	require.NoError(t, s.WaterPlant(ctx, userID, plantID))
	requireAPIStatus(t, s.FertilizePlant(ctx, userID, plantID), http.StatusNotFound)
}

func TestPlant_RemovePlant(t *testing.T) {
	ctx := context.Background()
	userID, plantID := uuid.New(), uuid.New()
	s, d := newPlantService(t)

	d.plants.On("SoftDelete", ctx, plantID, userID).Return(nil).Once()
	d.plants.On("SoftDelete", ctx, plantID, userID).Return(model.ErrNotFound).Once()

	require.NoError(t, s.RemovePlant(ctx, userID, plantID))
	requireAPIStatus(t, s.RemovePlant(ctx, userID, plantID), http.StatusNotFound)
}

func TestPlant_PlantsNeedingWater(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	s, d := newPlantService(t)

	due := model.Plant{ID: uuid.New(), Name: "due", LastWatered: fixedNow.AddDate(0, 0, -7), WateringFrequencyDays: 7}
	overdue := model.Plant{ID: uuid.New(), Name: "overdue", LastWatered: fixedNow.AddDate(0, 0, -30), WateringFrequencyDays: 7}
	fresh := model.Plant{ID: uuid.New(), Name: "fresh", LastWatered: fixedNow.AddDate(0, 0, -6), WateringFrequencyDays: 7}
	d.plants.On("ListActiveByOwner", ctx, userID).Return([]model.Plant{due, fresh, overdue}, nil).Once()

	plants, err := s.PlantsNeedingWater(ctx, userID)
	require.NoError(t, err)
	require.Len(t, plants, 2)
	assert.Equal(t, "due", plants[0].Name)
	assert.Equal(t, "overdue", plants[1].Name)
}

func TestPlant_PlantsNeedingFertilizer(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	s, d := newPlantService(t)

	recent := fixedNow.AddDate(0, 0, -10)
	old := fixedNow.AddDate(0, 0, -31)
	never := model.Plant{Name: "never", FertilizingFrequencyDays: 30}
	fresh := model.Plant{Name: "fresh", LastFertilized: &recent, FertilizingFrequencyDays: 30}
	stale := model.Plant{Name: "stale", LastFertilized: &old, FertilizingFrequencyDays: 30}
	d.plants.On("ListActiveByOwner", ctx, userID).Return([]model.Plant{never, fresh, stale}, nil).Once()

	plants, err := s.PlantsNeedingFertilizer(ctx, userID)
	require.NoError(t, err)
	require.Len(t, plants, 2)
	assert.Equal(t, "never", plants[0].Name)
	assert.Equal(t, "stale", plants[1].Name)
}

func TestPlant_ListPlants_Empty(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	s, d := newPlantService(t)

	d.plants.On("ListActiveByOwner", ctx, userID).Return([]model.Plant{}, nil).Once()

	plants, err := s.ListPlants(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, plants)
}

func TestPlant_UploadPhoto(t *testing.T) {
	ctx := context.Background()
	userID, plantID := uuid.New(), uuid.New()
	key := "plants/" + userID.String() + "/" + plantID.String()
	plant := model.Plant{ID: plantID, OwnerID: userID}

	t.Run("stores and records key", func(t *testing.T) {
		s, d := newPlantService(t)
		body := bytes.NewReader([]byte("png"))
		d.plants.On("GetByIDAndOwner", ctx, plantID, userID).Return(plant, nil).Once()
		d.storage.On("Upload", ctx, key, body, int64(3), "image/png").Return(nil).Once()
		d.plants.On("SetPhotoKey", ctx, plantID, userID, key).Return(nil).Once()

		require.NoError(t, s.UploadPhoto(ctx, userID, plantID, body, 3, "image/png"))
	})

	t.Run("rejects non-image", func(t *testing.T) {
		s, _ := newPlantService(t)

		err := s.UploadPhoto(ctx, userID, plantID, strings.NewReader("x"), 1, "text/plain")
		requireAPIStatus(t, err, http.StatusUnsupportedMediaType)
	})

	t.Run("deletes orphan when key update fails", func(t *testing.T) {
		s, d := newPlantService(t)
		d.plants.On("GetByIDAndOwner", ctx, plantID, userID).Return(plant, nil).Once()
		d.storage.On("Upload", ctx, key, mock.Anything, int64(1), "image/jpeg").Return(nil).Once()
		d.plants.On("SetPhotoKey", ctx, plantID, userID, key).Return(assert.AnError).Once()
		d.storage.On("Delete", ctx, key).Return(nil).Once()

		err := s.UploadPhoto(ctx, userID, plantID, strings.NewReader("x"), 1, "image/jpeg")
		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("upload failure", func(t *testing.T) {
		s, d := newPlantService(t)
		d.plants.On("GetByIDAndOwner", ctx, plantID, userID).Return(plant, nil).Once()
		d.storage.On("Upload", ctx, key, mock.Anything, int64(1), "image/jpeg").Return(assert.AnError).Once()

		err := s.UploadPhoto(ctx, userID, plantID, strings.NewReader("x"), 1, "image/jpeg")
		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestPlant_GetPhoto(t *testing.T) {
	ctx := context.Background()
	userID, plantID := uuid.New(), uuid.New()
	key := "plants/key"

	t.Run("streams photo", func(t *testing.T) {
		s, d := newPlantService(t)
		d.plants.On("GetByIDAndOwner", ctx, plantID, userID).Return(model.Plant{ID: plantID, PhotoKey: &key}, nil).Once()
		d.storage.On("Stat", ctx, key).Return(model.ObjectInfo{Size: 3, ContentType: "image/png"}, nil).Once()
		d.storage.On("Download", ctx, key).Return(io.NopCloser(strings.NewReader("png")), nil).Once()

		rc, info, err := s.GetPhoto(ctx, userID, plantID)
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "png", string(data))
		assert.Equal(t, "image/png", info.ContentType)
	})

	t.Run("no photo", func(t *testing.T) {
		s, d := newPlantService(t)
		d.plants.On("GetByIDAndOwner", ctx, plantID, userID).Return(model.Plant{ID: plantID}, nil).Once()

		_, _, err := s.GetPhoto(ctx, userID, plantID)
		requireAPIStatus(t, err, http.StatusNotFound)
	})

	t.Run("object missing", func(t *testing.T) {
		s, d := newPlantService(t)
		d.plants.On("GetByIDAndOwner", ctx, plantID, userID).Return(model.Plant{ID: plantID, PhotoKey: &key}, nil).Once()
		d.storage.On("Stat", ctx, key).Return(model.ObjectInfo{}, model.ErrNotFound).Once()

		_, _, err := s.GetPhoto(ctx, userID, plantID)
		requireAPIStatus(t, err, http.StatusNotFound)
	})
}
