package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apiErrors "github.com/dtroode/plantcare-server/internal/api/errors"
	"github.com/dtroode/plantcare-server/internal/logger"
	"github.com/dtroode/plantcare-server/internal/model"
)

// PlantService defines plant lifecycle and reminder operations.
type PlantService interface {
	CreatePlant(ctx context.Context, userID uuid.UUID, params model.CreatePlantParams) (model.Plant, error)
	ListPlants(ctx context.Context, userID uuid.UUID) ([]model.Plant, error)
	GetPlant(ctx context.Context, userID, plantID uuid.UUID) (model.Plant, error)
	UpdatePlant(ctx context.Context, userID, plantID uuid.UUID, params model.UpdatePlantParams) error
	WaterPlant(ctx context.Context, userID, plantID uuid.UUID) error
	FertilizePlant(ctx context.Context, userID, plantID uuid.UUID) error
	RemovePlant(ctx context.Context, userID, plantID uuid.UUID) error
	PlantsNeedingWater(ctx context.Context, userID uuid.UUID) ([]model.Plant, error)
	PlantsNeedingFertilizer(ctx context.Context, userID uuid.UUID) ([]model.Plant, error)
	UploadPhoto(ctx context.Context, userID, plantID uuid.UUID, reader io.Reader, size int64, contentType string) error
	GetPhoto(ctx context.Context, userID, plantID uuid.UUID) (io.ReadCloser, model.ObjectInfo, error)
}

// Plant handles the /api/plant endpoints.
type Plant struct {
	plantService   PlantService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewPlant creates a new Plant handler.
func NewPlant(plantService PlantService, contextManager model.ContextManager, logger *logger.Logger) *Plant {
	return &Plant{
		plantService:   plantService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Plant) Ping(c *gin.Context) {
	c.String(http.StatusOK, "Ping successful")
}

func (h *Plant) List(c *gin.Context) {
	h.list(c, h.plantService.ListPlants)
}

func (h *Plant) NeedingWater(c *gin.Context) {
	h.list(c, h.plantService.PlantsNeedingWater)
}

func (h *Plant) NeedingFertilizer(c *gin.Context) {
	h.list(c, h.plantService.PlantsNeedingFertilizer)
}

func (h *Plant) list(c *gin.Context, fetch func(context.Context, uuid.UUID) ([]model.Plant, error)) {
	userID, ok := callerID(c, h.contextManager)
	if !ok {
		return
	}

	plants, err := fetch(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPlantsResponse(plants))
}

func (h *Plant) Get(c *gin.Context) {
	userID, plantID, ok := h.target(c)
	if !ok {
		return
	}

	plant, err := h.plantService.GetPlant(c.Request.Context(), userID, plantID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPlantResponse(plant))
}

// Create adds a plant and points Location at it.
func (h *Plant) Create(c *gin.Context) {
	userID, ok := callerID(c, h.contextManager)
	if !ok {
		return
	}

	var req createPlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	plant, err := h.plantService.CreatePlant(c.Request.Context(), userID, req.params())
	if err != nil {
		handleError(c, err)
		return
	}

	h.logger.Debug("Plant handler: plant created",
		"user_id", userID,
		"plant_id", plant.ID)

	c.Header("Location", "/api/plant/"+plant.ID.String())
	c.JSON(http.StatusCreated, newPlantResponse(plant))
}

func (h *Plant) Update(c *gin.Context) {
	userID, plantID, ok := h.target(c)
	if !ok {
		return
	}

	var req updatePlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	if err := h.plantService.UpdatePlant(c.Request.Context(), userID, plantID, req.params()); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Plant) Water(c *gin.Context) {
	h.act(c, h.plantService.WaterPlant, "Plant watered successfully")
}

func (h *Plant) Fertilize(c *gin.Context) {
	h.act(c, h.plantService.FertilizePlant, "Plant fertilized successfully")
}

func (h *Plant) act(c *gin.Context, do func(context.Context, uuid.UUID, uuid.UUID) error, message string) {
	userID, plantID, ok := h.target(c)
	if !ok {
		return
	}

	if err := do(c.Request.Context(), userID, plantID); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: message})
}

func (h *Plant) Delete(c *gin.Context) {
	userID, plantID, ok := h.target(c)
	if !ok {
		return
	}

	if err := h.plantService.RemovePlant(c.Request.Context(), userID, plantID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadPhoto stores the raw request body as the plant's photo.
func (h *Plant) UploadPhoto(c *gin.Context) {
	userID, plantID, ok := h.target(c)
	if !ok {
		return
	}

	err := h.plantService.UploadPhoto(c.Request.Context(), userID, plantID,
		c.Request.Body, c.Request.ContentLength, c.ContentType())
	if err != nil {
		h.handlePhotoError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Plant) GetPhoto(c *gin.Context) {
	userID, plantID, ok := h.target(c)
	if !ok {
		return
	}

	rc, info, err := h.plantService.GetPhoto(c.Request.Context(), userID, plantID)
	if err != nil {
		handleError(c, err)
		return
	}
	defer rc.Close()

	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, info.Size, contentType, rc, nil)
}

func (h *Plant) handlePhotoError(c *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		handleBindError(c, err)
		return
	}
	handleError(c, err)
}

// target resolves the caller and the plant id path parameter. Malformed ids
// are reported as missing plants.
func (h *Plant) target(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := callerID(c, h.contextManager)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	raw := c.Param("id")
	plantID, err := uuid.Parse(raw)
	if err != nil {
		handleError(c, apiErrors.NewErrPlantNotFound(raw))
		return uuid.Nil, uuid.Nil, false
	}

	return userID, plantID, true
}
