package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/plantcare-server/internal/model"
)

type registerRequest struct {
	Email     string `json:"email" binding:"required,email,max=256"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type userResponse struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	SubscriptionTier string    `json:"subscriptionTier"`
	MaxPlants        int       `json:"maxPlants"`
	CreatedAt        time.Time `json:"createdAt"`
}

type authResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresAt    time.Time    `json:"expiresAt"`
	User         userResponse `json:"user"`
}

func newUserResponse(p model.UserProfile) userResponse {
	return userResponse{
		ID:               p.ID,
		Email:            p.Email,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		SubscriptionTier: string(p.SubscriptionTier),
		MaxPlants:        p.MaxPlants,
		CreatedAt:        p.CreatedAt,
	}
}

func newAuthResponse(r model.AuthResult) authResponse {
	return authResponse{
		Token:        r.AccessToken,
		RefreshToken: r.RefreshToken,
		ExpiresAt:    r.ExpiresAt,
		User:         newUserResponse(r.User),
	}
}

type createPlantRequest struct {
	Name                     string `json:"name" binding:"required,max=100"`
	Species                  string `json:"species" binding:"max=100"`
	WateringFrequencyDays    int    `json:"wateringFrequencyDays" binding:"omitempty,min=1,max=365"`
	Sunlight                 string `json:"sunlight" binding:"max=50"`
	Location                 string `json:"location" binding:"max=100"`
	Notes                    string `json:"notes" binding:"max=1000"`
	FertilizingFrequencyDays int    `json:"fertilizingFrequencyDays" binding:"omitempty,min=1,max=365"`
}

func (r createPlantRequest) params() model.CreatePlantParams {
	return model.CreatePlantParams{
		Name:                     r.Name,
		Species:                  r.Species,
		WateringFrequencyDays:    r.WateringFrequencyDays,
		Sunlight:                 r.Sunlight,
		Location:                 r.Location,
		Notes:                    r.Notes,
		FertilizingFrequencyDays: r.FertilizingFrequencyDays,
	}
}

type updatePlantRequest struct {
	Name                     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Species                  *string `json:"species" binding:"omitempty,max=100"`
	WateringFrequencyDays    *int    `json:"wateringFrequencyDays" binding:"omitempty,min=1,max=365"`
	Sunlight                 *string `json:"sunlight" binding:"omitempty,max=50"`
	Location                 *string `json:"location" binding:"omitempty,max=100"`
	Notes                    *string `json:"notes" binding:"omitempty,max=1000"`
	FertilizingFrequencyDays *int    `json:"fertilizingFrequencyDays" binding:"omitempty,min=1,max=365"`
}

func (r updatePlantRequest) params() model.UpdatePlantParams {
	return model.UpdatePlantParams{
		Name:                     r.Name,
		Species:                  r.Species,
		WateringFrequencyDays:    r.WateringFrequencyDays,
		Sunlight:                 r.Sunlight,
		Location:                 r.Location,
		Notes:                    r.Notes,
		FertilizingFrequencyDays: r.FertilizingFrequencyDays,
	}
}

type plantResponse struct {
	ID                       uuid.UUID  `json:"id"`
	UserID                   uuid.UUID  `json:"userId"`
	Name                     string     `json:"name"`
	Species                  string     `json:"species"`
	LastWatered              time.Time  `json:"lastWatered"`
	WateringFrequencyDays    int        `json:"wateringFrequencyDays"`
	Sunlight                 string     `json:"sunlight"`
	Location                 string     `json:"location"`
	Notes                    string     `json:"notes"`
	CreatedAt                time.Time  `json:"createdAt"`
	LastFertilized           *time.Time `json:"lastFertilized"`
	FertilizingFrequencyDays int        `json:"fertilizingFrequencyDays"`
	IsActive                 bool       `json:"isActive"`
	HasPhoto                 bool       `json:"hasPhoto"`
}

func newPlantResponse(p model.Plant) plantResponse {
	return plantResponse{
		ID:                       p.ID,
		UserID:                   p.OwnerID,
		Name:                     p.Name,
		Species:                  p.Species,
		LastWatered:              p.LastWatered,
		WateringFrequencyDays:    p.WateringFrequencyDays,
		Sunlight:                 p.Sunlight,
		Location:                 p.Location,
		Notes:                    p.Notes,
		CreatedAt:                p.CreatedAt,
		LastFertilized:           p.LastFertilized,
		FertilizingFrequencyDays: p.FertilizingFrequencyDays,
		IsActive:                 p.IsActive,
		HasPhoto:                 p.PhotoKey != nil,
	}
}

func newPlantsResponse(plants []model.Plant) []plantResponse {
	out := make([]plantResponse, 0, len(plants))
	for _, p := range plants {
		out = append(out, newPlantResponse(p))
	}
	return out
}

type messageResponse struct {
	Message string `json:"message"`
}
