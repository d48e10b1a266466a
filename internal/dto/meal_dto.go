package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/models"
	"github.com/google/uuid"
)

type createMealBody struct {
	Name        *string `json:"name" validate:"required,max=255"`
	Description *string `json:"description" validate:"required,max=2000"`
	IsOnDiet    *bool   `json:"isOnDiet" validate:"required"`
}

// CreateMealRequest is the validated body of POST /meals.
type CreateMealRequest struct {
	Name        string
	Description string
	IsOnDiet    bool
}

func ParseCreateMeal(body []byte) (CreateMealRequest, error) {
	var raw createMealBody
	if err := decode(body, &raw); err != nil {
		return CreateMealRequest{}, err
	}
	return CreateMealRequest{
		Name:        *raw.Name,
		Description: *raw.Description,
		IsOnDiet:    *raw.IsOnDiet,
	}, nil
}

// UpdateMealRequest is the validated body of PUT /meals/:mealId. Nil fields
// are left unchanged.
type UpdateMealRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	IsOnDiet    *bool   `json:"isOnDiet"`
}

func ParseUpdateMeal(body []byte) (UpdateMealRequest, error) {
	var req UpdateMealRequest
	if err := decode(body, &req); err != nil {
		return UpdateMealRequest{}, err
	}
	return req, nil
}

type MealResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IsOnDiet    bool       `json:"isOnDiet"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

func NewMealResponse(m models.Meal) MealResponse {
	return MealResponse{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		IsOnDiet:    m.IsOnDiet,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type MealEnvelope struct {
	Meal MealResponse `json:"meal"`
}

type MealsEnvelope struct {
	Meals []MealResponse `json:"meals"`
}

func NewMealsEnvelope(meals []models.Meal) MealsEnvelope {
	out := make([]MealResponse, len(meals))
	for i, m := range meals {
		out[i] = NewMealResponse(m)
	}
	return MealsEnvelope{Meals: out}
}

// MetricsResponse summarizes a user's diet adherence.
type MetricsResponse struct {
	TotalMeals              int `json:"totalMeals"`
	NumberOfMealsInDiet     int `json:"numberOfMealsInDiet"`
	NumberOfMealsOutOfDiet  int `json:"numberOfMealsOutOfDiet"`
	MealsInDietBestSequence int `json:"mealsInDietBestSequence"`
}
