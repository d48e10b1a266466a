package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/dto"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrMealNotFound = errors.New("meal not found")

type MealService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db, now: time.Now}
}

const createAttempts = 3

// Create appends a meal to the user's history. Seq is the next value of the
// user's counter; a concurrent insert taking the same value is retried.
func (s *MealService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateMealRequest) (*models.Meal, error) {
	var meal models.Meal
	var err error
	for attempt := 0; attempt < createAttempts; attempt++ {
		meal = models.Meal{
			ID:          uuid.New(),
			UserID:      userID,
			Name:        req.Name,
			Description: req.Description,
			IsOnDiet:    req.IsOnDiet,
			CreatedAt:   s.now(),
		}
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var last int64
			if err := tx.Model(&models.Meal{}).
				Scopes(OwnedBy(userID)).
				Select("COALESCE(MAX(seq), 0)").
				Scan(&last).Error; err != nil {
				return err
			}
			meal.Seq = last + 1
			return tx.Create(&meal).Error
		})
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create meal: %w", err)
	}
	return &meal, nil
}

// List returns the user's meals in insertion order.
func (s *MealService) List(ctx context.Context, userID uuid.UUID) ([]models.Meal, error) {
	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Scopes(OwnedBy(userID)).
		Order("created_at ASC, seq ASC").
		Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	return meals, nil
}

func (s *MealService) Get(ctx context.Context, userID, mealID uuid.UUID) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.WithContext(ctx).
		Scopes(OwnedBy(userID)).
		First(&meal, "id = ?", mealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, fmt.Errorf("failed to get meal: %w", err)
	}
	return &meal, nil
}

// Update applies the supplied fields and always stamps updated_at, even when
// no field was supplied.
func (s *MealService) Update(ctx context.Context, userID, mealID uuid.UUID, req dto.UpdateMealRequest) error {
	if _, err := s.Get(ctx, userID, mealID); err != nil {
		return err
	}

	changes := map[string]interface{}{
		"updated_at": s.now(),
	}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.IsOnDiet != nil {
		changes["is_on_diet"] = *req.IsOnDiet
	}

	result := s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Scopes(OwnedBy(userID)).
		Where("id = ?", mealID).
		Updates(changes)
	if result.Error != nil {
		return fmt.Errorf("failed to update meal: %w", result.Error)
	}
	// Deleted between the lookup and the write.
	if result.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

func (s *MealService) Delete(ctx context.Context, userID, mealID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Scopes(OwnedBy(userID)).
		Where("id = ?", mealID).
		Delete(&models.Meal{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete meal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

// Metrics aggregates the user's meal history in listing order.
func (s *MealService) Metrics(ctx context.Context, userID uuid.UUID) (dto.MetricsResponse, error) {
	var flags []bool
	if err := s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Scopes(OwnedBy(userID)).
		Order("created_at ASC, seq ASC").
		Pluck("is_on_diet", &flags).Error; err != nil {
		return dto.MetricsResponse{}, fmt.Errorf("failed to load meals for metrics: %w", err)
	}
	return ComputeMetrics(flags), nil
}
