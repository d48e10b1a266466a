package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/dto"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/services"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/session"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/telemetry"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MealHandler struct {
	mealService *services.MealService
}

func NewMealHandler(mealService *services.MealService) *MealHandler {
	return &MealHandler{mealService: mealService}
}

// Create handles POST /meals.
func (h *MealHandler) Create(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	req, err := dto.ParseCreateMeal(c.Body())
	if err != nil {
		return err
	}

	if _, err := h.mealService.Create(c.UserContext(), userID, req); err != nil {
		return err
	}
	telemetry.MealCreated(req.IsOnDiet)

	return c.SendStatus(fiber.StatusCreated)
}

// List handles GET /meals - the session user's meals in insertion order.
func (h *MealHandler) List(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	meals, err := h.mealService.List(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewMealsEnvelope(meals))
}

func (h *MealHandler) Get(c *fiber.Ctx) error {
	userID, mealID, err := h.scope(c)
	if err != nil {
		return err
	}

	meal, err := h.mealService.Get(c.UserContext(), userID, mealID)
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			return notFound(c, "Meal not found")
		}
		return err
	}
	return c.JSON(dto.MealEnvelope{Meal: dto.NewMealResponse(*meal)})
}

// Update handles PUT /meals/:mealId. Only supplied fields change.
func (h *MealHandler) Update(c *fiber.Ctx) error {
	userID, mealID, err := h.scope(c)
	if err != nil {
		return err
	}

	req, err := dto.ParseUpdateMeal(c.Body())
	if err != nil {
		return err
	}

	if err := h.mealService.Update(c.UserContext(), userID, mealID, req); err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			return notFound(c, "Meal not found")
		}
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *MealHandler) Delete(c *fiber.Ctx) error {
	userID, mealID, err := h.scope(c)
	if err != nil {
		return err
	}

	if err := h.mealService.Delete(c.UserContext(), userID, mealID); err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			return notFound(c, "Meal not found")
		}
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Metrics handles GET /meals/metrics.
func (h *MealHandler) Metrics(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	metrics, err := h.mealService.Metrics(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(metrics)
}

// scope returns the session user and the :mealId path parameter.
func (h *MealHandler) scope(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	userID, err := session.GetUserID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	mealID, err := dto.ParseID("mealId", c.Params("mealId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return userID, mealID, nil
}
