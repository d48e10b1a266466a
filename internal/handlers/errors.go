package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/dto"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/session"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders every error that escapes a handler as dto.ErrorResponse.
// Validation errors become 400s with field details; anything that is not a
// *fiber.Error is logged and reported as a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Invalid request",
			Details: verr.Fields,
		})
	}

	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	// 5xx messages are replaced; the cause goes to the log and Sentry.
	if code >= fiber.StatusInternalServerError {
		attrs := []any{
			"method", c.Method(),
			"path", c.Path(),
			"error", err.Error(),
		}
		if rid, ok := c.Locals("requestid").(string); ok {
			attrs = append(attrs, "request_id", rid)
		}
		if userID, idErr := session.GetUserID(c); idErr == nil {
			attrs = append(attrs, "user_id", userID.String())
		}
		slog.Error("unhandled server error", attrs...)

		if hub := sentryfiber.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{
		Error:   true,
		Message: message,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}
