package middleware

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/dto"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/services"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/session"
	"github.com/gofiber/fiber/v2"
)

// SessionRequired resolves the sessionId cookie to a user and stores the
// user id for downstream handlers. Unknown or missing sessions get a 401.
func SessionRequired(users *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := session.TokenFromRequest(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		user, err := users.GetBySession(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Error: true, Message: "Unauthorized",
				})
			}
			return err
		}

		session.SetUserID(c, user.ID)
		return c.Next()
	}
}
