package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/config"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/dto"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/services"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/session"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *services.UserService
	cfg         *config.Config
}

func NewUserHandler(userService *services.UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{userService: userService, cfg: cfg}
}

// Create handles POST /users. A browser without a session cookie gets a new
// one; a browser whose cookie already belongs to a user gets that user back.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	req, err := dto.ParseCreateUser(c.Body())
	if err != nil {
		return err
	}

	token, ok := session.TokenFromRequest(c)
	issued := false
	if !ok {
		token = session.NewToken()
		issued = true
	}

	user, created, err := h.userService.Register(c.UserContext(), token, req)
	if err != nil {
		return err
	}

	if !created {
		return c.JSON(dto.UserEnvelope{User: dto.NewUserResponse(*user)})
	}

	if issued {
		c.Cookie(session.Cookie(token, h.cfg.SessionMaxAge, h.cfg.CookieSecure))
	}
	return c.SendStatus(fiber.StatusCreated)
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUsersEnvelope(users))
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := dto.ParseID("id", c.Params("id"))
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, "User not found")
		}
		return err
	}
	return c.JSON(dto.UserEnvelope{User: dto.NewUserResponse(*user)})
}

// Me handles GET /users/me for the session user.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	user, err := h.userService.Get(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return unauthorized(c)
		}
		return err
	}
	return c.JSON(dto.UserEnvelope{User: dto.NewUserResponse(*user)})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := dto.ParseID("id", c.Params("id"))
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, "User not found")
		}
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "User successfully deleted"})
}
