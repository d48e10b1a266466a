// Package session implements cookie-based user identification.
package session

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CookieName is the cookie carrying the session token.
const CookieName = "sessionId"

const userIDKey = "user_id"

var ErrNoSession = errors.New("no session in context")

// NewToken returns a fresh random session token.
func NewToken() uuid.UUID {
	return uuid.New()
}

// TokenFromRequest returns the session token sent by the client. ok is false
// when the cookie is absent or is not a well-formed UUID.
func TokenFromRequest(c *fiber.Ctx) (uuid.UUID, bool) {
	raw := c.Cookies(CookieName)
	if raw == "" {
		return uuid.Nil, false
	}
	token, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return token, true
}

// Cookie builds the site-wide session cookie for token.
func Cookie(token uuid.UUID, maxAge time.Duration, secure bool) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     CookieName,
		Value:    token.String(),
		Path:     "/",
		MaxAge:   int(maxAge / time.Second),
		Expires:  time.Now().Add(maxAge),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// SetUserID attaches the resolved user id to the request.
func SetUserID(c *fiber.Ctx, userID uuid.UUID) {
	c.Locals(userIDKey, userID)
}

// GetUserID returns the user id attached by the session guard.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userID, ok := c.Locals(userIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, ErrNoSession
	}
	return userID, nil
}
