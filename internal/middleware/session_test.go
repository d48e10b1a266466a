package middleware

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/database/databasetest"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/dto"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/services"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRequired(t *testing.T) {
	db := databasetest.New(t)
	users := services.NewUserService(db)
	token := uuid.New()
	user, _, err := users.Register(context.Background(), token, dto.CreateUserRequest{Name: "a", Email: "a@x.io"})
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/protected", SessionRequired(users), func(c *fiber.Ctx) error {
		userID, err := session.GetUserID(c)
		if err != nil {
			return err
		}
		return c.SendString(userID.String())
	})

	tests := []struct {
		name   string
		cookie string
		status int
	}{
		{name: "no cookie", status: fiber.StatusUnauthorized},
		{name: "malformed cookie", cookie: "sessionId=nope", status: fiber.StatusUnauthorized},
		{name: "unknown session", cookie: "sessionId=" + uuid.NewString(), status: fiber.StatusUnauthorized},
		{name: "known session", cookie: "sessionId=" + token.String(), status: fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.cookie != "" {
				req.Header.Set("Cookie", tt.cookie)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Cookie", "sessionId="+token.String())
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), string(body))
}

func TestSecurityHeaders(t *testing.T) {
	app := fiber.New()
	app.Use(SecurityHeaders())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
}
