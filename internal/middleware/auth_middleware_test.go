package middleware_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"go-business-ws/internal/middleware"
	"go-business-ws/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	users map[string]*model.User
}

func (s stubValidator) ValidateToken(token string) (*model.User, error) {
	if u, ok := s.users[token]; ok {
		return u, nil
	}
	return nil, errors.New("invalid or expired token")
}

func newApp() *fiber.App {
	v := stubValidator{users: map[string]*model.User{
		"admin-token": {ID: uuid.New(), Email: "a@example.com", FullName: "Admin", Role: model.RoleAdmin},
		"staff-token": {ID: uuid.New(), Email: "s@example.com", FullName: "Staff", Role: model.RoleStaff},
	}}

	app := fiber.New()
	protected := app.Group("", middleware.RequireAuth(v))
	protected.Get("/whoami", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_name").(string))
	})
	protected.Delete("/things", middleware.RequireRole(model.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(204)
	})
	return app
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", 401},
		{"wrong scheme", "Basic abc", 401},
		{"unknown token", "Bearer nope", 401},
		{"valid token", "Bearer staff-token", 200},
		{"lowercase scheme", "bearer admin-token", 200},
	}

	app := newApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestRequireRole(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest("DELETE", "/things", nil)
	req.Header.Set("Authorization", "Bearer staff-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	req = httptest.NewRequest("DELETE", "/things", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
}
