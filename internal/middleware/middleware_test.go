package middleware

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/model"
	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/service"
)

type stubResolver struct {
	user *model.User
	err  error
}

func (s stubResolver) CurrentUser(context.Context) (*model.User, error) {
	return s.user, s.err
}

func newSessionApp(resolver SessionResolver) *fiber.App {
	logger, _ := logtest.NewNullLogger()
	app := fiber.New()
	app.Get("/me", SessionAuth(resolver, logger), func(c *fiber.Ctx) error {
		return c.SendString(GetUserID(c) + ":" + GetUser(c).Phone)
	})
	return app
}

func TestSessionAuth(t *testing.T) {
	t.Run("logged in", func(t *testing.T) {
		app := newSessionApp(stubResolver{user: &model.User{ID: "uid_1", Phone: "03001234567"}})
		resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "uid_1:03001234567", string(body))
	})

	t.Run("no session", func(t *testing.T) {
		app := newSessionApp(stubResolver{err: service.ErrNoSession})
		resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("store failure", func(t *testing.T) {
		app := newSessionApp(stubResolver{err: errors.New("boom")})
		resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func TestGetUserOutsideSession(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		assert.Nil(t, GetUser(c))
		assert.Equal(t, "", GetUserID(c))
		return c.SendStatus(fiber.StatusNoContent)
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	limiter := NewRateLimiter(1, 2, logger)

	app := fiber.New()
	app.Post("/login", limiter.Handler(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "rate limit exceeded", hook.LastEntry().Message)
}

func TestRateLimiterDisabled(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	limiter := NewRateLimiter(0, 0, logger)

	app := fiber.New()
	app.Post("/login", limiter.Handler(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	for i := 0; i < 20; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}

func TestMetricsPassesThrough(t *testing.T) {
	app := fiber.New()
	app.Use(Metrics())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusTeapot)
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
}
