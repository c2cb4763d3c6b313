package middleware

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/model"
	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/service"
)

const (
	UserKey   = "user"
	UserIDKey = "user_id"
)

// SessionResolver is the part of the user service the session middleware needs.
type SessionResolver interface {
	CurrentUser(ctx context.Context) (*model.User, error)
}

// SessionAuth rejects requests when no user is logged in and exposes the
// session user through Locals.
func SessionAuth(users SessionResolver, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := users.CurrentUser(c.Context())
		if err != nil {
			if errors.Is(err, service.ErrNoSession) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			log.WithError(err).Error("failed to resolve session")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to resolve session",
			})
		}

		c.Locals(UserKey, user)
		c.Locals(UserIDKey, user.ID)

		return c.Next()
	}
}

// GetUser returns the session user set by SessionAuth.
func GetUser(c *fiber.Ctx) *model.User {
	user, ok := c.Locals(UserKey).(*model.User)
	if !ok {
		return nil
	}
	return user
}

// GetUserID returns the session user id, or "" outside SessionAuth.
func GetUserID(c *fiber.Ctx) string {
	id, ok := c.Locals(UserIDKey).(string)
	if !ok {
		return ""
	}
	return id
}
