package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/service"
)

type Handler struct {
	userService     *service.UserService
	taskService     *service.TaskService
	planService     *service.PlanService
	walletService   *service.WalletService
	settingsService *service.SettingsService
	log             *logrus.Entry
}

func New(
	userService *service.UserService,
	taskService *service.TaskService,
	planService *service.PlanService,
	walletService *service.WalletService,
	settingsService *service.SettingsService,
	logger logrus.FieldLogger,
) *Handler {
	return &Handler{
		userService:     userService,
		taskService:     taskService,
		planService:     planService,
		walletService:   walletService,
		settingsService: settingsService,
		log:             logger.WithField("component", "http"),
	}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// statusFor maps a service error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNoSession):
		return fiber.StatusUnauthorized
	case errors.Is(err, service.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrAuthorization):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrPrecondition):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusRequestTimeout
	}
	return fiber.StatusInternalServerError
}

// writeError renders err as {"error": msg}. Internal failures are logged and
// their details withheld.
func writeError(c *fiber.Ctx, log logrus.FieldLogger, err error) error {
	status := statusFor(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Error("request failed")
		msg = "internal error"
	}
	return c.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}
