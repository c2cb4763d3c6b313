package handler

import (
	"github.com/gofiber/fiber/v2"
)

// Login registers or logs in by phone and opens the session.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := parseRequest(c, &req); err != nil {
		return writeError(c, h.log, err)
	}

	user, created, err := h.userService.Login(c.Context(), req.Phone, req.ReferralCode)
	if err != nil {
		return writeError(c, h.log, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{
		"user":    user,
		"created": created,
	})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	if err := h.userService.Logout(c.Context()); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetSession returns the logged-in user or 401.
func (h *Handler) GetSession(c *fiber.Ctx) error {
	user, err := h.userService.CurrentUser(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(user)
}
