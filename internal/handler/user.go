package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/middleware"
)

func (h *Handler) GetMe(c *fiber.Ctx) error {
	return c.JSON(middleware.GetUser(c))
}

func (h *Handler) GetTheme(c *fiber.Ctx) error {
	theme, err := h.settingsService.GetTheme(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"theme": theme})
}

func (h *Handler) SetTheme(c *fiber.Ctx) error {
	var req ThemeRequest
	if err := parseRequest(c, &req); err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.settingsService.SetTheme(c.Context(), req.Theme); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"theme": req.Theme})
}
