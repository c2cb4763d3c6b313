package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/middleware"
)

func (h *Handler) GetPlans(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"plans": h.planService.GetPlans()})
}

func (h *Handler) PurchaseVIP(c *fiber.Ctx) error {
	user, err := h.planService.PurchaseVIP(c.Context(), middleware.GetUserID(c), c.Params("plan_id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(user)
}
