package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/middleware"
)

// GetWithdrawals returns the session user's payout history, newest first.
func (h *Handler) GetWithdrawals(c *fiber.Ctx) error {
	list, err := h.walletService.ListUserWithdrawals(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"withdrawals": list})
}

// SubmitWithdrawal requests a payout of the whole withdrawable amount.
func (h *Handler) SubmitWithdrawal(c *fiber.Ctx) error {
	req, user, err := h.walletService.SubmitWithdrawal(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"withdrawal": req,
		"user":       user,
	})
}
