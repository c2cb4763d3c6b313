package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/middleware"
)

// GetTasks returns the catalog with the session user's completion flags.
func (h *Handler) GetTasks(c *fiber.Ctx) error {
	tasks, err := h.taskService.GetUserTasks(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"tasks": tasks})
}

func (h *Handler) CompleteTask(c *fiber.Ctx) error {
	user, err := h.taskService.CompleteTask(c.Context(), middleware.GetUserID(c), c.Params("task_id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(user)
}
