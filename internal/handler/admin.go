package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/model"
	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/service"
)

// AdminHandler handles admin panel requests
type AdminHandler struct {
	adminSvc *service.AdminService
	log      *logrus.Entry
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminSvc *service.AdminService, logger logrus.FieldLogger) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc, log: logger.WithField("component", "admin_http")}
}

// --- Stats ---

// GetStats returns admin dashboard statistics
func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.adminSvc.GetStats(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(stats)
}

// --- User Management ---

type ListUsersResponse struct {
	Users []model.User `json:"users"`
	Total int          `json:"total"`
}

// ListUsers lists users, optionally filtered by phone
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.adminSvc.ListUsers(c.Context(), c.Query("search", ""))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(ListUsersResponse{
		Users: users,
		Total: len(users),
	})
}

// ToggleBlock blocks or unblocks a user
func (h *AdminHandler) ToggleBlock(c *fiber.Ctx) error {
	user, err := h.adminSvc.ToggleBlock(c.Context(), c.Params("user_id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(user)
}

// AddBalance credits a deposit to a user
func (h *AdminHandler) AddBalance(c *fiber.Ctx) error {
	var req AddBalanceRequest
	if err := parseRequest(c, &req); err != nil {
		return writeError(c, h.log, err)
	}

	user, err := h.adminSvc.AddBalance(c.Context(), c.Params("user_id"), req.Amount)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(user)
}

// --- Tasks ---

func (h *AdminHandler) ListTasks(c *fiber.Ctx) error {
	tasks, err := h.adminSvc.ListTasks(c.Context(), c.Query("type", service.FilterAll))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"tasks": tasks})
}

func (h *AdminHandler) CreateTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := parseRequest(c, &req); err != nil {
		return writeError(c, h.log, err)
	}

	task, err := h.adminSvc.CreateTask(c.Context(), service.CreateTaskParams{
		Title:  req.Title,
		Type:   req.Type,
		Reward: req.Reward,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (h *AdminHandler) DeleteTask(c *fiber.Ctx) error {
	if err := h.adminSvc.DeleteTask(c.Context(), c.Params("task_id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- Withdrawals ---

func (h *AdminHandler) ListWithdrawals(c *fiber.Ctx) error {
	list, err := h.adminSvc.ListWithdrawals(c.Context(), c.Query("status", ""))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"withdrawals": list})
}

func (h *AdminHandler) ApproveWithdrawal(c *fiber.Ctx) error {
	return h.resolveWithdrawal(c, model.WithdrawalStatusApproved)
}

func (h *AdminHandler) RejectWithdrawal(c *fiber.Ctx) error {
	return h.resolveWithdrawal(c, model.WithdrawalStatusRejected)
}

func (h *AdminHandler) resolveWithdrawal(c *fiber.Ctx, decision model.WithdrawalStatus) error {
	req, err := h.adminSvc.ResolveWithdrawal(c.Context(), c.Params("withdrawal_id"), decision)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(req)
}
