package handler

import (
	"github.com/gofiber/fiber/v2"
)

// Register mounts the API. session guards user routes; loginLimit guards login.
func Register(app fiber.Router, h *Handler, adminHandler *AdminHandler, session, loginLimit fiber.Handler) {
	app.Get("/health", h.Health)

	api := app.Group("/api")

	// Public
	api.Get("/plans", h.GetPlans)
	api.Post("/auth/login", loginLimit, h.Login)
	api.Post("/auth/logout", h.Logout)
	api.Get("/session", h.GetSession)
	api.Get("/preferences/theme", h.GetTheme)
	api.Put("/preferences/theme", h.SetTheme)

	// Session user
	api.Get("/user/me", session, h.GetMe)
	api.Get("/tasks", session, h.GetTasks)
	api.Post("/tasks/:task_id/complete", session, h.CompleteTask)
	api.Post("/vip/:plan_id/purchase", session, h.PurchaseVIP)
	api.Get("/withdrawals", session, h.GetWithdrawals)
	api.Post("/withdrawals", session, h.SubmitWithdrawal)

	// Admin panel
	admin := api.Group("/admin")
	admin.Get("/stats", adminHandler.GetStats)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Post("/users/:user_id/block", adminHandler.ToggleBlock)
	admin.Post("/users/:user_id/balance/add", adminHandler.AddBalance)
	admin.Get("/tasks", adminHandler.ListTasks)
	admin.Post("/tasks", adminHandler.CreateTask)
	admin.Delete("/tasks/:task_id", adminHandler.DeleteTask)
	admin.Get("/withdrawals", adminHandler.ListWithdrawals)
	admin.Post("/withdrawals/:withdrawal_id/approve", adminHandler.ApproveWithdrawal)
	admin.Post("/withdrawals/:withdrawal_id/reject", adminHandler.RejectWithdrawal)
}
