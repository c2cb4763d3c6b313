package model

import (
	"github.com/shopspring/decimal"
)

type TaskType string

const (
	TaskTypeInstall TaskType = "INSTALL"
	TaskTypeWatch   TaskType = "WATCH"
	TaskTypeCheckin TaskType = "CHECKIN"
	TaskTypeShare   TaskType = "SHARE"
)

// Valid reports whether t is one of the known task types.
func (t TaskType) Valid() bool {
	switch t {
	case TaskTypeInstall, TaskTypeWatch, TaskTypeCheckin, TaskTypeShare:
		return true
	}
	return false
}

// Task is a global, admin-authored catalog entry.
type Task struct {
	ID     string          `json:"id"`
	Title  string          `json:"title"`
	Type   TaskType        `json:"type"`
	Reward decimal.Decimal `json:"reward"`
}

// UserTask is a global task merged with one user's completion flag.
type UserTask struct {
	Task
	IsCompleted bool `json:"isCompleted"`
}

// DefaultTasks returns the seed catalog written on first access.
func DefaultTasks() []Task {
	return []Task{
		{ID: "1", Title: "Daily Check-in", Type: TaskTypeCheckin, Reward: decimal.RequireFromString("0.05")},
		{ID: "2", Title: "Watch Ad Video", Type: TaskTypeWatch, Reward: decimal.RequireFromString("0.10")},
		{ID: "3", Title: "Install Partner App", Type: TaskTypeInstall, Reward: decimal.RequireFromString("0.25")},
		{ID: "4", Title: "Share Earn with Tasker", Type: TaskTypeShare, Reward: decimal.RequireFromString("0.05")},
	}
}

// MergeUserTasks builds the per-user view of the catalog, preserving catalog order.
func MergeUserTasks(tasks []Task, completed map[string]bool) []UserTask {
	view := make([]UserTask, 0, len(tasks))
	for _, t := range tasks {
		view = append(view, UserTask{Task: t, IsCompleted: completed[t.ID]})
	}
	return view
}
