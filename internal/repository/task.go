package repository

import (
	"context"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/model"
)

// EnsureTaskCatalog seeds the global task catalog with the defaults when it has
// never been written. It reports whether seeding happened.
func (r *Repository) EnsureTaskCatalog(ctx context.Context) (bool, error) {
	var tasks []model.Task
	found, err := r.readJSON(ctx, r.key(keySystemTasks), &tasks)
	if err != nil || found {
		return false, err
	}
	if err := r.ReplaceGlobalTasks(ctx, model.DefaultTasks()); err != nil {
		return false, err
	}
	return true, nil
}

// ListGlobalTasks returns the catalog, seeding it first if needed.
func (r *Repository) ListGlobalTasks(ctx context.Context) ([]model.Task, error) {
	tasks := []model.Task{}
	found, err := r.readJSON(ctx, r.key(keySystemTasks), &tasks)
	if err != nil {
		return nil, err
	}
	if !found {
		if _, err := r.EnsureTaskCatalog(ctx); err != nil {
			return nil, err
		}
		return model.DefaultTasks(), nil
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

func (r *Repository) ReplaceGlobalTasks(ctx context.Context, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	return r.writeJSON(ctx, r.key(keySystemTasks), tasks)
}

// GetUserTaskCompletions returns taskID -> completed for one user. Missing
// entries mean not completed.
func (r *Repository) GetUserTaskCompletions(ctx context.Context, userID string) (map[string]bool, error) {
	completions := map[string]bool{}
	if _, err := r.readJSON(ctx, r.key(keyUserTasks+userID), &completions); err != nil {
		return nil, err
	}
	// A stored null decodes to a nil map.
	if completions == nil {
		completions = map[string]bool{}
	}
	return completions, nil
}

func (r *Repository) SetUserTaskCompletions(ctx context.Context, userID string, completions map[string]bool) error {
	progress := make(map[string]bool, len(completions))
	for id, done := range completions {
		if done {
			progress[id] = true
		}
	}
	return r.writeJSON(ctx, r.key(keyUserTasks+userID), progress)
}
