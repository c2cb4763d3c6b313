package service

import (
	"context"
	"errors"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/model"
	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/repository"
)

// Store is the persistence the services need. *repository.Repository implements it.
type Store interface {
	// Exclusive runs fn with the writer lock held. Calls must not nest.
	Exclusive(fn func() error) error

	ListUsers(ctx context.Context) ([]model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*model.User, error)
	GetUserByReferralCode(ctx context.Context, code string) (*model.User, error)
	SaveUser(ctx context.Context, user *model.User) error

	EnsureTaskCatalog(ctx context.Context) (bool, error)
	ListGlobalTasks(ctx context.Context) ([]model.Task, error)
	ReplaceGlobalTasks(ctx context.Context, tasks []model.Task) error
	GetUserTaskCompletions(ctx context.Context, userID string) (map[string]bool, error)
	SetUserTaskCompletions(ctx context.Context, userID string, completions map[string]bool) error

	ListWithdrawals(ctx context.Context) ([]model.WithdrawalRequest, error)
	GetWithdrawal(ctx context.Context, id string) (*model.WithdrawalRequest, error)
	AppendWithdrawal(ctx context.Context, req model.WithdrawalRequest) error
	UpdateWithdrawalStatus(ctx context.Context, id string, status model.WithdrawalStatus) error

	GetSessionUserID(ctx context.Context) (string, bool, error)
	SetSessionUserID(ctx context.Context, userID string) error
	ClearSession(ctx context.Context) error

	GetSetting(ctx context.Context, name string) (string, error)
	SetSetting(ctx context.Context, name, value string) error
}

// loadUser fetches a user, translating the repository miss into ErrUserNotFound.
func loadUser(ctx context.Context, store Store, id string) (*model.User, error) {
	user, err := store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

var _ Store = (*repository.Repository)(nil)

// catalog reads the global task list under the writer lock, since the first
// read seeds the defaults. Not for use inside Exclusive.
func catalog(ctx context.Context, store Store) ([]model.Task, error) {
	var tasks []model.Task
	err := store.Exclusive(func() error {
		var err error
		tasks, err = store.ListGlobalTasks(ctx)
		return err
	})
	return tasks, err
}
