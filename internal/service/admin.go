package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/metrics"
	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/model"
	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/repository"
)

// FilterAll disables the type or status filter of admin listings.
const FilterAll = "ALL"

type AdminService struct {
	store     Store
	walletSvc *WalletService
	log       *logrus.Entry
}

func NewAdminService(store Store, logger logrus.FieldLogger) *AdminService {
	return &AdminService{store: store, log: logger.WithField("service", "admin")}
}

// SetWalletService sets the wallet service used for balance credits
func (s *AdminService) SetWalletService(walletSvc *WalletService) {
	s.walletSvc = walletSvc
}

// --- Users ---

// ListUsers lists users whose phone contains search, case-insensitively.
func (s *AdminService) ListUsers(ctx context.Context, search string) ([]model.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return users, nil
	}

	matched := []model.User{}
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Phone), search) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

// ToggleBlock flips the blocked flag. An active session is not ended.
func (s *AdminService) ToggleBlock(ctx context.Context, userID string) (*model.User, error) {
	var user *model.User
	err := s.store.Exclusive(func() error {
		var err error
		user, err = loadUser(ctx, s.store, userID)
		if err != nil {
			return err
		}
		user.IsBlocked = !user.IsBlocked
		return s.store.SaveUser(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"user_id": userID, "blocked": user.IsBlocked}).Info("user block toggled")
	return user, nil
}

// AddBalance credits deposited funds to a user.
func (s *AdminService) AddBalance(ctx context.Context, userID string, amount decimal.Decimal) (*model.User, error) {
	if s.walletSvc == nil {
		return nil, errors.New("wallet service not configured")
	}
	return s.walletSvc.CreditDeposit(ctx, userID, amount)
}

// --- Tasks ---

type CreateTaskParams struct {
	Title  string
	Type   model.TaskType
	Reward *decimal.Decimal
}

// ListTasks returns the catalog filtered by type. Empty or ALL means no filter.
func (s *AdminService) ListTasks(ctx context.Context, taskType string) ([]model.Task, error) {
	taskType = strings.ToUpper(strings.TrimSpace(taskType))
	if taskType != "" && taskType != FilterAll && !model.TaskType(taskType).Valid() {
		return nil, ErrInvalidTaskType
	}

	tasks, err := catalog(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if taskType == "" || taskType == FilterAll {
		return tasks, nil
	}

	filtered := []model.Task{}
	for _, t := range tasks {
		if t.Type == model.TaskType(taskType) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// CreateTask appends a task to the global catalog. Type defaults to WATCH and
// reward to 0.10.
func (s *AdminService) CreateTask(ctx context.Context, params CreateTaskParams) (*model.Task, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, ErrTaskTitleEmpty
	}
	taskType := params.Type
	if taskType == "" {
		taskType = model.TaskTypeWatch
	}
	if !taskType.Valid() {
		return nil, ErrInvalidTaskType
	}
	reward := model.DefaultTaskReward
	if params.Reward != nil {
		reward = *params.Reward
	}
	if reward.IsNegative() {
		return nil, ErrInvalidReward
	}

	task := model.Task{
		ID:     "task_" + uuid.NewString(),
		Title:  title,
		Type:   taskType,
		Reward: reward,
	}
	err := s.store.Exclusive(func() error {
		tasks, err := s.store.ListGlobalTasks(ctx)
		if err != nil {
			return err
		}
		return s.store.ReplaceGlobalTasks(ctx, append(tasks, task))
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"task_id": task.ID, "type": task.Type, "reward": task.Reward.String()}).Info("task created")
	return &task, nil
}

// DeleteTask removes a task from the catalog. Completion maps that reference
// it are left alone.
func (s *AdminService) DeleteTask(ctx context.Context, taskID string) error {
	err := s.store.Exclusive(func() error {
		tasks, err := s.store.ListGlobalTasks(ctx)
		if err != nil {
			return err
		}
		kept := make([]model.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.ID != taskID {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(tasks) {
			return ErrTaskNotFound
		}
		return s.store.ReplaceGlobalTasks(ctx, kept)
	})
	if err != nil {
		return err
	}

	s.log.WithField("task_id", taskID).Info("task deleted")
	return nil
}

// --- Withdrawals ---

// ListWithdrawals returns all requests in submission order, optionally
// filtered by status.
func (s *AdminService) ListWithdrawals(ctx context.Context, status string) ([]model.WithdrawalRequest, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	switch model.WithdrawalStatus(status) {
	case "", model.WithdrawalStatusPending, model.WithdrawalStatusApproved, model.WithdrawalStatusRejected:
	default:
		if status != FilterAll {
			return nil, ErrInvalidStatus
		}
		status = ""
	}

	list, err := s.store.ListWithdrawals(ctx)
	if err != nil || status == "" {
		return list, err
	}

	filtered := []model.WithdrawalRequest{}
	for _, w := range list {
		if w.Status == model.WithdrawalStatus(status) {
			filtered = append(filtered, w)
		}
	}
	return filtered, nil
}

// ResolveWithdrawal approves or rejects a pending request. Rejection does not
// return the amount to the user's wallet.
func (s *AdminService) ResolveWithdrawal(ctx context.Context, id string, decision model.WithdrawalStatus) (*model.WithdrawalRequest, error) {
	if !decision.IsDecision() {
		return nil, ErrInvalidDecision
	}

	var req *model.WithdrawalRequest
	err := s.store.Exclusive(func() error {
		var err error
		req, err = s.store.GetWithdrawal(ctx, id)
		if errors.Is(err, repository.ErrWithdrawalNotFound) {
			return ErrWithdrawalNotFound
		}
		if err != nil {
			return err
		}
		if req.Status != model.WithdrawalStatusPending {
			return ErrWithdrawalNotPending
		}
		if err := s.store.UpdateWithdrawalStatus(ctx, id, decision); err != nil {
			return err
		}
		req.Status = decision
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordWithdrawal(string(decision))
	s.log.WithFields(logrus.Fields{
		"withdrawal_id": id,
		"user_id":       req.UserID,
		"status":        decision,
	}).Info("withdrawal resolved")
	return req, nil
}

// --- Stats ---

type AdminStats struct {
	TotalUsers         int             `json:"totalUsers"`
	BlockedUsers       int             `json:"blockedUsers"`
	VIPUsers           int             `json:"vipUsers"`
	TotalTasks         int             `json:"totalTasks"`
	PendingWithdrawals int             `json:"pendingWithdrawals"`
	PendingPayout      decimal.Decimal `json:"pendingPayout"`
}

// GetStats returns admin dashboard stats
func (s *AdminService) GetStats(ctx context.Context) (*AdminStats, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := catalog(ctx, s.store)
	if err != nil {
		return nil, err
	}
	withdrawals, err := s.store.ListWithdrawals(ctx)
	if err != nil {
		return nil, err
	}

	stats := &AdminStats{
		TotalUsers:    len(users),
		TotalTasks:    len(tasks),
		PendingPayout: decimal.Zero,
	}
	for i := range users {
		if users[i].IsBlocked {
			stats.BlockedUsers++
		}
		if users[i].HasVIP() {
			stats.VIPUsers++
		}
	}
	for _, w := range withdrawals {
		if w.Status == model.WithdrawalStatusPending {
			stats.PendingWithdrawals++
			stats.PendingPayout = stats.PendingPayout.Add(w.Amount)
		}
	}
	return stats, nil
}
