package repository

import (
	"context"
	"errors"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/model"
)

var ErrWithdrawalNotFound = errors.New("withdrawal not found")

func (r *Repository) ListWithdrawals(ctx context.Context) ([]model.WithdrawalRequest, error) {
	list := []model.WithdrawalRequest{}
	if _, err := r.readJSON(ctx, r.key(keyWithdrawals), &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.WithdrawalRequest{}
	}
	return list, nil
}

func (r *Repository) GetWithdrawal(ctx context.Context, id string) (*model.WithdrawalRequest, error) {
	list, err := r.ListWithdrawals(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			req := list[i]
			return &req, nil
		}
	}
	return nil, ErrWithdrawalNotFound
}

func (r *Repository) AppendWithdrawal(ctx context.Context, req model.WithdrawalRequest) error {
	list, err := r.ListWithdrawals(ctx)
	if err != nil {
		return err
	}
	list = append(list, req)
	return r.writeJSON(ctx, r.key(keyWithdrawals), list)
}

// UpdateWithdrawalStatus overwrites the status of one request. Nothing is
// written when the id is unknown.
func (r *Repository) UpdateWithdrawalStatus(ctx context.Context, id string, status model.WithdrawalStatus) error {
	list, err := r.ListWithdrawals(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == id {
			list[i].Status = status
			return r.writeJSON(ctx, r.key(keyWithdrawals), list)
		}
	}
	return ErrWithdrawalNotFound
}
