package repository

import (
	"context"
	"errors"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

// ListUsers returns all users in insertion order.
func (r *Repository) ListUsers(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	if _, err := r.readJSON(ctx, r.key(keyUsers), &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	return r.findUser(ctx, func(u *model.User) bool { return u.ID == id })
}

func (r *Repository) GetUserByPhone(ctx context.Context, phone string) (*model.User, error) {
	return r.findUser(ctx, func(u *model.User) bool { return u.Phone == phone })
}

func (r *Repository) GetUserByReferralCode(ctx context.Context, code string) (*model.User, error) {
	return r.findUser(ctx, func(u *model.User) bool { return u.ReferralCode == code })
}

func (r *Repository) findUser(ctx context.Context, match func(*model.User) bool) (*model.User, error) {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if match(&users[i]) {
			user := users[i]
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// SaveUser replaces the user with the same id, or appends it.
func (r *Repository) SaveUser(ctx context.Context, user *model.User) error {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user.Clone()
			replaced = true
			break
		}
	}
	if !replaced {
		users = append(users, user.Clone())
	}

	return r.writeJSON(ctx, r.key(keyUsers), users)
}
