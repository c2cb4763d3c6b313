package repository

import (
	"context"
	"errors"
)

var ErrSettingNotFound = errors.New("setting not found")

// GetSetting reads a plain string preference stored under name.
func (r *Repository) GetSetting(ctx context.Context, name string) (string, error) {
	value, found, err := r.readString(ctx, r.key(name))
	if err != nil {
		return "", err
	}
	if !found {
		return "", ErrSettingNotFound
	}
	return value, nil
}

func (r *Repository) SetSetting(ctx context.Context, name, value string) error {
	return r.writeString(ctx, r.key(name), value)
}
