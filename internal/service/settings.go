package service

import (
	"context"
	"errors"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/repository"
)

const (
	settingTheme = "theme"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

type SettingsService struct {
	store Store
}

func NewSettingsService(store Store) *SettingsService {
	return &SettingsService{store: store}
}

// GetTheme returns the stored theme, light when none was chosen.
func (s *SettingsService) GetTheme(ctx context.Context) (string, error) {
	theme, err := s.store.GetSetting(ctx, settingTheme)
	if errors.Is(err, repository.ErrSettingNotFound) {
		return ThemeLight, nil
	}
	if err != nil {
		return "", err
	}
	if theme != ThemeDark {
		return ThemeLight, nil
	}
	return theme, nil
}

func (s *SettingsService) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return ErrInvalidTheme
	}
	return s.store.Exclusive(func() error {
		return s.store.SetSetting(ctx, settingTheme, theme)
	})
}
