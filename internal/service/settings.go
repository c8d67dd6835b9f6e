package service

import (
	"context"
	"fmt"

	"github.com/pabueco/woah/internal/model"
	"github.com/pabueco/woah/internal/repository"
)

// SettingsUpdate carries a partial settings change; nil fields are left
// untouched.
type SettingsUpdate struct {
	DailyTargetAmount *int
	DayStartHour      *int
	DayEndHour        *int
}

// SettingsService wraps the persisted settings singleton.
type SettingsService struct {
	repo *repository.SettingsRepository
}

func NewSettingsService(repo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) Get(ctx context.Context) (model.Settings, error) {
	return s.repo.Load(ctx)
}

// Update merges the given fields into the current settings, validates and
// persists the result. Nothing is written when validation fails.
func (s *SettingsService) Update(ctx context.Context, update SettingsUpdate) (model.Settings, error) {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		return settings, err
	}

	if update.DailyTargetAmount != nil {
		settings.DailyTargetAmount = *update.DailyTargetAmount
	}
	if update.DayStartHour != nil {
		settings.DayStartHour = *update.DayStartHour
	}
	if update.DayEndHour != nil {
		settings.DayEndHour = *update.DayEndHour
	}

	if err := validateSettings(settings); err != nil {
		return settings, err
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		return settings, err
	}
	return settings, nil
}

func validateSettings(settings model.Settings) error {
	if settings.DailyTargetAmount < 0 {
		return fmt.Errorf("%w: daily target amount must not be negative, got %d", ErrInvalidInput, settings.DailyTargetAmount)
	}
	if settings.DayStartHour < 0 || settings.DayStartHour > 23 {
		return fmt.Errorf("%w: day start hour must be in [0,23], got %d", ErrInvalidInput, settings.DayStartHour)
	}
	if settings.DayEndHour < 0 || settings.DayEndHour > 24 {
		return fmt.Errorf("%w: day end hour must be in [0,24], got %d", ErrInvalidInput, settings.DayEndHour)
	}
	return nil
}
