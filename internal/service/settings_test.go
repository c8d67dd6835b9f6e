package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pabueco/woah/internal/model"
)

func TestSettings_DefaultsOnFirstLoad(t *testing.T) {
	env := newTestEnv(t)

	settings, err := env.settings.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.DailyTargetAmount != 2400 || settings.DayStartHour != 6 || settings.DayEndHour != 24 {
		t.Fatalf("defaults: got %+v", settings)
	}
}

func TestSettings_PartialUpdatePreservesOtherFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.settings.Update(ctx, SettingsUpdate{DailyTargetAmount: intPtr(2000)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := env.settings.Update(ctx, SettingsUpdate{DayStartHour: intPtr(8)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	settings, err := env.settings.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.DailyTargetAmount != 2000 {
		t.Fatalf("target lost by later partial update: got %d", settings.DailyTargetAmount)
	}
	if settings.DayStartHour != 8 || settings.DayEndHour != 24 {
		t.Fatalf("window: got %d-%d want 8-24", settings.DayStartHour, settings.DayEndHour)
	}
}

func TestSettings_ValidationRejectsBeforePersisting(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := []SettingsUpdate{
		{DailyTargetAmount: intPtr(-1)},
		{DayStartHour: intPtr(-1)},
		{DayStartHour: intPtr(24)},
		{DayEndHour: intPtr(-1)},
		{DayEndHour: intPtr(25)},
	}
	for i, update := range cases {
		if _, err := env.settings.Update(ctx, update); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}

	settings, err := env.settings.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings != model.DefaultSettings() {
		t.Fatalf("rejected updates must not persist, got %+v", settings)
	}
}

func TestSettings_MidnightCrossingWindowIsAllowed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	settings, err := env.settings.Update(ctx, SettingsUpdate{DayStartHour: intPtr(22), DayEndHour: intPtr(6)})
	if err != nil {
		t.Fatalf("end below start must be accepted (midnight crossing): %v", err)
	}
	if settings.DayStartHour != 22 || settings.DayEndHour != 6 {
		t.Fatalf("window: got %d-%d", settings.DayStartHour, settings.DayEndHour)
	}
}
