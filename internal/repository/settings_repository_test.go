package repository

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/pabueco/woah/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "woah.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}

func TestSettingsLoad_DefaultsWhenNothingStored(t *testing.T) {
	repo := NewSettingsRepository(newTestDB(t))

	settings, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings != model.DefaultSettings() {
		t.Fatalf("got %+v want defaults", settings)
	}
}

func TestSettingsLoad_BackfillsFieldsMissingFromStoredDocument(t *testing.T) {
	db := newTestDB(t)

	// A document written by an older version that only knew the target.
	record := model.SettingsRecord{ID: 1, Data: datatypes.JSON([]byte(`{"dailyTargetAmount":2000}`))}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("seed record: %v", err)
	}

	settings, err := NewSettingsRepository(db).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.DailyTargetAmount != 2000 {
		t.Fatalf("stored value clobbered: got %d want 2000", settings.DailyTargetAmount)
	}
	if settings.DayStartHour != 6 || settings.DayEndHour != 24 {
		t.Fatalf("new fields not backfilled: got %d-%d want 6-24", settings.DayStartHour, settings.DayEndHour)
	}
}

func TestSettingsSaveThenLoad(t *testing.T) {
	repo := NewSettingsRepository(newTestDB(t))
	ctx := context.Background()

	want := model.Settings{DailyTargetAmount: 1800, DayStartHour: 7, DayEndHour: 22}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("round trip: got %+v want %+v", got, want)
	}

	// A second save overwrites the singleton instead of adding a row.
	want.DailyTargetAmount = 2200
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var count int64
	if err := repo.db.Model(&model.SettingsRecord{}).Count(&count).Error; err != nil {
		t.Fatalf("count records: %v", err)
	}
	if count != 1 {
		t.Fatalf("settings rows: got %d want 1", count)
	}
}
