package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pabueco/woah/internal/repository"
)

type testEnv struct {
	catalog  *CatalogService
	settings *SettingsService
	drinks   *DrinkService
	bus      *EventBus
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := repository.NewDB(filepath.Join(t.TempDir(), "woah.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	bus := NewEventBus()
	catalog := NewCatalogService(repository.NewContentRepository(db), repository.NewCupRepository(db))
	settings := NewSettingsService(repository.NewSettingsRepository(db))
	drinks := NewDrinkService(repository.NewDrinkRepository(db), catalog, settings, bus)

	return &testEnv{catalog: catalog, settings: settings, drinks: drinks, bus: bus}
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func intPtr(v int) *int { return &v }
