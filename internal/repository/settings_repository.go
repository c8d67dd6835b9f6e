package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/pabueco/woah/internal/model"
)

const settingsRecordID = 1

// SettingsRepository stores the settings singleton as a JSON document.
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Load returns the stored settings merged over the defaults: keys missing
// from the stored document keep their default, keys the user saved win.
func (r *SettingsRepository) Load(ctx context.Context) (model.Settings, error) {
	settings := model.DefaultSettings()

	var record model.SettingsRecord
	err := r.db.WithContext(ctx).First(&record, settingsRecordID).Error
	switch {
	case err == nil:
		if err := json.Unmarshal(record.Data, &settings); err != nil {
			return settings, fmt.Errorf("decode settings: %w", err)
		}
		return settings, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return settings, nil
	default:
		return settings, fmt.Errorf("load settings: %w", err)
	}
}

// Save persists the full settings document.
func (r *SettingsRepository) Save(ctx context.Context, settings model.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	record := model.SettingsRecord{ID: settingsRecordID, Data: datatypes.JSON(data)}
	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
