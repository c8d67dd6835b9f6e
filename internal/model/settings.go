package model

import (
	"time"

	"gorm.io/datatypes"
)

// Settings holds the user preferences singleton.
type Settings struct {
	DailyTargetAmount int `json:"dailyTargetAmount"`
	DayStartHour      int `json:"dayStartHour"`
	DayEndHour        int `json:"dayEndHour"`
}

// DefaultSettings returns the values used when nothing is stored yet.
// Fields added in later versions pick up their default on load without
// touching values the user already saved.
func DefaultSettings() Settings {
	return Settings{
		DailyTargetAmount: 2400,
		DayStartHour:      6,
		DayEndHour:        24,
	}
}

// SettingsRecord stores Settings as a single JSON document row. Keeping the
// document form (instead of one column per field) lets the loader tell an
// absent key apart from a stored zero when merging in defaults.
type SettingsRecord struct {
	ID        uint `gorm:"primaryKey"`
	Data      datatypes.JSON
	UpdatedAt time.Time
}
