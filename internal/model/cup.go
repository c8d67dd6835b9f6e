package model

import "time"

// Cup is a named volume preset for logging a standard serving size.
// Amount is in milliliters and must be positive.
type Cup struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	Amount    int
	CreatedAt time.Time
}
