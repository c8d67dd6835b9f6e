package model

import "time"

// Content is a type of beverage being logged (e.g. Water, Coffee).
// Built-in contents live in code; only user-added ones are persisted.
type Content struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	CreatedAt time.Time
}
