package model

import "time"

// Drink is one logged consumption event. Records are append-only: once
// created they are never edited, only deleted.
type Drink struct {
	ID        string    `gorm:"primaryKey"`
	ContentID string    `gorm:"index"`
	CupID     string    `gorm:"index"`
	Date      time.Time `gorm:"index"`
	Amount    int
	CreatedAt time.Time
}

// EnrichedDrink is a read-only projection of Drink with its catalog
// references resolved. Content or Cup is nil when the catalog entry was
// removed after the drink was logged; the record stays viewable anyway.
type EnrichedDrink struct {
	Drink
	Content *Content
	Cup     *Cup
}
