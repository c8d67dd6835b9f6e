package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/pabueco/woah/internal/model"
)

// DrinkRepository handles the append-only drink log.
type DrinkRepository struct {
	db *gorm.DB
}

func NewDrinkRepository(db *gorm.DB) *DrinkRepository {
	return &DrinkRepository{db: db}
}

func (r *DrinkRepository) Create(ctx context.Context, drink *model.Drink) error {
	if err := r.db.WithContext(ctx).Create(drink).Error; err != nil {
		return fmt.Errorf("create drink: %w", err)
	}
	return nil
}

// ListAll returns the full log in insertion order.
func (r *DrinkRepository) ListAll(ctx context.Context) ([]model.Drink, error) {
	var drinks []model.Drink
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&drinks).Error; err != nil {
		return nil, err
	}
	return drinks, nil
}

// ListBetween returns drinks whose date falls in [start, end).
func (r *DrinkRepository) ListBetween(ctx context.Context, start, end time.Time) ([]model.Drink, error) {
	var drinks []model.Drink
	if err := r.db.WithContext(ctx).Where("date >= ? AND date < ?", start, end).
		Order("date ASC").
		Find(&drinks).Error; err != nil {
		return nil, err
	}
	return drinks, nil
}

// Delete removes the drink with the given id. Returns
// gorm.ErrRecordNotFound when no such record exists.
func (r *DrinkRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Drink{})
	if res.Error != nil {
		return fmt.Errorf("delete drink: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAll irreversibly empties the log.
func (r *DrinkRepository) DeleteAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Drink{}).Error; err != nil {
		return fmt.Errorf("clear drinks: %w", err)
	}
	return nil
}
