package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pabueco/woah/internal/model"
)

// CupRepository manages user-added cups. Built-in cups are never stored here.
type CupRepository struct {
	db *gorm.DB
}

func NewCupRepository(db *gorm.DB) *CupRepository {
	return &CupRepository{db: db}
}

func (r *CupRepository) Create(ctx context.Context, cup *model.Cup) error {
	if err := r.db.WithContext(ctx).Create(cup).Error; err != nil {
		return fmt.Errorf("create cup: %w", err)
	}
	return nil
}

func (r *CupRepository) List(ctx context.Context) ([]model.Cup, error) {
	var cups []model.Cup
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&cups).Error; err != nil {
		return nil, err
	}
	return cups, nil
}

func (r *CupRepository) DeleteAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Cup{}).Error; err != nil {
		return fmt.Errorf("clear cups: %w", err)
	}
	return nil
}
