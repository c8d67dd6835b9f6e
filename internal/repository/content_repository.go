package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pabueco/woah/internal/model"
)

// ContentRepository manages user-added drink contents. Built-in contents are
// never stored here.
type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

func (r *ContentRepository) Create(ctx context.Context, content *model.Content) error {
	if err := r.db.WithContext(ctx).Create(content).Error; err != nil {
		return fmt.Errorf("create content: %w", err)
	}
	return nil
}

func (r *ContentRepository) List(ctx context.Context) ([]model.Content, error) {
	var contents []model.Content
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// DeleteAll removes every user-added content. Drinks referencing them keep
// their content id and degrade to an unresolved reference on read.
func (r *ContentRepository) DeleteAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Content{}).Error; err != nil {
		return fmt.Errorf("clear contents: %w", err)
	}
	return nil
}
