package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/pabueco/woah/internal/model"
	"github.com/pabueco/woah/internal/repository"
)

// Built-in catalog entries ship with the app and cannot be changed or
// cleared. Their ids are stable forever; user-added entries get fresh uuids
// so the two sets can never collide.
var builtinContents = []model.Content{
	{ID: "1", Name: "Water"},
	{ID: "2", Name: "Coffee"},
	{ID: "3", Name: "Tea"},
	{ID: "4", Name: "Multivitamin"},
	{ID: "5", Name: "Juice"},
	{ID: "6", Name: "Ice Tea"},
	{ID: "7", Name: "Soft Drink"},
	{ID: "8", Name: "Beer"},
	{ID: "9", Name: "Wine"},
	{ID: "10", Name: "Cocktail"},
	{ID: "11", Name: "Other"},
}

var builtinCups = []model.Cup{
	{ID: "1", Name: "Small Cup", Amount: 200},
	{ID: "2", Name: "Normal Cup", Amount: 300},
	{ID: "3", Name: "Large Cup", Amount: 400},
	{ID: "4", Name: "Small Bottle", Amount: 500},
	{ID: "5", Name: "Normal Bottle", Amount: 1000},
	{ID: "6", Name: "Large Bottle", Amount: 1500},
}

// CatalogService exposes the merged view of built-in and user-added contents
// and cups. Contents are ordered by name (case-insensitive), cups by amount
// ascending; that order is also the tie-break order of the coverage solver.
type CatalogService struct {
	contentRepo *repository.ContentRepository
	cupRepo     *repository.CupRepository
}

func NewCatalogService(contentRepo *repository.ContentRepository, cupRepo *repository.CupRepository) *CatalogService {
	return &CatalogService{contentRepo: contentRepo, cupRepo: cupRepo}
}

func (s *CatalogService) Contents(ctx context.Context) ([]model.Content, error) {
	stored, err := s.contentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	contents := make([]model.Content, 0, len(builtinContents)+len(stored))
	contents = append(contents, builtinContents...)
	contents = append(contents, stored...)

	sort.SliceStable(contents, func(i, j int) bool {
		return strings.ToLower(contents[i].Name) < strings.ToLower(contents[j].Name)
	})
	return contents, nil
}

func (s *CatalogService) Cups(ctx context.Context) ([]model.Cup, error) {
	stored, err := s.cupRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	cups := make([]model.Cup, 0, len(builtinCups)+len(stored))
	cups = append(cups, builtinCups...)
	cups = append(cups, stored...)

	sort.SliceStable(cups, func(i, j int) bool {
		return cups[i].Amount < cups[j].Amount
	})
	return cups, nil
}

func (s *CatalogService) AddContent(ctx context.Context, name string) (*model.Content, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: content name must not be empty", ErrInvalidInput)
	}

	content := model.Content{ID: uuid.NewString(), Name: name}
	if err := s.contentRepo.Create(ctx, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

func (s *CatalogService) AddCup(ctx context.Context, name string, amount int) (*model.Cup, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: cup name must not be empty", ErrInvalidInput)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: cup amount must be positive, got %d", ErrInvalidInput, amount)
	}

	cup := model.Cup{ID: uuid.NewString(), Name: name, Amount: amount}
	if err := s.cupRepo.Create(ctx, &cup); err != nil {
		return nil, err
	}
	return &cup, nil
}

// ClearContents removes the user-added contents only; built-ins remain.
func (s *CatalogService) ClearContents(ctx context.Context) error {
	return s.contentRepo.DeleteAll(ctx)
}

// ClearCups removes the user-added cups only; built-ins remain.
func (s *CatalogService) ClearCups(ctx context.Context) error {
	return s.cupRepo.DeleteAll(ctx)
}

func (s *CatalogService) ContentByID(ctx context.Context, id string) (*model.Content, error) {
	contents, err := s.Contents(ctx)
	if err != nil {
		return nil, err
	}
	for i := range contents {
		if contents[i].ID == id {
			return &contents[i], nil
		}
	}
	return nil, fmt.Errorf("content %q: %w", id, ErrNotFound)
}

func (s *CatalogService) CupByID(ctx context.Context, id string) (*model.Cup, error) {
	cups, err := s.Cups(ctx)
	if err != nil {
		return nil, err
	}
	for i := range cups {
		if cups[i].ID == id {
			return &cups[i], nil
		}
	}
	return nil, fmt.Errorf("cup %q: %w", id, ErrNotFound)
}
