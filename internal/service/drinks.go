package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pabueco/woah/internal/model"
	"github.com/pabueco/woah/internal/repository"
)

// DrinkInput is what a caller provides to log a drink. ContentID falls back
// to Water when empty. Amount falls back to the resolved cup's amount when
// zero, and to 0 when there is no cup either.
type DrinkInput struct {
	ContentID string
	CupID     string
	Amount    int
}

// DrinkService owns the append-only drink log and everything derived from
// it: today's total, progress percentage, the recent-drinks list and the
// expected-by-now pace. A "viewing day" can be navigated away from today to
// look at or retroactively log for another day.
type DrinkService struct {
	drinkRepo *repository.DrinkRepository
	catalog   *CatalogService
	settings  *SettingsService
	bus       *EventBus

	mu  sync.Mutex
	day time.Time

	now func() time.Time
}

func NewDrinkService(drinkRepo *repository.DrinkRepository, catalog *CatalogService, settings *SettingsService, bus *EventBus) *DrinkService {
	return &DrinkService{
		drinkRepo: drinkRepo,
		catalog:   catalog,
		settings:  settings,
		bus:       bus,
		now:       time.Now,
	}
}

// Day returns the currently selected viewing day (today unless navigated).
func (s *DrinkService) Day() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.day.IsZero() {
		return s.now()
	}
	return s.day
}

// SetDay selects the viewing day used by DrinksToday and AddDrink.
func (s *DrinkService) SetDay(day time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.day = day
}

// AddDrink appends a new record to the log. The timestamp combines the
// selected viewing day with the real current time of day, so a drink logged
// for a prior day still carries a realistic clock time. Emits drink-added,
// and daily-goal-reached exactly once when the day total crosses the target.
func (s *DrinkService) AddDrink(ctx context.Context, input DrinkInput) (model.EnrichedDrink, error) {
	amountBefore, err := s.AmountToday(ctx)
	if err != nil {
		return model.EnrichedDrink{}, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return model.EnrichedDrink{}, err
	}

	var cup *model.Cup
	if input.CupID != "" {
		cup, err = s.catalog.CupByID(ctx, input.CupID)
		if err != nil {
			return model.EnrichedDrink{}, err
		}
	}

	contentID := input.ContentID
	if contentID == "" {
		contentID = builtinContents[0].ID
	}

	amount := input.Amount
	if amount == 0 && cup != nil {
		amount = cup.Amount
	}
	if amount < 0 {
		return model.EnrichedDrink{}, fmt.Errorf("%w: drink amount must not be negative, got %d", ErrInvalidInput, amount)
	}

	drink := model.Drink{
		ID:        uuid.NewString(),
		ContentID: contentID,
		CupID:     input.CupID,
		Date:      s.stampTime(),
		Amount:    amount,
	}
	if err := s.drinkRepo.Create(ctx, &drink); err != nil {
		return model.EnrichedDrink{}, err
	}

	enriched, err := s.enrichAll(ctx, []model.Drink{drink})
	if err != nil {
		return model.EnrichedDrink{}, err
	}
	s.bus.emitDrinkAdded(enriched[0])

	amountAfter := amountBefore + amount
	if amountBefore < settings.DailyTargetAmount && amountAfter >= settings.DailyTargetAmount {
		s.bus.emitDailyGoalReached()
	}

	return enriched[0], nil
}

// DeleteDrink removes the record with the given id, failing with ErrNotFound
// when it does not exist.
func (s *DrinkService) DeleteDrink(ctx context.Context, id string) error {
	err := s.drinkRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("drink %q: %w", id, ErrNotFound)
	}
	return err
}

// DrinksToday returns the enriched drinks of the selected viewing day.
func (s *DrinkService) DrinksToday(ctx context.Context) ([]model.EnrichedDrink, error) {
	start, end := dayBounds(s.Day())
	drinks, err := s.drinkRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, drinks)
}

// RecentDrinks returns the latest distinct (content, amount) combinations
// across the whole log, most recent first. limit <= 0 means the default of 5.
func (s *DrinkService) RecentDrinks(ctx context.Context, limit int) ([]model.EnrichedDrink, error) {
	if limit <= 0 {
		limit = 5
	}

	drinks, err := s.drinkRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var unique []model.Drink
	for _, drink := range drinks {
		for i, existing := range unique {
			if existing.ContentID == drink.ContentID && existing.Amount == drink.Amount {
				unique = append(unique[:i], unique[i+1:]...)
				break
			}
		}
		unique = append([]model.Drink{drink}, unique...)
	}

	if len(unique) > limit {
		unique = unique[:limit]
	}
	return s.enrichAll(ctx, unique)
}

// AmountToday sums the amounts of the selected viewing day.
func (s *DrinkService) AmountToday(ctx context.Context) (int, error) {
	start, end := dayBounds(s.Day())
	drinks, err := s.drinkRepo.ListBetween(ctx, start, end)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, drink := range drinks {
		total += drink.Amount
	}
	return total, nil
}

// PercentageToday is the day total as a rounded percentage of the daily
// target. A zero target yields 0 rather than a division error.
func (s *DrinkService) PercentageToday(ctx context.Context) (int, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return 0, err
	}
	if settings.DailyTargetAmount <= 0 {
		return 0, nil
	}

	amount, err := s.AmountToday(ctx)
	if err != nil {
		return 0, err
	}
	return int(math.Round(float64(amount) / float64(settings.DailyTargetAmount) * 100)), nil
}

// ExpectedAmountNow interpolates the daily target linearly across the active
// day window: 0 before the window starts, the full target at or after its
// end. A window whose end hour is numerically below its start crosses
// midnight, so its end lies a day later.
func (s *DrinkService) ExpectedAmountNow(ctx context.Context) (float64, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return 0, err
	}

	now := s.now()
	spanHours := settings.DayEndHour - settings.DayStartHour
	if spanHours <= 0 {
		spanHours += 24
	}

	start := time.Date(now.Year(), now.Month(), now.Day(), settings.DayStartHour, 0, 0, 0, now.Location())
	// In a midnight-crossing window the hours before today's start still
	// belong to the window that opened yesterday evening.
	if settings.DayEndHour <= settings.DayStartHour && now.Before(start) {
		start = start.AddDate(0, 0, -1)
	}
	end := start.Add(time.Duration(spanHours) * time.Hour)

	target := float64(settings.DailyTargetAmount)
	switch {
	case now.Before(start):
		return 0, nil
	case !now.Before(end):
		return target, nil
	default:
		elapsed := now.Sub(start)
		duration := end.Sub(start)
		return float64(elapsed) / float64(duration) * target, nil
	}
}

// ExpectedAmountDifference is expected-by-now minus the day total; positive
// means behind pace.
func (s *DrinkService) ExpectedAmountDifference(ctx context.Context) (float64, error) {
	expected, err := s.ExpectedAmountNow(ctx)
	if err != nil {
		return 0, err
	}
	amount, err := s.AmountToday(ctx)
	if err != nil {
		return 0, err
	}
	return expected - float64(amount), nil
}

// IsDehydrated reports whether the day total is behind the expected pace.
func (s *DrinkService) IsDehydrated(ctx context.Context) (bool, error) {
	diff, err := s.ExpectedAmountDifference(ctx)
	if err != nil {
		return false, err
	}
	return diff > 0, nil
}

// ClearAll irreversibly empties the drink log.
func (s *DrinkService) ClearAll(ctx context.Context) error {
	return s.drinkRepo.DeleteAll(ctx)
}

// stampTime combines the selected viewing day with the current time of day.
func (s *DrinkService) stampTime() time.Time {
	day := s.Day()
	now := s.now()
	return time.Date(day.Year(), day.Month(), day.Day(),
		now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
}

func (s *DrinkService) enrichAll(ctx context.Context, drinks []model.Drink) ([]model.EnrichedDrink, error) {
	contents, err := s.catalog.Contents(ctx)
	if err != nil {
		return nil, err
	}
	cups, err := s.catalog.Cups(ctx)
	if err != nil {
		return nil, err
	}

	contentsByID := make(map[string]*model.Content, len(contents))
	for i := range contents {
		contentsByID[contents[i].ID] = &contents[i]
	}
	cupsByID := make(map[string]*model.Cup, len(cups))
	for i := range cups {
		cupsByID[cups[i].ID] = &cups[i]
	}

	enriched := make([]model.EnrichedDrink, 0, len(drinks))
	for _, drink := range drinks {
		enriched = append(enriched, model.EnrichedDrink{
			Drink:   drink,
			Content: contentsByID[drink.ContentID],
			Cup:     cupsByID[drink.CupID],
		})
	}
	return enriched, nil
}

func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}
