package service

import (
	"sync"

	"github.com/pabueco/woah/internal/model"
)

// EventBus carries the two signals UI collaborators listen to: drink-added
// and daily-goal-reached. Emission is fire-and-forget; with no subscribers
// attached an event is simply dropped. Emit iterates a snapshot of the
// subscriber list so a handler can subscribe without deadlocking.
type EventBus struct {
	mu          sync.Mutex
	drinkAdded  []func(model.EnrichedDrink)
	goalReached []func()
}

func NewEventBus() *EventBus {
	return &EventBus{}
}

// OnDrinkAdded registers a handler for every newly logged drink. The payload
// is the enriched record.
func (b *EventBus) OnDrinkAdded(fn func(model.EnrichedDrink)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.drinkAdded = append(b.drinkAdded, fn)
}

// OnDailyGoalReached registers a handler for the moment the day total
// crosses the daily target.
func (b *EventBus) OnDailyGoalReached(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.goalReached = append(b.goalReached, fn)
}

func (b *EventBus) emitDrinkAdded(drink model.EnrichedDrink) {
	b.mu.Lock()
	handlers := make([]func(model.EnrichedDrink), len(b.drinkAdded))
	copy(handlers, b.drinkAdded)
	b.mu.Unlock()

	for _, fn := range handlers {
		fn(drink)
	}
}

func (b *EventBus) emitDailyGoalReached() {
	b.mu.Lock()
	handlers := make([]func(), len(b.goalReached))
	copy(handlers, b.goalReached)
	b.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
}
