package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/pabueco/woah/internal/notify"
)

const (
	baseTitle        = "woah!"
	reminderTitle    = "Drink something!"
	blinkPlaceholder = "############################################"
	notificationTag  = "drink-notification"
)

// ReminderService periodically checks whether the user is behind their
// hydration pace and nags them: it blinks the title bar and, when permission
// is granted, shows a notification suggesting which cups would cover the
// shortfall. Cancel stops the nag but deliberately keeps the poll running,
// so the next check can start nagging again.
type ReminderService struct {
	drinks   *DrinkService
	catalog  *CatalogService
	notifier notify.Notifier
	title    notify.TitleBar
	sched    *SchedulerService

	interval   time.Duration
	blinkEvery time.Duration

	mu        sync.Mutex
	started   bool
	blinkStop chan struct{}
}

func NewReminderService(drinks *DrinkService, catalog *CatalogService, notifier notify.Notifier, title notify.TitleBar, interval time.Duration) *ReminderService {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &ReminderService{
		drinks:     drinks,
		catalog:    catalog,
		notifier:   notifier,
		title:      title,
		sched:      NewSchedulerService(time.Local),
		interval:   interval,
		blinkEvery: time.Second,
	}
}

// Start restores the baseline title, runs an immediate dehydration check and
// arms the periodic poll. Calling it twice is a no-op.
func (s *ReminderService) Start() error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	s.mu.Unlock()

	s.title.Set(baseTitle)
	s.CheckDehydration(context.Background())

	if _, err := s.sched.ScheduleInterval(s.interval, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		s.CheckDehydration(ctx)
	}); err != nil {
		return fmt.Errorf("schedule reminder: %w", err)
	}
	s.sched.Start()

	return nil
}

// Stop halts the poll and the blink. Used on process shutdown.
func (s *ReminderService) Stop() {
	s.Cancel()

	s.mu.Lock()
	started := s.started
	s.started = false
	s.mu.Unlock()

	if started {
		s.sched.Stop()
	}
}

// Permission reads the notifier's current permission state.
func (s *ReminderService) Permission() notify.Permission {
	return s.notifier.Permission()
}

// RequestPermission passes through to the notifier. When the state flips to
// granted, a dehydration check runs right away so a user who grants
// permission mid-session gets their pending reminder immediately.
func (s *ReminderService) RequestPermission(ctx context.Context) (notify.Permission, error) {
	before := s.notifier.Permission()
	state, err := s.notifier.RequestPermission(ctx)
	if err != nil {
		return state, err
	}

	if before != notify.PermissionGranted && state == notify.PermissionGranted {
		s.CheckDehydration(ctx)
	}
	return state, nil
}

// CheckDehydration is one poll tick. When the user is behind pace it starts
// the title blink and, with permission granted, shows a notification.
// Notifier failures are logged, never propagated: a failed reminder must not
// break tracking.
func (s *ReminderService) CheckDehydration(ctx context.Context) {
	dehydrated, err := s.drinks.IsDehydrated(ctx)
	if err != nil {
		log.Printf("reminder: check dehydration: %v", err)
		return
	}
	if !dehydrated {
		return
	}

	missing, err := s.drinks.ExpectedAmountDifference(ctx)
	if err != nil {
		log.Printf("reminder: expected amount: %v", err)
		return
	}

	body := fmt.Sprintf("You are %d ml short!", int(math.Round(missing)))
	coverage, err := s.catalog.CupsCoveringAmount(ctx, missing)
	if err != nil {
		log.Printf("reminder: cup coverage: %v", err)
	} else if coverage.Text != "" {
		body += fmt.Sprintf(" %s should do it!", coverage.Text)
	}

	s.startBlink()

	if s.notifier.Permission() == notify.PermissionGranted {
		if err := s.notifier.Show(ctx, notify.Notification{
			Title:    reminderTitle,
			Body:     body,
			Tag:      notificationTag,
			Renotify: true,
		}); err != nil {
			log.Printf("reminder: show notification: %v", err)
		}
	}
}

// Cancel stops the title blink and restores the baseline title. It is
// idempotent and callable at any time. The underlying poll keeps running.
func (s *ReminderService) Cancel() {
	s.mu.Lock()
	stop := s.blinkStop
	s.blinkStop = nil
	s.mu.Unlock()

	if stop != nil {
		close(stop)
	}
	s.title.Set(baseTitle)
}

func (s *ReminderService) startBlink() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.blinkStop != nil {
		return
	}

	stop := make(chan struct{})
	s.blinkStop = stop

	go func() {
		ticker := time.NewTicker(s.blinkEvery)
		defer ticker.Stop()

		show := true
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if show {
					s.title.Set(reminderTitle)
				} else {
					s.title.Set(blinkPlaceholder)
				}
				show = !show
			}
		}
	}()
}

func (s *ReminderService) blinking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blinkStop != nil
}
