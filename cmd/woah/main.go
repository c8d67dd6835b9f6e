package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pabueco/woah/internal/config"
	"github.com/pabueco/woah/internal/model"
	"github.com/pabueco/woah/internal/notify"
	"github.com/pabueco/woah/internal/repository"
	"github.com/pabueco/woah/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	contentRepo := repository.NewContentRepository(db)
	cupRepo := repository.NewCupRepository(db)
	drinkRepo := repository.NewDrinkRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	bus := service.NewEventBus()
	catalogSvc := service.NewCatalogService(contentRepo, cupRepo)
	settingsSvc := service.NewSettingsService(settingsRepo)
	drinkSvc := service.NewDrinkService(drinkRepo, catalogSvc, settingsSvc, bus)

	bus.OnDrinkAdded(func(drink model.EnrichedDrink) {
		name := "drink"
		if drink.Content != nil {
			name = drink.Content.Name
		}
		log.Printf("[info] drink added: %s, %d ml", name, drink.Amount)
	})
	bus.OnDailyGoalReached(func() {
		log.Println("[info] daily goal reached")
	})

	var notifier notify.Notifier
	if cfg.TelegramToken != "" {
		notifier, err = notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("notifier: %v", err)
		}
	} else {
		notifier = notify.NewConsole()
	}

	reminder := service.NewReminderService(drinkSvc, catalogSvc, notifier, notify.NewTermTitle(os.Stdout), cfg.ReminderInterval)
	if _, err := reminder.RequestPermission(ctx); err != nil {
		log.Printf("request notification permission: %v", err)
	}
	if err := reminder.Start(); err != nil {
		log.Fatalf("reminder: %v", err)
	}
	defer reminder.Stop()

	log.Println("Hydration reminder started.")
	<-ctx.Done()
	log.Println("Shutdown complete.")
}
