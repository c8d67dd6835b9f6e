package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config keeps runtime settings for the tracker process.
type Config struct {
	DatabaseURL      string
	TelegramToken    string
	TelegramChatID   int64
	ReminderInterval time.Duration
}

// Load reads configuration from environment variables with sane defaults.
// The Telegram settings are optional; without them notifications fall back
// to the process log.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		TelegramToken:    strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		TelegramChatID:   parseChatID(strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID"))),
		ReminderInterval: parseInterval(strings.TrimSpace(os.Getenv("REMINDER_INTERVAL_MINUTES"))),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "woah.db"
	}

	if cfg.ReminderInterval == 0 {
		cfg.ReminderInterval = 15 * time.Minute
	}

	return cfg, nil
}

func parseChatID(raw string) int64 {
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	minutes, err := time.ParseDuration(raw + "m")
	if err != nil || minutes <= 0 {
		return 0
	}
	return minutes
}
