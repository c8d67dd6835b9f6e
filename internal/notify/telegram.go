package notify

import (
	"context"
	"fmt"
	"log"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram delivers notifications as Telegram messages. Permission maps to
// configuration: without a chat id there is nobody to message, so a request
// resolves to denied; with one it resolves to granted. Tagged renotify
// messages delete their predecessor first so alerts replace rather than pile
// up in the chat.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64

	mu       sync.Mutex
	state    Permission
	lastSent map[string]int
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Printf("[info] notifier authorized on account %s", api.Self.UserName)

	return &Telegram{
		api:      api,
		chatID:   chatID,
		state:    PermissionUnknown,
		lastSent: make(map[string]int),
	}, nil
}

func (t *Telegram) RequestPermission(ctx context.Context) (Permission, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.chatID == 0 {
		t.state = PermissionDenied
	} else {
		t.state = PermissionGranted
	}
	return t.state, nil
}

func (t *Telegram) Permission() Permission {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Telegram) Show(ctx context.Context, n Notification) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != PermissionGranted {
		return fmt.Errorf("notification permission is %s", t.state)
	}

	if n.Tag != "" && n.Renotify {
		if previous, ok := t.lastSent[n.Tag]; ok {
			if _, err := t.api.Request(tgbotapi.NewDeleteMessage(t.chatID, previous)); err != nil {
				log.Printf("delete previous notification: %v", err)
			}
		}
	}

	msg := tgbotapi.NewMessage(t.chatID, fmt.Sprintf("%s\n%s", n.Title, n.Body))
	sent, err := t.api.Send(msg)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	if n.Tag != "" {
		t.lastSent[n.Tag] = sent.MessageID
	}
	return nil
}
