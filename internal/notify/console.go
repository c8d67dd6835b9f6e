package notify

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
)

// Console writes notifications to the process log. Permission is always
// granted, so the reminder loop works without any notifier configuration.
type Console struct{}

func NewConsole() *Console {
	return &Console{}
}

func (c *Console) RequestPermission(ctx context.Context) (Permission, error) {
	return PermissionGranted, nil
}

func (c *Console) Permission() Permission {
	return PermissionGranted
}

func (c *Console) Show(ctx context.Context, n Notification) error {
	log.Printf("[notify] %s: %s", n.Title, n.Body)
	return nil
}

// TermTitle sets the terminal window title via the xterm OSC escape, the
// process-level stand-in for a browser tab title.
type TermTitle struct {
	w io.Writer
}

func NewTermTitle(w io.Writer) *TermTitle {
	if w == nil {
		w = os.Stdout
	}
	return &TermTitle{w: w}
}

func (t *TermTitle) Set(title string) {
	fmt.Fprintf(t.w, "\x1b]0;%s\x07", title)
}
