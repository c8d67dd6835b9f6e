// Package notify defines the external notification capability the reminder
// depends on, plus the shipped implementations.
package notify

import "context"

// Permission is the tri-state notification capability.
type Permission string

const (
	PermissionUnknown Permission = "unknown"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Notification is one message to show the user. Showing a second
// notification with the same Tag and Renotify set replaces the previous one
// instead of stacking next to it.
type Notification struct {
	Title    string
	Body     string
	Tag      string
	Renotify bool
}

// Notifier delivers notifications. Implementations own the permission state;
// callers only read it and pass RequestPermission through.
type Notifier interface {
	RequestPermission(ctx context.Context) (Permission, error)
	Permission() Permission
	Show(ctx context.Context, n Notification) error
}

// TitleBar is the visible title the reminder blinks its nag message in.
type TitleBar interface {
	Set(title string)
}
