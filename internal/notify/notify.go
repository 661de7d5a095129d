// Package notify sends desktop notifications over the freedesktop D-Bus
// interface.
package notify

const (
	appName = "albums"
	appID   = "albums"
)

// Urgency is the freedesktop urgency hint.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification is one desktop notification.
type Notification struct {
	Title      string  // summary, required
	Body       string  // may hold basic markup, callers escape text
	Icon       string  // icon name or image path
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification
	Urgency    Urgency // low, normal, critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends n and returns the ID the server assigned, or 0 when
	// nothing was sent.
	Notify(n Notification) (uint32, error)
	// Close withdraws a notification.
	Close(id uint32) error
}

// Disabled returns a notifier that sends nothing.
func Disabled() Notifier {
	return disabled{}
}

type disabled struct{}

func (disabled) Notify(Notification) (uint32, error) { return 0, nil }

func (disabled) Close(uint32) error { return nil }
