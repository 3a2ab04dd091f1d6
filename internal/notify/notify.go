package notify

import (
	"os/exec"
	"strconv"
	"time"
)

// Urgency levels for notifications
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification represents a desktop notification
type Notification struct {
	Title   string
	Body    string
	Urgency Urgency
	Timeout time.Duration
	Icon    string // Optional icon name
}

// Notifier sends operation results to the desktop
type Notifier struct {
	enabled bool
	run     func(name string, args ...string) error
}

// NewNotifier creates a notifier. Disabled notifiers drop everything.
func NewNotifier(enabled bool) *Notifier {
	return &Notifier{
		enabled: enabled,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// SetEnabled enables or disables notifications
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled = enabled
}

// IsEnabled returns whether notifications are enabled
func (n *Notifier) IsEnabled() bool {
	return n.enabled
}

// Args returns the notify-send arguments for a notification
func Args(notification Notification) []string {
	args := []string{}

	switch notification.Urgency {
	case UrgencyLow:
		args = append(args, "-u", "low")
	case UrgencyCritical:
		args = append(args, "-u", "critical")
	default:
		args = append(args, "-u", "normal")
	}

	// Timeout is in milliseconds
	if notification.Timeout > 0 {
		args = append(args, "-t", strconv.Itoa(int(notification.Timeout.Milliseconds())))
	}

	if notification.Icon != "" {
		args = append(args, "-i", notification.Icon)
	}

	args = append(args, "-a", "gestor")

	args = append(args, notification.Title)
	if notification.Body != "" {
		args = append(args, notification.Body)
	}
	return args
}

// Send sends a desktop notification using notify-send
func (n *Notifier) Send(notification Notification) error {
	if n == nil || !n.enabled {
		return nil
	}
	return n.run("notify-send", Args(notification)...)
}

// Result reports the outcome of a store operation. Failures are sent as
// critical so they stay on screen.
func (n *Notifier) Result(title, message string, failed bool) error {
	notification := Notification{
		Title:   title,
		Body:    message,
		Urgency: UrgencyLow,
		Timeout: 5 * time.Second,
		Icon:    "emblem-ok-symbolic",
	}
	if failed {
		notification.Urgency = UrgencyCritical
		notification.Timeout = 10 * time.Second
		notification.Icon = "dialog-error-symbolic"
	}
	return n.Send(notification)
}
