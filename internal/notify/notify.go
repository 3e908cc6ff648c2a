// Package notify provides cross-platform desktop notifications, used to
// announce finished focus cycles and breaks. It shells out to the native
// mechanism on macOS (osascript) and Linux (notify-send) and degrades to a
// no-op elsewhere.
package notify

import "fmt"

// Notifier sends desktop notifications.
type Notifier interface {
	// Send shows a notification with the given title and message.
	Send(title, message string) error

	// SendWithSound shows a notification with sound.
	SendWithSound(title, message string) error

	// IsSupported reports whether this platform can show notifications.
	IsSupported() bool
}

type noopNotifier struct{}

func (noopNotifier) Send(title, message string) error          { return nil }
func (noopNotifier) SendWithSound(title, message string) error { return nil }
func (noopNotifier) IsSupported() bool                         { return false }

// New creates a platform-specific notifier, falling back to a no-op when the
// platform has no usable mechanism.
func New() Notifier {
	n := newPlatformNotifier()
	if n == nil || !n.IsSupported() {
		return noopNotifier{}
	}
	return n
}

// CycleFinished sends the end-of-cycle notification for the named cycle
// type ("focus", "short break", "long break").
func CycleFinished(n Notifier, cycle string, sound bool) error {
	message := fmt.Sprintf("%s finished", cycle)
	if sound {
		return n.SendWithSound("pomo", message)
	}
	return n.Send("pomo", message)
}
