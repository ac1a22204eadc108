// Package session implements the onboarding form engine: the mutable
// form session, the dynamic entry collections, the section validation
// orchestrator and the navigation state machine. The package is
// presentation-agnostic: user-visible signals go through a Notifier
// callback and inline field markers are exposed as data.
package session

// Level classifies a notification for the presentation adapter.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notifier receives transient user-facing messages. Implementations
// decide how to render and expire them; the engine only emits.
type Notifier interface {
	Notify(level Level, message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(Level, string) {}
