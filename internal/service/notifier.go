package service

import (
	"gearguard-backend/internal/logger"
)

// Notifier receives informational events raised by mutation operations, such
// as a request being dragged into the scrap column. Only the event kind and
// subject matter to the contract; presentation strings belong to the caller.
type Notifier interface {
	Notify(kind, message string)
}

// Notification event kinds.
const (
	NotifyScrapFlagged = "scrap_flagged"
	NotifyCreated      = "created"
)

// LogNotifier reports events through the structured logger.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier creates a notifier backed by the application logger.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{log: logger.New()}
}

// Notify logs the event with its kind as a structured field.
func (n *LogNotifier) Notify(kind, message string) {
	n.log.WithField("event", kind).Info(message)
}
