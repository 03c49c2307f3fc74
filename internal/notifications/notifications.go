// Package notifications defines how pennyflow notifies users about
// events such as settled or failed direct debits.
//
// Actual delivery (push, e-mail) happens outside of this backend. The
// Dispatcher interface is the seam to that infrastructure.
package notifications

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Priority determines how prominently a notification is delivered.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Notification is one message for one user.
type Notification struct {
	Title    string
	Message  string
	Priority Priority
	Data     map[string]string
}

// Dispatcher delivers notifications to users.
//
// Dispatch errors must never affect the outcome of the operation that
// produced the notification, callers log and discard them.
type Dispatcher interface {
	Dispatch(ctx context.Context, userID uuid.UUID, notification Notification) error
}

// LogDispatcher writes notifications to the log. It is used when no
// delivery infrastructure is configured.
type LogDispatcher struct{}

func (LogDispatcher) Dispatch(_ context.Context, userID uuid.UUID, notification Notification) error {
	log.Info().
		Str("user", userID.String()).
		Str("title", notification.Title).
		Str("priority", string(notification.Priority)).
		Fields(map[string]interface{}{"data": notification.Data}).
		Msg(notification.Message)

	return nil
}
