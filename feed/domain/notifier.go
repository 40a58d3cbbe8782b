package domain

import "context"

type NotificationKind string

const (
	NotificationLike    NotificationKind = "like"
	NotificationComment NotificationKind = "comment"
)

// Notification describes a like or comment on someone else's post.
type Notification struct {
	Kind        NotificationKind
	ActorName   string
	PostTitle   string
	RecipientID string
}

// Notifier delivers notifications. Delivery is fire-and-forget; errors are only logged.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(ctx context.Context, n Notification) error

func (f NotifierFunc) Notify(ctx context.Context, n Notification) error {
	return f(ctx, n)
}
