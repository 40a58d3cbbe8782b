package notify

import (
	"context"
	"fmt"

	"github.com/dfryer1193/pawfeed/feed/domain"
	"github.com/rs/zerolog"
)

var _ domain.Notifier = (*LogNotifier)(nil)

// LogNotifier writes notifications to a zerolog logger in place of push delivery.
type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger.With().Str("component", "notifier").Logger(),
	}
}

func (n *LogNotifier) Notify(ctx context.Context, note domain.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message, err := Message(note)
	if err != nil {
		return err
	}

	n.logger.Info().
		Str("kind", string(note.Kind)).
		Str("recipientID", note.RecipientID).
		Str("actor", note.ActorName).
		Msg(message)
	return nil
}

// Message builds the human-readable text for a notification.
func Message(note domain.Notification) (string, error) {
	switch note.Kind {
	case domain.NotificationLike:
		return fmt.Sprintf("%s liked your post %q", note.ActorName, note.PostTitle), nil
	case domain.NotificationComment:
		return fmt.Sprintf("%s commented on your post %q", note.ActorName, note.PostTitle), nil
	}
	return "", fmt.Errorf("unknown notification kind: %s", note.Kind)
}
