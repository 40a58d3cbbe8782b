package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/dfryer1193/pawfeed/feed/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name    string
		note    domain.Notification
		want    string
		wantErr bool
	}{
		{
			name: "like",
			note: domain.Notification{Kind: domain.NotificationLike, ActorName: "Bob", PostTitle: "Walkies"},
			want: `Bob liked your post "Walkies"`,
		},
		{
			name: "comment",
			note: domain.Notification{Kind: domain.NotificationComment, ActorName: "Bob", PostTitle: "Walkies"},
			want: `Bob commented on your post "Walkies"`,
		},
		{
			name:    "unknown kind",
			note:    domain.Notification{Kind: "share"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Message(tt.note)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogNotifier_Notify(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(zerolog.New(&buf))

	err := n.Notify(context.Background(), domain.Notification{
		Kind:        domain.NotificationLike,
		ActorName:   "Bob",
		PostTitle:   "Walkies",
		RecipientID: "u-alice",
	})
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "notifier", entry["component"])
	assert.Equal(t, "like", entry["kind"])
	assert.Equal(t, "u-alice", entry["recipientID"])
	assert.Equal(t, `Bob liked your post "Walkies"`, entry["message"])
}

func TestLogNotifier_CancelledContext(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(zerolog.New(&buf))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.Notify(ctx, domain.Notification{Kind: domain.NotificationLike})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}
