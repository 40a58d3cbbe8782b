package seed

import (
	"context"
	"testing"
	"time"

	"github.com/dfryer1193/pawfeed/feed/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoSource_LoadSeed(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	src := &DemoSource{Now: func() time.Time { return now }}

	posts, err := src.LoadSeed(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, posts)

	seen := map[string]bool{}
	for _, p := range posts {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true

		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Content)
		assert.NotEmpty(t, p.AuthorID)
		_, ok := domain.ParseCategory(string(p.Category))
		assert.True(t, ok, "post %s has category %q", p.ID, p.Category)
		assert.True(t, p.Timestamp.Before(now))
		if p.LikedByCurrentUser {
			assert.Positive(t, p.Likes)
		}

		for i := 1; i < len(p.Comments); i++ {
			assert.False(t, p.Comments[i].Timestamp.Before(p.Comments[i-1].Timestamp))
		}
	}
}
