package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dfryer1193/pawfeed/feed/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	posts []domain.Post
	err   error
}

func (s staticSource) LoadSeed(context.Context) ([]domain.Post, error) {
	return s.posts, s.err
}

func TestSeed_KeepsOrderAndSkipsInvalid(t *testing.T) {
	s := newTestStore(t)
	src := staticSource{posts: []domain.Post{
		{ID: "a", Title: "First", Content: "one"},
		{ID: "blank", Title: "  ", Content: "dropped"},
		{ID: "b", Title: "Second", Content: "two"},
		{ID: "a", Title: "Duplicate", Content: "dropped"},
		{ID: "c", Title: "Third", Content: "three"},
	}}

	n, err := s.Seed(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	posts := s.snapshot()
	assert.Equal(t, []string{"a", "b", "c"}, postIDs(posts))
	assert.Equal(t, "First", posts[0].Title)
}

func TestSeed_Normalizes(t *testing.T) {
	s := newTestStore(t)
	stamp := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	src := staticSource{posts: []domain.Post{
		{
			Title:              " Title ",
			Content:            " Body ",
			Category:           "not-a-category",
			LikedByCurrentUser: true,
			Likes:              0,
			Shares:             -3,
			Timestamp:          stamp,
			Comments: []domain.Comment{
				{Content: "  kept  "},
				{Content: "   "},
				{ID: "c-liked", Content: "liked", LikedByCurrentUser: true, Likes: -1},
			},
		},
	}}

	_, err := s.Seed(context.Background(), src)
	require.NoError(t, err)

	posts := s.snapshot()
	require.Len(t, posts, 1)
	p := posts[0]
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Title", p.Title)
	assert.Equal(t, "Body", p.Content)
	assert.Equal(t, domain.CategoryGeneral, p.Category)
	assert.Equal(t, 1, p.Likes)
	assert.True(t, p.LikedByCurrentUser)
	assert.Zero(t, p.Shares)
	assert.NotNil(t, p.Tags)

	require.Len(t, p.Comments, 2)
	assert.Equal(t, "kept", p.Comments[0].Content)
	assert.NotEmpty(t, p.Comments[0].ID)
	assert.Equal(t, stamp, p.Comments[0].Timestamp)
	assert.Equal(t, 1, p.Comments[1].Likes)

	// the normalized pair toggles back to a consistent state
	unliked, err := s.LikePost(alice, p.ID)
	require.NoError(t, err)
	assert.Zero(t, unliked.Likes)
	assert.False(t, unliked.LikedByCurrentUser)
}

func TestSeed_SourceError(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Seed(context.Background(), staticSource{err: errors.New("unreachable")})

	assert.Error(t, err)
	assert.Equal(t, 0, s.Len())
}
