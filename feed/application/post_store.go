package application

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dfryer1193/pawfeed/feed/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const defaultTrendingLimit = 5

// PostStore is the single source of truth for the feed. Every operation either fully
// succeeds and returns the updated post, or returns a rejection and leaves state unchanged.
type PostStore struct {
	repo     domain.PostRepository
	notifier domain.Notifier

	now           func() time.Time
	newID         func() string
	trendingLimit int

	// Store lifecycle context - cancelled once Close() has drained pending notifications
	ctx    context.Context
	cancel context.CancelFunc
	wg     *sync.WaitGroup

	// closeMu orders notification dispatch against Close
	closeMu sync.Mutex
	closed  bool
}

type Option func(*PostStore)

// WithNotifier sets the hook invoked after likes and comments on someone else's post.
func WithNotifier(n domain.Notifier) Option {
	return func(s *PostStore) {
		s.notifier = n
	}
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *PostStore) {
		s.now = now
	}
}

// WithIDGenerator overrides how post and comment ids are assigned.
func WithIDGenerator(newID func() string) Option {
	return func(s *PostStore) {
		s.newID = newID
	}
}

// WithTrendingLimit sets how many posts the trending view returns.
func WithTrendingLimit(n int) Option {
	return func(s *PostStore) {
		if n > 0 {
			s.trendingLimit = n
		}
	}
}

func NewPostStore(repo domain.PostRepository, opts ...Option) *PostStore {
	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}
	s := &PostStore{
		repo:          repo,
		now:           time.Now,
		newID:         uuid.NewString,
		trendingLimit: defaultTrendingLimit,
		ctx:           ctx,
		cancel:        cancel,
		wg:            &wg,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close stops accepting new notifications and waits for in-flight ones to be delivered
func (s *PostStore) Close() error {
	s.closeMu.Lock()
	s.closed = true
	s.closeMu.Unlock()

	s.wg.Wait()
	s.cancel()

	return nil
}

// CreatePost validates the request once and prepends the new post to the feed.
func (s *PostStore) CreatePost(actor domain.Identity, req domain.CreatePostRequest) (domain.Post, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" {
		return domain.Post{}, fmt.Errorf("post title is empty: %w", domain.ErrValidation)
	}
	if content == "" {
		return domain.Post{}, fmt.Errorf("post content is empty: %w", domain.ErrValidation)
	}

	post := &domain.Post{
		ID:           s.newID(),
		Title:        title,
		Content:      content,
		Author:       actor.Name,
		AuthorID:     actor.ID,
		AuthorAvatar: actor.Avatar,
		Category:     resolveCategory(req.Category),
		Tags:         ParseTags(req.Tags),
		Timestamp:    s.now(),
		Comments:     []domain.Comment{},
	}

	if err := s.repo.Insert(post); err != nil {
		return domain.Post{}, fmt.Errorf("failed to insert post: %w", err)
	}

	log.Debug().Str("postID", post.ID).Str("category", string(post.Category)).Msg("Post created")
	return post.Clone(), nil
}

// DeletePost removes the post and all its comments.
// Ownership is not checked here; the calling layer gates deletion before invoking it.
func (s *PostStore) DeletePost(postID string) error {
	if err := s.repo.Delete(postID); err != nil {
		return err
	}

	log.Debug().Str("postID", postID).Msg("Post deleted")
	return nil
}

// LikePost toggles the current user's like. Liking someone else's post fires a notification.
func (s *PostStore) LikePost(actor domain.Identity, postID string) (domain.Post, error) {
	updated, err := s.repo.Update(postID, func(p *domain.Post) error {
		p.ToggleLike()
		return nil
	})
	if err != nil {
		return domain.Post{}, err
	}

	if updated.LikedByCurrentUser {
		s.notify(actor, updated, domain.NotificationLike)
	}
	return *updated, nil
}

// BookmarkPost toggles the bookmark flag and nothing else.
func (s *PostStore) BookmarkPost(postID string) (domain.Post, error) {
	updated, err := s.repo.Update(postID, func(p *domain.Post) error {
		p.IsBookmarked = !p.IsBookmarked
		return nil
	})
	if err != nil {
		return domain.Post{}, err
	}
	return *updated, nil
}

// SharePost counts a share. The share itself is handed off to the platform by the caller.
func (s *PostStore) SharePost(postID string) (domain.Post, error) {
	updated, err := s.repo.Update(postID, func(p *domain.Post) error {
		p.Shares++
		return nil
	})
	if err != nil {
		return domain.Post{}, err
	}
	return *updated, nil
}

func (s *PostStore) GetPost(postID string) (domain.Post, error) {
	p, err := s.repo.Get(postID)
	if err != nil {
		return domain.Post{}, err
	}
	return *p, nil
}

func (s *PostStore) Len() int {
	return s.repo.Len()
}

// Feed derives the filtered and sorted view from the current state.
func (s *PostStore) Feed(q FeedQuery) []domain.Post {
	return DeriveFeed(s.snapshot(), q)
}

// Trending ranks the whole feed, ignoring any filters.
func (s *PostStore) Trending() []domain.Post {
	return Trending(s.snapshot(), s.trendingLimit)
}

func (s *PostStore) snapshot() []domain.Post {
	stored := s.repo.List()
	posts := make([]domain.Post, len(stored))
	for i, p := range stored {
		posts[i] = *p
	}
	return posts
}

// notify hands the notification to a background worker. The outcome never affects state.
func (s *PostStore) notify(actor domain.Identity, post *domain.Post, kind domain.NotificationKind) {
	if s.notifier == nil || post.OwnedBy(actor) {
		return
	}

	n := domain.Notification{
		Kind:        kind,
		ActorName:   actor.Name,
		PostTitle:   post.Title,
		RecipientID: post.AuthorID,
	}

	s.closeMu.Lock()
	defer s.closeMu.Unlock()
	if s.closed {
		log.Warn().Str("postID", post.ID).Msg("Store closed, dropping notification")
		return
	}
	s.wg.Go(func() {
		if err := s.notifier.Notify(s.ctx, n); err != nil {
			log.Error().Err(err).Str("kind", string(kind)).Str("postID", post.ID).Msg("Failed to deliver notification")
		}
	})
}

// resolveCategory defaults missing or unknown categories to general rather than rejecting.
func resolveCategory(raw string) domain.Category {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.CategoryGeneral
	}
	c, ok := domain.ParseCategory(raw)
	if !ok {
		log.Debug().Str("category", raw).Msg("Unknown category, defaulting to general")
		return domain.CategoryGeneral
	}
	return c
}

// ParseTags splits a comma-separated tag string, trimming entries and dropping empty ones.
// Order is preserved and duplicates are kept.
func ParseTags(raw string) []string {
	tags := []string{}
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
