package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/dfryer1193/pawfeed/feed/domain"
	"github.com/rs/zerolog/log"
)

// Seed loads posts from src and stores them in the order given, first entry at the front
// of the feed. Entries that would fail CreatePost validation are skipped.
func (s *PostStore) Seed(ctx context.Context, src domain.SeedSource) (int, error) {
	posts, err := src.LoadSeed(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load seed posts: %w", err)
	}

	valid := make([]*domain.Post, 0, len(posts))
	seen := make(map[string]struct{}, len(posts))
	for i := range posts {
		p, err := s.normalizeSeedPost(posts[i])
		if err != nil {
			log.Warn().Err(err).Int("index", i).Str("postID", posts[i].ID).Msg("Skipping seed post")
			continue
		}
		if _, dup := seen[p.ID]; dup {
			log.Warn().Int("index", i).Str("postID", p.ID).Msg("Skipping duplicate seed post")
			continue
		}
		seen[p.ID] = struct{}{}
		valid = append(valid, p)
	}

	// Insert prepends, so walk backwards to keep the seed order
	inserted := 0
	for i := len(valid) - 1; i >= 0; i-- {
		if err := s.repo.Insert(valid[i]); err != nil {
			log.Warn().Err(err).Str("postID", valid[i].ID).Msg("Skipping seed post")
			continue
		}
		inserted++
	}

	log.Info().Int("count", inserted).Msg("Seeded post store")
	return inserted, nil
}

func (s *PostStore) normalizeSeedPost(in domain.Post) (*domain.Post, error) {
	p := in.Clone()
	p.Title = strings.TrimSpace(p.Title)
	p.Content = strings.TrimSpace(p.Content)
	if p.Title == "" || p.Content == "" {
		return nil, fmt.Errorf("seed post has empty title or content: %w", domain.ErrValidation)
	}

	if p.ID == "" {
		p.ID = s.newID()
	}
	p.Category = resolveCategory(string(p.Category))
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Timestamp.IsZero() {
		p.Timestamp = s.now()
	}

	comments := make([]domain.Comment, 0, len(p.Comments))
	for _, c := range p.Comments {
		c.Content = strings.TrimSpace(c.Content)
		if c.Content == "" {
			continue
		}
		if c.ID == "" {
			c.ID = s.newID()
		}
		if c.Timestamp.IsZero() {
			c.Timestamp = p.Timestamp
		}
		comments = append(comments, c)
	}
	p.Comments = comments
	p.NormalizeCounters()

	return &p, nil
}
