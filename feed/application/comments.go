package application

import (
	"fmt"
	"strings"

	"github.com/dfryer1193/pawfeed/feed/domain"
)

// AddComment appends a comment to the end of the post's thread.
func (s *PostStore) AddComment(postID string, in domain.CommentInput) (domain.Post, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return domain.Post{}, fmt.Errorf("comment content is empty: %w", domain.ErrValidation)
	}

	updated, err := s.repo.Update(postID, func(p *domain.Post) error {
		p.Comments = append(p.Comments, domain.Comment{
			ID:           s.newID(),
			Author:       in.Author,
			AuthorAvatar: in.AuthorAvatar,
			Content:      content,
			Timestamp:    s.now(),
		})
		return nil
	})
	if err != nil {
		return domain.Post{}, err
	}

	s.notify(in.Actor(), updated, domain.NotificationComment)
	return *updated, nil
}

// EditComment replaces the content of a comment owned by actor.
// Timestamp and likes are left as they were.
func (s *PostStore) EditComment(actor domain.Identity, postID, commentID, newContent string) (domain.Post, error) {
	content := strings.TrimSpace(newContent)
	if content == "" {
		return domain.Post{}, fmt.Errorf("comment content is empty: %w", domain.ErrValidation)
	}

	updated, err := s.repo.Update(postID, func(p *domain.Post) error {
		c, err := ownedComment(p, actor, commentID)
		if err != nil {
			return err
		}
		c.Content = content
		return nil
	})
	if err != nil {
		return domain.Post{}, err
	}
	return *updated, nil
}

// DeleteComment removes exactly one comment owned by actor.
func (s *PostStore) DeleteComment(actor domain.Identity, postID, commentID string) (domain.Post, error) {
	updated, err := s.repo.Update(postID, func(p *domain.Post) error {
		if _, err := ownedComment(p, actor, commentID); err != nil {
			return err
		}
		i := p.CommentIndex(commentID)
		p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
		return nil
	})
	if err != nil {
		return domain.Post{}, err
	}
	return *updated, nil
}

// LikeComment toggles the current user's like on a comment. Anyone may like any comment.
func (s *PostStore) LikeComment(postID, commentID string) (domain.Post, error) {
	updated, err := s.repo.Update(postID, func(p *domain.Post) error {
		i := p.CommentIndex(commentID)
		if i < 0 {
			return fmt.Errorf("comment %s: %w", commentID, domain.ErrNotFound)
		}
		p.Comments[i].ToggleLike()
		return nil
	})
	if err != nil {
		return domain.Post{}, err
	}
	return *updated, nil
}

// Comments returns the post's thread in arrival order.
func (s *PostStore) Comments(postID string) ([]domain.Comment, error) {
	p, err := s.repo.Get(postID)
	if err != nil {
		return nil, err
	}
	return p.Comments, nil
}

func ownedComment(p *domain.Post, actor domain.Identity, commentID string) (*domain.Comment, error) {
	i := p.CommentIndex(commentID)
	if i < 0 {
		return nil, fmt.Errorf("comment %s: %w", commentID, domain.ErrNotFound)
	}
	c := &p.Comments[i]
	if !c.OwnedBy(actor) {
		return nil, fmt.Errorf("comment %s: %w", commentID, domain.ErrForbidden)
	}
	return c, nil
}
