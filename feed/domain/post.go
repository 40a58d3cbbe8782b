package domain

import (
	"time"
)

// Post is a single entry in the community feed.
// AuthorID is the ownership key; the like flag and Likes counter always move together.
type Post struct {
	ID                 string
	Title              string
	Content            string
	Author             string
	AuthorID           string
	AuthorAvatar       string
	Category           Category
	Tags               []string
	Likes              int
	LikedByCurrentUser bool
	IsBookmarked       bool
	Shares             int
	Timestamp          time.Time
	Comments           []Comment
}

// Clone returns a deep copy so the caller can never write into store state.
func (p *Post) Clone() Post {
	out := *p
	if p.Tags != nil {
		out.Tags = make([]string, len(p.Tags))
		copy(out.Tags, p.Tags)
	}
	if p.Comments != nil {
		out.Comments = make([]Comment, len(p.Comments))
		copy(out.Comments, p.Comments)
	}
	return out
}

// NormalizeCounters clamps counters to zero and makes a liked flag imply at least one like,
// on the post and on each comment, so later toggles keep flag and counter paired.
func (p *Post) NormalizeCounters() {
	p.Likes, p.LikedByCurrentUser = normalizeLikes(p.Likes, p.LikedByCurrentUser)
	if p.Shares < 0 {
		p.Shares = 0
	}
	for i := range p.Comments {
		c := &p.Comments[i]
		c.Likes, c.LikedByCurrentUser = normalizeLikes(c.Likes, c.LikedByCurrentUser)
	}
}

// OwnedBy reports whether the acting identity created the post.
// Ids are compared when both sides carry one, display names otherwise.
func (p *Post) OwnedBy(actor Identity) bool {
	if p.AuthorID != "" && actor.ID != "" {
		return p.AuthorID == actor.ID
	}
	return p.Author != "" && p.Author == actor.Name
}

// ToggleLike flips the like flag and moves the counter by one in the same step.
func (p *Post) ToggleLike() {
	p.LikedByCurrentUser, p.Likes = toggle(p.LikedByCurrentUser, p.Likes)
}

// CommentIndex returns the position of the comment with the given id, or -1.
func (p *Post) CommentIndex(commentID string) int {
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			return i
		}
	}
	return -1
}

// CreatePostRequest is the raw payload a caller submits to create a post.
// Tags is the comma-separated string as typed by the user.
type CreatePostRequest struct {
	Title    string
	Content  string
	Category string
	Tags     string
}

type PostRepository interface {
	// Insert places the post at the front of the feed.
	Insert(p *Post) error
	Get(id string) (*Post, error)
	// List returns every post in storage order, newest first.
	List() []*Post
	Delete(id string) error
	// Update applies fn to a copy of the post and stores the copy only if fn succeeds.
	Update(id string, fn func(p *Post) error) (*Post, error)
	Len() int
}

func normalizeLikes(likes int, liked bool) (int, bool) {
	if likes < 0 {
		likes = 0
	}
	if liked && likes == 0 {
		likes = 1
	}
	return likes, liked
}

func toggle(flag bool, count int) (bool, int) {
	if flag {
		if count > 0 {
			count--
		}
		return false, count
	}
	return true, count + 1
}
