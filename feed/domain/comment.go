package domain

import "time"

// Comment belongs to exactly one post and is kept in arrival order.
type Comment struct {
	ID                 string
	Author             string
	AuthorAvatar       string
	Content            string
	Timestamp          time.Time
	Likes              int
	LikedByCurrentUser bool
}

// OwnedBy reports whether the acting identity wrote the comment.
// Comments carry no author id, so ownership is matched on the display name.
func (c *Comment) OwnedBy(actor Identity) bool {
	return c.Author != "" && c.Author == actor.Name
}

func (c *Comment) ToggleLike() {
	c.LikedByCurrentUser, c.Likes = toggle(c.LikedByCurrentUser, c.Likes)
}

// CommentInput is the payload for adding a comment to a post.
// AuthorID is optional and only used to tell whether the commenter owns the post.
type CommentInput struct {
	Author       string
	AuthorID     string
	AuthorAvatar string
	Content      string
}

// Actor returns the identity adding the comment.
func (in CommentInput) Actor() Identity {
	return Identity{ID: in.AuthorID, Name: in.Author, Avatar: in.AuthorAvatar}
}
