package api

import "time"

type Comment struct {
	ID                 string    `json:"id"`
	Author             string    `json:"author"`
	AuthorAvatar       string    `json:"author_avatar"`
	Content            string    `json:"content"`
	ContentHTML        string    `json:"content_html"`
	CreatedAt          time.Time `json:"created_at"`
	Likes              int       `json:"likes"`
	LikedByCurrentUser bool      `json:"liked_by_current_user"`
	CanEdit            bool      `json:"can_edit"`
}

// CommentProto is the body for adding a comment. The author comes from the request identity.
type CommentProto struct {
	Content string `json:"content" binding:"required"`
}

type EditCommentProto struct {
	Content string `json:"content" binding:"required"`
}
