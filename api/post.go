package api

import "time"

type Post struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Content            string    `json:"content"`
	ContentHTML        string    `json:"content_html"`
	Snippet            string    `json:"snippet"`
	Author             string    `json:"author"`
	AuthorID           string    `json:"author_id"`
	AuthorAvatar       string    `json:"author_avatar"`
	Category           string    `json:"category"`
	CategoryLabel      string    `json:"category_label"`
	Tags               []string  `json:"tags"`
	Likes              int       `json:"likes"`
	LikedByCurrentUser bool      `json:"liked_by_current_user"`
	IsBookmarked       bool      `json:"is_bookmarked"`
	Shares             int       `json:"shares"`
	TrendingScore      int       `json:"trending_score"`
	CreatedAt          time.Time `json:"created_at"`
	CommentCount       int       `json:"comment_count"`
	Comments           []Comment `json:"comments"`
	CanDelete          bool      `json:"can_delete"`
}

// PostProto is the body for creating a post. Tags is the raw comma-separated string.
type PostProto struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"`
	Tags     string `json:"tags"`
}

// FeedQuery is bound from the feed's query string.
type FeedQuery struct {
	Category string `form:"category"`
	Search   string `form:"q"`
	Sort     string `form:"sort" binding:"omitempty,oneof=recent popular comments"`
}

type Error struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}
