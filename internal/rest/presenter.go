package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dfryer1193/pawfeed/api"
	"github.com/dfryer1193/pawfeed/feed/application"
	"github.com/dfryer1193/pawfeed/feed/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func (h *Handler) toPost(p domain.Post, viewer domain.Identity) api.Post {
	rendered := h.render(p.Content)
	return api.Post{
		ID:                 p.ID,
		Title:              p.Title,
		Content:            p.Content,
		ContentHTML:        rendered.HTML,
		Snippet:            rendered.Snippet,
		Author:             p.Author,
		AuthorID:           p.AuthorID,
		AuthorAvatar:       p.AuthorAvatar,
		Category:           string(p.Category),
		CategoryLabel:      categoryLabel(p.Category),
		Tags:               p.Tags,
		Likes:              p.Likes,
		LikedByCurrentUser: p.LikedByCurrentUser,
		IsBookmarked:       p.IsBookmarked,
		Shares:             p.Shares,
		TrendingScore:      application.TrendingScore(p),
		CreatedAt:          p.Timestamp,
		CommentCount:       len(p.Comments),
		Comments:           h.toCommentList(p.Comments, viewer),
		CanDelete:          p.OwnedBy(viewer),
	}
}

func (h *Handler) toPostList(posts []domain.Post, viewer domain.Identity) []api.Post {
	out := make([]api.Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, h.toPost(p, viewer))
	}
	return out
}

func (h *Handler) toCommentList(comments []domain.Comment, viewer domain.Identity) []api.Comment {
	out := make([]api.Comment, 0, len(comments))
	for i := range comments {
		c := &comments[i]
		out = append(out, api.Comment{
			ID:                 c.ID,
			Author:             c.Author,
			AuthorAvatar:       c.AuthorAvatar,
			Content:            c.Content,
			ContentHTML:        h.render(c.Content).HTML,
			CreatedAt:          c.Timestamp,
			Likes:              c.Likes,
			LikedByCurrentUser: c.LikedByCurrentUser,
			CanEdit:            c.OwnedBy(viewer),
		})
	}
	return out
}

func (h *Handler) render(content string) application.RenderedContent {
	if h.markdown == nil {
		return application.RenderedContent{}
	}
	rendered, err := h.markdown.Render(content)
	if err != nil {
		log.Error().Err(err).Msg("Failed to render content")
		return application.RenderedContent{}
	}
	return *rendered
}

// categoryLabel formats a category for display, e.g. "lost-found" -> "Lost Found".
func categoryLabel(c domain.Category) string {
	words := strings.Split(string(c), "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	}

	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.JSON(status, api.Error{Error: "internal server error"})
		return
	}
	c.JSON(status, api.Error{Error: err.Error(), Reason: string(domain.RejectionOf(err))})
}
