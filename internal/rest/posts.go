package rest

import (
	"fmt"
	"net/http"

	"github.com/dfryer1193/pawfeed/api"
	"github.com/dfryer1193/pawfeed/feed/application"
	"github.com/dfryer1193/pawfeed/feed/domain"
	"github.com/dfryer1193/pawfeed/internal/middleware"
	"github.com/gin-gonic/gin"
)

func (h *Handler) GetPosts(c *gin.Context) {
	var q api.FeedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.Error{Error: err.Error(), Reason: string(domain.RejectionValidation)})
		return
	}

	posts := h.store.Feed(application.FeedQuery{
		Category: q.Category,
		Search:   q.Search,
		SortBy:   application.ParseSortOrder(q.Sort),
	})
	c.JSON(http.StatusOK, h.toPostList(posts, middleware.CurrentIdentity(c)))
}

func (h *Handler) GetTrending(c *gin.Context) {
	c.JSON(http.StatusOK, h.toPostList(h.store.Trending(), middleware.CurrentIdentity(c)))
}

func (h *Handler) GetPost(c *gin.Context) {
	post, err := h.store.GetPost(c.Param("postId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toPost(post, middleware.CurrentIdentity(c)))
}

func (h *Handler) CreatePost(c *gin.Context) {
	var proto api.PostProto
	if err := c.ShouldBindJSON(&proto); err != nil {
		c.JSON(http.StatusBadRequest, api.Error{Error: err.Error(), Reason: string(domain.RejectionValidation)})
		return
	}

	actor := middleware.CurrentIdentity(c)
	post, err := h.store.CreatePost(actor, domain.CreatePostRequest{
		Title:    proto.Title,
		Content:  proto.Content,
		Category: proto.Category,
		Tags:     proto.Tags,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.toPost(post, actor))
}

// DeletePost is where the post ownership gate lives; the store itself does not check it.
func (h *Handler) DeletePost(c *gin.Context) {
	postID := c.Param("postId")
	actor := middleware.CurrentIdentity(c)

	post, err := h.store.GetPost(postID)
	if err != nil {
		writeError(c, err)
		return
	}
	if !post.OwnedBy(actor) {
		writeError(c, fmt.Errorf("post %s: %w", postID, domain.ErrForbidden))
		return
	}

	if err := h.store.DeletePost(postID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) LikePost(c *gin.Context) {
	actor := middleware.CurrentIdentity(c)
	post, err := h.store.LikePost(actor, c.Param("postId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toPost(post, actor))
}

func (h *Handler) BookmarkPost(c *gin.Context) {
	post, err := h.store.BookmarkPost(c.Param("postId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toPost(post, middleware.CurrentIdentity(c)))
}

func (h *Handler) SharePost(c *gin.Context) {
	post, err := h.store.SharePost(c.Param("postId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toPost(post, middleware.CurrentIdentity(c)))
}
