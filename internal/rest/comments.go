package rest

import (
	"net/http"

	"github.com/dfryer1193/pawfeed/api"
	"github.com/dfryer1193/pawfeed/feed/domain"
	"github.com/dfryer1193/pawfeed/internal/middleware"
	"github.com/gin-gonic/gin"
)

func (h *Handler) GetComments(c *gin.Context) {
	comments, err := h.store.Comments(c.Param("postId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toCommentList(comments, middleware.CurrentIdentity(c)))
}

func (h *Handler) PostComment(c *gin.Context) {
	commentProto := &api.CommentProto{}
	if err := c.ShouldBindJSON(commentProto); err != nil {
		c.JSON(http.StatusBadRequest, api.Error{Error: err.Error(), Reason: string(domain.RejectionValidation)})
		return
	}

	actor := middleware.CurrentIdentity(c)
	post, err := h.store.AddComment(c.Param("postId"), domain.CommentInput{
		Author:       actor.Name,
		AuthorID:     actor.ID,
		AuthorAvatar: actor.Avatar,
		Content:      commentProto.Content,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.toPost(post, actor))
}

func (h *Handler) EditComment(c *gin.Context) {
	proto := &api.EditCommentProto{}
	if err := c.ShouldBindJSON(proto); err != nil {
		c.JSON(http.StatusBadRequest, api.Error{Error: err.Error(), Reason: string(domain.RejectionValidation)})
		return
	}

	actor := middleware.CurrentIdentity(c)
	post, err := h.store.EditComment(actor, c.Param("postId"), c.Param("commentId"), proto.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toPost(post, actor))
}

func (h *Handler) DeleteComment(c *gin.Context) {
	actor := middleware.CurrentIdentity(c)
	post, err := h.store.DeleteComment(actor, c.Param("postId"), c.Param("commentId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toPost(post, actor))
}

func (h *Handler) LikeComment(c *gin.Context) {
	post, err := h.store.LikeComment(c.Param("postId"), c.Param("commentId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toPost(post, middleware.CurrentIdentity(c)))
}
