package rest

import (
	"github.com/dfryer1193/pawfeed/feed/application"
	"github.com/gin-gonic/gin"
)

// Handler serves the feed over HTTP. It holds no state of its own.
type Handler struct {
	store    *application.PostStore
	markdown application.MarkdownRenderer
}

func NewHandler(store *application.PostStore, markdown application.MarkdownRenderer) *Handler {
	return &Handler{
		store:    store,
		markdown: markdown,
	}
}

func NewApi(router gin.IRouter, h *Handler) {
	postsV1 := router.Group("posts/v1")
	{
		postsV1.GET("/", h.GetPosts)
		postsV1.GET("/trending", h.GetTrending)
		postsV1.GET("/:postId", h.GetPost)
		postsV1.POST("/", h.CreatePost)
		postsV1.DELETE("/:postId", h.DeletePost)
		postsV1.POST("/:postId/like", h.LikePost)
		postsV1.POST("/:postId/bookmark", h.BookmarkPost)
		postsV1.POST("/:postId/share", h.SharePost)
	}

	commentsV1 := router.Group("comments/v1")
	{
		commentsV1.GET("/:postId", h.GetComments)
		commentsV1.POST("/:postId", h.PostComment)
		commentsV1.PATCH("/:postId/:commentId", h.EditComment)
		commentsV1.DELETE("/:postId/:commentId", h.DeleteComment)
		commentsV1.POST("/:postId/:commentId/like", h.LikeComment)
	}
}
