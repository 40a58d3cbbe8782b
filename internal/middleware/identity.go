package middleware

import (
	"github.com/dfryer1193/pawfeed/feed/domain"
	"github.com/gin-gonic/gin"
)

const (
	HeaderUserID     = "X-User-Id"
	HeaderUserName   = "X-User-Name"
	HeaderUserAvatar = "X-User-Avatar"

	identityKey = "pawfeed.identity"
)

// Identity attaches the acting user to the request. Headers win over the fallback;
// they are trusted as-is since authentication happens upstream.
func Identity(fallback domain.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := fallback
		if v := c.GetHeader(HeaderUserID); v != "" {
			id = domain.Identity{ID: v, Name: v}
		}
		if v := c.GetHeader(HeaderUserName); v != "" {
			id.Name = v
		}
		if v := c.GetHeader(HeaderUserAvatar); v != "" {
			id.Avatar = v
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

// CurrentIdentity returns the identity set by the Identity middleware.
func CurrentIdentity(c *gin.Context) domain.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(domain.Identity); ok {
			return id
		}
	}
	return domain.Identity{}
}
