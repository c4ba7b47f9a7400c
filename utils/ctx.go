package utils

import "github.com/gin-gonic/gin"

func CurrentUserID(c *gin.Context) string {
	if v, ok := c.Get("userId"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// CurrentToken is the raw bearer token, set by the auth middleware so the
// sign-out handler can clear its session.
func CurrentToken(c *gin.Context) string {
	if v, ok := c.Get("token"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
