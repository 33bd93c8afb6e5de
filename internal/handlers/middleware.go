package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// tokenHeader is the custom header clients present the token in.
	// Kept as-is for wire compatibility with existing clients.
	tokenHeader = "token"

	// userIDKey is the gin context key the verified owner id is stored under.
	userIDKey = "userId"

	errInvalidToken = "invalid token"
)

// tokenAuthMiddleware gates every todo route: it verifies the token header
// and stores the decoded owner id in the context. Any failure short-circuits
// the request with 401 before the downstream handler runs.
func (h *Handler) tokenAuthMiddleware(c *gin.Context) {
	token := c.GetHeader(tokenHeader)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": errInvalidToken,
		})
		return
	}

	userID, err := h.services.ParseToken(token)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_token_rejected", "err", err)
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": errInvalidToken,
		})
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}

// authedUserID reads the owner id the middleware stored in the context.
func authedUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
