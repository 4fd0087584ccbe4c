package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jagdish-cm/cricketora-sub000/pkg/token"
)

const (
	AuthMatchIDKey = "auth_match_id"
)

// ScorerAuthMiddleware guards scoring endpoints. The bearer token must be
// a scorer session token issued for the match named in the route.
func ScorerAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format. Expected: Bearer <token>"})
			return
		}

		claims, err := token.ValidateScorerToken(bearerToken[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			return
		}

		if matchID := c.Param("id"); matchID != "" && matchID != claims.MatchID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token is not valid for this match"})
			return
		}

		c.Set(AuthMatchIDKey, claims.MatchID)
		c.Next()
	}
}

// GetMatchIDFromContext extracts the authorized match id from the context.
func GetMatchIDFromContext(c *gin.Context) (string, error) {
	matchID, exists := c.Get(AuthMatchIDKey)
	if !exists {
		return "", errors.New("match ID not found in context")
	}
	id, ok := matchID.(string)
	if !ok {
		return "", errors.New("match ID in context has unexpected type")
	}
	return id, nil
}
