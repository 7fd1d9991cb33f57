package auth

import (
	"net/http"
	"strconv"

	"equarior/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// AuthMiddleware creates a gin middleware that gates a route group on a
// signed bearer token.
//
// The credential is the raw Authorization header value; there is no Bearer
// prefix. Exactly one Authorization header must be present; zero or several
// make the request ambiguous and it is rejected before any handler runs.
// Every request performs a fresh verification; nothing is cached.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		headers := c.Request.Header.Values("Authorization")
		if len(headers) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"details": "expected exactly one Authorization header"})
			return
		}

		subject, err := jwt.ParseSubject(headers[0])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"details": err.Error()})
			return
		}

		userID, err := strconv.ParseUint(subject, 10, 32)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"details": "token subject is not a user id"})
			return
		}

		c.Set(userIDKey, uint(userID))
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id set by AuthMiddleware.
func CurrentUserID(c *gin.Context) (uint, bool) {
	if v, exists := c.Get(userIDKey); exists {
		if id, ok := v.(uint); ok {
			return id, true
		}
	}
	return 0, false
}
