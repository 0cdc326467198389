// Package middleware contains gin middleware for the web server.
package middleware

import (
	"net/http"
	"strings"

	"github.com/vahanscan/vahanscan/database/model"
	"github.com/vahanscan/vahanscan/logger"
	"github.com/vahanscan/vahanscan/web/entity"
	"github.com/vahanscan/vahanscan/web/service"
	"github.com/vahanscan/vahanscan/web/session"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the session token. API clients may
// send the same token as an Authorization bearer instead.
const SessionCookie = "vahanscan_session"

const loginUser = "LOGIN_USER"

// TokenFromRequest extracts the session token from the cookie or the
// Authorization header. Empty string means no token was supplied.
func TokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		return token
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// SessionAuth is the authorization gate for protected routes. It resolves
// the supplied token to an existing user and stores that user in the gin
// context; handlers must take the owner id from there, never from the
// request itself. Any failure aborts with the same 401 response so callers
// learn nothing about why.
func SessionAuth(sessions *session.Manager, users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok, err := sessions.Resolve(TokenFromRequest(c))
		if err != nil {
			logger.Warning("resolve session:", err)
		}
		if !ok {
			abortUnauthenticated(c)
			return
		}

		user, err := users.GetUser(userId)
		if err != nil {
			// A valid session must resolve to an existing user.
			abortUnauthenticated(c)
			return
		}

		c.Set(loginUser, user)
		c.Next()
	}
}

// GetLoginUser returns the user resolved by SessionAuth, or nil outside
// protected routes.
func GetLoginUser(c *gin.Context) *model.User {
	if obj, ok := c.Get(loginUser); ok {
		if user, ok := obj.(*model.User); ok {
			return user
		}
	}
	return nil
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, entity.Msg{
		Success: false,
		Msg:     "authentication required",
	})
}
