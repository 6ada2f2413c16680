package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	"github.com/fintrack-app/fintrack/internal/domain/port/usecase"
)

// Keys under which the auth middleware stores the resolved identity
const (
	userKey    = "currentUser"
	sessionKey = "currentSession"
)

// RequireAuth resolves the session cookie and loads the signed-in user.
// Anonymous or stale cookies get cleared and redirected to the login page.
func RequireAuth(authUseCase usecase.AuthUseCase, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		user, session, err := authUseCase.Authenticate(c.Request.Context(), token)
		if err != nil {
			// Stale cookie; drop it so the browser stops sending it
			c.SetCookie(cookieName, "", -1, "/", "", false, true)
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Set(sessionKey, session)
		c.Next()
	}
}

// CurrentUser returns the signed-in user set by RequireAuth
func CurrentUser(c *gin.Context) *entity.User {
	if user, ok := c.Get(userKey); ok {
		if u, ok := user.(*entity.User); ok {
			return u
		}
	}
	return nil
}

// CurrentSession returns the session set by RequireAuth
func CurrentSession(c *gin.Context) *entity.Session {
	if session, ok := c.Get(sessionKey); ok {
		if s, ok := session.(*entity.Session); ok {
			return s
		}
	}
	return nil
}
