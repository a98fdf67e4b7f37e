package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"nouasseur-portal/web/entity"
	"nouasseur-portal/web/session"

	"github.com/gin-gonic/gin"
)

// Identify reads the session cookie and, when the token verifies, stores the
// identity in the request context. Verification failure is treated exactly
// like an absent cookie.
func Identify(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err == nil {
			if identity := sessions.Verify(token); identity != nil {
				session.SetIdentity(c, identity)
			}
		}
		c.Next()
	}
}

// RequireAuth gates protected routes. API requests get a 401 envelope;
// browser page requests get a 302 to the login page carrying the original
// path as a return-to parameter.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.IsAuthenticated(c) {
			c.Next()
			return
		}
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, entity.Msg{
				Success: false,
				Error:   "Unauthorized",
			})
			return
		}
		loginURL := "/login?redirectTo=" + url.QueryEscape(c.Request.URL.Path)
		c.Redirect(http.StatusFound, loginURL)
		c.Abort()
	}
}
