package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"employee-admin/internal/service"
)

const sessionCookie = "token"

// SessionGate guards routes behind the login session. The token is
// fully verified (signature and expiry), never just checked for
// presence.
type SessionGate struct {
	auth *service.AuthService
}

func NewSessionGate(auth *service.AuthService) *SessionGate {
	return &SessionGate{auth: auth}
}

// RequireSession redirects unauthenticated requests to /login. A
// cookie that fails verification is cleared before the redirect so the
// client does not keep replaying a dead token.
func (g *SessionGate) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		claims, err := g.auth.VerifySession(token)
		if err != nil {
			c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userName", claims.UserName)
		c.Next()
	}
}

// RedirectIfAuthenticated keeps clients holding a valid session away
// from the login endpoint.
func (g *SessionGate) RedirectIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}
		if _, err := g.auth.VerifySession(token); err != nil {
			c.Next()
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
		c.Abort()
	}
}
