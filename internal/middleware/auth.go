package middleware

import (
	"net/http"

	"inkwell/internal/config"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// Session keys written by the OAuth callback. These three fields are the
// whole identity the application keeps.
const (
	SessionEmail = "email"
	SessionName  = "name"
	SessionImage = "user_image"
)

// SessionUser is the authenticated identity carried through a request. It is
// rebuilt from the session on every request; nothing is re-verified against
// the provider.
type SessionUser struct {
	Email   string
	Name    string
	Image   string
	IsAdmin bool
}

// LoadUser retrieves the identity from the session and sets it on the context
func LoadUser(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		email, _ := session.Get(SessionEmail).(string)

		if email != "" {
			name, _ := session.Get(SessionName).(string)
			image, _ := session.Get(SessionImage).(string)
			c.Set(CheckUserKey, &SessionUser{
				Email:   email,
				Name:    name,
				Image:   image,
				IsAdmin: cfg.IsAdmin(email),
			})
		}
		c.Next()
	}
}

// AuthRequired ensures a user is logged in. Every gated route redirects the
// same way instead of failing on a missing session key.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired gates moderation routes on the configured administrator
// address. Runs after AuthRequired, so the user is always present here.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet(CheckUserKey).(*SessionUser)
		if !user.IsAdmin {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the session user, or nil on public routes without one.
func CurrentUser(c *gin.Context) *SessionUser {
	if u, exists := c.Get(CheckUserKey); exists {
		return u.(*SessionUser)
	}
	return nil
}
