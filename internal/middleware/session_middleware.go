package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Marcelo-Uk/student-management/internal/app/access"
	"github.com/Marcelo-Uk/student-management/internal/pkg/auth"
	"github.com/Marcelo-Uk/student-management/internal/pkg/logger"
)

// SessionMiddleware resolves the caller's identity from the session cookie.
type SessionMiddleware struct {
	jwtService *auth.JWTService
	cookieName string
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(jwtService *auth.JWTService, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{
		jwtService: jwtService,
		cookieName: cookieName,
	}
}

// Resolve parses and validates the session cookie and attaches the identity
// to the request context. It never aborts: an absent, expired or garbled
// cookie simply leaves the request unauthenticated and the gate decides
// what happens next.
func (m *SessionMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie == "" {
			c.Next()
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(cookie)
		if err != nil {
			logger.Debug().Err(err).Msg("Discarding invalid session cookie")
			c.Next()
			return
		}

		c.Set(access.ContextUserID, claims.UserID)
		c.Set(access.ContextEmail, claims.Email)
		c.Set(access.ContextRole, claims.Role)
		c.Next()
	}
}

// SessionUserID returns the authenticated user's id, or 0 when unauthenticated.
func SessionUserID(c *gin.Context) int64 {
	if v, ok := c.Get(access.ContextUserID); ok {
		if id, isInt := v.(int64); isInt {
			return id
		}
	}
	return 0
}
