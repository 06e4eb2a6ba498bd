package access

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/pkg/logger"
)

// Context keys set by the session middleware and read by the gate.
const (
	ContextUserID = "userID"
	ContextEmail  = "userEmail"
	ContextRole   = "userRole"
)

// Policy applies gate decisions to incoming requests.
type Policy struct {
	table   *Table
	targets Targets
}

// NewPolicy creates a policy over a route table.
func NewPolicy(table *Table, targets Targets) *Policy {
	return &Policy{table: table, targets: targets}
}

// Enforce returns the gin middleware that classifies every request.
// It reads the identity resolved by the session middleware, looks up the
// route's realm and applies Decide. A redirect decision aborts the chain
// with a 302; an allow decision passes through untouched.
func (p *Policy) Enforce() gin.HandlerFunc {
	return func(c *gin.Context) {
		realm, ok := p.table.Lookup(c.Request.Method, c.FullPath())
		if !ok {
			// Unregistered route. Validate catches this at startup, so the
			// only way here is a 404 match; fail closed anyway.
			logger.Warn().
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("Request for route with no realm entry")
			c.Redirect(http.StatusFound, p.targets.Login)
			c.Abort()
			return
		}

		var (
			authenticated bool
			role          models.Role
		)
		if v, exists := c.Get(ContextRole); exists {
			authenticated = true
			if s, isString := v.(string); isString {
				role = models.Role(s)
			}
		}

		decision := Decide(authenticated, role, realm, p.targets)
		if decision.Allow {
			c.Next()
			return
		}

		if authenticated && !role.Known() {
			logger.Warn().
				Str("role", string(role)).
				Str("path", c.Request.URL.Path).
				Msg("Session carries unrecognized role, redirecting to login")
		}

		c.Redirect(http.StatusFound, decision.RedirectTo)
		c.Abort()
	}
}
