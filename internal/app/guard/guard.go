package guard

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SoYuDev/petalth-crm/internal/app/session"
)

// LoginPath is where unauthenticated navigations are sent.
const LoginPath = "/login"

// Decision is the outcome of evaluating a navigation attempt.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Decide evaluates whether the cached session may enter a route. ownerParam
// is the owner-identifier segment of the target route ("" when the route
// carries none).
//
// Rules, in order: no session redirects to the login page; a route with an
// owner parameter is only open to that owner or an admin, anyone else is
// sent to the same route parameterized by their own identifier; routes
// without an owner parameter are open to any session.
func Decide(rec *session.Record, ownerParam string) Decision {
	if !rec.Valid() {
		return Decision{RedirectTo: LoginPath}
	}

	if ownerParam == "" {
		return Decision{Allow: true}
	}

	ownerID, err := strconv.ParseInt(ownerParam, 10, 64)
	if err == nil && ownerID == rec.ID {
		return Decision{Allow: true}
	}
	if rec.Role == session.RoleAdmin {
		return Decision{Allow: true}
	}

	return Decision{RedirectTo: fmt.Sprintf("/pets/%d", rec.ID)}
}

// RequireOwner gates a route group on the session cache prepared by the
// session middleware. Denials redirect rather than block: a logged-out user
// goes to the login page, a mismatched owner goes to their own resource.
func RequireOwner(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cache := session.FromContext(c.Request.Context())
		decision := Decide(cache.Current(), c.Param("ownerId"))
		if decision.Allow {
			c.Next()
			return
		}

		if decision.RedirectTo != LoginPath {
			logger.Warn("Unauthorized owner access, redirecting to own resource",
				zap.String("path", c.Request.URL.Path),
				zap.String("redirect", decision.RedirectTo),
			)
		}
		c.Redirect(http.StatusFound, decision.RedirectTo)
		c.Abort()
	}
}
