package petalth

import (
	"net/http"

	"github.com/SoYuDev/petalth-crm/internal/app/session"
)

// authTransport attaches the session's bearer token to every outgoing API
// request. The token is derived from the request context, so callers never
// attach it manually. The transformation is pure: with a token present the
// outgoing request is a clone of the original plus the Authorization header;
// without one the original request passes through untouched. There is no
// retry and no refresh; an upstream 401 surfaces to the caller as-is.
type authTransport struct {
	base http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	token := session.TokenFromContext(req.Context())
	if token == "" {
		return base.RoundTrip(req)
	}

	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+token)
	return base.RoundTrip(cloned)
}
