package petalth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoYuDev/petalth-crm/internal/app/session"
)

type captureTransport struct {
	got *http.Request
}

func (t *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.got = req
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
}

func TestAuthTransport(t *testing.T) {
	t.Run("AddsBearerHeaderFromSession", func(t *testing.T) {
		capture := &captureTransport{}
		transport := &authTransport{base: capture}

		cache := session.NewCache(&session.Record{ID: 1, Token: "secret-token"})
		req := httptest.NewRequest(http.MethodGet, "http://api.example/pets", nil)
		req = req.WithContext(session.NewContext(req.Context(), cache))

		_, err := transport.RoundTrip(req)
		require.NoError(t, err)
		assert.Equal(t, "Bearer secret-token", capture.got.Header.Get("Authorization"))
	})

	t.Run("OriginalRequestNotMutated", func(t *testing.T) {
		capture := &captureTransport{}
		transport := &authTransport{base: capture}

		cache := session.NewCache(&session.Record{ID: 1, Token: "secret-token"})
		req := httptest.NewRequest(http.MethodGet, "http://api.example/pets", nil)
		req = req.WithContext(session.NewContext(req.Context(), cache))

		_, err := transport.RoundTrip(req)
		require.NoError(t, err)
		assert.Empty(t, req.Header.Get("Authorization"))
	})

	t.Run("AnonymousRequestPassesThrough", func(t *testing.T) {
		capture := &captureTransport{}
		transport := &authTransport{base: capture}

		req := httptest.NewRequest(http.MethodGet, "http://api.example/veterinarians", nil)

		_, err := transport.RoundTrip(req)
		require.NoError(t, err)
		assert.Empty(t, capture.got.Header.Get("Authorization"))
		assert.Same(t, req, capture.got)
	})
}
