package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testRecord() *Record {
	return &Record{
		ID:    42,
		Token: "token-abc",
		Email: "ana@petalth.com",
		Name:  "Ana",
		Role:  RoleOwner,
	}
}

func requestWithCookies(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestCookieStore_WriteRead(t *testing.T) {
	store := NewCookieStore(zap.NewNop())

	t.Run("Success", func(t *testing.T) {
		w := httptest.NewRecorder()
		store.Write(w, testRecord())

		got := store.Read(requestWithCookies(t, w))
		require.NotNil(t, got)
		assert.Equal(t, int64(42), got.ID)
		assert.Equal(t, "token-abc", got.Token)
		assert.Equal(t, "ana@petalth.com", got.Email)
		assert.Equal(t, RoleOwner, got.Role)
	})

	t.Run("CookieIsHTTPOnly", func(t *testing.T) {
		w := httptest.NewRecorder()
		store.Write(w, testRecord())

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, CookieName, cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, "/", cookies[0].Path)
	})

	t.Run("NoCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Nil(t, store.Read(req))
	})

	t.Run("MalformedCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "%%%not-base64%%%"})

		assert.Nil(t, store.Read(req))
	})

	t.Run("CookieWithGarbageJSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		// "bm90LWpzb24" is base64url for "not-json"
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "bm90LWpzb24"})

		assert.Nil(t, store.Read(req))
	})

	t.Run("RecordWithoutToken", func(t *testing.T) {
		w := httptest.NewRecorder()
		store.Write(w, &Record{ID: 7, Email: "no-token@petalth.com"})

		assert.Nil(t, store.Read(requestWithCookies(t, w)))
	})
}

func TestCookieStore_Token(t *testing.T) {
	store := NewCookieStore(zap.NewNop())

	t.Run("FromPersistedRecord", func(t *testing.T) {
		w := httptest.NewRecorder()
		store.Write(w, testRecord())

		assert.Equal(t, "token-abc", store.Token(requestWithCookies(t, w)))
	})

	t.Run("EmptyWhenAbsent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, store.Token(req))
	})
}

func TestCookieStore_Clear(t *testing.T) {
	store := NewCookieStore(zap.NewNop())

	w := httptest.NewRecorder()
	store.Clear(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
