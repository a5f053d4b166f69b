package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// CookieName is the browser-persisted key for the serialized session record.
// The raw bearer token is derived from the record on read rather than stored
// separately, so token and record can never disagree.
const CookieName = "currentUser"

const cookieMaxAge = 30 * 24 * time.Hour

// CookieStore persists the session record in the browser. It has no expiry
// logic and no network access; values survive reloads and are kept until
// explicitly cleared.
type CookieStore struct {
	logger *zap.Logger
	secure bool
}

func NewCookieStore(logger *zap.Logger) *CookieStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CookieStore{logger: logger}
}

// Write stores the record serialized as base64url JSON.
func (s *CookieStore) Write(w http.ResponseWriter, rec *Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
	return nil
}

// Read deserializes the stored record. Absent or malformed content yields
// nil; a parse failure is logged and recovered, never surfaced to the caller.
func (s *CookieStore) Read(r *http.Request) *Record {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	payload, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		s.logger.Warn("Discarding undecodable session cookie", zap.Error(err))
		return nil
	}

	var rec Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		s.logger.Warn("Discarding unparsable session record", zap.Error(err))
		return nil
	}
	if !rec.Valid() {
		return nil
	}
	return &rec
}

// Token returns the bearer token of the stored record, or "" when absent.
func (s *CookieStore) Token(r *http.Request) string {
	if rec := s.Read(r); rec != nil {
		return rec.Token
	}
	return ""
}

// Clear removes the session record. Clearing an already-absent session is a
// no-op from the browser's point of view.
func (s *CookieStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
}
