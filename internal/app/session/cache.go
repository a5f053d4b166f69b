package session

import (
	"context"
	"net/http"
)

// Cache is the single source of truth for "who is logged in right now"
// during one navigation. It is an explicitly owned one-slot cell: built from
// the CookieStore at request entry and handed to every consumer that needs
// it, never looked up through ambient globals. The slot is always replaced
// wholesale, last write wins.
type Cache struct {
	current *Record
}

// NewCache creates a cache holding the given record, which may be nil.
func NewCache(rec *Record) *Cache {
	if !rec.Valid() {
		rec = nil
	}
	return &Cache{current: rec}
}

// NewCacheFromRequest initializes the cache from the persisted store.
func NewCacheFromRequest(store *CookieStore, r *http.Request) *Cache {
	return NewCache(store.Read(r))
}

// Current returns the cached record, or nil when logged out.
func (c *Cache) Current() *Record {
	return c.current
}

// Set replaces the slot. Invalid records clear it instead.
func (c *Cache) Set(rec *Record) {
	if !rec.Valid() {
		rec = nil
	}
	c.current = rec
}

// Clear sets the slot to absent.
func (c *Cache) Clear() {
	c.current = nil
}

// IsLoggedIn reports whether a bearer token is present.
func (c *Cache) IsLoggedIn() bool {
	return c.current != nil && c.current.Token != ""
}

func (c *Cache) HasRole(role Role) bool {
	return c.current != nil && c.current.Role == role
}

func (c *Cache) IsOneOf(roles ...Role) bool {
	if c.current == nil {
		return false
	}
	for _, role := range roles {
		if c.current.Role == role {
			return true
		}
	}
	return false
}

func (c *Cache) IsAdmin() bool { return c.HasRole(RoleAdmin) }

func (c *Cache) IsVet() bool { return c.HasRole(RoleVet) }

func (c *Cache) IsOwner() bool {
	return c.HasRole(RoleOwner) || c.HasRole(roleLegacyUser)
}

type contextKey struct{}

// NewContext attaches the cache to ctx so that the outgoing-request
// authorizer can derive the bearer token without each caller threading it.
func NewContext(ctx context.Context, cache *Cache) context.Context {
	return context.WithValue(ctx, contextKey{}, cache)
}

// FromContext returns the cache attached to ctx, or an empty one.
func FromContext(ctx context.Context) *Cache {
	if cache, ok := ctx.Value(contextKey{}).(*Cache); ok {
		return cache
	}
	return NewCache(nil)
}

// TokenFromContext returns the bearer token of the session attached to ctx,
// or "" when there is none.
func TokenFromContext(ctx context.Context) string {
	cache := FromContext(ctx)
	if cache.current == nil {
		return ""
	}
	return cache.current.Token
}
