package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/SoYuDev/petalth-crm/internal/app/session"
	"github.com/SoYuDev/petalth-crm/internal/observability/metrics"
)

const SessionContextKey = "session"

// CORSMiddleware handles CORS headers
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SecurityMiddleware adds security headers
func SecurityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		c.Writer.Header().Set("X-XSS-Protection", "1; mode=block")
		c.Writer.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		csp := "default-src 'self'; " +
			"script-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net; " +
			"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com https://cdn.jsdelivr.net; " +
			"font-src 'self' https://fonts.gstatic.com; " +
			"img-src 'self' data: https:"
		c.Writer.Header().Set("Content-Security-Policy", csp)

		c.Next()
	}
}

// RequestIDMiddleware tags every request with an X-Request-Id header,
// keeping an inbound value when the caller already supplied one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-Id", id)
		c.Set("request_id", id)
		c.Next()
	}
}

// SessionMiddleware restores the signed-in user from the session cookie
// on every request. The resulting cache rides the request context so
// downstream handlers and the API transport can read it without touching
// the cookie again.
func SessionMiddleware(store *session.CookieStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cache := session.NewCacheFromRequest(store, c.Request)

		c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), cache))
		c.Set(SessionContextKey, cache)

		c.Next()
	}
}

// GetSession extracts the per-request session cache from the Gin context.
func GetSession(c *gin.Context) *session.Cache {
	if v, exists := c.Get(SessionContextKey); exists {
		if cache, ok := v.(*session.Cache); ok {
			return cache
		}
	}
	return session.FromContext(c.Request.Context())
}

// ObservabilityMiddleware records request counts and latency per route.
func ObservabilityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		m := metrics.Get()
		m.HTTPRequestsTotal.Add(context.Background(), 1,
			metric.WithAttributes(
				attribute.String("method", c.Request.Method),
				attribute.String("path", path),
				attribute.String("status", strconv.Itoa(statusCode)),
			))

		m.HTTPRequestDuration.Record(context.Background(), duration,
			metric.WithAttributes(
				attribute.String("method", c.Request.Method),
				attribute.String("path", path),
			))
	}
}

// RequireLogin redirects anonymous visitors to the login page.
func RequireLogin(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cache := GetSession(c)
		if !cache.IsLoggedIn() {
			logger.Debug("unauthenticated request, redirecting to login",
				zap.String("path", c.Request.URL.Path))
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
