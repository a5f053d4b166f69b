package auth

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/SoYuDev/petalth-crm/internal/app/session"
	"github.com/SoYuDev/petalth-crm/internal/observability/metrics"
	"github.com/SoYuDev/petalth-crm/internal/petalth"
)

// identityAPI is the slice of the Petalth client the gateway needs.
type identityAPI interface {
	Login(ctx context.Context, req petalth.LoginRequest) (*petalth.AuthResponse, error)
	Register(ctx context.Context, req petalth.RegisterRequest) (*petalth.AuthResponse, error)
}

// Gateway signs users in and out against the Petalth API and keeps the
// persisted session in step with the outcome. The cookie and the
// per-request cache are only touched after the API confirms the
// credentials, so a failed attempt leaves any existing session intact.
type Gateway struct {
	api    identityAPI
	store  *session.CookieStore
	logger *zap.Logger
}

func NewGateway(api identityAPI, store *session.CookieStore, logger *zap.Logger) *Gateway {
	return &Gateway{
		api:    api,
		store:  store,
		logger: logger,
	}
}

// Login exchanges credentials for a session record. On success the record
// is persisted to the cookie and installed in the request cache.
func (g *Gateway) Login(ctx context.Context, w http.ResponseWriter, req petalth.LoginRequest) (*session.Record, error) {
	resp, err := g.api.Login(ctx, req)
	if err != nil {
		g.recordAttempt(ctx, "login", "failure")
		g.logger.Warn("login rejected", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}

	rec := recordFromResponse(resp)
	if err := g.store.Write(w, rec); err != nil {
		g.logger.Error("failed to persist session", zap.Error(err))
	}
	session.FromContext(ctx).Set(rec)

	g.recordAttempt(ctx, "login", "success")
	g.logger.Info("login succeeded",
		zap.Int64("user_id", rec.ID),
		zap.String("role", string(rec.Role)),
	)
	return rec, nil
}

// Register creates an account and signs the new user in.
func (g *Gateway) Register(ctx context.Context, w http.ResponseWriter, req petalth.RegisterRequest) (*session.Record, error) {
	resp, err := g.api.Register(ctx, req)
	if err != nil {
		g.recordAttempt(ctx, "register", "failure")
		g.logger.Warn("registration rejected", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}

	rec := recordFromResponse(resp)
	if err := g.store.Write(w, rec); err != nil {
		g.logger.Error("failed to persist session", zap.Error(err))
	}
	session.FromContext(ctx).Set(rec)

	g.recordAttempt(ctx, "register", "success")
	g.logger.Info("registration succeeded",
		zap.Int64("user_id", rec.ID),
		zap.String("email", rec.Email),
	)
	return rec, nil
}

// Logout drops the persisted session. Calling it without an active
// session is a no-op.
func (g *Gateway) Logout(ctx context.Context, w http.ResponseWriter) {
	g.store.Clear(w)
	session.FromContext(ctx).Clear()
	g.logger.Info("user logged out")
}

func recordFromResponse(resp *petalth.AuthResponse) *session.Record {
	return &session.Record{
		ID:      resp.ID,
		Token:   resp.Token,
		Email:   resp.Email,
		Name:    resp.Name,
		Role:    session.Role(resp.Role),
		Message: resp.Message,
	}
}

func (g *Gateway) recordAttempt(ctx context.Context, operation, outcome string) {
	metrics.Get().AuthAttemptsTotal.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("outcome", outcome),
		))
}
