// Package middleware authenticates API keys and enforces their daily quota.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"statehouse/internal/ratelimit/models"
	"statehouse/pkg/platform/httputil"
	"statehouse/pkg/requestcontext"
)

// HeaderAPIKey and QueryAPIKey are where clients send their key. The header
// wins when both are present.
const (
	HeaderAPIKey = "X-API-KEY"
	QueryAPIKey  = "apikey"
)

type QuotaChecker interface {
	Check(ctx context.Context, apiKey string) (*models.Result, error)
}

type Middleware struct {
	checker  QuotaChecker
	logger   *slog.Logger
	disabled bool
}

type Option func(*Middleware)

// WithDisabled disables key enforcement entirely, for local runs.
func WithDisabled(disabled bool) Option {
	return func(m *Middleware) {
		m.disabled = disabled
	}
}

func New(checker QuotaChecker, logger *slog.Logger, opts ...Option) *Middleware {
	m := &Middleware{
		checker: checker,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.disabled {
		logger.Info("api key enforcement disabled")
	}
	return m
}

// RequireAPIKey rejects requests without a valid key or with an exhausted
// budget, and sets X-RateLimit-* headers on every checked request.
func (m *Middleware) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.disabled {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		key := r.Header.Get(HeaderAPIKey)
		if key == "" {
			key = r.URL.Query().Get(QueryAPIKey)
		}

		result, err := m.checker.Check(ctx, key)
		addRateLimitHeaders(w, result)
		if err != nil {
			if result != nil && !result.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
			}
			m.logger.InfoContext(ctx, "api key rejected",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
			httputil.WriteError(w, err)
			return
		}

		ctx = requestcontext.WithAPIKey(ctx, key, result.Tier.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func addRateLimitHeaders(w http.ResponseWriter, result *models.Result) {
	if result == nil {
		return
	}
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}
