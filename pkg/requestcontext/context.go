// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values set by middleware and read by services.
//
//	requestID := requestcontext.RequestID(ctx)
//	now := requestcontext.Now(ctx)
//	ctx = requestcontext.WithAPIKey(ctx, key, tier)
package requestcontext

import (
	"context"
	"time"
)

type (
	apiKeyKey      struct{}
	apiTierKey     struct{}
	clientIPKey    struct{}
	userAgentKey   struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// APIKey returns the authenticated API key, or "" when the request was not
// authenticated.
func APIKey(ctx context.Context) string {
	if key, ok := ctx.Value(apiKeyKey{}).(string); ok {
		return key
	}
	return ""
}

// APITier returns the tier of the authenticated API key.
func APITier(ctx context.Context) string {
	if tier, ok := ctx.Value(apiTierKey{}).(string); ok {
		return tier
	}
	return ""
}

// WithAPIKey injects the authenticated key and its tier.
func WithAPIKey(ctx context.Context, key, tier string) context.Context {
	ctx = context.WithValue(ctx, apiKeyKey{}, key)
	return context.WithValue(ctx, apiTierKey{}, tier)
}

// ClientIP retrieves the client IP address from the context.
func ClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey{}).(string); ok {
		return ip
	}
	return ""
}

// UserAgent retrieves the User-Agent from the context.
func UserAgent(ctx context.Context) string {
	if ua, ok := ctx.Value(userAgentKey{}).(string); ok {
		return ua
	}
	return ""
}

// WithClientMetadata injects client IP and User-Agent into a context.
func WithClientMetadata(ctx context.Context, clientIP, userAgent string) context.Context {
	ctx = context.WithValue(ctx, clientIPKey{}, clientIP)
	return context.WithValue(ctx, userAgentKey{}, userAgent)
}

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// Now retrieves the request-scoped time from context.
// Falls back to time.Now() if not set (CLI, tests).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}
