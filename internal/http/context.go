package http

import "context"

type contextKey string

const requestIDContextKey contextKey = "request-id"

// RequestIDFromContext returns the request ID attached by the middleware,
// or an empty string when none is present.
func RequestIDFromContext(ctx context.Context) string {
	if value, ok := ctx.Value(requestIDContextKey).(string); ok {
		return value
	}
	return ""
}
