package middleware

import "context"

type contextKey string

const ctxSessionID contextKey = "session_id"

// WithSessionID attaches a shopping session id to the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxSessionID, sessionID)
}

// SessionIDFromContext returns the shopping session id attached by Session,
// or "" when the middleware did not run.
func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxSessionID).(string); ok {
		return v
	}
	return ""
}
