// Package contexthelpers stores request scoped values on the context.
package contexthelpers

import (
	"context"
	"net/http"
)

type contextKey string

const (
	isAuthenticatedContextKey     = contextKey("isAuthenticated")
	authenticatedUserIDContextKey = contextKey("authenticatedUserID")
	traceIDContextKey             = contextKey("traceID")
)

// AuthenticateContext marks the request as belonging to userID.
func AuthenticateContext(r *http.Request, userID string) *http.Request {
	return r.WithContext(WithUserID(r.Context(), userID))
}

// WithUserID returns a context authenticated as userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	ctx = context.WithValue(ctx, isAuthenticatedContextKey, userID != "")
	return context.WithValue(ctx, authenticatedUserIDContextKey, userID)
}

func IsAuthenticated(ctx context.Context) bool {
	isAuthenticated, ok := ctx.Value(isAuthenticatedContextKey).(bool)
	if !ok {
		return false
	}
	return isAuthenticated
}

// AuthenticatedUserID returns the opaque user id or an empty string for anonymous requests.
func AuthenticatedUserID(ctx context.Context) string {
	userID, ok := ctx.Value(authenticatedUserIDContextKey).(string)
	if !ok {
		return ""
	}
	return userID
}

func SetTraceID(r *http.Request, traceID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), traceIDContextKey, traceID))
}

func TraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(traceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
