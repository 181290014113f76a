package goToken

import "context"

type requestIDContextKey struct{}

// WithRequestID attaches the hosting service's request identifier to ctx.
// The Engine copies it into audit events so token operations can be
// correlated with the request that triggered them.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, requestID)
}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	requestID, _ := ctx.Value(requestIDContextKey{}).(string)
	return requestID
}
