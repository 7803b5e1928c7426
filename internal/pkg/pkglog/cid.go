package pkglog

import "context"

const invalidCorrelationID = "[invalid_chain_id]"

type chainIDContextKey struct{}

// GetCorrelationID returns the correlation ID stored in the context.
//
// The router middleware sets this value early in the request lifecycle so it
// is attached to every log line written while serving the request.
func GetCorrelationID(ctx context.Context) string {
	clm, ok := ctx.Value(chainIDContextKey{}).(string)
	if !ok {
		return invalidCorrelationID
	}
	return clm
}

// SetCorrelationID stores a correlation ID into the context.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, chainIDContextKey{}, cid)
}
