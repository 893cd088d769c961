package cache

import "context"

type bypassContextKey struct{}

// WithBypass marks the context so cached reads skip the store entirely and go
// straight to the source of truth. The store is not read or written. Useful
// right after a write when a handler needs read-your-writes semantics inside
// one request without waiting for invalidation to land.
func WithBypass(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, bypassContextKey{}, true)
}

// Bypassed reports whether ctx requests the cache to be skipped.
func Bypassed(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	v, _ := ctx.Value(bypassContextKey{}).(bool)
	return v
}
