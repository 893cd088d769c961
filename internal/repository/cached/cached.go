// Package cached decorates the repository ports with read-through caching
// and post-write invalidation. Each decorator implements the same interface
// as the inner repository it wraps and is a drop-in replacement for it.
//
// The rules are uniform: reads build a domain-scoped key from the method
// name and every argument, and go through cache.ReadThrough with the
// domain's configured TTL; writes call the inner repository first and fan
// out pattern invalidations only on success. With the cache disabled every
// method is a pure passthrough and the store is never touched.
//
// Invalidation pattern sets are bespoke per entity because they encode real
// foreign-key relationships: an inscription write also invalidates the
// parent travel's namespace, deleting a travel also invalidates its
// inscriptions, and anonymizing a user reaches the auth, driver, and
// inscription namespaces.
package cached

import (
	"context"

	"github.com/wheelshare/carpool-api/cache"
)

// Domain labels. Each decorator namespaces its keys and invalidation
// patterns with exactly its own label.
const (
	brandDomain       = "brand"
	carDomain         = "car"
	cityDomain        = "city"
	userDomain        = "user"
	driverDomain      = "driver"
	authDomain        = "auth"
	travelDomain      = "travel"
	inscriptionDomain = "inscription"
)

// invalidate fans "<domain>:*" deletions out under the configured prefix.
// No-op when the cache is disabled; nothing was written that could go stale.
func invalidate(ctx context.Context, a *cache.Aside, cfg cache.Config, domains ...string) {
	if !cfg.Enabled {
		return
	}
	patterns := make([]string, len(domains))
	for i, d := range domains {
		patterns[i] = d + ":*"
	}
	a.Invalidate(ctx, cfg.KeyPrefix, patterns...)
}
