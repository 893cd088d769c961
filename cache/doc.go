// Package cache implements the read-through/invalidate core the cached
// repository decorators are built on.
//
// # Overview
//
// Three pieces cooperate:
//
//   - Store: the injected cache backend (get/set/delete-by-pattern with TTL).
//     Adapters for an in-process sturdyc client and for Redis live in
//     internal/cacheinfra.
//   - ReadThrough: wraps any fallible read with a cache lookup/populate step.
//   - (*Aside).Invalidate: best-effort pattern fan-out issued after a
//     successful write.
//
// # Key format
//
// Keys are "<prefix><domain>:<method>:<args...>" and invalidation patterns
// are "<prefix><domain>:*" glob strings. Every argument that affects a read's
// result is serialized into the key, so distinct queries never collide.
//
// # Sentinel entries
//
// Values are stored wrapped as {"__cached":true,"data":...}. The sentinel
// distinguishes a cached null (a remembered "not found") from a plain miss,
// and shields readers from stale payloads written by an older schema: any
// stored shape without the sentinel is treated as a miss.
//
// # Consistency model
//
// Cache failures are absorbed, never surfaced: a read error degrades to
// calling the source, a write or invalidation error is logged and ignored.
// Failed source reads are never cached. There is no cross-request locking, so
// two concurrent writers to the same entity can race such that a stale read
// repopulates an entry after a newer write's invalidation already ran; the
// entry then lives for at most one TTL. That narrow race is the accepted
// trade-off for keeping writes non-blocking.
package cache
