// Package sizecache implements the two size-memoization primitives of
// two-pass serialization: a per-message atomic memo of the last computed
// wire size (CachedSize, the slot protoc-gen-go emits as XXX_sizecache)
// and a per-call address-identity memo used while computing sizes of many
// nested messages in one pass (SizeCache).
package sizecache

import (
	"sync/atomic"
	"unsafe"
)

// CachedSize is an atomic 32-bit memo of a message's last computed wire
// size. It is written during the first (size-computation) pass of
// serialization and read during the second (write) pass.
//
// There is no inter-thread ordering guarantee beyond what Go's atomic
// package always provides: the cache is valid only within the scope of a
// single serialization call, so correctness never depends on visibility
// across goroutines. Treat it as a hint; a stale value only risks a wrong
// length prefix, which a conforming writer always recomputes before use.
type CachedSize struct {
	size uint32
}

// Get returns the last cached size, or 0 if none has been set.
func (c *CachedSize) Get() uint32 {
	if c == nil {
		return 0
	}
	return atomic.LoadUint32(&c.size)
}

// Set stores size as the new cached value.
func (c *CachedSize) Set(size uint32) {
	atomic.StoreUint32(&c.size, size)
}

// Equal always reports true: CachedSize is reflexive and universal so that
// generated structural equality is never polluted by a transient size.
// It ignores both sides' state on purpose.
func (c *CachedSize) Equal(*CachedSize) bool { return true }

// Clone returns a new CachedSize carrying the same value but no shared
// identity with c.
func (c *CachedSize) Clone() *CachedSize {
	nc := &CachedSize{}
	if c != nil {
		nc.Set(c.Get())
	}
	return nc
}

// SizeCache memoizes a value's computed size by its address identity. It is
// strictly a per-call scratch structure: construct one, use it for a single
// marshal/size pass, then discard it. It is never shared across calls, and
// it is the caller's responsibility to avoid address-reuse collisions
// (e.g. by not mutating or freeing an object mid-pass).
type SizeCache struct {
	sizes map[unsafe.Pointer]int
}

// NewSizeCache returns an empty SizeCache ready for one serialization pass.
func NewSizeCache() *SizeCache {
	return &SizeCache{sizes: make(map[unsafe.Pointer]int)}
}

// SizeOf returns the memoized size for the object at ptr, computing and
// storing it via compute on first lookup.
func (c *SizeCache) SizeOf(ptr unsafe.Pointer, compute func() int) int {
	if size, ok := c.sizes[ptr]; ok {
		return size
	}
	size := compute()
	c.sizes[ptr] = size
	return size
}
