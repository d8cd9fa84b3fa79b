package heap

import "sync/atomic"

// Stats mirrors the allocator's instrumentation in the teacher
// (allocatorStats in hive/alloc/fastalloc.go): cheap counters exposed for
// tests asserting no leaked handles and for the govmtop inspector.
type Stats struct {
	Retains       int64
	Releases      int64
	Frees         int64
	CyclesFreed   int64
	CollectRuns   int64
	LiveEstimate  int64 // Retains - Frees, an approximation (not exact under concurrent FFI callbacks)
}

var stats Stats

// Snapshot returns a copy of the process-wide heap statistics.
func Snapshot() Stats {
	return Stats{
		Retains:      atomic.LoadInt64(&stats.Retains),
		Releases:     atomic.LoadInt64(&stats.Releases),
		Frees:        atomic.LoadInt64(&stats.Frees),
		CyclesFreed:  atomic.LoadInt64(&stats.CyclesFreed),
		CollectRuns:  atomic.LoadInt64(&stats.CollectRuns),
		LiveEstimate: atomic.LoadInt64(&stats.Retains) - atomic.LoadInt64(&stats.Frees),
	}
}

// ResetStats zeroes the statistics counters. Used by tests between cases.
func ResetStats() {
	atomic.StoreInt64(&stats.Retains, 0)
	atomic.StoreInt64(&stats.Releases, 0)
	atomic.StoreInt64(&stats.Frees, 0)
	atomic.StoreInt64(&stats.CyclesFreed, 0)
	atomic.StoreInt64(&stats.CollectRuns, 0)
}

// Retain increments c's reference count. A nil Cell is a no-op, so callers
// holding a Value that might be a scalar (no handle) need no nil check.
func Retain(c Cell) {
	if c == nil {
		return
	}
	h := c.header()
	h.count++
	atomic.AddInt64(&stats.Retains, 1)
}

// Release decrements c's reference count. When the count reaches zero and
// c does not currently have outstanding suspicion of cycle membership, it
// and everything it owns is freed immediately (the fast, common path).
// When the count drops but stays positive, c is buffered as a trial-
// deletion candidate for the next Collect pass, mirroring Bacon-Rajan.
func Release(c Cell) {
	if c == nil {
		return
	}
	atomic.AddInt64(&stats.Releases, 1)
	release(c)
}

func release(c Cell) {
	h := c.header()
	h.count--
	switch {
	case h.count < 0:
		// Programmer/invariant error: double release. The VM treats this
		// as an invariant violation (KindInvariant), not a recoverable
		// runtime failure, so we panic here; callers that can reach this
		// from untrusted bytecode must have already validated refcounts
		// upstream.
		panic("heap: release of a cell with refcount already zero")
	case h.count == 0:
		h.col = colorBlack
		freeCell(c)
	default:
		markPurple(c)
	}
}

// freeCell releases every child (recursively, via the normal Release
// path) and finalizes c itself.
func freeCell(c Cell) {
	atomic.AddInt64(&stats.Frees, 1)
	if c.CanMakeCycle() {
		c.BreakCycle()
	}
	for _, child := range c.Children() {
		if child != nil {
			release(child)
		}
	}
	removeFromRoots(c)
}
