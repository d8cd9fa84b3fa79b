package heap

// Allocator is the interface every heap implementation satisfies, kept
// distinct from the concrete Heap type the way hive/alloc.Allocator stays
// distinct from FastAllocator: a fiber-local short-lived run can swap in
// a cheaper implementation without touching call sites.
type Allocator interface {
	// Track registers a freshly constructed cell with the heap. Collect
	// does not consult it: trial-deletion candidates are the roots that
	// Release buffers process-wide. The cell starts at refcount zero;
	// callers must Retain it before storing it anywhere reachable.
	Track(c Cell)

	// Stats returns a point-in-time snapshot of the process-wide heap
	// counters (the same values Snapshot returns).
	Stats() Stats
}

// Heap is the default allocator: it counts the cells passed to Track.
// Collect takes a *Heap but works from the process-wide buffered roots,
// not from this count. This is the counterpart of hive/alloc's
// FastAllocator.
type Heap struct {
	tracked int64
}

// NewHeap constructs a fresh, empty Heap.
func NewHeap() *Heap {
	return &Heap{}
}

func (h *Heap) Track(c Cell) {
	h.tracked++
}

func (h *Heap) Stats() Stats {
	return Snapshot()
}

// NoCollectHeap is the counterpart of hive/alloc's NoFreeAllocator: its
// Track does nothing and its Stats returns the process-wide snapshot.
// It does not change how Release buffers cycle candidates, which is
// process-wide and independent of any Allocator.
type NoCollectHeap struct{}

func (NoCollectHeap) Track(Cell)   {}
func (NoCollectHeap) Stats() Stats { return Snapshot() }
