package exec

import (
	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/frame"
	"github.com/prateekvishnu/goscript/vm/intern"
	"github.com/prateekvishnu/goscript/vm/meta"
	"github.com/prateekvishnu/goscript/vm/pkgreg"
)

// rangeSlotCount is the fixed size of a fiber's range-iteration slot
// pool (§4.7/§9): a bounded, reusable scratch area rather than an
// unbounded per-loop allocation.
const rangeSlotCount = 16

// rangeIter is one live range-iteration's cursor. RANGE_INIT takes
// ownership of container's reference count and rangeStep releases it on
// exhaustion; idx addresses the next array/slice index or string byte
// offset, mapIdx the next position in a map's pre-snapshotted key list
// (iterating a live map by position would be unspecified-order anyway,
// so a snapshot at RANGE_INIT time is as good as any other order).
type rangeIter struct {
	inUse     bool
	container vm.Value
	idx       int
	mapKeys   []vm.Value
	mapIdx    int
}

// State is one fiber's execution state: its value stack, its live call
// frames, the fixed-size range-iteration slot pool, and the per-call-site
// selector-rotation map, all per-fiber rather than per-call (§4.7/§4.8).
// A fresh State is constructed per spawned fiber; vm/sched owns the
// fiber lifecycle and hands a State to Interpreter.Call for each one.
type State struct {
	Stack  *frame.Stack
	Frames []*frame.Frame

	ranges [rangeSlotCount]rangeIter

	selectTurn map[int32]int // select call-site Imm -> next case to try first
}

// NewState constructs an empty per-fiber execution state.
func NewState() *State {
	return &State{
		Stack:      frame.NewStack(),
		selectTurn: make(map[int32]int),
	}
}

func (s *State) allocRangeSlot() int {
	for i := range s.ranges {
		if !s.ranges[i].inUse {
			s.ranges[i].inUse = true
			return i
		}
	}
	panic("exec: range-iteration slot pool exhausted (more than 16 concurrently open loops in one fiber)")
}

func (s *State) freeRangeSlot(i int) {
	s.ranges[i] = rangeIter{}
}

// Yielder is how the dispatch loop suspends the current fiber at a
// would-block channel operation or an explicit scheduling point,
// implemented by vm/sched.Fiber so vm/exec never imports it back.
// Yield blocks until the scheduler resumes this fiber's turn again; the
// dispatcher always retries the same instruction afterward rather than
// threading a continuation through the call.
type Yielder interface {
	Yield()
}

// Spawner is how SPAWN enqueues a new fiber without vm/exec importing
// vm/sched, implemented by vm/sched.Scheduler.
type Spawner interface {
	Spawn(closure *vm.Closure, args []vm.Value)
}

// Interpreter bundles the program-wide, read-mostly tables every fiber's
// dispatch loop consults: the loaded artifact, the package registry
// IMPORT queries, and the interface dispatch-vector cache. One
// Interpreter is shared by every fiber in a run.
type Interpreter struct {
	Artifact *vm.Artifact
	Packages *pkgreg.Registry
	Dispatch *intern.Cache

	// Foreign is the host-supplied FFI constructor OpFFI invokes. May be
	// nil if the artifact never uses FFI.
	Foreign vm.ForeignFactory

	// Spawner enqueues a new fiber for SPAWN, set once by vm/sched after
	// constructing the Scheduler that owns this Interpreter.
	Spawner Spawner

	// Diagnostics, when true, makes every escaping runtime error carry a
	// populated vmerr.Error.Trace frame dump.
	Diagnostics bool
}

// NewInterpreter constructs an Interpreter over a loaded artifact,
// registering every package the artifact declares into a fresh
// pkgreg.Registry so IMPORT's NeedsInit query has something to answer
// against. Spawner is left nil; vm/sched sets it once the scheduler
// owning this Interpreter exists, since the two are constructed
// together.
func NewInterpreter(art *vm.Artifact, foreign vm.ForeignFactory, diagnostics bool) *Interpreter {
	packages := pkgreg.NewRegistry()
	for _, pkg := range art.Packages {
		packages.Register(pkg)
	}
	return &Interpreter{
		Artifact:    art,
		Packages:    packages,
		Dispatch:    intern.NewCache(),
		Foreign:     foreign,
		Diagnostics: diagnostics,
	}
}

func (in *Interpreter) meta() *meta.Registry { return in.Artifact.Meta }
