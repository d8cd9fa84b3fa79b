package sched

import (
	"errors"

	"github.com/prateekvishnu/goscript/pkg/vmerr"
	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/exec"
	"github.com/prateekvishnu/goscript/vm/heap"
)

// Scheduler drives every fiber of one program run. It implements
// exec.Yielder indirectly (each Fiber is its own Yielder; Scheduler
// only arbitrates turns) and exec.Spawner directly, since OpSpawn only
// ever needs to enqueue work, never to know which fiber is asking.
type Scheduler struct {
	interp *exec.Interpreter
	heap   *heap.Heap

	ready  []*Fiber
	notify chan *Fiber // fiber -> scheduler: "my turn is over"
	nextID int
	live   int

	firstErr error
}

// NewScheduler constructs a scheduler over interp and installs itself
// as interp's Spawner, so OpSpawn can reach back into this scheduler
// without vm/exec importing vm/sched.
func NewScheduler(interp *exec.Interpreter) *Scheduler {
	s := &Scheduler{
		interp: interp,
		heap:   heap.NewHeap(),
		notify: make(chan *Fiber),
	}
	interp.Spawner = s
	return s
}

// spawn constructs and launches a fiber's goroutine, enqueuing it for
// its first turn. The goroutine parks on its resume channel immediately
// (fiber.run's first statement), so launching it here never races with
// the scheduler's own bookkeeping.
func (s *Scheduler) spawn(closure *vm.Closure, fn *vm.FunctionRecord, args []vm.Value) *Fiber {
	f := newFiber(s.nextID, s, closure, fn, args)
	s.nextID++
	s.live++
	s.ready = append(s.ready, f)
	go f.run()
	return f
}

// Spawn implements exec.Spawner for the SPAWN opcode. It resolves
// closure's target function (or, for a foreign closure, leaves fn nil —
// Fiber.run dispatches on IsForeign() directly) and, for a bound
// method, prepends the retained receiver the same way Interpreter's own
// CALL dispatch does. OpSpawn releases its own reference to closure
// right after this call returns, so the new fiber needs its own
// retained reference for as long as it runs (Fiber.run releases it on
// completion).
func (s *Scheduler) Spawn(closure *vm.Closure, args []vm.Value) {
	heap.Retain(closure)

	var fn *vm.FunctionRecord
	if !closure.IsForeign() {
		fn = s.interp.Artifact.Function(closure.FuncKey())
		if recv, ok := closure.Receiver(); ok {
			vm.Retain(recv)
			full := make([]vm.Value, 0, len(args)+1)
			full = append(full, recv)
			args = append(full, args...)
		}
	}

	s.spawn(closure, fn, args)
}

// park re-enqueues f as ready and reports its turn as over. Called only
// from f's own goroutine by Fiber.Yield.
func (s *Scheduler) park(f *Fiber) {
	s.ready = append(s.ready, f)
	s.notify <- f
}

// run drives every enqueued fiber round-robin to quiescence (live
// reaching zero), returning the first error any fiber raised, if any.
// Each fiber completion is followed by one cycle-collector pass
// (heap.Collect). A fiber failing with a vmerr.KindInvariant error stops
// the run at once: that error is returned and fibers still parked are
// never resumed. The scheduler's own goroutine (this one) is the only place besides a
// fiber's own turn that ever touches s.ready/s.live: whichever fiber is
// currently running holds the sole active goroutine, since run is
// blocked on notify the entire time a turn is in progress.
func (s *Scheduler) run() error {
	for s.live > 0 {
		f := s.ready[0]
		s.ready = s.ready[1:]

		f.resume <- struct{}{}
		<-s.notify

		if f.finished {
			s.live--
			heap.Collect(s.heap)
			if f.err != nil && s.firstErr == nil {
				s.firstErr = f.err
			}
			var ve *vmerr.Error
			if errors.As(f.err, &ve) && ve.Kind == vmerr.KindInvariant {
				return f.err
			}
		}
	}
	return s.firstErr
}
