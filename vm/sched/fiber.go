package sched

import (
	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/exec"
	"github.com/prateekvishnu/goscript/vm/heap"
)

// Fiber is one cooperatively-scheduled goroutine of execution: its own
// value stack and call frames (exec.State), plus the baton-passing
// channels the Scheduler uses to hand it control and learn when it
// gives control back.
type Fiber struct {
	id int

	sched *Scheduler
	state *exec.State

	closure *vm.Closure // nil for the entry fiber
	fn      *vm.FunctionRecord
	args    []vm.Value

	resume chan struct{} // scheduler -> fiber: "you have the baton"

	results  []vm.Value
	err      error
	finished bool
}

func newFiber(id int, sched *Scheduler, closure *vm.Closure, fn *vm.FunctionRecord, args []vm.Value) *Fiber {
	return &Fiber{
		id:      id,
		sched:   sched,
		state:   exec.NewState(),
		closure: closure,
		fn:      fn,
		args:    args,
		resume:  make(chan struct{}),
	}
}

// Yield implements exec.Yielder. Called from within this fiber's own
// goroutine, it hands the baton back to the scheduler and blocks until
// the scheduler gives it another turn.
func (f *Fiber) Yield() {
	f.sched.park(f)
	<-f.resume
}

// run is the fiber's goroutine body. It waits for its first turn, runs
// the dispatch loop (or, for a foreign closure, calls the host function
// directly — a foreign function never yields, so it always finishes in
// one turn), then reports itself finished to the scheduler. The entry
// fiber carries no closure (a top-level function has no receiver or
// up-values to own); a spawned fiber releases the reference Scheduler.
// Spawn retained for it once its turn is over.
func (f *Fiber) run() {
	<-f.resume

	if f.closure != nil && f.closure.IsForeign() {
		f.results, f.err = f.closure.ForeignFunc()(f.args)
	} else {
		f.results, f.err = f.sched.interp.Call(f.state, f.fn, f.closure, f.args, f)
	}

	if f.closure != nil {
		heap.Release(f.closure)
	}

	f.finished = true
	f.sched.notify <- f
}
