// Package sched is the cooperative fiber scheduler that turns a loaded
// vm.Artifact into a running program. It owns the one concern vm/exec
// deliberately stays ignorant of: which fiber gets to run next, and
// what happens when one blocks on a channel operation or spawns
// another.
//
// # Fibers
//
// A Fiber pairs one exec.State (its own value stack, call frames, and
// range/select scratch areas) with its own goroutine. Exactly one
// fiber's goroutine is ever actively executing Go code at a time; every
// other fiber is parked on a channel receive. Control passes between a
// fiber and the Scheduler's run loop over a pair of unbuffered
// channels, baton-style: the scheduler sends on a fiber's resume
// channel to hand it the baton, and the fiber sends itself back on the
// scheduler's shared notify channel when it yields or finishes. Because
// only one goroutine is ever unblocked at once, Scheduler's bookkeeping
// needs no mutex.
//
// # Yielding
//
// Fiber implements exec.Yielder. The dispatch loop calls Yield() from
// two places: exec.Interpreter.Call's own instruction-budget check
// (every 1024 instructions, so a compute-bound fiber can't starve its
// siblings) and the channel/select opcodes' would-block retry loops
// (chan_builtin.go). Either way Yield() re-enqueues the fiber and parks
// it until the scheduler gives it the baton again; the dispatcher
// always resumes by retrying the exact instruction it was on, since
// State's Stack/Frames already hold everything needed to pick back up.
//
// # Spawning
//
// Scheduler implements exec.Spawner. OpSpawn calls Spawner.Spawn from
// within the spawning fiber's own goroutine — safe without
// synchronization for the same reason Yield is: the scheduler's run
// loop is parked on its notify receive while the spawning fiber runs.
// Spawn constructs a new Fiber over a fresh exec.State and enqueues it;
// the scheduler's run loop gives it its first turn once it's next in
// line.
//
// # Quiescence and the yield budget
//
// Run drives fibers round-robin until the live fiber count reaches
// zero. There is no deadlock detector: a program where every fiber is
// permanently blocked on a channel simply busy-polls forever, trading
// detection for the same "try, don't block" channel primitive
// Channel.TrySend/TryRecv already commits to. A real deployment would
// want a cycle or watchdog on top of this; this scheduler does not
// attempt one.
package sched
