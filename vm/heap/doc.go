// Package heap implements reference-counted storage for handle-typed VM
// values (strings, arrays, slices, maps, structs, interfaces, channels,
// closures, and foreign pointers), with an auxiliary cycle collector for
// the reference cycles refcounting alone cannot free.
//
// # Overview
//
// Every handle-typed value wraps a Cell. Cloning a handle increments the
// cell's reference count (Retain); dropping one decrements it (Release).
// When a count reaches zero and the cell does not participate in a user-
// visible cycle, it is freed immediately, along with a release of
// everything it directly owns.
//
// # Cycles
//
// Go slices, maps, structs, and closures can form reference cycles (a
// struct holding a pointer into itself via an interface, for example).
// Plain refcounting cannot reclaim these. Collect runs a Bacon-Rajan
// trial-deletion pass: candidate cells (ones whose count dropped but
// didn't reach zero) are buffered as roots; a trial decrement pass
// (RefSubOne) subtracts internal references to compute each object's
// "external" reference count; anything left with zero external
// references is an unreachable cycle and is collected. Foreign pointers
// opt in to cycle participation via CanMakeCycle/BreakCycle; an object
// that does not opt in is always treated as externally rooted.
//
// # Usage
//
// Concrete cell types (vm.String, vm.Array, vm.Map, ...) embed RefHeader
// and implement Cell. Callers Retain/Release them directly:
//
//	heap.Retain(c)
//	heap.Release(c)
//	heap.Collect(h) // run at fiber-completion boundaries
package heap
