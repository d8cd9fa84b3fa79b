package vm

// ForeignObject is the boundary every FFI-registered host value crosses
// through: the call surface is opaque to the dispatcher (§4's FFI
// materialization opcode and the foreign-interface variant of
// Interface), implemented concretely by vm/ffi and vm/ffi/hostlib.
type ForeignObject interface {
	// Call invokes method with args, already unpacked onto a Go slice,
	// and returns the (possibly multiple) results or an error.
	Call(method string, args []Value) ([]Value, error)

	// CanMakeCycle reports whether this object opts into cycle-collector
	// participation (§4.2's can_make_cycle flag). Most foreign objects
	// answer false and rely on plain refcounting.
	CanMakeCycle() bool

	// BreakCycle is invoked by the collector once unreachability is
	// confirmed, giving the object a chance to release whatever
	// non-VM-heap resources it privately owns.
	BreakCycle()
}

// ForeignFunc is a host-implemented function bound into a foreign
// Closure (§3's Closure entry: "foreign-function handle + name +
// signature metadata").
type ForeignFunc func(args []Value) ([]Value, error)

// ForeignMethodSet describes a foreign object's callable surface for use
// in a foreign Interface value, without requiring a full metadata
// signature for each method.
type ForeignMethodSet struct {
	Names []string
}

// ForeignFactory is the host-supplied constructor OpFFI calls: given a
// registered foreign-object name and its already-evaluated constructor
// arguments, it produces the object and its callable method-name surface,
// or an error if name is unregistered or args don't match. Supplied once
// at Run() time and threaded down to the dispatcher.
type ForeignFactory func(name string, args []Value) (ForeignObject, ForeignMethodSet, error)
