package ffi

import "github.com/prateekvishnu/goscript/vm"

// Constructor builds one foreign object from its already-evaluated FFI
// constructor arguments, returning the object alongside the method-name
// surface an interface value dispatches against.
type Constructor func(args []vm.Value) (vm.ForeignObject, vm.ForeignMethodSet, error)

// Registry maps the names FFI's constant string operand may carry to
// the Constructor that builds them. Registering the same name twice is
// a caller bug (almost certainly two hostlib packages colliding on a
// name) and panics immediately rather than letting the second
// registration silently win.
type Registry struct {
	ctors map[string]Constructor
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register adds ctor under name.
func (r *Registry) Register(name string, ctor Constructor) {
	if _, dup := r.ctors[name]; dup {
		panic("ffi: duplicate registration for " + name)
	}
	r.ctors[name] = ctor
}

// Factory adapts the Registry to vm.ForeignFactory, the signature
// exec.Interpreter.Foreign calls.
func (r *Registry) Factory() vm.ForeignFactory {
	return func(name string, args []vm.Value) (vm.ForeignObject, vm.ForeignMethodSet, error) {
		ctor, ok := r.ctors[name]
		if !ok {
			return nil, vm.ForeignMethodSet{}, unknownNameError(name)
		}
		return ctor(args)
	}
}

type unknownNameError string

func (e unknownNameError) Error() string { return "ffi: no host object registered under " + string(e) }
