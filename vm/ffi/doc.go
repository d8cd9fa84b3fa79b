// Package ffi is the host side of the FFI boundary vm.ForeignFactory
// describes: a name-keyed Registry of Constructors that turns the FFI
// opcode's (name, args) pair into a vm.ForeignObject and its callable
// method-name surface. vm/ffi/hostlib supplies the concrete objects;
// this package only supplies the lookup/dispatch plumbing between a
// Registry and the vm.ForeignFactory signature vm/exec calls.
//
// A Registry is built once at program-startup time (in this repository
// by pkg/govm's SampleFFIRegistry, composing ffi.NewRegistry with
// hostlib.Register) and handed to sched.Run as the ffiFactory argument.
// An artifact that never executes FFI can pass a nil factory; one that
// executes FFI gets a vmerr.KindFFI error both when the factory is nil
// and when the registry has no constructor under the requested name.
package ffi
