package sched

import (
	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/exec"
)

// Run constructs an Interpreter over art, seeds a fiber on its entry
// function, and drives every fiber (the entry fiber plus whatever it
// transitively spawns) to quiescence. It returns the entry fiber's
// result values, or the first error any fiber raised. ffiFactory may be
// nil for an artifact that never reaches an FFI opcode.
func Run(art *vm.Artifact, ffiFactory vm.ForeignFactory, diagnostics bool) ([]vm.Value, error) {
	interp := exec.NewInterpreter(art, ffiFactory, diagnostics)
	s := NewScheduler(interp)

	entryFn := art.Function(art.EntryFunc)
	entry := s.spawn(nil, entryFn, nil)

	if err := s.run(); err != nil {
		return nil, err
	}
	return entry.results, entry.err
}
