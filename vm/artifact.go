package vm

import "github.com/prateekvishnu/goscript/vm/meta"

// Artifact is a loaded program: a set of packages, a metadata pool
// (which itself carries every interface's method-name table — see
// meta.InterfaceDesc), a function pool, and an entry function key
// (§2's bytecode-artifact summary). Run constructs a scheduler from one
// and drives it to completion; Run itself lives in vm/sched, the layer
// that owns the fiber scheduler and, transitively, the vm/exec dispatch
// loop it drives, to keep this package's import graph a pure leaf (see
// DESIGN.md).
type Artifact struct {
	Packages  map[string]*Package
	Meta      *meta.Registry
	Functions []*FunctionRecord
	EntryFunc meta.FuncKey
}

// NewArtifact constructs an empty artifact around a fresh metadata
// registry, ready for a loader (or a test harness building one by hand)
// to populate.
func NewArtifact() *Artifact {
	return &Artifact{
		Packages: make(map[string]*Package),
		Meta:     meta.NewRegistry(),
	}
}

// AddFunction appends fn to the function pool and returns its key.
func (a *Artifact) AddFunction(fn *FunctionRecord) meta.FuncKey {
	a.Functions = append(a.Functions, fn)
	return meta.FuncKey(len(a.Functions) - 1)
}

// Function resolves a function key to its record.
func (a *Artifact) Function(key meta.FuncKey) *FunctionRecord {
	return a.Functions[key]
}
