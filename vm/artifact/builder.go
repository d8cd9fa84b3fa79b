package artifact

import (
	"fmt"

	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/meta"
)

// Builder assembles a vm.Artifact incrementally. A zero Builder is not
// usable; construct one with NewBuilder.
type Builder struct {
	art   *vm.Artifact
	names map[string]meta.FuncKey
}

// NewBuilder constructs an empty Builder over a fresh metadata registry
// and function/package pool.
func NewBuilder() *Builder {
	return &Builder{
		art:   vm.NewArtifact(),
		names: make(map[string]meta.FuncKey),
	}
}

// Meta returns the artifact's metadata registry, for declaring the
// program's types before any function body references them.
func (b *Builder) Meta() *meta.Registry { return b.art.Meta }

// Declare reserves a function-pool slot under name (conventionally
// "<package path>.<func name>", or "<package path>.<Type>.<method>" for
// a method) before its body is known, returning the stable FuncKey
// other functions being built concurrently can already CALL/BIND_METHOD
// against — the same forward-reference problem any linker resolving
// mutually recursive functions has to solve before a single byte of
// either body exists.
func (b *Builder) Declare(name string) meta.FuncKey {
	key := b.art.AddFunction(&vm.FunctionRecord{Name: name})
	b.names[name] = key
	return key
}

// Define fills in a previously Declared function's body. fn.Name is
// overwritten with the name Declare was called with, so callers can
// build fn without repeating it.
func (b *Builder) Define(key meta.FuncKey, fn *vm.FunctionRecord) {
	fn.Name = b.art.Function(key).Name
	*b.art.Function(key) = *fn
}

// AddFunction declares and defines a function in one step, for the
// common case of a function with no forward references to it. It
// returns the assigned FuncKey.
func (b *Builder) AddFunction(fn *vm.FunctionRecord) meta.FuncKey {
	key := b.art.AddFunction(fn)
	b.names[fn.Name] = key
	return key
}

// Lookup resolves a previously Declared or AddFunction-ed name to its
// FuncKey.
func (b *Builder) Lookup(name string) (meta.FuncKey, bool) {
	key, ok := b.names[name]
	return key, ok
}

// AddPackage constructs a package over memberNames and inits and
// registers it into the artifact under key, returning it so the caller
// can populate LOAD_PKG_FIELD/STORE_PKG_FIELD constant operands with
// vm.NewPackageValue(pkg) against the same instance.
func (b *Builder) AddPackage(key string, memberNames []string, inits []meta.FuncKey) *vm.Package {
	pkg := vm.NewPackage(key, memberNames, inits)
	b.art.Packages[key] = pkg
	return pkg
}

// SetEntry resolves name to its declared FuncKey and sets it as the
// artifact's entry point. It returns an error if name was never
// Declared or AddFunction-ed, since that means the program has no
// function to start running.
func (b *Builder) SetEntry(name string) error {
	key, ok := b.names[name]
	if !ok {
		return fmt.Errorf("artifact: entry function %q was never declared", name)
	}
	b.art.EntryFunc = key
	return nil
}

// Build returns the assembled artifact. The Builder remains usable
// afterward (Build takes no ownership), though mutating it further
// after handing the artifact to sched.Run is a caller bug.
func (b *Builder) Build() *vm.Artifact { return b.art }
