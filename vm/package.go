package vm

import (
	"github.com/prateekvishnu/goscript/vm/heap"
	"github.com/prateekvishnu/goscript/vm/meta"
)

// Package is an insertion-ordered vector of member cells (imports,
// constants, variables, functions), a name->index map, a vector of init
// functions, and a transient var-initialization tracker used only until
// the package is marked initialized (§3's Package entry; IMPORT and
// RETURN_INIT_PKG consult this directly).
type Package struct {
	heap.RefHeader
	key     string
	members []Value
	names   map[string]int
	inits   []meta.FuncKey

	initialized bool
	varInit     map[int]bool // transient: which member indices have run their initializer
}

// NewPackage constructs an empty package with the given stable key
// (import path) and declared member names in declaration order.
func NewPackage(key string, memberNames []string, inits []meta.FuncKey) *Package {
	names := make(map[string]int, len(memberNames))
	for i, n := range memberNames {
		names[n] = i
	}
	return &Package{
		key:     key,
		members: make([]Value, len(memberNames)),
		names:   names,
		inits:   inits,
		varInit: make(map[int]bool),
	}
}

func (p *Package) Kind() heap.Kind { return heap.KindPackage }

func (p *Package) Children() []heap.Cell {
	var out []heap.Cell
	for _, m := range p.members {
		if m.kind.IsHandle() {
			out = append(out, m.handle)
		}
	}
	return out
}

func (p *Package) CanMakeCycle() bool { return false }
func (p *Package) BreakCycle()        {}

// Key returns the package's stable identity (its import path).
func (p *Package) Key() string { return p.key }

// Initialized reports whether the package's init functions have all run.
func (p *Package) Initialized() bool { return p.initialized }

// MarkInitialized flips Initialized to true and discards the transient
// var-init tracker (RETURN_INIT_PKG's contract).
func (p *Package) MarkInitialized() {
	p.initialized = true
	p.varInit = nil
}

// Inits returns the package's init-function keys, in declaration order.
func (p *Package) Inits() []meta.FuncKey { return p.inits }

// IndexOf resolves a declared member name to its index.
func (p *Package) IndexOf(name string) (int, bool) {
	i, ok := p.names[name]
	return i, ok
}

// Member returns the member at a direct index.
func (p *Package) Member(i int) Value { return p.members[i] }

// SetMember stores v at a direct index, adjusting reference counts.
func (p *Package) SetMember(i int, v Value) {
	retainValue(v)
	releaseValue(p.members[i])
	p.members[i] = v
}

// DrainInto stores vs into the last len(vs) member slots in reverse
// order, marking each as initialized — RETURN_INIT_PKG's "drains the
// caller's contribution into the package's variable cells in reverse
// order" behavior.
func (p *Package) DrainInto(vs []Value) {
	start := len(p.members) - len(vs)
	for i := len(vs) - 1; i >= 0; i-- {
		idx := start + i
		p.SetMember(idx, vs[i])
		p.varInit[idx] = true
	}
}

// VarInitialized reports whether member i's initializer has run yet
// (valid only before MarkInitialized discards the tracker).
func (p *Package) VarInitialized(i int) bool {
	return p.varInit != nil && p.varInit[i]
}

// NewPackageValue wraps an existing Package in a Value, for LOAD_PKG_FIELD
// / STORE_PKG_FIELD's operand (a package reference sits in a function's
// constant pool exactly like any other non-scalar literal).
func NewPackageValue(p *Package) Value {
	return fromHandle(KindPackage, p)
}
