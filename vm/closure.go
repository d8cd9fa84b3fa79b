package vm

import (
	"github.com/prateekvishnu/goscript/vm/heap"
	"github.com/prateekvishnu/goscript/vm/meta"
)

// closureVariant tags Closure's two-way sum (§3's Closure entry).
type closureVariant uint8

const (
	closureNative closureVariant = iota
	closureForeign
)

// Closure is either a native closure (a function-pool key, an optional
// bound receiver, and a vector of captured up-values) or a foreign
// closure (a host function bound under a name and signature).
type Closure struct {
	heap.RefHeader
	variant closureVariant

	funcKey  meta.FuncKey
	hasRecv  bool
	recv     Value
	upvalues []*UpValue

	foreignFn   ForeignFunc
	foreignName string
	sigKey      meta.Key
}

// NewNativeClosure constructs a closure over funcKey, capturing
// upvalues (already opened/closed by the caller per §4.4's capture
// walk) and an optional bound receiver.
func NewNativeClosure(funcKey meta.FuncKey, recv *Value, upvalues []*UpValue) *Closure {
	c := &Closure{variant: closureNative, funcKey: funcKey, upvalues: upvalues}
	for _, u := range upvalues {
		heap.Retain(u)
	}
	if recv != nil {
		c.hasRecv = true
		c.recv = *recv
		retainValue(c.recv)
	}
	return c
}

// NewForeignClosure constructs a closure bound to a host function.
func NewForeignClosure(name string, sigKey meta.Key, fn ForeignFunc) *Closure {
	return &Closure{variant: closureForeign, foreignName: name, sigKey: sigKey, foreignFn: fn}
}

func (c *Closure) Kind() heap.Kind { return heap.KindClosure }

func (c *Closure) Children() []heap.Cell {
	var out []heap.Cell
	if c.variant == closureNative {
		if c.hasRecv && c.recv.kind.IsHandle() {
			out = append(out, c.recv.handle)
		}
		for _, u := range c.upvalues {
			out = append(out, u)
		}
	}
	return out
}

func (c *Closure) CanMakeCycle() bool { return false }
func (c *Closure) BreakCycle()        {}

// IsForeign reports whether this is a foreign closure.
func (c *Closure) IsForeign() bool { return c.variant == closureForeign }

// FuncKey returns the function-pool key of a native closure.
func (c *Closure) FuncKey() meta.FuncKey { return c.funcKey }

// Receiver returns the bound receiver, if any.
func (c *Closure) Receiver() (Value, bool) { return c.recv, c.hasRecv }

// UpValues returns the closure's captured up-value cells.
func (c *Closure) UpValues() []*UpValue { return c.upvalues }

// ForeignFunc returns the bound host function.
func (c *Closure) ForeignFunc() ForeignFunc { return c.foreignFn }

// ForeignName returns the bound host function's registered name.
func (c *Closure) ForeignName() string { return c.foreignName }

// SigKey returns the foreign closure's signature metadata key.
func (c *Closure) SigKey() meta.Key { return c.sigKey }

// NewNativeClosureValue wraps a freshly constructed native Closure in a Value.
func NewNativeClosureValue(funcKey meta.FuncKey, recv *Value, upvalues []*UpValue) Value {
	return fromHandle(KindClosure, NewNativeClosure(funcKey, recv, upvalues))
}

// NewForeignClosureValue wraps a freshly constructed foreign Closure in a Value.
func NewForeignClosureValue(name string, sigKey meta.Key, fn ForeignFunc) Value {
	return fromHandle(KindClosure, NewForeignClosure(name, sigKey, fn))
}
