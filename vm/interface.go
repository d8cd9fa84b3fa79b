package vm

import (
	"github.com/prateekvishnu/goscript/vm/heap"
	"github.com/prateekvishnu/goscript/vm/meta"
)

// ifaceVariant tags Interface's three-way sum: native (boxed VM value
// plus a memoized dispatch vector), foreign (a host object plus its
// method names), or nil (a distinct variant per §3, not merely a native
// interface boxing a nil value).
type ifaceVariant uint8

const (
	ifaceNil ifaceVariant = iota
	ifaceNative
	ifaceForeign
)

// Interface is the data model's three-way sum: see ifaceVariant.
type Interface struct {
	heap.RefHeader
	variant    ifaceVariant
	underlying Value
	ifaceKey   meta.Key       // the static interface type this value satisfies
	dispatch   []meta.FuncKey // memoized in vm/intern, copied in here at cast time

	foreignObj     ForeignObject
	foreignMethods ForeignMethodSet
}

// NilInterface is the shared nil-interface Value.
var NilInterface = fromHandle(KindInterface, &Interface{variant: ifaceNil})

// NewNativeInterface boxes underlying as satisfying ifaceKey, with a
// dispatch vector already resolved (by vm/intern) for the pairing of
// ifaceKey and underlying's concrete type.
func NewNativeInterface(ifaceKey meta.Key, underlying Value, dispatch []meta.FuncKey) *Interface {
	retainValue(underlying)
	return &Interface{variant: ifaceNative, underlying: underlying, ifaceKey: ifaceKey, dispatch: dispatch}
}

// NewForeignInterface boxes a foreign object as an interface value.
func NewForeignInterface(obj ForeignObject, methods ForeignMethodSet) *Interface {
	return &Interface{variant: ifaceForeign, foreignObj: obj, foreignMethods: methods}
}

func (i *Interface) Kind() heap.Kind { return heap.KindInterface }

func (i *Interface) Children() []heap.Cell {
	if i.variant == ifaceNative && i.underlying.kind.IsHandle() {
		return []heap.Cell{i.underlying.handle}
	}
	return nil
}

func (i *Interface) CanMakeCycle() bool {
	return i.variant == ifaceForeign && i.foreignObj != nil && i.foreignObj.CanMakeCycle()
}

func (i *Interface) BreakCycle() {
	if i.variant == ifaceForeign && i.foreignObj != nil {
		i.foreignObj.BreakCycle()
	}
}

// IsNil reports whether this is the nil-interface variant.
func (i *Interface) IsNil() bool { return i.variant == ifaceNil }

// IsForeign reports whether this interface boxes a foreign object.
func (i *Interface) IsForeign() bool { return i.variant == ifaceForeign }

// Underlying returns the boxed native value. Only valid when !IsNil() &&
// !IsForeign().
func (i *Interface) Underlying() Value { return i.underlying }

// Dispatch returns the memoized function-key vector for this interface's
// method set, in the same order as the interface metadata's Methods.
func (i *Interface) Dispatch() []meta.FuncKey { return i.dispatch }

// ForeignObject returns the boxed host object. Only valid when
// IsForeign().
func (i *Interface) ForeignObject() ForeignObject { return i.foreignObj }

// ForeignMethods returns the boxed host object's callable method names.
func (i *Interface) ForeignMethods() ForeignMethodSet { return i.foreignMethods }

// NewNativeInterfaceValue wraps a freshly constructed native Interface in a Value.
func NewNativeInterfaceValue(ifaceKey meta.Key, underlying Value, dispatch []meta.FuncKey) Value {
	return fromHandle(KindInterface, NewNativeInterface(ifaceKey, underlying, dispatch))
}

// NewForeignInterfaceValue wraps a freshly constructed foreign Interface in a Value.
func NewForeignInterfaceValue(obj ForeignObject, methods ForeignMethodSet) Value {
	return fromHandle(KindInterface, NewForeignInterface(obj, methods))
}
