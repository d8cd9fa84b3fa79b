package vm

import "github.com/prateekvishnu/goscript/vm/heap"

// StackSlotRef is a live reference to a single stack slot in some frame
// on some fiber. vm/frame's Frame type implements this so an open
// UpValue can read/write the live stack without vm depending on the
// frame-chain package (see DESIGN.md for the import-direction note).
type StackSlotRef interface {
	Get() Value
	Set(Value)
}

// UpValue is the two-state cell §4.4 describes: Open references a live
// stack slot through a StackSlotRef; Closed owns a value directly. A
// closure holds a vector of these; capture and closing are orchestrated
// by vm/upvalue, which walks the frame chain this package has no
// visibility into.
type UpValue struct {
	heap.RefHeader
	closed bool
	slot   StackSlotRef // set when open
	value  Value        // set when closed
}

// NewOpenUpValue constructs an up-value referencing a live stack slot.
func NewOpenUpValue(slot StackSlotRef) *UpValue {
	return &UpValue{closed: false, slot: slot}
}

// NewClosedUpValue constructs an up-value that owns v directly.
func NewClosedUpValue(v Value) *UpValue {
	retainValue(v)
	return &UpValue{closed: true, value: v}
}

func (u *UpValue) Kind() heap.Kind { return heap.KindUpValue }

func (u *UpValue) Children() []heap.Cell {
	if u.closed && u.value.kind.IsHandle() {
		return []heap.Cell{u.value.handle}
	}
	return nil
}

func (u *UpValue) CanMakeCycle() bool { return false }
func (u *UpValue) BreakCycle()        {}

// IsClosed reports whether this up-value has been closed.
func (u *UpValue) IsClosed() bool { return u.closed }

// Load reads the up-value's current value, through the live stack slot
// if open.
func (u *UpValue) Load() Value {
	if u.closed {
		return u.value
	}
	return u.slot.Get()
}

// Store writes through the up-value, to the live stack slot if open.
func (u *UpValue) Store(v Value) {
	if u.closed {
		retainValue(v)
		releaseValue(u.value)
		u.value = v
		return
	}
	u.slot.Set(v)
}

// Close converts an open up-value into a closed one, snapshotting the
// slot's current value as the owned cell. Called on function return for
// every up-value still referenced by an escaping closure (§4.4).
func (u *UpValue) Close() {
	if u.closed {
		return
	}
	v := u.slot.Get()
	retainValue(v)
	u.closed = true
	u.value = v
	u.slot = nil
}
