package frame

import "github.com/prateekvishnu/goscript/vm"

// ReferredEntry tracks, for one local slot, the slot's declared type
// and every up-value some closure literal created against it while
// still open (§4.3's referred_by map). The up-value pointers here are
// weak: the frame does not Retain them, since the closure that captured
// them already owns the strong reference.
type ReferredEntry struct {
	Type     vm.Kind
	UpValues []*vm.UpValue
}

// Frame is one call activation: the owning closure, program counter,
// stack base, this frame's own up-value vector (the up-values it was
// constructed with, if it's a closure invocation), and a referred_by
// map populated lazily as closure literals capture its locals.
type Frame struct {
	Closure    *vm.Closure
	PC         int
	Base       int
	UpValues   []*vm.UpValue
	ReferredBy map[int]*ReferredEntry

	stack *Stack
}

// NewFrame constructs a frame over stack starting at base, for an
// invocation of closure.
func NewFrame(stack *Stack, base int, closure *vm.Closure) *Frame {
	var upvalues []*vm.UpValue
	if closure != nil {
		upvalues = closure.UpValues()
	}
	return &Frame{Closure: closure, Base: base, UpValues: upvalues, stack: stack}
}

// Local reads local slot i (relative to Base).
func (f *Frame) Local(i int) vm.Value { return f.stack.Get(f.Base + i) }

// SetLocal writes local slot i (relative to Base), retaining the
// incoming value and releasing whatever it displaces — the same
// balanced-ownership convention Struct.SetField and Array.Set use, and
// one open up-values rely on too since localSlot.Set delegates here.
func (f *Frame) SetLocal(i int, v vm.Value) {
	vm.Retain(v)
	vm.Release(f.stack.Get(f.Base + i))
	f.stack.Set(f.Base+i, v)
}

// Slot returns a vm.StackSlotRef for local slot i, for open up-value
// construction.
func (f *Frame) Slot(i int) vm.StackSlotRef { return &localSlot{frame: f, idx: i} }

// TrackUpValue registers uv against local slot i's ReferredEntry,
// creating the entry on first capture. Called by the up-value capture
// walk when a closure literal captures a local directly in this frame.
func (f *Frame) TrackUpValue(i int, typ vm.Kind, uv *vm.UpValue) {
	if f.ReferredBy == nil {
		f.ReferredBy = make(map[int]*ReferredEntry)
	}
	e, ok := f.ReferredBy[i]
	if !ok {
		e = &ReferredEntry{Type: typ}
		f.ReferredBy[i] = e
	}
	e.UpValues = append(e.UpValues, uv)
}

// CloseUpValues runs §4.4's return-time closing pass: every local slot
// still referenced by a live up-value is closed over a fresh owned copy
// of its current stack value. Called just before the frame is popped.
func (f *Frame) CloseUpValues() {
	for _, entry := range f.ReferredBy {
		for _, uv := range entry.UpValues {
			if uv.Count() <= 0 {
				// The closure that captured this up-value has already
				// been released; nothing left to upgrade.
				continue
			}
			uv.Close()
		}
	}
	f.ReferredBy = nil
}

// localSlot implements vm.StackSlotRef against one frame's local slot.
type localSlot struct {
	frame *Frame
	idx   int
}

func (s *localSlot) Get() vm.Value  { return s.frame.Local(s.idx) }
func (s *localSlot) Set(v vm.Value) { s.frame.SetLocal(s.idx, v) }
