package frame

import (
	"github.com/prateekvishnu/goscript/pkg/vmerr"
	"github.com/prateekvishnu/goscript/vm"
)

// Stack is the absolute-indexed value stack shared by every frame on a
// single fiber (§4.3). Push/Pop operate at the top; Get/Set address any
// live slot directly, which is how a frame reaches its own locals and
// how an open up-value reaches a slot in an outer frame.
type Stack struct {
	vals []vm.Value
}

// NewStack constructs an empty stack with a modest initial capacity.
func NewStack() *Stack {
	return &Stack{vals: make([]vm.Value, 0, 64)}
}

// Len reports the current stack height.
func (s *Stack) Len() int { return len(s.vals) }

// Push appends v to the top of the stack.
func (s *Stack) Push(v vm.Value) { s.vals = append(s.vals, v) }

// Pop removes and returns the top value.
func (s *Stack) Pop() vm.Value {
	n := len(s.vals) - 1
	v := s.vals[n]
	s.vals = s.vals[:n]
	return v
}

// PopTyped pops the top value and validates its Kind matches want,
// returning a KindTypeAssert error on mismatch, so a caller can catch
// encoder/decoder bugs before they manifest as silent misreads. The
// dispatcher itself does not call it.
func (s *Stack) PopTyped(want vm.Kind) (vm.Value, error) {
	v := s.Pop()
	if v.Kind() != want {
		return vm.Value{}, vmerr.New(vmerr.KindTypeAssert, "stack: popped value kind mismatch")
	}
	return v, nil
}

// Get reads the value at absolute index i.
func (s *Stack) Get(i int) vm.Value { return s.vals[i] }

// Set writes v at absolute index i.
func (s *Stack) Set(i int, v vm.Value) { s.vals[i] = v }

// Truncate shrinks the stack to height n, discarding everything above.
func (s *Stack) Truncate(n int) { s.vals = s.vals[:n] }

// Grow extends the stack to height n with zero Values, used when
// entering a frame to reserve its local slots.
func (s *Stack) Grow(n int) {
	for len(s.vals) < n {
		s.vals = append(s.vals, vm.Value{})
	}
}

// PackVariadic collects the tail range [from, Len()) into a new slice of
// elemKind, truncating the stack back to from and pushing the packed
// slice — CALL_ELLIPSIS and the variadic-parameter path of CALL share
// this.
func (s *Stack) PackVariadic(from int, elemKind vm.Kind) vm.Value {
	tail := append([]vm.Value(nil), s.vals[from:]...)
	s.Truncate(from)
	arr := vm.NewArray(elemKind, tail)
	sl := vm.NewSlice(elemKind, arr, 0, len(tail), len(tail))
	return vm.NewSliceValueFrom(sl)
}

// DrainReverseInto drains the tail range [from, Len()) into pkg's member
// cells in reverse order, truncating the stack back to from —
// RETURN_INIT_PKG's contract.
func (s *Stack) DrainReverseInto(from int, pkg *vm.Package) {
	tail := append([]vm.Value(nil), s.vals[from:]...)
	s.Truncate(from)
	pkg.DrainInto(tail)
	pkg.MarkInitialized()
}
