package vm

import (
	"fmt"

	"github.com/prateekvishnu/goscript/vm/heap"
)

// Slice is the triple (underlying array, begin, cap-end) with shared
// ownership of the array: two slices share state exactly when their
// arrays are the same object. len = end - begin, cap = capEnd - begin,
// capEnd <= len(array).
type Slice struct {
	heap.RefHeader
	elemKind Kind
	array    *Array
	begin    int
	end      int
	capEnd   int
}

// NewSlice constructs a slice over array covering [begin, end) with
// capacity extending to capEnd, retaining a reference to the array.
func NewSlice(elemKind Kind, array *Array, begin, end, capEnd int) *Slice {
	heap.Retain(array)
	return &Slice{elemKind: elemKind, array: array, begin: begin, end: end, capEnd: capEnd}
}

func (s *Slice) Kind() heap.Kind       { return heap.KindSlice }
func (s *Slice) Children() []heap.Cell { return []heap.Cell{s.array} }
func (s *Slice) CanMakeCycle() bool    { return false }
func (s *Slice) BreakCycle()           {}

// ElemKind reports the declared element Kind.
func (s *Slice) ElemKind() Kind { return s.elemKind }

// Len reports end - begin.
func (s *Slice) Len() int { return s.end - s.begin }

// Cap reports capEnd - begin.
func (s *Slice) Cap() int { return s.capEnd - s.begin }

// Array returns the backing array handle.
func (s *Slice) Array() *Array { return s.array }

// At returns the element at slice-relative index i.
func (s *Slice) At(i int) Value { return s.array.At(s.begin + i) }

// Set stores v at slice-relative index i.
func (s *Slice) Set(i int, v Value) { s.array.Set(s.begin+i, v) }

// Reslice produces a new Slice sharing the same array, validated against
// the invariant 0 <= begin <= end <= capEnd <= len(array). end == -1
// denotes len (the SLICE opcode's normalization rule); max == -1 reuses
// the receiver's own capEnd.
func (s *Slice) Reslice(begin, end, max int) (*Slice, error) {
	if end == -1 {
		end = s.Len()
	}
	if max == -1 {
		max = s.Cap()
	}
	absBegin := s.begin + begin
	absEnd := s.begin + end
	absCapEnd := s.begin + max
	if !(0 <= absBegin && absBegin <= absEnd && absEnd <= absCapEnd && absCapEnd <= len(s.array.elems)) {
		return nil, fmt.Errorf("slice bounds out of range [%d:%d:%d] with capacity %d",
			begin, end, max, s.Cap())
	}
	return NewSlice(s.elemKind, s.array, absBegin, absEnd, absCapEnd), nil
}

// Append extends s by vs, growing into spare capacity in place when it
// exists, otherwise allocating a fresh, larger backing array and
// returning a Slice over it. The caller is responsible for releasing the
// old handle and retaining the result, same as any other APPEND
// replace-in-place semantics.
func (s *Slice) Append(vs ...Value) *Slice {
	need := s.Len() + len(vs)
	if s.begin+need <= s.capEnd {
		for i, v := range vs {
			retainValue(v)
			s.array.elems[s.end+i] = v
		}
		return NewSlice(s.elemKind, s.array, s.begin, s.begin+need, s.capEnd)
	}

	newCap := growSliceCap(s.Cap(), need)
	newElems := make([]Value, newCap)
	for i := 0; i < s.Len(); i++ {
		v := s.At(i)
		retainValue(v)
		newElems[i] = v
	}
	for i, v := range vs {
		retainValue(v)
		newElems[s.Len()+i] = v
	}
	newArray := &Array{elemKind: s.elemKind, elems: newElems}
	return NewSlice(s.elemKind, newArray, 0, need, newCap)
}

// growSliceCap mirrors the Go runtime's doubling-then-tapering growth
// curve closely enough for amortized-append tests without depending on
// runtime internals: double below 256, then grow by roughly 1.25x.
func growSliceCap(oldCap, needed int) int {
	if oldCap == 0 {
		return needed
	}
	newCap := oldCap
	for newCap < needed {
		if newCap < 256 {
			newCap *= 2
		} else {
			newCap += (newCap + 3*256) / 4
		}
	}
	return newCap
}

// NewSliceValue wraps a freshly constructed Slice in a Value.
func NewSliceValue(elemKind Kind, array *Array, begin, end, capEnd int) Value {
	return fromHandle(KindSlice, NewSlice(elemKind, array, begin, end, capEnd))
}

// NewSliceValueFrom wraps an already-constructed Slice in a Value.
func NewSliceValueFrom(s *Slice) Value {
	return fromHandle(KindSlice, s)
}
