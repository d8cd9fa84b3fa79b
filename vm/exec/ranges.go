package exec

import (
	"unicode/utf8"

	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/frame"
)

// rangeInit implements RANGE_INIT: allocates the next free slot in the
// fiber's range-iteration pool and takes ownership of container's
// reference (the caller must not release it itself; rangeStep does so
// on exhaustion).
func (in *Interpreter) rangeInit(st *State, containerKind vm.Kind, container vm.Value) int {
	slot := st.allocRangeSlot()
	it := &st.ranges[slot]
	it.container = container
	it.idx = 0
	it.mapIdx = 0
	if container.Kind() == vm.KindMap {
		it.mapKeys = container.Handle().(*vm.Map).Keys()
	}
	return slot
}

// rangeStep implements RANGE: advances the addressed slot, pushing the
// next (key, value) pair and returning false, or releasing the
// container, freeing the slot, and returning true on exhaustion.
func (in *Interpreter) rangeStep(st *State, slot int, stk *frame.Stack) (bool, error) {
	it := &st.ranges[slot]
	switch it.container.Kind() {
	case vm.KindArray:
		a := it.container.Handle().(*vm.Array)
		if it.idx >= a.Len() {
			return in.rangeExhaust(st, slot), nil
		}
		v := a.At(it.idx)
		vm.Retain(v)
		stk.Push(vm.Int(it.idx))
		stk.Push(v)
		it.idx++
		return false, nil

	case vm.KindSlice:
		s := it.container.Handle().(*vm.Slice)
		if it.idx >= s.Len() {
			return in.rangeExhaust(st, slot), nil
		}
		v := s.At(it.idx)
		vm.Retain(v)
		stk.Push(vm.Int(it.idx))
		stk.Push(v)
		it.idx++
		return false, nil

	case vm.KindString:
		s := it.container.Handle().(*vm.String)
		b := s.Bytes()
		if it.idx >= len(b) {
			return in.rangeExhaust(st, slot), nil
		}
		r, size := utf8.DecodeRune(b[it.idx:])
		stk.Push(vm.Int(it.idx))
		stk.Push(vm.Int32(r))
		it.idx += size
		return false, nil

	case vm.KindMap:
		if it.mapIdx >= len(it.mapKeys) {
			return in.rangeExhaust(st, slot), nil
		}
		k := it.mapKeys[it.mapIdx]
		v, _ := it.container.Handle().(*vm.Map).Get(k)
		vm.Retain(k)
		vm.Retain(v)
		stk.Push(k)
		stk.Push(v)
		it.mapIdx++
		return false, nil

	default:
		return in.rangeExhaust(st, slot), nil
	}
}

func (in *Interpreter) rangeExhaust(st *State, slot int) bool {
	vm.Release(st.ranges[slot].container)
	st.freeRangeSlot(slot)
	return true
}
