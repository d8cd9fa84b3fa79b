package exec

import (
	"github.com/prateekvishnu/goscript/pkg/vmerr"
	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/frame"
)

// execSlice implements SLICE/SLICE_FULL: see doc.go for the operand
// contract.
func (in *Interpreter) execSlice(stk *frame.Stack, ins vm.Instruction) error {
	max := -1
	if ins.Op == vm.OpSlice {
		max = int(stk.Pop().AsInt64())
	}
	end := int(stk.Pop().AsInt64())
	begin := int(stk.Pop().AsInt64())
	v := stk.Pop()

	var full *vm.Slice
	switch ins.T0 {
	case vm.KindArray:
		a := v.Handle().(*vm.Array)
		full = vm.NewSlice(a.ElemKind(), a, 0, a.Len(), a.Len())
	case vm.KindSlice:
		full = v.Handle().(*vm.Slice)
	case vm.KindString:
		s := v.Handle().(*vm.String)
		full = sliceFromStringBytes(s)
	default:
		panic("exec: SLICE: unsupported T0 " + ins.T0.String())
	}

	resliced, err := full.Reslice(begin, end, max)
	vm.Release(v)
	if err != nil {
		return vmerr.Wrap(vmerr.KindIndexRange, err, "slice")
	}
	stk.Push(vm.NewSliceValueFrom(resliced))
	return nil
}

// sliceFromStringBytes builds a fresh byte-kind Slice over s's content,
// for SLICE's string case: a string's bytes are immutable, but slicing
// one is expressed the same way slicing any other sequence is, against
// a throwaway Slice wrapper.
func sliceFromStringBytes(s *vm.String) *vm.Slice {
	b := s.Bytes()
	elems := make([]vm.Value, len(b))
	for i, c := range b {
		elems[i] = vm.Uint8(c)
	}
	arr := vm.NewArray(vm.KindUint8, elems)
	return vm.NewSlice(vm.KindUint8, arr, 0, len(elems), len(elems))
}
