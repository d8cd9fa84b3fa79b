package exec

import (
	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/frame"
)

// execAppend implements APPEND: T0 = element Kind, Imm = count of
// trailing values to append, pushed above the slice operand (the last
// value to append is on top and is popped first, the slice last). A nil
// slice operand starts from a zero-length, zero-capacity slice the same
// way append(nil, ...) does in Go.
func (in *Interpreter) execAppend(stk *frame.Stack, ins vm.Instruction) error {
	n := int(ins.Imm)
	args := make([]vm.Value, n)
	for i := n - 1; i >= 0; i-- {
		args[i] = stk.Pop()
	}
	sv := stk.Pop()

	// Append retains each element of args itself (same convention as
	// Map.Set/Array.Set): the popped args ownership is handed straight
	// through, not separately released here.
	var result *vm.Slice
	if sv.Kind() == vm.KindNil {
		empty := vm.NewArray(ins.T0, nil)
		result = vm.NewSlice(ins.T0, empty, 0, 0, 0).Append(args...)
	} else {
		result = sv.Handle().(*vm.Slice).Append(args...)
	}

	vm.Release(sv)
	stk.Push(vm.NewSliceValueFrom(result))
	return nil
}
