package exec

import (
	"github.com/prateekvishnu/goscript/pkg/vmerr"
	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/frame"
)

// execFFI implements FFI: Imm = count of constructor argument Values,
// pushed above a KindString Value naming the registered foreign object
// (the last argument is on top and is popped first, the name last). A
// nil Interpreter.Foreign yields a vmerr.KindFFI error. The host
// factory is free to Retain any argument it wants to keep a reference
// to; args not retained by it are released here, the same borrowed-
// operand convention LOAD_INDEX/STORE_INDEX apply to their index and
// container operands.
func (in *Interpreter) execFFI(stk *frame.Stack, ins vm.Instruction) error {
	n := int(ins.Imm)
	args := make([]vm.Value, n)
	for i := n - 1; i >= 0; i-- {
		args[i] = stk.Pop()
	}
	nameV := stk.Pop()
	name := nameV.Handle().(*vm.String).Go()

	if in.Foreign == nil {
		for _, a := range args {
			vm.Release(a)
		}
		vm.Release(nameV)
		return vmerr.New(vmerr.KindFFI, "construct foreign object %q: no FFI factory supplied", name)
	}
	obj, methods, err := in.Foreign(name, args)

	for _, a := range args {
		vm.Release(a)
	}
	vm.Release(nameV)

	if err != nil {
		return vmerr.Wrap(vmerr.KindFFI, err, "construct foreign object %q", name)
	}
	stk.Push(vm.NewForeignInterfaceValue(obj, methods))
	return nil
}
