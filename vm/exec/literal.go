package exec

import (
	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/frame"
	"github.com/prateekvishnu/goscript/vm/meta"
	"github.com/prateekvishnu/goscript/vm/upvalue"
)

// execLiteral implements LITERAL: see doc.go for the full per-T0
// operand contract.
func (in *Interpreter) execLiteral(st *State, frm *frame.Frame, fn *vm.FunctionRecord, ins vm.Instruction) error {
	stk := st.Stack
	switch ins.T0 {
	case vm.KindArray, vm.KindSlice:
		n := int(ins.Imm)
		elems := make([]vm.Value, n)
		for i := n - 1; i >= 0; i-- {
			elems[i] = stk.Pop()
		}
		elemKind := vm.KindInvalid
		if n > 0 {
			elemKind = elems[0].Kind()
		}
		arr := vm.NewArray(elemKind, elems)
		if ins.T0 == vm.KindArray {
			stk.Push(vm.NewArrayValueFrom(arr))
		} else {
			stk.Push(vm.NewSliceValue(elemKind, arr, 0, n, n))
		}
		return nil

	case vm.KindMap:
		reg := in.meta()
		d := reg.Get(meta.Key(stk.Pop().AsMetaKey()))
		keyKind := metaKeyToKind(reg, d.MapKey)
		elemKind := metaKeyToKind(reg, d.MapElem)
		stk.Push(vm.NewMapValue(keyKind, elemKind, zeroForMeta(reg, d.MapElem)))
		return nil

	case vm.KindStruct:
		n := int(ins.Imm)
		fields := make([]vm.Value, n)
		for i := n - 1; i >= 0; i-- {
			fields[i] = stk.Pop()
		}
		typeKey := meta.Key(stk.Pop().AsMetaKey())
		stk.Push(vm.NewStructValue(in.meta(), typeKey, fields))
		return nil

	case vm.KindClosure:
		funcKey := meta.FuncKey(ins.Imm)
		var recv *vm.Value
		if ins.T1 == vm.KindBool {
			r := stk.Pop()
			recv = &r
		}
		target := in.Artifact.Function(funcKey)
		ups := upvalue.Capture(frm, target.UpValues)
		stk.Push(vm.NewNativeClosureValue(funcKey, recv, ups))
		return nil

	default:
		panic("exec: LITERAL: unsupported T0 " + ins.T0.String())
	}
}
