package exec

import (
	"strconv"

	"github.com/prateekvishnu/goscript/pkg/vmerr"
	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/frame"
	"github.com/prateekvishnu/goscript/vm/meta"
)

// yieldBudget bounds how many instructions a fiber runs between
// voluntary yields back to the scheduler, so a compute-bound fiber
// can't starve its siblings the way an all-blocking-ops-only yield
// point would allow.
const yieldBudget = 1024

// Call invokes fn as a fresh frame on st, with args already evaluated
// and owned by the caller (Call takes over their reference counts —
// the caller must not release them itself). It runs the dispatch loop
// to completion and returns the callee's result Values, or the first
// runtime error the loop raised.
func (in *Interpreter) Call(st *State, fn *vm.FunctionRecord, closure *vm.Closure, args []vm.Value, y Yielder) ([]vm.Value, error) {
	base := st.Stack.Len()
	for _, a := range args {
		st.Stack.Push(a)
	}
	for _, z := range fn.ZeroResults {
		vm.Retain(z)
		st.Stack.Push(z)
	}
	for _, z := range fn.ZeroLocals {
		vm.Retain(z)
		st.Stack.Push(z)
	}

	frm := frame.NewFrame(st.Stack, base, closure)
	st.Frames = append(st.Frames, frm)
	defer func() { st.Frames = st.Frames[:len(st.Frames)-1] }()

	steps := 0
	for {
		steps++
		if steps >= yieldBudget {
			steps = 0
			y.Yield()
		}
		ins := fn.Code[frm.PC]
		results, done, err := in.step(st, fn, frm, ins, y)
		if err != nil {
			if in.Diagnostics {
				err = in.annotate(err, fn, frm)
			}
			frm.CloseUpValues()
			st.Stack.Truncate(base)
			return nil, err
		}
		if done {
			frm.CloseUpValues()
			st.Stack.Truncate(base)
			return results, nil
		}
	}
}

func (in *Interpreter) annotate(err error, fn *vm.FunctionRecord, frm *frame.Frame) error {
	ve, ok := err.(*vmerr.Error)
	if !ok {
		return err
	}
	pos := ""
	if frm.PC < len(fn.Positions) {
		pos = strconv.FormatUint(uint64(fn.Positions[frm.PC]), 10)
	}
	ve.Trace = append(ve.Trace, vmerr.Frame{FuncName: fn.Name, Pos: pos})
	return ve
}

// step executes one instruction, reporting (results, true, nil) on a
// RETURN/RETURN_INIT_PKG, (nil, false, nil) to continue, or a non-nil
// error to unwind the call.
func (in *Interpreter) step(st *State, fn *vm.FunctionRecord, frm *frame.Frame, ins vm.Instruction, y Yielder) ([]vm.Value, bool, error) {
	reg := in.meta()
	stk := st.Stack
	next := frm.PC + 1

	switch ins.Op {
	case vm.OpPushConst:
		v := fn.Consts[ins.Imm]
		vm.Retain(v)
		stk.Push(v)

	case vm.OpPushImm:
		stk.Push(vm.Int64(int64(ins.Imm)))

	case vm.OpPushNil:
		stk.Push(vm.Nil)

	case vm.OpPushTrue:
		stk.Push(vm.Bool(true))

	case vm.OpPushFalse:
		stk.Push(vm.Bool(false))

	case vm.OpLiteral:
		if err := in.execLiteral(st, frm, fn, ins); err != nil {
			return nil, false, err
		}

	case vm.OpPop:
		vm.Release(stk.Pop())

	case vm.OpLoadLocal:
		v := frm.Local(int(ins.Imm))
		vm.Retain(v)
		stk.Push(v)

	case vm.OpStoreLocal:
		frm.SetLocal(int(ins.Imm), stk.Pop())

	case vm.OpLoadUpValue:
		v := frm.UpValues[ins.Imm].Load()
		vm.Retain(v)
		stk.Push(v)

	case vm.OpStoreUpValue:
		frm.UpValues[ins.Imm].Store(stk.Pop())

	case vm.OpLoadIndex:
		idx := stk.Pop()
		container := stk.Pop()
		v, ok, err := loadIndex(container, idx)
		if err != nil {
			vm.Release(container)
			vm.Release(idx)
			return nil, false, err
		}
		vm.Retain(v)
		stk.Push(v)
		if ins.T1 == vm.KindBool {
			stk.Push(vm.Bool(ok))
		}
		vm.Release(container)
		vm.Release(idx)

	case vm.OpLoadIndexImm:
		commaOk, idx := vm.UnpackImm(ins.Imm)
		container := stk.Pop()
		v, ok, err := loadIndex(container, vm.Int64(int64(idx)))
		if err != nil {
			vm.Release(container)
			return nil, false, err
		}
		vm.Retain(v)
		stk.Push(v)
		if commaOk != 0 {
			stk.Push(vm.Bool(ok))
		}
		vm.Release(container)

	case vm.OpStoreIndex:
		val := stk.Pop()
		idx := stk.Pop()
		container := stk.Pop()
		if err := storeIndex(container, idx, val); err != nil {
			return nil, false, err
		}
		vm.Release(idx)
		vm.Release(container)

	case vm.OpStoreIndexImm:
		_, idx := vm.UnpackImm(ins.Imm)
		val := stk.Pop()
		container := stk.Pop()
		if err := storeIndex(container, vm.Int64(int64(idx)), val); err != nil {
			return nil, false, err
		}
		vm.Release(container)

	case vm.OpLoadStructField:
		s := stk.Pop()
		path := fn.FieldPaths[ins.Imm]
		strct, err := requireStruct(s)
		if err != nil {
			return nil, false, err
		}
		v := strct.FieldByPath(path)
		vm.Retain(v)
		stk.Push(v)
		vm.Release(s)

	case vm.OpStoreStructField:
		val := stk.Pop()
		s := stk.Pop()
		path := fn.FieldPaths[ins.Imm]
		strct, err := requireStruct(s)
		if err != nil {
			return nil, false, err
		}
		strct.SetFieldByPath(path, val)
		vm.Release(s)

	case vm.OpLoadPkgField:
		p := stk.Pop()
		pkg := p.Handle().(*vm.Package)
		v := pkg.Member(int(ins.Imm))
		vm.Retain(v)
		stk.Push(v)
		vm.Release(p)

	case vm.OpStorePkgField:
		val := stk.Pop()
		p := stk.Pop()
		pkg := p.Handle().(*vm.Package)
		pkg.SetMember(int(ins.Imm), val)
		vm.Release(p)

	case vm.OpDeref:
		p := stk.Pop()
		ptr, err := requirePointer(p)
		if err != nil {
			return nil, false, err
		}
		v := ptr.Load()
		vm.Retain(v)
		stk.Push(v)
		vm.Release(p)

	case vm.OpStoreDeref:
		val := stk.Pop()
		p := stk.Pop()
		ptr, err := requirePointer(p)
		if err != nil {
			return nil, false, err
		}
		ptr.Store(val)
		vm.Release(p)

	case vm.OpRefLocal:
		i := int(ins.Imm)
		uv := vm.NewOpenUpValue(frm.Slot(i))
		frm.TrackUpValue(i, frm.Local(i).Kind(), uv)
		stk.Push(vm.NewPointerToUpValueValue(uv))

	case vm.OpRefUpValue:
		uv := frm.UpValues[ins.Imm]
		stk.Push(vm.NewPointerToUpValueValue(uv))

	case vm.OpRefSliceMember:
		idx := stk.Pop()
		s := stk.Pop()
		sl := s.Handle().(*vm.Slice)
		stk.Push(vm.NewPointerToSliceElemValue(sl, int(idx.AsInt64())))
		vm.Release(s)

	case vm.OpRefStructField:
		s := stk.Pop()
		path := fn.FieldPaths[ins.Imm]
		strct, err := requireStruct(s)
		if err != nil {
			return nil, false, err
		}
		target := strct
		for _, idx := range path[:len(path)-1] {
			target = target.Field(idx).Handle().(*vm.Struct)
		}
		stk.Push(vm.NewPointerToStructFieldValue(target, path[len(path)-1:]))
		vm.Release(s)

	case vm.OpRefPkgMember:
		p := stk.Pop()
		pkg := p.Handle().(*vm.Package)
		stk.Push(vm.NewPointerToPackageMemberValue(pkg, int(ins.Imm)))
		vm.Release(p)

	case vm.OpRefLiteral:
		v := stk.Pop()
		arr := vm.NewArray(v.Kind(), []vm.Value{v})
		sl := vm.NewSlice(v.Kind(), arr, 0, 1, 1)
		stk.Push(vm.NewPointerToSliceElemValue(sl, 0))

	case vm.OpBindMethod:
		recv := stk.Pop()
		stk.Push(vm.NewNativeClosureValue(meta.FuncKey(ins.Imm), &recv, nil))
		vm.Release(recv)

	case vm.OpBindInterfaceMethod:
		ifv := stk.Pop()
		clo, err := in.bindInterfaceMethod(ifv, int(ins.Imm))
		if err != nil {
			return nil, false, err
		}
		stk.Push(clo)
		vm.Release(ifv)

	case vm.OpCast:
		v := stk.Pop()
		result, err := in.execCast(reg, v, ins)
		if err != nil {
			return nil, false, err
		}
		stk.Push(result)
		vm.Release(v)

	case vm.OpAdd, vm.OpSub, vm.OpMul, vm.OpQuo, vm.OpRem,
		vm.OpAnd, vm.OpOr, vm.OpXor, vm.OpAndNot, vm.OpShl, vm.OpShr,
		vm.OpEql, vm.OpNeq, vm.OpLss, vm.OpLeq, vm.OpGtr, vm.OpGeq:
		if err := stk.BinOp(ins.Op); err != nil {
			return nil, false, err
		}

	case vm.OpUnaryAdd, vm.OpUnarySub, vm.OpUnaryXor, vm.OpNot:
		if err := stk.UnaryOp(ins.Op); err != nil {
			return nil, false, err
		}

	case vm.OpJump:
		next = int(ins.Imm)

	case vm.OpJumpIf:
		if stk.Pop().AsBool() {
			next = int(ins.Imm)
		}

	case vm.OpJumpIfNot:
		if !stk.Pop().AsBool() {
			next = int(ins.Imm)
		}

	case vm.OpSwitch:
		cmp := stk.Pop()
		subj := stk.Pop()
		if valuesEqualStep(subj, cmp) {
			vm.Release(subj)
			next = int(ins.Imm)
		} else {
			stk.Push(subj)
		}
		vm.Release(cmp)

	case vm.OpRangeInit:
		container := stk.Pop()
		slot := in.rangeInit(st, ins.T0, container)
		stk.Push(vm.Int(slot))

	case vm.OpRange:
		slotV := stk.Pop()
		slot := int(slotV.AsInt64())
		done, err := in.rangeStep(st, slot, stk)
		if err != nil {
			return nil, false, err
		}
		if done {
			next = int(ins.Imm)
		} else {
			stk.Push(vm.Int(slot))
		}

	case vm.OpPreCall:
		// landmark only

	case vm.OpCall, vm.OpCallEllipsis:
		n := int(ins.Imm)
		args := make([]vm.Value, n)
		for i := n - 1; i >= 0; i-- {
			args[i] = stk.Pop()
		}
		callee := stk.Pop()
		results, err := in.invoke(st, callee, args, y)
		vm.Release(callee)
		if err != nil {
			return nil, false, err
		}
		for _, r := range results {
			stk.Push(r)
		}

	case vm.OpReturn:
		n := int(ins.Imm)
		results := make([]vm.Value, n)
		for i := n - 1; i >= 0; i-- {
			results[i] = stk.Pop()
		}
		return results, true, nil

	case vm.OpReturnInitPkg:
		pkgV := fn.Consts[ins.Imm]
		pkg := pkgV.Handle().(*vm.Package)
		from := frm.Base + fn.LocalAlloc()
		stk.DrainReverseInto(from, pkg)
		return nil, true, nil

	case vm.OpTypeAssert:
		ifv := stk.Pop()
		result, ok, err := in.execTypeAssert(reg, ifv, meta.Key(ins.Imm))
		commaOk := ins.T1 == vm.KindBool
		if err != nil && !commaOk {
			vm.Release(ifv)
			return nil, false, err
		}
		stk.Push(result)
		if commaOk {
			stk.Push(vm.Bool(ok))
		}
		vm.Release(ifv)

	case vm.OpType:
		v := stk.Pop()
		stk.Push(vm.MetaKey(uint32(runtimeTypeKey(v))))
		vm.Release(v)

	case vm.OpImport:
		pathV := stk.Pop()
		path := pathV.Handle().(*vm.String).Go()
		stk.Push(vm.Bool(in.Packages.NeedsInit(path)))
		vm.Release(pathV)

	case vm.OpSlice, vm.OpSliceFull:
		if err := in.execSlice(stk, ins); err != nil {
			return nil, false, err
		}

	case vm.OpNew:
		zero := zeroForMeta(reg, meta.Key(ins.Imm))
		arr := vm.NewArray(zero.Kind(), []vm.Value{zero})
		sl := vm.NewSlice(zero.Kind(), arr, 0, 1, 1)
		stk.Push(vm.NewPointerToSliceElemValue(sl, 0))

	case vm.OpMake:
		v, err := in.execMake(reg, stk, ins)
		if err != nil {
			return nil, false, err
		}
		stk.Push(v)

	case vm.OpLen:
		v := stk.Pop()
		stk.Push(vm.Int(containerLen(v)))
		vm.Release(v)

	case vm.OpCap:
		v := stk.Pop()
		stk.Push(vm.Int(containerCap(v)))
		vm.Release(v)

	case vm.OpAppend:
		if err := in.execAppend(stk, ins); err != nil {
			return nil, false, err
		}

	case vm.OpAssert:
		v := stk.Pop()
		if !v.AsBool() {
			return nil, false, vmerr.New(vmerr.KindAssertFailed, "assertion failed")
		}

	case vm.OpFFI:
		if err := in.execFFI(stk, ins); err != nil {
			return nil, false, err
		}

	case vm.OpSend:
		if err := in.execSend(stk, y); err != nil {
			return nil, false, err
		}

	case vm.OpRecv:
		if err := in.execRecv(stk, y, ins.T0, false); err != nil {
			return nil, false, err
		}

	case vm.OpRecvCommaOk:
		if err := in.execRecv(stk, y, ins.T0, true); err != nil {
			return nil, false, err
		}

	case vm.OpSelect:
		if err := in.execSelect(st, stk, fn, ins, y); err != nil {
			return nil, false, err
		}

	case vm.OpSpawn:
		n := int(ins.Imm)
		args := make([]vm.Value, n)
		for i := n - 1; i >= 0; i-- {
			args[i] = stk.Pop()
		}
		closV := stk.Pop()
		in.Spawner.Spawn(closV.Handle().(*vm.Closure), args)
		vm.Release(closV)

	default:
		return nil, false, vmerr.New(vmerr.KindInvariant, "exec: unhandled opcode %s", ins.Op)
	}

	frm.PC = next
	return nil, false, nil
}

// invoke dispatches a popped callee Value (a Closure) against args,
// which it owns. Used by CALL and CALL_ELLIPSIS alike: the two opcodes
// only differ in whether the emitter pre-packed a variadic tail, which
// by dispatch time is already reflected in args.
func (in *Interpreter) invoke(st *State, callee vm.Value, args []vm.Value, y Yielder) ([]vm.Value, error) {
	if callee.Kind() == vm.KindNil {
		return nil, vmerr.ErrNilDeref
	}
	clo := callee.Handle().(*vm.Closure)
	if clo.IsForeign() {
		return clo.ForeignFunc()(args)
	}
	if recv, ok := clo.Receiver(); ok {
		full := make([]vm.Value, 0, len(args)+1)
		vm.Retain(recv)
		full = append(full, recv)
		full = append(full, args...)
		args = full
	}
	fn := in.Artifact.Function(clo.FuncKey())
	return in.Call(st, fn, clo, args, y)
}

func requireStruct(v vm.Value) (*vm.Struct, error) {
	if v.Kind() == vm.KindNil {
		return nil, vmerr.ErrNilDeref
	}
	return v.Handle().(*vm.Struct), nil
}

func requirePointer(v vm.Value) (*vm.Pointer, error) {
	if v.Kind() == vm.KindNil {
		return nil, vmerr.ErrNilDeref
	}
	return v.Handle().(*vm.Pointer), nil
}

func valuesEqualStep(a, b vm.Value) bool {
	res, err := frameBinOpEql(a, b)
	if err != nil {
		return false
	}
	return res
}

// frameBinOpEql reuses frame.Stack.BinOp's EQL semantics for SWITCH's
// comparison without needing a throwaway Stack: SWITCH only ever
// compares scalars and strings in practice, so a tiny private stack is
// cheap and keeps the equality rule in exactly one place.
func frameBinOpEql(a, b vm.Value) (bool, error) {
	s := frame.NewStack()
	s.Push(a)
	s.Push(b)
	if err := s.BinOp(vm.OpEql); err != nil {
		return false, err
	}
	return s.Pop().AsBool(), nil
}

func containerLen(v vm.Value) int {
	switch v.Kind() {
	case vm.KindString:
		return v.Handle().(*vm.String).Len()
	case vm.KindArray:
		return v.Handle().(*vm.Array).Len()
	case vm.KindSlice:
		return v.Handle().(*vm.Slice).Len()
	case vm.KindMap:
		return v.Handle().(*vm.Map).Len()
	case vm.KindChannel:
		return v.Handle().(*vm.Channel).Len()
	default:
		return 0
	}
}

func containerCap(v vm.Value) int {
	switch v.Kind() {
	case vm.KindArray:
		return v.Handle().(*vm.Array).Len()
	case vm.KindSlice:
		return v.Handle().(*vm.Slice).Cap()
	case vm.KindChannel:
		return v.Handle().(*vm.Channel).Cap()
	default:
		return 0
	}
}

func runtimeTypeKey(v vm.Value) meta.Key {
	if v.Kind() == vm.KindInterface {
		iface := v.Handle().(*vm.Interface)
		if !iface.IsNil() && !iface.IsForeign() {
			return concreteMetaKey(iface.Underlying())
		}
		return meta.KeyNil
	}
	return concreteMetaKey(v)
}

func (in *Interpreter) bindInterfaceMethod(ifv vm.Value, methodIdx int) (vm.Value, error) {
	iface := ifv.Handle().(*vm.Interface)
	if iface.IsNil() {
		return vm.Value{}, vmerr.ErrNilDeref
	}
	if iface.IsForeign() {
		name := iface.ForeignMethods().Names[methodIdx]
		obj := iface.ForeignObject()
		fn := vm.ForeignFunc(func(args []vm.Value) ([]vm.Value, error) {
			return obj.Call(name, args)
		})
		return vm.NewForeignClosureValue(name, meta.KeyInvalid, fn), nil
	}
	funcKey := iface.Dispatch()[methodIdx]
	recv := iface.Underlying()
	return vm.NewNativeClosureValue(funcKey, &recv, nil), nil
}
