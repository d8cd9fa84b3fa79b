package exec

import (
	"unicode/utf8"

	"github.com/prateekvishnu/goscript/pkg/vmerr"
	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/intern"
	"github.com/prateekvishnu/goscript/vm/meta"
)

// execCast implements CAST: see doc.go for the full per-(T0,T1) operand
// contract.
func (in *Interpreter) execCast(reg *meta.Registry, v vm.Value, ins vm.Instruction) (vm.Value, error) {
	switch ins.T1 {
	case vm.KindInterface:
		concrete := concreteMetaKey(v)
		ifaceKey := meta.Key(ins.Imm)
		dispatch := intern.Resolve(in.Dispatch, reg, ifaceKey, concrete)
		return vm.NewNativeInterfaceValue(ifaceKey, v, dispatch), nil

	case vm.KindString:
		return castToString(v)

	case vm.KindSlice:
		return castToSlice(v, ins.T0)

	default:
		if ins.T1.IsInteger() || ins.T1.IsFloat() || ins.T1.IsComplex() || ins.T1 == vm.KindBool {
			return castScalar(v, ins.T1), nil
		}
		panic("exec: CAST: unsupported target kind " + ins.T1.String())
	}
}

func castScalar(v vm.Value, target vm.Kind) vm.Value {
	if target == vm.KindBool {
		return vm.Bool(v.AsBool())
	}
	if target.IsFloat() {
		f := v.AsFloat64()
		if v.Kind().IsInteger() && isUnsignedVMKind(v.Kind()) {
			f = float64(v.AsUint64())
		}
		if target == vm.KindFloat32 {
			return vm.Float32(float32(f))
		}
		return vm.Float64(f)
	}
	if target.IsComplex() {
		var c complex128
		if v.Kind().IsComplex() {
			c = v.AsComplex128()
		} else {
			c = complex(v.AsFloat64(), 0)
		}
		if target == vm.KindComplex64 {
			return vm.Complex64(complex64(c))
		}
		return vm.Complex128(c)
	}
	// Integer target: truncate/sign-extend the bit pattern.
	var n uint64
	if v.Kind().IsFloat() {
		n = uint64(int64(v.AsFloat64()))
	} else {
		n = v.AsUint64()
	}
	switch target {
	case vm.KindInt8:
		return vm.Int8(int8(n))
	case vm.KindInt16:
		return vm.Int16(int16(n))
	case vm.KindInt32:
		return vm.Int32(int32(n))
	case vm.KindInt64:
		return vm.Int64(int64(n))
	case vm.KindInt:
		return vm.Int(int(n))
	case vm.KindUint8:
		return vm.Uint8(uint8(n))
	case vm.KindUint16:
		return vm.Uint16(uint16(n))
	case vm.KindUint32:
		return vm.Uint32(uint32(n))
	case vm.KindUint64:
		return vm.Uint64(n)
	case vm.KindUint:
		return vm.Uint(uint(n))
	case vm.KindUintptr:
		return vm.Uintptr(uintptr(n))
	default:
		panic("exec: castScalar: unreachable target " + target.String())
	}
}

func isUnsignedVMKind(k vm.Kind) bool {
	switch k {
	case vm.KindUint8, vm.KindUint16, vm.KindUint32, vm.KindUint64, vm.KindUint, vm.KindUintptr:
		return true
	default:
		return false
	}
}

// castToString converts a slice of int32 (Unicode scalar values) or
// uint8 (raw UTF-8 bytes) into a String.
func castToString(v vm.Value) (vm.Value, error) {
	sl := v.Handle().(*vm.Slice)
	switch sl.ElemKind() {
	case vm.KindUint8:
		b := make([]byte, sl.Len())
		for i := range b {
			b[i] = byte(sl.At(i).AsInt64())
		}
		if !utf8.Valid(b) {
			return vm.Value{}, vmerr.New(vmerr.KindInvalidUTF8, "cast: []byte is not valid UTF-8")
		}
		return vm.NewStringValue(string(b)), nil
	case vm.KindInt32:
		runes := make([]rune, sl.Len())
		for i := range runes {
			runes[i] = rune(sl.At(i).AsInt64())
		}
		return vm.NewStringValue(string(runes)), nil
	default:
		panic("exec: castToString: slice element kind must be uint8 or int32")
	}
}

// castToSlice converts a String into a slice of the requested element
// kind (uint8: raw bytes: int32: decoded Unicode scalar values).
func castToSlice(v vm.Value, elemKind vm.Kind) (vm.Value, error) {
	s := v.Handle().(*vm.String)
	switch elemKind {
	case vm.KindUint8:
		b := s.Bytes()
		elems := make([]vm.Value, len(b))
		for i, c := range b {
			elems[i] = vm.Uint8(c)
		}
		arr := vm.NewArray(vm.KindUint8, elems)
		return vm.NewSliceValue(vm.KindUint8, arr, 0, len(elems), len(elems)), nil
	case vm.KindInt32:
		runes := []rune(s.Go())
		elems := make([]vm.Value, len(runes))
		for i, r := range runes {
			elems[i] = vm.Int32(r)
		}
		arr := vm.NewArray(vm.KindInt32, elems)
		return vm.NewSliceValue(vm.KindInt32, arr, 0, len(elems), len(elems)), nil
	default:
		panic("exec: castToSlice: target element kind must be uint8 or int32")
	}
}
