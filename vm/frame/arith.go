package frame

import (
	"github.com/prateekvishnu/goscript/pkg/vmerr"
	"github.com/prateekvishnu/goscript/vm"
)

// BinOp applies a tag-dispatched binary arithmetic/bitwise/comparison
// operator: pops two operands (rhs then lhs), computes, pushes the
// result. Kind-dispatch happens directly off the popped Values' own
// Kind, per §4.3's "arithmetic and comparison operations are
// tag-dispatched on the stack itself."
func (s *Stack) BinOp(op vm.Opcode) error {
	rhs := s.Pop()
	lhs := s.Pop()
	result, err := applyBinOp(op, lhs, rhs)
	if err != nil {
		return err
	}
	s.Push(result)
	return nil
}

// UnaryOp applies a tag-dispatched unary operator: pops one operand,
// computes, pushes the result.
func (s *Stack) UnaryOp(op vm.Opcode) error {
	v := s.Pop()
	result, err := applyUnaryOp(op, v)
	if err != nil {
		return err
	}
	s.Push(result)
	return nil
}

func applyUnaryOp(op vm.Opcode, v vm.Value) (vm.Value, error) {
	switch op {
	case vm.OpUnaryAdd:
		return v, nil
	case vm.OpUnarySub:
		if v.Kind().IsFloat() {
			return rewrapFloat(v.Kind(), -v.AsFloat64()), nil
		}
		if v.Kind().IsComplex() {
			return rewrapComplex(v.Kind(), -v.AsComplex128()), nil
		}
		return rewrapInt(v.Kind(), -v.AsInt64()), nil
	case vm.OpUnaryXor:
		return rewrapInt(v.Kind(), ^v.AsInt64()), nil
	case vm.OpNot:
		return vm.Bool(!v.AsBool()), nil
	default:
		return vm.Value{}, vmerr.New(vmerr.KindInvariant, "frame: not a unary opcode: "+op.String())
	}
}

func applyBinOp(op vm.Opcode, lhs, rhs vm.Value) (vm.Value, error) {
	switch op {
	case vm.OpEql:
		return vm.Bool(valuesEqual(lhs, rhs)), nil
	case vm.OpNeq:
		return vm.Bool(!valuesEqual(lhs, rhs)), nil
	}

	if lhs.Kind() == vm.KindString && rhs.Kind() == vm.KindString {
		return stringBinOp(op, lhs, rhs)
	}
	if lhs.Kind().IsFloat() || rhs.Kind().IsFloat() {
		return floatBinOp(op, lhs, rhs)
	}
	if lhs.Kind().IsComplex() {
		return complexBinOp(op, lhs, rhs)
	}
	return intBinOp(op, lhs, rhs)
}

func stringBinOp(op vm.Opcode, lhs, rhs vm.Value) (vm.Value, error) {
	l := lhs.Handle().(*vm.String).Go()
	r := rhs.Handle().(*vm.String).Go()
	switch op {
	case vm.OpAdd:
		return vm.NewStringValue(l + r), nil
	case vm.OpLss:
		return vm.Bool(l < r), nil
	case vm.OpLeq:
		return vm.Bool(l <= r), nil
	case vm.OpGtr:
		return vm.Bool(l > r), nil
	case vm.OpGeq:
		return vm.Bool(l >= r), nil
	default:
		return vm.Value{}, vmerr.New(vmerr.KindInvariant, "frame: invalid string operator "+op.String())
	}
}

func floatBinOp(op vm.Opcode, lhs, rhs vm.Value) (vm.Value, error) {
	l, r := lhs.AsFloat64(), rhs.AsFloat64()
	k := lhs.Kind()
	switch op {
	case vm.OpAdd:
		return rewrapFloat(k, l+r), nil
	case vm.OpSub:
		return rewrapFloat(k, l-r), nil
	case vm.OpMul:
		return rewrapFloat(k, l*r), nil
	case vm.OpQuo:
		return rewrapFloat(k, l/r), nil
	case vm.OpLss:
		return vm.Bool(l < r), nil
	case vm.OpLeq:
		return vm.Bool(l <= r), nil
	case vm.OpGtr:
		return vm.Bool(l > r), nil
	case vm.OpGeq:
		return vm.Bool(l >= r), nil
	default:
		return vm.Value{}, vmerr.New(vmerr.KindInvariant, "frame: invalid float operator "+op.String())
	}
}

func complexBinOp(op vm.Opcode, lhs, rhs vm.Value) (vm.Value, error) {
	l, r := lhs.AsComplex128(), rhs.AsComplex128()
	k := lhs.Kind()
	switch op {
	case vm.OpAdd:
		return rewrapComplex(k, l+r), nil
	case vm.OpSub:
		return rewrapComplex(k, l-r), nil
	case vm.OpMul:
		return rewrapComplex(k, l*r), nil
	case vm.OpQuo:
		return rewrapComplex(k, l/r), nil
	default:
		return vm.Value{}, vmerr.New(vmerr.KindInvariant, "frame: invalid complex operator "+op.String())
	}
}

func intBinOp(op vm.Opcode, lhs, rhs vm.Value) (vm.Value, error) {
	k := lhs.Kind()
	if isUnsignedKind(k) {
		l, r := lhs.AsUint64(), rhs.AsUint64()
		switch op {
		case vm.OpAdd:
			return rewrapUint(k, l+r), nil
		case vm.OpSub:
			return rewrapUint(k, l-r), nil
		case vm.OpMul:
			return rewrapUint(k, l*r), nil
		case vm.OpQuo:
			if r == 0 {
				return vm.Value{}, vmerr.New(vmerr.KindInvariant, "frame: division by zero")
			}
			return rewrapUint(k, l/r), nil
		case vm.OpRem:
			if r == 0 {
				return vm.Value{}, vmerr.New(vmerr.KindInvariant, "frame: division by zero")
			}
			return rewrapUint(k, l%r), nil
		case vm.OpAnd:
			return rewrapUint(k, l&r), nil
		case vm.OpOr:
			return rewrapUint(k, l|r), nil
		case vm.OpXor:
			return rewrapUint(k, l^r), nil
		case vm.OpAndNot:
			return rewrapUint(k, l&^r), nil
		case vm.OpShl:
			return rewrapUint(k, l<<r), nil
		case vm.OpShr:
			return rewrapUint(k, l>>r), nil
		case vm.OpLss:
			return vm.Bool(l < r), nil
		case vm.OpLeq:
			return vm.Bool(l <= r), nil
		case vm.OpGtr:
			return vm.Bool(l > r), nil
		case vm.OpGeq:
			return vm.Bool(l >= r), nil
		}
	}

	l, r := lhs.AsInt64(), rhs.AsInt64()
	switch op {
	case vm.OpAdd:
		return rewrapInt(k, l+r), nil
	case vm.OpSub:
		return rewrapInt(k, l-r), nil
	case vm.OpMul:
		return rewrapInt(k, l*r), nil
	case vm.OpQuo:
		if r == 0 {
			return vm.Value{}, vmerr.New(vmerr.KindInvariant, "frame: division by zero")
		}
		return rewrapInt(k, l/r), nil
	case vm.OpRem:
		if r == 0 {
			return vm.Value{}, vmerr.New(vmerr.KindInvariant, "frame: division by zero")
		}
		return rewrapInt(k, l%r), nil
	case vm.OpAnd:
		return rewrapInt(k, l&r), nil
	case vm.OpOr:
		return rewrapInt(k, l|r), nil
	case vm.OpXor:
		return rewrapInt(k, l^r), nil
	case vm.OpAndNot:
		return rewrapInt(k, l&^r), nil
	case vm.OpShl:
		return rewrapInt(k, l<<uint(r)), nil
	case vm.OpShr:
		return rewrapInt(k, l>>uint(r)), nil
	case vm.OpLss:
		return vm.Bool(l < r), nil
	case vm.OpLeq:
		return vm.Bool(l <= r), nil
	case vm.OpGtr:
		return vm.Bool(l > r), nil
	case vm.OpGeq:
		return vm.Bool(l >= r), nil
	default:
		return vm.Value{}, vmerr.New(vmerr.KindInvariant, "frame: invalid integer operator "+op.String())
	}
}

func isUnsignedKind(k vm.Kind) bool {
	switch k {
	case vm.KindUint8, vm.KindUint16, vm.KindUint32, vm.KindUint64, vm.KindUint, vm.KindUintptr:
		return true
	default:
		return false
	}
}

func rewrapInt(k vm.Kind, v int64) vm.Value {
	switch k {
	case vm.KindInt8:
		return vm.Int8(int8(v))
	case vm.KindInt16:
		return vm.Int16(int16(v))
	case vm.KindInt32:
		return vm.Int32(int32(v))
	case vm.KindInt64:
		return vm.Int64(v)
	default:
		return vm.Int(int(v))
	}
}

func rewrapUint(k vm.Kind, v uint64) vm.Value {
	switch k {
	case vm.KindUint8:
		return vm.Uint8(uint8(v))
	case vm.KindUint16:
		return vm.Uint16(uint16(v))
	case vm.KindUint32:
		return vm.Uint32(uint32(v))
	case vm.KindUint64:
		return vm.Uint64(v)
	case vm.KindUintptr:
		return vm.Uintptr(uintptr(v))
	default:
		return vm.Uint(uint(v))
	}
}

func rewrapFloat(k vm.Kind, v float64) vm.Value {
	if k == vm.KindFloat32 {
		return vm.Float32(float32(v))
	}
	return vm.Float64(v)
}

func rewrapComplex(k vm.Kind, v complex128) vm.Value {
	if k == vm.KindComplex64 {
		return vm.Complex64(complex64(v))
	}
	return vm.Complex128(v)
}

// valuesEqual implements EQL/NEQ's by-value comparison: scalars by bit
// pattern, strings by content, structs field-wise (recursively), and
// every other handle kind by identity (maps, per §3, are never equal).
func valuesEqual(a, b vm.Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case vm.KindString:
		return a.Handle().(*vm.String).Equal(b.Handle().(*vm.String))
	case vm.KindStruct:
		sa, sb := a.Handle().(*vm.Struct), b.Handle().(*vm.Struct)
		if sa.TypeKey() != sb.TypeKey() || sa.Len() != sb.Len() {
			return false
		}
		for i := 0; i < sa.Len(); i++ {
			if !valuesEqual(sa.Field(i), sb.Field(i)) {
				return false
			}
		}
		return true
	case vm.KindMap:
		return false
	default:
		if a.Kind().IsHandle() {
			return a.Handle() == b.Handle()
		}
		return a.AsUint64() == b.AsUint64()
	}
}
