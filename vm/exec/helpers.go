package exec

import (
	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/meta"
)

// kindToMetaKey maps a scalar/nil/string vm.Kind to its predefined
// meta.Key, for opcodes (CAST, TYPE, TYPE_ASSERT) that need a concrete
// type's metadata identity starting only from a runtime Value's Kind.
// Composite kinds have no single predefined key (their shape is
// per-declaration) and are never passed here; callers resolve those
// through the Value's own handle (Struct.TypeKey(), Slice.ElemKind()
// plus a registry lookup, etc.) instead.
func kindToMetaKey(k vm.Kind) meta.Key {
	switch k {
	case vm.KindBool:
		return meta.KeyBool
	case vm.KindInt8:
		return meta.KeyInt8
	case vm.KindInt16:
		return meta.KeyInt16
	case vm.KindInt32:
		return meta.KeyInt32
	case vm.KindInt64:
		return meta.KeyInt64
	case vm.KindInt:
		return meta.KeyInt
	case vm.KindUint8:
		return meta.KeyUint8
	case vm.KindUint16:
		return meta.KeyUint16
	case vm.KindUint32:
		return meta.KeyUint32
	case vm.KindUint64:
		return meta.KeyUint64
	case vm.KindUint:
		return meta.KeyUint
	case vm.KindUintptr:
		return meta.KeyUintptr
	case vm.KindFloat32:
		return meta.KeyFloat32
	case vm.KindFloat64:
		return meta.KeyFloat64
	case vm.KindComplex64:
		return meta.KeyComplex64
	case vm.KindComplex128:
		return meta.KeyComplex128
	case vm.KindString:
		return meta.KeyString
	case vm.KindNil:
		return meta.KeyNil
	case vm.KindUnsafePtr:
		return meta.KeyUnsafePtr
	default:
		panic("exec: kindToMetaKey: no predefined key for composite kind " + k.String())
	}
}

// concreteMetaKey resolves v's concrete runtime type to a meta.Key,
// covering both scalar kinds (via kindToMetaKey) and the one handle kind
// with a per-value rather than per-declaration type identity that CAST
// and TYPE_ASSERT need to interface-box: Struct.
func concreteMetaKey(v vm.Value) meta.Key {
	if v.Kind() == vm.KindStruct {
		return v.Handle().(*vm.Struct).TypeKey()
	}
	return kindToMetaKey(v.Kind())
}

// zeroForMeta constructs the zero Value for a metadata-described type,
// used by MAKE/NEW and by Map's stored zero-element value.
func zeroForMeta(reg *meta.Registry, key meta.Key) vm.Value {
	d := reg.Get(key)
	switch d.Kind {
	case meta.DescScalar:
		return zeroForScalarKey(key)
	case meta.DescNil:
		return vm.Nil
	case meta.DescUnsafePtr:
		return vm.Nil
	case meta.DescArray:
		elems := make([]vm.Value, d.ArrayLen)
		zv := zeroForMeta(reg, d.ArrayElem)
		for i := range elems {
			elems[i] = zv
		}
		return vm.NewArrayValue(metaKeyToKind(reg, d.ArrayElem), elems)
	case meta.DescSlice:
		return vm.Nil // the nil slice, same universal nil sentinel as a nil pointer/channel
	case meta.DescMap:
		return vm.Nil // the nil map
	case meta.DescStruct:
		fields := make([]vm.Value, len(d.Struct.Fields))
		for i, f := range d.Struct.Fields {
			fields[i] = zeroForMeta(reg, f.Type)
		}
		return vm.NewStructValue(reg, key, fields)
	case meta.DescInterface:
		return vm.NilInterface
	case meta.DescChannel:
		return vm.Nil
	case meta.DescPointerTo:
		return vm.Nil
	case meta.DescNamed:
		return zeroForMeta(reg, d.Named.Underlying)
	default:
		panic("exec: zeroForMeta: unhandled metadata kind")
	}
}

func zeroForScalarKey(key meta.Key) vm.Value {
	switch key {
	case meta.KeyBool:
		return vm.Bool(false)
	case meta.KeyInt8:
		return vm.Int8(0)
	case meta.KeyInt16:
		return vm.Int16(0)
	case meta.KeyInt32:
		return vm.Int32(0)
	case meta.KeyInt64:
		return vm.Int64(0)
	case meta.KeyInt:
		return vm.Int(0)
	case meta.KeyUint8:
		return vm.Uint8(0)
	case meta.KeyUint16:
		return vm.Uint16(0)
	case meta.KeyUint32:
		return vm.Uint32(0)
	case meta.KeyUint64:
		return vm.Uint64(0)
	case meta.KeyUint:
		return vm.Uint(0)
	case meta.KeyUintptr:
		return vm.Uintptr(0)
	case meta.KeyFloat32:
		return vm.Float32(0)
	case meta.KeyFloat64:
		return vm.Float64(0)
	case meta.KeyComplex64:
		return vm.Complex64(0)
	case meta.KeyComplex128:
		return vm.Complex128(0)
	case meta.KeyString:
		return vm.NewStringValue("")
	default:
		panic("exec: zeroForScalarKey: not a scalar key")
	}
}

// zeroForKind constructs a zero Value directly from a runtime vm.Kind,
// for RECV/SELECT's closed-channel case where only the channel's element
// Kind (not a full meta.Key) is available. Composite element kinds
// (struct channels in particular) fall back to the universal nil
// sentinel rather than a fully-shaped zero struct, since no metadata key
// is threaded down to this call site — an acceptable approximation since
// a zero struct value is rarely observed before being overwritten.
func zeroForKind(k vm.Kind) vm.Value {
	switch k {
	case vm.KindBool, vm.KindInt8, vm.KindInt16, vm.KindInt32, vm.KindInt64, vm.KindInt,
		vm.KindUint8, vm.KindUint16, vm.KindUint32, vm.KindUint64, vm.KindUint, vm.KindUintptr,
		vm.KindFloat32, vm.KindFloat64, vm.KindComplex64, vm.KindComplex128, vm.KindString:
		return zeroForScalarKey(kindToMetaKey(k))
	default:
		return vm.Nil
	}
}

// metaKeyToKind recovers a vm.Kind from a metadata key, for the
// composite-construction paths (MAKE, LITERAL, zero-fill) that tag a
// fresh Value or element kind. Scalar keys map to their scalar Kind,
// composite descriptors to their handle Kind (KindArray, KindStruct,
// etc.), and named types to their underlying type's Kind; nil and
// unsafe-pointer keys are handled too, and anything else panics.
func metaKeyToKind(reg *meta.Registry, key meta.Key) vm.Kind {
	d := reg.Get(key)
	switch d.Kind {
	case meta.DescScalar:
		switch key {
		case meta.KeyBool:
			return vm.KindBool
		case meta.KeyInt8:
			return vm.KindInt8
		case meta.KeyInt16:
			return vm.KindInt16
		case meta.KeyInt32:
			return vm.KindInt32
		case meta.KeyInt64:
			return vm.KindInt64
		case meta.KeyInt:
			return vm.KindInt
		case meta.KeyUint8:
			return vm.KindUint8
		case meta.KeyUint16:
			return vm.KindUint16
		case meta.KeyUint32:
			return vm.KindUint32
		case meta.KeyUint64:
			return vm.KindUint64
		case meta.KeyUint:
			return vm.KindUint
		case meta.KeyUintptr:
			return vm.KindUintptr
		case meta.KeyFloat32:
			return vm.KindFloat32
		case meta.KeyFloat64:
			return vm.KindFloat64
		case meta.KeyComplex64:
			return vm.KindComplex64
		case meta.KeyComplex128:
			return vm.KindComplex128
		case meta.KeyString:
			return vm.KindString
		}
	case meta.DescArray:
		return vm.KindArray
	case meta.DescSlice:
		return vm.KindSlice
	case meta.DescMap:
		return vm.KindMap
	case meta.DescStruct:
		return vm.KindStruct
	case meta.DescInterface:
		return vm.KindInterface
	case meta.DescChannel:
		return vm.KindChannel
	case meta.DescPointerTo:
		return vm.KindPointer
	case meta.DescNamed:
		return metaKeyToKind(reg, d.Named.Underlying)
	case meta.DescNil:
		return vm.KindNil
	case meta.DescUnsafePtr:
		return vm.KindUnsafePtr
	}
	panic("exec: metaKeyToKind: unhandled metadata kind")
}
