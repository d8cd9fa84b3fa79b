package vm

import "fmt"

// Kind tags every Value with its runtime type shape. Scalar kinds carry
// their payload inline in the Value itself; handle kinds carry a
// reference-counted heap.Cell.
type Kind uint8

const (
	KindInvalid Kind = iota

	// Scalar kinds: inline payload, copy semantics.
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindInt
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUint
	KindUintptr
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
	KindNil
	// KindMetadata carries a metadata registry key inline (num), not a
	// heap.Cell: metadata records are interned process-wide and never
	// freed, so they need no refcounting.
	KindMetadata

	// Handle kinds: reference-counted heap.Cell, shared ownership.
	KindString
	KindArray
	KindSlice
	KindMap
	KindStruct
	KindInterface
	KindChannel
	KindPointer
	KindClosure
	KindPackage
	KindUnsafePtr
)

// String implements fmt.Stringer for Kind, matching the pack's
// REG_*-style enum-to-name tables.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindBool:
		return "bool"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindInt:
		return "int"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindUint:
		return "uint"
	case KindUintptr:
		return "uintptr"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindComplex64:
		return "complex64"
	case KindComplex128:
		return "complex128"
	case KindNil:
		return "nil"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindSlice:
		return "slice"
	case KindMap:
		return "map"
	case KindStruct:
		return "struct"
	case KindInterface:
		return "interface"
	case KindChannel:
		return "chan"
	case KindPointer:
		return "pointer"
	case KindClosure:
		return "closure"
	case KindPackage:
		return "package"
	case KindMetadata:
		return "metadata"
	case KindUnsafePtr:
		return "unsafe.Pointer"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// IsHandle reports whether values of this Kind carry a heap.Cell rather
// than an inline payload.
func (k Kind) IsHandle() bool {
	return k >= KindString
}

// IsScalar reports whether values of this Kind are copy-semantic with an
// inline payload (includes KindNil, which carries no payload at all).
func (k Kind) IsScalar() bool {
	return !k.IsHandle() && k != KindInvalid
}

// IsInteger reports whether k is one of the signed or unsigned integer
// widths (including the platform-sized int/uint/uintptr).
func (k Kind) IsInteger() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64, KindInt,
		KindUint8, KindUint16, KindUint32, KindUint64, KindUint, KindUintptr:
		return true
	default:
		return false
	}
}

// IsFloat reports whether k is one of the floating-point widths.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// IsComplex reports whether k is one of the complex widths.
func (k Kind) IsComplex() bool {
	return k == KindComplex64 || k == KindComplex128
}
