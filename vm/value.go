package vm

import (
	"math"

	"github.com/prateekvishnu/goscript/vm/heap"
)

// Value is the universal datum threaded through the stack, locals,
// up-values, struct fields, and map entries. Scalar kinds pack their
// payload into num (and imag for the complex widths); handle kinds
// carry a reference-counted heap.Cell. Value is deliberately a plain
// struct, copied by value — the tagged-sum-over-v-table tradeoff the
// hot dispatch loop needs (see the REDESIGN note on single-dispatch vs.
// tagged variants) favors a flat switch over Kind.
type Value struct {
	kind   Kind
	num    uint64 // bool/int*/uint*/uintptr/float* payload, bit-for-bit
	imag   float64
	handle heap.Cell
}

// Kind reports v's runtime type tag.
func (v Value) Kind() Kind { return v.kind }

// Handle returns v's heap cell. Panics if v is not a handle kind; callers
// that already branched on Kind().IsHandle() never hit this.
func (v Value) Handle() heap.Cell {
	if !v.kind.IsHandle() {
		panic("vm: Handle called on scalar Value of kind " + v.kind.String())
	}
	return v.handle
}

// Nil is the zero value of the nil type (distinct from a nil interface
// or a nil pointer, per the data model's three-variant nil discussion).
var Nil = Value{kind: KindNil}

// Bool constructs a bool Value.
func Bool(b bool) Value {
	var n uint64
	if b {
		n = 1
	}
	return Value{kind: KindBool, num: n}
}

// AsBool returns v's boolean payload. v must have Kind() == KindBool.
func (v Value) AsBool() bool { return v.num != 0 }

// Int64 constructs an int64-kinded Value.
func Int64(i int64) Value { return Value{kind: KindInt64, num: uint64(i)} }

// Int constructs a platform-int-kinded Value.
func Int(i int) Value { return Value{kind: KindInt, num: uint64(int64(i))} }

// Int32 constructs an int32-kinded Value.
func Int32(i int32) Value { return Value{kind: KindInt32, num: uint64(int64(i))} }

// Int16 constructs an int16-kinded Value.
func Int16(i int16) Value { return Value{kind: KindInt16, num: uint64(int64(i))} }

// Int8 constructs an int8-kinded Value.
func Int8(i int8) Value { return Value{kind: KindInt8, num: uint64(int64(i))} }

// Uint64 constructs a uint64-kinded Value.
func Uint64(u uint64) Value { return Value{kind: KindUint64, num: u} }

// Uint constructs a platform-uint-kinded Value.
func Uint(u uint) Value { return Value{kind: KindUint, num: uint64(u)} }

// Uint32 constructs a uint32-kinded Value.
func Uint32(u uint32) Value { return Value{kind: KindUint32, num: uint64(u)} }

// Uint16 constructs a uint16-kinded Value.
func Uint16(u uint16) Value { return Value{kind: KindUint16, num: uint64(u)} }

// Uint8 constructs a uint8-kinded Value.
func Uint8(u uint8) Value { return Value{kind: KindUint8, num: uint64(u)} }

// Uintptr constructs a uintptr-kinded Value.
func Uintptr(u uintptr) Value { return Value{kind: KindUintptr, num: uint64(u)} }

// Float64 constructs a float64-kinded Value.
func Float64(f float64) Value { return Value{kind: KindFloat64, num: math.Float64bits(f)} }

// Float32 constructs a float32-kinded Value.
func Float32(f float32) Value { return Value{kind: KindFloat32, num: uint64(math.Float32bits(f))} }

// Complex128 constructs a complex128-kinded Value.
func Complex128(c complex128) Value {
	return Value{kind: KindComplex128, num: math.Float64bits(real(c)), imag: imag(c)}
}

// Complex64 constructs a complex64-kinded Value.
func Complex64(c complex64) Value {
	r, i := real(c), imag(c)
	return Value{kind: KindComplex64, num: uint64(math.Float32bits(r)), imag: float64(i)}
}

// AsInt64 widens any signed-or-unsigned integer payload to int64. Callers
// dispatch on Kind() first when width-specific truncation matters (e.g.
// CAST's narrowing rules); this accessor is for the common case of
// reading an integer scalar back out regardless of declared width.
func (v Value) AsInt64() int64 { return int64(v.num) }

// AsUint64 reads v's payload as an unsigned 64-bit pattern.
func (v Value) AsUint64() uint64 { return v.num }

// AsFloat64 reads v's payload as a float64, widening from float32 when
// that is v's declared Kind.
func (v Value) AsFloat64() float64 {
	if v.kind == KindFloat32 {
		return float64(math.Float32frombits(uint32(v.num)))
	}
	return math.Float64frombits(v.num)
}

// AsFloat32 reads v's payload as a float32.
func (v Value) AsFloat32() float32 {
	if v.kind == KindFloat32 {
		return math.Float32frombits(uint32(v.num))
	}
	return float32(math.Float64frombits(v.num))
}

// MetaKey constructs a metadata-handle Value wrapping a registry key.
func MetaKey(key uint32) Value {
	return Value{kind: KindMetadata, num: uint64(key)}
}

// AsMetaKey reads v's metadata registry key. v must have Kind() == KindMetadata.
func (v Value) AsMetaKey() uint32 { return uint32(v.num) }

// AsComplex128 reads v's payload as a complex128.
func (v Value) AsComplex128() complex128 {
	if v.kind == KindComplex64 {
		return complex(float64(math.Float32frombits(uint32(v.num))), v.imag)
	}
	return complex(math.Float64frombits(v.num), v.imag)
}

// fromHandle wraps a heap.Cell into a Value of the given handle Kind.
// Unexported: concrete constructors (NewString, NewArray, ...) own the
// Kind<->cell-type pairing so callers can't construct a mismatched Value.
func fromHandle(k Kind, c heap.Cell) Value {
	return Value{kind: k, handle: c}
}

// Retain increments v's reference count when it is a handle kind, a
// no-op otherwise. Exported for layers above vm (vm/exec's STORE_*
// opcodes, closure-literal construction) that mutate a slot holding a
// Value and must balance the old and new occupants themselves, the same
// way Struct.SetField and Array.Set do internally.
func Retain(v Value) { retainValue(v) }

// Release decrements v's reference count when it is a handle kind, a
// no-op otherwise. See Retain.
func Release(v Value) { releaseValue(v) }

// retainValue and releaseValue are the Value-level wrappers around
// heap.Retain/Release: no-ops for scalar kinds, so call sites don't need
// to branch on IsHandle() themselves.
func retainValue(v Value) {
	if v.kind.IsHandle() {
		heap.Retain(v.handle)
	}
}

func releaseValue(v Value) {
	if v.kind.IsHandle() {
		heap.Release(v.handle)
	}
}
