package vm

import "github.com/prateekvishnu/goscript/vm/heap"

// PointerKind tags Pointer's four-way sum (§3's Pointer entry).
type PointerKind uint8

const (
	PtrToUpValue PointerKind = iota
	PtrToSliceElem
	PtrToStructField
	PtrToPackageMember
)

// Pointer is a reference to one of four addressable locations. A
// pointer to an up-value is the only variant with its own ownership
// story: a closed up-value owns its cell, while an open one merely
// references a live stack slot owned by some frame.
type Pointer struct {
	heap.RefHeader
	kind PointerKind

	upvalue *UpValue

	slice    *Slice
	sliceIdx int

	strct     *Struct
	fieldPath []int

	pkg       *Package
	memberIdx int
}

func NewPointerToUpValue(u *UpValue) *Pointer {
	heap.Retain(u)
	return &Pointer{kind: PtrToUpValue, upvalue: u}
}

func NewPointerToSliceElem(s *Slice, idx int) *Pointer {
	heap.Retain(s)
	return &Pointer{kind: PtrToSliceElem, slice: s, sliceIdx: idx}
}

func NewPointerToStructField(s *Struct, fieldPath []int) *Pointer {
	heap.Retain(s)
	return &Pointer{kind: PtrToStructField, strct: s, fieldPath: fieldPath}
}

func NewPointerToPackageMember(p *Package, idx int) *Pointer {
	heap.Retain(p)
	return &Pointer{kind: PtrToPackageMember, pkg: p, memberIdx: idx}
}

func (p *Pointer) Kind() heap.Kind { return heap.KindPointer }

func (p *Pointer) Children() []heap.Cell {
	switch p.kind {
	case PtrToUpValue:
		return []heap.Cell{p.upvalue}
	case PtrToSliceElem:
		return []heap.Cell{p.slice}
	case PtrToStructField:
		return []heap.Cell{p.strct}
	case PtrToPackageMember:
		return []heap.Cell{p.pkg}
	default:
		return nil
	}
}

func (p *Pointer) CanMakeCycle() bool { return false }
func (p *Pointer) BreakCycle()        {}

// PointerKind reports which of the four shapes this pointer has.
func (p *Pointer) PointerKind() PointerKind { return p.kind }

// Load dereferences the pointer (DEREF).
func (p *Pointer) Load() Value {
	switch p.kind {
	case PtrToUpValue:
		return p.upvalue.Load()
	case PtrToSliceElem:
		return p.slice.At(p.sliceIdx)
	case PtrToStructField:
		return p.strct.FieldByPath(p.fieldPath)
	case PtrToPackageMember:
		return p.pkg.Member(p.memberIdx)
	default:
		panic("vm: invalid pointer kind")
	}
}

// Store writes through the pointer (STORE_DEREF).
func (p *Pointer) Store(v Value) {
	switch p.kind {
	case PtrToUpValue:
		p.upvalue.Store(v)
	case PtrToSliceElem:
		p.slice.Set(p.sliceIdx, v)
	case PtrToStructField:
		p.strct.SetFieldByPath(p.fieldPath, v)
	case PtrToPackageMember:
		p.pkg.SetMember(p.memberIdx, v)
	default:
		panic("vm: invalid pointer kind")
	}
}

// NewPointerValue helpers wrap each constructor in a Value.

func NewPointerToUpValueValue(u *UpValue) Value {
	return fromHandle(KindPointer, NewPointerToUpValue(u))
}

func NewPointerToSliceElemValue(s *Slice, idx int) Value {
	return fromHandle(KindPointer, NewPointerToSliceElem(s, idx))
}

func NewPointerToStructFieldValue(s *Struct, fieldPath []int) Value {
	return fromHandle(KindPointer, NewPointerToStructField(s, fieldPath))
}

func NewPointerToPackageMemberValue(p *Package, idx int) Value {
	return fromHandle(KindPointer, NewPointerToPackageMember(p, idx))
}
