package vm

import (
	"github.com/prateekvishnu/goscript/vm/heap"
	"github.com/prateekvishnu/goscript/vm/meta"
)

// Struct is an ordered vector of field values with its shape described
// by a separate metadata key (§3's Struct entry). Equality is
// field-wise; embedded-field lookup goes through the metadata's
// NameMap, not through Struct itself.
type Struct struct {
	heap.RefHeader
	typeKey meta.Key
	fields  []Value
}

// NewStruct constructs a Struct from typeKey's declared shape and an
// already-ordered field vector. Panics if the field count doesn't match
// the metadata (the "a struct's field vector length equals its metadata
// field count" invariant).
func NewStruct(reg *meta.Registry, typeKey meta.Key, fields []Value) *Struct {
	d := reg.Get(typeKey)
	if len(fields) != len(d.Struct.Fields) {
		panic("vm: struct field count mismatch against metadata")
	}
	for _, f := range fields {
		retainValue(f)
	}
	return &Struct{typeKey: typeKey, fields: fields}
}

func (s *Struct) Kind() heap.Kind { return heap.KindStruct }

func (s *Struct) Children() []heap.Cell {
	var out []heap.Cell
	for _, f := range s.fields {
		if f.kind.IsHandle() {
			out = append(out, f.handle)
		}
	}
	return out
}

func (s *Struct) CanMakeCycle() bool { return false }
func (s *Struct) BreakCycle()        {}

// TypeKey reports the struct's metadata key.
func (s *Struct) TypeKey() meta.Key { return s.typeKey }

// Len reports the struct's field count.
func (s *Struct) Len() int { return len(s.fields) }

// Field returns the field at a direct index.
func (s *Struct) Field(i int) Value { return s.fields[i] }

// SetField stores v at a direct index, adjusting reference counts.
func (s *Struct) SetField(i int, v Value) {
	retainValue(v)
	releaseValue(s.fields[i])
	s.fields[i] = v
}

// FieldByPath walks an index path (as resolved by the metadata's
// NameMap, including through embedded fields) to reach a nested field.
func (s *Struct) FieldByPath(path []int) Value {
	cur := s.fields[path[0]]
	for _, idx := range path[1:] {
		cur = cur.handle.(*Struct).fields[idx]
	}
	return cur
}

// SetFieldByPath walks an index path to store v in a nested field.
func (s *Struct) SetFieldByPath(path []int, v Value) {
	if len(path) == 1 {
		s.SetField(path[0], v)
		return
	}
	inner := s.fields[path[0]].handle.(*Struct)
	inner.SetFieldByPath(path[1:], v)
}

// Clone deep-copies the struct's field vector, recursively cloning any
// field that is itself an Array or Struct (Go's other value-semantic
// handle kinds) and retaining shared handles for everything else.
func (s *Struct) Clone() *Struct {
	out := make([]Value, len(s.fields))
	for i, f := range s.fields {
		switch f.kind {
		case KindArray:
			out[i] = fromHandle(KindArray, f.handle.(*Array).Clone())
		case KindStruct:
			out[i] = fromHandle(KindStruct, f.handle.(*Struct).Clone())
		default:
			out[i] = f
		}
		retainValue(out[i])
	}
	return &Struct{typeKey: s.typeKey, fields: out}
}

// NewStructValue wraps a freshly constructed Struct in a Value.
func NewStructValue(reg *meta.Registry, typeKey meta.Key, fields []Value) Value {
	return fromHandle(KindStruct, NewStruct(reg, typeKey, fields))
}
