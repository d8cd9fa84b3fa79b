package vm

import (
	"strconv"

	"github.com/prateekvishnu/goscript/vm/heap"
)

// Map is an unordered value->value mapping with a stored zero value
// returned on a missed lookup (§3's Map entry). Map equality between two
// Map values is unspecified and never holds, so Map itself is eligible
// as a key only by identity (see valueKey).
type Map struct {
	heap.RefHeader
	keyKind  Kind
	elemKind Kind
	zero     Value
	entries  map[any]mapEntry
}

type mapEntry struct {
	key Value
	val Value
}

// NewMap constructs an empty map with the given key/elem kinds and zero
// value (used as the declared element type's zero, per the struct
// invariant a map's stored zero value has the declared element type).
func NewMap(keyKind, elemKind Kind, zero Value) *Map {
	retainValue(zero)
	return &Map{keyKind: keyKind, elemKind: elemKind, zero: zero, entries: make(map[any]mapEntry)}
}

func (m *Map) Kind() heap.Kind { return heap.KindMap }

func (m *Map) Children() []heap.Cell {
	var out []heap.Cell
	if m.zero.kind.IsHandle() {
		out = append(out, m.zero.handle)
	}
	for _, e := range m.entries {
		if e.key.kind.IsHandle() {
			out = append(out, e.key.handle)
		}
		if e.val.kind.IsHandle() {
			out = append(out, e.val.handle)
		}
	}
	return out
}

func (m *Map) CanMakeCycle() bool { return false }
func (m *Map) BreakCycle()        {}

// Len reports the number of live entries.
func (m *Map) Len() int { return len(m.entries) }

// Get returns the value stored for key, or the map's zero value and
// false if key is absent — LOAD_INDEX's comma-ok contract for maps.
func (m *Map) Get(key Value) (Value, bool) {
	e, ok := m.entries[valueKey(key)]
	if !ok {
		return m.zero, false
	}
	return e.val, true
}

// Set stores val under key, retaining both and releasing whatever was
// previously stored under the same key (if anything).
func (m *Map) Set(key, val Value) {
	k := valueKey(key)
	if old, ok := m.entries[k]; ok {
		releaseValue(old.key)
		releaseValue(old.val)
	}
	retainValue(key)
	retainValue(val)
	m.entries[k] = mapEntry{key: key, val: val}
}

// Delete removes key, releasing the stored key/value pair. A no-op if
// key is absent.
func (m *Map) Delete(key Value) {
	k := valueKey(key)
	if old, ok := m.entries[k]; ok {
		releaseValue(old.key)
		releaseValue(old.val)
		delete(m.entries, k)
	}
}

// Keys returns the map's keys in unspecified order, for range iteration.
func (m *Map) Keys() []Value {
	out := make([]Value, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.key)
	}
	return out
}

// valueKey computes a Go-comparable surrogate for v suitable as a native
// map key: scalars compare by bit pattern, strings by content (matching
// the data model's by-content string equality), and every other handle
// kind by cell identity (two distinct handles of the same kind are never
// equal, matching e.g. Map's own "equality is unspecified" rule).
func valueKey(v Value) any {
	switch v.kind {
	case KindString:
		return v.handle.(*String).Go()
	case KindMetadata:
		return v.kind.String() + ":" + strconv.Itoa(int(v.num))
	default:
		if v.kind.IsHandle() {
			return v.handle
		}
		return struct {
			k Kind
			n uint64
			i float64
		}{v.kind, v.num, v.imag}
	}
}

// NewMapValue wraps a freshly constructed Map in a Value.
func NewMapValue(keyKind, elemKind Kind, zero Value) Value {
	return fromHandle(KindMap, NewMap(keyKind, elemKind, zero))
}
