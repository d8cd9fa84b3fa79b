package vm

import (
	"hash/maphash"

	"github.com/prateekvishnu/goscript/vm/heap"
)

var stringSeed = maphash.MakeSeed()

// String is a read-only slice over an immutable byte array. Equality and
// hashing are by content (§3's String data-model entry).
type String struct {
	heap.RefHeader
	b []byte
}

// NewString constructs a new string cell by copying b, so later mutation
// of the caller's slice can never be observed through the Value.
func NewString(s string) *String {
	b := make([]byte, len(s))
	copy(b, s)
	return &String{b: b}
}

func (s *String) Kind() heap.Kind       { return heap.KindString }
func (s *String) Children() []heap.Cell { return nil }
func (s *String) CanMakeCycle() bool    { return false }
func (s *String) BreakCycle()           {}

// Bytes returns the string's content. Callers must not mutate the
// returned slice.
func (s *String) Bytes() []byte { return s.b }

// Go converts the cell back to a native Go string (one copy).
func (s *String) Go() string { return string(s.b) }

// Len reports the byte length.
func (s *String) Len() int { return len(s.b) }

// Equal reports content equality between two string cells.
func (s *String) Equal(o *String) bool {
	if s == o {
		return true
	}
	return string(s.b) == string(o.b)
}

// Hash returns a content hash suitable for use as a map key.
func (s *String) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(stringSeed)
	h.Write(s.b)
	return h.Sum64()
}

// NewStringValue wraps s in a Value of KindString, with a starting
// refcount of zero; callers must Retain before storing it anywhere
// reachable, same discipline as heap.Allocator.Track.
func NewStringValue(s string) Value {
	return fromHandle(KindString, NewString(s))
}
