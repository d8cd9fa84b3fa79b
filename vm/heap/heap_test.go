package heap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prateekvishnu/goscript/vm/heap"
)

// fakeCell is a minimal Cell for exercising the collector without
// depending on vm's concrete value types.
type fakeCell struct {
	heap.RefHeader
	kind     heap.Kind
	children []heap.Cell
	cyclic   bool
	broken   bool
}

func (f *fakeCell) Kind() heap.Kind       { return f.kind }
func (f *fakeCell) Children() []heap.Cell { return f.children }
func (f *fakeCell) CanMakeCycle() bool    { return f.cyclic }
func (f *fakeCell) BreakCycle()           { f.broken = true }

func TestRelease_FreesAtZero(t *testing.T) {
	heap.ResetStats()
	c := &fakeCell{kind: heap.KindString}
	heap.Retain(c)
	heap.Release(c)

	require.EqualValues(t, 0, c.Count())
}

func TestRelease_FreesChildrenTransitively(t *testing.T) {
	heap.ResetStats()
	child := &fakeCell{kind: heap.KindString}
	parent := &fakeCell{kind: heap.KindSlice, children: []heap.Cell{child}}

	heap.Retain(parent)
	heap.Retain(child) // the slice's backing array holds its own strong ref

	heap.Release(parent)

	require.EqualValues(t, 0, parent.Count())
	require.EqualValues(t, 0, child.Count())
}

func TestCollect_FreesSelfCycle(t *testing.T) {
	heap.ResetStats()

	a := &fakeCell{kind: heap.KindStruct, cyclic: true}
	b := &fakeCell{kind: heap.KindStruct, cyclic: true}
	a.children = []heap.Cell{b}
	b.children = []heap.Cell{a}

	heap.Retain(a) // external owner
	heap.Retain(b) // a -> b
	heap.Retain(a) // b -> a (completes the cycle)
	heap.Release(a) // drop the external owner; a and b now only reference each other

	h := heap.NewHeap()
	heap.Collect(h)

	snap := heap.Snapshot()
	require.GreaterOrEqual(t, snap.CyclesFreed, int64(1))
	require.True(t, a.broken)
	require.True(t, b.broken)
}

func TestCollect_DoesNotFreeExternallyRooted(t *testing.T) {
	heap.ResetStats()

	a := &fakeCell{kind: heap.KindStruct, cyclic: true}
	b := &fakeCell{kind: heap.KindStruct, cyclic: true}
	a.children = []heap.Cell{b}
	b.children = []heap.Cell{a}

	heap.Retain(a) // external owner, kept alive for the whole test
	heap.Retain(b) // a -> b
	heap.Retain(a) // b -> a
	heap.Retain(b) // temporary external owner of b, dropped below
	heap.Release(b) // b drops to 1 (still referenced by a), buffered as a candidate

	h := heap.NewHeap()
	heap.Collect(h)

	require.False(t, b.broken, "b is still reachable via the externally-rooted a and must survive")
}
