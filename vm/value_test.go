package vm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/heap"
	"github.com/prateekvishnu/goscript/vm/meta"
)

func TestValue_ScalarRoundTrip(t *testing.T) {
	require.True(t, vm.Bool(true).AsBool())
	require.False(t, vm.Bool(false).AsBool())
	require.Equal(t, int64(-7), vm.Int64(-7).AsInt64())
	require.Equal(t, uint64(42), vm.Uint64(42).AsUint64())
	require.InDelta(t, 3.25, vm.Float64(3.25).AsFloat64(), 0)
	require.InDelta(t, float32(1.5), vm.Float32(1.5).AsFloat32(), 0)
	require.Equal(t, complex128(1+2i), vm.Complex128(1+2i).AsComplex128())
}

func TestValue_KindClassification(t *testing.T) {
	require.True(t, vm.KindInt64.IsScalar())
	require.True(t, vm.KindInt64.IsInteger())
	require.False(t, vm.KindString.IsScalar())
	require.True(t, vm.KindString.IsHandle())
	require.True(t, vm.KindFloat32.IsFloat())
	require.True(t, vm.KindComplex128.IsComplex())
}

func TestString_ContentEquality(t *testing.T) {
	a := vm.NewString("hello")
	b := vm.NewString("hello")
	c := vm.NewString("world")

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.Equal(t, a.Hash(), b.Hash())
}

func TestArray_CloneIsDeep(t *testing.T) {
	heap.ResetStats()
	inner := vm.NewArrayValue(vm.KindInt64, []vm.Value{vm.Int64(1), vm.Int64(2)})
	outer := vm.NewArray(vm.KindArray, []vm.Value{inner})

	clone := outer.Clone()
	clonedInner := clone.At(0).Handle().(*vm.Array)
	originalInner := inner.Handle().(*vm.Array)

	require.NotSame(t, clonedInner, originalInner)
	clonedInner.Set(0, vm.Int64(99))
	require.Equal(t, int64(1), originalInner.At(0).AsInt64())
}

func TestSlice_AppendGrowsCapacityWhenNeeded(t *testing.T) {
	arr := vm.NewArray(vm.KindInt64, []vm.Value{vm.Int64(1), vm.Int64(2)})
	s := vm.NewSlice(vm.KindInt64, arr, 0, 2, 2)

	require.Equal(t, 2, s.Len())
	require.Equal(t, 2, s.Cap())

	grown := s.Append(vm.Int64(3))
	require.Equal(t, 3, grown.Len())
	require.Greater(t, grown.Cap(), 2)
	require.Equal(t, int64(1), grown.At(0).AsInt64())
	require.Equal(t, int64(3), grown.At(2).AsInt64())
}

func TestSlice_AppendInPlaceWhenCapacityPermits(t *testing.T) {
	arr := vm.NewArray(vm.KindInt64, []vm.Value{vm.Int64(1), vm.Int64(2), vm.Int64(0)})
	s := vm.NewSlice(vm.KindInt64, arr, 0, 2, 3)

	grown := s.Append(vm.Int64(9))
	require.Same(t, arr, grown.Array())
	require.Equal(t, int64(9), arr.At(2).AsInt64())
}

func TestSlice_RescliceBoundsChecking(t *testing.T) {
	arr := vm.NewArray(vm.KindInt64, []vm.Value{vm.Int64(1), vm.Int64(2), vm.Int64(3)})
	s := vm.NewSlice(vm.KindInt64, arr, 0, 3, 3)

	_, err := s.Reslice(1, 5, -1)
	require.Error(t, err)

	sub, err := s.Reslice(1, -1, -1)
	require.NoError(t, err)
	require.Equal(t, 2, sub.Len())
}

func TestMap_ZeroValueOnMiss(t *testing.T) {
	m := vm.NewMap(vm.KindString, vm.KindInt64, vm.Int64(0))
	key := vm.NewStringValue("k")

	v, ok := m.Get(key)
	require.False(t, ok)
	require.Equal(t, int64(0), v.AsInt64())

	m.Set(key, vm.Int64(5))
	v, ok = m.Get(key)
	require.True(t, ok)
	require.Equal(t, int64(5), v.AsInt64())
}

func TestMap_StringKeysCompareByContent(t *testing.T) {
	m := vm.NewMap(vm.KindString, vm.KindInt64, vm.Int64(0))
	m.Set(vm.NewStringValue("dup"), vm.Int64(1))
	m.Set(vm.NewStringValue("dup"), vm.Int64(2))

	require.Equal(t, 1, m.Len())
	v, _ := m.Get(vm.NewStringValue("dup"))
	require.Equal(t, int64(2), v.AsInt64())
}

func TestStruct_FieldByPath_EmbeddedPromotion(t *testing.T) {
	reg := meta.NewRegistry()
	innerKey := reg.NewStruct([]meta.FieldInfo{{Name: "Y", Type: meta.KeyInt64}})
	outerKey := reg.NewStruct([]meta.FieldInfo{{Name: "Inner", Type: innerKey, Embedded: true}})

	inner := vm.NewStruct(reg, innerKey, []vm.Value{vm.Int64(10)})
	outer := vm.NewStruct(reg, outerKey, []vm.Value{vm.NewStructValue(reg, innerKey, []vm.Value{vm.Int64(10)})})
	_ = inner

	path := reg.Get(outerKey).Struct.NameMap["Y"]
	require.Equal(t, int64(10), outer.FieldByPath(path).AsInt64())

	outer.SetFieldByPath(path, vm.Int64(20))
	require.Equal(t, int64(20), outer.FieldByPath(path).AsInt64())
}

func TestChannel_RendezvousHandshake(t *testing.T) {
	ch := vm.NewChannel(vm.KindInt64, 0)

	require.Equal(t, vm.ChanFull, ch.TrySend(vm.Int64(1)))

	_, res := ch.TryRecv()
	require.Equal(t, vm.ChanEmpty, res)

	require.Equal(t, vm.ChanOK, ch.TrySend(vm.Int64(7)))

	v, res := ch.TryRecv()
	require.Equal(t, vm.ChanOK, res)
	require.Equal(t, int64(7), v.AsInt64())
}

func TestChannel_BoundedFIFO(t *testing.T) {
	ch := vm.NewChannel(vm.KindInt64, 2)

	require.Equal(t, vm.ChanOK, ch.TrySend(vm.Int64(1)))
	require.Equal(t, vm.ChanOK, ch.TrySend(vm.Int64(2)))
	require.Equal(t, vm.ChanFull, ch.TrySend(vm.Int64(3)))

	v, _ := ch.TryRecv()
	require.Equal(t, int64(1), v.AsInt64())

	ch.Close()
	v, res := ch.TryRecv()
	require.Equal(t, vm.ChanOK, res)
	require.Equal(t, int64(2), v.AsInt64())

	_, res = ch.TryRecv()
	require.Equal(t, vm.ChanClosed, res)
}

func TestUpValue_OpenThenClose(t *testing.T) {
	slot := &fakeSlot{v: vm.Int64(1)}
	u := vm.NewOpenUpValue(slot)

	require.Equal(t, int64(1), u.Load().AsInt64())
	u.Store(vm.Int64(2))
	require.Equal(t, int64(2), slot.v.AsInt64())

	u.Close()
	require.True(t, u.IsClosed())
	require.Equal(t, int64(2), u.Load().AsInt64())

	slot.v = vm.Int64(999) // no longer observed once closed
	require.Equal(t, int64(2), u.Load().AsInt64())
}

type fakeSlot struct{ v vm.Value }

func (s *fakeSlot) Get() vm.Value  { return s.v }
func (s *fakeSlot) Set(v vm.Value) { s.v = v }
