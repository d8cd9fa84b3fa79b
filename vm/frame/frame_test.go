package frame_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/frame"
	"github.com/prateekvishnu/goscript/vm/heap"
)

func TestStack_PushPopBasic(t *testing.T) {
	s := frame.NewStack()
	s.Push(vm.Int64(1))
	s.Push(vm.Int64(2))

	require.Equal(t, int64(2), s.Pop().AsInt64())
	require.Equal(t, int64(1), s.Pop().AsInt64())
}

func TestStack_BinOp_IntegerArithmetic(t *testing.T) {
	s := frame.NewStack()
	s.Push(vm.Int64(10))
	s.Push(vm.Int64(3))
	require.NoError(t, s.BinOp(vm.OpAdd))
	require.Equal(t, int64(13), s.Pop().AsInt64())

	s.Push(vm.Int64(10))
	s.Push(vm.Int64(3))
	require.NoError(t, s.BinOp(vm.OpRem))
	require.Equal(t, int64(1), s.Pop().AsInt64())
}

func TestStack_BinOp_DivisionByZero(t *testing.T) {
	s := frame.NewStack()
	s.Push(vm.Int64(1))
	s.Push(vm.Int64(0))
	require.Error(t, s.BinOp(vm.OpQuo))
}

func TestStack_BinOp_StringConcatAndCompare(t *testing.T) {
	s := frame.NewStack()
	s.Push(vm.NewStringValue("foo"))
	s.Push(vm.NewStringValue("bar"))
	require.NoError(t, s.BinOp(vm.OpAdd))
	result := s.Pop()
	require.Equal(t, "foobar", result.Handle().(*vm.String).Go())

	s.Push(vm.NewStringValue("bar"))
	s.Push(vm.NewStringValue("foo"))
	require.NoError(t, s.BinOp(vm.OpLss))
	require.True(t, s.Pop().AsBool())
}

func TestStack_UnaryOp(t *testing.T) {
	s := frame.NewStack()
	s.Push(vm.Bool(true))
	require.NoError(t, s.UnaryOp(vm.OpNot))
	require.False(t, s.Pop().AsBool())

	s.Push(vm.Int64(5))
	require.NoError(t, s.UnaryOp(vm.OpUnarySub))
	require.Equal(t, int64(-5), s.Pop().AsInt64())
}

func TestFrame_UpValueCaptureAndClose(t *testing.T) {
	stack := frame.NewStack()
	stack.Grow(1)
	stack.Set(0, vm.Int64(42))

	f := frame.NewFrame(stack, 0, nil)
	uv := vm.NewOpenUpValue(f.Slot(0))
	heap.Retain(uv)
	f.TrackUpValue(0, vm.KindInt64, uv)

	require.False(t, uv.IsClosed())
	f.CloseUpValues()
	require.True(t, uv.IsClosed())
	require.Equal(t, int64(42), uv.Load().AsInt64())
}

func TestFrame_CloseUpValues_SkipsAlreadyReleased(t *testing.T) {
	stack := frame.NewStack()
	stack.Grow(1)
	stack.Set(0, vm.Int64(1))

	f := frame.NewFrame(stack, 0, nil)
	uv := vm.NewOpenUpValue(f.Slot(0))
	f.TrackUpValue(0, vm.KindInt64, uv)

	// Never retained: simulates the capturing closure itself having
	// already been released before this frame returns.
	f.CloseUpValues()
	require.False(t, uv.IsClosed())
}
