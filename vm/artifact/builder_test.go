package artifact_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/artifact"
	"github.com/prateekvishnu/goscript/vm/sched"
)

func TestBuilder_EntryFunctionReturnsConstant(t *testing.T) {
	b := artifact.NewBuilder()
	b.AddFunction(&vm.FunctionRecord{
		Name:        "main.main",
		ResultCount: 1,
		Code: []vm.Instruction{
			{Op: vm.OpPushConst, Imm: 0},
			{Op: vm.OpReturn, Imm: 1},
		},
		Consts:      []vm.Value{vm.Int64(42)},
		ZeroResults: []vm.Value{vm.Int64(0)},
	})
	require.NoError(t, b.SetEntry("main.main"))

	results, err := sched.Run(b.Build(), nil, false)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, int64(42), results[0].AsInt64())
}

func TestBuilder_SetEntryUnknownNameErrors(t *testing.T) {
	b := artifact.NewBuilder()
	require.Error(t, b.SetEntry("nope"))
}

func TestBuilder_DeclareThenDefineResolvesForwardReference(t *testing.T) {
	b := artifact.NewBuilder()

	// calleeKey is known before callee's own body is written, the way a
	// compiler resolves a forward call.
	calleeKey := b.Declare("main.callee")
	b.AddFunction(&vm.FunctionRecord{
		Name:        "main.main",
		ResultCount: 1,
		Code: []vm.Instruction{
			{Op: vm.OpPushConst, Imm: 0},
			{Op: vm.OpCall, Imm: 0},
			{Op: vm.OpReturn, Imm: 1},
		},
		Consts:      []vm.Value{vm.NewNativeClosureValue(calleeKey, nil, nil)},
		ZeroResults: []vm.Value{vm.Int64(0)},
	})
	b.Define(calleeKey, &vm.FunctionRecord{
		ResultCount: 1,
		Code: []vm.Instruction{
			{Op: vm.OpPushConst, Imm: 0},
			{Op: vm.OpReturn, Imm: 1},
		},
		Consts:      []vm.Value{vm.Int64(7)},
		ZeroResults: []vm.Value{vm.Int64(0)},
	})
	require.NoError(t, b.SetEntry("main.main"))

	results, err := sched.Run(b.Build(), nil, false)
	require.NoError(t, err)
	require.Equal(t, int64(7), results[0].AsInt64())

	key, ok := b.Lookup("main.callee")
	require.True(t, ok)
	require.Equal(t, calleeKey, key)
}
