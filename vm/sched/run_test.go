package sched_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/artifact"
	"github.com/prateekvishnu/goscript/vm/meta"
	"github.com/prateekvishnu/goscript/vm/sched"
)

// TestRun_RendezvousHandshake spawns a fiber that sends 7 over a
// capacity-0 channel while the entry fiber blocks receiving on the same
// channel, exercising SPAWN, the rendezvous four-state handshake, and
// the scheduler's busy-poll-across-fibers Yield loop together.
func TestRun_RendezvousHandshake(t *testing.T) {
	b := artifact.NewBuilder()
	chanKey := b.Meta().NewChannel(meta.ChanBoth, meta.KeyInt64)

	senderKey := b.Declare("main.sender")
	b.Define(senderKey, &vm.FunctionRecord{
		ParamCount: 1,
		Code: []vm.Instruction{
			{Op: vm.OpLoadLocal, Imm: 0},
			{Op: vm.OpPushImm, Imm: 7},
			{Op: vm.OpSend},
			{Op: vm.OpReturn, Imm: 0},
		},
	})

	b.AddFunction(&vm.FunctionRecord{
		Name:        "main.main",
		ResultCount: 1,
		LocalCount:  1,
		Code: []vm.Instruction{
			{Op: vm.OpPushImm, Imm: 0},
			{Op: vm.OpMake, T0: vm.KindChannel, Imm: int32(chanKey)},
			{Op: vm.OpStoreLocal, Imm: 1},
			{Op: vm.OpPushConst, Imm: 0},
			{Op: vm.OpLoadLocal, Imm: 1},
			{Op: vm.OpSpawn, Imm: 1},
			{Op: vm.OpLoadLocal, Imm: 1},
			{Op: vm.OpRecv, T0: vm.KindInt64},
			{Op: vm.OpReturn, Imm: 1},
		},
		Consts:      []vm.Value{vm.NewNativeClosureValue(senderKey, nil, nil)},
		ZeroResults: []vm.Value{vm.Int64(0)},
		ZeroLocals:  []vm.Value{vm.Nil},
	})
	require.NoError(t, b.SetEntry("main.main"))

	results, err := sched.Run(b.Build(), nil, false)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, int64(7), results[0].AsInt64())
}

// TestRun_SelectWithDefaultDoesNotBlock exercises SELECT against a
// channel nobody is sending on, verifying the default case fires
// instead of the fiber parking forever.
func TestRun_SelectWithDefaultDoesNotBlock(t *testing.T) {
	b := artifact.NewBuilder()
	chanKey := b.Meta().NewChannel(meta.ChanBoth, meta.KeyInt64)

	b.AddFunction(&vm.FunctionRecord{
		Name:        "main.main",
		ResultCount: 1,
		LocalCount:  1,
		Code: []vm.Instruction{
			{Op: vm.OpPushImm, Imm: 0},
			{Op: vm.OpMake, T0: vm.KindChannel, Imm: int32(chanKey)},
			{Op: vm.OpStoreLocal, Imm: 1},
			{Op: vm.OpLoadLocal, Imm: 1},
			{Op: vm.OpSelect, Imm: 0},
			{Op: vm.OpReturn, Imm: 1},
		},
		Selects: []vm.SelectDesc{
			{Cases: []vm.SelectCase{{Dir: vm.SelectRecv}}, HasDefault: true},
		},
		ZeroResults: []vm.Value{vm.Int64(0)},
		ZeroLocals:  []vm.Value{vm.Nil},
	})
	require.NoError(t, b.SetEntry("main.main"))

	results, err := sched.Run(b.Build(), nil, false)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, int64(-1), results[0].AsInt64())
}

func TestRun_PlainEntryNoSpawn(t *testing.T) {
	b := artifact.NewBuilder()
	b.AddFunction(&vm.FunctionRecord{
		Name:        "main.main",
		ResultCount: 1,
		Code: []vm.Instruction{
			{Op: vm.OpPushConst, Imm: 0},
			{Op: vm.OpReturn, Imm: 1},
		},
		Consts:      []vm.Value{vm.Int64(1)},
		ZeroResults: []vm.Value{vm.Int64(0)},
	})
	require.NoError(t, b.SetEntry("main.main"))

	results, err := sched.Run(b.Build(), nil, false)
	require.NoError(t, err)
	require.Equal(t, int64(1), results[0].AsInt64())
}
