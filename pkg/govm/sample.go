package govm

import (
	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/artifact"
	"github.com/prateekvishnu/goscript/vm/ffi"
	"github.com/prateekvishnu/goscript/vm/ffi/hostlib"
	"github.com/prateekvishnu/goscript/vm/meta"
)

// SampleArtifact builds a small fixture program for cmd/govm's run,
// disasm, and inspect subcommands (and cmd/govmtop) to operate on,
// since none of them accepts an artifact: there is no compiler frontend in this
// system, so something has to hand the CLI a non-empty program to
// demonstrate against. The program spawns a worker fiber that
// rendezvous-sends a greeting over a channel, upper-cases it through
// the hostlib Caser FFI object, logs it through the Console FFI
// object, and returns the logged string's length. SampleFFIRegistry
// returns the host-object registry this program's FFI calls expect.
func SampleArtifact() *vm.Artifact {
	b := artifact.NewBuilder()
	chanKey := b.Meta().NewChannel(meta.ChanBoth, meta.KeyString)

	workerKey := b.Declare("main.worker")
	b.Define(workerKey, &vm.FunctionRecord{
		Name:       "main.worker",
		ParamCount: 1,
		Code: []vm.Instruction{
			{Op: vm.OpLoadLocal, Imm: 0},
			{Op: vm.OpPushConst, Imm: 0},
			{Op: vm.OpSend},
			{Op: vm.OpReturn, Imm: 0},
		},
		Consts: []vm.Value{vm.NewStringValue("hello from a spawned fiber")},
	})

	b.AddFunction(&vm.FunctionRecord{
		Name:        "main.main",
		ResultCount: 1,
		LocalCount:  3,
		Code: []vm.Instruction{
			{Op: vm.OpPushImm, Imm: 0},
			{Op: vm.OpMake, T0: vm.KindChannel, Imm: int32(chanKey)},
			{Op: vm.OpStoreLocal, Imm: 1}, // local1 = channel

			{Op: vm.OpPushConst, Imm: 0}, // worker closure
			{Op: vm.OpLoadLocal, Imm: 1},
			{Op: vm.OpSpawn, Imm: 1},

			{Op: vm.OpLoadLocal, Imm: 1},
			{Op: vm.OpRecv, T0: vm.KindString}, // greeting
			{Op: vm.OpStoreLocal, Imm: 2},      // local2 = greeting

			// closure must sit below its argument on the stack, so the
			// greeting local is reloaded after the closure is built.
			{Op: vm.OpPushConst, Imm: 1}, // "caser"
			{Op: vm.OpPushConst, Imm: 2}, // "en"
			{Op: vm.OpFFI, Imm: 1},
			{Op: vm.OpBindInterfaceMethod, Imm: 0}, // Upper
			{Op: vm.OpLoadLocal, Imm: 2},           // greeting
			{Op: vm.OpCall, Imm: 1},
			{Op: vm.OpStoreLocal, Imm: 3}, // local3 = upper-cased greeting

			{Op: vm.OpPushConst, Imm: 3}, // "console"
			{Op: vm.OpPushConst, Imm: 4}, // "info"
			{Op: vm.OpFFI, Imm: 1},
			{Op: vm.OpBindInterfaceMethod, Imm: 1}, // Info
			{Op: vm.OpLoadLocal, Imm: 3},           // upper-cased greeting
			{Op: vm.OpCall, Imm: 1},

			{Op: vm.OpLoadLocal, Imm: 3},
			{Op: vm.OpLen},
			{Op: vm.OpReturn, Imm: 1},
		},
		Consts: []vm.Value{
			vm.NewNativeClosureValue(workerKey, nil, nil),
			vm.NewStringValue("caser"),
			vm.NewStringValue("en"),
			vm.NewStringValue("console"),
			vm.NewStringValue("info"),
		},
		ZeroResults: []vm.Value{vm.Int64(0)},
		ZeroLocals:  []vm.Value{vm.Nil, vm.Nil, vm.Nil},
	})
	_ = b.SetEntry("main.main")
	return b.Build()
}

// SampleFFIRegistry returns the host-object registry SampleArtifact's
// FFI calls expect to find registered.
func SampleFFIRegistry() *ffi.Registry {
	r := ffi.NewRegistry()
	hostlib.Register(r)
	return r
}
