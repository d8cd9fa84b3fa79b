package ffi_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/ffi"
)

func echoCtor(args []vm.Value) (vm.ForeignObject, vm.ForeignMethodSet, error) {
	return echoObj{}, vm.ForeignMethodSet{Names: []string{"Echo"}}, nil
}

type echoObj struct{}

func (echoObj) Call(method string, args []vm.Value) ([]vm.Value, error) { return args, nil }
func (echoObj) CanMakeCycle() bool                                      { return false }
func (echoObj) BreakCycle()                                             {}

func TestRegistry_FactoryDispatchesByName(t *testing.T) {
	r := ffi.NewRegistry()
	r.Register("echo", echoCtor)

	factory := r.Factory()
	obj, methods, err := factory("echo", nil)
	require.NoError(t, err)
	require.Equal(t, []string{"Echo"}, methods.Names)
	results, err := obj.Call("Echo", []vm.Value{vm.Int64(3)})
	require.NoError(t, err)
	require.Equal(t, int64(3), results[0].AsInt64())
}

func TestRegistry_FactoryUnknownNameErrors(t *testing.T) {
	r := ffi.NewRegistry()
	_, _, err := r.Factory()("nope", nil)
	require.Error(t, err)
}

func TestRegistry_DuplicateRegisterPanics(t *testing.T) {
	r := ffi.NewRegistry()
	r.Register("echo", echoCtor)
	require.Panics(t, func() { r.Register("echo", echoCtor) })
}
