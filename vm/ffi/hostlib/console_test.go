package hostlib_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/ffi/hostlib"
)

func TestConsole_LevelsDispatchWithoutError(t *testing.T) {
	obj, methods, err := hostlib.NewConsole([]vm.Value{vm.NewStringValue("debug")})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"Debug", "Info", "Warn", "Error"}, methods.Names)

	for _, m := range methods.Names {
		results, err := obj.Call(m, []vm.Value{vm.NewStringValue("hello")})
		require.NoError(t, err)
		require.Nil(t, results)
	}
}

func TestConsole_UnrecognizedLevelFallsBackToInfo(t *testing.T) {
	_, _, err := hostlib.NewConsole([]vm.Value{vm.NewStringValue("bogus")})
	require.NoError(t, err)
}

func TestConsole_UnknownMethodErrors(t *testing.T) {
	obj, _, err := hostlib.NewConsole([]vm.Value{vm.NewStringValue("info")})
	require.NoError(t, err)
	_, err = obj.Call("Trace", []vm.Value{vm.NewStringValue("x")})
	require.Error(t, err)
}
