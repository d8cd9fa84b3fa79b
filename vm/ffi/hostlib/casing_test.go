package hostlib_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/ffi/hostlib"
)

func TestCaser_UpperLowerTitle(t *testing.T) {
	obj, methods, err := hostlib.NewCaser([]vm.Value{vm.NewStringValue("en")})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"Upper", "Lower", "Title"}, methods.Names)

	results, err := obj.Call("Upper", []vm.Value{vm.NewStringValue("hello")})
	require.NoError(t, err)
	require.Equal(t, "HELLO", results[0].Handle().(*vm.String).Go())

	results, err = obj.Call("Lower", []vm.Value{vm.NewStringValue("HELLO")})
	require.NoError(t, err)
	require.Equal(t, "hello", results[0].Handle().(*vm.String).Go())

	results, err = obj.Call("Title", []vm.Value{vm.NewStringValue("hello world")})
	require.NoError(t, err)
	require.Equal(t, "Hello World", results[0].Handle().(*vm.String).Go())
}

func TestCaser_UnknownMethodErrors(t *testing.T) {
	obj, _, err := hostlib.NewCaser([]vm.Value{vm.NewStringValue("")})
	require.NoError(t, err)
	_, err = obj.Call("Shout", []vm.Value{vm.NewStringValue("x")})
	require.Error(t, err)
}

func TestCaser_BadConstructorArgsError(t *testing.T) {
	_, _, err := hostlib.NewCaser(nil)
	require.Error(t, err)

	_, _, err = hostlib.NewCaser([]vm.Value{vm.NewStringValue("not-a-real-tag!!")})
	require.Error(t, err)
}
