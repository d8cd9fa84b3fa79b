package pkgreg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/pkgreg"
)

func TestRegistry_NeedsInitBeforeMarking(t *testing.T) {
	r := pkgreg.NewRegistry()
	pkg := vm.NewPackage("main", []string{"x"}, nil)
	r.Register(pkg)

	require.True(t, r.NeedsInit("main"))
	pkg.MarkInitialized()
	require.False(t, r.NeedsInit("main"))
}

func TestRegistry_UnknownPackage(t *testing.T) {
	r := pkgreg.NewRegistry()
	_, ok := r.Get("missing")
	require.False(t, ok)
	require.False(t, r.NeedsInit("missing"))
}
