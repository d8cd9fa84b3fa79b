package intern_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prateekvishnu/goscript/vm/intern"
	"github.com/prateekvishnu/goscript/vm/meta"
)

func TestResolve_MemoizesAcrossCalls(t *testing.T) {
	reg := meta.NewRegistry()
	ifaceKey := reg.NewInterface([]meta.MethodInfo{{Name: "Area"}})
	concreteKey := reg.NewNamed(meta.KeyInt64, map[string]meta.FuncKey{"Area": 7})

	cache := intern.NewCache()
	v1 := intern.Resolve(cache, reg, ifaceKey, concreteKey)
	v2 := intern.Resolve(cache, reg, ifaceKey, concreteKey)

	require.Equal(t, []meta.FuncKey{7}, v1)
	require.Equal(t, v1, v2)
}

func TestResolve_MissingMethodPanics(t *testing.T) {
	reg := meta.NewRegistry()
	ifaceKey := reg.NewInterface([]meta.MethodInfo{{Name: "Area"}})
	concreteKey := reg.NewNamed(meta.KeyInt64, map[string]meta.FuncKey{})

	cache := intern.NewCache()
	require.Panics(t, func() {
		intern.Resolve(cache, reg, ifaceKey, concreteKey)
	})
}
