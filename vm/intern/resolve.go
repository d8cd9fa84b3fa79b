package intern

import (
	"fmt"

	"github.com/prateekvishnu/goscript/vm/meta"
)

// Resolve computes (or returns memoized) the dispatch vector for
// casting a value of concrete type concreteKey to interface ifaceKey:
// one vm/meta.FuncKey per interface method, in the interface's
// declaration order. Panics (a KindTypeAssert is the caller's job to
// raise instead, before ever reaching here) if concreteKey's named type
// doesn't implement a required method — callers are expected to have
// already validated assignability at compile time or via TYPE_ASSERT's
// own failure path.
func Resolve(cache *Cache, reg *meta.Registry, ifaceKey, concreteKey meta.Key) []meta.FuncKey {
	return cache.GetOrCompute(ifaceKey, concreteKey, func() []meta.FuncKey {
		ifaceDesc := reg.Get(ifaceKey)
		named := underlyingNamed(reg, concreteKey)

		out := make([]meta.FuncKey, len(ifaceDesc.Interface.Methods))
		for i, m := range ifaceDesc.Interface.Methods {
			fn, ok := named.Methods[m.Name]
			if !ok {
				panic(fmt.Sprintf("intern: concrete type has no method %q required by interface", m.Name))
			}
			out[i] = fn
		}
		return out
	})
}

func underlyingNamed(reg *meta.Registry, key meta.Key) *meta.NamedDesc {
	d := reg.Get(key)
	if d.Kind != meta.DescNamed {
		panic("intern: concrete type has no method set (not a named type)")
	}
	return d.Named
}
