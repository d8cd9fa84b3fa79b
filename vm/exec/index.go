package exec

import (
	"github.com/prateekvishnu/goscript/internal/buf"
	"github.com/prateekvishnu/goscript/pkg/vmerr"
	"github.com/prateekvishnu/goscript/vm"
)

// loadIndex implements LOAD_INDEX/LOAD_INDEX_IMM's container dispatch:
// map lookup by key Value, or bounds-checked numeric indexing into an
// array/slice/string. The returned bool is the comma-ok result (always
// true for array/slice/string, since an out-of-range index is a runtime
// error there rather than a miss).
func loadIndex(container, idx vm.Value) (vm.Value, bool, error) {
	switch container.Kind() {
	case vm.KindMap:
		v, ok := container.Handle().(*vm.Map).Get(idx)
		return v, ok, nil
	case vm.KindArray:
		a := container.Handle().(*vm.Array)
		i := int(idx.AsInt64())
		if i < 0 || i >= a.Len() {
			return vm.Value{}, false, vmerr.New(vmerr.KindIndexRange, "array index %d out of range [0:%d)", i, a.Len())
		}
		return a.At(i), true, nil
	case vm.KindSlice:
		s := container.Handle().(*vm.Slice)
		i := int(idx.AsInt64())
		if i < 0 || i >= s.Len() {
			return vm.Value{}, false, vmerr.New(vmerr.KindIndexRange, "slice index %d out of range [0:%d)", i, s.Len())
		}
		return s.At(i), true, nil
	case vm.KindString:
		s := container.Handle().(*vm.String)
		i := int(idx.AsInt64())
		if !buf.Has(s.Bytes(), i, 1) {
			return vm.Value{}, false, vmerr.New(vmerr.KindIndexRange, "string index %d out of range [0:%d)", i, s.Len())
		}
		return vm.Uint8(s.Bytes()[i]), true, nil
	default:
		return vm.Value{}, false, vmerr.New(vmerr.KindInvariant, "exec: LOAD_INDEX on non-indexable kind %s", container.Kind())
	}
}

// storeIndex implements STORE_INDEX/STORE_INDEX_IMM's container
// dispatch. Strings are immutable in this data model, so a string
// container here is an encoder bug, not a runtime condition.
func storeIndex(container, idx, val vm.Value) error {
	switch container.Kind() {
	case vm.KindMap:
		container.Handle().(*vm.Map).Set(idx, val)
		return nil
	case vm.KindArray:
		a := container.Handle().(*vm.Array)
		i := int(idx.AsInt64())
		if i < 0 || i >= a.Len() {
			return vmerr.New(vmerr.KindIndexRange, "array index %d out of range [0:%d)", i, a.Len())
		}
		a.Set(i, val)
		return nil
	case vm.KindSlice:
		s := container.Handle().(*vm.Slice)
		i := int(idx.AsInt64())
		if i < 0 || i >= s.Len() {
			return vmerr.New(vmerr.KindIndexRange, "slice index %d out of range [0:%d)", i, s.Len())
		}
		s.Set(i, val)
		return nil
	default:
		return vmerr.New(vmerr.KindInvariant, "exec: STORE_INDEX on non-indexable kind %s", container.Kind())
	}
}
