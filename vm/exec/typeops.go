package exec

import (
	"github.com/prateekvishnu/goscript/pkg/vmerr"
	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/meta"
)

// execTypeAssert implements TYPE_ASSERT. A nil interface never
// satisfies any target type, matching Go's own "a nil interface fails
// every type assertion" rule.
func (in *Interpreter) execTypeAssert(reg *meta.Registry, ifv vm.Value, target meta.Key) (vm.Value, bool, error) {
	iface := ifv.Handle().(*vm.Interface)
	if iface.IsNil() {
		return zeroForMeta(reg, target), false, vmerr.New(vmerr.KindTypeAssert, "type assertion on nil interface")
	}

	var ok bool
	var underlying vm.Value
	if iface.IsForeign() {
		ok = false
	} else {
		underlying = iface.Underlying()
		ok = concreteMetaKey(underlying) == target
	}

	if !ok {
		return zeroForMeta(reg, target), false, vmerr.New(vmerr.KindTypeAssert, "interface does not hold the asserted type")
	}
	vm.Retain(underlying)
	return underlying, true, nil
}
