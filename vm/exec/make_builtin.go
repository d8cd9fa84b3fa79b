package exec

import (
	"github.com/prateekvishnu/goscript/pkg/vmerr"
	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/frame"
	"github.com/prateekvishnu/goscript/vm/meta"
)

// execMake implements MAKE. Imm is always the meta.Key of the composite
// type being constructed (a DescSlice/DescMap/DescChannel record); the
// element (and, for a map, key) kind is recovered from that descriptor
// rather than packed separately into the instruction.
func (in *Interpreter) execMake(reg *meta.Registry, stk *frame.Stack, ins vm.Instruction) (vm.Value, error) {
	key := meta.Key(ins.Imm)
	d := reg.Get(key)

	switch ins.T0 {
	case vm.KindSlice:
		if d.Kind != meta.DescSlice {
			return vm.Value{}, vmerr.New(vmerr.KindInvariant, "exec: MAKE: %d is not a slice type", key)
		}
		capV := stk.Pop()
		lenV := stk.Pop()
		l := int(lenV.AsInt64())
		c := int(capV.AsInt64())
		elemKind := metaKeyToKind(reg, d.SliceElem)
		zero := zeroForMeta(reg, d.SliceElem)
		elems := make([]vm.Value, c)
		for i := range elems {
			elems[i] = zero
		}
		arr := vm.NewArray(elemKind, elems)
		return vm.NewSliceValue(elemKind, arr, 0, l, c), nil

	case vm.KindMap:
		if d.Kind != meta.DescMap {
			return vm.Value{}, vmerr.New(vmerr.KindInvariant, "exec: MAKE: %d is not a map type", key)
		}
		zero := zeroForMeta(reg, d.MapElem)
		keyKind := metaKeyToKind(reg, d.MapKey)
		elemKind := metaKeyToKind(reg, d.MapElem)
		return vm.NewMapValue(keyKind, elemKind, zero), nil

	case vm.KindChannel:
		if d.Kind != meta.DescChannel {
			return vm.Value{}, vmerr.New(vmerr.KindInvariant, "exec: MAKE: %d is not a channel type", key)
		}
		capV := stk.Pop()
		c := int(capV.AsInt64())
		elemKind := metaKeyToKind(reg, d.Channel.Elem)
		return vm.NewChannelValue(elemKind, c), nil

	default:
		return vm.Value{}, vmerr.New(vmerr.KindInvariant, "exec: MAKE: unsupported T0 %s", ins.T0)
	}
}
