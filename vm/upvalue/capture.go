package upvalue

import (
	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/frame"
	"github.com/prateekvishnu/goscript/vm/heap"
)

// Capture builds the up-value vector for a closure literal being
// constructed in enclosing, given the target function's declared
// up-value descriptors. A descriptor naming a slot in the enclosing
// function's own up-value vector (OuterIsUpValue) shares that existing
// cell; one naming a local slot opens a fresh cell over it and registers
// the capture against enclosing's referred_by map.
func Capture(enclosing *frame.Frame, descs []vm.UpValueDesc) []*vm.UpValue {
	out := make([]*vm.UpValue, len(descs))
	for i, d := range descs {
		var uv *vm.UpValue
		if d.OuterIsUpValue {
			uv = enclosing.UpValues[d.OuterIndex]
		} else {
			uv = vm.NewOpenUpValue(enclosing.Slot(d.OuterIndex))
			typ := enclosing.Local(d.OuterIndex).Kind()
			enclosing.TrackUpValue(d.OuterIndex, typ, uv)
		}
		heap.Retain(uv)
		out[i] = uv
	}
	return out
}
