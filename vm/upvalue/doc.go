// Package upvalue implements §4.4's closure-literal capture walk: when
// a LITERAL instruction constructs a closure, for each of the target
// function's declared up-values the dispatcher either reuses a cell the
// enclosing frame's own closure already captured (nested closures) or
// opens a fresh cell over one of the enclosing frame's local slots,
// registering it in that frame's referred_by map so CloseUpValues can
// find it again on return.
package upvalue
