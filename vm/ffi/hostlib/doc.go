// Package hostlib supplies the concrete host objects an ffi.Registry
// can be built from: small, self-contained vm.ForeignObject
// implementations backed by real Go libraries rather than hand-rolled
// logic, so a program running under govm gets the same string-casing
// and structured-logging behavior a host application would reach for.
//
// Neither object opts into cycle-collector participation — both hold
// only library handles, never a reference back into the VM heap, so
// plain refcounting already reclaims them correctly.
package hostlib
