package hostlib

import "github.com/prateekvishnu/goscript/vm/ffi"

// Register adds every host object this package supplies to r, under
// the FFI constructor names CaserName/ConsoleName. pkg/govm's
// SampleFFIRegistry calls this once when building the ffi.Registry that
// cmd/govm and cmd/govmtop hand to sched.Run.
func Register(r *ffi.Registry) {
	r.Register(CaserName, NewCaser)
	r.Register(ConsoleName, NewConsole)
}
