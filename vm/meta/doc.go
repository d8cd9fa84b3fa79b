// Package meta implements the process-wide metadata registry: an
// append-only table of type descriptors addressed by a stable small
// key, mirroring hive/alloc's table-of-handles style but over type
// shapes instead of heap cells.
//
// Struct descriptors carry a field-name map that promotes embedded
// fields (a name declared by an embedded struct is reachable by a
// prefixed index path; collisions between own and embedded names
// resolve shallower-wins). Interface descriptors carry method
// descriptors; the per-(interface, concrete) dispatch vector itself is
// memoized in vm/intern, not here, since it depends on the concrete
// type's method set which may be registered after the interface is.
//
// Recursive and mutually-recursive types (a struct containing a pointer
// to itself, or to another type not yet defined) are supported via
// two-phase construction: NewPlaceholder reserves a Key before the
// underlying Desc is known, and Fill installs it once construction
// completes.
package meta
