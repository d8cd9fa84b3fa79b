// Package intern memoizes per-(interface, concrete-type) dispatch
// vectors (§4.6): the function-key vector naming, for each of an
// interface's methods in declaration order, which concrete method
// implements it. Computing one requires walking both the interface's
// and the concrete type's metadata, so every pairing is resolved once
// and cached, sharded the way hive/namecache shards its decode cache to
// keep lookup cheap under concurrent interface casts.
package intern
