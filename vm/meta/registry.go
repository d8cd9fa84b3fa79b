package meta

import (
	"fmt"
	"sync"
)

// Registry is the process-wide, append-only metadata table. It is safe
// for concurrent use, though in practice the VM only ever builds
// metadata during artifact loading and reads it thereafter under the
// single-fiber-dispatch invariant (§5) — the mutex exists for the
// loading phase, which may run ahead of the scheduler starting.
type Registry struct {
	mu      sync.RWMutex
	records []Desc // indexed by Key - 1; records[0] is KeyBool's record
}

// NewRegistry constructs a Registry preloaded with the predefined
// scalar, nil, and unsafe-pointer keys described in §4.1.
func NewRegistry() *Registry {
	r := &Registry{records: make([]Desc, firstDynamicKey-1)}
	for k := KeyBool; k < KeyNil; k++ {
		r.records[k-1] = Desc{Kind: DescScalar}
	}
	r.records[KeyNil-1] = Desc{Kind: DescNil}
	r.records[KeyUnsafePtr-1] = Desc{Kind: DescUnsafePtr}
	return r
}

// Get resolves key to its Desc. Panics on an out-of-range or still-
// unfilled placeholder key: both indicate a construction-order bug in
// the loader, not a recoverable runtime condition.
func (r *Registry) Get(key Key) Desc {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if key == KeyInvalid || int(key) > len(r.records) {
		panic(fmt.Sprintf("meta: key %d out of range", key))
	}
	d := r.records[key-1]
	if d.Kind == DescPlaceholder {
		panic(fmt.Sprintf("meta: key %d is an unfilled placeholder", key))
	}
	return d
}

func (r *Registry) append(d Desc) Key {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, d)
	return Key(len(r.records))
}

// NewPlaceholder reserves a Key for a type whose construction is not
// yet complete (the two-phase mechanism §4.1/§3 describe for breaking
// cycles in recursive metadata, e.g. a struct with a field of pointer-
// to-itself type). Callers must Fill it before any Get.
func (r *Registry) NewPlaceholder() Key {
	return r.append(Desc{Kind: DescPlaceholder})
}

// Fill installs d as the definition for a key previously reserved by
// NewPlaceholder.
func (r *Registry) Fill(key Key, d Desc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[key-1] = d
}

// NewArray registers an array-of-elem-with-length metadata record.
func (r *Registry) NewArray(elem Key, length int) Key {
	return r.append(Desc{Kind: DescArray, ArrayElem: elem, ArrayLen: length})
}

// NewSlice registers a slice-of-elem metadata record.
func (r *Registry) NewSlice(elem Key) Key {
	return r.append(Desc{Kind: DescSlice, SliceElem: elem})
}

// NewMap registers a map[key]elem metadata record.
func (r *Registry) NewMap(key, elem Key) Key {
	return r.append(Desc{Kind: DescMap, MapKey: key, MapElem: elem})
}

// NewStruct registers a struct metadata record. fields must already be
// in declaration order; NameMap is computed by BuildFieldNameMap.
func (r *Registry) NewStruct(fields []FieldInfo) Key {
	sd := &StructDesc{Fields: fields}
	sd.NameMap = r.BuildFieldNameMap(fields)
	return r.append(Desc{Kind: DescStruct, Struct: sd})
}

// NewInterface registers an interface metadata record.
func (r *Registry) NewInterface(methods []MethodInfo) Key {
	return r.append(Desc{Kind: DescInterface, Interface: &InterfaceDesc{Methods: methods}})
}

// NewChannel registers a channel metadata record.
func (r *Registry) NewChannel(dir ChanDir, elem Key) Key {
	return r.append(Desc{Kind: DescChannel, Channel: &ChannelDesc{Dir: dir, Elem: elem}})
}

// NewSignature registers a function/method signature metadata record.
func (r *Registry) NewSignature(recv Key, params, results []Key, variadic bool) Key {
	return r.append(Desc{Kind: DescSignature, Signature: &SignatureDesc{
		Recv: recv, Params: params, Results: results, Variadic: variadic,
	}})
}

// NewPointerTo registers a pointer-to-elem metadata record.
func (r *Registry) NewPointerTo(elem Key) Key {
	return r.append(Desc{Kind: DescPointerTo, PointerToElem: elem})
}

// NewNamed registers a named (defined) type over an existing underlying
// representation, with its own method set.
func (r *Registry) NewNamed(underlying Key, methods map[string]FuncKey) Key {
	if methods == nil {
		methods = make(map[string]FuncKey)
	}
	return r.append(Desc{Kind: DescNamed, Named: &NamedDesc{Underlying: underlying, Methods: methods}})
}

// BuildFieldNameMap walks fields, promoting embedded-field names under a
// prefixed index path. A name declared directly by the struct always
// wins; among embedded names at increasing depth, the shallowest
// declaration wins (§4.1's "shallower-wins" collision rule). Only one
// level of embedding is walked directly here — a field whose own type is
// itself a struct with further embeds contributes its own already-built
// NameMap, looked up through resolveEmbedded.
func (r *Registry) BuildFieldNameMap(fields []FieldInfo) map[string][]int {
	nameMap := make(map[string][]int, len(fields))
	depth := make(map[string]int, len(fields))

	for i, f := range fields {
		if _, exists := nameMap[f.Name]; !exists {
			nameMap[f.Name] = []int{i}
			depth[f.Name] = 0
		}
	}

	for i, f := range fields {
		if !f.Embedded {
			continue
		}
		embedded := r.resolveEmbeddedNames(f.Type)
		for name, path := range embedded {
			d := len(path)
			if _, exists := nameMap[name]; !exists || d < depth[name] {
				full := append([]int{i}, path...)
				nameMap[name] = full
				depth[name] = d
			}
		}
	}
	return nameMap
}

// resolveEmbeddedNames returns the name->path map of an embedded
// field's own type, if it is (possibly through a chain of named-type
// wrapping) a struct; otherwise nil.
func (r *Registry) resolveEmbeddedNames(key Key) map[string][]int {
	d := r.Get(key)
	for d.Kind == DescNamed {
		d = r.Get(d.Named.Underlying)
	}
	if d.Kind != DescStruct {
		return nil
	}
	return d.Struct.NameMap
}
